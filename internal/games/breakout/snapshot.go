package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Overlay texts shown over the playfield on game over.
const (
	OverlayGameOver = "Game Over"
	OverlayWin      = "Win!"
)

// Sprite is one drawable box.
type Sprite struct {
	Kind  Kind
	Pos   core.Vec2
	Size  core.Vec2
	Color core.Color
}

// Snapshot is everything a drawing collaborator needs for one frame.
// Sprites are ordered ball, paddle, then live bricks in layout order.
type Snapshot struct {
	Sprites   []Sprite
	Playfield core.Vec2

	Score   int
	Lives   int
	Message string
	Overlay string // OverlayGameOver, OverlayWin or empty

	State    State
	Outcome  Outcome
	FireBall bool
	Bricks   int // live bricks

	Time  float64
	Epoch uint64
}

// Snapshot returns the current frame without advancing the session.
func (s *Session) Snapshot() Snapshot {
	sprites := make([]Sprite, 0, len(s.bricks)+2)
	sprites = append(sprites, spriteOf(s.ball), spriteOf(s.paddle))
	bricks := 0
	for _, b := range s.bricks {
		if !b.Live {
			continue
		}
		sprites = append(sprites, spriteOf(b))
		bricks++
	}

	var overlay string
	switch s.outcome {
	case OutcomeWin:
		overlay = OverlayWin
	case OutcomeLoss:
		overlay = OverlayGameOver
	}

	return Snapshot{
		Sprites:   sprites,
		Playfield: core.V(s.cfg.Playfield.Width, s.cfg.Playfield.Height),
		Score:     s.score,
		Lives:     s.lives,
		Message:   s.message,
		Overlay:   overlay,
		State:     s.state,
		Outcome:   s.outcome,
		FireBall:  s.fireBall,
		Bricks:    bricks,
		Time:      s.now,
		Epoch:     s.epoch,
	}
}

func spriteOf(e Entity) Sprite {
	return Sprite{Kind: e.Kind, Pos: e.Pos, Size: e.Size, Color: e.Tint}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := math.Float64bits(snap.Time)
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bricks)  //#nosec G115 -- hash computation
	h = h*31 + snap.Epoch

	for _, sp := range snap.Sprites {
		h = h*31 + uint64(sp.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(sp.Pos.X)
		h = h*31 + math.Float64bits(sp.Pos.Y)
		h = h*31 + math.Float64bits(sp.Size.X)
		h = h*31 + uint64(sp.Color)
	}

	return h
}
