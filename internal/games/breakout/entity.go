// Package breakout implements the ball-and-paddle engine: entities, the
// directional collision resolver, brick layouts, timed power-ups and the
// session state machine that ties them together once per frame.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Kind tags an Entity. Behavior dispatches on the tag.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindSimpleBrick
	KindBonusBrick
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindSimpleBrick:
		return "brick"
	case KindBonusBrick:
		return "bonus"
	default:
		return "?"
	}
}

// IsBrick reports whether the kind is one of the brick variants.
func (k Kind) IsBrick() bool {
	return k == KindSimpleBrick || k == KindBonusBrick
}

// Entity is the shared geometry record for every object in the playfield.
// Only the fields relevant to Kind are meaningful:
//
//	ball:   Vel, Hooked
//	paddle: Vel (X is the distance of one move command), Blocked
//	bricks: Hits, Live, Effect (bonus only)
type Entity struct {
	Kind Kind
	core.Box
	Vel  core.Vec2
	Tint core.Color

	Hooked  bool
	Blocked bool

	Hits   int
	Live   bool
	Effect Effect
}

// hit removes one hit point from a live brick.
// It reports whether this hit destroyed the brick.
func (e *Entity) hit() bool {
	if !e.Live || e.Hits <= 0 {
		return false
	}
	e.Hits--
	if e.Hits == 0 {
		e.Live = false
		return true
	}
	return false
}

// palette holds the resolved tints for one session.
type palette struct {
	ball     core.Color
	fireBall core.Color
	paddle   core.Color
	bonus    core.Color
	hits     []core.Color
}

// brickTint returns the tint for a brick with the given remaining hits.
func (p palette) brickTint(kind Kind, hits int) core.Color {
	if kind == KindBonusBrick {
		return p.bonus
	}
	if len(p.hits) == 0 {
		return core.ColorWhite
	}
	i := hits - 1
	if i < 0 {
		i = 0
	}
	if i >= len(p.hits) {
		i = len(p.hits) - 1
	}
	return p.hits[i]
}
