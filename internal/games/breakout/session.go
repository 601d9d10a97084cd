package breakout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is the session state machine.
type State int

const (
	StateHooked   State = iota // ball rides on the paddle
	StateLaunched              // ball in free motion
	StateGameOver              // terminal until Restart
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateHooked:
		return "hooked"
	case StateLaunched:
		return "launched"
	case StateGameOver:
		return "gameover"
	default:
		return "?"
	}
}

// Outcome tells why a session reached StateGameOver.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for state transitions. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the launch direction and bonus effect draws.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithLayout overrides the layout named in the configuration.
func WithLayout(l Layout) Option {
	return func(s *Session) {
		s.layout = l
		s.layoutSet = true
	}
}

// Session is one game: a ball, a paddle and the live bricks, advanced one
// frame at a time by Update. Commands and Update must be called from the same
// goroutine.
type Session struct {
	cfg       config.BreakoutConfig
	layout    Layout
	layoutSet bool
	tints     palette
	logger    *log.Logger
	seed      int64
	rng       *SimpleRNG

	ball   Entity
	paddle Entity
	bricks []Entity

	tasks *Scheduler
	epoch uint64

	state    State
	outcome  Outcome
	score    int
	lives    int
	fireBall bool

	message      string
	messageUntil float64

	now  float64 // timestamp of the current frame
	last float64 // timestamp of the previous frame
}

// NewSession creates a session in the Hooked state. The configuration is
// validated first, so a zero value yields the defaults.
func NewSession(cfg config.BreakoutConfig, opts ...Option) *Session {
	s := &Session{
		logger: log.New(io.Discard),
		seed:   1,
		tasks:  NewScheduler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if fixed := cfg.Validate(); len(fixed) > 0 {
		s.logger.Warn("config values replaced with defaults", "fields", fixed)
	}
	s.cfg = cfg
	if !s.layoutSet {
		l, ok := LayoutByID(cfg.Gameplay.Layout)
		if !ok {
			s.logger.Warn("unknown layout, using classic", "layout", cfg.Gameplay.Layout)
			l, _ = LayoutByID("classic")
		}
		s.layout = l
	}
	s.tints = newPalette(cfg.Tints)
	s.rng = NewSimpleRNG(s.seed)

	s.reset()
	return s
}

// newPalette resolves tint names. Unknown names fall back to white.
func newPalette(t config.BreakoutTints) palette {
	pick := func(name string, def core.Color) core.Color {
		if c, ok := core.ParseColor(name); ok {
			return c
		}
		return def
	}
	p := palette{
		ball:     pick(t.Ball, core.ColorWhite),
		fireBall: pick(t.FireBall, core.ColorBrightRed),
		paddle:   pick(t.Paddle, core.ColorWhite),
		bonus:    pick(t.Bonus, core.ColorBrightCyan),
	}
	for _, name := range t.Hits {
		p.hits = append(p.hits, pick(name, core.ColorWhite))
	}
	return p
}

// reset builds a fresh run: full lives, zero score, a new brick set and a
// hooked ball. Effects are cleared directly; their pending reversions belong
// to the previous epoch.
func (s *Session) reset() {
	pf := s.cfg.Playfield

	s.paddle = Entity{
		Kind: KindPaddle,
		Box: core.NewBox(
			pf.Width/2-s.cfg.Paddle.Width/2,
			pf.Height-s.cfg.Paddle.Height,
			s.cfg.Paddle.Width,
			s.cfg.Paddle.Height,
		),
		Vel:  core.V(s.cfg.Paddle.Step, 0),
		Tint: s.tints.paddle,
	}
	s.ball = Entity{
		Kind:   KindBall,
		Box:    core.NewBox(0, 0, s.cfg.Ball.Size, s.cfg.Ball.Size),
		Tint:   s.tints.ball,
		Hooked: true,
	}
	s.hookBall()

	s.bricks = buildBricks(s.layout, s.cfg.Bricks, s.tints, s.rng)
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.state = StateHooked
	s.outcome = OutcomeNone
	s.fireBall = false
	s.message = ""
	s.messageUntil = 0
}

// MoveLeft moves the paddle one step left. Ignored while blocked.
func (s *Session) MoveLeft() {
	s.movePaddle(-s.paddle.Vel.X)
}

// MoveRight moves the paddle one step right. Ignored while blocked.
func (s *Session) MoveRight() {
	s.movePaddle(s.paddle.Vel.X)
}

func (s *Session) movePaddle(dx float64) {
	if s.paddle.Blocked {
		return
	}
	s.paddle.Pos.X = core.ClampF(s.paddle.Pos.X+dx, 0, s.cfg.Playfield.Width-s.paddle.Size.X)
	if s.ball.Hooked {
		s.hookBall()
	}
}

// Launch releases a hooked ball upward with a random horizontal sign.
// It is a no-op while the ball is moving. After game over it restarts.
func (s *Session) Launch() {
	if s.state == StateGameOver {
		s.Restart()
		return
	}
	if !s.ball.Vel.IsZero() {
		return
	}
	speed := s.cfg.Ball.Speed
	s.ball.Vel = core.V(s.rng.Sign()*speed, -speed)
	s.ball.Hooked = false
	s.state = StateLaunched
	s.logger.Debug("ball launched", "vx", s.ball.Vel.X, "vy", s.ball.Vel.Y, "at", s.now)
}

// Restart starts a new run after game over. Ignored in any other state.
// Reversions still pending from the finished run are dropped when due.
func (s *Session) Restart() {
	if s.state != StateGameOver {
		return
	}
	s.epoch++
	s.reset()
	s.logger.Debug("session restarted", "epoch", s.epoch, "pending", s.tasks.Len())
}

// Update advances the session to timestamp ts (milliseconds) and returns
// the frame snapshot. Timestamps must not decrease; an earlier one is
// treated as a repeat of the previous frame.
//
// Order per frame: due reversions, message expiry, walls, paddle, bricks,
// integration, loss, end of game, compaction.
func (s *Session) Update(ts float64) Snapshot {
	if ts < s.last {
		ts = s.last
	}
	dt := (ts - s.last) / s.cfg.Gameplay.TimeScaleMs
	s.last = ts
	s.now = ts

	s.runDueTasks()
	if s.message != "" && s.now >= s.messageUntil {
		s.message = ""
	}

	if s.state == StateLaunched {
		s.step(dt)
	}
	if s.ball.Hooked {
		s.hookBall()
	}
	if s.state != StateGameOver {
		s.checkEnd()
	}
	s.compact()

	return s.Snapshot()
}

// step moves the ball by dt scaled time units and resolves its contacts.
func (s *Session) step(dt float64) {
	reflectWalls(&s.ball, s.cfg.Playfield.Width)

	if c, ok := Resolve(s.ball.Box, s.paddle.Box); ok {
		s.ball.Vel = s.ball.Vel.Mul(c.Reflect)
	}

	for i := range s.bricks {
		b := &s.bricks[i]
		if !b.Live {
			continue
		}
		c, ok := Resolve(s.ball.Box, b.Box)
		if !ok {
			continue
		}
		if !s.fireBall {
			s.ball.Vel = s.ball.Vel.Mul(c.Reflect)
		}
		destroyed := b.hit()
		s.score += s.cfg.Gameplay.ScoreUnit
		if !destroyed {
			b.Tint = s.tints.brickTint(b.Kind, b.Hits)
			continue
		}
		if b.Kind == KindBonusBrick {
			s.trigger(b.Effect)
		}
	}

	s.ball.Pos = s.ball.Pos.Add(s.ball.Vel.Scale(dt))

	if s.ball.Bottom() >= s.cfg.Playfield.Height {
		s.loseBall()
	}
}

// loseBall hooks the ball back onto the paddle and takes a life.
func (s *Session) loseBall() {
	if s.lives > 0 {
		s.lives--
	}
	s.ball.Vel = core.Vec2{}
	s.ball.Hooked = true
	s.state = StateHooked
	s.logger.Debug("ball lost", "lives", s.lives, "at", s.now)
}

// checkEnd moves to game over on a cleared field or on the last life.
// A cleared field wins even if the same frame took the last life.
func (s *Session) checkEnd() {
	switch {
	case s.liveBricks() == 0:
		s.endGame(OutcomeWin)
	case s.lives == 0:
		s.endGame(OutcomeLoss)
	}
}

func (s *Session) endGame(o Outcome) {
	s.ball.Vel = core.Vec2{}
	s.ball.Hooked = true
	s.hookBall()
	s.paddle.Blocked = true
	s.state = StateGameOver
	s.outcome = o
	s.logger.Info("game over", "win", o == OutcomeWin, "score", s.score, "lives", s.lives, "epoch", s.epoch)
}

// hookBall centers the ball on top of the paddle.
func (s *Session) hookBall() {
	s.ball.Pos = core.V(
		s.paddle.CenterX()-s.ball.Size.X/2,
		s.paddle.Top()-s.ball.Size.Y,
	)
}

// compact drops destroyed bricks from the live set.
func (s *Session) compact() {
	live := s.bricks[:0]
	for _, b := range s.bricks {
		if b.Live {
			live = append(live, b)
		}
	}
	s.bricks = live
}

func (s *Session) liveBricks() int {
	n := 0
	for i := range s.bricks {
		if s.bricks[i].Live {
			n++
		}
	}
	return n
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Outcome returns why the session ended, or OutcomeNone.
func (s *Session) Outcome() Outcome { return s.outcome }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Epoch counts restarts.
func (s *Session) Epoch() uint64 { return s.epoch }

// Ball returns a copy of the ball.
func (s *Session) Ball() Entity { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Entity { return s.paddle }

// Bricks returns a copy of the live bricks.
func (s *Session) Bricks() []Entity {
	out := make([]Entity, 0, len(s.bricks))
	for _, b := range s.bricks {
		if b.Live {
			out = append(out, b)
		}
	}
	return out
}

// FireBall reports whether the pass-through effect is active.
func (s *Session) FireBall() bool { return s.fireBall }

// Message returns the current status message, if any.
func (s *Session) Message() string { return s.message }

// Layout returns the layout bricks are built from.
func (s *Session) Layout() Layout { return s.layout }

// Config returns the validated configuration.
func (s *Session) Config() config.BreakoutConfig { return s.cfg }
