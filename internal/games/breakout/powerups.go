package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Effect is the power-up bound to a bonus brick.
type Effect int

const (
	EffectNone Effect = iota
	EffectExtraLife
	EffectFireBall
	EffectExpandPaddle
	EffectSpeedBoost
)

// bonusEffects is the set bonus bricks draw from, uniformly.
var bonusEffects = []Effect{EffectExtraLife, EffectFireBall, EffectExpandPaddle, EffectSpeedBoost}

// String returns the name of the effect.
func (e Effect) String() string {
	switch e {
	case EffectExtraLife:
		return "ExtraLife"
	case EffectFireBall:
		return "FireBall"
	case EffectExpandPaddle:
		return "ExpandPaddle"
	case EffectSpeedBoost:
		return "SpeedBoost"
	default:
		return "None"
	}
}

// Message returns the transient status text shown when the effect fires.
func (e Effect) Message() string {
	switch e {
	case EffectExtraLife:
		return "Extra life!"
	case EffectFireBall:
		return "Fireball!"
	case EffectExpandPaddle:
		return "Wide paddle!"
	case EffectSpeedBoost:
		return "Speed boost!"
	default:
		return ""
	}
}

// Timed reports whether the effect schedules a reversion.
func (e Effect) Timed() bool {
	return e == EffectFireBall || e == EffectExpandPaddle || e == EffectSpeedBoost
}

// randomEffect draws one bonus effect uniformly.
func randomEffect(rng *SimpleRNG) Effect {
	return bonusEffects[rng.Intn(len(bonusEffects))]
}

// trigger applies an effect now and schedules its reversion.
// Re-triggering an active effect schedules another, independent reversion;
// the first one to come due restores the base value.
func (s *Session) trigger(e Effect) {
	pu := s.cfg.PowerUps

	var duration float64
	switch e {
	case EffectExtraLife:
		s.lives++
	case EffectFireBall:
		s.fireBall = true
		s.ball.Tint = s.tints.fireBall
		duration = pu.FireBallMs
	case EffectExpandPaddle:
		s.setPaddleWidth(s.cfg.Paddle.Width + pu.ExpandAmount)
		duration = pu.ExpandMs
	case EffectSpeedBoost:
		s.paddle.Vel.X = s.cfg.Paddle.Step + pu.SpeedBoostStep
		duration = pu.SpeedBoostMs
	default:
		return
	}

	s.message = e.Message()
	s.messageUntil = s.now + pu.MessageMs

	if e.Timed() {
		s.tasks.Schedule(s.now+duration, e, s.epoch)
	}
	s.logger.Debug("power-up triggered", "effect", e, "at", s.now, "until", s.now+duration, "epoch", s.epoch)
}

// revert undoes a timed effect.
func (s *Session) revert(e Effect) {
	switch e {
	case EffectFireBall:
		s.fireBall = false
		s.ball.Tint = s.tints.ball
	case EffectExpandPaddle:
		s.setPaddleWidth(s.cfg.Paddle.Width)
	case EffectSpeedBoost:
		s.paddle.Vel.X = s.cfg.Paddle.Step
	}
	s.logger.Debug("power-up reverted", "effect", e, "at", s.now)
}

// runDueTasks applies every reversion that is due at the current timestamp.
// Tasks scheduled by an earlier run (before a restart) are dropped.
func (s *Session) runDueTasks() {
	for _, t := range s.tasks.PopDue(s.now) {
		if t.Epoch != s.epoch {
			s.logger.Debug("stale reversion dropped", "effect", t.Effect, "epoch", t.Epoch, "current", s.epoch)
			continue
		}
		s.revert(t.Effect)
	}
}

// setPaddleWidth resizes the paddle around its center and keeps it inside
// the playfield.
func (s *Session) setPaddleWidth(w float64) {
	w = core.ClampF(w, 1, s.cfg.Playfield.Width)
	center := s.paddle.CenterX()
	s.paddle.Size.X = w
	s.paddle.Pos.X = core.ClampF(center-w/2, 0, s.cfg.Playfield.Width-w)
}
