// Package config provides YAML-based game configuration loading,
// difficulty presets and brick layout files.
package config

// BreakoutConfig contains all configuration for a Breakout session.
type BreakoutConfig struct {
	Playfield BreakoutPlayfield `yaml:"playfield"`
	Ball      BreakoutBall      `yaml:"ball"`
	Paddle    BreakoutPaddle    `yaml:"paddle"`
	Bricks    BreakoutBricks    `yaml:"bricks"`
	Gameplay  BreakoutGameplay  `yaml:"gameplay"`
	PowerUps  BreakoutPowerUps  `yaml:"powerups"`
	Tints     BreakoutTints     `yaml:"tints"`
}

// BreakoutPlayfield is the bounded area all entities live in.
type BreakoutPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines the ball size and launch speed (per axis).
type BreakoutBall struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// BreakoutPaddle defines the paddle box and the distance of one move command.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"`
}

// BreakoutBricks maps layout cells to playfield positions.
// Cell (row, col) sits at (Left + col*(Width+GapX), Top + row*(Height+GapY)).
type BreakoutBricks struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	GapX   float64 `yaml:"gap_x"`
	GapY   float64 `yaml:"gap_y"`
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
}

// BreakoutGameplay defines lives, scoring and time scaling.
type BreakoutGameplay struct {
	Lives       int     `yaml:"lives"`
	ScoreUnit   int     `yaml:"score_unit"`
	TimeScaleMs float64 `yaml:"time_scale_ms"` // ms of frame time per velocity unit
	Layout      string  `yaml:"layout"`        // built-in layout id
}

// BreakoutPowerUps defines power-up magnitudes and durations (milliseconds).
type BreakoutPowerUps struct {
	ExpandAmount   float64 `yaml:"expand_amount"`
	ExpandMs       float64 `yaml:"expand_ms"`
	SpeedBoostStep float64 `yaml:"speed_boost_step"`
	SpeedBoostMs   float64 `yaml:"speed_boost_ms"`
	FireBallMs     float64 `yaml:"fireball_ms"`
	MessageMs      float64 `yaml:"message_ms"`
}

// BreakoutTints holds palette names (see core.ParseColor).
// Hits is indexed by remaining hits minus one; the last entry covers the rest.
type BreakoutTints struct {
	Ball     string   `yaml:"ball"`
	FireBall string   `yaml:"fireball"`
	Paddle   string   `yaml:"paddle"`
	Bonus    string   `yaml:"bonus"`
	Hits     []string `yaml:"hits"`
}

// Validate replaces unusable values with defaults so every entity box
// keeps a positive size. It returns the names of the fields it replaced.
func (c *BreakoutConfig) Validate() []string {
	def := DefaultBreakoutConfig()
	var fixed []string

	fixF := func(name string, v *float64, d float64) {
		if *v <= 0 {
			*v = d
			fixed = append(fixed, name)
		}
	}
	// Bonus amounts may be zero but never negative.
	floor := func(name string, v *float64) {
		if *v < 0 {
			*v = 0
			fixed = append(fixed, name)
		}
	}
	fixI := func(name string, v *int, d int) {
		if *v <= 0 {
			*v = d
			fixed = append(fixed, name)
		}
	}

	fixF("playfield.width", &c.Playfield.Width, def.Playfield.Width)
	fixF("playfield.height", &c.Playfield.Height, def.Playfield.Height)
	fixF("ball.size", &c.Ball.Size, def.Ball.Size)
	fixF("ball.speed", &c.Ball.Speed, def.Ball.Speed)
	fixF("paddle.width", &c.Paddle.Width, def.Paddle.Width)
	fixF("paddle.height", &c.Paddle.Height, def.Paddle.Height)
	fixF("paddle.step", &c.Paddle.Step, def.Paddle.Step)
	fixF("bricks.width", &c.Bricks.Width, def.Bricks.Width)
	fixF("bricks.height", &c.Bricks.Height, def.Bricks.Height)
	fixI("gameplay.lives", &c.Gameplay.Lives, def.Gameplay.Lives)
	fixI("gameplay.score_unit", &c.Gameplay.ScoreUnit, def.Gameplay.ScoreUnit)
	fixF("gameplay.time_scale_ms", &c.Gameplay.TimeScaleMs, def.Gameplay.TimeScaleMs)
	fixF("powerups.expand_ms", &c.PowerUps.ExpandMs, def.PowerUps.ExpandMs)
	fixF("powerups.speed_boost_ms", &c.PowerUps.SpeedBoostMs, def.PowerUps.SpeedBoostMs)
	fixF("powerups.fireball_ms", &c.PowerUps.FireBallMs, def.PowerUps.FireBallMs)
	fixF("powerups.message_ms", &c.PowerUps.MessageMs, def.PowerUps.MessageMs)
	floor("powerups.expand_amount", &c.PowerUps.ExpandAmount)
	floor("powerups.speed_boost_step", &c.PowerUps.SpeedBoostStep)

	if c.Paddle.Width > c.Playfield.Width {
		c.Paddle.Width = c.Playfield.Width
		fixed = append(fixed, "paddle.width")
	}
	if c.Gameplay.Layout == "" {
		c.Gameplay.Layout = def.Gameplay.Layout
	}
	return fixed
}
