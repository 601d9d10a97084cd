package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hard-coded Breakout configuration.
// It mirrors defaults/breakout.yaml and is the fallback if the embed fails.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: BreakoutPlayfield{
			Width:  300,
			Height: 400,
		},
		Ball: BreakoutBall{
			Size:  10,
			Speed: 150,
		},
		Paddle: BreakoutPaddle{
			Width:  100,
			Height: 10,
			Step:   10,
		},
		Bricks: BreakoutBricks{
			Width:  20,
			Height: 10,
			GapX:   10,
			GapY:   10,
			Top:    30,
			Left:   0,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			ScoreUnit:   1,
			TimeScaleMs: 500,
			Layout:      "classic",
		},
		PowerUps: BreakoutPowerUps{
			ExpandAmount:   50,
			ExpandMs:       10000,
			SpeedBoostStep: 20,
			SpeedBoostMs:   10000,
			FireBallMs:     5000,
			MessageMs:      2000,
		},
		Tints: BreakoutTints{
			Ball:     "white",
			FireBall: "bright-red",
			Paddle:   "white",
			Bonus:    "bright-cyan",
			Hits:     []string{"white", "orange", "red"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
