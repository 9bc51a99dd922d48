package config

import (
	_ "embed"
)

//go:embed defaults/paddle.yaml
var defaultPaddleYAML []byte

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultPaddleConfig returns the default Paddle configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultPaddleConfig() PaddleConfig {
	return PaddleConfig{
		Paddle: PaddleSettings{
			Height: 5,
			Width:  1,
			Offset: 2,
			Speed:  1.0,
		},
		Ball: BallSettings{
			SpeedX: 0.5,
			SpeedY: 0.25,
		},
		WinScore: 5,
		CPUSkill: 0.7,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 8},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.6},
		},
	}
}

// DefaultDodgeConfig returns the default Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Player: DodgePlayer{
			Width:  3,
			Height: 2,
			Speed:  0.8,
		},
		Debris: DodgeDebris{
			MinWidth:   2,
			MaxWidth:   6,
			Speed:      0.4,
			SpawnEvery: 30,
		},
		Dash: DodgeDash{
			Ticks:      12,
			Multiplier: 2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 5400},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 18},
		},
	}
}
