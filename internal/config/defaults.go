package config

import (
	_ "embed"
)

//go:embed defaults/oddhue.yaml
var defaultYAML []byte

// DefaultConfig returns the default game configuration. It mirrors
// defaults/oddhue.yaml and serves as the last-resort fallback if the
// embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			InitialSeconds:      60,
			WrongPenaltySeconds: 3,
		},
		Difficulty: DifficultyConfig{
			BaseDelta:         15,
			ShrinkEveryLevels: 4,
			MinDelta:          1,
		},
		Color: ColorConfig{
			SaturationMin: 40,
			SaturationMax: 80,
			LightnessMin:  30,
			LightnessMax:  70,
		},
		Celebration: CelebrationConfig{
			MinScore: 20,
		},
	}
}
