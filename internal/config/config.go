// Package config provides YAML-based game tuning and difficulty presets
// for oddhue.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Session     SessionConfig     `yaml:"session"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Color       ColorConfig       `yaml:"color"`
	Celebration CelebrationConfig `yaml:"celebration"`
}

// SessionConfig defines clock behavior.
type SessionConfig struct {
	InitialSeconds      int `yaml:"initial_seconds"`
	WrongPenaltySeconds int `yaml:"wrong_penalty_seconds"`
}

// DifficultyConfig defines how the lightness delta shrinks with level.
type DifficultyConfig struct {
	BaseDelta         int `yaml:"base_delta"`
	ShrinkEveryLevels int `yaml:"shrink_every_levels"` // 0 disables shrinking
	MinDelta          int `yaml:"min_delta"`
}

// ColorConfig defines the random ranges colors are drawn from.
// Ranges are half-open: [min, max).
type ColorConfig struct {
	SaturationMin int `yaml:"saturation_min"`
	SaturationMax int `yaml:"saturation_max"`
	LightnessMin  int `yaml:"lightness_min"`
	LightnessMax  int `yaml:"lightness_max"`
}

// CelebrationConfig defines the end-of-game celebration trigger.
type CelebrationConfig struct {
	MinScore int `yaml:"min_score"` // final score must exceed this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a string to a DifficultyPreset.
// Returns false for empty or unrecognized strings.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyPreset modifies the difficulty section based on a preset.
// Easy starts with a bigger delta and shrinks it more slowly; hard does
// the opposite; fixed disables shrinking entirely.
//
// Raising the delta can invalidate a lightness range that was safe for
// the file's own delta, so the config is re-normalized afterwards.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.BaseDelta = 18
		cfg.Difficulty.ShrinkEveryLevels = 5
	case DifficultyNormal:
		cfg.Difficulty.BaseDelta = 15
		cfg.Difficulty.ShrinkEveryLevels = 4
	case DifficultyHard:
		cfg.Difficulty.BaseDelta = 12
		cfg.Difficulty.ShrinkEveryLevels = 3
	case DifficultyFixed:
		cfg.Difficulty.ShrinkEveryLevels = 0
	}
	cfg.normalize()
}

// normalize replaces values the engine cannot run with (zero or inverted
// ranges, non-positive clocks) with defaults. Partial YAML files are
// expected; anything unset gets the default.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.Session.InitialSeconds <= 0 {
		c.Session.InitialSeconds = def.Session.InitialSeconds
	}
	if c.Session.WrongPenaltySeconds <= 0 {
		c.Session.WrongPenaltySeconds = def.Session.WrongPenaltySeconds
	}
	if c.Difficulty.BaseDelta <= 0 {
		c.Difficulty.BaseDelta = def.Difficulty.BaseDelta
	}
	if c.Difficulty.ShrinkEveryLevels < 0 {
		c.Difficulty.ShrinkEveryLevels = def.Difficulty.ShrinkEveryLevels
	}
	if c.Difficulty.MinDelta <= 0 {
		c.Difficulty.MinDelta = def.Difficulty.MinDelta
	}
	if c.Color.SaturationMax <= c.Color.SaturationMin {
		c.Color = def.Color
	}
	if c.Color.LightnessMax <= c.Color.LightnessMin {
		c.Color.LightnessMin = def.Color.LightnessMin
		c.Color.LightnessMax = def.Color.LightnessMax
	}
	// The generator applies the delta without clamping, so the lightness
	// range plus the largest possible delta must stay inside [0,100].
	// Reset the range first; drop the delta too only if that was not
	// enough, so presets can keep their delta against the default range.
	if c.Color.LightnessMin-c.Difficulty.BaseDelta < 0 ||
		c.Color.LightnessMax+c.Difficulty.BaseDelta > 100 {
		c.Color.LightnessMin = def.Color.LightnessMin
		c.Color.LightnessMax = def.Color.LightnessMax
	}
	if c.Color.LightnessMin-c.Difficulty.BaseDelta < 0 ||
		c.Color.LightnessMax+c.Difficulty.BaseDelta > 100 {
		c.Difficulty.BaseDelta = def.Difficulty.BaseDelta
	}
	if c.Celebration.MinScore <= 0 {
		c.Celebration.MinScore = def.Celebration.MinScore
	}
}
