package engine

// Rules carries the tuning a session and its generator run under. The
// config package produces these from YAML; the engine itself never parses
// anything.
type Rules struct {
	InitialSeconds int // countdown start value
	PenaltySeconds int // time lost on a wrong answer

	BaseDelta         int // lightness delta at level 1
	ShrinkEveryLevels int // delta shrinks by 1 every N levels; 0 disables shrinking
	MinDelta          int // floor for the delta, keeps rounds solvable

	SaturationMin, SaturationMax int // random saturation range [min,max)
	LightnessMin, LightnessMax   int // random base lightness range [min,max)

	CelebrationScore int // final score must exceed this for the celebration

	Timed bool // false = zen mode: no countdown, no penalty
}

// DefaultRules returns the classic-mode tuning.
func DefaultRules() Rules {
	return Rules{
		InitialSeconds:    60,
		PenaltySeconds:    3,
		BaseDelta:         15,
		ShrinkEveryLevels: 4,
		MinDelta:          1,
		SaturationMin:     40,
		SaturationMax:     80,
		LightnessMin:      30,
		LightnessMax:      70,
		CelebrationScore:  20,
		Timed:             true,
	}
}

// DeltaFor returns the lightness delta used at the given level. The delta
// shrinks by 1 every ShrinkEveryLevels levels, floored at MinDelta, so the
// odd cell gets harder to see but never becomes indistinguishable.
func (r Rules) DeltaFor(level int) int {
	d := r.BaseDelta
	if r.ShrinkEveryLevels > 0 {
		d -= level / r.ShrinkEveryLevels
	}
	if d < r.MinDelta {
		d = r.MinDelta
	}
	return d
}
