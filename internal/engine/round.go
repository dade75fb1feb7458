package engine

import "math/rand"

// Round is one instance of the puzzle: a GridSize×GridSize board of Base-
// colored cells with a single Diff-colored cell at DiffIndex. Rounds are
// immutable once generated.
type Round struct {
	Base      Color
	Diff      Color
	GridSize  int
	DiffIndex int // row-major index of the odd cell, in [0, GridSize²)
	Delta     int // absolute lightness difference, kept for post-game display
}

// Cells returns the number of cells on the board.
func (r Round) Cells() int {
	return r.GridSize * r.GridSize
}

// gridBreakpoints maps the lowest level (inclusive) to a grid size.
// Checked top-down, so the order must stay descending.
var gridBreakpoints = []struct {
	minLevel int
	size     int
}{
	{46, 8},
	{31, 7},
	{21, 6},
	{13, 5},
	{7, 4},
	{3, 3},
	{1, 2},
}

// GridSizeFor returns the board dimension for a 1-indexed level.
func GridSizeFor(level int) int {
	for _, bp := range gridBreakpoints {
		if level >= bp.minLevel {
			return bp.size
		}
	}
	return 2
}

// Generator derives rounds from a level number. The randomness source is
// injected so tests can reproduce exact rounds; the difficulty policy
// itself (delta curve, grid breakpoints) is deterministic.
type Generator struct {
	rng   *rand.Rand
	rules Rules
}

// NewGenerator creates a generator using the given random source and rules.
func NewGenerator(rng *rand.Rand, rules Rules) *Generator {
	return &Generator{rng: rng, rules: rules}
}

// Generate produces the round for a level. It never fails.
//
// Base and odd color share hue and saturation; only lightness differs, by
// DeltaFor(level), randomly lighter or darker. With base lightness drawn
// from [LightnessMin, LightnessMax) and the delta capped at BaseDelta, the
// odd color's lightness stays within [0,100] for any sane rules, so no
// clamp is applied.
func (g *Generator) Generate(level int) Round {
	r := g.rules

	base := Color{
		H: g.rng.Intn(360),
		S: r.SaturationMin + g.rng.Intn(r.SaturationMax-r.SaturationMin),
		L: r.LightnessMin + g.rng.Intn(r.LightnessMax-r.LightnessMin),
	}

	delta := r.DeltaFor(level)
	diffL := base.L + delta
	if g.rng.Intn(2) == 0 {
		diffL = base.L - delta
	}

	size := GridSizeFor(level)

	return Round{
		Base:      base,
		Diff:      base.WithLightness(diffL),
		GridSize:  size,
		DiffIndex: g.rng.Intn(size * size),
		Delta:     delta,
	}
}
