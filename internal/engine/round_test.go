package engine

import (
	"math/rand"
	"testing"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), DefaultRules())
}

func TestDeltaCurve(t *testing.T) {
	rules := DefaultRules()

	// delta = max(1, 15 - level/4) for the default rules
	for level := 1; level <= 200; level++ {
		want := 15 - level/4
		if want < 1 {
			want = 1
		}
		if got := rules.DeltaFor(level); got != want {
			t.Fatalf("DeltaFor(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestDeltaCurveBoundaries(t *testing.T) {
	rules := DefaultRules()

	cases := []struct{ level, want int }{
		{1, 15},
		{2, 15}, // first correct answer: floor(2/4)=0, delta still 15
		{3, 15},
		{4, 14},
		{7, 14},
		{8, 13},
		{56, 1},
		{100, 1}, // floored at MinDelta, never reaches zero
	}
	for _, c := range cases {
		if got := rules.DeltaFor(c.level); got != c.want {
			t.Errorf("DeltaFor(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestDeltaFixedWhenShrinkDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.ShrinkEveryLevels = 0

	for _, level := range []int{1, 10, 100} {
		if got := rules.DeltaFor(level); got != rules.BaseDelta {
			t.Errorf("with shrinking disabled, DeltaFor(%d) = %d, want %d",
				level, got, rules.BaseDelta)
		}
	}
}

func TestGridSizeBreakpoints(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 2}, {2, 2},
		{3, 3}, {6, 3},
		{7, 4}, {12, 4},
		{13, 5}, {20, 5},
		{21, 6}, {30, 6},
		{31, 7}, {45, 7},
		{46, 8}, {48, 8}, {1000, 8},
	}
	for _, c := range cases {
		if got := GridSizeFor(c.level); got != c.want {
			t.Errorf("GridSizeFor(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestGenerateRoundShape(t *testing.T) {
	gen := newTestGenerator(1)
	rules := DefaultRules()

	for level := 1; level <= 60; level++ {
		r := gen.Generate(level)

		if r.GridSize != GridSizeFor(level) {
			t.Fatalf("level %d: grid %d, want %d", level, r.GridSize, GridSizeFor(level))
		}
		if r.DiffIndex < 0 || r.DiffIndex >= r.Cells() {
			t.Fatalf("level %d: DiffIndex %d outside [0,%d)", level, r.DiffIndex, r.Cells())
		}
		if r.Delta != rules.DeltaFor(level) {
			t.Fatalf("level %d: delta %d, want %d", level, r.Delta, rules.DeltaFor(level))
		}

		// Base and odd color differ only in lightness, by exactly delta
		if r.Diff.H != r.Base.H || r.Diff.S != r.Base.S {
			t.Fatalf("level %d: hue/saturation must match: %v vs %v", level, r.Base, r.Diff)
		}
		got := r.Diff.L - r.Base.L
		if got != r.Delta && got != -r.Delta {
			t.Fatalf("level %d: lightness offset %d, want ±%d", level, got, r.Delta)
		}
	}
}

func TestGenerateColorRanges(t *testing.T) {
	gen := newTestGenerator(7)

	for i := 0; i < 500; i++ {
		r := gen.Generate(1 + i%60)

		if r.Base.H < 0 || r.Base.H >= 360 {
			t.Fatalf("hue %d outside [0,360)", r.Base.H)
		}
		if r.Base.S < 40 || r.Base.S >= 80 {
			t.Fatalf("saturation %d outside [40,80)", r.Base.S)
		}
		if r.Base.L < 30 || r.Base.L >= 70 {
			t.Fatalf("base lightness %d outside [30,70)", r.Base.L)
		}
		// No clamp is applied, so the ranges themselves must keep the
		// odd color's lightness legal.
		if r.Diff.L < 0 || r.Diff.L > 100 {
			t.Fatalf("odd lightness %d outside [0,100]", r.Diff.L)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	g1 := newTestGenerator(12345)
	g2 := newTestGenerator(12345)

	for level := 1; level <= 50; level++ {
		r1 := g1.Generate(level)
		r2 := g2.Generate(level)
		if r1 != r2 {
			t.Fatalf("level %d: same seed produced different rounds: %+v vs %+v", level, r1, r2)
		}
	}
}

func TestColorHex(t *testing.T) {
	cases := []struct {
		c    Color
		want string
	}{
		{Color{H: 0, S: 0, L: 0}, "#000000"},
		{Color{H: 0, S: 0, L: 100}, "#ffffff"},
		{Color{H: 0, S: 100, L: 50}, "#ff0000"},
		{Color{H: 120, S: 100, L: 50}, "#00ff00"},
		{Color{H: 240, S: 100, L: 50}, "#0000ff"},
	}
	for _, c := range cases {
		if got := c.c.Hex(); got != c.want {
			t.Errorf("%v.Hex() = %s, want %s", c.c, got, c.want)
		}
	}
}
