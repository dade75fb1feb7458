// Package engine contains the pure game logic for oddhue: round generation
// and the session state machine. It has no knowledge of terminals, timers,
// or input devices; the platform layer drives it through Start, Select and
// Tick and renders its snapshots.
package engine

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable HSL triple. Hue is in degrees [0,360); saturation
// and lightness are percentages [0,100]. HSL is the game's native space
// because a round is defined by a pure lightness offset between two colors
// that share hue and saturation.
type Color struct {
	H int // hue in degrees
	S int // saturation percent
	L int // lightness percent
}

// Hex returns the sRGB hex form ("#rrggbb") for terminal rendering.
func (c Color) Hex() string {
	return colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100).Hex()
}

// WithLightness returns a copy of the color with lightness set to l.
func (c Color) WithLightness(l int) Color {
	c.L = l
	return c
}

// String returns the CSS-style HSL form, used in logs and end-of-game text.
func (c Color) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}
