package emblem

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit sRGB triple. Emblem slots are always fully opaque;
// transparency comes from stencil alpha, never from the color itself.
type Color struct {
	R, G, B uint8
}

// HexToRGB parses a "#rrggbb" hex string into a Color.
// Parsing is case-insensitive; short "#rgb" form is also accepted.
func HexToRGB(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("emblem: parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex formats the color as lowercase zero-padded "#rrggbb".
// Hex and HexToRGB are lossless inverses over the 24-bit RGB space.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Boost multiplies each channel by factor, rounding to nearest and
// clamping to [0, 255]. A factor of 1 is the identity.
func (c Color) Boost(factor float64) Color {
	if factor == 1 {
		return c
	}
	return Color{
		R: clampRound(float64(c.R) * factor),
		G: clampRound(float64(c.G) * factor),
		B: clampRound(float64(c.B) * factor),
	}
}

// distSq returns the squared Euclidean RGB distance between two colors.
func (c Color) distSq(o Color) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// clampRound converts a float channel value to uint8, rounding to
// nearest and clamping to [0, 255].
func clampRound(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
