package emblem

import "math/rand"

// Palette is an ordered, closed set of allowed slot colors.
// Membership is by exact RGB match; Snap maps arbitrary colors onto the
// nearest member.
type Palette []Color

// Default is the emblem color palette. The order is significant: Snap
// breaks distance ties in favor of the earlier entry, and the picker UI
// enumerates swatches in this order.
var Default = Palette{
	{0x3d, 0x09, 0x05}, // dark red
	{0x7a, 0x1b, 0x10},
	{0xb4, 0x21, 0x17}, // bright red
	{0x7a, 0x3b, 0x10}, // dark orange
	{0xb4, 0x62, 0x1c},
	{0xe0, 0x8a, 0x2d}, // bright orange
	{0x7a, 0x6a, 0x10}, // dark yellow
	{0xb4, 0x9e, 0x1c}, // gold
	{0x0f, 0x3d, 0x0a}, // dark green
	{0x1f, 0x7a, 0x17},
	{0x2d, 0xb4, 0x23},
	{0x57, 0xe0, 0x3c}, // bright green
	{0x0a, 0x3d, 0x33}, // dark teal
	{0x17, 0x7a, 0x68},
	{0x23, 0xb4, 0x9b}, // bright teal
	{0x0a, 0x1c, 0x3d}, // dark blue
	{0x17, 0x38, 0x7a},
	{0x23, 0x56, 0xb4},
	{0x3c, 0x7e, 0xe0}, // bright blue
	{0x2a, 0x0a, 0x3d}, // dark purple
	{0x55, 0x17, 0x7a},
	{0x7f, 0x23, 0xb4},
	{0xa9, 0x3c, 0xe0}, // bright purple
	{0x7a, 0x10, 0x55}, // dark magenta
	{0xb4, 0x1c, 0x80}, // magenta
	{0x3d, 0x2a, 0x0a}, // dark brown
	{0x7a, 0x55, 0x17}, // brown
	{0x1a, 0x1a, 0x1a}, // near black
	{0x55, 0x55, 0x55}, // dark gray
	{0x99, 0x99, 0x99}, // light gray
	{0xe0, 0xe0, 0xe0}, // near white
}

// Index returns the position of c in the palette, or -1 if c is not an
// exact member. Exact match is the contract for "current color"
// highlighting; perceptual closeness does not count.
func (p Palette) Index(c Color) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is an exact member of the palette.
func (p Palette) Contains(c Color) bool {
	return p.Index(c) >= 0
}

// Snap returns the palette entry nearest to c by squared Euclidean RGB
// distance. Ties break toward the earlier entry. Snap on an empty
// palette returns c unchanged.
func (p Palette) Snap(c Color) Color {
	if len(p) == 0 {
		return c
	}
	best := p[0]
	bestD := c.distSq(p[0])
	for _, pc := range p[1:] {
		if d := c.distSq(pc); d < bestD {
			best = pc
			bestD = d
		}
	}
	return best
}

// Random returns a uniformly chosen palette entry.
func (p Palette) Random(rng *rand.Rand) Color {
	return p[rng.Intn(len(p))]
}
