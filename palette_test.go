package emblem

import (
	"math/rand"
	"testing"
)

func TestDefaultPaletteShape(t *testing.T) {
	if len(Default) != 31 {
		t.Fatalf("palette has %d entries, want 31", len(Default))
	}
	seen := make(map[Color]bool, len(Default))
	for i, c := range Default {
		if seen[c] {
			t.Errorf("duplicate palette entry %v at index %d", c, i)
		}
		seen[c] = true
	}
}

func TestPaletteIndexExactMatchOnly(t *testing.T) {
	c := Default[5]
	if got := Default.Index(c); got != 5 {
		t.Errorf("Index(%v) = %d, want 5", c, got)
	}
	// One channel off by one is not a member, however close.
	off := Color{R: c.R + 1, G: c.G, B: c.B}
	if Default.Contains(off) {
		t.Errorf("Contains(%v) = true for near-miss of %v", off, c)
	}
	if got := Default.Index(off); got != -1 {
		t.Errorf("Index(%v) = %d, want -1", off, got)
	}
}

func TestPaletteSnap(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Color
	}{
		{name: "pure red", c: Color{0xff, 0x00, 0x00}, want: Color{0xb4, 0x21, 0x17}},
		{name: "member snaps to itself", c: Default[12], want: Default[12]},
		{name: "near black", c: Color{0x10, 0x11, 0x12}, want: Color{0x1a, 0x1a, 0x1a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Default.Snap(tt.c); got != tt.want {
				t.Errorf("Snap(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestPaletteSnapTieBreak(t *testing.T) {
	// Both entries sit at squared distance 50 from the probe; the
	// earlier one must win.
	p := Palette{{10, 0, 0}, {0, 10, 0}}
	probe := Color{5, 5, 0}
	if got := p.Snap(probe); got != p[0] {
		t.Errorf("Snap(%v) = %v, want first entry %v", probe, got, p[0])
	}

	// Same distances with the entries swapped: still the first entry.
	q := Palette{p[1], p[0]}
	if got := q.Snap(probe); got != q[0] {
		t.Errorf("Snap(%v) = %v, want first entry %v", probe, got, q[0])
	}
}

func TestPaletteSnapEmpty(t *testing.T) {
	c := Color{1, 2, 3}
	if got := Palette(nil).Snap(c); got != c {
		t.Errorf("Snap on empty palette = %v, want %v unchanged", got, c)
	}
}

func TestPaletteRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if c := Default.Random(rng); !Default.Contains(c) {
			t.Fatalf("Random() = %v, not a palette member", c)
		}
	}
}
