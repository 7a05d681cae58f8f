package emblem

import (
	"math/rand"
	"testing"
)

func TestDefaultDesign(t *testing.T) {
	d := DefaultDesign()
	if d.Background != "" || d.Foreground != "" {
		t.Errorf("default design has shapes selected: %q/%q", d.Background, d.Foreground)
	}
	for _, slot := range []Slot{SlotBackground, SlotForeground1, SlotForeground2} {
		if !Default.Contains(d.Color(slot)) {
			t.Errorf("slot %d default color %v is not a palette member", slot, d.Color(slot))
		}
	}
	if d.BackgroundFlip != (FlipState{}) || d.ForegroundFlip != (FlipState{}) {
		t.Error("default design must have no flips set")
	}
}

func TestDesignSlotAccessors(t *testing.T) {
	d := DefaultDesign()

	tests := []struct {
		slot Slot
		c    Color
	}{
		{SlotBackground, Color{1, 2, 3}},
		{SlotForeground1, Color{4, 5, 6}},
		{SlotForeground2, Color{7, 8, 9}},
	}
	for _, tt := range tests {
		d.SetColor(tt.slot, tt.c)
	}
	for _, tt := range tests {
		if got := d.Color(tt.slot); got != tt.c {
			t.Errorf("Color(%d) = %v, want %v", tt.slot, got, tt.c)
		}
	}
	// Each slot owns exactly one color: the writes must not bleed.
	if d.BackgroundColor != (Color{1, 2, 3}) ||
		d.Foreground1Color != (Color{4, 5, 6}) ||
		d.Foreground2Color != (Color{7, 8, 9}) {
		t.Errorf("slot writes bled across fields: %+v", d)
	}
}

func TestRandomize(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	backgrounds := []string{"round", "shield", "banner"}
	foregrounds := []string{"dragon", "wolf"}

	for i := 0; i < 50; i++ {
		d := Randomize(rng, backgrounds, foregrounds)
		if !contains(backgrounds, d.Background) {
			t.Fatalf("random background %q not in candidate list", d.Background)
		}
		if !contains(foregrounds, d.Foreground) {
			t.Fatalf("random foreground %q not in candidate list", d.Foreground)
		}
		for _, slot := range []Slot{SlotBackground, SlotForeground1, SlotForeground2} {
			if !Default.Contains(d.Color(slot)) {
				t.Fatalf("random color %v is not a palette member", d.Color(slot))
			}
		}
	}
}

func TestRandomizeEmptyLists(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := Randomize(rng, nil, nil)
	if d.Background != "" || d.Foreground != "" {
		t.Errorf("empty id lists must leave shapes unselected, got %q/%q",
			d.Background, d.Foreground)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
