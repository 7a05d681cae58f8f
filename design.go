package emblem

import "math/rand"

// Slot identifies one of the three colorable regions of an emblem.
type Slot uint8

const (
	// SlotBackground colors the single background shape mask.
	SlotBackground Slot = iota
	// SlotForeground1 colors foreground layer 1.
	SlotForeground1
	// SlotForeground2 colors foreground layer 2.
	SlotForeground2
)

// FlipState mirrors stencil sampling within one compositing group.
// Flips are purely geometric; they never alter color values.
type FlipState struct {
	Horizontal bool
	Vertical   bool
}

// EmblemDesign is the complete configuration of one emblem: shape ids,
// slot colors, and per-group flip flags. It is the unit consumed by
// Render and serialized by Encode/Decode. A design is always a plain
// value; callers pass it explicitly rather than sharing mutable state.
type EmblemDesign struct {
	Background string
	Foreground string

	BackgroundColor  Color
	Foreground1Color Color
	Foreground2Color Color

	BackgroundFlip FlipState
	ForegroundFlip FlipState
}

// DefaultDesign returns a design with no shapes selected and each slot
// holding the first palette color. Decode hydrates on top of this when
// no prior design exists.
func DefaultDesign() EmblemDesign {
	return EmblemDesign{
		BackgroundColor:  Default[0],
		Foreground1Color: Default[0],
		Foreground2Color: Default[0],
	}
}

// Color returns the color held by the given slot.
func (d EmblemDesign) Color(slot Slot) Color {
	switch slot {
	case SlotForeground1:
		return d.Foreground1Color
	case SlotForeground2:
		return d.Foreground2Color
	default:
		return d.BackgroundColor
	}
}

// SetColor assigns a color to the given slot.
func (d *EmblemDesign) SetColor(slot Slot, c Color) {
	switch slot {
	case SlotForeground1:
		d.Foreground1Color = c
	case SlotForeground2:
		d.Foreground2Color = c
	default:
		d.BackgroundColor = c
	}
}

// Randomize returns a design with shapes drawn from the given id lists
// and palette colors for every slot. Flips stay unset. Empty id lists
// leave the corresponding shape unselected.
func Randomize(rng *rand.Rand, backgrounds, foregrounds []string) EmblemDesign {
	d := DefaultDesign()
	if len(backgrounds) > 0 {
		d.Background = backgrounds[rng.Intn(len(backgrounds))]
	}
	if len(foregrounds) > 0 {
		d.Foreground = foregrounds[rng.Intn(len(foregrounds))]
	}
	d.BackgroundColor = Default.Random(rng)
	d.Foreground1Color = Default.Random(rng)
	d.Foreground2Color = Default.Random(rng)
	return d
}
