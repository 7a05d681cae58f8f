package emblem

import "errors"

// ErrNoColor is returned by ColorSource implementations when the external
// source has no usable color data for a reference. Resolution treats it
// (and any other source error) as non-fatal.
var ErrNoColor = errors.New("emblem: color source returned no usable color")

// ColorSource resolves an opaque external color reference (for example a
// guild's registered color id) to an RGB triple. Implementations live
// outside the core; network fetch and caching are their concern.
type ColorSource interface {
	Resolve(ref string) (Color, error)
}

// ResolvePolicy selects how an externally resolved color enters a slot.
// The source system exhibits both behaviors in different flows; an
// application must pick one explicitly.
type ResolvePolicy uint8

const (
	// SnapToPalette replaces the resolved color with the nearest palette
	// entry, keeping slots a closed set. This is the default policy.
	SnapToPalette ResolvePolicy = iota
	// DirectColor applies the resolved triple as-is, allowing off-palette
	// colors into slots.
	DirectColor
)

// ResolveExternalColor fetches ref from src and normalizes it per policy.
//
// Resolution failure is never fatal to a design: if src is nil, errors,
// or has nothing for ref, the slot's prior color is returned unchanged
// and a warning is logged.
func ResolveExternalColor(src ColorSource, ref string, policy ResolvePolicy, prior Color) Color {
	if src == nil {
		return prior
	}
	c, err := src.Resolve(ref)
	if err != nil {
		Logger().Warn("color resolution failed, keeping prior color",
			"ref", ref, "error", err)
		return prior
	}
	if policy == SnapToPalette {
		return Default.Snap(c)
	}
	return c
}
