// Package blend implements the alpha compositing math used by the emblem
// renderer. Colors enter and leave in straight (non-premultiplied) form,
// matching the tint semantics of stencil layers; premultiplication happens
// internally per operation.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, exact for all uint16 values and
// ~3x faster than integer division. Exactness matters here: a tinted
// layer at full mask alpha must survive compositing bit-for-bit.
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 exactly.
func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint16(a) * uint16(b)))
}

// OverStraight composites source over destination, both in straight alpha.
//
// The operands are premultiplied, combined with the Porter-Duff source-over
// operator (S + D*(1-Sa)), and the result is unpremultiplied again. A fully
// opaque source replaces the destination exactly; a fully transparent
// source leaves it untouched.
func OverStraight(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if sa == 255 || da == 0 {
		return sr, sg, sb, sa
	}

	inv := 255 - sa

	// Premultiplied source-over.
	pr := uint16(mulDiv255(sr, sa)) + uint16(mulDiv255(mulDiv255(dr, da), inv))
	pg := uint16(mulDiv255(sg, sa)) + uint16(mulDiv255(mulDiv255(dg, da), inv))
	pb := uint16(mulDiv255(sb, sa)) + uint16(mulDiv255(mulDiv255(db, da), inv))
	pa := uint16(sa) + uint16(mulDiv255(da, inv))

	if pa == 0 {
		return 0, 0, 0, 0
	}

	// Back to straight alpha.
	r = clamp255(pr * 255 / pa)
	g = clamp255(pg * 255 / pa)
	b = clamp255(pb * 255 / pa)
	a = uint8(pa)
	return r, g, b, a
}

// clamp255 clamps a uint16 to byte range [0, 255].
func clamp255(x uint16) uint8 {
	if x > 255 {
		return 255
	}
	return uint8(x)
}
