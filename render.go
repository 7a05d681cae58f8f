package emblem

import (
	"errors"
	"fmt"
	"math"

	"github.com/guildforge/emblem/internal/blend"
)

// ErrInvalidSize is returned by Render for a non-positive output size.
var ErrInvalidSize = errors.New("emblem: render size must be positive")

// Foreground stencil sets carry their layers in a fixed order. This is a
// contract of the asset source and must not be reordered.
const (
	// LayerBrightness is the non-visible intensity control channel.
	LayerBrightness = 0
	// LayerShape1 is the mask tinted with the Foreground1 color.
	LayerShape1 = 1
	// LayerShape2 is the mask tinted with the Foreground2 color.
	LayerShape2 = 2
)

// Assets resolves shape identifiers to their stencil sets. Implementations
// must return stencils whose dimensions match the requested render size;
// the asset package resamples on load to guarantee this.
//
// Missing shapes and missing layers are reported as nil, never as errors:
// absence is valid input to the renderer.
type Assets interface {
	// Background returns the single background mask for id, or nil.
	Background(id string) *Stencil
	// Foreground returns up to three layers for id in fixed order
	// (LayerBrightness, LayerShape1, LayerShape2). Entries may be nil
	// and the slice may be shorter than three.
	Foreground(id string) []*Stencil
}

// BrightnessParams controls the foreground brightness-modulation pass.
// The control channel (foreground layer 0) is normalized against its own
// maximum, curved by Gamma, and turned into a per-pixel multiplier:
//
//	factor = Lift + (1-Lift) * (1 - (1-curved)*Strength)
//
// ColorBoost pre-brightens the foreground slot colors before tinting so
// the modulation has headroom to dim them.
type BrightnessParams struct {
	Strength   float64 // [0, 2]; 0 disables dimming entirely
	Gamma      float64 // (0.1, 3) typical; < 1 lifts midtones
	Lift       float64 // [0, 1]; floor of the multiplier
	ColorBoost float64 // [0.5, 3]; 1 means no boost
}

// DefaultBrightness returns the stock modulation parameters used by the
// in-game renderer.
func DefaultBrightness() BrightnessParams {
	return BrightnessParams{
		Strength:   1.0,
		Gamma:      0.7,
		Lift:       0.0,
		ColorBoost: 1.35,
	}
}

// RenderOption configures a single Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	brightness        BrightnessParams
	brightnessEnabled bool
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		brightness:        DefaultBrightness(),
		brightnessEnabled: true,
	}
}

// WithBrightness overrides the brightness-modulation parameters.
func WithBrightness(p BrightnessParams) RenderOption {
	return func(c *renderConfig) {
		c.brightness = p
	}
}

// WithBrightnessDisabled skips the modulation pass entirely, producing
// the flat mask-overlay rendering. The control layer, if present, is
// ignored. ColorBoost still applies.
func WithBrightnessDisabled() RenderOption {
	return func(c *renderConfig) {
		c.brightnessEnabled = false
	}
}

// Render composites a design into a size×size RGBA pixel buffer.
//
// The background mask is tinted with the background color and laid down
// first; the foreground layers are tinted with (boosted) slot colors,
// optionally brightness-modulated through the control channel, and
// composited on top with alpha-over. Absent shapes or layers simply
// contribute nothing; a design with no shapes yields a fully transparent
// buffer.
//
// Render is pure: it never mutates its inputs and allocates a fresh
// output buffer per call.
func Render(design EmblemDesign, assets Assets, size int, opts ...RenderOption) (*Pixmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := NewPixmap(size, size)

	if assets == nil {
		return out, nil
	}

	log := Logger()

	if design.Background != "" {
		if st := assets.Background(design.Background); st != nil {
			tintOver(out, st, design.BackgroundColor, design.BackgroundFlip)
			log.Debug("background pass", "shape", design.Background, "size", size)
		}
	}

	if design.Foreground != "" {
		layers := assets.Foreground(design.Foreground)
		renderForeground(out, layers, design, cfg, size)
	}

	return out, nil
}

// renderForeground builds the foreground working buffer, runs the optional
// modulation pass, and composites the result onto dst.
func renderForeground(dst *Pixmap, layers []*Stencil, design EmblemDesign, cfg renderConfig, size int) {
	layer := func(i int) *Stencil {
		if i < len(layers) {
			return layers[i]
		}
		return nil
	}
	control := layer(LayerBrightness)
	shape1 := layer(LayerShape1)
	shape2 := layer(LayerShape2)

	if control == nil && shape1 == nil && shape2 == nil {
		return
	}

	work := NewPixmap(size, size)
	boost := cfg.brightness.ColorBoost
	if shape1 != nil {
		tintOver(work, shape1, design.Foreground1Color.Boost(boost), design.ForegroundFlip)
	}
	if shape2 != nil {
		tintOver(work, shape2, design.Foreground2Color.Boost(boost), design.ForegroundFlip)
	}

	if control != nil && cfg.brightnessEnabled {
		modulate(work, control, design.ForegroundFlip, cfg.brightness)
	}

	Logger().Debug("foreground pass",
		"shape", design.Foreground,
		"layers", len(layers),
		"modulated", control != nil && cfg.brightnessEnabled)

	dst.over(work)
}

// sample returns the stencil coordinates for buffer position (x, y) under
// the given flip state, mirroring about the buffer center.
func sample(x, y, w, h int, flip FlipState) (sx, sy int) {
	sx, sy = x, y
	if flip.Horizontal {
		sx = w - 1 - x
	}
	if flip.Vertical {
		sy = h - 1 - y
	}
	return sx, sy
}

// tintOver composites a tinted copy of the stencil onto dst: output RGB is
// the flat tint color, output alpha is the stencil's own alpha sampled
// through the flip transform. This is masking, not blending — the color
// replaces whatever the mask covers.
func tintOver(dst *Pixmap, st *Stencil, c Color, flip FlipState) {
	w, h := dst.Width(), dst.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := sample(x, y, w, h, flip)
			_, a := st.At(sx, sy)
			if a == 0 {
				continue
			}
			dr, dg, db, da := dst.Pix(x, y)
			r, g, b, oa := blend.OverStraight(c.R, c.G, c.B, a, dr, dg, db, da)
			dst.SetPix(x, y, r, g, b, oa)
		}
	}
}

// modulate runs the brightness pass over the working buffer in place.
// The control stencil is sampled through the same flip transform as the
// visible layers so it stays registered with them. Only pixels covered by
// both the control channel and the working buffer are touched.
func modulate(work *Pixmap, control *Stencil, flip FlipState, p BrightnessParams) {
	w, h := work.Width(), work.Height()

	// Normalize against the brightest covered control pixel. With no
	// coverage at all the divisor stays 255 and the loop below never
	// fires, so the pass is a no-op.
	maxIntensity := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := sample(x, y, w, h, flip)
			i, a := control.At(sx, sy)
			if a > 0 && int(i) > maxIntensity {
				maxIntensity = int(i)
			}
		}
	}
	if maxIntensity == 0 {
		maxIntensity = 255
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := sample(x, y, w, h, flip)
			i, a := control.At(sx, sy)
			if a == 0 {
				continue
			}
			r, g, b, wa := work.Pix(x, y)
			if wa == 0 {
				continue
			}

			raw := float64(i) / float64(maxIntensity)
			if raw > 1 {
				raw = 1
			}
			curved := math.Pow(raw, p.Gamma)
			factor := p.Lift + (1-p.Lift)*(1-(1-curved)*p.Strength)

			work.SetPix(x, y,
				clampRound(float64(r)*factor),
				clampRound(float64(g)*factor),
				clampRound(float64(b)*factor),
				wa)
		}
	}
}

// over composites src onto p with standard alpha-over. Both pixmaps must
// share dimensions.
func (p *Pixmap) over(src *Pixmap) {
	w, h := p.Width(), p.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sr, sg, sb, sa := src.Pix(x, y)
			if sa == 0 {
				continue
			}
			dr, dg, db, da := p.Pix(x, y)
			r, g, b, a := blend.OverStraight(sr, sg, sb, sa, dr, dg, db, da)
			p.SetPix(x, y, r, g, b, a)
		}
	}
}
