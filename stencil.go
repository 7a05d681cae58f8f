package emblem

import "image"

// Stencil is an immutable single-channel intensity+alpha image. The alpha
// channel defines a shape silhouette; the intensity channel may carry a
// separate brightness control signal (foreground layer 0). Two bytes per
// pixel, origin top-left.
//
// Stencils are the source of truth for shape and are never mutated after
// load, so concurrent reads from multiple renders are safe.
type Stencil struct {
	width  int
	height int
	data   []uint8 // intensity, alpha interleaved
}

// NewStencil creates an empty stencil (zero intensity, zero alpha).
func NewStencil(width, height int) *Stencil {
	return &Stencil{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*2),
	}
}

// NewStencilFromImage extracts the intensity and alpha channels from an
// image. Intensity is the straight (unpremultiplied) luma of the pixel;
// fully transparent pixels carry zero intensity.
func NewStencilFromImage(img image.Image) *Stencil {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	s := NewStencil(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 2
			if a == 0 {
				continue
			}
			// RGBA() is alpha-premultiplied; recover straight luma.
			lum := (299*r + 587*g + 114*b) / 1000
			lum = lum * 0xffff / a
			if lum > 0xffff {
				lum = 0xffff
			}
			// #nosec G115 -- safe: both shifts land in [0, 255]
			s.data[i] = uint8(lum >> 8)
			s.data[i+1] = uint8(a >> 8)
		}
	}

	return s
}

// Width returns the stencil width.
func (s *Stencil) Width() int { return s.width }

// Height returns the stencil height.
func (s *Stencil) Height() int { return s.height }

// Bounds returns the stencil dimensions as an image.Rectangle.
func (s *Stencil) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At returns the intensity and alpha at (x, y).
// Coordinates outside the stencil read as fully transparent.
func (s *Stencil) At(x, y int) (intensity, alpha uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, 0
	}
	i := (y*s.width + x) * 2
	return s.data[i], s.data[i+1]
}

// Set sets the intensity and alpha at (x, y).
// Intended for constructing test fixtures and programmatic shapes;
// stencils handed to Render must not be mutated afterwards.
func (s *Stencil) Set(x, y int, intensity, alpha uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 2
	s.data[i] = intensity
	s.data[i+1] = alpha
}

// Fill sets every pixel to the given intensity and alpha.
func (s *Stencil) Fill(intensity, alpha uint8) {
	for i := 0; i < len(s.data); i += 2 {
		s.data[i] = intensity
		s.data[i+1] = alpha
	}
}
