package emblem

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular RGBA8 pixel buffer with straight (non-premultiplied)
// alpha. It is the output type of Render and implements image.Image.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (RGBA order, straight alpha).
func (p *Pixmap) Data() []uint8 { return p.data }

// Pix returns the channel values of a single pixel.
// Out-of-bounds reads return transparent black.
func (p *Pixmap) Pix(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]
}

// SetPix sets the channel values of a single pixel.
// Out-of-bounds writes are ignored.
func (p *Pixmap) SetPix(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.Pix(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
