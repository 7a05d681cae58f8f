package emblem

import (
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.SetPix(2, 1, 10, 20, 30, 40)

	if r, g, b, a := pm.Pix(2, 1); r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("Pix(2,1) = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}
	if r, g, b, a := pm.Pix(0, 0); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("Pix(0,0) = (%d,%d,%d,%d), want transparent", r, g, b, a)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPix(-1, 0, 255, 255, 255, 255)
	pm.SetPix(2, 2, 255, 255, 255, 255)
	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("out-of-bounds SetPix wrote into the buffer")
		}
	}
	if r, g, b, a := pm.Pix(-1, 5); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("out-of-bounds Pix = (%d,%d,%d,%d), want transparent", r, g, b, a)
	}
}

func TestPixmapToImage(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPix(1, 0, 61, 9, 5, 255)

	img := pm.ToImage()
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{R: 61, G: 9, B: 5, A: 255}) {
		t.Errorf("NRGBAAt(1,0) = %v, want (61,9,5,255)", got)
	}
	if got := img.NRGBAAt(0, 1); got != (color.NRGBA{}) {
		t.Errorf("NRGBAAt(0,1) = %v, want zero", got)
	}
}

func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPix(0, 0, 1, 2, 3, 4)

	if pm.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", pm.Bounds())
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() must be NRGBA (straight alpha)")
	}
	if got := pm.At(0, 0); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("At(0,0) = %v", got)
	}
}
