package emblem

import (
	"errors"
	"testing"
)

// sourceFunc adapts a function to the ColorSource interface.
type sourceFunc func(ref string) (Color, error)

func (f sourceFunc) Resolve(ref string) (Color, error) { return f(ref) }

func TestResolveExternalColorSnap(t *testing.T) {
	src := sourceFunc(func(string) (Color, error) {
		return Color{0xff, 0x00, 0x00}, nil
	})
	got := ResolveExternalColor(src, "guild-1", SnapToPalette, Color{1, 1, 1})
	want := Default.Snap(Color{0xff, 0x00, 0x00})
	if got != want {
		t.Errorf("snap resolution = %v, want %v", got, want)
	}
	if !Default.Contains(got) {
		t.Errorf("snap policy produced off-palette color %v", got)
	}
}

func TestResolveExternalColorDirect(t *testing.T) {
	offPalette := Color{0x12, 0x34, 0x56}
	src := sourceFunc(func(string) (Color, error) { return offPalette, nil })

	got := ResolveExternalColor(src, "guild-1", DirectColor, Color{1, 1, 1})
	if got != offPalette {
		t.Errorf("direct resolution = %v, want %v as-is", got, offPalette)
	}
}

func TestResolveExternalColorFallback(t *testing.T) {
	prior := Color{10, 20, 30}

	tests := []struct {
		name string
		src  ColorSource
	}{
		{name: "nil source", src: nil},
		{
			name: "no usable color",
			src: sourceFunc(func(string) (Color, error) {
				return Color{}, ErrNoColor
			}),
		},
		{
			name: "source failure",
			src: sourceFunc(func(string) (Color, error) {
				return Color{}, errors.New("connection refused")
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveExternalColor(tt.src, "ref", SnapToPalette, prior); got != prior {
				t.Errorf("resolution = %v, want prior color %v", got, prior)
			}
		})
	}
}

func TestErrNoColorSentinel(t *testing.T) {
	wrapped := errors.Join(ErrNoColor, errors.New("detail"))
	if !errors.Is(wrapped, ErrNoColor) {
		t.Error("wrapped ErrNoColor should be detectable with errors.Is")
	}
}
