package emblem

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode is returned when a design token is malformed or misses a
// required field. Decode never applies a partially parsed token.
var ErrDecode = errors.New("emblem: invalid design code")

// designRecord is the wire schema of a design token. The 9-field form is
// frozen: there is no version field, so added fields must keep older
// tokens decodable (unknown fields are ignored on decode).
type designRecord struct {
	Background string `json:"b"`
	Foreground string `json:"f"`
	BgColor    string `json:"c1,omitempty"`
	Fg1Color   string `json:"c2,omitempty"`
	Fg2Color   string `json:"c3,omitempty"`
	FgFlipH    int    `json:"fh,omitempty"`
	FgFlipV    int    `json:"fv,omitempty"`
	BgFlipH    int    `json:"bh,omitempty"`
	BgFlipV    int    `json:"bv,omitempty"`
}

func flipBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Encode serializes a design into a compact share token: a field-keyed
// JSON record passed through unpadded URL-safe base64, so the result is
// safe to paste into plain text fields.
func Encode(d EmblemDesign) string {
	rec := designRecord{
		Background: d.Background,
		Foreground: d.Foreground,
		BgColor:    d.BackgroundColor.Hex(),
		Fg1Color:   d.Foreground1Color.Hex(),
		Fg2Color:   d.Foreground2Color.Hex(),
		FgFlipH:    flipBit(d.ForegroundFlip.Horizontal),
		FgFlipV:    flipBit(d.ForegroundFlip.Vertical),
		BgFlipH:    flipBit(d.BackgroundFlip.Horizontal),
		BgFlipV:    flipBit(d.BackgroundFlip.Vertical),
	}

	// Marshal of a flat string/int struct cannot fail.
	raw, _ := json.Marshal(rec)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode hydrates the design from a share token produced by Encode.
//
// Both shape ids are required; their absence is a decode failure. Absent
// color fields keep the design's current slot colors (tokens hydrate
// partially rather than demanding every field); absent flip fields read
// as false. On any failure the design is left untouched and ErrDecode is
// returned, wrapping the underlying cause.
func (d *EmblemDesign) Decode(token string) error {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var rec designRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if rec.Background == "" || rec.Foreground == "" {
		return fmt.Errorf("%w: missing shape id", ErrDecode)
	}

	// Stage into a copy so a bad color field cannot leave the caller's
	// design half-updated.
	next := *d
	next.Background = rec.Background
	next.Foreground = rec.Foreground
	for _, f := range []struct {
		hex  string
		slot Slot
	}{
		{rec.BgColor, SlotBackground},
		{rec.Fg1Color, SlotForeground1},
		{rec.Fg2Color, SlotForeground2},
	} {
		if f.hex == "" {
			continue
		}
		c, err := HexToRGB(f.hex)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		next.SetColor(f.slot, c)
	}
	next.ForegroundFlip = FlipState{Horizontal: rec.FgFlipH != 0, Vertical: rec.FgFlipV != 0}
	next.BackgroundFlip = FlipState{Horizontal: rec.BgFlipH != 0, Vertical: rec.BgFlipV != 0}

	*d = next
	return nil
}
