package bezedit

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrInvalidColor is returned when a palette color is not a valid hex string.
var ErrInvalidColor = errors.New("bezedit: invalid color")

// ParseHex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'.
//
// Unlike gg.Hex, malformed input is reported instead of mapped to black.
func ParseHex(hex string) (gg.RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	var err error

	switch len(s) {
	case 3, 4:
		digits := make([]uint32, len(s))
		for i := range s {
			if digits[i], err = parseHexDigits(s[i : i+1]); err != nil {
				break
			}
			digits[i] *= 17
		}
		if err == nil {
			r, g, b = digits[0], digits[1], digits[2]
			if len(s) == 4 {
				a = digits[3]
			}
		}
	case 6, 8:
		vals := make([]uint32, len(s)/2)
		for i := range vals {
			if vals[i], err = parseHexDigits(s[2*i : 2*i+2]); err != nil {
				break
			}
		}
		if err == nil {
			r, g, b = vals[0], vals[1], vals[2]
			if len(s) == 8 {
				a = vals[3]
			}
		}
	default:
		err = errors.New("unsupported length")
	}
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, hex, err)
	}

	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func parseHexDigits(s string) (uint32, error) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, fmt.Errorf("bad digit %q", c)
		}
	}
	return val, nil
}

// Colors holds the palette as hex strings, the form it takes in
// configuration.
type Colors struct {
	Handle     string
	Marker     string
	Curve      string
	Text       string
	Debug      string
	Background string
}

// DefaultColors returns the stock palette: red handles, blue tangent
// guides, green curve samples, white title and grey coordinates on black.
func DefaultColors() Colors {
	return Colors{
		Handle:     "E62937",
		Marker:     "0079F1",
		Curve:      "00E430",
		Text:       "FFFFFF",
		Debug:      "999999",
		Background: "000000",
	}
}

// Palette is the parsed set of colors an Editor draws with.
type Palette struct {
	Handle     gg.RGBA
	Marker     gg.RGBA
	Curve      gg.RGBA
	Text       gg.RGBA
	Debug      gg.RGBA
	Background gg.RGBA
}

// Palette parses every color. The first malformed entry is returned as an
// error wrapping ErrInvalidColor.
func (c Colors) Palette() (Palette, error) {
	var p Palette
	entries := []struct {
		name string
		hex  string
		dst  *gg.RGBA
	}{
		{"handle", c.Handle, &p.Handle},
		{"marker", c.Marker, &p.Marker},
		{"curve", c.Curve, &p.Curve},
		{"text", c.Text, &p.Text},
		{"debug", c.Debug, &p.Debug},
		{"background", c.Background, &p.Background},
	}
	for _, e := range entries {
		col, err := ParseHex(e.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s color: %w", e.name, err)
		}
		*e.dst = col
	}
	return p, nil
}
