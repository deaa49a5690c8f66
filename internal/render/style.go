package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when a fill style name cannot be resolved.
var ErrUnknownColor = errors.New("render: unknown color")

// FillStyle is the token handed to a Surface for filling. Surfaces convert
// Color to their own color type and otherwise leave it alone.
type FillStyle struct {
	Name  string
	Color color.RGBA
}

var (
	// Background fills the root triangle.
	Background = MustFillStyle("darkslategray")
	// Foreground fills every center triangle.
	Foreground = MustFillStyle("snow")
)

// ParseFillStyle resolves a CSS color name ("snow") or a hex value
// ("#fffafa", "#fff").
func ParseFillStyle(s string) (FillStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		c, err := parseHex(name[1:])
		if err != nil {
			return FillStyle{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return FillStyle{Name: name, Color: c}, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return FillStyle{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return FillStyle{Name: name, Color: c}, nil
}

// MustFillStyle is ParseFillStyle for package-level values. It panics on
// unknown names.
func MustFillStyle(s string) FillStyle {
	f, err := ParseFillStyle(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Hex returns the color as #rrggbb.
func (f FillStyle) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", f.Color.R, f.Color.G, f.Color.B)
}

func (f FillStyle) String() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Hex()
}

func parseHex(s string) (color.RGBA, error) {
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("bad hex length %d", len(s))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
