// Package color represents fixed RGB colours and derives tonal variants of
// them by remapping HSL lightness while preserving hue and saturation.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidColorFormat is returned when a string is not #RRGGBB or RRGGBB.
	ErrInvalidColorFormat = errors.New("color: invalid color format")
	// ErrInvalidLightness is returned when a lightness lies outside [0, 1].
	ErrInvalidLightness = errors.New("color: lightness out of range")
)

// lightnessEpsilon absorbs floating error in the HSL transform.
const lightnessEpsilon = 1e-9

// quantisationSlack is the furthest rounding each channel to a byte can move
// HSL lightness. A colour within it of the requested lightness already is
// the nearest 24-bit result, which keeps WithLightness idempotent.
const quantisationSlack = 0.5/255 + lightnessEpsilon

// Color is an immutable 24-bit RGB colour. The zero value is black.
type Color struct {
	r, g, b uint8
}

// Parse builds a Color from "#RRGGBB" or "RRGGBB". Hex digits may be in
// either case.
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		ch[i] = uint8(v)
	}
	return Color{r: ch[0], g: ch[1], b: ch[2]}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// package-level palette literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB builds a Color from its channel values.
func FromRGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b}
}

// Hex returns the six lowercase hex digits without a leading '#'.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.r, c.g, c.b)
}

// String returns the colour as "#rrggbb".
func (c Color) String() string {
	return "#" + c.Hex()
}

// Red returns the red channel.
func (c Color) Red() uint8 { return c.r }

// Green returns the green channel.
func (c Color) Green() uint8 { return c.g }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return c.b }

// RGB returns all three channels.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// HSL returns hue in degrees [0, 360), saturation and lightness in [0, 1].
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Lightness returns the L channel of the colour in HSL space.
func (c Color) Lightness() float64 {
	_, _, l := c.HSL()
	return l
}

// WithLightness returns a new Color with the same hue and saturation and the
// given lightness. l must lie in [0, 1]; values outside that range (and NaN)
// are rejected with ErrInvalidLightness rather than clamped.
func (c Color) WithLightness(l float64) (Color, error) {
	if math.IsNaN(l) || l < 0 || l > 1 {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidLightness, l)
	}
	switch l {
	case 0:
		return Color{}, nil
	case 1:
		return Color{r: 255, g: 255, b: 255}, nil
	}
	h, s, cur := c.HSL()
	if math.Abs(cur-l) <= quantisationSlack {
		return c, nil
	}
	out := colorful.Hsl(h, s, l)
	return Color{
		r: toChannel(out.R),
		g: toChannel(out.G),
		b: toChannel(out.B),
	}, nil
}

// Shades returns one variant per requested lightness, in order.
func (c Color) Shades(ls ...float64) ([]Color, error) {
	out := make([]Color, 0, len(ls))
	for _, l := range ls {
		v, err := c.WithLightness(l)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MarshalText encodes the colour as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes "#RRGGBB" or "RRGGBB".
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}
}

// toChannel scales a [0, 1] component to a byte, rounding half away from
// zero and clamping floating error at both ends.
func toChannel(v float64) uint8 {
	x := math.Round(255 * v)
	switch {
	case x < 0 || math.IsNaN(x):
		return 0
	case x > 255:
		return 255
	}
	return uint8(x)
}
