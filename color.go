// Package chromatic provides an immutable color value with conversions
// between RGB, HSV, HSL, XYZ, Yxy, Lab and Luv, channel-wise blend
// operations, and hex/CSS string formatting.
//
// The canonical representation is linear RGB plus alpha; every other
// model is computed from it on demand. Channels are conventionally in
// [0, 1] but are not clamped at construction, so out-of-gamut values
// from blends and conversions survive until Clip or Hex. Degenerate
// inputs (zero luminance, zero chromaticity denominators) propagate as
// NaN or Inf rather than returning errors.
package chromatic

import (
	"fmt"
	"math"
	"strings"
)

// Color is an immutable color value storing linear RGB and alpha.
// The zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// RGB returns a color from red, green and blue channels with full opacity.
// Channels are conventionally in [0, 1] but are stored unclamped.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// RGBA returns a color from red, green, blue and alpha channels, unclamped.
func RGBA(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// WithAlpha returns a copy of c with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.a = a
	return c
}

// RGB returns the stored channel values. No conversion or clamping is applied.
func (c Color) RGB() (r, g, b, alpha float64) {
	return c.r, c.g, c.b, c.a
}

// Alpha returns the alpha channel.
func (c Color) Alpha() float64 {
	return c.a
}

// Complementary returns the color reflected channel-wise about the
// midpoint of its own span: each channel becomes min+max minus the
// channel, where min and max range over r, g, b. Applying it twice
// returns the original color.
func (c Color) Complementary() Color {
	span := math.Min(c.r, math.Min(c.g, c.b)) + math.Max(c.r, math.Max(c.g, c.b))
	return Color{span - c.r, span - c.g, span - c.b, c.a}
}

// Clip returns a copy with every channel, including alpha, clamped to
// [0, 1]. The clamp saturates; it does not wrap.
func (c Color) Clip() Color {
	return Color{clamp01(c.r), clamp01(c.g), clamp01(c.b), clamp01(c.a)}
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
// The color is clipped first, then each channel is scaled to 0-255 and
// rounded half away from zero. The alpha byte is appended only when it
// rounds below 0xff, so fully opaque colors produce six digits.
func (c Color) Hex() string {
	cl := c.Clip()
	r, g, b, a := channelByte(cl.r), channelByte(cl.g), channelByte(cl.b), channelByte(cl.a)
	if a != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String formats the raw stored channels as a CSS-style rgb() or rgba()
// string. Unlike Hex, nothing is clipped, scaled or rounded: this is a
// plain dump of the stored values, with rgba() used only when alpha is
// not exactly 1.
func (c Color) String() string {
	if c.a == 1 {
		return fmt.Sprintf("rgb(%v, %v, %v)", c.r, c.g, c.b)
	}
	return fmt.Sprintf("rgba(%v, %v, %v, %v)", c.r, c.g, c.b, c.a)
}

// ParseHex parses a hex color string like "#eb6f92" or "#eb6f92cc" into
// a Color. The leading # is optional. Channels are scaled to [0, 1];
// a missing alpha byte means fully opaque.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint8
	a := uint8(0xff)
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 or 8 hex digits", s)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}, nil
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
