package chromatic

import (
	"math"
	"sort"
)

// BlendFunc combines a base and a top channel value into a result
// channel. Inputs are conventionally in [0, 1] but neither inputs nor
// results are clamped, so modes like Lighter can run out of gamut.
type BlendFunc func(base, top float64) float64

// AlphaBlendFunc combines the base and top alpha channels. It has the
// same shape as BlendFunc but is kept as a separate type because the
// useful alpha combinators differ from the channel ones.
type AlphaBlendFunc func(base, top float64) float64

// Channel blend modes. Any function with the BlendFunc signature can be
// passed to Blend; these are the standard catalog.
var (
	// Lighter is additive blending, the default mode.
	Lighter BlendFunc = func(b, t float64) float64 { return b + t }

	Multiply BlendFunc = func(b, t float64) float64 { return b * t }

	Screen BlendFunc = func(b, t float64) float64 { return b + t - b*t }

	// Overlay multiplies or screens depending on the base channel.
	Overlay BlendFunc = func(b, t float64) float64 {
		if b < 0.5 {
			return 2 * b * t
		}
		return 2*(b+t-b*t) - 1
	}

	// HardLight is Overlay with the branch taken on the top channel.
	HardLight BlendFunc = func(b, t float64) float64 {
		if t < 0.5 {
			return 2 * b * t
		}
		return 2*(b+t-b*t) - 1
	}

	// SoftLight requires a non-negative base when the top channel is at
	// least 0.5; a negative base produces NaN through the square root.
	SoftLight BlendFunc = func(b, t float64) float64 {
		if t < 0.5 {
			return 2*b*t + b*b*(1-2*t)
		}
		return 2*b*(1-t) + math.Sqrt(b)*(2*t-1)
	}

	Difference BlendFunc = func(b, t float64) float64 { return math.Abs(t - b) }
)

// Alpha blend modes.
var (
	// AlphaMax keeps the more opaque of the two alphas, the default.
	AlphaMax AlphaBlendFunc = math.Max

	AlphaXor AlphaBlendFunc = func(b, t float64) float64 { return math.Abs(t - b) }
)

// Blend combines c (the base) with top, applying mode to each of the
// red, green and blue channel pairs and alphaMode to the alpha pair.
// Argument order matters for asymmetric modes such as Overlay and
// HardLight. A nil mode means Lighter; a nil alphaMode means AlphaMax.
// The result is not clamped.
func (c Color) Blend(top Color, mode BlendFunc, alphaMode AlphaBlendFunc) Color {
	if mode == nil {
		mode = Lighter
	}
	if alphaMode == nil {
		alphaMode = AlphaMax
	}
	return Color{
		mode(c.r, top.r),
		mode(c.g, top.g),
		mode(c.b, top.b),
		alphaMode(c.a, top.a),
	}
}

var blendModes = map[string]BlendFunc{
	"lighter":    Lighter,
	"multiply":   Multiply,
	"screen":     Screen,
	"overlay":    Overlay,
	"hardlight":  HardLight,
	"softlight":  SoftLight,
	"difference": Difference,
}

var alphaModes = map[string]AlphaBlendFunc{
	"max": AlphaMax,
	"xor": AlphaXor,
}

// BlendMode looks up a catalog blend mode by its config/CLI name.
func BlendMode(name string) (BlendFunc, bool) {
	fn, ok := blendModes[name]
	return fn, ok
}

// AlphaMode looks up a catalog alpha blend mode by its config/CLI name.
func AlphaMode(name string) (AlphaBlendFunc, bool) {
	fn, ok := alphaModes[name]
	return fn, ok
}

// BlendModeNames returns the catalog blend mode names, sorted.
func BlendModeNames() []string {
	names := make([]string, 0, len(blendModes))
	for name := range blendModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AlphaModeNames returns the catalog alpha mode names, sorted.
func AlphaModeNames() []string {
	names := make([]string, 0, len(alphaModes))
	for name := range alphaModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
