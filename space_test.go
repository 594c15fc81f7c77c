package chromatic

import (
	"math"
	"testing"
)

func TestHSVKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    [3]float64
	}{
		{"red", 0, 1, 1, [3]float64{1, 0, 0}},
		{"yellow", 60, 1, 1, [3]float64{1, 1, 0}},
		{"green", 120, 1, 1, [3]float64{0, 1, 0}},
		{"cyan", 180, 1, 1, [3]float64{0, 1, 1}},
		{"blue", 240, 1, 1, [3]float64{0, 0, 1}},
		{"magenta", 300, 1, 1, [3]float64{1, 0, 1}},
		{"orange", 30, 1, 1, [3]float64{1, 0.5, 0}},
		{"white", 0, 0, 1, [3]float64{1, 1, 1}},
		{"gray", 200, 0, 0.5, [3]float64{0.5, 0.5, 0.5}},
		{"half saturation", 0, 0.5, 1, [3]float64{1, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, _ := HSV(tt.h, tt.s, tt.v).RGB()
			inDelta(t, "r", r, tt.want[0], 1e-9)
			inDelta(t, "g", g, tt.want[1], 1e-9)
			inDelta(t, "b", b, tt.want[2], 1e-9)
		})
	}
}

func TestHSVClampsSaturationAndValue(t *testing.T) {
	if got, want := HSV(0, 2, 2), HSV(0, 1, 1); got != want {
		t.Errorf("HSV(0, 2, 2) = %v, want %v", got, want)
	}
	if got, want := HSV(0, -1, -1), HSV(0, 0, 0); got != want {
		t.Errorf("HSV(0, -1, -1) = %v, want %v", got, want)
	}
}

func TestHueWrap(t *testing.T) {
	base := HSV(30, 0.8, 0.9)
	for _, h := range []float64{390, 750, -330, 30 - 720} {
		if got := HSV(h, 0.8, 0.9); got != base {
			t.Errorf("HSV(%v, 0.8, 0.9) = %v, want %v", h, got, base)
		}
	}
}

func TestHSLKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    [3]float64
	}{
		{"red", 0, 1, 0.5, [3]float64{1, 0, 0}},
		{"green", 120, 1, 0.5, [3]float64{0, 1, 0}},
		{"blue", 240, 1, 0.5, [3]float64{0, 0, 1}},
		{"white", 0, 1, 1, [3]float64{1, 1, 1}},
		{"black", 0, 1, 0, [3]float64{0, 0, 0}},
		{"light red", 0, 1, 0.75, [3]float64{1, 0.5, 0.5}},
		{"gray", 90, 0, 0.5, [3]float64{0.5, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, _ := HSL(tt.h, tt.s, tt.l).RGB()
			inDelta(t, "r", r, tt.want[0], 1e-9)
			inDelta(t, "g", g, tt.want[1], 1e-9)
			inDelta(t, "b", b, tt.want[2], 1e-9)
		})
	}
}

func TestHSVViewKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		h, s, v float64
	}{
		{"red", RGB(1, 0, 0), 0, 1, 1},
		{"green", RGB(0, 1, 0), 120, 1, 1},
		{"blue", RGB(0, 0, 1), 240, 1, 1},
		{"yellow", RGB(1, 1, 0), 60, 1, 1},
		{"black is achromatic", RGB(0, 0, 0), 0, 0, 0},
		{"gray is achromatic", RGB(0.5, 0.5, 0.5), 0, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v, _ := tt.c.HSV()
			inDelta(t, "h", h, tt.h, 1e-9)
			inDelta(t, "s", s, tt.s, 1e-9)
			inDelta(t, "v", v, tt.v, 1e-9)
		})
	}
}

func TestHueViewRange(t *testing.T) {
	// Hues derived from blue-dominant colors must wrap into [0, 360).
	h, _, _, _ := RGB(1, 0, 0.5).HSV()
	if h < 0 || h >= 360 {
		t.Errorf("hue = %v, want within [0, 360)", h)
	}
	if math.Abs(h-330) > 1e-9 {
		t.Errorf("hue = %v, want 330", h)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(0.9, 0.3, 0.1),
		RGB(0.2, 0.8, 0.5),
		RGB(0.1, 0.1, 0.7),
		RGB(0.5, 0.5, 0.5),
	}
	for _, c := range colors {
		h, s, v, _ := c.HSV()
		r, g, b, _ := HSV(h, s, v).RGB()
		wr, wg, wb, _ := c.RGB()
		inDelta(t, "r", r, wr, 1e-9)
		inDelta(t, "g", g, wg, 1e-9)
		inDelta(t, "b", b, wb, 1e-9)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(0.9, 0.3, 0.1),
		RGB(0.2, 0.8, 0.5),
		RGB(0.25, 0.5, 0.75),
	}
	for _, c := range colors {
		h, s, l, _ := c.HSL()
		r, g, b, _ := HSL(h, s, l).RGB()
		wr, wg, wb, _ := c.RGB()
		inDelta(t, "r", r, wr, 1e-9)
		inDelta(t, "g", g, wg, 1e-9)
		inDelta(t, "b", b, wb, 1e-9)
	}
}

func TestXYZWhitePoint(t *testing.T) {
	x, y, z, _ := RGB(1, 1, 1).XYZ()
	inDelta(t, "x", x, 95.047, 0.01)
	inDelta(t, "y", y, 100.0, 0.01)
	inDelta(t, "z", z, 108.883, 0.01)
}

func TestXYZRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(1, 0, 0),
		RGB(0, 1, 0),
		RGB(0, 0, 1),
		RGB(0.25, 0.5, 0.75),
		RGBA(0.9, 0.1, 0.4, 0.5),
	}
	for _, c := range colors {
		x, y, z, alpha := c.XYZ()
		got := XYZ(x, y, z).WithAlpha(alpha)
		gr, gg, gb, ga := got.RGB()
		wr, wg, wb, wa := c.RGB()
		inDelta(t, "r", gr, wr, 1e-4)
		inDelta(t, "g", gg, wg, 1e-4)
		inDelta(t, "b", gb, wb, 1e-4)
		inDelta(t, "alpha", ga, wa, 0)
	}
}

func TestYxyWhitePoint(t *testing.T) {
	yy, x, y, _ := RGB(1, 1, 1).Yxy()
	inDelta(t, "Y", yy, 100.0, 0.01)
	inDelta(t, "x", x, 0.3127, 0.001)
	inDelta(t, "y", y, 0.3290, 0.001)
}

func TestYxyRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(1, 0, 0),
		RGB(0.25, 0.5, 0.75),
		RGB(0.7, 0.7, 0.2),
	}
	for _, c := range colors {
		yy, x, y, _ := c.Yxy()
		r, g, b, _ := Yxy(yy, x, y).RGB()
		wr, wg, wb, _ := c.RGB()
		inDelta(t, "r", r, wr, 1e-4)
		inDelta(t, "g", g, wg, 1e-4)
		inDelta(t, "b", b, wb, 1e-4)
	}
}

func TestYxyBlackIsDegenerate(t *testing.T) {
	_, x, y, _ := RGB(0, 0, 0).Yxy()
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("black chromaticity = (%v, %v), want NaN", x, y)
	}
}

func TestLabWhitePoint(t *testing.T) {
	l, a, b, _ := RGB(1, 1, 1).Lab()
	inDelta(t, "L", l, 100, 0.01)
	inDelta(t, "a", a, 0, 0.01)
	inDelta(t, "b", b, 0, 0.01)
}

func TestLabBlack(t *testing.T) {
	l, _, _, _ := RGB(0, 0, 0).Lab()
	inDelta(t, "L", l, 0, 1e-9)
}

func TestLabRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(1, 0, 0),
		RGB(0.25, 0.5, 0.75),
		RGB(0.004, 0.005, 0.006), // exercises the linear branch
		RGB(0.5, 0.5, 0.5),
	}
	for _, c := range colors {
		l, a, b, _ := c.Lab()
		r, g, bl, _ := Lab(l, a, b).RGB()
		wr, wg, wb, _ := c.RGB()
		inDelta(t, "r", r, wr, 1e-4)
		inDelta(t, "g", g, wg, 1e-4)
		inDelta(t, "b", bl, wb, 1e-4)
	}
}

func TestLabThresholdContinuity(t *testing.T) {
	// The cube-root and linear branches must agree at the threshold.
	lo := labF(cieEpsilon - 1e-10)
	hi := labF(cieEpsilon + 1e-10)
	inDelta(t, "labF at threshold", hi, lo, 1e-6)

	f := labF(cieEpsilon)
	inDelta(t, "labFInv(labF(eps))", labFInv(f), cieEpsilon, 1e-6)
}

func TestLuvWhitePoint(t *testing.T) {
	l, u, v, _ := RGB(1, 1, 1).Luv()
	inDelta(t, "L", l, 100, 0.01)
	inDelta(t, "u", u, 0, 0.01)
	inDelta(t, "v", v, 0, 0.01)
}

func TestLuvRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(1, 0, 0),
		RGB(0.25, 0.5, 0.75),
		RGB(0.7, 0.7, 0.2),
		RGB(0.005, 0.004, 0.006), // exercises the linear branch
	}
	for _, c := range colors {
		l, u, v, _ := c.Luv()
		r, g, b, _ := Luv(l, u, v).RGB()
		wr, wg, wb, _ := c.RGB()
		inDelta(t, "r", r, wr, 1e-4)
		inDelta(t, "g", g, wg, 1e-4)
		inDelta(t, "b", b, wb, 1e-4)
	}
}

func TestLuvBlackIsDegenerate(t *testing.T) {
	_, u, v, _ := RGB(0, 0, 0).Luv()
	if !math.IsNaN(u) || !math.IsNaN(v) {
		t.Errorf("black Luv chromaticity = (%v, %v), want NaN", u, v)
	}
}

func TestConstructorsDoNotClamp(t *testing.T) {
	// XYZ, Yxy, Lab and Luv must let out-of-gamut results through.
	r, _, _, _ := XYZ(120, 100, 100).RGB()
	if r <= 1 {
		t.Errorf("XYZ(120, 100, 100) red channel = %v, want > 1", r)
	}
	// A highly saturated Lab green sits outside the sRGB gamut, with a
	// negative red channel.
	lr, _, _, _ := Lab(80, -128, 100).RGB()
	if lr >= 0 {
		t.Errorf("Lab(80, -128, 100) red channel = %v, want < 0", lr)
	}
}
