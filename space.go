package chromatic

import "math"

// CIE thresholds separating the cube-root and linear branches of the
// Lab/Luv nonlinearity.
const (
	cieEpsilon = 0.008856
	cieKappa   = 903.3
)

// D65 reference white on the 0-100 XYZ scale.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// Reference-white chromaticity for Luv (u', v' of D65).
var (
	refU = 4 * whiteX / (whiteX + 15*whiteY + 3*whiteZ)
	refV = 9 * whiteY / (whiteX + 15*whiteY + 3*whiteZ)
)

// HSV returns a color from hue in degrees, saturation and value.
// Hue is wrapped into [0, 360); saturation and value are clamped to
// [0, 1]. Each RGB channel is interpolated between v(1-s) and v by its
// angular distance from the channel's hue center (0, 120, 240 degrees).
func HSV(h, s, v float64) Color {
	h = wrapHue(h)
	s = clamp01(s)
	v = clamp01(v)
	max, min := v, v*(1-s)
	return Color{
		hueChannel(h, 0, max, min),
		hueChannel(h, 120, max, min),
		hueChannel(h, 240, max, min),
		1,
	}
}

// HSL returns a color from hue in degrees, saturation and lightness.
// Hue is wrapped into [0, 360); saturation and lightness are clamped to
// [0, 1]. The interpolation is the same as HSV's, between l-d and l+d
// where d = (0.5 - |l-0.5|) * s.
func HSL(h, s, l float64) Color {
	h = wrapHue(h)
	s = clamp01(s)
	l = clamp01(l)
	d := (0.5 - math.Abs(l-0.5)) * s
	max, min := l+d, l-d
	return Color{
		hueChannel(h, 0, max, min),
		hueChannel(h, 120, max, min),
		hueChannel(h, 240, max, min),
		1,
	}
}

// XYZ returns a color from CIE XYZ tristimulus values on the 0-100
// scale, via the standard sRGB/D65 matrix. The result is not clamped;
// out-of-gamut XYZ inputs produce out-of-range RGB channels.
func XYZ(x, y, z float64) Color {
	x, y, z = x/100, y/100, z/100
	return Color{
		3.2404542*x - 1.5371385*y - 0.4985314*z,
		-0.9692660*x + 1.8760108*y + 0.0415560*z,
		0.0556434*x - 0.2040259*y + 1.0572252*z,
		1,
	}
}

// Yxy returns a color from luminance Y (0-100) and chromaticity
// coordinates x, y. A zero y produces non-finite channels; callers must
// avoid it.
func Yxy(yy, x, y float64) Color {
	total := yy / y
	return XYZ(x*total, yy, (1-x)*total-yy)
}

// Lab returns a color from CIE L*a*b* coordinates relative to the D65
// reference white. L is on the 0-100 scale.
func Lab(l, a, b float64) Color {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	xr := labFInv(fx)
	zr := labFInv(fz)
	var yr float64
	if l > cieKappa*cieEpsilon {
		yr = fy * fy * fy
	} else {
		yr = l / cieKappa
	}

	return XYZ(xr*whiteX, yr*whiteY, zr*whiteZ)
}

// Luv returns a color from CIE L*u*v* coordinates relative to the D65
// reference white. L is on the 0-100 scale. Degenerate when
// u+13*L*u'r or v+13*L*v'r is zero; callers must avoid those inputs.
func Luv(l, u, v float64) Color {
	var y float64
	if l > cieKappa*cieEpsilon {
		f := (l + 16) / 116
		y = f * f * f
	} else {
		y = l / cieKappa
	}
	y *= whiteY

	// Solve the chromaticity equations for X and Z given Y.
	a := (52*l/(u+13*l*refU) - 1) / 3
	b := -5 * y
	c := -1.0 / 3
	d := y * (39*l/(v+13*l*refV) - 5)

	x := (d - b) / (a - c)
	z := x*a + b
	return XYZ(x, y, z)
}

// HSV returns the hue (degrees in [0, 360)), saturation and value of
// the color. Saturation is zero for achromatic colors.
func (c Color) HSV() (h, s, v, alpha float64) {
	max := math.Max(c.r, math.Max(c.g, c.b))
	min := math.Min(c.r, math.Min(c.g, c.b))
	delta := max - min

	h = c.hue(max, delta)
	if delta != 0 {
		s = delta / max
	}
	return h, s, max, c.a
}

// HSL returns the hue (degrees in [0, 360)), saturation and lightness
// of the color. Saturation is zero for achromatic colors.
func (c Color) HSL() (h, s, l, alpha float64) {
	max := math.Max(c.r, math.Max(c.g, c.b))
	min := math.Min(c.r, math.Min(c.g, c.b))
	delta := max - min

	h = c.hue(max, delta)
	l = (max + min) / 2
	if delta != 0 {
		if l > 0.5 {
			s = delta / (2 - max - min)
		} else {
			s = delta / (max + min)
		}
	}
	return h, s, l, c.a
}

// XYZ returns the CIE XYZ tristimulus values on the 0-100 scale, via
// the standard sRGB/D65 forward matrix.
func (c Color) XYZ() (x, y, z, alpha float64) {
	x = (0.4124564*c.r + 0.3575761*c.g + 0.1804375*c.b) * 100
	y = (0.2126729*c.r + 0.7151522*c.g + 0.0721750*c.b) * 100
	z = (0.0193339*c.r + 0.1191920*c.g + 0.9503041*c.b) * 100
	return x, y, z, c.a
}

// Yxy returns the luminance Y (0-100) and chromaticity coordinates of
// the color. Black has zero total stimulus, so its chromaticity is NaN.
func (c Color) Yxy() (yy, x, y, alpha float64) {
	xs, ys, zs, _ := c.XYZ()
	total := xs + ys + zs
	return ys, xs / total, ys / total, c.a
}

// Lab returns the CIE L*a*b* coordinates of the color relative to the
// D65 reference white.
func (c Color) Lab() (l, a, b, alpha float64) {
	x, y, z, _ := c.XYZ()
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz), c.a
}

// Luv returns the CIE L*u*v* coordinates of the color relative to the
// D65 reference white. Black has a zero chromaticity denominator, so u
// and v are NaN.
func (c Color) Luv() (l, u, v, alpha float64) {
	x, y, z, _ := c.XYZ()

	yr := y / whiteY
	if yr > cieEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cieKappa * yr
	}

	den := x + 15*y + 3*z
	u = 13 * l * (4*x/den - refU)
	v = 13 * l * (9*y/den - refV)
	return l, u, v, c.a
}

// hue derives the hue angle from the dominant channel. Zero delta means
// achromatic, reported as hue 0.
func (c Color) hue(max, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch {
	case c.r >= max:
		h = (c.g - c.b) / delta
	case c.g >= max:
		h = 2 + (c.b-c.r)/delta
	default:
		h = 4 + (c.r-c.g)/delta
	}
	h *= 60
	return h - 360*math.Floor(h/360)
}

// labF is the forward CIE nonlinearity, cube root above the epsilon
// threshold and linear below it.
func labF(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16) / 116
}

// labFInv inverts labF. The branch is chosen by the cubed value so the
// two functions agree at the threshold.
func labFInv(f float64) float64 {
	if cube := f * f * f; cube > cieEpsilon {
		return cube
	}
	return (116*f - 16) / cieKappa
}

// wrapHue wraps a hue angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// hueChannel interpolates one RGB channel from its angular distance to
// the channel's center angle: full at 60 degrees or closer, falling
// linearly to min at 120 degrees or further.
func hueChannel(h, center, max, min float64) float64 {
	d := math.Abs(h - center)
	if d > 180 {
		d = 360 - d
	}
	return min + (max-min)*clamp01((120-d)/60)
}
