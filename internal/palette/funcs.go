package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsvensson/chromatic"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// FunctionNames returns the names of every palette function, sorted.
// Used for editor completion.
func FunctionNames() []string {
	names := make([]string, 0)
	for name := range constructorFuncs() {
		names = append(names, name)
	}
	for name := range combinatorFuncs() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// makeConstructorFunc wraps a three-argument color constructor as an
// HCL function returning a hex string.
func makeConstructorFunc(desc string, params [3]string, build func(a, b, c float64) chromatic.Color) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: params[0], Type: cty.Number},
			{Name: params[1], Type: cty.Number},
			{Name: params[2], Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, _ := args[0].AsBigFloat().Float64()
			b, _ := args[1].AsBigFloat().Float64()
			c, _ := args[2].AsBigFloat().Float64()
			return cty.StringVal(build(a, b, c).Clip().Hex()), nil
		},
	})
}

// constructorFuncs returns the color-construction functions available
// in both the palette and derived blocks.
func constructorFuncs() map[string]function.Function {
	return map[string]function.Function{
		"rgb": makeConstructorFunc("Builds a color from red, green and blue channels in [0, 1]",
			[3]string{"r", "g", "b"}, chromatic.RGB),
		"hsv": makeConstructorFunc("Builds a color from hue (degrees), saturation and value",
			[3]string{"h", "s", "v"}, chromatic.HSV),
		"hsl": makeConstructorFunc("Builds a color from hue (degrees), saturation and lightness",
			[3]string{"h", "s", "l"}, chromatic.HSL),
		"xyz": makeConstructorFunc("Builds a color from CIE XYZ tristimulus values (0-100)",
			[3]string{"x", "y", "z"}, chromatic.XYZ),
		"yxy": makeConstructorFunc("Builds a color from luminance Y (0-100) and chromaticity x, y",
			[3]string{"Y", "x", "y"}, chromatic.Yxy),
		"lab": makeConstructorFunc("Builds a color from CIE L*a*b* coordinates (D65)",
			[3]string{"l", "a", "b"}, chromatic.Lab),
		"luv": makeConstructorFunc("Builds a color from CIE L*u*v* coordinates (D65)",
			[3]string{"l", "u", "v"}, chromatic.Luv),
		"rgba": makeRGBAFunc(),
	}
}

// combinatorFuncs returns the functions only available in the derived
// block, where they combine already-resolved palette colors.
func combinatorFuncs() map[string]function.Function {
	return map[string]function.Function{
		"blend":      makeBlendFunc(),
		"complement": makeComplementFunc(),
		"alpha":      makeAlphaFunc(),
	}
}

func makeRGBAFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green, blue and alpha channels in [0, 1]",
		Params: []function.Parameter{
			{Name: "r", Type: cty.Number},
			{Name: "g", Type: cty.Number},
			{Name: "b", Type: cty.Number},
			{Name: "a", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			r, _ := args[0].AsBigFloat().Float64()
			g, _ := args[1].AsBigFloat().Float64()
			b, _ := args[2].AsBigFloat().Float64()
			a, _ := args[3].AsBigFloat().Float64()
			return cty.StringVal(chromatic.RGBA(r, g, b, a).Clip().Hex()), nil
		},
	})
}

// makeBlendFunc creates the blend(base, top, mode) function. The mode
// name must be one of the catalog blend modes; the result is clipped
// back into gamut before hex rendering.
func makeBlendFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Blends two colors with the named blend mode",
		Params: []function.Parameter{
			{Name: "base", Type: cty.String},
			{Name: "top", Type: cty.String},
			{Name: "mode", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			base, err := chromatic.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			top, err := chromatic.ParseHex(args[1].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			name := args[2].AsString()
			mode, ok := chromatic.BlendMode(name)
			if !ok {
				return cty.NilVal, fmt.Errorf("unknown blend mode %q (valid: %s)",
					name, strings.Join(chromatic.BlendModeNames(), ", "))
			}
			return cty.StringVal(base.Blend(top, mode, nil).Clip().Hex()), nil
		},
	})
}

func makeComplementFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the complementary color",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := chromatic.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Complementary().Clip().Hex()), nil
		},
	})
}

func makeAlphaFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Replaces a color's alpha channel",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "alpha", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := chromatic.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			a, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(c.WithAlpha(a).Clip().Hex()), nil
		},
	})
}
