// Package palette loads named-color palette files written in HCL.
//
// A palette file has an optional meta block, a required palette block
// whose attributes are hex strings or color-construction function
// calls, and an optional derived block whose attributes may reference
// palette entries and combine them with blend, complement and alpha.
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/chromatic"
	"github.com/zclconf/go-cty/cty"
)

// Palette is a fully-resolved palette file.
type Palette struct {
	Meta    Meta
	Colors  map[string]chromatic.Color
	Derived map[string]chromatic.Color
}

// Meta holds palette metadata.
type Meta struct {
	Name   string
	Author string
}

// Load reads and parses a palette file from disk.
func Load(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(path, src)
}

// Parse parses palette HCL source. The filename is used only for
// diagnostics.
func Parse(filename string, src []byte) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected body type %T", file.Body)
	}

	p := &Palette{
		Colors:  make(map[string]chromatic.Color),
		Derived: make(map[string]chromatic.Color),
	}

	if err := parseMeta(body, &p.Meta); err != nil {
		return nil, err
	}

	// The palette block comes first: constructor functions only, no
	// variables, so entries cannot reference each other.
	found, err := parseColorBlock(body, "palette", ConstructorContext(), p.Colors)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no palette block found")
	}

	// The derived block sees palette entries as variables plus the
	// combinator functions.
	if _, err := parseColorBlock(body, "derived", DerivedContext(p.Colors), p.Derived); err != nil {
		return nil, err
	}

	return p, nil
}

// Color resolves a name, preferring palette entries over derived ones.
func (p *Palette) Color(name string) (chromatic.Color, bool) {
	if c, ok := p.Colors[name]; ok {
		return c, true
	}
	c, ok := p.Derived[name]
	return c, ok
}

// Names returns all palette and derived entry names, sorted.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.Colors)+len(p.Derived))
	for name := range p.Colors {
		names = append(names, name)
	}
	for name := range p.Derived {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseMeta(body *hclsyntax.Body, meta *Meta) error {
	for _, block := range body.Blocks {
		if block.Type != "meta" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("parsing meta: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("evaluating meta.%s: %s", name, diags.Error())
			}
			switch name {
			case "name":
				meta.Name = val.AsString()
			case "author":
				meta.Author = val.AsString()
			}
		}
		return nil
	}
	return nil
}

// parseColorBlock evaluates every attribute of the named block into
// dest. Each attribute must evaluate to a hex color string. Returns
// whether the block was present; a second block of the same type is an
// error rather than being silently ignored.
func parseColorBlock(body *hclsyntax.Body, blockType string, ctx *hcl.EvalContext, dest map[string]chromatic.Color) (bool, error) {
	var found *hclsyntax.Block
	for _, block := range body.Blocks {
		if block.Type != blockType {
			continue
		}
		if found != nil {
			return true, fmt.Errorf("duplicate %s block", blockType)
		}
		found = block
	}
	if found == nil {
		return false, nil
	}

	attrs, diags := found.Body.JustAttributes()
	if diags.HasErrors() {
		return true, fmt.Errorf("parsing %s: %s", blockType, diags.Error())
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return true, fmt.Errorf("evaluating %s.%s: %s", blockType, name, diags.Error())
		}
		if val.Type() != cty.String {
			return true, fmt.Errorf("%s.%s: expected a color string, got %s", blockType, name, val.Type().FriendlyName())
		}
		c, err := chromatic.ParseHex(val.AsString())
		if err != nil {
			return true, fmt.Errorf("%s.%s: %w", blockType, name, err)
		}
		dest[name] = c
	}
	return true, nil
}

// ConstructorContext returns the evaluation context for the palette
// block: the color-construction functions, no variables.
func ConstructorContext() *hcl.EvalContext {
	return &hcl.EvalContext{Functions: constructorFuncs()}
}

// DerivedContext exposes resolved palette entries as palette.*
// variables alongside the constructor and combinator functions. It is
// the evaluation context for the derived block.
func DerivedContext(colors map[string]chromatic.Color) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(colors))

	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = cty.StringVal(colors[k].Hex())
	}

	funcs := constructorFuncs()
	for name, fn := range combinatorFuncs() {
		funcs[name] = fn
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(vals),
		},
		Functions: funcs,
	}
}
