package lsp

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/chromatic"
	"github.com/jsvensson/chromatic/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// AnalysisResult holds all information produced by analyzing a palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     map[string]chromatic.Color
	Derived     map[string]chromatic.Color
	Symbols     map[string]protocol.Range // "palette.love", "derived.shadow" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color chromatic.Color
	IsRef bool // true if this is a palette reference, not a literal or function call
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses palette HCL content from memory and produces
// diagnostics, a symbol table, and resolved color locations. It
// collects all errors rather than short-circuiting on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Palette: make(map[string]chromatic.Color),
		Derived: make(map[string]chromatic.Color),
		Symbols: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Semantic analysis needs a parse tree.
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var paletteBody, derivedBody *hclsyntax.Body
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			paletteBody = block.Body
		case "derived":
			derivedBody = block.Body
		}
	}

	if paletteBody == nil {
		result.addError(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "missing required palette block")
		return result
	}

	result.analyzeBlock(paletteBody, palette.ConstructorContext(), "palette", result.Palette)

	if derivedBody != nil {
		result.analyzeBlock(derivedBody, palette.DerivedContext(result.Palette), "derived", result.Derived)
	}

	return result
}

// analyzeBlock walks one color block, evaluating every attribute with
// the given context. Successful attributes contribute a symbol and a
// color location; failures contribute diagnostics.
func (r *AnalysisResult) analyzeBlock(body *hclsyntax.Body, ctx *hcl.EvalContext, blockName string, dest map[string]chromatic.Color) {
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			for _, d := range diags {
				r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d))
			}
			continue
		}

		if val.Type() != cty.String {
			r.addError(attr.Expr.Range(), "expected a color string, got "+val.Type().FriendlyName())
			continue
		}

		c, err := chromatic.ParseHex(val.AsString())
		if err != nil {
			r.addError(attr.Expr.Range(), err.Error())
			continue
		}

		dest[name] = c
		r.Symbols[blockName+"."+name] = hclRangeToLSP(attr.NameRange)

		_, isRef := attr.Expr.(*hclsyntax.ScopeTraversalExpr)
		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(attr.Expr.Range()),
			Color: c,
			IsRef: isRef,
		})
	}
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(sourceName),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(sourceName),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
