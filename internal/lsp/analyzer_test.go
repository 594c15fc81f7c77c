package lsp

import (
	"strings"
	"testing"
)

const validPalette = `
meta {
  name   = "Test Palette"
  author = "Test Author"
}

palette {
  base = "#191724"
  love = "#eb6f92"
  gold = hsv(35, 0.52, 0.96)
}

derived {
  shadow  = blend(palette.love, palette.base, "multiply")
  veil    = alpha(palette.base, 0.5)
  brand   = palette.love
}
`

func TestAnalyzeValidPalette(t *testing.T) {
	result := Analyze("test.palette", validPalette)

	if len(result.Diagnostics) != 0 {
		for _, d := range result.Diagnostics {
			t.Logf("  diagnostic: [%v] %s", *d.Severity, d.Message)
		}
		t.Fatalf("expected 0 diagnostics, got %d", len(result.Diagnostics))
	}

	if len(result.Palette) != 3 {
		t.Errorf("len(Palette) = %d, want 3", len(result.Palette))
	}
	if len(result.Derived) != 3 {
		t.Errorf("len(Derived) = %d, want 3", len(result.Derived))
	}

	if got := result.Palette["love"].Hex(); got != "#eb6f92" {
		t.Errorf("palette.love = %q, want %q", got, "#eb6f92")
	}
}

func TestAnalyzeSymbols(t *testing.T) {
	result := Analyze("test.palette", validPalette)

	for _, sym := range []string{"palette.base", "palette.love", "palette.gold", "derived.shadow"} {
		if _, ok := result.Symbols[sym]; !ok {
			t.Errorf("missing symbol %q", sym)
		}
	}
}

func TestAnalyzeColorLocations(t *testing.T) {
	result := Analyze("test.palette", validPalette)

	if len(result.Colors) != 6 {
		t.Fatalf("len(Colors) = %d, want 6", len(result.Colors))
	}

	refs := 0
	for _, cl := range result.Colors {
		if cl.IsRef {
			refs++
		}
	}
	// Only derived.brand is a bare reference; blend() and alpha() calls
	// are function calls, not references.
	if refs != 1 {
		t.Errorf("reference locations = %d, want 1", refs)
	}
}

func TestAnalyzeSyntaxError(t *testing.T) {
	result := Analyze("test.palette", "palette {\n  base = \n")

	if len(result.Diagnostics) == 0 {
		t.Fatal("expected diagnostics for syntax error")
	}
}

func TestAnalyzeMissingPaletteBlock(t *testing.T) {
	result := Analyze("test.palette", `meta { name = "x" }`)

	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(result.Diagnostics))
	}
	if !strings.Contains(result.Diagnostics[0].Message, "missing required palette block") {
		t.Errorf("diagnostic = %q, want missing palette block", result.Diagnostics[0].Message)
	}
}

func TestAnalyzeBadColorValue(t *testing.T) {
	result := Analyze("test.palette", `palette { bad = "#zzz" }`)

	if len(result.Diagnostics) == 0 {
		t.Fatal("expected diagnostic for bad hex value")
	}
	if _, ok := result.Palette["bad"]; ok {
		t.Error("bad entry should not resolve to a color")
	}
}

func TestAnalyzeUnknownReference(t *testing.T) {
	src := `palette { base = "#191724" }
derived { x = palette.missing }`
	result := Analyze("test.palette", src)

	if len(result.Diagnostics) == 0 {
		t.Fatal("expected diagnostic for unknown palette reference")
	}
	// The valid palette entry still resolves.
	if _, ok := result.Palette["base"]; !ok {
		t.Error("palette.base should still resolve")
	}
}

func TestAnalyzeUnknownBlendMode(t *testing.T) {
	src := `palette { a = "#000000" b = "#ffffff" }
derived { x = blend(palette.a, palette.b, "subtract") }`
	result := Analyze("test.palette", src)

	found := false
	for _, d := range result.Diagnostics {
		if strings.Contains(d.Message, "unknown blend mode") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unknown blend mode diagnostic, got %v", result.Diagnostics)
	}
}

func TestAnalyzeCollectsAllErrors(t *testing.T) {
	src := `palette {
  a = "#zzz"
  b = "#also-bad"
  c = "#191724"
}`
	result := Analyze("test.palette", src)

	if len(result.Diagnostics) != 2 {
		t.Errorf("len(Diagnostics) = %d, want 2", len(result.Diagnostics))
	}
	if _, ok := result.Palette["c"]; !ok {
		t.Error("valid entry c should resolve despite sibling errors")
	}
}
