package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestHoverLiteral(t *testing.T) {
	content := `palette {
  base = "#191724"
}
`
	result := Analyze("test.palette", content)
	if len(result.Colors) != 1 {
		t.Fatalf("len(Colors) = %d, want 1", len(result.Colors))
	}

	pos := protocol.Position{
		Line:      result.Colors[0].Range.Start.Line,
		Character: result.Colors[0].Range.Start.Character + 1,
	}

	h := hover(result, content, pos)
	if h == nil {
		t.Fatal("expected non-nil hover for hex literal")
	}

	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	for _, want := range []string{"#191724", "hsl(", "lab("} {
		if !strings.Contains(mc.Value, want) {
			t.Errorf("hover missing %q, got %q", want, mc.Value)
		}
	}
}

func TestHoverReference(t *testing.T) {
	content := `palette {
  love = "#eb6f92"
}

derived {
  brand = palette.love
}
`
	result := Analyze("test.palette", content)

	var refLoc *ColorLocation
	for i, cl := range result.Colors {
		if cl.IsRef {
			refLoc = &result.Colors[i]
			break
		}
	}
	if refLoc == nil {
		t.Fatal("expected a reference color location")
	}

	pos := protocol.Position{
		Line:      refLoc.Range.Start.Line,
		Character: refLoc.Range.Start.Character + 2,
	}

	h := hover(result, content, pos)
	if h == nil {
		t.Fatal("expected non-nil hover for palette reference")
	}

	mc := h.Contents.(protocol.MarkupContent)
	if !strings.Contains(mc.Value, "palette.love") {
		t.Errorf("reference hover should lead with the reference text, got %q", mc.Value)
	}
	if !strings.Contains(mc.Value, "#eb6f92") {
		t.Errorf("reference hover missing resolved hex, got %q", mc.Value)
	}
}

func TestHoverOutsideColor(t *testing.T) {
	content := `palette {
  base = "#191724"
}
`
	result := Analyze("test.palette", content)

	if h := hover(result, content, protocol.Position{Line: 0, Character: 0}); h != nil {
		t.Errorf("expected nil hover outside any color, got %v", h)
	}
}

func TestHoverNilResult(t *testing.T) {
	if h := hover(nil, "", protocol.Position{}); h != nil {
		t.Errorf("expected nil hover for nil result, got %v", h)
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 4},
		End:   protocol.Position{Line: 1, Character: 10},
	}

	tests := []struct {
		name string
		pos  protocol.Position
		want bool
	}{
		{"inside", protocol.Position{Line: 1, Character: 6}, true},
		{"at start", protocol.Position{Line: 1, Character: 4}, true},
		{"at end is exclusive", protocol.Position{Line: 1, Character: 10}, false},
		{"before", protocol.Position{Line: 1, Character: 3}, false},
		{"wrong line", protocol.Position{Line: 2, Character: 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := posInRange(tt.pos, r); got != tt.want {
				t.Errorf("posInRange(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	content := "palette {\n  base = \"#191724\"\n}"

	got := extractText(content, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 6},
	})
	if got != "base" {
		t.Errorf("extractText() = %q, want %q", got, "base")
	}
}
