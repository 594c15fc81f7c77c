package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDocumentColors(t *testing.T) {
	content := `palette {
  base = "#191724"
  love = "#eb6f92"
}
`
	result := Analyze("test.palette", content)
	infos := documentColors(result)

	if len(infos) != 2 {
		t.Fatalf("len(infos) = %d, want 2", len(infos))
	}
	for _, info := range infos {
		if info.Color.Alpha != 1.0 {
			t.Errorf("alpha = %v, want 1.0", info.Color.Alpha)
		}
	}
}

func TestDocumentColorsNilResult(t *testing.T) {
	if infos := documentColors(nil); len(infos) != 0 {
		t.Errorf("expected empty slice for nil result, got %v", infos)
	}
}

func TestColorPresentationHexLiteral(t *testing.T) {
	content := `palette {
  base = "#191724"
}
`
	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 9},
			End:   protocol.Position{Line: 1, Character: 18},
		},
	}

	presentations := colorPresentation(content, params)
	if len(presentations) != 1 {
		t.Fatalf("len(presentations) = %d, want 1", len(presentations))
	}
	if presentations[0].Label != "#ff0000" {
		t.Errorf("label = %q, want %q", presentations[0].Label, "#ff0000")
	}
	if got := presentations[0].TextEdit.NewText; !strings.HasPrefix(got, "\"") {
		t.Errorf("quoted literal should stay quoted, got %q", got)
	}
}

func TestColorPresentationReference(t *testing.T) {
	content := `derived {
  brand = palette.love
}
`
	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 10},
			End:   protocol.Position{Line: 1, Character: 22},
		},
	}

	// References must not be replaced with literals.
	if presentations := colorPresentation(content, params); len(presentations) != 0 {
		t.Errorf("expected no presentations for a reference, got %v", presentations)
	}
}
