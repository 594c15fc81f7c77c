package lsp

import (
	"strings"

	"github.com/jsvensson/chromatic"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a chromatic.Color to a protocol.Color. Channels
// are clipped into [0, 1] first since the protocol type expects that
// range.
func colorToLSP(c chromatic.Color) protocol.Color {
	r, g, b, a := c.Clip().RGB()
	return protocol.Color{
		Red:   float32(r),
		Green: float32(g),
		Blue:  float32(b),
		Alpha: float32(a),
	}
}

// documentColors converts the analysis result's color locations into
// LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given
// color and range. Hex literals get a TextEdit replacing the old
// value; palette references are left alone so a color picker does not
// overwrite a reference with a literal.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := chromatic.RGBA(
		float64(params.Color.Red),
		float64(params.Color.Green),
		float64(params.Color.Blue),
		float64(params.Color.Alpha),
	)
	hexStr := c.Hex()

	text := extractText(content, params.Range)

	if strings.HasPrefix(text, "palette.") {
		return []protocol.ColorPresentation{}
	}

	if strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "#") {
		newText := hexStr
		if strings.HasPrefix(text, "\"") {
			newText = "\"" + hexStr + "\""
		}

		return []protocol.ColorPresentation{
			{
				Label: hexStr,
				TextEdit: &protocol.TextEdit{
					Range:   params.Range,
					NewText: newText,
				},
			},
		}
	}

	// Function calls and anything else: no replacement offered.
	return []protocol.ColorPresentation{}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.document(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
