package lsp

import (
	"sort"
	"strings"

	"github.com/jsvensson/chromatic/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"meta", "palette", "derived"}

// complete produces completion items given an analysis result, document
// content, and cursor position. This is the core logic, decoupled from
// the LSP protocol handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if items := tryPaletteCompletion(result, textBeforeCursor); items != nil {
		return items
	}

	if isValuePosition(textBeforeCursor) {
		return valueCompletions()
	}

	if braceDepth(lines, int(pos.Line), charPos) == 0 {
		return blockCompletions()
	}

	return nil
}

// tryPaletteCompletion checks if the text before the cursor ends with a
// "palette." prefix and returns completion items for the palette
// entries known to the analysis result.
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || len(result.Palette) == 0 {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 {
		return nil
	}

	// The path fragment after "palette." must still be part of the same
	// reference: no spaces or operators.
	rest := textBeforeCursor[idx+len("palette."):]
	if strings.ContainsAny(rest, " \t(),=\"") {
		return nil
	}

	names := make([]string, 0, len(result.Palette))
	for name := range result.Palette {
		names = append(names, name)
	}
	sort.Strings(names)

	kind := protocol.CompletionItemKindColor
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		hex := result.Palette[name].Hex()
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: &hex,
		})
	}
	return items
}

// isValuePosition returns true when the cursor sits after an attribute
// assignment on the current line.
func isValuePosition(textBeforeCursor string) bool {
	return strings.Contains(textBeforeCursor, "=")
}

// valueCompletions offers the palette functions and the palette
// reference root in attribute value position.
func valueCompletions() []protocol.CompletionItem {
	fnKind := protocol.CompletionItemKindFunction
	modKind := protocol.CompletionItemKindModule

	names := palette.FunctionNames()
	items := make([]protocol.CompletionItem, 0, len(names)+1)
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &fnKind,
		})
	}
	items = append(items, protocol.CompletionItem{
		Label: "palette",
		Kind:  &modKind,
	})
	return items
}

// blockCompletions offers the top-level block keywords.
func blockCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(topLevelBlocks))
	for _, name := range topLevelBlocks {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}
	return items
}

// braceDepth counts unclosed braces from the start of the document up
// to the cursor, to distinguish top level from block bodies. Brace
// characters inside strings are rare in palette files and are counted
// anyway; this is a heuristic, not a parse.
func braceDepth(lines []string, line, char int) int {
	depth := 0
	for i := 0; i <= line && i < len(lines); i++ {
		text := lines[i]
		if i == line {
			text = text[:min(char, len(text))]
		}
		depth += strings.Count(text, "{") - strings.Count(text, "}")
	}
	return depth
}

// textDocumentCompletion handles textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	content, ok := s.document(uri)
	if !ok {
		return nil, nil
	}

	return complete(result, content, params.Position), nil
}
