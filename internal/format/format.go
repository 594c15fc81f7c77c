// Package format canonicalizes .palette HCL source.
package format

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	blankRuns        = regexp.MustCompile(`\n{3,}`)
	blankAfterOpen   = regexp.MustCompile(`\{\n\s*\n`)
	blankBeforeClose = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Format returns src in canonical HCL style: hclwrite handles
// indentation and attribute alignment, then runs of blank lines are
// collapsed, blank lines hugging braces are removed, and a trailing
// newline is guaranteed.
//
// hclwrite tolerates partial or invalid HCL, so Format is safe to run
// on files the user is still editing.
func Format(src string) string {
	if src == "" {
		return ""
	}
	out := string(hclwrite.Format([]byte(src)))
	out = blankRuns.ReplaceAllString(out, "\n\n")
	out = blankAfterOpen.ReplaceAllString(out, "{\n")
	out = blankBeforeClose.ReplaceAllString(out, "\n${1}")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// Formatted reports whether src is already in canonical style.
func Formatted(src string) bool {
	return Format(src) == src
}
