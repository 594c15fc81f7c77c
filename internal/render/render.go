// Package render executes Go templates against a resolved palette,
// for exporting swatches and application config snippets.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/chromatic"
	"github.com/jsvensson/chromatic/internal/palette"
)

// Renderer loads and executes Go templates against a resolved palette.
type Renderer struct {
	TemplatesDir string
	OutputDir    string
	Only         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the given palette data, and writes output files named after each
// template.
func (r *Renderer) Run(p *palette.Palette) error {
	pattern := filepath.Join(r.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", r.TemplatesDir)
	}

	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !r.shouldRender(baseName) {
			continue
		}

		if err := r.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) shouldRender(name string) bool {
	// If no names are specified, render all.
	if len(r.Only) == 0 {
		return true
	}

	return slices.Contains(r.Only, name)
}

func (r *Renderer) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(r.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Meta    palette.Meta
	Colors  map[string]chromatic.Color
	Derived map[string]chromatic.Color
	FuncMap template.FuncMap
}

func buildTemplateData(p *palette.Palette) templateData {
	return templateData{
		Meta:    p.Meta,
		Colors:  p.Colors,
		Derived: p.Derived,
		FuncMap: template.FuncMap{
			"hex": func(c chromatic.Color) string {
				return c.Hex()
			},
			"hexbare": func(c chromatic.Color) string {
				return strings.TrimPrefix(c.Hex(), "#")
			},
			"rgb": func(c chromatic.Color) string {
				return c.String()
			},
			"hsl": func(c chromatic.Color) string {
				h, s, l, _ := c.HSL()
				return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
			},
			"lab": func(c chromatic.Color) string {
				l, a, b, _ := c.Lab()
				return fmt.Sprintf("lab(%.1f, %.1f, %.1f)", l, a, b)
			},
			"color": func(name string) chromatic.Color {
				c, _ := p.Color(name)
				return c
			},
		},
	}
}
