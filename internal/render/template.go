package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/example/tatlam/internal/core/scenario"
)

//go:embed templates/scenario_card.md.tmpl
var defaultCardTemplate string

// LoadTemplate parses the card template at path, or the embedded default
// card when path is empty. A missing or unreadable explicit path is a
// configuration error and fails here, before any record is touched.
func LoadTemplate(path string) (*template.Template, error) {
	if path == "" {
		return template.New("scenario_card").Parse(defaultCardTemplate)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	tpl, err := template.New(filepath.Base(path)).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	return tpl, nil
}

// Card renders one coerced scenario through the template, with the
// scenario's fields exposed as top-level variables.
func Card(tpl *template.Template, s scenario.Scenario) (string, error) {
	ctx, err := s.Context()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("failed to render scenario %d: %w", s.ID, err)
	}
	return buf.String(), nil
}
