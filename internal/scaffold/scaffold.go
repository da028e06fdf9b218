package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

// Data holds all template variables available to project templates.
type Data struct {
	Name          string // project name, e.g. "demo"
	Description   string // free-text description, may be empty
	Author        string // license/readme owner, may be empty
	PythonVersion string // e.g. "3.12"
	Year          int    // current year, for the license
}

// NewData creates a Data with the current year populated.
func NewData(name, description, author, pythonVersion string) *Data {
	return &Data{
		Name:          name,
		Description:   description,
		Author:        author,
		PythonVersion: pythonVersion,
		Year:          time.Now().Year(),
	}
}

// RuffTarget derives the ruff target-version token, e.g. "3.12" → "py312".
func (d *Data) RuffTarget() string {
	return "py" + strings.ReplaceAll(d.PythonVersion, ".", "")
}

// Render executes the named embedded template with data.
func Render(tmplName string, data *Data) ([]byte, error) {
	tmplBytes, err := templateFS.ReadFile("templates/" + tmplName + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", tmplName, err)
	}

	tmpl, err := template.New(tmplName).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the named template and writes it to relPath inside
// projectDir, creating parent directories as needed.
func WriteFile(projectDir, relPath, tmplName string, data *Data) error {
	content, err := Render(tmplName, data)
	if err != nil {
		return err
	}

	outPath := filepath.Join(projectDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(outPath, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	return nil
}
