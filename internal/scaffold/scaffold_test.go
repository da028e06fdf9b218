package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewData(t *testing.T) {
	d := NewData("demo", "A test project", "octocat", "3.12")
	if d.Name != "demo" {
		t.Errorf("Name = %q, want %q", d.Name, "demo")
	}
	if d.Year != time.Now().Year() {
		t.Errorf("Year = %d, want %d", d.Year, time.Now().Year())
	}
}

func TestRuffTarget(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"3.11", "py311"},
		{"3.12", "py312"},
	}
	for _, tt := range tests {
		d := NewData("demo", "", "", tt.version)
		if got := d.RuffTarget(); got != tt.want {
			t.Errorf("RuffTarget(%s) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestRenderReadme(t *testing.T) {
	t.Run("with description", func(t *testing.T) {
		out := renderString(t, "readme.md", NewData("demo", "A test project", "octocat", "3.12"))
		if !strings.Contains(out, "# demo") {
			t.Error("readme should contain the project name heading")
		}
		if !strings.Contains(out, "A test project") {
			t.Error("readme should contain the description")
		}
		if !strings.Contains(out, "github.com/octocat/demo.git") {
			t.Error("readme clone URL should use the author")
		}
	})

	t.Run("description fallback", func(t *testing.T) {
		out := renderString(t, "readme.md", NewData("demo", "", "", "3.12"))
		if !strings.Contains(out, "A Python project initialized with Shinobi.") {
			t.Error("readme should fall back to the default description")
		}
		if !strings.Contains(out, "github.com/yourusername/demo.git") {
			t.Error("readme clone URL should fall back to a placeholder owner")
		}
	})
}

func TestRenderLicense(t *testing.T) {
	d := NewData("demo", "", "octocat", "3.12")
	out := renderString(t, "license", d)

	if !strings.Contains(out, "MIT License") {
		t.Error("license should be MIT")
	}
	want := fmt.Sprintf("Copyright (c) %d octocat", d.Year)
	if !strings.Contains(out, want) {
		t.Errorf("license should contain %q, got:\n%s", want, out)
	}
}

func TestRenderWorkflowsPinPythonVersion(t *testing.T) {
	for _, name := range []string{"workflow_lint.yml", "workflow_test.yml"} {
		out := renderString(t, name, NewData("demo", "", "", "3.11"))
		if !strings.Contains(out, "python-version: '3.11'") {
			t.Errorf("%s should pin the chosen Python version, got:\n%s", name, out)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("no-such-template", NewData("demo", "", "", "3.12"))
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestWriteFileCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	d := NewData("demo", "", "", "3.12")

	if err := WriteFile(dir, ".github/workflows/lint.yml", "workflow_lint.yml", d); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".github", "workflows", "lint.yml"))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if !strings.Contains(string(data), "name: Lint") {
		t.Errorf("written workflow missing name, got:\n%s", data)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func renderString(t *testing.T, tmplName string, d *Data) string {
	t.Helper()
	out, err := Render(tmplName, d)
	if err != nil {
		t.Fatalf("Render(%s) error: %v", tmplName, err)
	}
	return string(out)
}
