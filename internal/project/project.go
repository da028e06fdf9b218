package project

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinobi-dev/shinobi/internal/branding"
	"github.com/shinobi-dev/shinobi/internal/delegate"
	"github.com/shinobi-dev/shinobi/internal/prompt"
	"github.com/shinobi-dev/shinobi/internal/pyproject"
	"github.com/shinobi-dev/shinobi/internal/scaffold"
)

// Dev-dependency pins, matching what the generated hooks and workflows run.
const (
	precommitRequirement = `"pre-commit>=3.0.0"`
	pytestRequirement    = `"pytest>=7.0.0"`
	ruffRequirement      = `"ruff>=0.3.0"`
)

const (
	devDependenciesSection = "[project.optional-dependencies]"
	devDependenciesField   = "dev"
)

// Initializer creates one project from interview answers. The output writer
// is an explicit collaborator; nothing in this package touches globals.
type Initializer struct {
	Answers   *prompt.Answers
	Author    string          // license/readme owner, may be empty
	Runner    delegate.Runner // executes the uv bootstrap
	Out       io.Writer       // progress report sink, io.Discard when nil
	ParentDir string          // directory the project is created under, "." when empty
}

func (in *Initializer) out() io.Writer {
	if in.Out == nil {
		return io.Discard
	}
	return in.Out
}

func (in *Initializer) parentDir() string {
	if in.ParentDir == "" {
		return "."
	}
	return in.ParentDir
}

// Dir returns the project directory path.
func (in *Initializer) Dir() string {
	return filepath.Join(in.parentDir(), in.Answers.Name)
}

// Create runs the whole sequence: uv init, restructure, manifest patches,
// artifact templates, next-steps report. A delegate failure aborts before
// any patching; files already written stay on disk.
func (in *Initializer) Create(ctx context.Context) error {
	a := in.Answers
	w := in.out()
	data := scaffold.NewData(a.Name, a.Description, in.Author, a.PythonVersion)

	fmt.Fprintf(w, "\nRunning %s init...\n", branding.Delegate())
	if err := in.Runner.Run(ctx, in.parentDir(), branding.Delegate(), "init", "--python", a.PythonVersion, a.Name); err != nil {
		return err
	}

	if err := in.restructure(data); err != nil {
		return err
	}
	if err := in.patchManifest(); err != nil {
		return err
	}
	if err := in.writeArtifacts(data); err != nil {
		return err
	}

	in.printNextSteps()
	return nil
}

// restructure moves the delegate's top-level stub into src/main.py and
// creates the tests package directory.
func (in *Initializer) restructure(data *scaffold.Data) error {
	dir := in.Dir()

	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return fmt.Errorf("creating src directory: %w", err)
	}

	// uv wrote hello.py historically, main.py in newer releases.
	moved := false
	for _, candidate := range []string{"hello.py", "main.py"} {
		p := filepath.Join(dir, candidate)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := os.Rename(p, filepath.Join(srcDir, "main.py")); err != nil {
			return fmt.Errorf("moving %s to src/main.py: %w", candidate, err)
		}
		moved = true
		break
	}
	if !moved {
		if err := scaffold.WriteFile(dir, "src/main.py", "main.py", data); err != nil {
			return err
		}
	}

	testsDir := filepath.Join(dir, "tests")
	if err := os.MkdirAll(testsDir, 0755); err != nil {
		return fmt.Errorf("creating tests directory: %w", err)
	}
	initFile := filepath.Join(testsDir, "__init__.py")
	if _, err := os.Stat(initFile); os.IsNotExist(err) {
		if err := os.WriteFile(initFile, nil, 0644); err != nil {
			return fmt.Errorf("creating tests/__init__.py: %w", err)
		}
	}
	return nil
}

// patchManifest applies every pyproject.toml edit against one in-memory
// text value and writes the file back once.
func (in *Initializer) patchManifest() error {
	path := filepath.Join(in.Dir(), "pyproject.toml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	a := in.Answers
	w := in.out()
	text := string(raw)
	var outcome pyproject.Outcome

	report := func(what string) {
		fmt.Fprintf(w, "  %s: %s\n", what, outcome)
	}

	if a.HasFeature(prompt.FeaturePrecommit) {
		text, outcome = pyproject.EnsureListEntry(text, devDependenciesSection, devDependenciesField, precommitRequirement)
		report("dev dependency " + precommitRequirement)

		text, outcome = pyproject.EnsureSection(text, "[tool.ruff]", ruffConfigBlock(a.PythonVersion))
		report("ruff configuration")
	}

	if a.HasFeature(prompt.FeatureGitHub) {
		text, outcome = pyproject.EnsureListEntry(text, devDependenciesSection, devDependenciesField, ruffRequirement)
		report("dev dependency " + ruffRequirement)
	}

	if a.HasFeature(prompt.FeaturePytest) {
		text, outcome = pyproject.EnsureListEntry(text, devDependenciesSection, devDependenciesField, pytestRequirement)
		report("dev dependency " + pytestRequirement)
	}

	text, outcome = pyproject.EnsureScalarField(text, "description", a.Description)
	if outcome != pyproject.OutcomeSkipped {
		report("description")
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeArtifacts renders the static templates selected by the answers.
func (in *Initializer) writeArtifacts(data *scaffold.Data) error {
	a := in.Answers
	w := in.out()

	write := func(relPath, tmplName string) error {
		if err := scaffold.WriteFile(in.Dir(), relPath, tmplName, data); err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\n", relPath)
		return nil
	}

	if a.HasFeature(prompt.FeaturePrecommit) {
		if err := write(".pre-commit-config.yaml", "precommit.yaml"); err != nil {
			return err
		}
	}

	if a.HasFeature(prompt.FeatureGitHub) {
		if err := in.writeWorkflow(".github/workflows/lint.yml", "workflow_lint.yml", data); err != nil {
			return err
		}
		if err := in.writeWorkflow(".github/workflows/test.yml", "workflow_test.yml", data); err != nil {
			return err
		}
	}

	if a.HasFeature(prompt.FeaturePytest) {
		if err := write("tests/test_main.py", "test_main.py"); err != nil {
			return err
		}
	}

	if err := write("README.md", "readme.md"); err != nil {
		return err
	}
	if err := write("LICENSE", "license"); err != nil {
		return err
	}
	if err := write(".gitignore", "gitignore"); err != nil {
		return err
	}

	switch a.IDE {
	case prompt.IDEVSCode:
		if err := write(".vscode/settings.json", "vscode_settings.json"); err != nil {
			return err
		}
	case prompt.IDECursor:
		if err := write(".cursor/rules/project.mdc", "cursor_rules.mdc"); err != nil {
			return err
		}
		if err := write(".cursorrules", "cursorrules"); err != nil {
			return err
		}
	}
	return nil
}

// writeWorkflow renders a workflow, schema-checks it, and writes it out.
// Validation problems are warnings, never fatal.
func (in *Initializer) writeWorkflow(relPath, tmplName string, data *scaffold.Data) error {
	w := in.out()

	content, err := scaffold.Render(tmplName, data)
	if err != nil {
		return err
	}

	result, verr := scaffold.ValidateWorkflow(content)
	switch {
	case verr != nil:
		fmt.Fprintf(w, "  warning: could not validate %s: %v\n", relPath, verr)
	case !result.Valid:
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  warning: %s: %s\n", relPath, issue)
		}
	}

	outPath := filepath.Join(in.Dir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(outPath, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	fmt.Fprintf(w, "  %s\n", relPath)
	return nil
}

func (in *Initializer) printNextSteps() {
	a := in.Answers
	w := in.out()

	fmt.Fprintf(w, "\nProject initialized successfully!\n\nNext steps:\n")
	fmt.Fprintf(w, "  1. cd %s\n", a.Name)
	fmt.Fprintf(w, "  2. Install dependencies: %s pip install -e '.[dev]'\n", branding.Delegate())
	step := 3
	if a.HasFeature(prompt.FeaturePrecommit) {
		fmt.Fprintf(w, "  %d. Set up pre-commit: pre-commit install\n", step)
		step++
	}
	if a.HasFeature(prompt.FeatureGitHub) {
		fmt.Fprintf(w, "  %d. Initialize git: git init && git add . && git commit -m 'Initial commit'\n", step)
	}
}

// ruffConfigBlock returns the [tool.ruff] configuration appended to
// pyproject.toml when pre-commit hooks are enabled.
func ruffConfigBlock(pythonVersion string) string {
	target := "py" + strings.ReplaceAll(pythonVersion, ".", "")
	return fmt.Sprintf(`[tool.ruff]
line-length = 88
target-version = "%s"
fix = true

[tool.ruff.lint]
select = ["E", "F", "I"]
ignore = ["E501"]

[tool.ruff.format]
quote-style = "double"
`, target)
}
