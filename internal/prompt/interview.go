package prompt

import (
	"fmt"
)

// Feature values selectable during the interview.
const (
	FeatureGitHub    = "github"
	FeaturePrecommit = "precommit"
	FeaturePytest    = "pytest"
)

// IDE values selectable during the interview.
const (
	IDEVSCode = "vscode"
	IDECursor = "cursor"
	IDENone   = "none"
)

// PythonVersions enumerates the supported interpreter targets.
var PythonVersions = []string{"3.11", "3.12"}

// Answers holds everything the interview collects. Fields pre-filled in the
// preset (from flags or saved preferences) are not asked again.
type Answers struct {
	Name          string
	Description   string
	PythonVersion string
	IDE           string
	Features      []string
}

// Run walks the user through the full interview. Prompts happen in a fixed
// order: name, description, Python version, IDE, features. No file is
// touched here; cancellation at any point leaves the system untouched.
func Run(iv *Interviewer, preset Answers) (*Answers, error) {
	a := preset

	fmt.Fprintf(iv.out, "\nLet's set up your project.\n\n")

	if a.Name == "" {
		name, err := iv.ValidatedText("Project name", ValidateProjectName)
		if err != nil {
			return nil, err
		}
		a.Name = name
	} else if err := ValidateProjectName(a.Name); err != nil {
		return nil, err
	}

	if a.Description == "" {
		desc, err := iv.Text("Project description", "")
		if err != nil {
			return nil, err
		}
		a.Description = desc
	}

	if a.PythonVersion == "" {
		choices := make([]Choice, len(PythonVersions))
		for i, v := range PythonVersions {
			choices[i] = Choice{Name: "Python " + v, Value: v}
		}
		version, err := iv.Select("Which Python version would you like to use?", choices, 0)
		if err != nil {
			return nil, err
		}
		a.PythonVersion = version
	}

	if a.IDE == "" {
		ide, err := iv.Select("Which editor should be configured?", []Choice{
			{Name: "VS Code", Value: IDEVSCode, Description: "write .vscode/settings.json"},
			{Name: "Cursor", Value: IDECursor, Description: "write Cursor assistant rules"},
			{Name: "None", Value: IDENone, Description: "skip editor configuration"},
		}, 0)
		if err != nil {
			return nil, err
		}
		a.IDE = ide
	}

	if a.Features == nil {
		features, err := iv.MultiSelect("Select additional features to include:", []Choice{
			{Name: "GitHub Actions", Value: FeatureGitHub, Description: "lint and test workflows", Checked: true},
			{Name: "Pre-commit hooks", Value: FeaturePrecommit, Description: "pre-commit hooks for Ruff", Checked: true},
			{Name: "Pytest", Value: FeaturePytest, Description: "pytest for testing", Checked: true},
		})
		if err != nil {
			return nil, err
		}
		a.Features = features
	}

	return &a, nil
}

// HasFeature reports whether the given feature was selected.
func (a *Answers) HasFeature(feature string) bool {
	for _, f := range a.Features {
		if f == feature {
			return true
		}
	}
	return false
}
