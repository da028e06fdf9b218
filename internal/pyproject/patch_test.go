package pyproject

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

const baseManifest = `[project]
name = "demo"
version = "0.1.0"
description = ""
readme = "README.md"
requires-python = ">=3.12"
dependencies = []

[build-system]
requires = ["hatchling"]
build-backend = "hatchling.build"
`

const devSection = "[project.optional-dependencies]"

func TestEnsureListEntry_CreatesSectionBeforeBuildSystem(t *testing.T) {
	out, outcome := EnsureListEntry(baseManifest, devSection, "dev", `"pre-commit>=3.0.0"`)

	if outcome != OutcomeApplied {
		t.Errorf("outcome = %s, want applied", outcome)
	}
	if n := strings.Count(out, `"pre-commit>=3.0.0"`); n != 1 {
		t.Errorf("literal occurs %d times, want 1", n)
	}
	if n := strings.Count(out, devSection); n != 1 {
		t.Errorf("section header occurs %d times, want 1", n)
	}

	// The new section must come before [build-system].
	if strings.Index(out, devSection) > strings.Index(out, "[build-system]") {
		t.Error("new section should be inserted before [build-system]")
	}
	assertValidTOML(t, out)
}

func TestEnsureListEntry_AppendsWhenAnchorMissing(t *testing.T) {
	text := "[project]\nname = \"demo\"\n"
	out, outcome := EnsureListEntry(text, devSection, "dev", `"pytest>=7.0.0"`)

	if outcome != OutcomeAppended {
		t.Errorf("outcome = %s, want appended", outcome)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "]") {
		t.Errorf("appended block should end with closing bracket, got:\n%s", out)
	}
	assertValidTOML(t, out)
}

func TestEnsureListEntry_InsertsIntoExistingArray(t *testing.T) {
	text := baseManifest + `
[project.optional-dependencies]
dev = [
    "pre-commit>=3.0.0",
]
`
	out, outcome := EnsureListEntry(text, devSection, "dev", `"pytest>=7.0.0"`)

	if outcome != OutcomeApplied {
		t.Errorf("outcome = %s, want applied", outcome)
	}
	if !strings.Contains(out, "    \"pytest>=7.0.0\",\n]") {
		t.Errorf("entry should be inserted before the closing bracket, got:\n%s", out)
	}
	// The sibling entry is untouched.
	if !strings.Contains(out, `"pre-commit>=3.0.0",`) {
		t.Error("existing entry should be preserved")
	}
	assertValidTOML(t, out)
}

func TestEnsureListEntry_Idempotent(t *testing.T) {
	once, _ := EnsureListEntry(baseManifest, devSection, "dev", `"pre-commit>=3.0.0"`)
	twice, outcome := EnsureListEntry(once, devSection, "dev", `"pre-commit>=3.0.0"`)

	if outcome != OutcomeAlreadyPresent {
		t.Errorf("outcome = %s, want already-present", outcome)
	}
	if once != twice {
		t.Errorf("second application changed text:\n--- once ---\n%s\n--- twice ---\n%s", once, twice)
	}
}

func TestEnsureListEntry_PresenceCheckIsFileWide(t *testing.T) {
	// The literal appearing anywhere, even in a comment, suppresses the
	// insertion. This matches the coarse idempotence rule.
	text := "# remember to pin \"pytest>=7.0.0\" here\n" + baseManifest
	out, outcome := EnsureListEntry(text, devSection, "dev", `"pytest>=7.0.0"`)

	if outcome != OutcomeAlreadyPresent {
		t.Errorf("outcome = %s, want already-present", outcome)
	}
	if out != text {
		t.Error("text should be unchanged when literal is present anywhere")
	}
}

func TestEnsureListEntry_AnchorNotFoundIsNoop(t *testing.T) {
	// Section header present, but the named array field does not exist:
	// the closing-bracket pattern cannot match and the text is unchanged.
	text := baseManifest + "\n[project.optional-dependencies]\ntest = { extras = true }\n"
	out, outcome := EnsureListEntry(text, devSection, "dev", `"pytest>=7.0.0"`)

	if outcome != OutcomeAnchorNotFound {
		t.Errorf("outcome = %s, want anchor-not-found", outcome)
	}
	if out != text {
		t.Error("degraded path must leave text unchanged")
	}
}

func TestEnsureScalarField_ReplacesPlaceholder(t *testing.T) {
	out, outcome := EnsureScalarField(baseManifest, "description", "A test project")

	if outcome != OutcomeApplied {
		t.Errorf("outcome = %s, want applied", outcome)
	}
	if !strings.Contains(out, `description = "A test project"`) {
		t.Errorf("output missing patched description:\n%s", out)
	}
	if strings.Contains(out, `description = ""`) {
		t.Error("empty placeholder should be gone")
	}
	assertValidTOML(t, out)
}

func TestEnsureScalarField_EmptyValueIsNoop(t *testing.T) {
	out, outcome := EnsureScalarField(baseManifest, "description", "")

	if outcome != OutcomeSkipped {
		t.Errorf("outcome = %s, want skipped", outcome)
	}
	if out != baseManifest {
		t.Error("empty value must leave text byte-identical")
	}
}

func TestEnsureScalarField_Idempotent(t *testing.T) {
	once, _ := EnsureScalarField(baseManifest, "description", "A test project")
	twice, outcome := EnsureScalarField(once, "description", "A test project")

	if outcome != OutcomeAlreadyPresent {
		t.Errorf("outcome = %s, want already-present", outcome)
	}
	if once != twice {
		t.Error("second application changed text")
	}
}

func TestEnsureScalarField_ReplacesExistingValue(t *testing.T) {
	once, _ := EnsureScalarField(baseManifest, "description", "first")
	out, outcome := EnsureScalarField(once, "description", "second")

	if outcome != OutcomeApplied {
		t.Errorf("outcome = %s, want applied", outcome)
	}
	if n := strings.Count(out, "description = "); n != 1 {
		t.Errorf("description assigned %d times, want 1", n)
	}
	if !strings.Contains(out, `description = "second"`) {
		t.Errorf("output missing replacement value:\n%s", out)
	}
}

func TestEnsureScalarField_EscapesQuotesAndNewlines(t *testing.T) {
	out, outcome := EnsureScalarField(baseManifest, "description", "a \"quoted\"\nmultiline value")

	if outcome != OutcomeApplied {
		t.Errorf("outcome = %s, want applied", outcome)
	}
	want := `description = "a \"quoted\"\nmultiline value"`
	if !strings.Contains(out, want) {
		t.Errorf("output missing escaped assignment %q:\n%s", want, out)
	}
	// The value must stay on one physical line.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "description = ") && line != want {
			t.Errorf("description line = %q, want %q", line, want)
		}
	}
	assertValidTOML(t, out)
}

func TestEnsureScalarField_EscapesBackslashes(t *testing.T) {
	out, outcome := EnsureScalarField(baseManifest, "description", `Sources live in C:\projects`)

	if outcome != OutcomeApplied {
		t.Errorf("outcome = %s, want applied", outcome)
	}
	want := `description = "Sources live in C:\\projects"`
	if !strings.Contains(out, want) {
		t.Errorf("output missing escaped assignment %q:\n%s", want, out)
	}
	assertValidTOML(t, out)
}

func TestEnsureScalarField_InsertsAfterNameLine(t *testing.T) {
	text := "[project]\nname = \"demo\"\nversion = \"0.1.0\"\n"
	out, outcome := EnsureScalarField(text, "description", "fresh")

	if outcome != OutcomeAppended {
		t.Errorf("outcome = %s, want appended", outcome)
	}
	if !strings.Contains(out, "name = \"demo\"\ndescription = \"fresh\"\n") {
		t.Errorf("description should follow the name line:\n%s", out)
	}
	assertValidTOML(t, out)
}

func TestEnsureScalarField_AnchorNotFoundAppendsAtEnd(t *testing.T) {
	text := "# just a comment, no assignments"
	out, outcome := EnsureScalarField(text, "description", "fresh")

	if outcome != OutcomeAnchorNotFound {
		t.Errorf("outcome = %s, want anchor-not-found", outcome)
	}
	if !strings.HasSuffix(out, "description = \"fresh\"\n") {
		t.Errorf("value should be appended at end:\n%s", out)
	}
}

func TestEnsureSection_AppendsOnce(t *testing.T) {
	block := "[tool.ruff]\nline-length = 88\n"

	once, outcome := EnsureSection(baseManifest, "[tool.ruff]", block)
	if outcome != OutcomeAppended {
		t.Errorf("outcome = %s, want appended", outcome)
	}

	twice, outcome := EnsureSection(once, "[tool.ruff]", block)
	if outcome != OutcomeAlreadyPresent {
		t.Errorf("outcome = %s, want already-present", outcome)
	}
	if once != twice {
		t.Error("second application changed text")
	}
	if n := strings.Count(once, "[tool.ruff]"); n != 1 {
		t.Errorf("section occurs %d times, want 1", n)
	}
	assertValidTOML(t, once)
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeApplied, "applied"},
		{OutcomeAppended, "appended"},
		{OutcomeAlreadyPresent, "already-present"},
		{OutcomeAnchorNotFound, "anchor-not-found"},
		{OutcomeSkipped, "skipped"},
		{Outcome(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

// assertValidTOML checks that patched text still parses as TOML. The
// patcher itself never validates; this guards the invariant that edits on
// well-formed input keep it well-formed.
func assertValidTOML(t *testing.T, text string) {
	t.Helper()
	var v map[string]interface{}
	if err := toml.Unmarshal([]byte(text), &v); err != nil {
		t.Errorf("patched text is not valid TOML: %v\n--- text ---\n%s", err, text)
	}
}
