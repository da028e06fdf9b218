package pyproject

import (
	"regexp"
	"strings"
)

// Outcome reports which path a patch operation took. Callers and tests can
// distinguish a real edit from a degraded fallback or a no-op.
type Outcome int

const (
	// OutcomeApplied means the edit was made at the expected anchor.
	OutcomeApplied Outcome = iota
	// OutcomeAppended means the anchor was missing and the content was
	// appended at the end of the file instead.
	OutcomeAppended
	// OutcomeAlreadyPresent means the text already satisfied the request.
	OutcomeAlreadyPresent
	// OutcomeAnchorNotFound means the pattern the edit depends on did not
	// match; the operation degraded to a fallback rather than failing.
	OutcomeAnchorNotFound
	// OutcomeSkipped means the input value was empty and nothing was done.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeAppended:
		return "appended"
	case OutcomeAlreadyPresent:
		return "already-present"
	case OutcomeAnchorNotFound:
		return "anchor-not-found"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// buildSystemHeader is the insertion anchor for new sections: uv always
// writes a [build-system] table, so new sections slot in just before it.
const buildSystemHeader = "[build-system]"

// scalarAnchorField is the field whose line anchors scalar insertions.
const scalarAnchorField = "name"

// EnsureListEntry guarantees that literal is a member of the array field
// listField inside sectionHeader, creating the section if it is absent.
// The presence check is file-wide: if literal occurs anywhere in text the
// operation is a no-op, which keeps repeated application from duplicating
// entries.
func EnsureListEntry(text, sectionHeader, listField, literal string) (string, Outcome) {
	if strings.Contains(text, literal) {
		return text, OutcomeAlreadyPresent
	}

	if !strings.Contains(text, sectionHeader) {
		block := "\n" + sectionHeader + "\n" + listField + " = [\n    " + literal + ",\n]\n"
		if strings.Contains(text, buildSystemHeader) {
			return strings.Replace(text, buildSystemHeader, strings.TrimPrefix(block, "\n")+"\n"+buildSystemHeader, 1), OutcomeApplied
		}
		return text + block, OutcomeAppended
	}

	// The section exists but the literal does not. Match from the field name
	// through the closing bracket of its array. Non-nested arrays only.
	pat := regexp.MustCompile(`(` + regexp.QuoteMeta(sectionHeader) + `\s*\n` + regexp.QuoteMeta(listField) + `\s*=\s*\[(?:[^\]]*\n)?)(\])`)
	loc := pat.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, OutcomeAnchorNotFound
	}

	// Insert just before the closing bracket, matching the four-space
	// indentation of sibling elements.
	closeAt := loc[4]
	return text[:closeAt] + "    " + literal + ",\n" + text[closeAt:], OutcomeApplied
}

// EnsureScalarField guarantees that field holds value as a double-quoted
// string. An empty placeholder assignment is preferred as the replacement
// target; failing that, any existing assignment is rewritten; failing that,
// a new line is inserted after the name field. An empty value is a no-op.
func EnsureScalarField(text, field, value string) (string, Outcome) {
	if value == "" {
		return text, OutcomeSkipped
	}

	line := field + ` = "` + escapeScalar(value) + `"`

	placeholder := field + ` = ""`
	if strings.Contains(text, placeholder) {
		return strings.Replace(text, placeholder, line, 1), OutcomeApplied
	}

	assignPat := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(field) + `\s*=\s*.*$`)
	if loc := assignPat.FindStringIndex(text); loc != nil {
		if text[loc[0]:loc[1]] == line {
			return text, OutcomeAlreadyPresent
		}
		return text[:loc[0]] + line + text[loc[1]:], OutcomeApplied
	}

	anchorPat := regexp.MustCompile(`(?m)^` + scalarAnchorField + `\s*=\s*.*$`)
	if loc := anchorPat.FindStringIndex(text); loc != nil {
		return text[:loc[1]] + "\n" + line + text[loc[1]:], OutcomeAppended
	}

	// No anchor line at all; append at the end so the value is not lost.
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + line + "\n", OutcomeAnchorNotFound
}

// EnsureSection guarantees that a section block exists, appending it at the
// end of the file when the header is absent. The block is written verbatim.
func EnsureSection(text, header, block string) (string, Outcome) {
	if strings.Contains(text, header) {
		return text, OutcomeAlreadyPresent
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	return text + "\n" + block, OutcomeAppended
}

// escapeScalar escapes backslashes and double quotes and turns raw newlines
// into the two-character \n sequence so the value stays on a single valid
// TOML line. Backslashes go first so the other escapes are not doubled.
func escapeScalar(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	value = strings.ReplaceAll(value, "\n", `\n`)
	return value
}
