// Package scaffold renders the static project artifacts (README, LICENSE,
// CI workflows, pre-commit config, editor settings, ignore-file, test stub)
// from embedded templates. Templates are parameterized only by project
// name, description, author, and Python version; generated workflow YAML is
// checked against a minimal JSON Schema and problems surface as warnings.
package scaffold
