// Package pyproject applies idempotent textual edits to pyproject.toml
// content. It deliberately avoids a TOML parse/serialize round trip so that
// comments, ordering, and formatting the user hand-edited stay untouched;
// every operation is a literal or regex anchored insertion that reports
// which path it took via an Outcome.
package pyproject
