// Package delegate shells out to the external package manager (uv) that
// performs the actual environment bootstrap. Argument-list normalization is
// a pure function so the rewrite rule is testable without spawning a
// process; execution itself is blocking with no retry.
package delegate
