// Package project orchestrates a full project creation: delegate bootstrap
// via uv, src-layout restructuring, pyproject.toml patching, and template
// artifact generation. Everything runs sequentially against one directory;
// a failure aborts with whatever was already written left in place.
package project
