// Package prompt implements the interactive interview that collects project
// settings before any file is written. All prompts run over an explicit
// io.Reader/io.Writer pair so the flow is testable with scripted input, and
// interruption (EOF) at any prompt surfaces as ErrCancelled.
package prompt
