package delegate

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/shinobi-dev/shinobi/internal/branding"
)

// Runner executes a delegate command in a working directory. Implementations
// block until the command finishes and return an error on non-zero exit.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming output to the configured
// writers (os.Stdout/os.Stderr when unset).
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run normalizes args through Rewrite, resolves the binary, and executes it
// in dir. A non-zero exit is returned as an error carrying the full command
// line so the caller can report exactly what failed.
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) error {
	args = Rewrite(args)
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}

	bin, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", args[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, args[1:]...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running command %q: %w", strings.Join(args, " "), err)
	}
	return nil
}

// Rewrite normalizes plain interpreter-style install invocations to the
// delegate's own subcommand: "pip ..." and "python -m pip ..." both become
// "uv pip ...". All other argument lists pass through unchanged.
func Rewrite(args []string) []string {
	switch {
	case len(args) >= 1 && args[0] == "pip":
		return append([]string{branding.Delegate(), "pip"}, args[1:]...)
	case len(args) >= 3 && args[0] == "python" && args[1] == "-m" && args[2] == "pip":
		return append([]string{branding.Delegate(), "pip"}, args[3:]...)
	}
	return args
}
