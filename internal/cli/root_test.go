package cli

import (
	"bytes"
	"strings"
	"testing"
)

// Errors from RunE must reach Execute's caller intact: main prints them
// once, so cobra itself must stay silent and the returned error must carry
// the failing detail.
func TestExecuteSurfacesCommandErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"config", "set", "bogus", "x"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute("test", "none", "none")
	if err == nil {
		t.Fatal("expected an error for an unknown config key")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the failing key, got: %v", err)
	}

	// No double reporting: cobra must not print the error itself.
	if strings.Contains(out.String(), "bogus") || strings.Contains(errOut.String(), "bogus") {
		t.Errorf("error was printed by the command tree:\nstdout: %s\nstderr: %s", out.String(), errOut.String())
	}
}
