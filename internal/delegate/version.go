package delegate

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/shinobi-dev/shinobi/internal/branding"
)

// MinVersion is the oldest delegate release the generated projects are
// known to work with.
const MinVersion = "0.4.0"

var versionPattern = regexp.MustCompile(`\b(\d+\.\d+\.\d+)\b`)

// Version runs `uv --version` and returns the parsed version. A missing
// binary is an error; callers check this before writing any file.
func Version(ctx context.Context) (*semver.Version, error) {
	name := branding.Delegate()
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s is required but was not found in PATH: %w", name, err)
	}

	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", name, err)
	}

	return ParseVersion(string(out))
}

// ParseVersion extracts the first semver-looking token from version output
// such as "uv 0.4.18 (f70b2f4 2024-10-01)".
func ParseVersion(output string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("could not find a version in %q", output)
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", m[1], err)
	}
	return v, nil
}

// MeetsMinimum reports whether v satisfies the minimum supported delegate
// version. Older versions still run; callers only warn.
func MeetsMinimum(v *semver.Version) bool {
	min := semver.MustParse(MinVersion)
	return !v.LessThan(min)
}
