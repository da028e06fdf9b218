package prompt

import (
	"errors"
	"fmt"
)

// ValidateProjectName checks that a project name is non-empty, starts and
// ends with an alphanumeric character, and contains only alphanumerics,
// hyphens, underscores, and dots in between. The returned error carries the
// reason shown to the user before the prompt is re-issued.
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.New("project name must not be empty")
	}

	runes := []rune(name)
	if !isAlnum(runes[0]) {
		return fmt.Errorf("project name must start with a letter or digit, got %q", runes[0])
	}
	if !isAlnum(runes[len(runes)-1]) {
		return fmt.Errorf("project name must end with a letter or digit, got %q", runes[len(runes)-1])
	}
	for _, r := range runes {
		if !isAlnum(r) && r != '-' && r != '_' && r != '.' {
			return fmt.Errorf("project name contains invalid character %q: only letters, digits, '-', '_', and '.' are allowed", r)
		}
	}
	return nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
