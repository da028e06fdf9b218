package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "version-check.json"
	// DefaultCacheMaxAge is the default maximum age for the version cache.
	DefaultCacheMaxAge = 24 * time.Hour
)

// CheckResult is one cached version check, stored under the config directory
// so the banner never costs a network round trip.
type CheckResult struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	ReleaseURL      string    `json:"release_url"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// Stale reports whether the result is older than maxAge. A nil result is
// always stale.
func (c *CheckResult) Stale(maxAge time.Duration) bool {
	if c == nil {
		return true
	}
	return time.Since(c.CheckedAt) > maxAge
}

// LoadCache reads the cached check result from the config directory.
// Returns nil, nil if the cache file does not exist (first run).
func LoadCache(configDir string) (*CheckResult, error) {
	path := filepath.Join(configDir, cacheFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	var result CheckResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return &result, nil
}

// SaveCache writes the check result to the config directory.
func SaveCache(configDir string, result *CheckResult) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}

	path := filepath.Join(configDir, cacheFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	return nil
}
