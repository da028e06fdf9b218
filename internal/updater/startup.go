package updater

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shinobi-dev/shinobi/internal/branding"
)

// CheckAndPrintBanner checks the version cache and prints an update banner if
// a newer version is available. It never blocks the command being run — when
// the cache is stale, a background goroutine refreshes it for the next
// invocation.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	cached, err := LoadCache(configDir)
	if err != nil {
		// Silently ignore cache errors.
		return
	}

	if cached != nil && cached.UpdateAvailable {
		PrintUpdateBanner(w, cached)
	}

	if cached.Stale(DefaultCacheMaxAge) {
		go u.refreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, result *CheckResult) {
	url := result.ReleaseURL
	if url == "" {
		url = fmt.Sprintf("https://github.com/%s/releases/latest", branding.GitHubRepo())
	}
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintf(w, "    %s\n\n", url)
}

// refreshCache fetches the latest version and updates the cache file.
// This runs in a background goroutine and never fails loudly.
func (u *Updater) refreshCache(configDir string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	release, err := u.LatestRelease(ctx)
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.Version)
	if err != nil {
		return
	}

	// Silently ignore save errors.
	_ = SaveCache(configDir, &CheckResult{
		LatestVersion:   release.Version,
		CurrentVersion:  u.currentVersion,
		ReleaseURL:      release.HTMLURL,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}
