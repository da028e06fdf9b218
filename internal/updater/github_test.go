package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"tag_name": "v0.2.0",
			"published_at": "2026-08-01T12:00:00Z",
			"html_url": "https://github.com/shinobi-dev/shinobi/releases/tag/v0.2.0"
		}`))
	}))
	defer srv.Close()

	u := New("0.1.0", WithAPIBase(srv.URL), WithHTTPClient(srv.Client()))
	release, err := u.LatestRelease(context.Background())
	if err != nil {
		t.Fatalf("LatestRelease() error: %v", err)
	}

	if release.Version != "v0.2.0" {
		t.Errorf("Version = %q, want %q", release.Version, "v0.2.0")
	}
	if !strings.Contains(release.HTMLURL, "/releases/tag/v0.2.0") {
		t.Errorf("HTMLURL = %q, want release page link", release.HTMLURL)
	}
}

func TestLatestRelease_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	u := New("0.1.0", WithAPIBase(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := u.LatestRelease(context.Background()); err == nil {
		t.Fatal("expected error for missing release")
	}
}

func TestLatestRelease_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	u := New("0.1.0", WithAPIBase(srv.URL), WithHTTPClient(srv.Client()))
	_, err := u.LatestRelease(context.Background())
	if err == nil || !strings.Contains(err.Error(), "rate limit") {
		t.Errorf("expected rate limit error, got: %v", err)
	}
}

func TestPrintUpdateBanner(t *testing.T) {
	var sb strings.Builder
	PrintUpdateBanner(&sb, &CheckResult{
		CurrentVersion:  "0.1.0",
		LatestVersion:   "v0.2.0",
		ReleaseURL:      "https://github.com/shinobi-dev/shinobi/releases/tag/v0.2.0",
		UpdateAvailable: true,
	})

	out := sb.String()
	if !strings.Contains(out, "0.1.0 -> v0.2.0") {
		t.Errorf("banner missing version transition, got:\n%s", out)
	}
	if !strings.Contains(out, "releases/tag/v0.2.0") {
		t.Errorf("banner missing release link, got:\n%s", out)
	}
}
