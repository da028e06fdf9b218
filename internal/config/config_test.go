package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestSetAndGetRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	Load()

	if err := Set(KeyAuthor, "octocat"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := Get(KeyAuthor); got != "octocat" {
		t.Errorf("Get(%s) = %q, want %q", KeyAuthor, got, "octocat")
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	Load()

	err := Set("defaults.typo", "x")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "defaults.typo") {
		t.Errorf("error should name the key, got: %v", err)
	}
}

func TestGetList(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	Load()

	if err := Set(KeyDefaultFeatures, "github, pytest,,precommit"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	got := GetList(KeyDefaultFeatures)
	want := []string{"github", "pytest", "precommit"}
	if len(got) != len(want) {
		t.Fatalf("GetList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilePathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".shinobi", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}
