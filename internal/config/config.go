package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/shinobi-dev/shinobi/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys. `config set` rejects anything else so a typo
// never silently lands in the file.
const (
	KeyAuthor          = "author"
	KeyDefaultPython   = "defaults.python"
	KeyDefaultIDE      = "defaults.ide"
	KeyDefaultFeatures = "defaults.features"
)

var knownKeys = map[string]string{
	KeyAuthor:          "name used in generated LICENSE and README files",
	KeyDefaultPython:   "Python version preselected during the interview",
	KeyDefaultIDE:      "editor preselected during the interview",
	KeyDefaultFeatures: "comma-separated features preselected during the interview",
}

// Dir returns the path to the Shinobi config directory (~/.shinobi/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.shinobi/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// SHINOBI_AUTHOR overrides the author key, and so on.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetList returns a comma-separated config value split into fields,
// with blanks dropped.
func GetList(key string) []string {
	raw := viper.GetString(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Set writes a config key-value pair and saves the config file.
// Unknown keys are rejected.
func Set(key, value string) error {
	if _, ok := knownKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(KnownKeys(), ", "))
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// KnownKeys returns the settable keys in sorted order.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns the one-line description for a known key, or "".
func Describe(key string) string {
	return knownKeys[key]
}
