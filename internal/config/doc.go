// Package config manages user-level settings stored at ~/.shinobi/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the author name and the interview defaults (Python version, editor,
// feature selection).
package config
