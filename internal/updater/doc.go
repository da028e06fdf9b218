// Package updater powers the startup update banner. It checks GitHub
// Releases for a newer shinobi version, caches the result for a day under
// the config directory, and points users at the release page when an
// upgrade is available. The check never blocks a running command.
package updater
