package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shinobi-dev/shinobi/internal/branding"
	"github.com/shinobi-dev/shinobi/internal/config"
	"github.com/shinobi-dev/shinobi/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds modern Python projects on top of uv: it runs the
interview, bootstraps the package, patches pyproject.toml, and writes the
supporting files (workflows, hooks, editor settings) you selected.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The interview owns the terminal during init, and version output
		// is often machine-parsed. Neither gets a banner.
		name := cmd.Name()
		if name == "init" || name == "version" {
			return
		}

		// Non-blocking banner from the cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
