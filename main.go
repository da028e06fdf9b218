package main

import (
	"fmt"
	"os"

	"github.com/shinobi-dev/shinobi/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// SilenceErrors is set on the root command, so this is the only
		// place errors reach the user.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
