package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinobi-dev/shinobi/internal/branding"
	"github.com/shinobi-dev/shinobi/internal/config"
	"github.com/shinobi-dev/shinobi/internal/delegate"
	"github.com/shinobi-dev/shinobi/internal/project"
	"github.com/shinobi-dev/shinobi/internal/prompt"
)

var (
	initDescription string
	initPython      string
	initIDE         string
	initFeatures    string
	initOutputDir   string
	initYes         bool
)

func init() {
	initCmd.Flags().StringVar(&initDescription, "description", "", "Project description (skips the prompt)")
	initCmd.Flags().StringVar(&initPython, "python", "", "Python version, e.g. 3.12 (skips the prompt)")
	initCmd.Flags().StringVar(&initIDE, "ide", "", "Editor to configure: vscode, cursor, or none (skips the prompt)")
	initCmd.Flags().StringVar(&initFeatures, "features", "", "Comma-separated features: github, precommit, pytest (skips the prompt; empty string selects none)")
	initCmd.Flags().StringVarP(&initOutputDir, "output-dir", "o", "", "Directory to create the project under (default: current directory)")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept defaults for every unanswered prompt (requires the name argument)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new Python project",
	Long: `Create a new Python project bootstrapped with uv.

Runs an interactive interview for anything not supplied via flags, then
initializes the package, patches pyproject.toml, and writes the selected
supporting files. Press Ctrl-D at any prompt to cancel without touching
the filesystem.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkDelegate(cmd); err != nil {
			return err
		}

		config.Load()
		preset := presetAnswers(cmd, args)
		if err := validatePreset(preset); err != nil {
			return err
		}

		var answers *prompt.Answers
		if initYes {
			a, err := acceptDefaults(preset)
			if err != nil {
				return err
			}
			answers = a
		} else {
			iv := prompt.NewInterviewer(cmd.InOrStdin(), cmd.OutOrStdout())
			a, err := prompt.Run(iv, preset)
			if errors.Is(err, prompt.ErrCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "\nCancelled. Nothing was created.")
				return nil
			}
			if err != nil {
				return err
			}
			answers = a
		}

		in := &project.Initializer{
			Answers:   answers,
			Author:    config.Get(config.KeyAuthor),
			Runner:    &delegate.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
			Out:       cmd.OutOrStdout(),
			ParentDir: initOutputDir,
		}
		return in.Create(cmd.Context())
	},
}

// checkDelegate verifies uv is installed before any prompt runs. A missing
// binary is fatal; a version below the supported minimum only warns.
func checkDelegate(cmd *cobra.Command) error {
	v, err := delegate.Version(cmd.Context())
	if err != nil {
		return fmt.Errorf("%w\n\nInstall it from https://docs.astral.sh/uv/ and retry", err)
	}
	if !delegate.MeetsMinimum(v) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s %s is older than the supported minimum %s; consider upgrading.\n",
			branding.Delegate(), v, delegate.MinVersion)
	}
	return nil
}

// validatePreset rejects values outside the enumerated choice sets before
// any prompt or file write. Presets come from flags or saved config, so a
// typo in either gets a reason instead of a silent no-op.
func validatePreset(a prompt.Answers) error {
	if a.PythonVersion != "" && !slices.Contains(prompt.PythonVersions, a.PythonVersion) {
		return fmt.Errorf("unsupported Python version %q (supported: %s)",
			a.PythonVersion, strings.Join(prompt.PythonVersions, ", "))
	}

	switch a.IDE {
	case "", prompt.IDEVSCode, prompt.IDECursor, prompt.IDENone:
	default:
		return fmt.Errorf("unknown editor %q (choose vscode, cursor, or none)", a.IDE)
	}

	for _, f := range a.Features {
		switch f {
		case prompt.FeatureGitHub, prompt.FeaturePrecommit, prompt.FeaturePytest:
		default:
			return fmt.Errorf("unknown feature %q (choose github, precommit, pytest)", f)
		}
	}
	return nil
}

// acceptDefaults resolves a --yes run without prompting: unset fields take
// the same defaults the interview would offer. The name has no default, so
// it must come from the argument or a flagless preset.
func acceptDefaults(preset prompt.Answers) (*prompt.Answers, error) {
	a := preset
	if a.Name == "" {
		return nil, fmt.Errorf("--yes requires a project name argument")
	}
	if err := prompt.ValidateProjectName(a.Name); err != nil {
		return nil, err
	}
	if a.PythonVersion == "" {
		a.PythonVersion = prompt.PythonVersions[0]
	}
	if a.IDE == "" {
		a.IDE = prompt.IDEVSCode
	}
	if a.Features == nil {
		a.Features = []string{prompt.FeatureGitHub, prompt.FeaturePrecommit, prompt.FeaturePytest}
	}
	return &a, nil
}

// presetAnswers assembles the interview preset: flags win, then saved
// defaults from the config file, then the interview asks.
func presetAnswers(cmd *cobra.Command, args []string) prompt.Answers {
	preset := prompt.Answers{
		Description:   initDescription,
		PythonVersion: initPython,
		IDE:           initIDE,
	}
	if len(args) == 1 {
		preset.Name = args[0]
	}

	if cmd.Flags().Changed("features") {
		preset.Features = splitFeatures(initFeatures)
	} else if saved := config.GetList(config.KeyDefaultFeatures); saved != nil {
		preset.Features = saved
	}

	if preset.PythonVersion == "" {
		preset.PythonVersion = config.Get(config.KeyDefaultPython)
	}
	if preset.IDE == "" {
		preset.IDE = config.Get(config.KeyDefaultIDE)
	}
	return preset
}

// splitFeatures parses the --features value. An explicitly empty value
// means "no features", not "ask me".
func splitFeatures(s string) []string {
	features := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			features = append(features, p)
		}
	}
	return features
}
