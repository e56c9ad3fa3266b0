// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"arbrun-cli/internal/config"
	"arbrun-cli/internal/issue"
	"arbrun-cli/internal/launcher"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	cfgFile string
	envFile string
	live    bool
	verbose bool
	envVars []string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "arbrun",
	})

	// rootCmd is the whole CLI: arbrun has no subcommands, the root
	// command itself performs the launch.
	rootCmd = &cobra.Command{
		Use:   "arbrun [config-path] [-- bot-args...]",
		Short: "Launcher for the Polymarket arbitrage bot",
		Long: TitleStyle.Render("arbrun") + SubtitleStyle.Render(" - launcher for the Polymarket arbitrage bot") + `

arbrun resolves the bot's run-time configuration (config file path,
optional env file, dry-run/live mode) and hands control to the bot
process, wiring stdin/stdout/stderr straight through and exiting with
the bot's own exit code.

Resolution precedence (highest first):
  config path:  --config > bare positional > $CONFIG_PATH > config/settings.yaml
  env file:     --env-file > $ENV_FILE > ./.env when present
  run mode:     --live > $DRY_RUN=false > dry-run

` + SubtitleStyle.Render("Examples:") + `
  arbrun                                 Launch in dry-run mode with defaults
  arbrun prod.yaml --live                Live mode with a config shorthand
  arbrun --env-file secrets.env          Load env vars before launching
  arbrun -- --max-orders 10 --verbose    Forward extra flags to the bot`,
		Args: validatePositional,
		RunE: runLaunch,
	}
)

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "bot config file path (default config/settings.yaml)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "env file loaded before launch (default ./.env when present)")
	rootCmd.Flags().BoolVar(&live, "live", false, "disable dry-run mode")
	rootCmd.Flags().StringArrayVar(&envVars, "env-var", nil, "extra KEY=VALUE for the bot environment (repeatable, highest precedence)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the resolved invocation before launching")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main(). A child
// process that exited non-zero surfaces as an ExitError and becomes the
// launcher's own exit status; every other failure exits 1.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// validatePositional rejects more than one bare config path. Tokens after
// the "--" separator are pass-through arguments, not positionals.
func validatePositional(cmd *cobra.Command, args []string) error {
	positional := args
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		positional = args[:dash]
	}
	if len(positional) > 1 {
		return fmt.Errorf("accepts at most one bare config path, received %d", len(positional))
	}
	return nil
}

func runLaunch(cmd *cobra.Command, args []string) error {
	positional, passThrough := splitAtDash(args, cmd.ArgsLenAtDash())

	opts, err := config.Resolve(config.FlagState{
		ConfigPath:  cfgFile,
		ConfigSet:   cmd.Flags().Changed("config"),
		EnvFile:     envFile,
		EnvFileSet:  cmd.Flags().Changed("env-file"),
		Live:        live,
		Verbose:     verbose,
		EnvVars:     envVars,
		Positional:  positional,
		PassThrough: passThrough,
	})
	if err != nil {
		return err
	}

	env := make(map[string]string)
	if opts.EnvFilePath != "" {
		if err := launcher.LoadEnvFile(logger, env, opts.EnvFilePath); err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			return &ExitError{Code: launcher.ExitFailure}
		}
	}
	launcher.ApplyOverrides(env, opts.EnvOverrides)

	child, err := launcher.BuildCommand(opts, env)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: launcher.ExitFailure}
	}

	if opts.Verbose {
		renderInvocation(os.Stderr, opts, child)
	}
	if !opts.DryRun {
		warnLiveMode(os.Stderr)
	}

	result := launcher.Run(child, os.Stdin, os.Stdout, os.Stderr)
	if result.Err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(result.Err, verbose))
	}
	if !result.ExitCode.IsSuccess() {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// splitAtDash separates bare positionals from pass-through tokens using
// the index cobra recorded for the "--" separator (-1 when absent).
func splitAtDash(args []string, dash int) (positional, passThrough []string) {
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

// formatErrorForDisplay formats an error for user display. ActionableError
// values render with their suggestions; verbose mode shows the full chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
