// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"arbrun-cli/internal/config"
	"arbrun-cli/internal/launcher"
)

// renderInvocation prints the fully resolved launch to w before the child
// starts: config path, run mode, env file source, interpreter, and the
// exact argument list the bot will receive.
func renderInvocation(w io.Writer, opts *config.Options, child *launcher.Command) {
	fmt.Fprintln(w, TitleStyle.Render("Launch"))
	fmt.Fprintln(w)

	mode := "dry-run"
	if !opts.DryRun {
		mode = "live"
	}

	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Config:"), opts.ConfigPath)
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Mode:"), mode)
	if opts.EnvFilePath != "" {
		fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Env file:"), opts.EnvFilePath)
	}
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Interpreter:"), child.Path)
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Args:"), strings.Join(child.Args, " "))

	// Key names only: env files typically hold exchange credentials.
	if len(child.Env) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, VerboseHighlightStyle.Render("  Environment:"))
		for _, key := range slices.Sorted(maps.Keys(child.Env)) {
			fmt.Fprintf(w, "    %s\n", key)
		}
	}

	fmt.Fprintln(w)
}

// warnLiveMode prints a styled notice to w when dry-run protection is off,
// so a live launch is never silent about placing real orders.
func warnLiveMode(w io.Writer) {
	fmt.Fprintln(w, WarningStyle.Render("Live mode: ")+"dry-run protection is off, the bot may place real orders")
}
