// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"os"
	"os/exec"

	"arbrun-cli/internal/config"
	"arbrun-cli/internal/issue"
)

const (
	// botModule is the bot's fixed Python module entrypoint; the launcher
	// has no knowledge of the bot beyond this invocation contract.
	botModule = "src.app"

	// interpreterEnvVar overrides the interpreter lookup entirely.
	interpreterEnvVar = "ARBRUN_PYTHON"
)

// Command is a fully assembled child-process invocation.
type Command struct {
	// Path is the resolved interpreter executable.
	Path string

	// Args are the interpreter arguments, starting at the module entrypoint
	// (argv[0] is not included).
	Args []string

	// Env holds variables appended to the inherited process environment
	// for the child. Entries here win over inherited values.
	Env map[string]string
}

// BuildCommand derives the child invocation from the resolved options:
// the module entrypoint, the config flag, exactly one mode flag, then the
// pass-through arguments in their original order.
func BuildCommand(opts *config.Options, env map[string]string) (*Command, error) {
	interpreter, err := resolveInterpreter()
	if err != nil {
		return nil, err
	}

	args := []string{"-m", botModule, "--config", opts.ConfigPath}
	if opts.DryRun {
		args = append(args, "--dry-run")
	} else {
		args = append(args, "--live")
	}
	args = append(args, opts.ExtraArgs...)

	return &Command{Path: interpreter, Args: args, Env: env}, nil
}

// resolveInterpreter picks the Python interpreter for the bot:
// the ARBRUN_PYTHON override if set, otherwise python3 then python on PATH.
func resolveInterpreter() (string, error) {
	if override := os.Getenv(interpreterEnvVar); override != "" {
		return override, nil
	}
	if p, err := exec.LookPath("python3"); err == nil {
		return p, nil
	}
	if p, err := exec.LookPath("python"); err == nil {
		return p, nil
	}
	return "", issue.NewErrorContext().
		WithOperation("locate python interpreter").
		WithSuggestion("Install python3 and make sure it is on PATH").
		WithSuggestion("Or set ARBRUN_PYTHON to the interpreter to use").
		Build()
}
