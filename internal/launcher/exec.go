// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"slices"

	"arbrun-cli/internal/issue"
)

// Run executes the child synchronously with the given standard streams
// attached directly, no capture and no timeout. The launcher never kills
// the child: a SIGINT/SIGTERM reaches the child through the foreground
// process group while the launcher keeps waiting, so a live bot can
// cancel its orders and exit on its own terms. Whatever status the child
// finally exits with is returned unchanged.
//
// The child inherits the launcher's environment with c.Env appended, so
// env-file values and overrides win over inherited variables.
func Run(c *Command, stdin io.Reader, stdout, stderr io.Writer) *Result {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Env = append(os.Environ(), EnvToSlice(c.Env)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(ExitFailure,
			issue.WrapWithContext(err, "run trading bot", c.Path))
	}

	return NewExitCodeResult(0)
}

// EnvToSlice converts an env map to KEY=VALUE form, sorted by key so the
// child environment is deterministic.
func EnvToSlice(env map[string]string) []string {
	entries := make([]string, 0, len(env))
	for _, key := range slices.Sorted(maps.Keys(env)) {
		entries = append(entries, key+"="+env[key])
	}
	return entries
}
