// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"arbrun-cli/internal/launcher"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE
// handlers. Execute unwraps it and exits with the carried code, which is
// how the bot's own exit status passes through the launcher unchanged.
type ExitError struct {
	Code launcher.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
