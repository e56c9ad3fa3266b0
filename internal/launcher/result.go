// SPDX-License-Identifier: MPL-2.0

package launcher

// Result reports the outcome of running the child process.
//
// A non-zero ExitCode with a nil Err is a normal child termination whose
// status must be propagated unchanged. Err is set only for launcher-side
// failures, such as the child not starting at all.
type Result struct {
	ExitCode ExitCode
	Err      error
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Err: err}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than launcher failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}
