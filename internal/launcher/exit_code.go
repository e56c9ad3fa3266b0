// SPDX-License-Identifier: MPL-2.0

package launcher

import "strconv"

// ExitCode represents a process exit status code.
// Exit codes are in the range 0-255 on POSIX systems.
// The zero value (0) means success.
type ExitCode int

// ExitFailure is the generic non-zero code for launcher-side failures
// (usage errors, a child that could not be started at all).
const ExitFailure ExitCode = 1

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
