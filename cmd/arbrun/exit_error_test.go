// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"arbrun-cli/internal/launcher"
)

func TestExitError_Error(t *testing.T) {
	t.Parallel()

	bare := &ExitError{Code: 7}
	if got := bare.Error(); got != "exit status 7" {
		t.Errorf("Error() = %q, want %q", got, "exit status 7")
	}

	wrapped := &ExitError{Code: launcher.ExitFailure, Err: errors.New("boom")}
	if got := wrapped.Error(); got != "boom" {
		t.Errorf("Error() = %q, want %q", got, "boom")
	}
}

func TestExitError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying")
	err := fmt.Errorf("outer: %w", &ExitError{Code: 1, Err: cause})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("errors.As should find ExitError in the chain")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
