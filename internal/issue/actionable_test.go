// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "locate python interpreter",
			},
			expected: "failed to locate python interpreter",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load env file",
				Resource:  ".env",
			},
			expected: "failed to load env file: .env",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "load env file",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to load env file: permission denied",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load env file",
				Resource:  "secrets.env",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to load env file: secrets.env: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	err := NewErrorContext().
		WithOperation("locate python interpreter").
		WithSuggestion("Install python3").
		WithSuggestion("Set ARBRUN_PYTHON to the interpreter path").
		Wrap(errors.New("not found on PATH")).
		Build()

	got := err.Format(false)
	if !strings.Contains(got, "failed to locate python interpreter") {
		t.Errorf("Format() missing error line: %q", got)
	}
	if !strings.Contains(got, "• Install python3") {
		t.Errorf("Format() missing suggestion bullet: %q", got)
	}
	if strings.Contains(got, "Error chain:") {
		t.Errorf("Format(false) should not include error chain: %q", got)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) should include error chain: %q", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}

	err := NewErrorContext().WithOperation("resolve config path").Build()
	if err == nil {
		t.Fatal("Build() with operation returned nil")
	}
	if err.HasSuggestions() {
		t.Error("HasSuggestions() should be false with no suggestions")
	}
}

func TestWrapWithContext(t *testing.T) {
	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}

	cause := errors.New("boom")
	err := WrapWithContext(cause, "run child process", "python3")
	if err.Error() != "failed to run child process: python3: boom" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
