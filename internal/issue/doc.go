// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Errors produced here carry the operation that failed, the resource involved,
// and suggestions for fixing the problem, so the CLI can explain a failed
// launch instead of printing a bare error string.
package issue
