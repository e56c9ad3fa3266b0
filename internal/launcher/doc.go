// SPDX-License-Identifier: MPL-2.0

// Package launcher builds and runs the trading-bot child process.
//
// It covers the side-effecting half of a launch: loading an env file into
// an explicit environment map, assembling the child command line from the
// resolved invocation options, and running the child synchronously with
// the launcher's standard streams attached. Exit status handling follows
// the pass-through contract: whatever code the bot exits with becomes the
// launcher's own exit code.
package launcher
