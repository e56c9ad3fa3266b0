// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the arbrun CLI.
//
// arbrun is a single-command launcher: the root command resolves the
// invocation options, loads the env file, builds the bot command line,
// and runs the bot with the launcher's standard streams attached.
package cmd
