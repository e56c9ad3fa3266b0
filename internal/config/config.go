// SPDX-License-Identifier: MPL-2.0

// Package config resolves the per-invocation launcher options from CLI
// flags, environment variables, and on-disk defaults.
//
// Resolution is deterministic: the same flag state, environment, and
// filesystem state always produce the same Options. Viper carries the
// environment-variable and built-in-default layers; the flag and
// positional layers sit above it, matching the documented precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the built-in bot config location, used when
	// neither a flag, a positional shorthand, nor CONFIG_PATH is given.
	DefaultConfigPath = "config/settings.yaml"

	// DefaultEnvFileName is the env file picked up from the resolution
	// root when present and no explicit env file was requested.
	DefaultEnvFileName = ".env"

	keyConfigPath = "config_path"
	keyEnvFile    = "env_file"
	keyDryRun     = "dry_run"

	envConfigPath = "CONFIG_PATH"
	envEnvFile    = "ENV_FILE"
	envDryRun     = "DRY_RUN"
)

type (
	// UsageError marks a malformed invocation. The CLI reports it with
	// usage text and exit status 1, and no child process is started.
	UsageError struct {
		Reason string
	}

	// FlagState captures the parsed CLI surface of one invocation before
	// precedence resolution. ConfigSet/EnvFileSet distinguish an explicit
	// flag from its zero value.
	FlagState struct {
		ConfigPath string
		ConfigSet  bool
		EnvFile    string
		EnvFileSet bool
		Live       bool
		Verbose    bool

		// EnvVars holds --env-var KEY=VALUE pairs in flag order.
		EnvVars []string

		// Positional holds bare tokens seen before any "--" separator.
		Positional []string

		// PassThrough holds every token after the "--" separator, verbatim.
		PassThrough []string

		// Dir is the resolution root for the default env file lookup.
		// Empty means the current working directory.
		Dir string
	}

	// Options is the fully resolved, immutable description of one launch.
	Options struct {
		ConfigPath string

		// EnvFilePath is empty when no env file applies to this launch.
		EnvFilePath string

		DryRun       bool
		ExtraArgs    []string
		EnvOverrides []string
		Verbose      bool
	}
)

// Error implements the error interface.
func (e *UsageError) Error() string { return e.Reason }

// Resolve turns the parsed flag state into launch options, applying the
// precedence rules (highest first):
//
//	config path:  --config > positional shorthand > CONFIG_PATH > default
//	env file:     --env-file > ENV_FILE > ./.env if it exists > none
//	run mode:     --live > DRY_RUN=false > dry-run
//
// The only filesystem access is the existence check for the default env
// file; everything else is pure given flags and environment.
func Resolve(flags FlagState) (*Options, error) {
	if len(flags.Positional) > 1 {
		return nil, &UsageError{Reason: fmt.Sprintf(
			"at most one bare config path is accepted, got %d (%s)",
			len(flags.Positional), strings.Join(flags.Positional, ", "))}
	}

	for _, pair := range flags.EnvVars {
		if key, _, ok := strings.Cut(pair, "="); !ok || key == "" {
			return nil, &UsageError{Reason: fmt.Sprintf(
				"invalid --env-var value %q, expected KEY=VALUE", pair)}
		}
	}

	v := viper.New()
	v.SetDefault(keyConfigPath, DefaultConfigPath)
	v.SetDefault(keyEnvFile, "")
	v.SetDefault(keyDryRun, "")

	// Bound explicitly instead of viper.AutomaticEnv: the launcher consumes
	// exactly three variables and nothing else.
	_ = v.BindEnv(keyConfigPath, envConfigPath)
	_ = v.BindEnv(keyEnvFile, envEnvFile)
	_ = v.BindEnv(keyDryRun, envDryRun)

	opts := &Options{
		Verbose:      flags.Verbose,
		ExtraArgs:    append([]string(nil), flags.PassThrough...),
		EnvOverrides: append([]string(nil), flags.EnvVars...),
	}

	switch {
	case flags.ConfigSet:
		opts.ConfigPath = flags.ConfigPath
	case len(flags.Positional) == 1:
		opts.ConfigPath = flags.Positional[0]
	default:
		opts.ConfigPath = v.GetString(keyConfigPath)
	}

	switch {
	case flags.EnvFileSet:
		opts.EnvFilePath = flags.EnvFile
	case v.GetString(keyEnvFile) != "":
		opts.EnvFilePath = v.GetString(keyEnvFile)
	default:
		candidate := filepath.Join(flags.Dir, DefaultEnvFileName)
		if fileExists(candidate) {
			opts.EnvFilePath = candidate
		}
	}

	// Dry-run stays on unless --live is given or DRY_RUN parses as an
	// explicit boolean false. An unparseable value keeps the safe default.
	opts.DryRun = true
	if flags.Live {
		opts.DryRun = false
	} else if raw := v.GetString(keyDryRun); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			opts.DryRun = b
		}
	}

	return opts, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
