// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"maps"
	"os"
	"strings"

	"arbrun-cli/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// LoadEnvFile reads a dotenv file (KEY=VALUE lines, shell-style export
// prefix and quoting tolerated) and merges its assignments into the given
// env map. The process environment is never touched; the map is applied to
// the child at execution time.
//
// A missing file is not fatal: the launch continues without it and a
// warning is logged. That mirrors the permissive policy for explicitly
// requested env files, and a default .env only reaches this function when
// it existed at resolution time. Any other read or parse failure is an
// error and aborts the launch.
func LoadEnvFile(logger *log.Logger, env map[string]string, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("env file not found, continuing without it", "path", path)
			return nil
		}
		return issue.NewErrorContext().
			WithOperation("load env file").
			WithResource(path).
			WithSuggestion("Check the file is readable and contains KEY=VALUE lines").
			Wrap(err).
			Build()
	}

	maps.Copy(env, vars)
	return nil
}

// ApplyOverrides merges KEY=VALUE pairs into the env map on top of any
// env-file values. Pairs are applied in order, so a later duplicate key
// wins. Pair format is validated during option resolution; anything
// without a '=' here is skipped.
func ApplyOverrides(env map[string]string, pairs []string) {
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
}
