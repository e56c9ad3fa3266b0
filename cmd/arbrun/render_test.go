// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"arbrun-cli/internal/config"
	"arbrun-cli/internal/launcher"
)

func TestRenderInvocation(t *testing.T) {
	t.Parallel()

	opts := &config.Options{
		ConfigPath:  "prod.yaml",
		EnvFilePath: "secrets.env",
		DryRun:      false,
	}
	child := &launcher.Command{
		Path: "/usr/bin/python3",
		Args: []string{"-m", "src.app", "--config", "prod.yaml", "--live", "--max-orders", "10"},
		Env:  map[string]string{"API_KEY": "hunter2"},
	}

	var sb strings.Builder
	renderInvocation(&sb, opts, child)
	out := sb.String()

	for _, want := range []string{
		"prod.yaml",
		"live",
		"secrets.env",
		"/usr/bin/python3",
		"-m src.app --config prod.yaml --live --max-orders 10",
		"API_KEY",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}

	// Secret values never appear, only key names.
	if strings.Contains(out, "hunter2") {
		t.Errorf("render output leaks env values:\n%s", out)
	}
}

func TestRenderInvocation_DryRunWithoutEnvFile(t *testing.T) {
	t.Parallel()

	opts := &config.Options{ConfigPath: "config/settings.yaml", DryRun: true}
	child := &launcher.Command{
		Path: "/usr/bin/python3",
		Args: []string{"-m", "src.app", "--config", "config/settings.yaml", "--dry-run"},
	}

	var sb strings.Builder
	renderInvocation(&sb, opts, child)
	out := sb.String()

	if !strings.Contains(out, "dry-run") {
		t.Errorf("render output missing mode:\n%s", out)
	}
	if strings.Contains(out, "Env file:") {
		t.Errorf("render output should omit env file line when none applies:\n%s", out)
	}
}

func TestWarnLiveMode(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	warnLiveMode(&sb)

	if !strings.Contains(sb.String(), "Live mode") {
		t.Errorf("live warning missing header: %q", sb.String())
	}
	if !strings.Contains(sb.String(), "real orders") {
		t.Errorf("live warning should say what is at stake: %q", sb.String())
	}
}
