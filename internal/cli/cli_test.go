// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pocketcalc/internal/config"
	"github.com/jeranaias/pocketcalc/internal/ui/calculator"
)

// testEnv isolates config and environment for one test.
type testEnv struct {
	t          *testing.T
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{"POCKETCALC_THEME", "POCKETCALC_LOG_FILE", "POCKETCALC_LOG_LEVEL", "NO_MOUSE"} {
		t.Setenv(key, "")
	}
	return &testEnv{t: t, configPath: filepath.Join(dir, "pocketcalc", "config.toml")}
}

// run executes the CLI with the test config and returns exit code, stdout and stderr.
func (e *testEnv) run(args ...string) (int, string, string) {
	return e.runWithStdin(nil, args...)
}

func (e *testEnv) runWithStdin(stdin *os.File, args ...string) (int, string, string) {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"--config", e.configPath}, args...)
	code := Execute(full, stdin, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func (e *testEnv) writeConfig(content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(e.configPath), 0700))
	require.NoError(e.t, os.WriteFile(e.configPath, []byte(content), 0600))
}

// =============================================================================
// EVAL
// =============================================================================

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"addition", []string{"5", "+", "3", "="}, "8"},
		{"single word", []string{"12.5*4="}, "50"},
		{"dash operator", []string{"9", "-", "4", "="}, "5"},
		{"divide by zero", []string{"9", "/", "0", "="}, "Infinity"},
		{"zero by zero", []string{"0", "/", "0", "="}, "NaN"},
		{"sign", []string{"4", "+/-"}, "-4"},
		{"truncated", []string{"1234567890123"}, "123456789"},
		{"no tokens", nil, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			code, stdout, stderr := env.run(append([]string{"eval"}, tt.args...)...)
			require.Equal(t, ExitSuccess, code, stderr)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestEval_Full(t *testing.T) {
	env := newTestEnv(t)
	code, stdout, _ := env.run("eval", "--full", "1234567890123")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1234567890123\n", stdout)
}

func TestEval_UnknownToken(t *testing.T) {
	env := newTestEnv(t)
	code, stdout, stderr := env.run("eval", "5", "+", "x3", "pow")
	assert.Equal(t, ExitUsageError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unknown token")
}

func TestEval_DisplayWidthFromConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("[ui]\ndisplay_width = 4\n")

	code, stdout, _ := env.run("eval", "123456")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1234\n", stdout)
}

// =============================================================================
// REPL
// =============================================================================

func TestRepl_Pipe(t *testing.T) {
	env := newTestEnv(t)

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	_, err = f.WriteString("5 + 3 =\n")
	require.NoError(t, err)
	_, err = f.Seek(0, 0)
	require.NoError(t, err)
	defer f.Close()

	code, stdout, stderr := env.runWithStdin(f, "repl")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "8")
}

// =============================================================================
// TUI
// =============================================================================

func TestTUI_RequiresTerminal(t *testing.T) {
	env := newTestEnv(t)

	code, _, stderr := env.run()
	assert.Equal(t, ExitUsageError, code, "tui is the default command")
	assert.Contains(t, stderr, "not a terminal")
}

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

func TestThemeFlag_Invalid(t *testing.T) {
	env := newTestEnv(t)
	code, _, stderr := env.run("--theme", "sepia", "eval", "1")
	assert.Equal(t, ExitUsageError, code)
	assert.Contains(t, stderr, "--theme")
}

func TestThemeFlag_OverridesConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("[ui]\ntheme = \"light\"\n")

	code, stdout, _ := env.run("--theme", "dark", "config", "get", "ui.theme")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "dark\n", stdout)
}

func TestUnknownCommand(t *testing.T) {
	env := newTestEnv(t)
	code, _, stderr := env.run("frobnicate")
	assert.Equal(t, ExitUsageError, code)
	assert.Contains(t, stderr, "--help")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	code, stdout, _ := env.run("version")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "pocketcalc "+Version+"\n", stdout)

	code, stdout, _ = env.run("--version")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, Version)
}

func TestHelp(t *testing.T) {
	env := newTestEnv(t)
	code, stdout, _ := env.run("--help")
	assert.Equal(t, ExitSuccess, code)
	for _, cmd := range []string{"tui", "repl", "eval", "keys", "config", "version"} {
		assert.Contains(t, stdout, cmd)
	}
}

// =============================================================================
// CONFIG
// =============================================================================

func TestConfig_InitSetGet(t *testing.T) {
	env := newTestEnv(t)

	code, stdout, stderr := env.run("config", "init")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, env.configPath)
	assert.FileExists(t, env.configPath)

	code, _, stderr = env.run("config", "init")
	assert.Equal(t, ExitGeneralError, code)
	assert.Contains(t, stderr, "already exists")

	code, _, _ = env.run("config", "init", "--force")
	assert.Equal(t, ExitSuccess, code)

	code, _, stderr = env.run("config", "set", "ui.theme", "dark")
	require.Equal(t, ExitSuccess, code, stderr)

	code, stdout, _ = env.run("config", "get", "ui.theme")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "dark\n", stdout)

	cfg, err := config.LoadFromPath(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestConfig_SetErrors(t *testing.T) {
	env := newTestEnv(t)

	code, _, stderr := env.run("config", "set", "ui.theme", "sepia")
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, stderr, "ui.theme")
	assert.NoFileExists(t, env.configPath, "invalid values are not saved")

	code, _, stderr = env.run("config", "set", "ui.colour", "red")
	assert.Equal(t, ExitUsageError, code)
	assert.Contains(t, stderr, "known keys")

	code, _, _ = env.run("config", "set", "ui.display_width", "wide")
	assert.Equal(t, ExitUsageError, code)
}

func TestConfig_ShowAndPath(t *testing.T) {
	env := newTestEnv(t)

	code, stdout, _ := env.run("config", "path")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, env.configPath+"\n", stdout)

	code, stdout, _ = env.run("config")
	require.Equal(t, ExitSuccess, code, "show is the default")
	assert.Contains(t, stdout, `theme = "auto"`)
	assert.Contains(t, stdout, "display_width = 9")
}

func TestConfig_InvalidFile(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("[ui]\ntheme = \"sepia\"\n")

	code, _, stderr := env.run("eval", "1")
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, stderr, "ui.theme")

	code, _, _ = env.run("config", "path")
	assert.Equal(t, ExitSuccess, code, "path works without a valid file")

	code, _, _ = env.run("config", "init", "--force")
	assert.Equal(t, ExitSuccess, code, "init repairs a broken file")
}

func TestLogFile(t *testing.T) {
	env := newTestEnv(t)
	logPath := filepath.Join(t.TempDir(), "calc.log")
	env.writeConfig("[log]\nfile = \"" + filepath.ToSlash(logPath) + "\"\n")

	code, _, _ := env.run("-v", "eval", "7")
	require.Equal(t, ExitSuccess, code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "display=7")
}

// =============================================================================
// KEYS
// =============================================================================

func TestKeysMarkdown(t *testing.T) {
	md := KeysMarkdown(calculator.DefaultKeyMap())
	assert.True(t, strings.HasPrefix(md, "# pocketcalc controls"))
	for _, want := range []string{"toggle theme", "press key", "quit", "Mouse"} {
		assert.Contains(t, md, want)
	}
}

func TestKeys(t *testing.T) {
	env := newTestEnv(t)

	code, stdout, stderr := env.run("keys")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "toggle theme")

	code, stdout, _ = env.run("keys", "--raw")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "| Key | Action |")
}

// =============================================================================
// EXIT CODES
// =============================================================================

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitUsageError, GetExitCode(&UsageError{Reason: "x"}))
	assert.Equal(t, ExitConfigError, GetExitCode(&ConfigError{Path: "p", Err: os.ErrNotExist}))
	assert.Equal(t, ExitConfigError, GetExitCode(config.ValidateErrors{{Field: "ui.theme", Message: "bad"}}))
	assert.Equal(t, ExitGeneralError, GetExitCode(NewCommandError("keys", "render", "boom", nil)))
}
