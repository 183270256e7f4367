package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kcaldas/devconsole/pkg/config"
	"github.com/kcaldas/devconsole/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree with stdin treated as piped input.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	original := stdinIsPiped
	stdinIsPiped = func() bool { return true }
	t.Cleanup(func() { stdinIsPiped = original })

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", missing}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestBatchMode(t *testing.T) {
	t.Run("runs every piped line", func(t *testing.T) {
		out, err := execute(t, "echo hello\n\necho  two words\n")
		require.NoError(t, err)
		assert.Equal(t, "hello\n two words\n", out)
	})

	t.Run("failures are printed and counted", func(t *testing.T) {
		out, err := execute(t, "echo ok\nnope\n")
		require.Error(t, err)
		assert.Equal(t, "1 of 2 commands failed", err.Error())
		assert.Equal(t, "ok\n'nope' command not found\n", out)
	})

	t.Run("no banner", func(t *testing.T) {
		out, err := execute(t, "")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "", "run", "echo a b", "history")
	require.NoError(t, err)
	assert.Equal(t, "a b\n   1  echo a b\n   2  history\n", out)
}

func TestRunCommand_RequiresArgs(t *testing.T) {
	_, err := execute(t, "", "run")
	assert.Error(t, err)
}

func TestVersionConsoleCommand(t *testing.T) {
	out, err := execute(t, "version\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "devconsole "), out)
}

func TestHelpListsCliCommands(t *testing.T) {
	out, err := execute(t, "help\n")
	require.NoError(t, err)
	assert.Contains(t, out, "---- Available Commands ----")
	assert.Contains(t, out, "version")
	assert.Contains(t, out, "echo")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_size: 1\n"), 0o644))

	out, err := execute(t, "", "--config", path, "run", "echo a", "history")
	require.NoError(t, err)
	assert.Equal(t, "a\n   1  history\n", out)
}

func TestFlagOverrides(t *testing.T) {
	t.Run("invalid output mode", func(t *testing.T) {
		_, err := execute(t, "", "--output-mode", "bogus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --output-mode")
	})

	t.Run("open and output mode reach the config", func(t *testing.T) {
		cmd := NewRootCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--open"}))
		opts := &rootOptions{
			open:       true,
			outputMode: config.OutputMode256,
			configPath: filepath.Join(t.TempDir(), "missing.yaml"),
		}

		require.NoError(t, opts.load(cmd))
		assert.True(t, opts.cfg.StartOpen)
		assert.Equal(t, config.OutputMode256, opts.cfg.OutputMode)
	})
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		opts rootOptions
		want slog.Level
	}{
		{name: "default from config", opts: rootOptions{cfg: config.Config{DebugLevel: "warn"}}, want: slog.LevelWarn},
		{name: "unknown config level", opts: rootOptions{cfg: config.Config{DebugLevel: "loud"}}, want: slog.LevelInfo},
		{name: "verbose", opts: rootOptions{verbose: true}, want: slog.LevelDebug},
		{name: "quiet", opts: rootOptions{quiet: true}, want: slog.LevelError},
		{name: "quiet wins over verbose", opts: rootOptions{quiet: true, verbose: true}, want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.logLevel())
		})
	}
}

func TestLoggingFlagsParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "verbose long", args: []string{"--verbose", "run", "echo x"}},
		{name: "verbose short", args: []string{"-v", "run", "echo x"}},
		{name: "quiet long", args: []string{"--quiet", "run", "echo x"}},
		{name: "quiet short", args: []string{"-q", "run", "echo x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "x\n", out)
		})
	}
}

func TestConfigureLogging_TerminalHostWritesToFile(t *testing.T) {
	previous := logging.GetGlobalLogger()
	t.Cleanup(func() { logging.SetGlobalLogger(previous) })

	tests := []struct {
		name string
		opts rootOptions
		env  bool
	}{
		{name: "configured debug file", opts: rootOptions{cfg: config.Config{DebugLevel: "debug"}}},
		{name: "verbose uses env path", opts: rootOptions{verbose: true}, env: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "debug.log")
			if tt.env {
				t.Setenv(logging.EnvDebugFile, path)
			} else {
				tt.opts.cfg.DebugFile = path
			}

			tt.opts.configureLogging(NewRootCmd(), true)
			logging.GetGlobalLogger().Debug("hello from the host")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "hello from the host")
		})
	}
}
