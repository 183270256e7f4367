package tui

import (
	"errors"
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/devconsole/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Banner = nil
	if mutate != nil {
		mutate(&cfg)
	}

	simulatorMode := gocui.OutputSimulator
	app, err := NewAppWithOutputMode(cfg, &simulatorMode)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t, nil)

	assert.False(t, app.Session().IsOpen())
	assert.Equal(t, statusClosed, app.status)
	for _, name := range []string{"help", "clear", "quit", "copy"} {
		_, ok := app.Session().Registry().Lookup(name)
		assert.True(t, ok, name)
	}
	key, ok := app.Session().Registry().BoundHotkey("quit")
	require.True(t, ok)
	assert.Equal(t, "Ctrl-Q", key.String())
}

func TestNewApp_InvalidToggleKey(t *testing.T) {
	cfg := config.Default()
	cfg.ToggleKey = "NoSuchKey"

	simulatorMode := gocui.OutputSimulator
	_, err := NewAppWithOutputMode(cfg, &simulatorMode)
	assert.Error(t, err)
}

func TestApp_StatusFollowsEvents(t *testing.T) {
	app := newTestApp(t, nil)

	app.controller.HandleKey(app.controller.ToggleKey())
	assert.Equal(t, statusOpen, app.status)

	app.controller.HandleKey(app.controller.ToggleKey())
	assert.Equal(t, statusClosed, app.status)
}

func TestApp_Quit(t *testing.T) {
	t.Run("ctrl-q while open", func(t *testing.T) {
		app := newTestApp(t, func(cfg *config.Config) { cfg.StartOpen = true })
		assert.NoError(t, app.loopError())

		assert.True(t, app.controller.HandleKey(KeySpec{Key: gocui.KeyCtrlQ}))
		assert.Equal(t, gocui.ErrQuit, app.loopError())
	})

	t.Run("ctrl-c in any state", func(t *testing.T) {
		app := newTestApp(t, nil)

		assert.True(t, app.controller.HandleKey(KeySpec{Key: gocui.KeyCtrlC}))
		assert.Equal(t, gocui.ErrQuit, app.loopError())
	})

	t.Run("quit command", func(t *testing.T) {
		app := newTestApp(t, nil)
		app.Session().Submit("quit")
		assert.True(t, app.quitting)
	})
}

func TestApp_Copy(t *testing.T) {
	original := clipboardWrite
	t.Cleanup(func() { clipboardWrite = original })

	t.Run("copies output", func(t *testing.T) {
		var copied string
		clipboardWrite = func(text string) error {
			copied = text
			return nil
		}

		app := newTestApp(t, nil)
		app.Session().Print("one")
		app.Session().Print("two")

		outcome := app.Session().Submit("copy")
		assert.False(t, outcome.Failed())
		assert.Equal(t, "one\ntwo", copied)
		assert.Equal(t, []string{"one", "two", "copied 2 lines"}, app.output.Lines())
	})

	t.Run("clipboard failure is reported", func(t *testing.T) {
		clipboardWrite = func(string) error { return errors.New("no xclip") }

		app := newTestApp(t, nil)
		outcome := app.Session().Submit("copy")
		assert.True(t, outcome.Failed())
		assert.Equal(t, "ERROR: clipboard unavailable: no xclip", outcome.Message())
	})
}

func TestGetGocuiOutputMode(t *testing.T) {
	assert.Equal(t, gocui.OutputNormal, GetGocuiOutputMode("normal"))
	assert.Equal(t, gocui.Output256, GetGocuiOutputMode("256"))
	assert.Equal(t, gocui.OutputTrue, GetGocuiOutputMode("true"))
	assert.Equal(t, gocui.OutputTrue, GetGocuiOutputMode(""))
}

func TestBuildLayoutTree(t *testing.T) {
	closed := buildLayoutTree(DefaultLayoutConfig(), false)
	require.Len(t, closed.Children, 1)
	assert.Equal(t, viewGame, closed.Children[0].Window)

	open := buildLayoutTree(DefaultLayoutConfig(), true)
	require.Len(t, open.Children, 3)
	assert.Equal(t, viewConsole, open.Children[0].Window)
	assert.Equal(t, viewInput, open.Children[1].Window)
	assert.Equal(t, 3, open.Children[1].Size)
	assert.Equal(t, viewGame, open.Children[2].Window)
}
