package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/kcaldas/devconsole/pkg/console"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// hostCommands returns the commands only the terminal host can serve.
func (app *App) hostCommands() *console.Module {
	return console.NewModule("host", "terminal host commands",
		console.ModuleCommand{
			Name:        "quit",
			Handler:     app.cmdQuit,
			Description: "leaves the terminal host",
			Hotkey:      "Ctrl-Q",
		},
		console.ModuleCommand{
			Name:        "copy",
			Handler:     app.cmdCopy,
			Description: "copies the console output to the clipboard",
		},
	)
}

func (app *App) cmdQuit(args []string) error {
	app.requestQuit()
	return nil
}

func (app *App) cmdCopy(args []string) error {
	text := app.output.Text()
	if len(text) > 0 {
		text = text[1:]
	}
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	app.session.Print(fmt.Sprintf("copied %d lines", len(app.output.Lines())))
	return nil
}
