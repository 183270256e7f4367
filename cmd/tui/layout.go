package tui

import (
	"fmt"
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// View names
const (
	viewGame    = "game"
	viewConsole = "console"
	viewInput   = "input"
)

// LayoutConfig sizes the console overlay.
type LayoutConfig struct {
	ConsoleWeight int // share of the height taken by the output when open
	GameWeight    int
	InputHeight   int
}

// DefaultLayoutConfig drops the console over the top two thirds.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		ConsoleWeight: 2,
		GameWeight:    1,
		InputHeight:   3,
	}
}

// buildLayoutTree stacks console, input and game vertically. A closed
// console leaves the whole screen to the game view.
func buildLayoutTree(config LayoutConfig, open bool) *boxlayout.Box {
	if !open {
		return &boxlayout.Box{
			Direction: boxlayout.ROW,
			Children: []*boxlayout.Box{
				{Window: viewGame, Weight: 1},
			},
		}
	}

	return &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{Window: viewConsole, Weight: config.ConsoleWeight},
			{Window: viewInput, Size: config.InputHeight},
			{Window: viewGame, Weight: config.GameWeight},
		},
	}
}

// layout is the gocui manager function.
func (app *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	open := app.session.IsOpen()
	dims := boxlayout.ArrangeWindows(buildLayoutTree(app.layoutConfig, open), 0, 0, maxX, maxY)

	for _, name := range []string{viewConsole, viewInput, viewGame} {
		d, ok := dims[name]
		if !ok {
			continue
		}
		v, err := g.SetView(name, d.X0, d.Y0, d.X1-1, d.Y1-1, 0)
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		if err == gocui.ErrUnknownView {
			app.setupView(v)
		}
	}

	if err := app.focus(g, open); err != nil {
		return err
	}
	if !open {
		g.DeleteView(viewConsole)
		g.DeleteView(viewInput)
	}

	app.renderGame(g)
	app.renderConsole(g)
	return nil
}

func (app *App) setupView(v *gocui.View) {
	switch v.Name() {
	case viewGame:
		v.Title = " devconsole "
		v.Wrap = true
	case viewConsole:
		v.Title = " console "
		v.Wrap = true
		v.Autoscroll = true
	case viewInput:
		v.Title = " > "
		v.Editable = true
		v.Editor = &consoleEditor{app: app}
	}
}

func (app *App) focus(g *gocui.Gui, open bool) error {
	target := viewGame
	if open {
		target = viewInput
	}
	g.Cursor = open
	if current := g.CurrentView(); current != nil && current.Name() == target {
		return nil
	}
	if _, err := g.SetCurrentView(target); err != nil {
		return err
	}
	if open {
		app.field.Focus()
	}
	return nil
}

func (app *App) renderGame(g *gocui.Gui) {
	v, err := g.View(viewGame)
	if err != nil {
		return
	}
	v.Clear()
	fmt.Fprintln(v, app.status)
	fmt.Fprintf(v, "Press %s to toggle the console, Ctrl-C to quit.\n", app.controller.ToggleKey())
}

func (app *App) renderConsole(g *gocui.Gui) {
	v, err := g.View(viewConsole)
	if err != nil {
		return
	}
	v.Clear()
	fmt.Fprint(v, strings.TrimPrefix(app.output.Text(), "\n"))
}
