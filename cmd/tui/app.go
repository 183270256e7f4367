package tui

import (
	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/devconsole/internal/di"
	"github.com/kcaldas/devconsole/pkg/config"
	"github.com/kcaldas/devconsole/pkg/console"
	"github.com/kcaldas/devconsole/pkg/events"
	"github.com/kcaldas/devconsole/pkg/logging"
)

const (
	statusClosed = "console closed"
	statusOpen   = "console open"
)

// App is the terminal host: a gocui screen standing in for the game, with the
// developer console dropping over it.
type App struct {
	gui        *gocui.Gui
	session    *console.Session
	output     *console.OutputLog
	input      *Input
	field      TextField
	controller *Controller
	logger     logging.Logger

	layoutConfig LayoutConfig
	status       string
	quitting     bool
}

// NewApp creates the host using the color mode from cfg.
func NewApp(cfg config.Config) (*App, error) {
	return NewAppWithOutputMode(cfg, nil)
}

// NewAppWithOutputMode creates the host with an explicit gocui output mode,
// e.g. gocui.OutputSimulator in tests.
func NewAppWithOutputMode(cfg config.Config, outputMode *gocui.OutputMode) (*App, error) {
	mode := GetGocuiOutputMode(cfg.OutputMode)
	if outputMode != nil {
		mode = *outputMode
	}

	g, err := gocui.NewGui(mode, true)
	if err != nil {
		return nil, err
	}

	app := &App{
		gui:          g,
		output:       console.NewOutputLog(),
		logger:       logging.NewComponentLogger("tui"),
		layoutConfig: DefaultLayoutConfig(),
		status:       statusClosed,
	}
	app.field = &viewField{gui: g, name: viewInput}
	app.input = NewInput(app.field)

	app.session, err = di.InitializeSession(cfg, app.input, app.output)
	if err != nil {
		g.Close()
		return nil, err
	}
	if err := app.session.MergeModule(app.hostCommands()); err != nil {
		g.Close()
		return nil, err
	}

	app.controller, err = NewController(app.session, app.input, app.field, console.Key(cfg.ToggleKey), console.Key(cfg.SubmitKey))
	if err != nil {
		g.Close()
		return nil, err
	}
	app.setupKeymap()
	app.setupEventSubscriptions()
	if app.session.IsOpen() {
		app.status = statusOpen
	}

	g.SetManagerFunc(app.layout)
	if err := app.setupKeybindings(); err != nil {
		g.Close()
		return nil, err
	}
	return app, nil
}

// GetGocuiOutputMode converts the configured color mode to a gocui mode.
func GetGocuiOutputMode(outputMode string) gocui.OutputMode {
	switch outputMode {
	case config.OutputModeNormal:
		return gocui.OutputNormal
	case config.OutputMode256:
		return gocui.Output256
	default:
		return gocui.OutputTrue
	}
}

func (app *App) setupKeymap() {
	keymap := app.controller.Keymap()

	keymap.AddEntry(KeymapEntry{
		Key: KeySpec{Key: gocui.KeyCtrlC},
		Action: FunctionAction(func() error {
			app.requestQuit()
			return nil
		}),
		Description: "Exit application",
	})

	keymap.AddEntry(KeymapEntry{
		Key:         KeySpec{Key: gocui.KeyCtrlL},
		Action:      CommandAction("clear"),
		Description: "Clear console output",
	})
}

// setupKeybindings binds the keys that must work while no editable view has
// focus. Everything else reaches the controller through consoleEditor.
func (app *App) setupKeybindings() error {
	keys := []KeySpec{app.controller.ToggleKey()}
	for _, entry := range app.controller.Keymap().GetEntries() {
		keys = append(keys, entry.Key)
	}

	for _, key := range keys {
		key := key
		handler := func(g *gocui.Gui, v *gocui.View) error {
			app.controller.HandleKey(key)
			return app.loopError()
		}
		if err := app.gui.SetKeybinding("", key.Binding(), key.Mod, handler); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) setupEventSubscriptions() {
	bus := app.session.Bus()
	if bus == nil {
		return
	}
	bus.Subscribe(events.TopicConsoleOpened, func(event interface{}) {
		app.status = statusOpen
		app.logger.Debug("console opened")
	})
	bus.Subscribe(events.TopicConsoleClosed, func(event interface{}) {
		app.status = statusClosed
		app.logger.Debug("console closed")
	})
	bus.Subscribe(events.TopicCommandFailed, func(event interface{}) {
		if e, ok := event.(events.CommandFailedEvent); ok {
			app.logger.Info("command failed", "command", e.Command, "error", e.Err)
		}
	})
}

func (app *App) requestQuit() {
	app.quitting = true
}

func (app *App) loopError() error {
	if app.quitting {
		return gocui.ErrQuit
	}
	return nil
}

// Session returns the console session driven by the host.
func (app *App) Session() *console.Session { return app.session }

// GetGui returns the underlying gocui instance.
func (app *App) GetGui() *gocui.Gui { return app.gui }

// Run starts the main loop and blocks until the user quits.
func (app *App) Run() error {
	err := app.gui.MainLoop()
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (app *App) Close() {
	if app.gui != nil {
		app.gui.Close()
	}
}

// consoleEditor gives the controller first pick of every key typed into the
// input line.
type consoleEditor struct {
	app *App
}

func (e *consoleEditor) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	if e.app.controller.HandleKey(specFromEvent(key, ch, mod)) {
		if e.app.quitting {
			e.app.gui.Update(func(g *gocui.Gui) error {
				return gocui.ErrQuit
			})
		}
		return
	}
	gocui.DefaultEditor.Edit(v, key, ch, mod)
}
