package tui

import (
	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/devconsole/pkg/console"
	"github.com/kcaldas/devconsole/pkg/logging"
)

// Controller routes key presses to the console session. It knows nothing
// about gocui views, so it can be driven directly in tests.
type Controller struct {
	session *console.Session
	input   *Input
	field   TextField
	keymap  *Keymap
	logger  logging.Logger

	toggle KeySpec
	submit KeySpec

	// invalid remembers hotkey names that failed to parse so they are
	// reported once.
	invalid map[console.Key]bool
}

// NewController creates a controller for session. toggle and submit are the
// configured key names.
func NewController(session *console.Session, input *Input, field TextField, toggle, submit console.Key) (*Controller, error) {
	toggleSpec, err := ParseKey(toggle)
	if err != nil {
		return nil, err
	}
	submitSpec, err := ParseKey(submit)
	if err != nil {
		return nil, err
	}
	return &Controller{
		session: session,
		input:   input,
		field:   field,
		keymap:  NewKeymap(),
		logger:  logging.NewComponentLogger("tui"),
		toggle:  toggleSpec,
		submit:  submitSpec,
		invalid: make(map[console.Key]bool),
	}, nil
}

// Keymap returns the global keybindings handled before the console.
func (c *Controller) Keymap() *Keymap { return c.keymap }

// ToggleKey returns the parsed open/close key.
func (c *Controller) ToggleKey() KeySpec { return c.toggle }

// HandleKey processes one key press and reports whether it was consumed.
// Unconsumed keys go to the text editor.
func (c *Controller) HandleKey(key KeySpec) bool {
	if entry, ok := c.keymap.Lookup(key); ok {
		c.runAction(entry)
		return true
	}

	if key == c.toggle {
		c.tick(c.input.pressToggle)
		return true
	}
	if !c.session.IsOpen() {
		return false
	}

	switch {
	case key == c.submit:
		c.tick(c.input.pressSubmit)
		return true
	case key.Ch == 0 && key.Key == gocui.KeyArrowUp:
		if line, ok := c.session.RecallPrevious(); ok {
			c.field.SetText(line)
		}
		return true
	case key.Ch == 0 && key.Key == gocui.KeyArrowDown:
		if line, ok := c.session.RecallNext(); ok {
			c.field.SetText(line)
		}
		return true
	}

	if c.isHotkey(key) {
		c.tick(func() { c.input.pressKey(key) })
		return true
	}
	return false
}

func (c *Controller) tick(press func()) {
	press()
	c.session.Tick()
	c.input.reset()
}

func (c *Controller) isHotkey(key KeySpec) bool {
	for _, binding := range c.session.Registry().Hotkeys() {
		spec, err := ParseKey(binding.Key)
		if err != nil {
			if !c.invalid[binding.Key] {
				c.invalid[binding.Key] = true
				c.logger.Warn("ignoring hotkey", "command", binding.Entry.Name(), "key", binding.Key, "error", err)
			}
			continue
		}
		if spec == key {
			return true
		}
	}
	return false
}

func (c *Controller) runAction(entry KeymapEntry) {
	switch entry.Action.Type {
	case "command":
		if c.session.IsOpen() {
			c.session.Submit(entry.Action.CommandName)
		}
	case "function":
		if entry.Action.Function == nil {
			return
		}
		if err := entry.Action.Function(); err != nil {
			c.logger.Warn("key action failed", "key", entry.Key.String(), "error", err)
		}
	}
}
