package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/devconsole/pkg/console"
)

// TextField is the editable line the console reads commands from.
type TextField interface {
	Text() string
	SetText(text string)
	// Focus makes the field current and puts the caret after the text.
	Focus()
}

// Input is the console.InputSource of the terminal host. Key handlers record
// a single press, run one session tick and reset.
type Input struct {
	field   TextField
	toggle  bool
	submit  bool
	pressed *KeySpec
}

var _ console.InputSource = (*Input)(nil)

func NewInput(field TextField) *Input {
	return &Input{field: field}
}

func (i *Input) ToggleTriggered() bool { return i.toggle }
func (i *Input) SubmitTriggered() bool { return i.submit }
func (i *Input) Buffer() string        { return i.field.Text() }
func (i *Input) ClearBuffer()          { i.field.SetText("") }
func (i *Input) Focus()                { i.field.Focus() }

// KeyTriggered reports whether key names the key pressed in this tick.
// Names that do not parse never trigger.
func (i *Input) KeyTriggered(key console.Key) bool {
	if i.pressed == nil {
		return false
	}
	spec, err := ParseKey(key)
	if err != nil {
		return false
	}
	return spec == *i.pressed
}

func (i *Input) pressToggle()         { i.toggle = true }
func (i *Input) pressSubmit()         { i.submit = true }
func (i *Input) pressKey(key KeySpec) { i.pressed = &key }

func (i *Input) reset() {
	i.toggle = false
	i.submit = false
	i.pressed = nil
}

// viewField is a TextField backed by a gocui view. Calls made before the view
// exists are dropped.
type viewField struct {
	gui  *gocui.Gui
	name string
}

func (f *viewField) view() *gocui.View {
	v, err := f.gui.View(f.name)
	if err != nil {
		return nil
	}
	return v
}

func (f *viewField) Text() string {
	v := f.view()
	if v == nil {
		return ""
	}
	return strings.TrimRight(v.Buffer(), "\n")
}

func (f *viewField) SetText(text string) {
	v := f.view()
	if v == nil {
		return
	}
	v.Clear()
	fmt.Fprint(v, text)
	v.SetOrigin(0, 0)
	v.SetCursor(utf8.RuneCountInString(text), 0)
}

func (f *viewField) Focus() {
	v := f.view()
	if v == nil {
		return
	}
	if _, err := f.gui.SetCurrentView(f.name); err != nil {
		return
	}
	v.SetCursor(utf8.RuneCountInString(f.Text()), 0)
}
