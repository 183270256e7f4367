package console

import (
	"strings"

	"golang.org/x/text/cases"
)

// HandlerFunc is the function invoked when a command runs. A returned error
// or a panic is reported as a handler failure.
type HandlerFunc func(args []string) error

// Key identifies a keyboard trigger, e.g. "F1" or "`". The host maps names
// to its own key codes.
type Key string

// KeyNone means no hotkey is bound.
const KeyNone Key = ""

// Normalize returns the canonical form used for hotkey indexing.
func (k Key) Normalize() Key {
	return Key(strings.ToLower(strings.TrimSpace(string(k))))
}

// IsNone reports whether the key is unbound.
func (k Key) IsNone() bool {
	return k.Normalize() == KeyNone
}

func (k Key) String() string {
	return string(k)
}

// CommandEntry describes a single registered command. Entries are immutable
// once registered.
type CommandEntry struct {
	name        string
	handler     HandlerFunc
	hotkey      Key
	description string
}

func (e *CommandEntry) Name() string         { return e.name }
func (e *CommandEntry) Handler() HandlerFunc { return e.handler }
func (e *CommandEntry) Hotkey() Key          { return e.hotkey }
func (e *CommandEntry) Description() string  { return e.description }

// HelpLine renders the entry the way the help command lists it.
func (e *CommandEntry) HelpLine() string {
	desc := e.description
	if desc == "" {
		desc = "No Description"
	}
	return "\t " + e.name + " - " + desc
}

// RegisterOption configures an entry at registration time.
type RegisterOption func(*CommandEntry)

// WithHotkey binds the command to a key while the console is open.
func WithHotkey(key Key) RegisterOption {
	return func(e *CommandEntry) {
		e.hotkey = key
	}
}

// WithDescription sets the text shown by help.
func WithDescription(description string) RegisterOption {
	return func(e *CommandEntry) {
		e.description = description
	}
}

// foldName returns the lookup key for a command name.
func foldName(name string) string {
	return cases.Fold().String(name)
}
