package tui

// KeyAction represents an action that can be triggered by a key
type KeyAction struct {
	Type        string       // "command" or "function"
	CommandName string       // For "command" type - console command line to submit
	Function    func() error // For "function" type - direct function to call
}

// KeymapEntry represents a single global keybinding
type KeymapEntry struct {
	Key         KeySpec
	Action      KeyAction
	Description string
}

// Keymap holds the host's global keybindings. Console hotkeys are not listed
// here; they live in the session registry.
type Keymap struct {
	entries []KeymapEntry
}

// NewKeymap creates a new empty keymap
func NewKeymap() *Keymap {
	return &Keymap{
		entries: make([]KeymapEntry, 0),
	}
}

// AddEntry adds a new keybinding entry to the keymap
func (k *Keymap) AddEntry(entry KeymapEntry) {
	k.entries = append(k.entries, entry)
}

// GetEntries returns all keymap entries
func (k *Keymap) GetEntries() []KeymapEntry {
	return k.entries
}

// Lookup returns the entry bound to key.
func (k *Keymap) Lookup(key KeySpec) (KeymapEntry, bool) {
	for _, entry := range k.entries {
		if entry.Key == key {
			return entry, true
		}
	}
	return KeymapEntry{}, false
}

// CommandAction creates a KeyAction that submits a console command line
func CommandAction(commandName string) KeyAction {
	return KeyAction{
		Type:        "command",
		CommandName: commandName,
	}
}

// FunctionAction creates a KeyAction that calls a function directly
func FunctionAction(fn func() error) KeyAction {
	return KeyAction{
		Type:     "function",
		Function: fn,
	}
}
