package console

import (
	"strings"
	"sync"
	"unicode"
)

// HotkeyBinding pairs a bound key with the entry it triggers.
type HotkeyBinding struct {
	Key   Key
	Entry *CommandEntry
}

// CommandRegistry owns the registered commands and their name and hotkey
// indices. Every indexed entry is also present in the ordered entry list.
type CommandRegistry struct {
	mu       sync.RWMutex
	entries  []*CommandEntry
	byName   map[string]*CommandEntry
	byHotkey map[Key]*CommandEntry
	keyOrder []Key // scan order, by first binding of each key
}

// NewCommandRegistry creates an empty registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		byName:   make(map[string]*CommandEntry),
		byHotkey: make(map[Key]*CommandEntry),
	}
}

// Register adds a command. It fails with *DuplicateNameError when the
// case-folded name is taken, leaving the registry untouched. A hotkey that
// is already bound is rebound to the new command.
func (r *CommandRegistry) Register(name string, handler HandlerFunc, opts ...RegisterOption) (*CommandEntry, error) {
	entry, err := newEntry(name, handler, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[foldName(entry.name)]; exists {
		return nil, &DuplicateNameError{Name: entry.name}
	}
	r.insertLocked(entry)
	return entry, nil
}

// Merge registers every command of the module. Either all of them are
// registered or none are.
func (r *CommandRegistry) Merge(m *Module) error {
	cmds := m.sortedCommands()
	entries := make([]*CommandEntry, 0, len(cmds))
	for _, c := range cmds {
		entry, err := newEntry(c.name, c.handler, WithDescription(c.description), WithHotkey(c.hotkey))
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		if _, exists := r.byName[foldName(entry.name)]; exists {
			return &DuplicateNameError{Name: entry.name}
		}
	}
	for _, entry := range entries {
		r.insertLocked(entry)
	}
	return nil
}

// insertLocked must be called with the write lock held and a name that is
// known to be free.
func (r *CommandRegistry) insertLocked(entry *CommandEntry) {
	r.entries = append(r.entries, entry)
	r.byName[foldName(entry.name)] = entry

	if entry.hotkey.IsNone() {
		return
	}
	key := entry.hotkey.Normalize()
	if _, bound := r.byHotkey[key]; !bound {
		r.keyOrder = append(r.keyOrder, key)
	}
	r.byHotkey[key] = entry
}

// Resolve returns the handler registered under name.
func (r *CommandRegistry) Resolve(name string) (HandlerFunc, error) {
	entry, ok := r.Lookup(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return entry.handler, nil
}

// Lookup returns the entry registered under name.
func (r *CommandRegistry) Lookup(name string) (*CommandEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byName[foldName(name)]
	return entry, ok
}

// ResolveHotkey returns the handler bound to key, if any.
func (r *CommandRegistry) ResolveHotkey(key Key) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byHotkey[key.Normalize()]
	if !ok {
		return nil, false
	}
	return entry.handler, true
}

// BoundHotkey returns the key currently routed to the named command. It can
// differ from the entry's registered hotkey when a later registration took
// the key over.
func (r *CommandRegistry) BoundHotkey(name string) (Key, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byName[foldName(name)]
	if !ok || entry.hotkey.IsNone() {
		return KeyNone, false
	}
	if r.byHotkey[entry.hotkey.Normalize()] != entry {
		return KeyNone, false
	}
	return entry.hotkey, true
}

// Hotkeys returns the live bindings in scan order.
func (r *CommandRegistry) Hotkeys() []HotkeyBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bindings := make([]HotkeyBinding, 0, len(r.keyOrder))
	for _, key := range r.keyOrder {
		bindings = append(bindings, HotkeyBinding{Key: key, Entry: r.byHotkey[key]})
	}
	return bindings
}

// List returns the entries in registration order.
func (r *CommandRegistry) List() []*CommandEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*CommandEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered commands.
func (r *CommandRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func newEntry(name string, handler HandlerFunc, opts ...RegisterOption) (*CommandEntry, error) {
	if name == "" {
		return nil, invalidCommand("empty name")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return nil, invalidCommand("name %q contains whitespace", name)
	}
	if handler == nil {
		return nil, invalidCommand("command '%s' has no handler", name)
	}

	entry := &CommandEntry{name: name, handler: handler}
	for _, opt := range opts {
		opt(entry)
	}
	return entry, nil
}
