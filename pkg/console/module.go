package console

import (
	"fmt"
	"sort"
)

// ModuleCommand declares one command of a Module.
type ModuleCommand struct {
	Name        string
	Handler     HandlerFunc
	Description string
	Hotkey      Key
}

type moduleCommand struct {
	name        string
	handler     HandlerFunc
	description string
	hotkey      Key
}

// Module is a self-contained bundle of related commands. It is built on its
// own and merged into a registry explicitly with CommandRegistry.Merge.
//
// Module keeps a single last-error slot for callers that use RunCommand. Run
// returns the same Outcome the Dispatcher produces and should be preferred.
type Module struct {
	name        string
	description string
	commands    map[string]moduleCommand
	lastError   error
}

// NewModule creates a module holding the given commands. Commands with an
// empty name, nil handler or a name already used in the module are skipped;
// use AddCommand to get the error.
func NewModule(name, description string, commands ...ModuleCommand) *Module {
	m := &Module{
		name:        name,
		description: description,
		commands:    make(map[string]moduleCommand),
	}
	for _, c := range commands {
		_ = m.AddCommand(c.Name, c.Handler, c.Description, WithHotkey(c.Hotkey))
	}
	return m
}

func (m *Module) Name() string        { return m.name }
func (m *Module) Description() string { return m.description }

// AddCommand adds a command to the module's own mapping. Only WithHotkey
// and WithDescription are meaningful here; description wins over an option.
func (m *Module) AddCommand(name string, handler HandlerFunc, description string, opts ...RegisterOption) error {
	entry, err := newEntry(name, handler, opts...)
	if err != nil {
		return err
	}
	key := foldName(name)
	if _, exists := m.commands[key]; exists {
		return &DuplicateNameError{Name: name}
	}
	if description == "" {
		description = entry.description
	}
	m.commands[key] = moduleCommand{
		name:        name,
		handler:     handler,
		description: description,
		hotkey:      entry.hotkey,
	}
	return nil
}

// Commands returns the command names in sorted order.
func (m *Module) Commands() []string {
	cmds := m.sortedCommands()
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.name
	}
	return names
}

func (m *Module) sortedCommands() []moduleCommand {
	cmds := make([]moduleCommand, 0, len(m.commands))
	for _, c := range m.commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return foldName(cmds[i].name) < foldName(cmds[j].name)
	})
	return cmds
}

// Run invokes a module command and reports the result as an Outcome. A
// failure also overwrites the last-error slot.
func (m *Module) Run(name string, args ...string) Outcome {
	c, ok := m.commands[foldName(name)]
	if !ok {
		err := &NotFoundError{Name: name}
		m.lastError = err
		return Outcome{Kind: OutcomeNotFound, Command: name, Args: args, Err: err}
	}

	if err := call(c.handler, args); err != nil {
		herr := &HandlerError{Command: c.name, Err: err}
		m.lastError = herr
		return Outcome{Kind: OutcomeHandlerFailed, Command: c.name, Args: args, Err: herr}
	}
	return Outcome{Kind: OutcomeSuccess, Command: c.name, Args: args}
}

// RunCommand invokes a module command, returning false on failure. The
// failure is kept in the last-error slot until GetLastError reads it.
func (m *Module) RunCommand(name string, args ...string) bool {
	return !m.Run(name, args...).Failed()
}

// HasError reports whether an unread error is pending.
func (m *Module) HasError() bool {
	return m.lastError != nil
}

// GetLastError returns the pending error message and clears the slot.
func (m *Module) GetLastError() (string, error) {
	if m.lastError == nil {
		return "", fmt.Errorf("module %s: %w", m.name, ErrNoErrorPending)
	}
	msg := m.lastError.Error()
	m.lastError = nil
	return msg, nil
}
