package history

import "strings"

// DefaultMaxSize is used when a non-positive size is requested.
const DefaultMaxSize = 100

// CommandHistory keeps the lines submitted during one console session and a
// recall cursor for stepping back through them. Nothing is persisted.
type CommandHistory struct {
	commands []string
	maxSize  int
	cursor   int // == len(commands) when not recalling
}

// NewCommandHistory creates an empty history that keeps at most maxSize lines
func NewCommandHistory(maxSize int) *CommandHistory {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &CommandHistory{
		commands: make([]string, 0),
		maxSize:  maxSize,
	}
}

// AddCommand appends a line, skipping blanks and immediate repeats, and
// resets the recall cursor.
func (h *CommandHistory) AddCommand(command string) {
	defer h.Reset()

	if strings.TrimSpace(command) == "" {
		return
	}
	if n := len(h.commands); n > 0 && h.commands[n-1] == command {
		return
	}

	h.commands = append(h.commands, command)

	// Trim to max size (keep the newest)
	if len(h.commands) > h.maxSize {
		h.commands = h.commands[len(h.commands)-h.maxSize:]
	}
}

// GetHistory returns a copy of the history, oldest first
func (h *CommandHistory) GetHistory() []string {
	result := make([]string, len(h.commands))
	copy(result, h.commands)
	return result
}

// Len returns the number of stored lines
func (h *CommandHistory) Len() int {
	return len(h.commands)
}

// Previous moves the cursor one line back and returns that line. At the
// oldest line it stays put. ok is false when the history is empty.
func (h *CommandHistory) Previous() (string, bool) {
	if len(h.commands) == 0 {
		return "", false
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.commands[h.cursor], true
}

// Next moves the cursor one line forward. Stepping past the newest line
// returns an empty string and leaves recall mode.
func (h *CommandHistory) Next() (string, bool) {
	if len(h.commands) == 0 {
		return "", false
	}
	if h.cursor < len(h.commands)-1 {
		h.cursor++
		return h.commands[h.cursor], true
	}
	h.cursor = len(h.commands)
	return "", true
}

// Reset leaves recall mode
func (h *CommandHistory) Reset() {
	h.cursor = len(h.commands)
}
