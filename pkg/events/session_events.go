package events

import "fmt"

// Topics for console lifecycle events.
const (
	TopicConsoleOpened  = "console.opened"
	TopicConsoleClosed  = "console.closed"
	TopicConsoleCleared = "console.cleared"
	TopicCommandFailed  = "command.failed"
)

// ConsoleToggledEvent is emitted when a session opens or closes
type ConsoleToggledEvent struct {
	SessionID string
	Open      bool
}

// Topic returns the event topic for the new console state
func (e ConsoleToggledEvent) Topic() string {
	if e.Open {
		return TopicConsoleOpened
	}
	return TopicConsoleClosed
}

// ConsoleClearedEvent is emitted when the output log is emptied
type ConsoleClearedEvent struct {
	SessionID string
}

// Topic returns the event topic for output clears
func (e ConsoleClearedEvent) Topic() string {
	return TopicConsoleCleared
}

// CommandExecutedEvent is emitted after a handler completed without error
type CommandExecutedEvent struct {
	Command string
	Args    []string
}

// Topic returns the per-command topic, e.g. "command.clear.executed"
func (e CommandExecutedEvent) Topic() string {
	return CommandExecutedTopic(e.Command)
}

// CommandFailedEvent is emitted when a handler returned an error or panicked
type CommandFailedEvent struct {
	Command string
	Args    []string
	Err     error
}

// Topic returns the event topic for handler failures
func (e CommandFailedEvent) Topic() string {
	return TopicCommandFailed
}

// CommandExecutedTopic returns the topic emitted when the named command succeeds.
func CommandExecutedTopic(command string) string {
	return fmt.Sprintf("command.%s.executed", command)
}

// Event is anything that knows its own topic.
type Event interface {
	Topic() string
}

// Publish emits an event under its own topic.
func (bus *Bus) Publish(event Event) {
	bus.Emit(event.Topic(), event)
}
