package console

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kcaldas/devconsole/pkg/events"
	"github.com/kcaldas/devconsole/pkg/logging"
)

// Dispatcher turns raw input lines into handler invocations. No handler
// failure escapes Execute or Invoke; every failure becomes an Outcome.
type Dispatcher struct {
	registry *CommandRegistry
	bus      *events.Bus
	logger   logging.Logger
}

// NewDispatcher creates a dispatcher over registry. bus may be nil.
func NewDispatcher(registry *CommandRegistry, bus *events.Bus, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewComponentLogger("dispatcher")
	}
	return &Dispatcher{
		registry: registry,
		bus:      bus,
		logger:   logger,
	}
}

// ParseLine lower-cases the line and splits it at the first whitespace rune
// into a command token and the remainder. The remainder is split on every
// whitespace rune, so repeated separators yield empty tokens.
func ParseLine(raw string) (string, []string) {
	line := strings.ToLower(raw)

	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, nil
	}
	_, size := utf8.DecodeRuneInString(line[idx:])
	return line[:idx], splitEachSpace(line[idx+size:])
}

func splitEachSpace(s string) []string {
	tokens := []string{}
	start := 0
	for i, r := range s {
		if unicode.IsSpace(r) {
			tokens = append(tokens, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(tokens, s[start:])
}

// Execute parses raw, resolves the command and invokes it.
func (d *Dispatcher) Execute(raw string) Outcome {
	if raw == "" {
		return Outcome{Kind: OutcomeSkipped}
	}

	command, args := ParseLine(raw)
	entry, ok := d.registry.Lookup(command)
	if !ok {
		d.logger.Debug("command not found", "command", command)
		return Outcome{
			Kind:    OutcomeNotFound,
			Command: command,
			Args:    args,
			Err:     &NotFoundError{Name: command},
		}
	}

	return d.Invoke(entry, args)
}

// Invoke runs an already resolved entry with the same failure isolation as
// Execute.
func (d *Dispatcher) Invoke(entry *CommandEntry, args []string) Outcome {
	d.logger.Debug("dispatching command", "command", entry.Name(), "args", args)

	if err := call(entry.Handler(), args); err != nil {
		herr := &HandlerError{Command: entry.Name(), Err: err}
		d.logger.Warn("command failed", "command", entry.Name(), "error", err)
		if d.bus != nil {
			d.bus.Publish(events.CommandFailedEvent{Command: entry.Name(), Args: args, Err: err})
		}
		return Outcome{
			Kind:    OutcomeHandlerFailed,
			Command: entry.Name(),
			Args:    args,
			Err:     herr,
		}
	}

	if d.bus != nil {
		d.bus.Publish(events.CommandExecutedEvent{Command: entry.Name(), Args: args})
	}
	return Outcome{Kind: OutcomeSuccess, Command: entry.Name(), Args: args}
}

// call invokes handler and converts a panic into an error.
func call(handler HandlerFunc, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return handler(args)
}
