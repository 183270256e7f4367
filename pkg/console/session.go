package console

import (
	"github.com/google/uuid"
	"github.com/kcaldas/devconsole/pkg/events"
	"github.com/kcaldas/devconsole/pkg/history"
	"github.com/kcaldas/devconsole/pkg/logging"
)

// State is the open/closed state of a console session.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// DefaultClearHotkey is the key bound to the clear built-in.
const DefaultClearHotkey Key = "F1"

// DefaultBanner is printed when a session is initialised.
var DefaultBanner = []string{
	"DEBUG CONSOLE",
	"------------------------",
	"type 'help' to view available commands",
}

// Session glues an input source and an output sink to a registry and
// dispatcher. It is driven by the host calling Tick once per poll; all
// methods are expected to run on that same goroutine.
type Session struct {
	id          string
	state       State
	initialized bool

	registry   *CommandRegistry
	dispatcher *Dispatcher
	history    *history.CommandHistory

	input  InputSource
	output OutputSink
	bus    *events.Bus
	logger logging.Logger

	clearHotkey Key
	banner      []string
}

// Option configures a Session.
type Option func(*Session)

// WithStartOpen sets the initial state. Sessions start closed by default.
func WithStartOpen(open bool) Option {
	return func(s *Session) {
		if open {
			s.state = StateOpen
		} else {
			s.state = StateClosed
		}
	}
}

// WithEventBus publishes session and dispatch events on bus.
func WithEventBus(bus *events.Bus) Option {
	return func(s *Session) {
		s.bus = bus
	}
}

// WithLogger sets the logger. It is tagged with the session id.
func WithLogger(logger logging.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClearHotkey changes the key bound to the clear built-in. KeyNone
// leaves clear without a hotkey.
func WithClearHotkey(key Key) Option {
	return func(s *Session) {
		s.clearHotkey = key
	}
}

// WithHistorySize caps the number of recalled lines.
func WithHistorySize(size int) Option {
	return func(s *Session) {
		s.history = history.NewCommandHistory(size)
	}
}

// WithBanner replaces the lines printed by Init. An empty banner prints
// nothing.
func WithBanner(lines []string) Option {
	return func(s *Session) {
		s.banner = lines
	}
}

// NewSession creates a closed, uninitialised session. A nil output gets an
// in-memory OutputLog; a nil input gets NopInput.
func NewSession(input InputSource, output OutputSink, opts ...Option) *Session {
	if input == nil {
		input = NopInput{}
	}
	if output == nil {
		output = NewOutputLog()
	}

	s := &Session{
		id:          uuid.NewString(),
		state:       StateClosed,
		registry:    NewCommandRegistry(),
		history:     history.NewCommandHistory(history.DefaultMaxSize),
		input:       input,
		output:      output,
		clearHotkey: DefaultClearHotkey,
		banner:      DefaultBanner,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewSessionLogger("console", s.id)
	} else {
		s.logger = s.logger.With("session", s.id)
	}
	s.dispatcher = NewDispatcher(s.registry, s.bus, s.logger)
	return s
}

// Init registers the built-in commands and prints the banner. Calling it
// again is a no-op.
func (s *Session) Init() error {
	if s.initialized {
		return nil
	}

	if err := s.registerBuiltins(); err != nil {
		return err
	}
	for _, line := range s.banner {
		s.Print(line)
	}

	s.initialized = true
	s.logger.Info("console initialized", "state", s.state, "commands", s.registry.Len())
	return nil
}

// Initialized reports whether Init has run.
func (s *Session) Initialized() bool {
	return s.initialized
}

// Register adds a command to the session's registry. It fails with
// ErrNotInitialized before Init so user commands cannot take built-in names.
func (s *Session) Register(name string, handler HandlerFunc, opts ...RegisterOption) (*CommandEntry, error) {
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	entry, err := s.registry.Register(name, handler, opts...)
	if err != nil {
		s.logger.Warn("command registration failed", "command", name, "error", err)
		return nil, err
	}
	s.logger.Debug("command registered", "command", entry.Name(), "hotkey", entry.Hotkey())
	return entry, nil
}

// MergeModule registers all commands of m.
func (s *Session) MergeModule(m *Module) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if err := s.registry.Merge(m); err != nil {
		s.logger.Warn("module merge failed", "module", m.Name(), "error", err)
		return err
	}
	s.logger.Debug("module merged", "module", m.Name(), "commands", m.Commands())
	return nil
}

// Tick processes one poll of the input source.
func (s *Session) Tick() {
	if s.input.ToggleTriggered() {
		s.Toggle()
	}

	if s.state != StateOpen {
		return
	}

	if s.input.SubmitTriggered() {
		s.submitBuffer()
		return
	}

	s.runHotkey()
}

func (s *Session) submitBuffer() {
	line := s.input.Buffer()
	if line == "" {
		return
	}

	s.Submit(line)
	s.input.ClearBuffer()
	s.input.Focus()
}

// runHotkey invokes the first bound command whose key went down.
func (s *Session) runHotkey() {
	for _, binding := range s.registry.Hotkeys() {
		if !s.input.KeyTriggered(binding.Key) {
			continue
		}
		s.report(s.dispatcher.Invoke(binding.Entry, nil))
		return
	}
}

// Submit runs line as if it had been typed and submitted, records it in
// the history and prints the outcome message.
func (s *Session) Submit(line string) Outcome {
	s.history.AddCommand(line)
	outcome := s.dispatcher.Execute(line)
	s.report(outcome)
	return outcome
}

func (s *Session) report(outcome Outcome) {
	if msg := outcome.Message(); msg != "" {
		s.Print(msg)
	}
}

// Toggle flips between open and closed.
func (s *Session) Toggle() {
	if s.state == StateOpen {
		s.Close()
	} else {
		s.Open()
	}
}

// Open opens the console, clearing and focusing the input. Opening an open
// console does nothing.
func (s *Session) Open() {
	if s.state == StateOpen {
		return
	}
	s.state = StateOpen
	s.input.ClearBuffer()
	s.input.Focus()
	s.history.Reset()
	s.publish(events.ConsoleToggledEvent{SessionID: s.id, Open: true})
}

// Close closes the console. Closing a closed console does nothing.
func (s *Session) Close() {
	if s.state == StateClosed {
		return
	}
	s.state = StateClosed
	s.publish(events.ConsoleToggledEvent{SessionID: s.id, Open: false})
}

func (s *Session) State() State { return s.state }
func (s *Session) IsOpen() bool { return s.state == StateOpen }

// Print appends a line to the output.
func (s *Session) Print(line string) {
	s.output.AppendLine(line)
}

// ClearOutput empties the output.
func (s *Session) ClearOutput() {
	s.output.Clear()
	s.publish(events.ConsoleClearedEvent{SessionID: s.id})
}

// RecallPrevious steps back through submitted lines.
func (s *Session) RecallPrevious() (string, bool) {
	return s.history.Previous()
}

// RecallNext steps forward through submitted lines.
func (s *Session) RecallNext() (string, bool) {
	return s.history.Next()
}

func (s *Session) ID() string                       { return s.id }
func (s *Session) Registry() *CommandRegistry       { return s.registry }
func (s *Session) Dispatcher() *Dispatcher          { return s.dispatcher }
func (s *Session) History() *history.CommandHistory { return s.history }
func (s *Session) Output() OutputSink               { return s.output }
func (s *Session) Bus() *events.Bus                 { return s.bus }

func (s *Session) publish(event events.Event) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

// NopInput never reports any input. Sessions driven only through Submit use
// it.
type NopInput struct{}

func (NopInput) ToggleTriggered() bool { return false }
func (NopInput) SubmitTriggered() bool { return false }
func (NopInput) KeyTriggered(Key) bool { return false }
func (NopInput) Buffer() string        { return "" }
func (NopInput) ClearBuffer()          {}
func (NopInput) Focus()                {}
