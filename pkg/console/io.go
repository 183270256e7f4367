package console

import "strings"

// InputSource is polled once per host tick.
type InputSource interface {
	// ToggleTriggered reports whether the open/close key went down this tick.
	ToggleTriggered() bool
	// SubmitTriggered reports whether the submit key went down this tick.
	SubmitTriggered() bool
	// KeyTriggered reports whether key went down this tick.
	KeyTriggered(key Key) bool
	// Buffer returns the current contents of the text input.
	Buffer() string
	ClearBuffer()
	// Focus focuses the text input and moves the caret to the end of the
	// buffer as a single action.
	Focus()
}

// OutputSink is the visible text surface.
type OutputSink interface {
	AppendLine(line string)
	Clear()
}

// OutputLog is an in-memory OutputSink. Each appended line is prefixed with a
// newline, matching a text surface that grows downward. It has no size limit.
type OutputLog struct {
	text strings.Builder
}

// NewOutputLog creates an empty log
func NewOutputLog() *OutputLog {
	return &OutputLog{}
}

func (l *OutputLog) AppendLine(line string) {
	l.text.WriteString("\n")
	l.text.WriteString(line)
}

func (l *OutputLog) Clear() {
	l.text.Reset()
}

// Text returns the raw accumulated text.
func (l *OutputLog) Text() string {
	return l.text.String()
}

// Lines returns the appended lines. A line containing newlines is returned
// split.
func (l *OutputLog) Lines() []string {
	text := l.text.String()
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(text, "\n"), "\n")
}

// Len returns the size of the accumulated text in bytes.
func (l *OutputLog) Len() int {
	return l.text.Len()
}
