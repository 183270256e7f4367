package console

// OutcomeKind tags the result of a dispatch.
type OutcomeKind int

const (
	// OutcomeSkipped means nothing was dispatched (empty input).
	OutcomeSkipped OutcomeKind = iota
	OutcomeSuccess
	OutcomeNotFound
	OutcomeHandlerFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSuccess:
		return "success"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeHandlerFailed:
		return "handler_failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of running one command line.
type Outcome struct {
	Kind    OutcomeKind
	Command string
	Args    []string
	// Err is a *NotFoundError or *HandlerError for the failure kinds.
	Err error
}

// Failed reports whether the outcome is one of the failure kinds.
func (o Outcome) Failed() bool {
	return o.Kind == OutcomeNotFound || o.Kind == OutcomeHandlerFailed
}

// Message is the one-line text shown to the user. Successful and skipped
// outcomes print nothing.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeNotFound:
		return "'" + o.Command + "' command not found"
	case OutcomeHandlerFailed:
		return "ERROR: " + o.Err.Error()
	default:
		return ""
	}
}
