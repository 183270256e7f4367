package console

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName  = errors.New("duplicate command name")
	ErrNotFound       = errors.New("command not found")
	ErrHandlerFailed  = errors.New("command handler failed")
	ErrInvalidCommand = errors.New("invalid command")
	ErrNoErrorPending = errors.New("no error pending")
	ErrNotInitialized = errors.New("console not initialized")
)

// DuplicateNameError is returned when a command name is already registered.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("command '%s' is already registered", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NotFoundError is returned when no command matches a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s' command not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// HandlerError wraps a failure raised inside a command handler.
type HandlerError struct {
	Command string
	Err     error
}

func (e *HandlerError) Error() string {
	return e.Err.Error()
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

func (e *HandlerError) Is(target error) bool {
	return target == ErrHandlerFailed
}

// invalidCommand builds an ErrInvalidCommand carrying the reason.
func invalidCommand(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCommand, fmt.Sprintf(format, args...))
}
