package cmdtree

import (
	"errors"
	"fmt"
)

// MissingArgumentError is returned when a non-optional sub-command of the active command was not
// bound during parsing.
type MissingArgumentError struct {
	// Command is the active command whose sub-command is missing.
	Command *Command
	// Name is the missing sub-command.
	Name string
}

func (e *MissingArgumentError) Error() string {
	return "missing required argument: " + e.Name
}

// NoActionError is returned by [Run] when asked to execute a command that has no action.
type NoActionError struct {
	Command *Command
}

func (e *NoActionError) Error() string {
	return fmt.Sprintf("command %q has no action", e.Command.name)
}

// NewError wraps err with an explicit process exit code. Actions return it when the default
// status of 1 is not appropriate.
func NewError(code int, err error) error {
	return &Error{code: code, err: err}
}

// Error is an error carrying a process exit code.
type Error struct {
	code int
	err  error
}

// Code returns the exit code.
func (e *Error) Code() int {
	return e.code
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by [Parse] or [Run] to a process exit status: 0 for nil, the
// code of an [Error] anywhere in the chain, and 1 for anything else, including a
// [MissingArgumentError].
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if cliErr := (*Error)(nil); errors.As(err, &cliErr) {
		return cliErr.code
	}
	return 1
}
