package cmdtree

import (
	"io"
)

// State is what an [Action] receives: the command being executed, its bound arguments and the
// standard streams.
type State struct {
	// Command is the active command.
	Command *Command

	// Args holds every value bound during parsing, keyed by option name or positional slot name.
	Args ArgumentMap

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Get returns all values bound to key.
func (s *State) Get(key string) []string {
	return s.Args.Get(key)
}

// Has reports whether key was bound. For flags this is the presence check.
func (s *State) Has(key string) bool {
	return s.Args.Has(key)
}

// Value returns the last value bound to key, or an empty string.
func (s *State) Value(key string) string {
	return s.Args.Last(key)
}
