// Package cmdtree provides a small framework for building command-line applications from a
// declarative tree of commands, options and positional arguments.
//
// A tree is assembled bottom-up with [NewCommand] and is read-only once built. For every
// invocation the framework selects the deepest matching sub-command, binds the remaining tokens
// to that command's options and positional slots, and hands the result to the command's [Action]
// as an [ArgumentMap]. Help and version text are rendered from the same tree, so documentation
// cannot drift from behavior.
//
// Parsing is permissive: unknown options and surplus positional arguments are dropped without
// an error. The only fatal condition is a missing required sub-command, reported as a
// [MissingArgumentError].
package cmdtree
