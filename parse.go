package cmdtree

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// Mode says what [Run] does with an [Invocation].
type Mode int

const (
	// ModeExec runs the active command's action.
	ModeExec Mode = iota + 1
	// ModeHelp prints the version banner followed by the active command's help.
	ModeHelp
	// ModeVersion prints the version banner.
	ModeVersion
)

func (m Mode) String() string {
	switch m {
	case ModeExec:
		return "exec"
	case ModeHelp:
		return "help"
	case ModeVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Invocation is the result of parsing one argument list against a command tree.
type Invocation struct {
	// Root is the tree the arguments were parsed against.
	Root *Command
	// Command is the active command selected by the arguments.
	Command *Command
	// Mode is what Run will do.
	Mode Mode
	// Fallback is set when Mode is ModeHelp only because Command has no action.
	Fallback bool
	// Bindings and Args are empty in help and version mode, which never bind.
	Bindings []Binding
	Args     ArgumentMap
}

// Parse resolves the active command for args and binds the remaining tokens. args should not
// include the program name, typically os.Args[1:].
//
// If args contains --help or -h anywhere, binding is skipped and the invocation is in help mode.
// Otherwise --version or -V selects version mode. In both cases no action will run.
func Parse(ctx context.Context, root *Command, args []string) (*Invocation, error) {
	if root == nil {
		return nil, errors.New("failed to parse: root command is nil")
	}
	logger := loggerFrom(ctx)

	cmd, selected := resolve(ctx, root, args)
	logger.DebugContext(ctx, "resolved command",
		slog.String("command", cmd.name),
		slog.Int("index", selected),
	)
	inv := &Invocation{
		Root:    root,
		Command: cmd,
		Args:    ArgumentMap{},
	}

	switch {
	case containsAny(args, "--help", "-h"):
		inv.Mode = ModeHelp
		return inv, nil
	case containsAny(args, "--version", "-V"):
		inv.Mode = ModeVersion
		return inv, nil
	}

	bindings, err := bind(ctx, cmd, filterArgs(args, selected))
	if err != nil {
		return nil, err
	}
	inv.Bindings = bindings
	inv.Args = NewArgumentMap(bindings)
	if cmd.action == nil {
		inv.Mode = ModeHelp
		inv.Fallback = true
		return inv, nil
	}
	inv.Mode = ModeExec
	return inv, nil
}

func containsAny(args []string, targets ...string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return slices.Contains(targets, arg)
	})
}
