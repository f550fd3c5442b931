package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ParseAndRun parses args against root and runs the result. A convenience function that combines
// [Parse] and [Run] into a single call.
func ParseAndRun(
	ctx context.Context,
	root *Command,
	args []string,
	options *RunOptions,
) error {
	inv, err := Parse(ctx, root, args)
	if err != nil {
		return err
	}
	return Run(ctx, inv, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run carries out a parsed invocation. In help mode it writes the root version banner and the
// active command's help to stdout; when help is only a fallback for a command without an action,
// the banner is omitted. In version mode it writes the banner. Otherwise the action is called
// once and its error is returned unchanged.
//
// The options parameter may be nil, in which case default values are used.
func Run(ctx context.Context, inv *Invocation, options *RunOptions) error {
	if inv == nil || inv.Command == nil {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)
	logger := loggerFrom(ctx)

	switch inv.Mode {
	case ModeHelp:
		if !inv.Fallback {
			fmt.Fprintln(options.Stdout, Version(inv.Root))
		}
		fmt.Fprintln(options.Stdout, Help(inv.Command))
		return nil
	case ModeVersion:
		fmt.Fprintln(options.Stdout, Version(inv.Root))
		return nil
	case ModeExec:
	default:
		return fmt.Errorf("unknown invocation mode %d", inv.Mode)
	}

	if inv.Command.action == nil {
		return &NoActionError{Command: inv.Command}
	}
	logger.DebugContext(ctx, "running command", slog.String("command", inv.Command.name))
	return inv.Command.action.Run(ctx, &State{
		Command: inv.Command,
		Args:    inv.Args,
		Stdin:   options.Stdin,
		Stdout:  options.Stdout,
		Stderr:  options.Stderr,
	})
}

// Main is the usual body of a program's main function: it parses and runs args, writes any error
// to the error stream and returns the exit status for [os.Exit].
func Main(ctx context.Context, root *Command, args []string, options *RunOptions) int {
	options = checkAndSetRunOptions(options)
	err := ParseAndRun(ctx, root, args, options)
	if err != nil {
		fmt.Fprintln(options.Stderr, err)
	}
	return ExitCode(err)
}

func checkAndSetRunOptions(options *RunOptions) *RunOptions {
	opt := &RunOptions{}
	if options != nil {
		*opt = *options
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
