package cmdtree

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mfridman/cmdtree/pkg/suggest"
)

// Binding is one (key, value) pair produced while classifying tokens. HasValue is false for a
// value-taking option that was never followed by a plain token; such a binding folds to an empty
// string.
type Binding struct {
	Key      string
	Value    string
	HasValue bool
}

// Bind classifies args against the options and positional slots of cmd and returns the bindings
// in encounter order. args must already exclude the tokens that selected cmd; see [Parse].
//
// Unknown options and positional tokens beyond the declared slots are dropped silently. The only
// error is a [MissingArgumentError], returned when a non-optional sub-command of cmd has no
// binding keyed by its name.
func Bind(cmd *Command, args []string) ([]Binding, error) {
	return bind(context.Background(), cmd, args)
}

func bind(ctx context.Context, cmd *Command, args []string) ([]Binding, error) {
	logger := loggerFrom(ctx)

	var (
		bindings []Binding
		pending  *Option
		cursor   int
	)
	for _, arg := range args {
		var opt *Option
		switch {
		case strings.HasPrefix(arg, "--"):
			opt = cmd.findOption(strings.TrimPrefix(arg, "--"))
		case strings.HasPrefix(arg, "-"):
			opt = cmd.findShortOption(strings.TrimPrefix(arg, "-"))
		default:
			if pending != nil {
				bindings[len(bindings)-1].Value = arg
				bindings[len(bindings)-1].HasValue = true
				pending = nil
				continue
			}
			if cursor < len(cmd.arguments) {
				bindings = append(bindings, Binding{Key: cmd.arguments[cursor], Value: arg, HasValue: true})
				cursor++
				continue
			}
			logger.DebugContext(ctx, "dropped surplus positional argument",
				slog.String("command", cmd.name),
				slog.String("token", arg),
			)
			continue
		}

		if opt == nil {
			logger.DebugContext(ctx, "dropped unknown option",
				slog.String("command", cmd.name),
				slog.String("token", arg),
				slog.Any("suggestions", suggest.Closest(arg, cmd.optionNames(), 3)),
			)
			continue
		}
		if opt.Flag {
			bindings = append(bindings, Binding{Key: opt.Name, Value: "true", HasValue: true})
			pending = nil
			continue
		}
		bindings = append(bindings, Binding{Key: opt.Name})
		pending = opt
	}

	if err := checkRequired(cmd, bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

// checkRequired verifies that every non-optional sub-command of cmd appears as a binding key.
//
// Note this checks sub-command names against bound keys, not whether positional arguments or
// options were supplied.
func checkRequired(cmd *Command, bindings []Binding) error {
	for _, sub := range cmd.subCommands {
		if sub.optional {
			continue
		}
		found := false
		for _, b := range bindings {
			if b.Key == sub.name {
				found = true
				break
			}
		}
		if !found {
			return &MissingArgumentError{Command: cmd, Name: sub.name}
		}
	}
	return nil
}

// filterArgs drops the tokens used to select the active command: a token is kept when it is
// dash-prefixed or comes after selected, the index of the token that selected the command.
func filterArgs(args []string, selected int) []string {
	var kept []string
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") || i > selected {
			kept = append(kept, arg)
		}
	}
	return kept
}
