package cmdtree

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mfridman/cmdtree/pkg/suggest"
)

// Resolve returns the command selected by args, which should not include the program name.
//
// Plain tokens are matched left to right against the direct children of the currently selected
// command, by name or alias. A match descends into that child; a token that matches nothing is
// skipped. Dash-prefixed tokens are never treated as command names. If nothing matches, root is
// returned.
func Resolve(root *Command, args []string) *Command {
	cmd, _ := resolve(context.Background(), root, args)
	return cmd
}

// resolve also returns the index of the token that selected the returned command, or -1 when
// the root was never left.
func resolve(ctx context.Context, root *Command, args []string) (*Command, int) {
	logger := loggerFrom(ctx)

	current, index := root, -1
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		sub := current.findSubCommand(arg)
		if sub == nil {
			if len(current.subCommands) > 0 {
				logger.DebugContext(ctx, "token did not match a sub-command",
					slog.String("command", current.name),
					slog.String("token", arg),
					slog.Any("suggestions", suggest.Closest(arg, current.subCommandNames(), 3)),
				)
			}
			continue
		}
		current, index = sub, i
	}
	return current, index
}
