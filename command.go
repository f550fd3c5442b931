package cmdtree

import (
	"context"
	"slices"
)

// Action is the capability a command executes once its arguments are bound. Implementations
// typically close over collaborators such as storage or configuration.
type Action interface {
	Run(ctx context.Context, s *State) error
}

// ActionFunc adapts an ordinary function to the [Action] interface.
type ActionFunc func(ctx context.Context, s *State) error

// Run calls f(ctx, s).
func (f ActionFunc) Run(ctx context.Context, s *State) error {
	return f(ctx, s)
}

// Option describes a named argument introduced by a dash prefix.
type Option struct {
	// Name is the long form, matched against "--name". It is also the key under which values are
	// stored in the [ArgumentMap], for both the long and the short form.
	Name string

	// Short is the optional short form, matched against "-short". Empty means no short form.
	Short string

	// Flag marks a presence-only option. A flag binds the value "true" and never consumes the
	// token that follows it. Non-flag options take the next plain token as their value.
	Flag bool

	// Description is shown next to the option in help output.
	Description string
}

// Command is a node in the command tree. Commands are created with [NewCommand] and are
// immutable once built.
type Command struct {
	name        string
	aliases     []string
	description string
	version     string
	optional    bool
	arguments   []string
	options     []Option
	subCommands []*Command
	action      Action
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Aliases returns the alternative names the command can be selected by.
func (c *Command) Aliases() []string { return slices.Clone(c.aliases) }

// Description returns the command description, or an empty string.
func (c *Command) Description() string { return c.description }

// Version returns the version string set on this node. Versions are not inherited.
func (c *Command) Version() string { return c.version }

// Optional reports whether the command is exempt from required sub-command validation.
func (c *Command) Optional() bool { return c.optional }

// Arguments returns the positional slot names in declaration order.
func (c *Command) Arguments() []string { return slices.Clone(c.arguments) }

// Options returns the option definitions in declaration order.
func (c *Command) Options() []Option { return slices.Clone(c.options) }

// SubCommands returns the direct children in declaration order.
func (c *Command) SubCommands() []*Command { return slices.Clone(c.subCommands) }

// HasAction reports whether the command executes something. Commands without an action are
// grouping nodes and fall back to printing help.
func (c *Command) HasAction() bool { return c.action != nil }

// findSubCommand returns the direct child whose name or alias equals name, or nil. Only one
// level is searched, and never c itself.
func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.subCommands {
		if sub.name == name || slices.Contains(sub.aliases, name) {
			return sub
		}
	}
	return nil
}

// findOption returns the first option whose long name equals name.
func (c *Command) findOption(name string) *Option {
	if name == "" {
		return nil
	}
	for i := range c.options {
		if c.options[i].Name == name {
			return &c.options[i]
		}
	}
	return nil
}

// findShortOption returns the first option whose short name equals short.
func (c *Command) findShortOption(short string) *Option {
	if short == "" {
		return nil
	}
	for i := range c.options {
		if c.options[i].Short == short {
			return &c.options[i]
		}
	}
	return nil
}

func (c *Command) subCommandNames() []string {
	var names []string
	for _, sub := range c.subCommands {
		names = append(names, sub.name)
		names = append(names, sub.aliases...)
	}
	return names
}

func (c *Command) optionNames() []string {
	var names []string
	for _, o := range c.options {
		names = append(names, "--"+o.Name)
		if o.Short != "" {
			names = append(names, "-"+o.Short)
		}
	}
	return names
}

// CommandBuilder accumulates the fields of a [Command]. The zero value is not useful; use
// [NewCommand].
type CommandBuilder struct {
	cmd Command
}

// NewCommand starts building a command with the given name.
//
//	add := cmdtree.NewCommand("add").
//	    Description("Create a new note").
//	    Argument("note").
//	    Option(cmdtree.Option{Name: "tag", Short: "t"}).
//	    ActionFunc(run).
//	    Build()
func NewCommand(name string) *CommandBuilder {
	return &CommandBuilder{cmd: Command{name: name}}
}

// Alias adds an alternative name.
func (b *CommandBuilder) Alias(alias string) *CommandBuilder {
	b.cmd.aliases = append(b.cmd.aliases, alias)
	return b
}

// Description sets the text shown in help output.
func (b *CommandBuilder) Description(description string) *CommandBuilder {
	b.cmd.description = description
	return b
}

// Version sets the version string, usually only on the root command.
func (b *CommandBuilder) Version(version string) *CommandBuilder {
	b.cmd.version = version
	return b
}

// Optional marks the command as not required when listed under its parent.
func (b *CommandBuilder) Optional(optional bool) *CommandBuilder {
	b.cmd.optional = optional
	return b
}

// Argument appends a positional slot.
func (b *CommandBuilder) Argument(name string) *CommandBuilder {
	b.cmd.arguments = append(b.cmd.arguments, name)
	return b
}

// Option appends an option definition.
func (b *CommandBuilder) Option(o Option) *CommandBuilder {
	b.cmd.options = append(b.cmd.options, o)
	return b
}

// Flag appends a presence-only option.
func (b *CommandBuilder) Flag(name, short, description string) *CommandBuilder {
	return b.Option(Option{Name: name, Short: short, Flag: true, Description: description})
}

// SubCommand appends a child. The child is owned by the command being built and must not be
// added to another parent.
func (b *CommandBuilder) SubCommand(sub *Command) *CommandBuilder {
	if sub != nil {
		b.cmd.subCommands = append(b.cmd.subCommands, sub)
	}
	return b
}

// Action sets what the command executes.
func (b *CommandBuilder) Action(a Action) *CommandBuilder {
	b.cmd.action = a
	return b
}

// ActionFunc is shorthand for Action(ActionFunc(fn)).
func (b *CommandBuilder) ActionFunc(fn func(ctx context.Context, s *State) error) *CommandBuilder {
	if fn == nil {
		b.cmd.action = nil
		return b
	}
	return b.Action(ActionFunc(fn))
}

// Build returns the command. It never fails: malformed trees, such as duplicate option names,
// are not rejected and resolve by first match at parse time.
func (b *CommandBuilder) Build() *Command {
	c := b.cmd
	c.aliases = slices.Clone(c.aliases)
	c.arguments = slices.Clone(c.arguments)
	c.options = slices.Clone(c.options)
	c.subCommands = slices.Clone(c.subCommands)
	return &c
}
