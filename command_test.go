package cmdtree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBuilder(t *testing.T) {
	t.Parallel()

	t.Run("fields", func(t *testing.T) {
		t.Parallel()
		sub := NewCommand("sub").Build()
		cmd := NewCommand("root").
			Alias("r").
			Alias("rt").
			Description("the root").
			Version("1.0.0").
			Optional(true).
			Argument("first").
			Argument("second").
			Option(Option{Name: "out", Short: "o", Description: "output"}).
			Flag("force", "f", "force it").
			SubCommand(sub).
			SubCommand(nil).
			Build()

		assert.Equal(t, "root", cmd.Name())
		assert.Equal(t, []string{"r", "rt"}, cmd.Aliases())
		assert.Equal(t, "the root", cmd.Description())
		assert.Equal(t, "1.0.0", cmd.Version())
		assert.True(t, cmd.Optional())
		assert.Equal(t, []string{"first", "second"}, cmd.Arguments())
		assert.Equal(t, []Option{
			{Name: "out", Short: "o", Description: "output"},
			{Name: "force", Short: "f", Flag: true, Description: "force it"},
		}, cmd.Options())
		require.Len(t, cmd.SubCommands(), 1)
		assert.Same(t, sub, cmd.SubCommands()[0])
		assert.False(t, cmd.HasAction())
	})
	t.Run("zero value defaults", func(t *testing.T) {
		t.Parallel()
		cmd := NewCommand("bare").Build()
		assert.Empty(t, cmd.Aliases())
		assert.Empty(t, cmd.Description())
		assert.Empty(t, cmd.Version())
		assert.False(t, cmd.Optional())
		assert.Empty(t, cmd.Arguments())
		assert.Empty(t, cmd.Options())
		assert.Empty(t, cmd.SubCommands())
	})
	t.Run("build never fails on duplicates", func(t *testing.T) {
		t.Parallel()
		cmd := NewCommand("dup").
			Option(Option{Name: "x"}).
			Option(Option{Name: "x", Flag: true}).
			SubCommand(NewCommand("a").Build()).
			SubCommand(NewCommand("a").Build()).
			Build()
		assert.Len(t, cmd.Options(), 2)
		assert.Len(t, cmd.SubCommands(), 2)
	})
	t.Run("built commands are isolated from the builder", func(t *testing.T) {
		t.Parallel()
		b := NewCommand("cmd").Argument("first")
		first := b.Build()
		b.Argument("second").Alias("c")
		second := b.Build()

		assert.Equal(t, []string{"first"}, first.Arguments())
		assert.Empty(t, first.Aliases())
		assert.Equal(t, []string{"first", "second"}, second.Arguments())
	})
	t.Run("accessors return copies", func(t *testing.T) {
		t.Parallel()
		cmd := NewCommand("cmd").Argument("first").Option(Option{Name: "out"}).Build()

		args := cmd.Arguments()
		args[0] = "changed"
		opts := cmd.Options()
		opts[0].Name = "changed"

		assert.Equal(t, []string{"first"}, cmd.Arguments())
		assert.Equal(t, "out", cmd.Options()[0].Name)
	})
	t.Run("action", func(t *testing.T) {
		t.Parallel()
		var called bool
		cmd := NewCommand("cmd").
			ActionFunc(func(context.Context, *State) error {
				called = true
				return nil
			}).
			Build()
		require.True(t, cmd.HasAction())
		require.NoError(t, cmd.action.Run(context.Background(), &State{}))
		assert.True(t, called)

		cleared := NewCommand("cmd").ActionFunc(nil).Build()
		assert.False(t, cleared.HasAction())
	})
	t.Run("action interface", func(t *testing.T) {
		t.Parallel()
		counter := &countingAction{}
		cmd := NewCommand("count").Action(counter).Build()

		err := ParseAndRun(context.Background(), cmd, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, counter.n)
	})
}

// countingAction is an Action that keeps state between runs.
type countingAction struct {
	n int
}

func (c *countingAction) Run(context.Context, *State) error {
	c.n++
	return nil
}
