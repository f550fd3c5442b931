package cmdtree

import (
	"strings"

	"github.com/mfridman/cmdtree/pkg/textutil"
)

const (
	helpIndent = 4
	helpWidth  = 80
	// minWrapWidth keeps descriptions readable next to very long names.
	minWrapWidth = 20
)

// Version returns the version banner of root: its name, a space and its version.
func Version(root *Command) string {
	if root == nil {
		return ""
	}
	return root.name + " " + root.version
}

// Help renders the help text of c from its definition alone. Sections without content are
// omitted. Column widths are computed from the longest rendered name in each section.
func Help(c *Command) string {
	if c == nil {
		return ""
	}
	indent := strings.Repeat(" ", helpIndent)
	var sections []string

	if c.description != "" {
		sections = append(sections, "DESCRIPTION\n"+indent+c.description)
	}

	usage := "$ " + c.name
	if len(c.subCommands) > 0 {
		if c.action == nil {
			usage += " [COMMAND]"
		} else {
			usage += " COMMAND"
		}
	}
	if len(c.options) > 0 {
		usage += " [OPTIONS]"
	}
	sections = append(sections, "USAGE\n"+indent+usage)

	if len(c.subCommands) > 0 {
		var b strings.Builder
		b.WriteString("COMMANDS\n")
		rows := make([]row, 0, len(c.subCommands))
		for _, sub := range c.subCommands {
			rows = append(rows, row{name: commandName(sub), description: sub.description})
		}
		writeRows(&b, rows, " - ")
		b.WriteString("\n" + indent + `Use "` + c.name + ` COMMAND --help" for more information about a command.`)
		sections = append(sections, b.String())
	}

	if len(c.options) > 0 {
		var b strings.Builder
		b.WriteString("OPTIONS\n")
		rows := make([]row, 0, len(c.options))
		for _, o := range c.options {
			rows = append(rows, row{name: optionName(o), description: o.Description})
		}
		writeRows(&b, rows, "  ")
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	return strings.Join(sections, "\n\n")
}

type row struct {
	name        string
	description string
}

// writeRows writes one line per row with names padded to the longest one. Descriptions that do not
// fit in the remaining width continue on indented lines.
func writeRows(b *strings.Builder, rows []row, sep string) {
	maxLen := 0
	for _, r := range rows {
		maxLen = max(maxLen, len(r.name))
	}
	indent := strings.Repeat(" ", helpIndent)
	hanging := strings.Repeat(" ", helpIndent+maxLen+len(sep))
	wrapWidth := max(helpWidth-len(hanging), minWrapWidth)

	for _, r := range rows {
		lines := textutil.Wrap(r.description, wrapWidth)
		if len(lines) == 0 {
			b.WriteString(indent + r.name + "\n")
			continue
		}
		b.WriteString(indent + textutil.Pad(r.name, maxLen) + sep + lines[0] + "\n")
		for _, line := range lines[1:] {
			b.WriteString(hanging + line + "\n")
		}
	}
}

func commandName(c *Command) string {
	if c.optional {
		return "[" + c.name + "]"
	}
	return c.name
}

func optionName(o Option) string {
	name := "--" + o.Name
	if o.Short != "" {
		name = "-" + o.Short + ", " + name
	}
	if !o.Flag {
		name += " <value>"
	}
	return name
}
