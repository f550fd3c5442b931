// Package textutil formats plain text for terminal help output.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most width characters, breaking on whitespace. Runs of
// whitespace collapse to one space. A word longer than width gets a line of its own. Empty text
// returns nil.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() == 0 {
			line.WriteString(word)
			continue
		}
		if utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			continue
		}
		line.WriteByte(' ')
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Pad right-pads s with spaces to width characters. Longer strings are returned unchanged.
func Pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
