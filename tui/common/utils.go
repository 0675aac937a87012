package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Paragraphs renders transcript entries as wrapped paragraphs separated by a
// blank line. A width below one leaves lines unwrapped.
func Paragraphs(entries []string, width int) string {
	out := make([]string, len(entries))
	for i, e := range entries {
		if width > 0 {
			e = ansi.Wrap(e, width, "")
		}
		out[i] = e
	}
	return strings.Join(out, "\n\n")
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ")

// SingleLine flattens s onto one line and truncates it to width cells.
func SingleLine(s string, width int) string {
	s = lineBreaks.Replace(s)
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
