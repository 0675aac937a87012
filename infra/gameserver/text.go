package gameserver

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitizeForTerminal drops escape sequences and control characters that
// would let server text repaint the terminal. Newlines and tabs survive, as
// does everything printable, angle brackets and entities included.
func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0):
			return -1
		}
		return r
	}, s)
}
