package glint

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Formatter derives the display metadata for one event: the tone
// color, the level prefix shown beside the box decoration, and the
// right-justified origin suffix. Callers may supply their own; the
// default policy comes from Theme.Formatter.
type Formatter func(ev Event) (color lipgloss.TerminalColor, prefix, suffix string)

// Formatter returns the default metadata policy for this theme:
// a four-way color split by level, "<Label>:" as prefix, and an
// "@ scope file:line" suffix for everything except routine Info
// messages, which stay unadorned.
func (t Theme) Formatter() Formatter {
	debug := lipgloss.Color(t.Debug)
	info := lipgloss.Color(t.Info)
	warn := lipgloss.Color(t.Warn)
	errc := lipgloss.Color(t.Error)
	return func(ev Event) (lipgloss.TerminalColor, string, string) {
		var color lipgloss.TerminalColor
		switch {
		case ev.Level < LevelInfo:
			color = debug
		case ev.Level < LevelWarn:
			color = info
		case ev.Level < LevelError:
			color = warn
		default:
			color = errc
		}
		prefix := ev.Level.Label() + ":"
		var suffix string
		if ev.Level < LevelInfo || ev.Level >= LevelWarn {
			suffix = Location(ev.Scope, ev.File, ev.Line, ev.EndLine)
		}
		return color, prefix, suffix
	}
}

// Location builds the origin suffix from whichever parts are present:
// scope and file joined by a space, then ":line" or ":first-last" for
// a line range. A non-empty result carries the "@ " marker; with no
// parts at all the suffix stays empty.
func Location(scope, file string, line, endLine int) string {
	var b strings.Builder
	if scope != "" {
		b.WriteString(scope)
	}
	if file != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(file)
	}
	if line > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(line))
		if endLine > line {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(endLine))
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "@ " + b.String()
}
