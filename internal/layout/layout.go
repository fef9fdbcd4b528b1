// Package layout serializes one routed log event into decorated
// terminal lines: box tokens down the left margin, the level prefix on
// the first line, and origin metadata right-justified on the last.
package layout

import (
	"bytes"
	"strings"

	"github.com/glintlog/glint/internal/ansi"
)

// Box decoration tokens. A one-line unit gets the single token; longer
// units open with start, carry continuation on interior lines, and close
// with end.
const (
	tokenSingle       = "╶"
	tokenStart        = "╭"
	tokenContinuation = "│"
	tokenEnd          = "╰"
)

// suffixGap is the minimum padding between a line's text and its
// right-justified suffix.
const suffixGap = 2

// Line is one row of a rendered unit: indentation in columns plus text
// that may already contain style escape sequences.
type Line struct {
	Indent int
	Text   string
}

// Unit is everything the engine needs to serialize one log event that
// has already been routed past rate limiting and progress handling.
// Justify must be clamped to the terminal width by the caller; zero
// means metadata always drops to its own line.
type Unit struct {
	Lines   []Line
	Prefix  string
	Suffix  string
	Justify int
}

// Decor supplies the styling hooks for the three decorated regions.
// Nil hooks pass text through unchanged, which is also what a styled
// hook degrades to on a non-terminal sink.
type Decor struct {
	Box    func(string) string
	Prefix func(string) string
	Suffix func(string) string
}

func (d Decor) box(s string) string {
	if d.Box == nil {
		return s
	}
	return d.Box(s)
}

func (d Decor) prefix(s string) string {
	if d.Prefix == nil {
		return s
	}
	return d.Prefix(s)
}

func (d Decor) suffix(s string) string {
	if d.Suffix == nil {
		return s
	}
	return d.Suffix(s)
}

// Render serializes a unit into one buffer.
//
// The unpadded width of the unit is the box decoration (2 columns),
// the prefix and its trailing space when the unit is a single line,
// the last line's indent and visible text width, and the suffix plus
// its gap when present. The prefix is drawn on the first line of every
// unit that has one, but only single-line units count it toward
// padding; multi-line units deliberately exclude it so continuation
// alignment stays stable. When the unpadded width overruns the justify
// column the suffix moves to an extra trailing line of its own.
func Render(u Unit, d Decor) []byte {
	lines := u.Lines
	if len(lines) == 0 {
		lines = []Line{{}}
	}

	last := lines[len(lines)-1]
	unpadded := 2
	if len(lines) == 1 && u.Prefix != "" {
		unpadded += len(u.Prefix) + 1
	}
	unpadded += last.Indent + ansi.Width(last.Text)
	gap := suffixGap
	if u.Suffix != "" {
		unpadded += len(u.Suffix) + suffixGap
		if unpadded > u.Justify {
			lines = append(lines, Line{})
			gap = 0
			unpadded = 2 + len(u.Suffix)
		}
	}

	var buf bytes.Buffer
	for i, line := range lines {
		buf.WriteString(d.box(token(i, len(lines))))
		buf.WriteByte(' ')
		if i == 0 && u.Prefix != "" {
			buf.WriteString(d.prefix(u.Prefix))
			buf.WriteByte(' ')
		}
		if line.Indent > 0 {
			buf.WriteString(strings.Repeat(" ", line.Indent))
		}
		buf.WriteString(line.Text)
		if i == len(lines)-1 && u.Suffix != "" {
			pad := u.Justify - unpadded
			if pad < 0 {
				pad = 0
			}
			buf.WriteString(strings.Repeat(" ", pad+gap))
			buf.WriteString(d.suffix(u.Suffix))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func token(i, total int) string {
	switch {
	case total == 1:
		return tokenSingle
	case i == 0:
		return tokenStart
	case i == total-1:
		return tokenEnd
	default:
		return tokenContinuation
	}
}
