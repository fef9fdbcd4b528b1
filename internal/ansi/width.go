// Package ansi measures on-screen text width in the presence of
// terminal escape sequences.
package ansi

// escape marks the start of a terminal escape sequence.
const escape = '\x1b'

// Width returns the on-screen width of s. Characters inside escape
// sequences do not count: a sequence starts at the escape marker and
// ends at the first 'm', so color and emphasis codes are invisible to
// layout math. Every other character counts as one column; there is no
// wide-rune or grapheme handling here on purpose, the renderer only
// ever measures text it produced itself.
//
// An unterminated sequence swallows the rest of the string. That is
// not an error, the remainder simply contributes zero width.
func Width(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == escape {
			inEscape = true
			continue
		}
		width++
	}
	return width
}
