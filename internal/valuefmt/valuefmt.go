// Package valuefmt turns arbitrary key/value payloads into display text.
//
// Values arrive untyped from logging call sites. The renderer recognizes
// two shapes: error values, which expand into their unwrap chain, and
// everything else, which renders through its string form. Output is
// constrained to a width and row budget so one oversized value cannot
// take over the terminal, and an optional limiting mode elides the tail
// of large collections.
package valuefmt

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// limitElements caps how many collection elements render when limiting
// is enabled.
const limitElements = 8

// Text coerces a value to its plain single-string form with no budget
// applied. Used for message bodies, which have their own line handling.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Render produces the multi-line representation of a value within the
// given column and row budgets. The result always has at least one
// line. Errors additionally render their cause chain, one "caused by"
// line per wrapped error.
func Render(v any, width, rows int, limit bool) []string {
	var raw []string
	if err, ok := v.(error); ok && err != nil {
		raw = renderError(err)
	} else {
		raw = strings.Split(renderPlain(v, limit), "\n")
	}

	if width < 1 {
		width = 1
	}
	wrapped := make([]string, 0, len(raw))
	for _, line := range raw {
		wrapped = append(wrapped, wrap(line, width)...)
	}
	return clampRows(wrapped, rows)
}

func renderError(err error) []string {
	lines := strings.Split(err.Error(), "\n")
	seen := err.Error()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		msg := cause.Error()
		if msg == "" || msg == seen {
			break
		}
		// fmt.Errorf wrapping repeats the cause inside the outer
		// message; only show the chain when it adds information.
		if strings.HasSuffix(seen, msg) {
			seen = msg
			continue
		}
		seen = msg
		lines = append(lines, "caused by: "+msg)
	}
	return lines
}

func renderPlain(v any, limit bool) string {
	if v == nil {
		return ""
	}
	if limit {
		if elided, ok := elideCollection(v); ok {
			return elided
		}
	}
	return Text(v)
}

// elideCollection renders large slices, arrays, and maps as a bounded
// preview. Strings and small collections fall through to plain text.
func elideCollection(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() <= limitElements {
			return "", false
		}
		parts := make([]string, 0, limitElements+1)
		for i := 0; i < limitElements; i++ {
			parts = append(parts, fmt.Sprintf("%v", rv.Index(i).Interface()))
		}
		parts = append(parts, "… "+strconv.Itoa(rv.Len()-limitElements)+" more")
		return "[" + strings.Join(parts, " ") + "]", true
	case reflect.Map:
		if rv.Len() <= limitElements {
			return "", false
		}
		keys := rv.MapKeys()
		parts := make([]string, 0, limitElements+1)
		for i := 0; i < limitElements && i < len(keys); i++ {
			parts = append(parts, fmt.Sprintf("%v:%v", keys[i].Interface(), rv.MapIndex(keys[i]).Interface()))
		}
		parts = append(parts, "… "+strconv.Itoa(rv.Len()-limitElements)+" more")
		return "map[" + strings.Join(parts, " ") + "]", true
	default:
		return "", false
	}
}

func wrap(s string, width int) []string {
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}
	var out []string
	for len(runes) > width {
		out = append(out, string(runes[:width]))
		runes = runes[width:]
	}
	return append(out, string(runes))
}

func clampRows(lines []string, rows int) []string {
	if rows < 1 {
		rows = 1
	}
	if len(lines) == 0 {
		return []string{""}
	}
	if len(lines) <= rows {
		return lines
	}
	clamped := make([]string, rows)
	copy(clamped, lines[:rows])
	clamped[rows-1] += " …"
	return clamped
}
