package glint

import "math"

// Field is one ordered key/value pair attached to an event.
type Field struct {
	Key   string
	Value any
}

// F builds a field. Values may be anything; errors render with their
// cause chain, everything else through its string form.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// StickyMode controls whether a rendered unit scrolls into permanent
// history or stays pinned at the bottom of the terminal.
type StickyMode int

const (
	// StickyOff writes the unit to permanent output.
	StickyOff StickyMode = iota
	// StickyUpdate installs or replaces the live slot for the event id.
	StickyUpdate
	// StickyFinal replaces the live slot and removes it immediately, so
	// the rendered frame is the last one seen before the slot vanishes.
	StickyFinal
)

// Event is one structured log event. The id correlates repeated
// emissions from the same call site: it keys rate limiting, progress
// bar lifecycle, and sticky slots, so the same id maps to at most one
// live bar and one sticky slot at a time.
type Event struct {
	Level   Level
	Message any // text, possibly multi-line; non-strings are coerced

	Scope string // origin module or subsystem
	Group string
	ID    string

	File    string
	Line    int
	EndLine int // when > Line the location renders as file:first-last

	Fields []Field

	// Limit is the repeat ceiling for this id; zero means unlimited.
	// Once the ceiling is consumed, further events with the id are
	// suppressed with no side effects for the logger's lifetime.
	Limit int

	// Progress routes the event to the bar lifecycle instead of line
	// layout: a fraction in [0,1) updates the live bar, any value >= 1
	// (or the Finished sentinel) finalizes it. Nil means not a
	// progress event.
	Progress *float64

	Sticky StickyMode
}

// Fraction is a convenience for Event.Progress literals.
func Fraction(f float64) *float64 {
	return &f
}

// Finished is the sentinel progress value that completes a bar.
var Finished = Fraction(math.Inf(1))
