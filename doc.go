// Package glint renders structured log events into human-readable
// terminal output: colorized, box-decorated, multi-line units with
// right-justified origin metadata, plus live-updating progress bars
// and sticky status lines that redraw in place.
//
// # Event flow
//
// Every event passes three stages. The rate limiter consumes the
// per-id repeat ceiling first, so suppressed events have no side
// effects at all. Events carrying a progress fraction then route to
// the bar lifecycle: fractions below one redraw the id's live bar in
// the sticky region, while a finished value renders the bar one last
// time, writes it as a permanent line, and releases the id. Everything
// else goes through the line layout engine, which splits the message,
// expands key/value fields (single-line values inline as "key = value",
// multi-line values get a header and indented body), and serializes
// the unit with box decoration and a right-justified suffix.
//
// # Layout
//
// A one-line unit is decorated with "╶"; longer units open with "╭",
// continue with "│", and close with "╰". The level prefix ("Info:",
// "Warning:", ...) is drawn bold on the first line, and the origin
// suffix ("@ scope file:line") is padded so it ends at the configured
// justify column. Width accounting skips ANSI escape sequences, so
// styled text does not distort alignment. With the default justify
// column of zero the suffix always drops to its own trailing line.
//
// # Collaborators
//
// The sticky manager, progress glyph renderer, and value renderer are
// pluggable. The defaults pin live lines with a uilive writer, draw
// bars with the bubbles progress widget, and render values with width
// and row budgets derived from the terminal geometry. On sinks that
// are not terminals the logger degrades: no live region, sticky events
// become permanent lines, and styling collapses to plain text.
//
//	log := glint.New(glint.Options{})
//	log.Info("queue drained", glint.F("items", 42))
//	log.Progress("copy", "Copying", 0.5)
//	log.ProgressDone("copy", "Copying")
package glint
