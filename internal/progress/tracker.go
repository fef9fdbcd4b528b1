// Package progress owns the per-id lifecycle of live progress bars: a
// bar is created on the first fractional update for an id, redrawn in
// place on later updates, and finalized exactly once when the id
// reports completion.
package progress

import (
	"time"
)

// RenderFunc draws the textual bar for a label and fraction at the
// given width. The default implementation lives in glyphs.go; tests
// and embedders may substitute their own.
type RenderFunc func(label string, fraction float64, width int) string

type bar struct {
	fraction float64
	started  time.Time
}

// Tracker maps progress ids to their live bar state. It is not
// goroutine safe; the owning logger serializes access.
type Tracker struct {
	render RenderFunc
	bars   map[string]*bar
}

func New(render RenderFunc) *Tracker {
	if render == nil {
		render = Glyphs()
	}
	return &Tracker{render: render, bars: make(map[string]*bar)}
}

// Active reports whether id has a live bar.
func (t *Tracker) Active(id string) bool {
	_, ok := t.bars[id]
	return ok
}

// Update creates the bar for id if needed, records the fraction, and
// returns the rendered bar text for the sticky slot.
func (t *Tracker) Update(id, label string, fraction float64, width int) string {
	b, ok := t.bars[id]
	if !ok {
		b = &bar{started: time.Now()}
		t.bars[id] = b
	}
	if fraction < 0 {
		fraction = 0
	}
	b.fraction = fraction
	return t.render(label, fraction, width)
}

// Finish renders the bar for id at completion and reports whether a
// bar existed. It does not delete the state; the caller drops it after
// the final line is written so cleanup stays unconditional on that
// path.
func (t *Tracker) Finish(id, label string, width int) (string, bool) {
	if _, ok := t.bars[id]; !ok {
		return "", false
	}
	return t.render(label, 1.0, width), true
}

// Drop removes the tracked state for id.
func (t *Tracker) Drop(id string) {
	delete(t.bars, id)
}

// Len reports how many bars are live.
func (t *Tracker) Len() int {
	return len(t.bars)
}
