// Package sticky keeps a set of keyed status lines redrawn in place at
// the bottom of the terminal. Permanent output is routed through the
// manager's bypass writer so it scrolls above the live region instead
// of fighting it for cursor position.
package sticky

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/gosuri/uilive"
)

// Manager is a keyed store of live lines. Upsert and Remove repaint
// the whole region; insertion order is stable so bars do not jump
// around between repaints.
type Manager struct {
	mu      sync.Mutex
	writer  *uilive.Writer
	order   []string
	entries map[string]string
}

func NewManager(out io.Writer) *Manager {
	w := uilive.New()
	w.Out = out
	return &Manager{writer: w, entries: make(map[string]string)}
}

// Bypass returns the writer permanent log lines should go through.
// uilive clears the live region, writes the bypassed bytes, and
// repaints the region below them.
func (m *Manager) Bypass() io.Writer {
	return m.writer.Bypass()
}

// Upsert installs or replaces the live text for id and repaints.
func (m *Manager) Upsert(id, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		m.order = append(m.order, id)
	}
	m.entries[id] = text
	m.repaint()
}

// Remove deletes the live text for id and repaints.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return
	}
	delete(m.entries, id)
	for i, key := range m.order {
		if key == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.repaint()
}

// Len reports how many live entries are installed.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Manager) repaint() {
	var buf bytes.Buffer
	for _, id := range m.order {
		text := m.entries[id]
		buf.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			buf.WriteByte('\n')
		}
	}
	m.writer.Write(buf.Bytes()) //nolint:errcheck // in-memory buffer
	m.writer.Flush()            //nolint:errcheck // best effort repaint
}
