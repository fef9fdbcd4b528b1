// Package console wraps the output side of the renderer: a byte sink
// with terminal geometry and a style palette bound to that sink, so
// styling degrades to plain text automatically on non-terminal writers.
package console

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/glintlog/glint/internal/layout"
)

// Fallback geometry for sinks that are not terminals.
const (
	fallbackRows = 24
	fallbackCols = 80
)

// Stream is the permanent output destination. The writer may differ
// from the terminal file when live lines are in play (permanent bytes
// then route through the sticky manager's bypass writer), so geometry
// is probed on the terminal file directly.
type Stream struct {
	w        io.Writer
	terminal *os.File // nil when the sink is not a terminal
	renderer *lipgloss.Renderer
	muted    lipgloss.Style
}

// NewStream builds a stream writing to w. terminal, when non-nil, is
// the underlying TTY used for size queries and color detection. muted
// styles right-justified metadata.
func NewStream(w io.Writer, terminal *os.File, muted lipgloss.TerminalColor) *Stream {
	renderer := lipgloss.NewRenderer(w)
	if terminal != nil {
		renderer = lipgloss.NewRenderer(terminal)
	}
	return &Stream{
		w:        w,
		terminal: terminal,
		renderer: renderer,
		muted:    renderer.NewStyle().Foreground(muted).Faint(true),
	}
}

// Size reports terminal geometry, falling back to 80x24 when the sink
// is not a terminal or the query fails.
func (s *Stream) Size() (rows, cols int) {
	if s.terminal != nil {
		if w, h, err := term.GetSize(int(s.terminal.Fd())); err == nil && w > 0 && h > 0 {
			return h, w
		}
	}
	return fallbackRows, fallbackCols
}

// IsTerminal reports whether the sink is an interactive terminal.
func (s *Stream) IsTerminal() bool {
	return s.terminal != nil
}

// Write sends one serialized unit to the permanent output.
func (s *Stream) Write(p []byte) error {
	_, err := s.w.Write(p)
	return err
}

// Decor builds the layout styling hooks for one event's color: box
// tokens in the event color, the prefix bold in the same color, the
// suffix muted.
func (s *Stream) Decor(color lipgloss.TerminalColor) layout.Decor {
	box := s.renderer.NewStyle().Foreground(color)
	prefix := s.renderer.NewStyle().Foreground(color).Bold(true)
	return layout.Decor{
		Box:    func(t string) string { return box.Render(t) },
		Prefix: func(t string) string { return prefix.Render(t) },
		Suffix: func(t string) string { return s.muted.Render(t) },
	}
}
