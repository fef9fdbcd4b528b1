package glint

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/glintlog/glint/internal/console"
	"github.com/glintlog/glint/internal/layout"
	"github.com/glintlog/glint/internal/progress"
	"github.com/glintlog/glint/internal/sticky"
	"github.com/glintlog/glint/internal/valuefmt"
)

// valueMargin is subtracted from the terminal width to form the column
// budget for key/value representations.
const valueMargin = 8

// barMargin is subtracted from the terminal width to form the target
// width handed to the bar glyph renderer.
const barMargin = 8

// StickyManager is the redraw-in-place collaborator: a keyed store of
// live lines repainted at the bottom of the terminal. The default
// implementation ships with the logger; replace it to integrate with
// an existing live region.
type StickyManager interface {
	Upsert(id, text string)
	Remove(id string)
}

// BarRenderer draws the textual progress bar for a label and fraction
// at the given target width.
type BarRenderer func(label string, fraction float64, width int) string

// ValueRenderer produces the possibly multi-line representation of an
// arbitrary value within a column and row budget. When limit is set,
// large structures render as a bounded preview.
type ValueRenderer func(value any, width, rows int, limit bool) []string

// Options configures a Logger. The zero value renders to standard
// error with the default theme, no right justification (metadata on
// its own line), value limiting on, and every level emitted.
type Options struct {
	// Output defaults to os.Stderr. When it is a terminal, a sticky
	// manager is attached and permanent lines scroll above the live
	// region.
	Output io.Writer

	// MinLevel gates events; the zero value (LevelProgress) lets
	// everything through.
	MinLevel Level

	// JustifyColumn is the terminal column trailing metadata is
	// right-aligned to. Zero keeps metadata on its own line.
	JustifyColumn int

	// NoValueLimit disables the bounded preview of large structures.
	NoValueLimit bool

	// AddSource captures file:line from the convenience methods'
	// call sites.
	AddSource bool

	Theme     Theme
	Formatter Formatter

	// Collaborator overrides; nil picks the built-in implementations.
	Sticky StickyManager
	Bar    BarRenderer
	Values ValueRenderer
}

// Logger renders structured events into terminal output. One logical
// writer: a mutex serializes event handling so per-id tables stay
// consistent and two events' lines never interleave.
type Logger struct {
	mu          sync.Mutex
	stream      *console.Stream
	minLevel    Level
	justify     int
	limitValues bool
	addSource   bool
	format      Formatter
	values      ValueRenderer
	sticky      StickyManager
	bars        *progress.Tracker
	limits      map[string]int
}

// New builds a Logger from opts.
func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	theme := opts.Theme
	if theme.isZero() {
		theme = DefaultTheme()
	}

	var terminal *os.File
	if f, ok := out.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			terminal = f
		}
	}

	stickyMgr := opts.Sticky
	permanent := out
	if stickyMgr == nil && terminal != nil {
		manager := sticky.NewManager(out)
		stickyMgr = manager
		permanent = manager.Bypass()
	}

	format := opts.Formatter
	if format == nil {
		format = theme.Formatter()
	}
	values := opts.Values
	if values == nil {
		values = valuefmt.Render
	}

	return &Logger{
		stream:      console.NewStream(permanent, terminal, lipgloss.Color(theme.Muted)),
		minLevel:    opts.MinLevel,
		justify:     opts.JustifyColumn,
		limitValues: !opts.NoValueLimit,
		addSource:   opts.AddSource,
		format:      format,
		values:      values,
		sticky:      stickyMgr,
		bars:        progress.New(progress.RenderFunc(opts.Bar)),
		limits:      make(map[string]int),
	}
}

// MinLevel reports the minimum emitted level.
func (l *Logger) MinLevel() Level {
	return l.minLevel
}

// Enabled reports whether events at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minLevel
}

// ShouldEmit reports whether events with the given id are still inside
// their repeat ceiling. It never consumes an emission; ids without a
// ceiling always pass.
func (l *Logger) ShouldEmit(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	remaining, ok := l.limits[id]
	return !ok || remaining > 0
}

// Log handles one event: rate limit first, then the progress or line
// layout branch. Suppressed events have no observable side effects.
func (l *Logger) Log(ev Event) error {
	if ev.Level < l.minLevel {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.allow(ev.ID, ev.Limit) {
		return nil
	}
	if ev.Progress != nil {
		return l.logProgress(ev)
	}
	return l.logLine(ev)
}

// allow implements the per-id repeat ceiling. An existing entry is
// decremented on every event with that id; a new entry is only created
// when the event carries a ceiling.
func (l *Logger) allow(id string, ceiling int) bool {
	if remaining, ok := l.limits[id]; ok {
		l.limits[id] = remaining - 1
		return remaining > 0
	}
	if ceiling <= 0 {
		return true
	}
	l.limits[id] = ceiling - 1
	return true
}

func (l *Logger) logProgress(ev Event) error {
	fraction := *ev.Progress
	if math.IsNaN(fraction) {
		fraction = 0
	}
	label := progressLabel(ev.Message)
	_, cols := l.stream.Size()
	width := cols - barMargin

	if fraction >= 1 {
		if !l.bars.Active(ev.ID) {
			return nil
		}
		// Cleanup is unconditional on the finishing path: the bar and
		// its sticky slot must not outlive a failed final render.
		defer func() {
			if l.sticky != nil {
				l.sticky.Remove(ev.ID)
			}
			l.bars.Drop(ev.ID)
		}()
		text, _ := l.bars.Finish(ev.ID, label, width)
		return l.stream.Write([]byte(text + "\n"))
	}

	text := l.bars.Update(ev.ID, label, fraction, width)
	if l.sticky != nil {
		l.sticky.Upsert(ev.ID, text)
	}
	return nil
}

func (l *Logger) logLine(ev Event) error {
	rows, cols := l.stream.Size()

	lines := make([]layout.Line, 0, 1+len(ev.Fields))
	for _, part := range strings.Split(valuefmt.Text(ev.Message), "\n") {
		lines = append(lines, layout.Line{Text: part})
	}

	if len(ev.Fields) > 0 {
		width := cols - valueMargin
		rowBudget := rows / (len(ev.Fields) + 1)
		if rowBudget < 1 {
			rowBudget = 1
		}
		for _, field := range ev.Fields {
			rendered := l.values(field.Value, width, rowBudget, l.limitValues)
			if len(rendered) == 0 {
				rendered = []string{""}
			}
			if len(rendered) == 1 {
				lines = append(lines, layout.Line{Indent: 2, Text: field.Key + " = " + rendered[0]})
				continue
			}
			lines = append(lines, layout.Line{Indent: 2, Text: field.Key + " ="})
			for _, value := range rendered {
				lines = append(lines, layout.Line{Indent: 3, Text: value})
			}
		}
	}

	color, prefix, suffix := l.format(ev)
	justify := l.justify
	if justify > cols {
		justify = cols
	}
	buf := layout.Render(layout.Unit{
		Lines:   lines,
		Prefix:  prefix,
		Suffix:  suffix,
		Justify: justify,
	}, l.stream.Decor(color))

	if ev.Sticky != StickyOff && l.sticky != nil {
		l.sticky.Upsert(ev.ID, string(buf))
		if ev.Sticky == StickyFinal {
			l.sticky.Remove(ev.ID)
		}
		return nil
	}
	return l.stream.Write(buf)
}

// progressLabel coerces the event message into the bar label: empty
// messages read "Progress: ", anything else ends with a single space.
func progressLabel(message any) string {
	text := strings.TrimRight(valuefmt.Text(message), " ")
	if text == "" {
		return "Progress: "
	}
	return text + " "
}

// Convenience entry points. They build an Event and hand it to Log;
// with AddSource set they record the caller's file and line.

func (l *Logger) Debug(msg string, fields ...Field) error {
	return l.emit(LevelDebug, msg, fields)
}

func (l *Logger) Info(msg string, fields ...Field) error {
	return l.emit(LevelInfo, msg, fields)
}

func (l *Logger) Warn(msg string, fields ...Field) error {
	return l.emit(LevelWarn, msg, fields)
}

func (l *Logger) Error(msg string, fields ...Field) error {
	return l.emit(LevelError, msg, fields)
}

// Progress updates the live bar for id at the given fraction.
func (l *Logger) Progress(id, msg string, fraction float64) error {
	return l.Log(Event{Level: LevelProgress, ID: id, Message: msg, Progress: &fraction})
}

// ProgressDone finalizes the bar for id, writing its last frame as a
// permanent line.
func (l *Logger) ProgressDone(id, msg string) error {
	return l.Log(Event{Level: LevelProgress, ID: id, Message: msg, Progress: Finished})
}

// Status installs or replaces the sticky line for id.
func (l *Logger) Status(id, msg string, fields ...Field) error {
	return l.Log(Event{Level: LevelInfo, ID: id, Message: msg, Fields: fields, Sticky: StickyUpdate})
}

// StatusDone renders the final frame for id's sticky line and releases
// the slot.
func (l *Logger) StatusDone(id, msg string, fields ...Field) error {
	return l.Log(Event{Level: LevelInfo, ID: id, Message: msg, Fields: fields, Sticky: StickyFinal})
}

func (l *Logger) emit(level Level, msg string, fields []Field) error {
	ev := Event{Level: level, Message: msg, Fields: fields}
	if l.addSource {
		if _, file, line, ok := runtime.Caller(2); ok {
			ev.File = filepath.Base(file)
			ev.Line = line
		}
	}
	return l.Log(ev)
}
