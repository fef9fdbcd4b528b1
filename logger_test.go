package glint

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

type fakeSticky struct {
	upserts []string
	removes []string
	entries map[string]string
}

func newFakeSticky() *fakeSticky {
	return &fakeSticky{entries: make(map[string]string)}
}

func (f *fakeSticky) Upsert(id, text string) {
	f.upserts = append(f.upserts, id)
	f.entries[id] = text
}

func (f *fakeSticky) Remove(id string) {
	f.removes = append(f.removes, id)
	delete(f.entries, id)
}

func fakeBar(label string, fraction float64, width int) string {
	return fmt.Sprintf("%s<%.2f>", label, fraction)
}

func newTestLogger(out *bytes.Buffer, opts Options) *Logger {
	opts.Output = out
	if opts.Bar == nil {
		opts.Bar = fakeBar
	}
	return New(opts)
}

func TestMinLevelGates(t *testing.T) {
	var out bytes.Buffer
	log := newTestLogger(&out, Options{MinLevel: LevelWarn})

	if err := log.Info("hidden"); err != nil {
		t.Fatalf("Info: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("info below min level wrote output: %q", out.String())
	}
	if err := log.Warn("shown"); err != nil {
		t.Fatalf("Warn: %v", err)
	}
	if !strings.Contains(out.String(), "shown") {
		t.Fatalf("warn output missing: %q", out.String())
	}
	if !log.Enabled(LevelError) || log.Enabled(LevelInfo) {
		t.Fatal("Enabled disagrees with MinLevel")
	}
}

func TestRepeatCeiling(t *testing.T) {
	var out bytes.Buffer
	log := newTestLogger(&out, Options{})

	for i := 0; i < 5; i++ {
		if err := log.Log(Event{Level: LevelInfo, ID: "noisy", Message: "again", Limit: 3}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}
	if got := strings.Count(out.String(), "again"); got != 3 {
		t.Fatalf("ceiling 3 allowed %d emissions", got)
	}
	if log.ShouldEmit("noisy") {
		t.Fatal("exhausted id must report not emittable")
	}
	if !log.ShouldEmit("fresh") {
		t.Fatal("unknown id must be emittable")
	}
}

func TestRepeatCeilingPerID(t *testing.T) {
	var out bytes.Buffer
	log := newTestLogger(&out, Options{})

	// Interleave two limited ids with an unlimited one.
	for i := 0; i < 4; i++ {
		log.Log(Event{Level: LevelInfo, ID: "a", Message: "msg-a", Limit: 2})
		log.Log(Event{Level: LevelInfo, ID: "b", Message: "msg-b", Limit: 3})
		log.Log(Event{Level: LevelInfo, Message: "msg-free"})
	}
	got := out.String()
	if n := strings.Count(got, "msg-a"); n != 2 {
		t.Fatalf("id a emitted %d times, want 2", n)
	}
	if n := strings.Count(got, "msg-b"); n != 3 {
		t.Fatalf("id b emitted %d times, want 3", n)
	}
	if n := strings.Count(got, "msg-free"); n != 4 {
		t.Fatalf("unlimited id emitted %d times, want 4", n)
	}
}

func TestSuppressedProgressHasNoSideEffects(t *testing.T) {
	var out bytes.Buffer
	st := newFakeSticky()
	log := newTestLogger(&out, Options{Sticky: st})

	log.Log(Event{ID: "p", Message: "work", Progress: Fraction(0.1), Limit: 1})
	log.Log(Event{ID: "p", Message: "work", Progress: Fraction(0.2), Limit: 1})
	if len(st.upserts) != 1 {
		t.Fatalf("suppressed progress event mutated sticky state: %d upserts", len(st.upserts))
	}
}

func TestProgressLifecycle(t *testing.T) {
	var out bytes.Buffer
	st := newFakeSticky()
	log := newTestLogger(&out, Options{Sticky: st})

	log.Progress("copy", "Copying", 0.0)
	log.Progress("copy", "Copying", 0.5)
	if len(st.upserts) != 2 {
		t.Fatalf("expected one upsert per update, got %d", len(st.upserts))
	}
	if out.Len() != 0 {
		t.Fatalf("intermediate updates must not write permanent output: %q", out.String())
	}
	if !strings.Contains(st.entries["copy"], "<0.50>") {
		t.Fatalf("sticky slot not updated: %q", st.entries["copy"])
	}

	log.ProgressDone("copy", "Copying")
	if len(st.removes) != 1 {
		t.Fatalf("finish must remove the sticky slot once, got %d", len(st.removes))
	}
	if got := out.String(); !strings.Contains(got, "Copying <1.00>") {
		t.Fatalf("final frame missing from permanent output: %q", got)
	}
	if n := strings.Count(out.String(), "\n"); n != 1 {
		t.Fatalf("finish must write exactly one permanent line, got %d", n)
	}

	// A second finish has nothing to act on.
	log.ProgressDone("copy", "Copying")
	if len(st.removes) != 1 || strings.Count(out.String(), "\n") != 1 {
		t.Fatal("finishing an absent bar must be a no-op")
	}
}

func TestFinishWithoutCreationIsNoop(t *testing.T) {
	var out bytes.Buffer
	st := newFakeSticky()
	log := newTestLogger(&out, Options{Sticky: st})

	log.ProgressDone("ghost", "Never started")
	if out.Len() != 0 || len(st.upserts) != 0 || len(st.removes) != 0 {
		t.Fatalf("expected zero side effects: out=%q upserts=%d removes=%d",
			out.String(), len(st.upserts), len(st.removes))
	}
}

func TestProgressEmptyMessageLabel(t *testing.T) {
	var out bytes.Buffer
	st := newFakeSticky()
	log := newTestLogger(&out, Options{Sticky: st})

	log.Progress("p", "", 0.25)
	if !strings.HasPrefix(st.entries["p"], "Progress: ") {
		t.Fatalf("empty message must label the bar Progress: %q", st.entries["p"])
	}

	log.Progress("q", "Encoding   ", 0.25)
	if !strings.HasPrefix(st.entries["q"], "Encoding <") {
		t.Fatalf("label must end with a single space: %q", st.entries["q"])
	}
}

func TestStickyReplaceAndFinalize(t *testing.T) {
	var out bytes.Buffer
	st := newFakeSticky()
	log := newTestLogger(&out, Options{Sticky: st})

	log.Status("job", "starting")
	log.Status("job", "halfway")
	if len(st.entries) != 1 {
		t.Fatalf("same id must replace its slot, have %d", len(st.entries))
	}
	if !strings.Contains(st.entries["job"], "halfway") {
		t.Fatalf("slot not replaced: %q", st.entries["job"])
	}
	if out.Len() != 0 {
		t.Fatalf("sticky updates must not reach permanent output: %q", out.String())
	}

	log.StatusDone("job", "done")
	if len(st.removes) != 1 {
		t.Fatalf("finalize must remove the slot, removes=%d", len(st.removes))
	}
	// The final frame was installed before removal.
	if last := st.upserts[len(st.upserts)-1]; last != "job" {
		t.Fatalf("final frame not installed before removal: %v", st.upserts)
	}
}

func TestStickyWithoutManagerWritesPermanently(t *testing.T) {
	var out bytes.Buffer
	log := newTestLogger(&out, Options{})

	log.Status("job", "no live region here")
	if !strings.Contains(out.String(), "no live region here") {
		t.Fatalf("sticky event on non-terminal sink must scroll: %q", out.String())
	}
}

func TestJustifyZeroSuffixOnOwnLine(t *testing.T) {
	var out bytes.Buffer
	log := newTestLogger(&out, Options{})

	log.Log(Event{Level: LevelError, Message: "boom", Scope: "core", File: "a.go", Line: 3})
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected suffix on its own line, got %q", out.String())
	}
	if lines[1] != "╰ @ core a.go:3" {
		t.Fatalf("suffix line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[0], "╭ Error: boom") {
		t.Fatalf("first line = %q", lines[0])
	}
}

func TestJustifiedSingleLine(t *testing.T) {
	var out bytes.Buffer
	log := newTestLogger(&out, Options{JustifyColumn: 40})

	log.Log(Event{Level: LevelError, Message: "boom", File: "a.go", Line: 3})
	got := strings.TrimSuffix(out.String(), "\n")
	if strings.Count(got, "\n") != 0 {
		t.Fatalf("expected a single line, got %q", got)
	}
	if !strings.HasPrefix(got, "╶ Error: boom") || !strings.HasSuffix(got, "@ a.go:3") {
		t.Fatalf("line = %q", got)
	}
	// 2 box + 7 prefix (len+space) + 4 text + 10 suffix+gap = 23; the
	// line must end exactly at column 40.
	if w := len([]rune(got)); w != 40 {
		t.Fatalf("line width = %d, want 40", w)
	}
}

func TestFieldExpansion(t *testing.T) {
	var out bytes.Buffer
	log := newTestLogger(&out, Options{})

	log.Info("report",
		F("count", 7),
		F("dump", "first\nsecond"),
	)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	want := []string{
		"╭ Info: report",
		"│   count = 7",
		"│   dump =",
		"│    first",
		"╰    second",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestMultiLineMessage(t *testing.T) {
	var out bytes.Buffer
	log := newTestLogger(&out, Options{})

	log.Info("first\nsecond")
	got := out.String()
	if !strings.HasPrefix(got, "╭ Info: first\n╰ second\n") {
		t.Fatalf("multi-line message = %q", got)
	}
}

func TestDefaultFormatter(t *testing.T) {
	format := DefaultTheme().Formatter()
	cases := []struct {
		name       string
		ev         Event
		wantPrefix string
		wantSuffix string
	}{
		{"info_no_suffix", Event{Level: LevelInfo, Scope: "core", File: "a.go", Line: 1}, "Info:", ""},
		{"warn_is_warning", Event{Level: LevelWarn, File: "a.go", Line: 2}, "Warning:", "@ a.go:2"},
		{"error_scope_and_range", Event{Level: LevelError, Scope: "net", File: "d.go", Line: 4, EndLine: 9}, "Error:", "@ net d.go:4-9"},
		{"debug_scope_only", Event{Level: LevelDebug, Scope: "engine"}, "Debug:", "@ engine"},
		{"progress_plain", Event{Level: LevelProgress}, "Progress:", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, prefix, suffix := format(tc.ev)
			if prefix != tc.wantPrefix {
				t.Fatalf("prefix = %q, want %q", prefix, tc.wantPrefix)
			}
			if suffix != tc.wantSuffix {
				t.Fatalf("suffix = %q, want %q", suffix, tc.wantSuffix)
			}
		})
	}
}

func TestFormatterColorsSplitByLevel(t *testing.T) {
	format := DefaultTheme().Formatter()
	colorOf := func(level Level) string {
		c, _, _ := format(Event{Level: level})
		return fmt.Sprint(c)
	}
	if colorOf(LevelProgress) != colorOf(LevelDebug) {
		t.Fatal("progress and debug should share a tone")
	}
	tones := map[string]bool{
		colorOf(LevelDebug): true,
		colorOf(LevelInfo):  true,
		colorOf(LevelWarn):  true,
		colorOf(LevelError): true,
	}
	if len(tones) != 4 {
		t.Fatalf("expected 4 distinct tones, got %d", len(tones))
	}
}

func TestLocation(t *testing.T) {
	cases := []struct {
		name          string
		scope, file   string
		line, endLine int
		want          string
	}{
		{"empty", "", "", 0, 0, ""},
		{"scope_only", "core", "", 0, 0, "@ core"},
		{"file_only", "", "m.go", 0, 0, "@ m.go"},
		{"file_line", "", "m.go", 12, 0, "@ m.go:12"},
		{"scope_file_line", "core", "m.go", 12, 0, "@ core m.go:12"},
		{"range", "", "m.go", 3, 8, "@ m.go:3-8"},
		{"degenerate_range", "", "m.go", 3, 3, "@ m.go:3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Location(tc.scope, tc.file, tc.line, tc.endLine); got != tc.want {
				t.Fatalf("Location = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"progress": LevelProgress,
		"debug":    LevelDebug,
		"":         LevelInfo,
		"Info":     LevelInfo,
		"warning":  LevelWarn,
		"ERROR":    LevelError,
		"bogus":    LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
