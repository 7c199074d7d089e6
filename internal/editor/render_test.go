package editor

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/kobzarvs/led/internal/config"
	"github.com/kobzarvs/led/internal/document"
	"github.com/kobzarvs/led/internal/syntax"
)

type stubHighlighter struct {
	tokens map[int][]syntax.Token
	ok     bool
	calls  int
}

func (h *stubHighlighter) Highlight(doc *document.Document, start, end, cols int) (map[int][]syntax.Token, bool) {
	h.calls++
	return h.tokens, h.ok
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestFrameLayout(t *testing.T) {
	s := newTestSession("int x", "b")
	s.Resize(20, 4)
	frame := string(s.Frame())

	if !strings.HasPrefix(frame, hideCursor+cursorHome) {
		t.Fatalf("frame does not start with hide+home: %q", frame)
	}
	if !strings.HasSuffix(frame, "\x1b[1;1H"+showCursor) {
		t.Fatalf("frame does not end with cursor placement: %q", frame)
	}
	if got := strings.Count(frame, "\r\n"); got != 3 {
		t.Fatalf("row separators = %d, want 3", got)
	}
	if got := strings.Count(frame, clearLine); got != 4 {
		t.Fatalf("line clears = %d, want 4", got)
	}
	for _, want := range []string{"int", " x", "b"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("frame missing %q: %q", want, frame)
		}
	}
}

func TestFrameStatusCentered(t *testing.T) {
	s := newTestSession("")
	s.Resize(20, 3)
	frame := string(s.Frame())
	status := strings.Repeat(" ", 7) + " (0,0)" + strings.Repeat(" ", 7)
	p := newPalette(config.Default().Theme)
	want := clearLine + p.statusBg + p.statusFg + status + p.bg + p.fg
	if !strings.Contains(frame, want) {
		t.Fatalf("frame missing centred status %q: %q", want, frame)
	}
}

func TestFrameStatusTruncated(t *testing.T) {
	s := newTestSession("")
	s.Active().Bind("a-rather-long-file-name.txt")
	s.Resize(10, 2)
	frame := string(s.Frame())
	if !strings.Contains(frame, "a-rather-l") || strings.Contains(frame, "a-rather-lo") {
		t.Fatalf("status not cut to 10 columns: %q", frame)
	}
}

func TestFrameTruncatesRows(t *testing.T) {
	s := newTestSession("abcdefghij")
	s.Resize(5, 3)
	frame := string(s.Frame())
	if !strings.Contains(frame, "abcde") || strings.Contains(frame, "abcdef") {
		t.Fatalf("row not cut to 5 columns: %q", frame)
	}
}

func TestFrameCursorClampedToWidth(t *testing.T) {
	s := newTestSession("abcdefghij")
	s.Resize(5, 3)
	s.Active().SetCursor(document.Cursor{Row: 0, Col: 9})
	if frame := string(s.Frame()); !strings.Contains(frame, "\x1b[1;5H") {
		t.Fatalf("cursor not clamped to last column: %q", frame)
	}
}

// rowName spells i in letters so each row is a single identifier token.
func rowName(i int) string {
	return fmt.Sprintf("row%c%c", 'a'+i/26, 'a'+i%26)
}

func TestFrameScrolls(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = rowName(i)
	}
	s := newTestSession(lines...)
	s.Resize(80, 20)
	s.Active().SetCursor(document.Cursor{Row: 60})
	frame := string(s.Frame())
	for _, want := range []string{rowName(50), rowName(68), "\x1b[11;1H"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("frame missing %q", want)
		}
	}
	for _, unwanted := range []string{rowName(49), rowName(69)} {
		if strings.Contains(frame, unwanted) {
			t.Fatalf("frame contains %q", unwanted)
		}
	}
}

func TestFrameColorsTokens(t *testing.T) {
	s := newTestSession("int x")
	s.Resize(20, 2)
	p := newPalette(config.Default().Theme)
	frame := string(s.Frame())
	if want := p.kinds[syntax.Keyword] + "int" + p.kinds[syntax.Identifier] + " x" + p.fg; !strings.Contains(frame, want) {
		t.Fatalf("frame missing coloured tokens %q: %q", want, frame)
	}
}

func TestFrameUsesHighlighter(t *testing.T) {
	h := &stubHighlighter{
		tokens: map[int][]syntax.Token{0: {{Text: "int x", Kind: syntax.Comment}}},
		ok:     true,
	}
	s := New(config.Default(), WithHighlighter(h))
	_ = s.Add(document.NewFromLines(1, 80, 24, "int x"))
	s.Resize(20, 2)
	frame := string(s.Frame())
	if want := s.palette.kinds[syntax.Comment] + "int x"; !strings.Contains(frame, want) {
		t.Fatalf("frame missing highlighted row %q: %q", want, frame)
	}

	h.ok = false
	frame = string(s.Frame())
	if want := s.palette.kinds[syntax.Keyword] + "int"; !strings.Contains(frame, want) {
		t.Fatalf("frame did not fall back to the tokenizer: %q", frame)
	}
	if h.calls != 2 {
		t.Fatalf("highlighter calls = %d, want 2", h.calls)
	}
}

func TestRenderSingleWrite(t *testing.T) {
	s := newTestSession("a", "b", "c")
	var w countingWriter
	if err := s.Render(&w); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if w.writes != 1 {
		t.Fatalf("writes = %d, want 1", w.writes)
	}
	if !bytes.Equal(w.Bytes(), s.Frame()) {
		t.Fatalf("written frame differs from Frame()")
	}
}

func TestColorCode(t *testing.T) {
	cases := []struct {
		name       string
		background bool
		want       string
	}{
		{"red", false, "\x1b[31m"},
		{"White", true, "\x1b[47m"},
		{"bright-white", false, "\x1b[97m"},
		{"default", true, "\x1b[49m"},
		{"", false, "\x1b[39m"},
		{"#ff8000", false, "\x1b[38;2;255;128;0m"},
		{"#000000", true, "\x1b[48;2;0;0;0m"},
		{"nope", false, "\x1b[39m"},
	}
	for _, tc := range cases {
		if got := colorCode(tc.name, tc.background); got != tc.want {
			t.Fatalf("colorCode(%q, %v) = %q, want %q", tc.name, tc.background, got, tc.want)
		}
	}
}
