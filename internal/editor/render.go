package editor

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/led/internal/config"
	"github.com/kobzarvs/led/internal/document"
	"github.com/kobzarvs/led/internal/logger"
	"github.com/kobzarvs/led/internal/syntax"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	cursorHome = "\x1b[H"
	clearLine  = "\x1b[K"
)

var ansiColorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// palette holds ready-made SGR sequences for the theme.
type palette struct {
	fg       string
	bg       string
	statusFg string
	statusBg string
	kinds    map[syntax.Kind]string
}

func newPalette(theme config.Theme) palette {
	p := palette{
		fg:       colorCode(theme.Foreground, false),
		bg:       colorCode(theme.Background, true),
		statusFg: colorCode(theme.StatuslineForeground, false),
		statusBg: colorCode(theme.StatuslineBackground, true),
		kinds:    make(map[syntax.Kind]string, len(syntax.Kinds())),
	}
	syntaxColors := map[syntax.Kind]string{
		syntax.Identifier: theme.SyntaxIdentifier,
		syntax.Keyword:    theme.SyntaxKeyword,
		syntax.Literal:    theme.SyntaxLiteral,
		syntax.Operator:   theme.SyntaxOperator,
		syntax.Punctuator: theme.SyntaxPunctuator,
		syntax.Comment:    theme.SyntaxComment,
		syntax.Other:      theme.SyntaxOther,
	}
	for _, kind := range syntax.Kinds() {
		if name := syntaxColors[kind]; name != "" {
			p.kinds[kind] = colorCode(name, false)
		} else {
			p.kinds[kind] = p.fg
		}
	}
	return p
}

// colorCode turns a theme colour into an SGR sequence. Accepted forms are
// "default", the eight ANSI names (optionally "bright-" prefixed) and
// "#rrggbb".
func colorCode(name string, background bool) string {
	base := 30
	if background {
		base = 40
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return sgr(base + 9)
	}
	if bright, ok := strings.CutPrefix(name, "bright-"); ok {
		if i := slices.Index(ansiColorNames, bright); i >= 0 {
			return sgr(base + 60 + i)
		}
	}
	if i := slices.Index(ansiColorNames, name); i >= 0 {
		return sgr(base + i)
	}
	c, err := colorful.Hex(name)
	if err != nil {
		logger.Warn("invalid color", "color", name)
		return sgr(base + 9)
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", base+8, r, g, b)
}

func sgr(code int) string {
	return "\x1b[" + strconv.Itoa(code) + "m"
}

// Render writes one frame in a single call.
func (s *Session) Render(w io.Writer) error {
	if _, err := w.Write(s.Frame()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Frame composes the screen for the active document. The last screen row
// is the status line.
func (s *Session) Frame() []byte {
	doc := s.Active()
	cols, rows := s.cols, s.rows
	scroll := doc.ScrollRow()

	var b bytes.Buffer
	b.WriteString(hideCursor)
	b.WriteString(cursorHome)
	b.WriteString(s.palette.bg)
	b.WriteString(s.palette.fg)

	var highlighted map[int][]syntax.Token
	useHighlighter := false
	if s.highlighter != nil && rows > 1 {
		highlighted, useHighlighter = s.highlighter.Highlight(doc, scroll, scroll+rows-2, cols)
	}
	lang := strings.TrimPrefix(filepath.Ext(doc.Path()), ".")

	for y := 0; y < rows; y++ {
		b.WriteString(clearLine)
		if y == rows-1 {
			s.writeStatus(&b, doc.StatusLine(), cols)
			break
		}
		if row := scroll + y; row < doc.LineCount() {
			var tokens []syntax.Token
			if useHighlighter {
				tokens = highlighted[row]
			} else {
				tokens = syntax.Tokenize(truncate(doc.Line(row), cols), lang)
			}
			for _, tok := range tokens {
				b.WriteString(s.palette.kinds[tok.Kind])
				b.WriteString(tok.Text)
			}
			b.WriteString(s.palette.fg)
		}
		b.WriteString("\r\n")
	}

	writeCursor(&b, doc, cols)
	b.WriteString(showCursor)
	return b.Bytes()
}

func (s *Session) writeStatus(b *bytes.Buffer, text string, cols int) {
	b.WriteString(s.palette.statusBg)
	b.WriteString(s.palette.statusFg)
	if runewidth.StringWidth(text) > cols {
		text = runewidth.Truncate(text, cols, "")
	}
	width := runewidth.StringWidth(text)
	left := (cols - width) / 2
	right := cols - left - width
	b.WriteString(strings.Repeat(" ", left))
	b.WriteString(text)
	b.WriteString(strings.Repeat(" ", right))
	b.WriteString(s.palette.bg)
	b.WriteString(s.palette.fg)
}

func writeCursor(b *bytes.Buffer, doc *document.Document, cols int) {
	cur := doc.Cursor()
	row := cur.Row - doc.ScrollRow() + 1
	col := min(cur.Col, max(cols-1, 0)) + 1
	fmt.Fprintf(b, "\x1b[%d;%dH", row, col)
}

func truncate(line string, cols int) string {
	if len(line) > cols {
		return line[:cols]
	}
	return line
}
