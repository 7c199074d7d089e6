// Package editor owns the set of open documents and turns key events into
// document operations and terminal frames.
package editor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/led/internal/config"
	"github.com/kobzarvs/led/internal/document"
	"github.com/kobzarvs/led/internal/logger"
	"github.com/kobzarvs/led/internal/syntax"
	"github.com/kobzarvs/led/internal/term"
)

var ErrDuplicateID = errors.New("duplicate document id")

const (
	defaultCols = 80
	defaultRows = 24
)

// Highlighter produces tokens for rows [start, end] of doc, each row cut to
// cols bytes. It returns false when it cannot handle the document.
type Highlighter interface {
	Highlight(doc *document.Document, start, end, cols int) (map[int][]syntax.Token, bool)
}

type Option func(*Session)

// WithInterpreter installs the interpreter for commands that are not
// built in.
func WithInterpreter(in Interpreter) Option {
	return func(s *Session) { s.interp = in }
}

func WithHighlighter(h Highlighter) Option {
	return func(s *Session) { s.highlighter = h }
}

// Session is driven from a single loop: HandleEvent, then Render.
type Session struct {
	cfg         config.Config
	docs        []*document.Document
	activeID    int
	nextID      int
	cols        int
	rows        int
	palette     palette
	interp      Interpreter
	highlighter Highlighter

	actionHook func(action string)
}

func New(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		nextID:  1,
		cols:    defaultCols,
		rows:    defaultRows,
		palette: newPalette(cfg.Theme),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads path into a new document and makes it active. The document is
// registered even when loading fails.
func (s *Session) Open(path string) (*document.Document, error) {
	doc := document.New(s.nextID, s.cols, s.rows)
	loadErr := doc.Load(path)
	if err := s.Add(doc); err != nil {
		return nil, err
	}
	logger.Info("opened", "id", doc.ID(), "path", path, "rows", doc.LineCount())
	return doc, loadErr
}

// Add registers doc and makes it active.
func (s *Session) Add(doc *document.Document) error {
	if _, ok := s.Lookup(doc.ID()); ok {
		return fmt.Errorf("add document %d: %w", doc.ID(), ErrDuplicateID)
	}
	doc.SetViewport(s.cols, s.rows)
	s.docs = append(s.docs, doc)
	if doc.ID() >= s.nextID {
		s.nextID = doc.ID() + 1
	}
	s.activeID = doc.ID()
	return nil
}

func (s *Session) Documents() []*document.Document {
	return slices.Clone(s.docs)
}

// Active returns the document that receives input. A session without any
// document gets an empty unnamed one.
func (s *Session) Active() *document.Document {
	if doc, ok := s.Lookup(s.activeID); ok {
		return doc
	}
	if len(s.docs) > 0 {
		s.activeID = s.docs[0].ID()
		return s.docs[0]
	}
	doc := document.New(s.nextID, s.cols, s.rows)
	_ = s.Add(doc)
	return doc
}

func (s *Session) Lookup(id int) (*document.Document, bool) {
	for _, doc := range s.docs {
		if doc.ID() == id {
			return doc, true
		}
	}
	return nil, false
}

// SwitchTo makes the document with id active. It reports whether one
// exists.
func (s *Session) SwitchTo(id int) bool {
	if _, ok := s.Lookup(id); !ok {
		return false
	}
	s.activeID = id
	logger.Debug("switched buffer", "id", id)
	return true
}

// NextBuffer activates the document registered after the active one,
// wrapping around. If the active id is unknown the first document is used.
func (s *Session) NextBuffer() {
	if len(s.docs) == 0 {
		return
	}
	i := slices.IndexFunc(s.docs, func(d *document.Document) bool { return d.ID() == s.activeID })
	if i < 0 {
		logger.Warn("active buffer not registered", "id", s.activeID)
		s.activeID = s.docs[0].ID()
		return
	}
	s.activeID = s.docs[(i+1)%len(s.docs)].ID()
}

// Resize records the terminal size and passes it to every document.
func (s *Session) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	for _, doc := range s.docs {
		doc.SetViewport(cols, rows)
	}
}

func (s *Session) Size() (cols, rows int) { return s.cols, s.rows }

// Message appends a diagnostic row to the active document.
func (s *Session) Message(text string) {
	logger.Debug("message", "text", text)
	s.Active().AppendLine(text)
}

// HandleEvent dispatches one input event and reports whether the session
// should end.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.HandleKey(ev)
	case *term.EventEscape:
		s.Message("escape: " + ev.String())
	case *tcell.EventResize:
		s.Resize(ev.Size())
	}
	return false
}

func (s *Session) save(doc *document.Document) {
	err := doc.Save()
	switch {
	case errors.Is(err, document.ErrNoFileName):
		s.Message("no filename")
	case err != nil:
		logger.Error("save failed", "id", doc.ID(), "err", err)
		s.Message(err.Error())
	default:
		logger.Info("saved", "id", doc.ID(), "path", doc.Path())
	}
}
