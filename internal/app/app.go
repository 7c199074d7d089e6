// Package app wires configuration, logging, the terminal and the editor
// session into the read-key, dispatch, redraw loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kobzarvs/led/internal/config"
	"github.com/kobzarvs/led/internal/document"
	"github.com/kobzarvs/led/internal/editor"
	"github.com/kobzarvs/led/internal/logger"
	"github.com/kobzarvs/led/internal/state"
	"github.com/kobzarvs/led/internal/term"
	"github.com/kobzarvs/led/internal/treesitter"
)

// App is the top-level runtime for led.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	langs, err := config.LoadLanguages()
	if err != nil {
		return fmt.Errorf("languages: %w", err)
	}
	if err := logger.Init(cfg.Editor.Debug); err != nil {
		fmt.Fprintln(os.Stderr, "led: logging disabled:", err)
	}
	defer logger.Close()

	ts := treesitter.New(langs)
	if err := ts.Start(); err != nil {
		return err
	}
	defer func() { _ = ts.Stop() }()

	states, err := state.NewManager()
	if err != nil {
		logger.Warn("cursor state unavailable", "err", err)
	}

	s := editor.New(cfg, editor.WithHighlighter(ts))
	openFiles(s, states, a.args)

	t, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer t.Close()
	defer func() {
		if r := recover(); r != nil {
			_ = t.Close()
			logger.Error("panic", "value", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	stop := restoreOnSignal(t)
	defer stop()

	if err := run(s, t); err != nil {
		logger.Error("editor loop failed", "err", err)
		return err
	}
	saveState(s, states)
	logger.Info("exit")
	return nil
}

func run(s *editor.Session, t *term.Terminal) error {
	for {
		if cols, rows, err := t.Size(); err == nil {
			if c, r := s.Size(); c != cols || r != rows {
				s.Resize(cols, rows)
			}
		}
		if err := s.Render(t); err != nil {
			return err
		}
		ev, err := t.ReadEvent()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read key: %w", err)
		}
		if s.HandleEvent(ev) {
			return nil
		}
	}
}

// openFiles opens every path in order and restores remembered cursors.
// The first file, or the one active at the last exit, ends up active.
func openFiles(s *editor.Session, states *state.Manager, paths []string) {
	if len(paths) == 0 {
		s.Active()
		return
	}
	firstID := 0
	activeID := 0
	for _, path := range paths {
		doc, err := s.Open(path)
		if doc == nil {
			logger.Error("open failed", "path", path, "err", err)
			continue
		}
		if err != nil {
			logger.Warn("load failed", "path", path, "err", err)
			s.Message(err.Error())
		}
		if firstID == 0 {
			firstID = doc.ID()
		}
		if states == nil {
			continue
		}
		abs := absPath(path)
		if st, ok := states.FileState(abs); ok {
			doc.SetCursor(document.Cursor{Row: st.CursorRow, Col: st.CursorCol})
		}
		if abs == states.ActiveFile() {
			activeID = doc.ID()
		}
	}
	if activeID == 0 {
		activeID = firstID
	}
	s.SwitchTo(activeID)
}

func saveState(s *editor.Session, states *state.Manager) {
	if states == nil {
		return
	}
	for _, doc := range s.Documents() {
		if doc.Path() == "" {
			continue
		}
		cur := doc.Cursor()
		states.SetFileState(absPath(doc.Path()), state.FileState{CursorRow: cur.Row, CursorCol: cur.Col})
	}
	if active := s.Active(); active.Path() != "" {
		states.SetActiveFile(absPath(active.Path()))
	}
	if err := states.Save(); err != nil {
		logger.Warn("save cursor state", "path", states.Path(), "err", err)
	}
}

// restoreOnSignal puts the tty back when the process is told to stop.
func restoreOnSignal(t *term.Terminal) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			logger.Warn("terminated", "signal", sig.String())
			_ = t.Close()
			logger.Close()
			os.Exit(1)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
