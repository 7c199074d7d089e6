// Package state remembers where the cursor was in each file between runs.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileState stores the state of a single file
type FileState struct {
	CursorRow int `json:"cursor_row"`
	CursorCol int `json:"cursor_col"`
}

// State is the persisted document of the state file
type State struct {
	Files      map[string]FileState `json:"files"`
	ActiveFile string               `json:"active_file,omitempty"`
	LastSaved  time.Time            `json:"last_saved"`
}

// Manager handles state persistence. It is used from the editor loop only.
type Manager struct {
	state State
	path  string
	dirty bool
}

// NewManager loads the state file from the default location.
func NewManager() (*Manager, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}
	return Open(path), nil
}

// Open loads the state file at path. A missing or unreadable file starts
// an empty state.
func Open(path string) *Manager {
	m := &Manager{
		state: State{Files: make(map[string]FileState)},
		path:  path,
	}
	m.load()
	return m
}

func statePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "led", "state.json"), nil
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return // No existing state, start fresh
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return
	}
	if st.Files == nil {
		st.Files = make(map[string]FileState)
	}
	m.state = st
}

// Path returns the location of the state file.
func (m *Manager) Path() string {
	return m.path
}

// Save persists the state to disk if anything changed.
func (m *Manager) Save() error {
	if !m.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}

	m.state.LastSaved = time.Now()
	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return err
	}

	m.dirty = false
	return nil
}

// FileState returns the saved state for a file
func (m *Manager) FileState(absPath string) (FileState, bool) {
	st, ok := m.state.Files[absPath]
	return st, ok
}

// SetFileState updates the state for a file
func (m *Manager) SetFileState(absPath string, st FileState) {
	if cur, ok := m.state.Files[absPath]; ok && cur == st {
		return
	}
	m.state.Files[absPath] = st
	m.dirty = true
}

// SetActiveFile sets the currently active file
func (m *Manager) SetActiveFile(absPath string) {
	if m.state.ActiveFile == absPath {
		return
	}
	m.state.ActiveFile = absPath
	m.dirty = true
}

// ActiveFile returns the last active file
func (m *Manager) ActiveFile() string {
	return m.state.ActiveFile
}
