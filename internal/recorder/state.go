// Package recorder keeps a cube alive between CLI invocations and records
// scrambles and the moves made on them.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppState represents the persistent application state.
type AppState struct {
	DBPath           string   `json:"db_path"`
	ActiveScrambleID string   `json:"active_scramble_id,omitempty"`
	CubeState        string   `json:"cube_state,omitempty"`
	Moves            []string `json:"moves,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// NewStateFile creates a state file manager, loading path if it exists.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	// Try to load existing state
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// Path returns the file location.
func (sf *StateFile) Path() string {
	return sf.path
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	var st AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	sf.state = st
	return nil
}

// Save writes the state to disk through a temporary file so a crash never
// leaves a truncated file behind.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp := sf.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, sf.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	st := sf.state
	st.Moves = append([]string(nil), sf.state.Moves...)
	return st
}

// Update replaces the state and saves it.
func (sf *StateFile) Update(st AppState) error {
	sf.state = st
	return sf.Save()
}

// HasActiveScramble returns true if a recorded scramble is unsolved.
func (sf *StateFile) HasActiveScramble() bool {
	return sf.state.ActiveScrambleID != ""
}

// ActiveScrambleID returns the active scramble ID.
func (sf *StateFile) ActiveScrambleID() string {
	return sf.state.ActiveScrambleID
}

// DBPath returns the database path.
func (sf *StateFile) DBPath() string {
	return sf.state.DBPath
}
