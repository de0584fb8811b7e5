// Package session holds the presentation-layer state the frontend mutates:
// the uploaded filename, the derived code, and the picked coordinate. State
// lives in memory only and dies with the process.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/WiL-dev/econstruct/internal/flow"
	"github.com/WiL-dev/econstruct/internal/ingest"
	"github.com/WiL-dev/econstruct/internal/model"
)

// State is the externally-owned UI state for one connected session.
// Ready reports whether the dashboard gate is open: a code is set and a
// coordinate exists.
type State struct {
	ID         string            `json:"id"`
	Filename   string            `json:"filename,omitempty"`
	Code       model.Code        `json:"code,omitempty"`
	Coordinate *model.Coordinate `json:"coordinate,omitempty"`
	Ready      bool              `json:"ready"`
}

// Callback receives session events.
type Callback interface {
	OnState(s State)
	OnDashboard(sessionID string, d model.Dashboard)
}

// Store tracks all live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]State
	callback Callback
}

func New(cb Callback) *Store {
	return &Store{
		sessions: make(map[string]State),
		callback: cb,
	}
}

// Open creates a fresh session and returns its initial state. The caller is
// responsible for delivering the initial state to the client; no callback
// fires here.
func (s *Store) Open() State {
	st := State{ID: uuid.NewString()}

	s.mu.Lock()
	s.sessions[st.ID] = st
	s.mu.Unlock()

	return st
}

// Get returns the current state of a session.
func (s *Store) Get(id string) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[id]
	return st, ok
}

// Close discards a session.
func (s *Store) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// SetFile validates the uploaded filename, stores the derived code, and
// pushes the refreshed state and dashboard. A rejected filename leaves the
// session untouched.
func (s *Store) SetFile(id, filename string) error {
	code, err := ingest.CodeFromFilename(filename)
	if err != nil {
		return err
	}

	st, err := s.mutate(id, func(st *State) {
		st.Filename = filename
		st.Code = code
	})
	if err != nil {
		return err
	}

	s.callback.OnState(st)
	s.callback.OnDashboard(id, flow.Build(string(code)))
	return nil
}

// SetCode stores a code directly, normalizing defensively, and pushes the
// refreshed state and dashboard.
func (s *Store) SetCode(id, raw string) error {
	code := flow.Normalize(raw)

	st, err := s.mutate(id, func(st *State) {
		st.Code = code
	})
	if err != nil {
		return err
	}

	s.callback.OnState(st)
	s.callback.OnDashboard(id, flow.Build(string(code)))
	return nil
}

// SetLocation stores the picked or resolved coordinate.
func (s *Store) SetLocation(id string, coord model.Coordinate) error {
	st, err := s.mutate(id, func(st *State) {
		c := coord
		st.Coordinate = &c
	})
	if err != nil {
		return err
	}

	s.callback.OnState(st)
	return nil
}

// Clear resets the session's input state, keeping the session itself alive.
func (s *Store) Clear(id string) error {
	st, err := s.mutate(id, func(st *State) {
		st.Filename = ""
		st.Code = ""
		st.Coordinate = nil
	})
	if err != nil {
		return err
	}

	s.callback.OnState(st)
	return nil
}

// mutate applies fn to a session under the lock and recomputes the ready
// gate. Returns the updated state so callbacks can run without the lock.
func (s *Store) mutate(id string, fn func(*State)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]
	if !ok {
		return State{}, fmt.Errorf("unknown session %s", id)
	}

	fn(&st)
	st.Ready = st.Code != "" && st.Coordinate != nil
	s.sessions[id] = st
	return st, nil
}
