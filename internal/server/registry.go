package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubesim"
)

// Registry holds the sessions created over HTTP. Each session guards its
// own cube; the registry only guards the map.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*cubesim.Session
	opts     []cubesim.Option
	limit    int
}

// NewRegistry creates an empty registry. Sessions are built with opts.
// limit caps the number of live sessions; 0 means no cap.
func NewRegistry(limit int, opts ...cubesim.Option) *Registry {
	return &Registry{
		sessions: make(map[string]*cubesim.Session),
		opts:     opts,
		limit:    limit,
	}
}

// Create adds a new solved session and returns its id.
func (r *Registry) Create() (string, *cubesim.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.limit > 0 && len(r.sessions) >= r.limit {
		return "", nil, fmt.Errorf("session limit %d reached", r.limit)
	}

	id := uuid.New().String()
	s := cubesim.NewSession(r.opts...)
	r.sessions[id] = s
	return id, s, nil
}

// Get returns the session with id.
func (r *Registry) Get(id string) (*cubesim.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete removes the session with id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
