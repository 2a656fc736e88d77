// internal/store/memory.go
//
// In-memory session store for the session server.
//
// Characteristics:
//   - Each session owns its own *search.Engine built from a private copy of
//     the base word list; nothing mutable is shared between sessions.
//   - The map is guarded by an RWMutex; work on one session is serialized by
//     that session's own mutex (see Session.Do).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle-cheat/internal/search"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one isolated search.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	engine *search.Engine
}

// Do runs fn with exclusive access to the session's engine.
func (s *Session) Do(fn func(e *search.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

// Store defines the session persistence interface.
type Store interface {
	// Create starts a new session over the store's base word list.
	Create(ctx context.Context) (*Session, error)

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete drops a session. Deleting an unknown ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Len is the number of live sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	base     []string
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewMemoryStore constructs a Store whose sessions all start from base.
func NewMemoryStore(base []string) Store {
	return &memory{
		base:     append([]string(nil), base...),
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (m *memory) Create(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: m.now().UTC(),
		engine:    search.New(m.base),
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
