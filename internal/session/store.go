package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vancomm/lockbox-server/internal/lockbox"
)

var ErrNotFound = errors.New("session not found")

// Session is one live box owned by one client. Box access goes through
// Do so concurrent requests against the same session serialize.
type Session struct {
	ID        string    `json:"session_id"`
	OwnerID   string    `json:"-"`
	StartedAt time.Time `json:"started_at"`

	mu  sync.Mutex
	box *lockbox.Box
}

// Do runs fn with exclusive access to the session's box.
func (s *Session) Do(fn func(box *lockbox.Box) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.box)
}

// Store keeps sessions in memory. There is deliberately no persistent
// backend: boxes are throwaway puzzles that live and die with the
// process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	rnd      *rand.Rand
}

func NewStore(rnd *rand.Rand) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		rnd:      rnd,
	}
}

// NewID returns a fresh random identifier, usable for both sessions
// and owners.
func (st *Store) NewID() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return fmt.Sprintf("%016x", st.rnd.Uint64())
}

// Create registers a new session around box and returns it.
func (st *Store) Create(ownerID string, box *lockbox.Box) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	var id string
	for {
		id = fmt.Sprintf("%016x", st.rnd.Uint64())
		if _, taken := st.sessions[id]; !taken {
			break
		}
	}
	session := &Session{
		ID:        id,
		OwnerID:   ownerID,
		StartedAt: time.Now().UTC(),
		box:       box,
	}
	st.sessions[id] = session
	return session
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
