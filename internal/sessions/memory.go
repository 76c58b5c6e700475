package sessions

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/iammorganparry/brainstorm/internal/models"
)

// MemoryStore keeps sessions in a map. Values are copied on the way in and out
// so callers can mutate what they get back without touching stored state.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int]*models.Session
	nextID   int
}

func NewMemoryStore(seed ...*models.Session) *MemoryStore {
	m := &MemoryStore{sessions: map[int]*models.Session{}}
	for _, s := range seed {
		m.put(s.Clone())
	}
	return m
}

func (m *MemoryStore) put(s *models.Session) {
	if s.Ideas == nil {
		s.Ideas = []models.Idea{}
	}
	m.sessions[s.ID] = s
	if s.ID > m.nextID {
		m.nextID = s.ID
	}
}

func (m *MemoryStore) GetByID(_ context.Context, id int) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return s.Clone(), nil
}

func (m *MemoryStore) List(_ context.Context) ([]*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DateCreated.Equal(out[j].DateCreated) {
			return out[i].ID > out[j].ID
		}
		return out[i].DateCreated.After(out[j].DateCreated)
	})
	return out, nil
}

func (m *MemoryStore) Add(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == 0 {
		s.ID = m.nextID + 1
	} else if _, exists := m.sessions[s.ID]; exists {
		return fmt.Errorf("add session %d: already exists", s.ID)
	}
	m.put(s.Clone())
	return nil
}

func (m *MemoryStore) Update(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[s.ID]; !exists {
		return fmt.Errorf("update session %d: %w", s.ID, ErrSessionNotFound)
	}
	m.put(s.Clone())
	return nil
}

// Count returns the number of stored sessions.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
