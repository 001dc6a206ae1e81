// Package session keeps one estimator selection per visitor in memory.
//
// Selections are never written anywhere: an entry disappears after the idle TTL
// or when the store is full and the entry is the least recently used one.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"miniapp-studio/internal/domain"
)

const (
	DefaultCapacity = 10000
	DefaultTTL      = 30 * time.Minute
)

type Store struct {
	// mu serialises read-modify-write of a selection
	mu    sync.Mutex
	cache *expirable.LRU[string, domain.Selection]
}

func New(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, domain.Selection](capacity, nil, ttl),
	}
}

// NewID генерирует идентификатор сессии для cookie
func NewID() string {
	return uuid.NewString()
}

// Load returns the selection of the session, creating a fresh one when id is empty,
// malformed or expired. The returned id is the one the caller must keep using.
func (s *Store) Load(id string) (string, domain.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err == nil {
		if sel, ok := s.cache.Get(id); ok {
			// продлеваем TTL
			s.cache.Add(id, sel)
			return id, sel.Clone(), false
		}
	}

	id = NewID()
	sel := domain.NewSelection()
	s.cache.Add(id, sel)
	return id, sel.Clone(), true
}

// Update applies fn to a copy of the selection and stores it only when fn succeeds.
func (s *Store) Update(id string, fn func(*domain.Selection) error) (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.cache.Get(id)
	if !ok {
		sel = domain.NewSelection()
	}
	next := sel.Clone()
	if err := fn(&next); err != nil {
		return sel.Clone(), err
	}
	s.cache.Add(id, next)
	return next.Clone(), nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(id)
}

func (s *Store) Len() int {
	return s.cache.Len()
}
