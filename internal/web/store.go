package web

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/abhisek/quizbank/internal/bank"
	"github.com/abhisek/quizbank/internal/quiz"
)

// DefaultMaxSessions bounds the number of browser sessions kept in memory.
const DefaultMaxSessions = 1000

// Store keeps one AppState per browser, up to a capacity; the least recently
// used session is dropped when a new one would exceed it. The bank is shared
// read-only; each state is only touched while the store lock is held.
type Store struct {
	mu       sync.Mutex
	bank     *bank.Bank
	size     int
	opts     []quiz.Option
	sessions *lru.Cache
	onEvict  func(id string)
}

// NewStore creates an empty store whose states sample size questions from b.
// A capacity <= 0 selects DefaultMaxSessions.
func NewStore(b *bank.Bank, size, capacity int, opts ...quiz.Option) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultMaxSessions
	}
	s := &Store{bank: b, size: size, opts: opts}
	cache, err := lru.NewWithEvict(capacity, func(key, _ interface{}) {
		if s.onEvict != nil {
			s.onEvict(key.(string))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	s.sessions = cache
	return s, nil
}

// Do runs fn on the state registered under id. Unknown or empty ids get a new
// state under a fresh id. It returns the id in use and whether it was created.
func (s *Store) Do(id string, fn func(*quiz.AppState) error) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.sessions.Get(id); ok {
		return id, false, fn(v.(*quiz.AppState))
	}
	id = uuid.NewString()
	state := quiz.NewAppState(s.bank, s.size, s.opts...)
	s.sessions.Add(id, state)
	return id, true, fn(state)
}

// Len returns the number of live browser sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
