// Package conversation holds bounded in-memory dialogue history. It is a
// cache, not a system of record: durable chat logs belong to an external
// persistence layer.
package conversation

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"krishisaathi/internal/model"
)

// MaxHistory caps turns kept per conversation; older turns are evicted
// front-first so recency is preserved.
const MaxHistory = 20

const (
	defaultMaxConversations = 1000
	defaultTTL              = 30 * time.Minute
)

// Store keeps per-conversation history with two bounds: turns per
// conversation (MaxHistory) and live conversations overall (LRU with TTL).
// Appends on the same conversation id are serialized by a per-id mutex;
// different ids never contend.
type Store struct {
	history *expirable.LRU[string, []model.Turn]

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures a Store.
type Option func(*options)

type options struct {
	maxConversations int
	ttl              time.Duration
}

// WithMaxConversations bounds the number of live conversations.
func WithMaxConversations(n int) Option {
	return func(o *options) { o.maxConversations = n }
}

// WithTTL sets how long an idle conversation is retained.
func WithTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

// New creates a conversation store.
func New(opts ...Option) *Store {
	o := options{
		maxConversations: defaultMaxConversations,
		ttl:              defaultTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		locks: make(map[string]*sync.Mutex),
	}
	s.history = expirable.NewLRU[string, []model.Turn](
		o.maxConversations,
		func(id string, _ []model.Turn) { s.dropLock(id) },
		o.ttl,
	)
	return s
}

// Append adds turns to the conversation history, trimming from the front
// when the MaxHistory cap is exceeded.
func (s *Store) Append(id string, turns ...model.Turn) {
	if id == "" || len(turns) == 0 {
		return
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	existing, _ := s.history.Get(id)
	merged := make([]model.Turn, 0, len(existing)+len(turns))
	merged = append(merged, existing...)
	merged = append(merged, turns...)
	if over := len(merged) - MaxHistory; over > 0 {
		merged = merged[over:]
	}
	s.history.Add(id, merged)
}

// Get returns a copy of the conversation history in order, oldest first.
func (s *Store) Get(id string) []model.Turn {
	turns, ok := s.history.Get(id)
	if !ok {
		return nil
	}
	out := make([]model.Turn, len(turns))
	copy(out, turns)
	return out
}

// Len returns the number of stored turns for id.
func (s *Store) Len(id string) int {
	turns, _ := s.history.Get(id)
	return len(turns)
}

func (s *Store) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

func (s *Store) dropLock(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, id)
}
