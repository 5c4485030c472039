// Package memory is an in-process persistence backend. Markers live in an
// arena keyed by id with a parent index, and transactions are serialized by
// a single writer lock with copy-on-begin rollback.
package memory

import (
	"sync"

	"lightmap/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds markers and accounts for the memory backend.
type Store struct {
	mu sync.RWMutex

	// txMu serializes transactions; readers outside a transaction only take mu.
	txMu sync.Mutex

	markers    map[uuid.UUID]*entity.LightMarker
	childrenOf map[uuid.UUID][]uuid.UUID
	accounts   map[uuid.UUID]*entity.UserAccount
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		markers:    make(map[uuid.UUID]*entity.LightMarker),
		childrenOf: make(map[uuid.UUID][]uuid.UUID),
		accounts:   make(map[uuid.UUID]*entity.UserAccount),
	}
}

// PutAccount stores an account. Accounts are provisioned outside lightmap,
// so this is the seeding hook for local runs and tests.
func (s *Store) PutAccount(account *entity.UserAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *account
	s.accounts[account.ID] = &stored
}

type snapshot struct {
	markers    map[uuid.UUID]*entity.LightMarker
	childrenOf map[uuid.UUID][]uuid.UUID
}

// snapshot copies the marker state. Callers hold txMu.
func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		markers:    make(map[uuid.UUID]*entity.LightMarker, len(s.markers)),
		childrenOf: make(map[uuid.UUID][]uuid.UUID, len(s.childrenOf)),
	}
	for id, m := range s.markers {
		snap.markers[id] = m.Clone()
	}
	for id, children := range s.childrenOf {
		snap.childrenOf[id] = append([]uuid.UUID(nil), children...)
	}

	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markers = snap.markers
	s.childrenOf = snap.childrenOf
}
