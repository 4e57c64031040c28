package availability

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps room type ids to their ledgers. Ledgers are created when a
// room type is created or hydrated at startup and live for the process.
type Registry struct {
	mu      sync.RWMutex
	ledgers map[uuid.UUID]*Ledger
}

func NewRegistry() *Registry {
	return &Registry{ledgers: make(map[uuid.UUID]*Ledger)}
}

func (r *Registry) Get(roomTypeID uuid.UUID) (*Ledger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.ledgers[roomTypeID]
	return l, ok
}

// GetOrCreate returns the room type's ledger, creating one seeded with the
// given pool if it is not registered yet. The seed pool is ignored for an
// existing ledger.
func (r *Registry) GetOrCreate(roomTypeID uuid.UUID, units []int) *Ledger {
	r.mu.RLock()
	l, ok := r.ledgers[roomTypeID]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.ledgers[roomTypeID]; ok {
		return l
	}
	l = NewLedger(units)
	r.ledgers[roomTypeID] = l
	return l
}
