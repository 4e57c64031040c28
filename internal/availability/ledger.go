package availability

import (
	"context"
	"errors"
	"slices"
	"time"

	"stayline/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	// ErrNoFreeUnit means every unit in the pool overlaps the requested stay.
	ErrNoFreeUnit = errors.New("no unit free for the requested stay")
	// ErrPoolEmpty means the room type has no units configured at all.
	ErrPoolEmpty = errors.New("room type has no units")
	// ErrBusy means the admission gate could not be acquired in time.
	ErrBusy = errors.New("room type admission gate is busy")
)

// Ledger owns one room type's shared mutable state: the unit pool and the
// interval index. All access goes through a Lease obtained from Acquire, so
// bookings and inventory edits on the same room type cannot interleave.
type Ledger struct {
	gate  chan struct{}
	units []int
	index *Index
}

func NewLedger(units []int) *Ledger {
	return &Ledger{
		gate:  make(chan struct{}, 1),
		units: slices.Clone(units),
		index: NewIndex(),
	}
}

// Acquire takes the admission gate, blocking until it is free or ctx
// expires. On timeout the caller gets ErrBusy and no state has changed.
func (l *Ledger) Acquire(ctx context.Context) (*Lease, error) {
	select {
	case l.gate <- struct{}{}:
		return &Lease{ledger: l}, nil
	case <-ctx.Done():
		return nil, ErrBusy
	}
}

// Lease is exclusive access to the ledger until Release.
type Lease struct {
	ledger   *Ledger
	released bool
}

func (le *Lease) Release() {
	if le.released {
		return
	}
	le.released = true
	<-le.ledger.gate
}

// Units returns the pool in ascending order.
func (le *Lease) Units() []int {
	return slices.Clone(le.ledger.units)
}

func (le *Lease) SetUnits(units []int) {
	le.ledger.units = slices.Clone(units)
}

// FindFreeUnit walks the pool in ascending unit order and returns the first
// unit with no overlapping confirmed stay. The lowest-id tie-break keeps
// allocation deterministic.
func (le *Lease) FindFreeUnit(stay reservation.StayRange) (int, error) {
	if len(le.ledger.units) == 0 {
		return 0, ErrPoolEmpty
	}
	for _, unit := range le.ledger.units {
		if !le.ledger.index.Overlaps(unit, stay) {
			return unit, nil
		}
	}
	return 0, ErrNoFreeUnit
}

func (le *Lease) Overlaps(unit int, stay reservation.StayRange) bool {
	return le.ledger.index.Overlaps(unit, stay)
}

func (le *Lease) Insert(unit int, reservationID uuid.UUID, stay reservation.StayRange) {
	le.ledger.index.Insert(unit, reservationID, stay)
}

func (le *Lease) Remove(unit int, reservationID uuid.UUID) bool {
	return le.ledger.index.Remove(unit, reservationID)
}

// BlockedUnits filters toRemove down to units that still carry a confirmed
// stay with a future check-out. Removal policy: such units block the whole
// edit.
func (le *Lease) BlockedUnits(toRemove []int, now time.Time) []int {
	var blocked []int
	for _, unit := range toRemove {
		if le.ledger.index.HasStayEndingAfter(unit, now) {
			blocked = append(blocked, unit)
		}
	}
	return blocked
}
