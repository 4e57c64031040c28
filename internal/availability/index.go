package availability

import (
	"sort"
	"time"

	"stayline/internal/domain/reservation"

	"github.com/google/uuid"
)

type span struct {
	reservationID uuid.UUID
	stay          reservation.StayRange
}

// Index answers overlap queries for one room type. Per unit, confirmed
// stays are kept sorted by check-in. The index is not safe for concurrent
// use on its own; the owning Ledger's admission gate serializes access.
type Index struct {
	byUnit map[int][]span
}

func NewIndex() *Index {
	return &Index{byUnit: make(map[int][]span)}
}

// Overlaps reports whether the unit has a confirmed stay sharing any night
// with the candidate range.
func (x *Index) Overlaps(unit int, stay reservation.StayRange) bool {
	spans := x.byUnit[unit]
	// First span starting at or after the candidate's check-out; everything
	// from there on starts too late to overlap.
	i := sort.Search(len(spans), func(i int) bool {
		return !spans[i].stay.CheckIn().Before(stay.CheckOut())
	})
	for j := 0; j < i; j++ {
		if spans[j].stay.Overlaps(stay) {
			return true
		}
	}
	return false
}

// Insert records a confirmed stay. The caller has already established that
// the range is free.
func (x *Index) Insert(unit int, reservationID uuid.UUID, stay reservation.StayRange) {
	spans := x.byUnit[unit]
	i := sort.Search(len(spans), func(i int) bool {
		return spans[i].stay.CheckIn().After(stay.CheckIn())
	})
	spans = append(spans, span{})
	copy(spans[i+1:], spans[i:])
	spans[i] = span{reservationID: reservationID, stay: stay}
	x.byUnit[unit] = spans
}

// Remove drops the stay recorded for reservationID on the unit. It reports
// whether anything was removed, so a second removal is a visible no-op
// rather than a double free.
func (x *Index) Remove(unit int, reservationID uuid.UUID) bool {
	spans := x.byUnit[unit]
	for i, s := range spans {
		if s.reservationID == reservationID {
			x.byUnit[unit] = append(spans[:i], spans[i+1:]...)
			return true
		}
	}
	return false
}

// HasStayEndingAfter reports whether the unit carries a confirmed stay whose
// check-out is still in the future. Used by the removal policy.
func (x *Index) HasStayEndingAfter(unit int, now time.Time) bool {
	for _, s := range x.byUnit[unit] {
		if s.stay.CheckOut().After(now) {
			return true
		}
	}
	return false
}
