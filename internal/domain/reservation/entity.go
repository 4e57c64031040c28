package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOccupants    = errors.New("at least one adult is required")
	ErrOccupancyExceeded   = errors.New("occupant count exceeds room capacity")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrNotCancellable      = errors.New("reservation cannot be cancelled")
	ErrInvalidStatusChange = errors.New("invalid reservation status transition")
)

// RoomTypeSpec carries the room type attributes a booking needs: capacity
// for occupancy validation and the nightly rate for the total.
type RoomTypeSpec struct {
	ID           uuid.UUID
	HotelID      uuid.UUID
	NightlyCents int64
	MaxOccupancy int
}

// Reservation is a guest's claim on one physical unit for a stay range.
// After creation the only permitted mutation is a status transition; a date
// or unit change is cancel plus recreate.
type Reservation struct {
	id            uuid.UUID
	guestID       uuid.UUID
	hotelID       uuid.UUID
	roomTypeID    uuid.UUID
	unit          int
	stay          StayRange
	adults        int
	children      int
	total         Money
	paymentStatus PaymentStatus
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation builds a Confirmed reservation for an already-allocated
// unit. Admission control decides the unit; this constructor only enforces
// guest-facing validation.
func NewReservation(spec RoomTypeSpec, guestID uuid.UUID, unit int, stay StayRange, adults, children int) (*Reservation, error) {
	if adults < 1 || children < 0 {
		return nil, ErrInvalidOccupants
	}
	if adults+children > spec.MaxOccupancy {
		return nil, ErrOccupancyExceeded
	}

	total, err := NewMoney(int64(stay.Nights()) * spec.NightlyCents)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:            uuid.New(),
		guestID:       guestID,
		hotelID:       spec.HotelID,
		roomTypeID:    spec.ID,
		unit:          unit,
		stay:          stay,
		adults:        adults,
		children:      children,
		total:         total,
		paymentStatus: PaymentUnpaid,
		status:        StatusConfirmed,
	}, nil
}

func ReconstructReservation(
	id, guestID, hotelID, roomTypeID uuid.UUID,
	unit int,
	stay StayRange,
	adults, children int,
	total Money,
	paymentStatus PaymentStatus,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		guestID:       guestID,
		hotelID:       hotelID,
		roomTypeID:    roomTypeID,
		unit:          unit,
		stay:          stay,
		adults:        adults,
		children:      children,
		total:         total,
		paymentStatus: paymentStatus,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) GuestID() uuid.UUID           { return r.guestID }
func (r *Reservation) HotelID() uuid.UUID           { return r.hotelID }
func (r *Reservation) RoomTypeID() uuid.UUID        { return r.roomTypeID }
func (r *Reservation) Unit() int                    { return r.unit }
func (r *Reservation) Stay() StayRange              { return r.stay }
func (r *Reservation) Adults() int                  { return r.adults }
func (r *Reservation) Children() int                { return r.children }
func (r *Reservation) Total() Money                 { return r.total }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

// IsActive reports whether the reservation constrains availability. Only
// Confirmed reservations do.
func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// HasFutureCheckout reports whether the stay still blocks unit removal.
func (r *Reservation) HasFutureCheckout(now time.Time) bool {
	return r.stay.CheckOut().After(now)
}

func (r *Reservation) Cancel() error {
	switch r.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusConfirmed, StatusPending:
		r.status = StatusCancelled
		return nil
	default:
		return ErrNotCancellable
	}
}
