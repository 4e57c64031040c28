package queries

import (
	"context"

	"stayline/internal/domain/reservation"
	"stayline/internal/infra"
	"stayline/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*reservation.Reservation, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*reservation.Reservation, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*ReservationView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
}

func NewReservationQueries(reservations ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	res, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return ReservationToView(res), nil
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*ReservationView, error) {
	reservations, err := q.reservations.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return toViews(reservations), nil
}

func (q *reservationQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*ReservationView, error) {
	reservations, err := q.reservations.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return toViews(reservations), nil
}

func toViews(reservations []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, len(reservations))
	for i, res := range reservations {
		views[i] = ReservationToView(res)
	}
	return views
}
