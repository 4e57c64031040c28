package repository

import (
	"context"
	"time"

	"stayline/internal/domain/reservation"
	"stayline/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const insertReservation = `
INSERT INTO reservations (id, guest_id, hotel_id, room_type_id, unit, check_in, check_out,
                          adults, children, total_cents, payment_status, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	_, err := tx.Exec(ctx, insertReservation,
		res.ID(), res.GuestID(), res.HotelID(), res.RoomTypeID(), res.Unit(),
		res.Stay().CheckIn(), res.Stay().CheckOut(),
		res.Adults(), res.Children(), res.Total().Cents(),
		res.PaymentStatus().String(), res.Status().String())
	if err != nil {
		return wrapQueryErr("failed to create reservation", err)
	}
	return nil
}

const updateReservationStatus = `
UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1
`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := tx.Exec(ctx, updateReservationStatus, id, status.String())
	if err != nil {
		return wrapQueryErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapQueryErr("reservation not found", pgx.ErrNoRows)
	}
	return nil
}

const selectReservation = `
SELECT id, guest_id, hotel_id, room_type_id, unit, check_in, check_out,
       adults, children, total_cents, payment_status, status, created_at, updated_at
FROM reservations
`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, selectReservation+` WHERE id = $1`, id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find reservation by id", err)
	}
	return res, nil
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, selectReservation+` WHERE guest_id = $1 ORDER BY check_in DESC`, guestID)
	if err != nil {
		return nil, wrapQueryErr("failed to list reservations by guest", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, selectReservation+` WHERE hotel_id = $1 ORDER BY check_in`, hotelID)
	if err != nil {
		return nil, wrapQueryErr("failed to list reservations by hotel", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// ListActiveFrom returns confirmed reservations whose check-out is on or
// after the cutoff. Ledger hydration replays these into the interval index.
func (r *ReservationRepository) ListActiveFrom(ctx context.Context, cutoff time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx,
		selectReservation+` WHERE status = $1 AND check_out >= $2 ORDER BY check_in`,
		reservation.StatusConfirmed.String(), cutoff)
	if err != nil {
		return nil, wrapQueryErr("failed to list active reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	var reservations []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan reservation row", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate reservation rows", err)
	}
	return reservations, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, guestID, hotelID, roomTypeID uuid.UUID
		unit                             int
		checkIn, checkOut                time.Time
		adults, children                 int
		totalCents                       int64
		paymentStatus, status            string
		createdAt, updatedAt             time.Time
	)
	if err := row.Scan(&id, &guestID, &hotelID, &roomTypeID, &unit, &checkIn, &checkOut,
		&adults, &children, &totalCents, &paymentStatus, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	total, err := reservation.NewMoney(totalCents)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, guestID, hotelID, roomTypeID, unit, stay, adults, children, total,
		reservation.PaymentStatus(paymentStatus), reservation.Status(status),
		createdAt, updatedAt), nil
}
