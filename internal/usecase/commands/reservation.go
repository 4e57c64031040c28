package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayline/internal/availability"
	"stayline/internal/domain/reservation"
	"stayline/internal/domain/user"
	"stayline/internal/infra"
	"stayline/internal/infra/db"
	"stayline/internal/metrics"
	"stayline/internal/pkg/clock"
	"stayline/internal/pkg/errs"
	"stayline/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrRoomTypeNotFound    = errs.New("room type not found")
	ErrInvalidStay         = errs.New("invalid stay range")
	ErrInvalidOccupants    = errs.New("invalid occupant counts")
	ErrUnitPoolEmpty       = errs.New("room type has no units configured")
	ErrNoAvailability      = errs.New("no unit available for the requested stay")
	ErrAdmissionBusy       = errs.New("room type is busy, retry shortly")
	ErrPersistenceFailure  = errs.New("failed to persist booking, retry shortly")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrAlreadyCancelled    = errs.New("reservation is already cancelled")
	ErrNotReservationOwner = errs.New("reservation belongs to another guest")
)

type BookRequest struct {
	RoomTypeID uuid.UUID
	GuestID    uuid.UUID
	CheckIn    string
	CheckOut   string
	Adults     int
	Children   int
}

type ReservationCommands interface {
	Book(ctx context.Context, req BookRequest) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID, callerID uuid.UUID, callerRole user.Role) error
}

type reservationCommandsImpl struct {
	roomTypes        RoomTypeRepository
	reservations     ReservationRepository
	registry         *availability.Registry
	tx               TxRunner
	clock            clock.Clock
	admissionTimeout time.Duration
}

func NewReservationCommands(
	roomTypes RoomTypeRepository,
	reservations ReservationRepository,
	registry *availability.Registry,
	tx TxRunner,
	clock clock.Clock,
	admissionTimeout time.Duration,
) ReservationCommands {
	return &reservationCommandsImpl{
		roomTypes:        roomTypes,
		reservations:     reservations,
		registry:         registry,
		tx:               tx,
		clock:            clock,
		admissionTimeout: admissionTimeout,
	}
}

// Book is the only path that creates a reservation. Validation happens
// before the admission gate is taken; allocation, the interval insert and
// the durable write happen while holding it, so concurrent requests against
// one room type serialize and no two bookings can claim the same unit for
// overlapping nights.
func (c *reservationCommandsImpl) Book(ctx context.Context, req BookRequest) (*queries.ReservationView, error) {
	stay, err := reservation.ParseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		metrics.IncBooking(metrics.OutcomeInvalid)
		return nil, errs.Mark(err, ErrInvalidStay)
	}
	if req.Adults < 1 || req.Children < 0 {
		metrics.IncBooking(metrics.OutcomeInvalid)
		return nil, ErrInvalidOccupants
	}

	rt, err := c.roomTypes.FindByID(ctx, req.RoomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			metrics.IncBooking(metrics.OutcomeInvalid)
			return nil, ErrRoomTypeNotFound
		}
		metrics.IncBooking(metrics.OutcomeError)
		return nil, err
	}
	if req.Adults+req.Children > rt.MaxOccupancy() {
		metrics.IncBooking(metrics.OutcomeInvalid)
		return nil, errs.Mark(reservation.ErrOccupancyExceeded, ErrInvalidOccupants)
	}

	ledger := c.registry.GetOrCreate(rt.ID(), rt.Units())

	admissionCtx, cancel := context.WithTimeout(ctx, c.admissionTimeout)
	defer cancel()

	waitStart := c.clock.Now()
	lease, err := ledger.Acquire(admissionCtx)
	if err != nil {
		metrics.IncBooking(metrics.OutcomeBusy)
		return nil, ErrAdmissionBusy
	}
	defer lease.Release()
	metrics.ObserveAdmissionWait(c.clock.Now().Sub(waitStart))

	unit, err := lease.FindFreeUnit(stay)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrPoolEmpty):
			metrics.IncBooking(metrics.OutcomeInvalid)
			return nil, ErrUnitPoolEmpty
		case errors.Is(err, availability.ErrNoFreeUnit):
			metrics.IncBooking(metrics.OutcomeConflict)
			return nil, ErrNoAvailability
		default:
			metrics.IncBooking(metrics.OutcomeError)
			return nil, err
		}
	}

	res, err := reservation.NewReservation(reservation.RoomTypeSpec{
		ID:           rt.ID(),
		HotelID:      rt.HotelID(),
		NightlyCents: rt.NightlyCents(),
		MaxOccupancy: rt.MaxOccupancy(),
	}, req.GuestID, unit, stay, req.Adults, req.Children)
	if err != nil {
		metrics.IncBooking(metrics.OutcomeInvalid)
		return nil, errs.Mark(err, ErrInvalidOccupants)
	}

	lease.Insert(unit, res.ID(), stay)

	persistErr := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return c.reservations.Create(ctx, tx, res)
	})
	if persistErr != nil {
		// The gate is still held, so undoing the in-memory insert cannot
		// race another booking. No phantom interval survives a failed commit.
		lease.Remove(unit, res.ID())
		slog.Error("booking persist failed, interval rolled back",
			"reservation_id", res.ID(), "room_type_id", rt.ID(), "unit", unit, "error", persistErr)
		metrics.IncBooking(metrics.OutcomeError)
		return nil, errs.Mark(persistErr, ErrPersistenceFailure)
	}

	metrics.IncBooking(metrics.OutcomeConfirmed)
	slog.Info("reservation confirmed",
		"reservation_id", res.ID(), "room_type_id", rt.ID(), "unit", unit, "stay", stay.String())
	return queries.ReservationToView(res), nil
}

// Cancel transitions a reservation to Cancelled and frees its interval. The
// durable status change happens before the in-memory removal; if the write
// fails the index still matches the store.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, callerID uuid.UUID, callerRole user.Role) error {
	res, err := c.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return err
	}

	if callerRole != user.RoleAdmin && res.GuestID() != callerID {
		return ErrNotReservationOwner
	}

	if err := res.Cancel(); err != nil {
		if errors.Is(err, reservation.ErrAlreadyCancelled) {
			return ErrAlreadyCancelled
		}
		return err
	}

	ledger, ok := c.registry.Get(res.RoomTypeID())
	if !ok {
		// Room type never hydrated in this process; the status change alone
		// is sufficient.
		return c.persistCancel(ctx, res)
	}

	admissionCtx, cancel := context.WithTimeout(ctx, c.admissionTimeout)
	defer cancel()

	lease, err := ledger.Acquire(admissionCtx)
	if err != nil {
		return ErrAdmissionBusy
	}
	defer lease.Release()

	if err := c.persistCancel(ctx, res); err != nil {
		return err
	}

	lease.Remove(res.Unit(), res.ID())
	metrics.IncCancellation()
	slog.Info("reservation cancelled", "reservation_id", res.ID(), "unit", res.Unit())
	return nil
}

func (c *reservationCommandsImpl) persistCancel(ctx context.Context, res *reservation.Reservation) error {
	err := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return c.reservations.UpdateStatus(ctx, tx, res.ID(), reservation.StatusCancelled)
	})
	if err != nil {
		return errs.Mark(err, ErrPersistenceFailure)
	}
	return nil
}
