package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stayline/internal/availability"
	"stayline/internal/domain/room"
	"stayline/internal/infra"
	"stayline/internal/infra/db"
	"stayline/internal/pkg/clock"
	"stayline/internal/pkg/errs"
	"stayline/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound     = errs.New("hotel not found")
	ErrNotHotelAdmin     = errs.New("caller does not manage this hotel")
	ErrCategoryExists    = errs.New("room type category already exists for this hotel")
	ErrInvalidUnitExpr   = errs.New("unit expression contains no valid units")
	ErrInvalidRoomType   = errs.New("invalid room type attributes")
	ErrUnitsHaveBookings = errs.New("units have future confirmed reservations")
)

// BlockedUnitsError reports which units prevented a removal so the caller
// can retry with a narrower expression. errors.Is matches ErrUnitsHaveBookings.
type BlockedUnitsError struct {
	Units []int
}

func (e *BlockedUnitsError) Error() string {
	return fmt.Sprintf("units %v have future confirmed reservations", e.Units)
}

func (e *BlockedUnitsError) Is(target error) bool {
	return target == ErrUnitsHaveBookings
}

type CreateRoomTypeRequest struct {
	HotelID      uuid.UUID
	Category     string
	NightlyCents int64
	MaxOccupancy int
	Amenities    []string
	Images       []string
	Units        string // unit expression, e.g. "101-105,201"
}

type InventoryCommands interface {
	CreateRoomType(ctx context.Context, req CreateRoomTypeRequest, adminID uuid.UUID) (*queries.RoomTypeView, error)
	AddUnits(ctx context.Context, roomTypeID uuid.UUID, expr string, adminID uuid.UUID) (*queries.RoomTypeView, error)
	RemoveUnits(ctx context.Context, roomTypeID uuid.UUID, expr string, adminID uuid.UUID) (*queries.RoomTypeView, error)
}

type inventoryCommandsImpl struct {
	hotels           HotelRepository
	roomTypes        RoomTypeRepository
	registry         *availability.Registry
	cache            queries.RoomTypeCache
	tx               TxRunner
	clock            clock.Clock
	admissionTimeout time.Duration
}

func NewInventoryCommands(
	hotels HotelRepository,
	roomTypes RoomTypeRepository,
	registry *availability.Registry,
	cache queries.RoomTypeCache,
	tx TxRunner,
	clock clock.Clock,
	admissionTimeout time.Duration,
) InventoryCommands {
	return &inventoryCommandsImpl{
		hotels:           hotels,
		roomTypes:        roomTypes,
		registry:         registry,
		cache:            cache,
		tx:               tx,
		clock:            clock,
		admissionTimeout: admissionTimeout,
	}
}

func (c *inventoryCommandsImpl) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest, adminID uuid.UUID) (*queries.RoomTypeView, error) {
	if err := c.requireHotelAdmin(ctx, req.HotelID, adminID); err != nil {
		return nil, err
	}

	units, err := room.ParseUnits(req.Units)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUnitExpr)
	}

	rt, err := room.NewRoomType(req.HotelID, req.Category, req.NightlyCents, req.MaxOccupancy,
		req.Amenities, req.Images, units)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoomType)
	}

	persistErr := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return c.roomTypes.Create(ctx, tx, rt)
	})
	if persistErr != nil {
		if infra.IsKind(persistErr, infra.KindDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, errs.Mark(persistErr, ErrPersistenceFailure)
	}

	c.registry.GetOrCreate(rt.ID(), rt.Units())
	c.cache.Invalidate(ctx, req.HotelID)
	slog.Info("room type created", "room_type_id", rt.ID(), "hotel_id", req.HotelID, "units", len(rt.Units()))
	return queries.RoomTypeToView(rt), nil
}

// AddUnits grows a room type's pool. Growth cannot invalidate an existing
// allocation; the gate is still taken so pool edits and bookings against
// one room type never interleave.
func (c *inventoryCommandsImpl) AddUnits(ctx context.Context, roomTypeID uuid.UUID, expr string, adminID uuid.UUID) (*queries.RoomTypeView, error) {
	incoming, err := room.ParseUnits(expr)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUnitExpr)
	}

	rt, err := c.loadAuthorized(ctx, roomTypeID, adminID)
	if err != nil {
		return nil, err
	}

	lease, err := c.acquire(ctx, rt)
	if err != nil {
		return nil, err
	}
	defer lease.Release()

	return c.persistPool(ctx, rt, lease, room.MergeUnits(lease.Units(), incoming))
}

// RemoveUnits shrinks the pool. Policy: a unit with a future confirmed
// reservation blocks the whole edit, so retained reservations are never
// orphaned.
func (c *inventoryCommandsImpl) RemoveUnits(ctx context.Context, roomTypeID uuid.UUID, expr string, adminID uuid.UUID) (*queries.RoomTypeView, error) {
	toRemove, err := room.ParseUnits(expr)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUnitExpr)
	}

	rt, err := c.loadAuthorized(ctx, roomTypeID, adminID)
	if err != nil {
		return nil, err
	}

	lease, err := c.acquire(ctx, rt)
	if err != nil {
		return nil, err
	}
	defer lease.Release()

	if blocked := lease.BlockedUnits(toRemove, c.clock.Now()); len(blocked) > 0 {
		return nil, &BlockedUnitsError{Units: blocked}
	}

	return c.persistPool(ctx, rt, lease, room.RemoveUnits(lease.Units(), toRemove))
}

func (c *inventoryCommandsImpl) acquire(ctx context.Context, rt *room.RoomType) (*availability.Lease, error) {
	ledger := c.registry.GetOrCreate(rt.ID(), rt.Units())

	admissionCtx, cancel := context.WithTimeout(ctx, c.admissionTimeout)
	defer cancel()

	lease, err := ledger.Acquire(admissionCtx)
	if err != nil {
		return nil, ErrAdmissionBusy
	}
	return lease, nil
}

// persistPool writes the new pool and, only after the commit, applies it to
// the ledger. The caller holds the lease.
func (c *inventoryCommandsImpl) persistPool(ctx context.Context, rt *room.RoomType, lease *availability.Lease, newPool []int) (*queries.RoomTypeView, error) {
	persistErr := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return c.roomTypes.UpdateUnits(ctx, tx, rt.ID(), newPool)
	})
	if persistErr != nil {
		return nil, errs.Mark(persistErr, ErrPersistenceFailure)
	}

	lease.SetUnits(newPool)
	c.cache.Invalidate(ctx, rt.HotelID())
	slog.Info("unit pool updated", "room_type_id", rt.ID(), "pool_size", len(newPool))

	view := queries.RoomTypeToView(rt)
	view.Units = newPool
	return view, nil
}

func (c *inventoryCommandsImpl) loadAuthorized(ctx context.Context, roomTypeID, adminID uuid.UUID) (*room.RoomType, error) {
	rt, err := c.roomTypes.FindByID(ctx, roomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	if err := c.requireHotelAdmin(ctx, rt.HotelID(), adminID); err != nil {
		return nil, err
	}
	return rt, nil
}

func (c *inventoryCommandsImpl) requireHotelAdmin(ctx context.Context, hotelID, adminID uuid.UUID) error {
	h, err := c.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	if !h.IsManagedBy(adminID) {
		return ErrNotHotelAdmin
	}
	return nil
}
