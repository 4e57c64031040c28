package commands

import (
	"context"
	"log/slog"

	"stayline/internal/availability"
	"stayline/internal/pkg/clock"
	"stayline/internal/pkg/errs"
)

// Hydrator rebuilds the in-memory availability state from persisted rows.
// It runs once at startup, before the HTTP server accepts traffic, so no
// lease contention is possible yet.
type Hydrator struct {
	roomTypes    RoomTypeRepository
	reservations ReservationRepository
	registry     *availability.Registry
	clock        clock.Clock
}

func NewHydrator(
	roomTypes RoomTypeRepository,
	reservations ReservationRepository,
	registry *availability.Registry,
	clock clock.Clock,
) *Hydrator {
	return &Hydrator{
		roomTypes:    roomTypes,
		reservations: reservations,
		registry:     registry,
		clock:        clock,
	}
}

// Hydrate loads every room type's unit pool and re-inserts each confirmed
// reservation whose stay has not yet ended. Past stays can no longer
// overlap any bookable range, so they are left out of the index.
func (h *Hydrator) Hydrate(ctx context.Context) error {
	roomTypes, err := h.roomTypes.ListAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load room types")
	}
	for _, rt := range roomTypes {
		h.registry.GetOrCreate(rt.ID(), rt.Units())
	}

	active, err := h.reservations.ListActiveFrom(ctx, h.clock.Now())
	if err != nil {
		return errs.Wrap(err, "failed to load active reservations")
	}

	var inserted int
	for _, res := range active {
		ledger, ok := h.registry.Get(res.RoomTypeID())
		if !ok {
			slog.Warn("reservation references unknown room type, skipping",
				"reservation_id", res.ID(), "room_type_id", res.RoomTypeID())
			continue
		}
		lease, err := ledger.Acquire(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to acquire ledger during hydration")
		}
		lease.Insert(res.Unit(), res.ID(), res.Stay())
		lease.Release()
		inserted++
	}

	slog.Info("availability state hydrated",
		"room_types", len(roomTypes), "reservations", inserted)
	return nil
}
