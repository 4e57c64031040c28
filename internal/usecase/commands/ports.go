package commands

import (
	"context"
	"time"

	"stayline/internal/domain/hotel"
	"stayline/internal/domain/reservation"
	"stayline/internal/domain/room"
	"stayline/internal/domain/user"
	"stayline/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type HotelRepository interface {
	Create(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error
	Update(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
}

type RoomTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, rt *room.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.RoomType, error)
	UpdateUnits(ctx context.Context, tx db.DBTX, id uuid.UUID, units []int) error
	ListAll(ctx context.Context) ([]*room.RoomType, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
	ListActiveFrom(ctx context.Context, cutoff time.Time) ([]*reservation.Reservation, error)
}

// TxRunner runs fn inside one database transaction. The booking path relies
// on this being a single durable commit.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx db.DBTX) error) error
}
