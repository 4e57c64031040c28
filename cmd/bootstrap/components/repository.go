package components

import (
	repo_impl "stayline/internal/infra/repository"
	"stayline/internal/usecase/commands"
	"stayline/internal/usecase/queries"
	"stayline/internal/usecase/shared"

	"stayline/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			shared.NewPgxTxRunner,
			fx.As(new(commands.TxRunner)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewHotelRepository,
			fx.As(new(commands.HotelRepository)),
			fx.As(new(queries.HotelReadStore)),
		),
		fx.Annotate(
			repo_impl.NewRoomTypeRepository,
			fx.As(new(commands.RoomTypeRepository)),
			fx.As(new(queries.RoomTypeReadStore)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
