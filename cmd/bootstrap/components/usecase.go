package components

import (
	"context"

	"stayline/internal/availability"
	"stayline/internal/infra/cache"
	"stayline/internal/pkg/clock"
	"stayline/internal/pkg/config"
	"stayline/internal/usecase/commands"
	"stayline/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(hydrateAvailability),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	availability.NewRegistry,
	fx.Annotate(
		func(c *cache.RoomTypeCache) *cache.RoomTypeCache { return c },
		fx.As(new(queries.RoomTypeCache)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		func(
			roomTypes commands.RoomTypeRepository,
			reservations commands.ReservationRepository,
			registry *availability.Registry,
			tx commands.TxRunner,
			clk clock.Clock,
			cfg config.Config,
		) commands.ReservationCommands {
			return commands.NewReservationCommands(roomTypes, reservations, registry, tx, clk,
				cfg.Booking.AdmissionTimeout)
		},
		func(
			hotels commands.HotelRepository,
			roomTypes commands.RoomTypeRepository,
			registry *availability.Registry,
			roomTypeCache queries.RoomTypeCache,
			tx commands.TxRunner,
			clk clock.Clock,
			cfg config.Config,
		) commands.InventoryCommands {
			return commands.NewInventoryCommands(hotels, roomTypes, registry, roomTypeCache, tx, clk,
				cfg.Booking.AdmissionTimeout)
		},
		commands.NewHotelCommands,
		commands.NewHydrator,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
		queries.NewReservationQueries,
	),
)

func hydrateAvailability(lc fx.Lifecycle, hydrator *commands.Hydrator) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return hydrator.Hydrate(ctx)
		},
	})
}
