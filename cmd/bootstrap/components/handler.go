package components

import (
	"stayline/internal/handler"
	"stayline/internal/handler/api"
	"stayline/internal/handler/middleware"
	"stayline/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.Booking)
		},
		func(
			auth *api.AuthHandler,
			hotel *api.HotelHandler,
			room *api.RoomHandler,
			reservation *api.ReservationHandler,
			report *api.ReportHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Hotel:       hotel,
				Room:        room,
				Reservation: reservation,
				Report:      report,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
