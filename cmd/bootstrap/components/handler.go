package components

import (
	"smart-parking/internal/handler"
	"smart-parking/internal/handler/api"
	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/infra/realtime"
	"smart-parking/internal/infra/telemetry"
	"smart-parking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewParkingHandler,
		api.NewAdminHandler,
		func(hub *realtime.Hub) *api.EventsHandler {
			return api.NewEventsHandler(hub)
		},
		func(svc *jwt.Service) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(svc)
		},
		func(m *telemetry.Metrics) handler.MetricsExporter {
			return m
		},
		func(p *api.ParkingHandler, e *api.EventsHandler, a *api.AdminHandler, auth *middleware.AuthMiddleware) handler.Handlers {
			return handler.Handlers{Parking: p, Events: e, Admin: a, Auth: auth}
		},
	),
	fx.Invoke(handler.NewRouter),
)
