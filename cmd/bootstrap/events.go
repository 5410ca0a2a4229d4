package bootstrap

import (
	"context"

	"smart-parking/internal/infra/events"
	"smart-parking/internal/infra/realtime"
	"smart-parking/internal/infra/telemetry"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewHub,
		fx.Annotate(
			NewDispatcher,
			fx.As(fx.Self()),
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewHub(lc fx.Lifecycle, cfg config.Config) *realtime.Hub {
	hub := realtime.NewHub(cfg.Events.BufferSize)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			hub.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return hub.Stop(ctx)
		},
	})
	return hub
}

// The dispatcher is started before the facility lifecycle hooks so that
// reconciliation events reach the hub and metrics.
func NewDispatcher(lc fx.Lifecycle, cfg config.Config, hub *realtime.Hub, metrics *telemetry.Metrics) *events.Dispatcher {
	d := events.NewDispatcher(cfg.Events.BufferSize)
	d.Subscribe(hub)
	d.Subscribe(metrics)
	metrics.RegisterDroppedEvents(d.Dropped)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}
