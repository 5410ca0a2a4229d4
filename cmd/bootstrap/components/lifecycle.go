package components

import (
	"context"
	"log/slog"

	"smart-parking/internal/infra/telemetry"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"go.uber.org/fx"
)

var LifecycleModule = fx.Module("lifecycle",
	fx.Invoke(RegisterFacilityLifecycle),
)

// RegisterFacilityLifecycle prepares the facility before the HTTP server
// starts accepting traffic. Invoke order matters: this must run after the
// events module so the dispatcher is already consuming.
func RegisterFacilityLifecycle(
	lc fx.Lifecycle,
	cfg config.Config,
	initializer *commands.FacilityInitializer,
	reconciler *commands.Reconciler,
	status queries.FacilityQueries,
	metrics *telemetry.Metrics,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := initializer.Ensure(ctx); err != nil {
				return err
			}

			// Seed the gauge before reconciling; reconciliation events are
			// deltas against this snapshot.
			floors, err := status.Status(ctx)
			if err != nil {
				return err
			}
			for _, f := range floors {
				metrics.SetFloorOccupancy(f.FloorNumber, f.TotalSpots-f.AvailableSpots)
			}

			if cfg.Admission.ReconcileOnStart {
				if _, err := reconciler.Reconcile(ctx); err != nil {
					return err
				}
			}
			slog.Info("facility ready", "floors", len(floors))
			return nil
		},
	})
}
