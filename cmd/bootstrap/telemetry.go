package bootstrap

import (
	"context"

	"smart-parking/internal/infra/telemetry"
	"smart-parking/internal/pkg/config"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTracing,
		NewTracerProvider,
		telemetry.NewMetrics,
	),
)

func NewTracing(lc fx.Lifecycle, cfg config.Config) (*telemetry.Tracing, error) {
	tracing, err := telemetry.NewTracing(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracing.Shutdown(ctx)
		},
	})

	return tracing, nil
}

func NewTracerProvider(t *telemetry.Tracing) trace.TracerProvider {
	return t.Provider
}
