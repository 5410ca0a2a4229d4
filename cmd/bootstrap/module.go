package bootstrap

import (
	"smart-parking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	PersistenceModule,
	JWTModule,
	EventsModule,
	components.UseCaseModule,
	components.LifecycleModule,
	components.HandlerModule,
)
