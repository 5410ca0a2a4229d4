package components

import (
	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"
	"smart-parking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(pricing.Calculator)),
	),
	func(cfg config.Config) *commands.AdmissionLocks {
		return commands.NewAdmissionLocks(cfg.Admission.LockTimeout)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAdmissionUseCase,
		NewFacilityInitializer,
		fx.Annotate(
			commands.NewReconciler,
			fx.As(fx.Self()),
			fx.As(new(commands.ReconcileCommands)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFacilityQueries,
		queries.NewTicketQueries,
	),
)

func NewPriceCalculator(cfg config.Config) (*pricing.HourlyCalculator, error) {
	rates := pricing.Rates{
		Motorcycle: cfg.Pricing.MotorcycleRate,
		Car:        cfg.Pricing.CarRate,
		Bus:        cfg.Pricing.BusRate,
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return pricing.NewHourlyCalculator(rates), nil
}

func NewFacilityInitializer(uow shared.UnitOfWork, cfg config.Config) (*commands.FacilityInitializer, error) {
	layout := facility.Layout{
		Floors:          cfg.Facility.Floors,
		SpotsPerFloor:   cfg.Facility.SpotsPerFloor,
		BusSpots:        cfg.Facility.BusSpots,
		MotorcycleSpots: cfg.Facility.MotorcycleSpots,
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return commands.NewFacilityInitializer(uow, cfg.Facility.Name, layout), nil
}
