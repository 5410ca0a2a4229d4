package commands

import (
	"context"
	"log/slog"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/shared"
)

// FacilityInitializer creates the facility on first boot. An existing
// facility is kept as stored even if the configured layout has changed.
type FacilityInitializer struct {
	uow    shared.UnitOfWork
	name   string
	layout facility.Layout
}

func NewFacilityInitializer(uow shared.UnitOfWork, name string, layout facility.Layout) *FacilityInitializer {
	return &FacilityInitializer{
		uow:    uow,
		name:   name,
		layout: layout,
	}
}

func (i *FacilityInitializer) Ensure(ctx context.Context) (bool, error) {
	f, err := facility.NewFacility(i.name, i.layout)
	if err != nil {
		return false, errs.Wrap(err, "build facility from layout")
	}

	var created bool
	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Facilities().Create(ctx, f)
		return err
	})
	if err != nil {
		return false, errs.Mark(err, ErrPersistence)
	}

	if created {
		slog.InfoContext(ctx, "facility created",
			slog.String("name", i.name),
			slog.Int("floors", i.layout.Floors),
			slog.Int("spots", f.SpotCount()))
	} else {
		slog.InfoContext(ctx, "facility already exists, keeping stored layout")
	}
	return created, nil
}
