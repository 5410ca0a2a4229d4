package queries

import (
	"context"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/shared"
)

var (
	ErrFacilityNotInitialized = errs.New("facility not initialized")
	ErrQueryFailed            = errs.New("query failed")
)

type ClassAvailabilityView struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

type FloorStatusView struct {
	FloorNumber    int                              `json:"floorNumber"`
	TotalSpots     int                              `json:"totalSpots"`
	AvailableSpots int                              `json:"availableSpots"`
	SpotsByType    map[string]ClassAvailabilityView `json:"spotsByType"`
}

type FacilityQueries interface {
	Status(ctx context.Context) ([]FloorStatusView, error)
}

type facilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewFacilityQueries(uow shared.UnitOfWork) FacilityQueries {
	return &facilityQueriesImpl{uow: uow}
}

// Status takes no admission lock; the result may trail in-flight check-ins.
func (q *facilityQueriesImpl) Status(ctx context.Context) ([]FloorStatusView, error) {
	var f *facility.Facility
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		f, err = tx.Facilities().Load(ctx)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrFacilityNotInitialized)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	summaries := facility.Summarize(f)
	out := make([]FloorStatusView, 0, len(summaries))
	for _, s := range summaries {
		byType := make(map[string]ClassAvailabilityView, len(s.ByClass))
		for class, cs := range s.ByClass {
			byType[class.String()] = ClassAvailabilityView{Total: cs.Total, Available: cs.Available}
		}
		out = append(out, FloorStatusView{
			FloorNumber:    s.FloorNumber,
			TotalSpots:     s.TotalSpots,
			AvailableSpots: s.AvailableSpots,
			SpotsByType:    byType,
		})
	}
	return out, nil
}
