package repository

import (
	"context"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/repository/converter"
	sqlc "smart-parking/internal/infra/sqlc/generated"
)

type FacilityQueries interface {
	GetFacility(ctx context.Context, db sqlc.DBTX) (sqlc.Facilities, error)
	CreateFacility(ctx context.Context, db sqlc.DBTX, name string) (int64, error)
	CreateSpots(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateSpotsParams) (int64, error)
	ListSpots(ctx context.Context, db sqlc.DBTX) ([]sqlc.Spots, error)
	GetSpot(ctx context.Context, db sqlc.DBTX, spotID string) (sqlc.Spots, error)
	UpdateSpotOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSpotOccupancyParams) (int64, error)
}

type FacilityRepository struct {
	queries FacilityQueries
	db      sqlc.DBTX
}

func NewFacilityRepository(queries FacilityQueries, db sqlc.DBTX) *FacilityRepository {
	return &FacilityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FacilityRepository) Load(ctx context.Context) (*facility.Facility, error) {
	row, err := r.queries.GetFacility(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get facility", err)
	}

	spotRows, err := r.queries.ListSpots(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}

	spots := make([]*facility.Spot, 0, len(spotRows))
	for _, sr := range spotRows {
		s, err := converter.SpotFromInfra(sr)
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to convert spot", err)
		}
		spots = append(spots, s)
	}

	f, err := facility.ReconstructFacility(row.Name, spots)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to reconstruct facility", err)
	}
	return f, nil
}

func (r *FacilityRepository) Create(ctx context.Context, f *facility.Facility) (bool, error) {
	inserted, err := r.queries.CreateFacility(ctx, r.db, f.Name())
	if err != nil {
		return false, infra.WrapRepoErr("failed to create facility", err)
	}
	if inserted == 0 {
		return false, nil
	}

	params := converter.SpotsToCreateParams(f.Spots())
	copied, err := r.queries.CreateSpots(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create spots", err)
	}
	if copied != int64(len(params)) {
		return false, infra.NewRepoErr(infra.KindDBFailure, "spot count mismatch after copy", nil)
	}
	return true, nil
}

func (r *FacilityRepository) FindSpot(ctx context.Context, spotID string) (*facility.Spot, error) {
	row, err := r.queries.GetSpot(ctx, r.db, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get spot", err)
	}

	s, err := converter.SpotFromInfra(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to convert spot", err)
	}
	return s, nil
}

func (r *FacilityRepository) SaveSpot(ctx context.Context, s *facility.Spot) error {
	affected, err := r.queries.UpdateSpotOccupancy(ctx, r.db, converter.SpotToOccupancyParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update spot occupancy", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "spot not found: "+s.ID(), nil)
	}
	return nil
}
