package converter

import (
	"fmt"
	"math"

	"smart-parking/internal/domain/facility"
	sqlc "smart-parking/internal/infra/sqlc/generated"
	"smart-parking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func SpotFromInfra(row sqlc.Spots) (*facility.Spot, error) {
	class, err := facility.ParseClass(row.SpotClass)
	if err != nil {
		return nil, fmt.Errorf("spot %s: %w", row.SpotID, err)
	}

	var occ *facility.Occupancy
	if row.IsOccupied {
		if !row.VehicleID.Valid || !row.OccupiedSince.Valid {
			return nil, fmt.Errorf("spot %s: occupied without vehicle id or occupied-since", row.SpotID)
		}
		occ = &facility.Occupancy{
			VehicleID: row.VehicleID.String,
			Since:     row.OccupiedSince.Time,
		}
	}

	return facility.ReconstructSpot(row.SpotID, int(row.FloorNumber), int(row.Position), class, occ), nil
}

func SpotsToCreateParams(spots []*facility.Spot) []sqlc.CreateSpotsParams {
	params := make([]sqlc.CreateSpotsParams, 0, len(spots))
	for _, s := range spots {
		params = append(params, sqlc.CreateSpotsParams{
			SpotID:      s.ID(),
			FloorNumber: toInt32(s.FloorNumber()),
			Position:    toInt32(s.Position()),
			SpotClass:   s.Class().String(),
		})
	}
	return params
}

// SpotToOccupancyParams writes the occupancy fields together so the row
// never holds a partial occupancy.
func SpotToOccupancyParams(s *facility.Spot) sqlc.UpdateSpotOccupancyParams {
	params := sqlc.UpdateSpotOccupancyParams{SpotID: s.ID()}
	if occ, ok := s.Occupancy(); ok {
		params.IsOccupied = true
		params.VehicleID = pgtype.Text{String: occ.VehicleID, Valid: true}
		params.OccupiedSince = pgconv.TimeToPgtype(occ.Since)
	}
	return params
}

func toInt32(v int) int32 {
	if v > math.MaxInt32 || v < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", v))
	}
	return int32(v)
}
