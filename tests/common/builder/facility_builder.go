//go:build unit || e2e

package builder

import (
	"time"

	"smart-parking/internal/domain/facility"
	sqlc "smart-parking/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type FacilityBuilder struct {
	Name     string
	Layout   facility.Layout
	Occupied map[string]facility.Occupancy
}

func NewFacilityBuilder() *FacilityBuilder {
	return &FacilityBuilder{
		Name: "Test Facility",
		Layout: facility.Layout{
			Floors:          2,
			SpotsPerFloor:   4,
			BusSpots:        1,
			MotorcycleSpots: 1,
		},
		Occupied: map[string]facility.Occupancy{},
	}
}

func (b *FacilityBuilder) With(mutate func(*FacilityBuilder)) *FacilityBuilder {
	mutate(b)
	return b
}

func (b *FacilityBuilder) WithLayout(floors, spotsPerFloor, bus, motorcycle int) *FacilityBuilder {
	b.Layout = facility.Layout{
		Floors:          floors,
		SpotsPerFloor:   spotsPerFloor,
		BusSpots:        bus,
		MotorcycleSpots: motorcycle,
	}
	return b
}

func (b *FacilityBuilder) WithOccupied(spotID, vehicleID string, since time.Time) *FacilityBuilder {
	b.Occupied[spotID] = facility.Occupancy{VehicleID: vehicleID, Since: since}
	return b
}

// Build methods
func (b *FacilityBuilder) BuildDomain() (*facility.Facility, error) {
	f, err := facility.NewFacility(b.Name, b.Layout)
	if err != nil {
		return nil, err
	}
	for id, occ := range b.Occupied {
		s, ok := f.Spot(id)
		if !ok {
			return nil, facility.ErrSpotNotFound
		}
		if err := s.Occupy(occ.VehicleID, occ.Since); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (b *FacilityBuilder) BuildInfraSpots() []sqlc.Spots {
	spots := b.Layout.Spots()
	out := make([]sqlc.Spots, len(spots))
	for i, s := range spots {
		row := sqlc.Spots{
			SpotID:      s.ID(),
			FloorNumber: int32(s.FloorNumber()),
			Position:    int32(s.Position()),
			SpotClass:   s.Class().String(),
		}
		if occ, ok := b.Occupied[s.ID()]; ok {
			row.IsOccupied = true
			row.VehicleID = pgtype.Text{String: occ.VehicleID, Valid: true}
			row.OccupiedSince = pgtype.Timestamptz{Time: occ.Since, Valid: true}
		}
		out[i] = row
	}
	return out
}
