package facility

import (
	"strings"
	"time"
)

type Occupancy struct {
	VehicleID string
	Since     time.Time
}

// Spot is the unit of allocation. Occupancy is either fully set or absent;
// it only changes through Occupy and Release.
type Spot struct {
	id          string
	floorNumber int
	position    int
	class       Class
	occupancy   *Occupancy
}

func NewSpot(id string, floorNumber, position int, class Class) *Spot {
	return &Spot{
		id:          id,
		floorNumber: floorNumber,
		position:    position,
		class:       class,
	}
}

func ReconstructSpot(id string, floorNumber, position int, class Class, occupancy *Occupancy) *Spot {
	s := NewSpot(id, floorNumber, position, class)
	if occupancy != nil {
		occ := *occupancy
		s.occupancy = &occ
	}
	return s
}

func (s *Spot) ID() string       { return s.id }
func (s *Spot) FloorNumber() int { return s.floorNumber }
func (s *Spot) Position() int    { return s.position }
func (s *Spot) Class() Class     { return s.class }
func (s *Spot) IsFree() bool     { return s.occupancy == nil }

func (s *Spot) Occupancy() (Occupancy, bool) {
	if s.occupancy == nil {
		return Occupancy{}, false
	}
	return *s.occupancy, true
}

func (s *Spot) HeldBy(vehicleID string) bool {
	return s.occupancy != nil && s.occupancy.VehicleID == vehicleID
}

func (s *Spot) Occupy(vehicleID string, since time.Time) error {
	if strings.TrimSpace(vehicleID) == "" {
		return ErrEmptyVehicleID
	}
	if s.occupancy != nil {
		return ErrSpotOccupied
	}
	s.occupancy = &Occupancy{VehicleID: vehicleID, Since: since}
	return nil
}

// Release frees the spot only when it is held by vehicleID.
func (s *Spot) Release(vehicleID string) error {
	if s.occupancy == nil {
		return ErrSpotNotOccupied
	}
	if s.occupancy.VehicleID != vehicleID {
		return ErrOccupantMismatch
	}
	s.occupancy = nil
	return nil
}

// ForceRelease frees the spot regardless of the occupant.
func (s *Spot) ForceRelease() {
	s.occupancy = nil
}

func (s *Spot) Clone() *Spot {
	return ReconstructSpot(s.id, s.floorNumber, s.position, s.class, s.occupancy)
}
