package facility

import "fmt"

// Layout describes a uniform facility: every floor has the same number of
// spots, with a block of bus spots first, then motorcycle spots, then cars.
type Layout struct {
	Floors          int
	SpotsPerFloor   int
	BusSpots        int
	MotorcycleSpots int
}

func DefaultLayout() Layout {
	return Layout{
		Floors:          5,
		SpotsPerFloor:   50,
		BusSpots:        5,
		MotorcycleSpots: 10,
	}
}

func (l Layout) Validate() error {
	if l.Floors <= 0 || l.SpotsPerFloor <= 0 {
		return fmt.Errorf("%w: floors and spots per floor must be positive", ErrInvalidLayout)
	}
	if l.BusSpots < 0 || l.MotorcycleSpots < 0 {
		return fmt.Errorf("%w: block sizes must not be negative", ErrInvalidLayout)
	}
	if l.BusSpots+l.MotorcycleSpots > l.SpotsPerFloor {
		return fmt.Errorf("%w: bus and motorcycle blocks exceed spots per floor", ErrInvalidLayout)
	}
	return nil
}

// ClassAt returns the class of the spot at a 1-based position on any floor.
func (l Layout) ClassAt(position int) Class {
	switch {
	case position <= l.BusSpots:
		return ClassBus
	case position <= l.BusSpots+l.MotorcycleSpots:
		return ClassMotorcycle
	default:
		return ClassCar
	}
}

func (l Layout) Spots() []*Spot {
	spots := make([]*Spot, 0, l.Floors*l.SpotsPerFloor)
	for floor := 1; floor <= l.Floors; floor++ {
		for pos := 1; pos <= l.SpotsPerFloor; pos++ {
			spots = append(spots, NewSpot(SpotID(floor, pos), floor, pos, l.ClassAt(pos)))
		}
	}
	return spots
}

func SpotID(floorNumber, position int) string {
	return fmt.Sprintf("F%dS%d", floorNumber, position)
}
