package facility

import (
	"fmt"
	"slices"
	"strings"
)

type Floor struct {
	number  int
	spotIDs []string
}

func (f Floor) Number() int { return f.number }

func (f Floor) SpotIDs() []string {
	return slices.Clone(f.spotIDs)
}

// Facility holds spots in an arena keyed by spot id. Floors keep the
// ordered spot ids, so lookups never scan and iteration order is stable.
type Facility struct {
	name   string
	spots  map[string]*Spot
	floors []Floor
}

func NewFacility(name string, layout Layout) (*Facility, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return ReconstructFacility(name, layout.Spots())
}

// ReconstructFacility orders floors by number and spots by position.
func ReconstructFacility(name string, spots []*Spot) (*Facility, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyFacilityName
	}

	f := &Facility{
		name:  name,
		spots: make(map[string]*Spot, len(spots)),
	}

	sorted := slices.Clone(spots)
	slices.SortStableFunc(sorted, func(a, b *Spot) int {
		if a.floorNumber != b.floorNumber {
			return a.floorNumber - b.floorNumber
		}
		return a.position - b.position
	})

	for _, s := range sorted {
		if _, dup := f.spots[s.id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpot, s.id)
		}
		f.spots[s.id] = s

		n := len(f.floors)
		if n == 0 || f.floors[n-1].number != s.floorNumber {
			f.floors = append(f.floors, Floor{number: s.floorNumber})
			n++
		}
		f.floors[n-1].spotIDs = append(f.floors[n-1].spotIDs, s.id)
	}

	return f, nil
}

func (f *Facility) Name() string { return f.name }

func (f *Facility) Floors() []Floor {
	out := make([]Floor, len(f.floors))
	for i, fl := range f.floors {
		out[i] = Floor{number: fl.number, spotIDs: slices.Clone(fl.spotIDs)}
	}
	return out
}

func (f *Facility) Spot(id string) (*Spot, bool) {
	s, ok := f.spots[id]
	return s, ok
}

// Spots returns every spot in floor then position order.
func (f *Facility) Spots() []*Spot {
	out := make([]*Spot, 0, len(f.spots))
	for _, fl := range f.floors {
		for _, id := range fl.spotIDs {
			out = append(out, f.spots[id])
		}
	}
	return out
}

func (f *Facility) SpotCount() int {
	return len(f.spots)
}
