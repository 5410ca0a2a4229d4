package facility

type Allocation struct {
	SpotID      string
	FloorNumber int
}

// FindAvailableSpot returns the first free spot that accepts the vehicle,
// scanning floors in ascending order and spots in position order.
func FindAvailableSpot(f *Facility, vehicle Class) (Allocation, bool) {
	if f == nil || !vehicle.Valid() {
		return Allocation{}, false
	}
	for _, fl := range f.floors {
		for _, id := range fl.spotIDs {
			s := f.spots[id]
			if s.IsFree() && s.class.Accepts(vehicle) {
				return Allocation{SpotID: s.id, FloorNumber: fl.number}, true
			}
		}
	}
	return Allocation{}, false
}
