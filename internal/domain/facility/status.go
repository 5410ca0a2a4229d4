package facility

type ClassSummary struct {
	Total     int
	Available int
}

type FloorSummary struct {
	FloorNumber    int
	TotalSpots     int
	AvailableSpots int
	ByClass        map[Class]ClassSummary
}

// Summarize reports occupancy per floor in ascending floor order. Every
// class appears in ByClass even when a floor has no spot of that class.
func Summarize(f *Facility) []FloorSummary {
	out := make([]FloorSummary, 0, len(f.floors))
	for _, fl := range f.floors {
		sum := FloorSummary{
			FloorNumber: fl.number,
			ByClass:     make(map[Class]ClassSummary, len(Classes)),
		}
		for _, c := range Classes {
			sum.ByClass[c] = ClassSummary{}
		}
		for _, id := range fl.spotIDs {
			s := f.spots[id]
			cs := sum.ByClass[s.class]
			cs.Total++
			sum.TotalSpots++
			if s.IsFree() {
				cs.Available++
				sum.AvailableSpots++
			}
			sum.ByClass[s.class] = cs
		}
		out = append(out, sum)
	}
	return out
}
