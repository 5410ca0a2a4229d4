package facility

// Class is used both for vehicles and for the spots that accept them.
type Class string

const (
	ClassMotorcycle Class = "motorcycle"
	ClassCar        Class = "car"
	ClassBus        Class = "bus"
)

// Classes lists every class from smallest to largest.
var Classes = []Class{ClassMotorcycle, ClassCar, ClassBus}

// ParseClass accepts only the exact lowercase class names.
func ParseClass(s string) (Class, error) {
	c := Class(s)
	if !c.Valid() {
		return "", ErrInvalidClass
	}
	return c, nil
}

func (c Class) String() string {
	return string(c)
}

func (c Class) Valid() bool {
	return c.size() >= 0
}

// Accepts reports whether a spot of class c can hold a vehicle of class v.
// A spot holds any vehicle that is the same size or smaller.
func (c Class) Accepts(v Class) bool {
	if !c.Valid() || !v.Valid() {
		return false
	}
	return c.size() >= v.size()
}

func (c Class) size() int {
	switch c {
	case ClassMotorcycle:
		return 0
	case ClassCar:
		return 1
	case ClassBus:
		return 2
	default:
		return -1
	}
}
