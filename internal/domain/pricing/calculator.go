package pricing

import (
	"fmt"
	"time"

	"smart-parking/internal/domain/facility"
)

// Rates are hourly, per vehicle class.
type Rates struct {
	Motorcycle int64
	Car        int64
	Bus        int64
}

func DefaultRates() Rates {
	return Rates{
		Motorcycle: 2,
		Car:        5,
		Bus:        10,
	}
}

func (r Rates) Validate() error {
	if r.Motorcycle < 0 || r.Car < 0 || r.Bus < 0 {
		return fmt.Errorf("rates must not be negative: %+v", r)
	}
	return nil
}

// For panics on an unknown class; callers validate classes at the boundary.
func (r Rates) For(c facility.Class) int64 {
	switch c {
	case facility.ClassMotorcycle:
		return r.Motorcycle
	case facility.ClassCar:
		return r.Car
	case facility.ClassBus:
		return r.Bus
	default:
		panic(fmt.Sprintf("pricing: no rate for vehicle class %q", c))
	}
}

type Calculator interface {
	CalculateFee(class facility.Class, entry, exit time.Time) Money
}

type HourlyCalculator struct {
	rates Rates
}

func NewHourlyCalculator(rates Rates) *HourlyCalculator {
	return &HourlyCalculator{rates: rates}
}

func (c *HourlyCalculator) Rates() Rates {
	return c.rates
}

func (c *HourlyCalculator) CalculateFee(class facility.Class, entry, exit time.Time) Money {
	rate := c.rates.For(class)
	return Money{amount: BilledHours(entry, exit) * rate}
}

// BilledHours rounds the stay up to whole hours. A zero or negative stay
// bills nothing.
func BilledHours(entry, exit time.Time) int64 {
	d := exit.Sub(entry)
	if d <= 0 {
		return 0
	}
	return int64((d + time.Hour - 1) / time.Hour)
}
