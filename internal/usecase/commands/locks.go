package commands

import (
	"time"

	"smart-parking/internal/pkg/lock"
)

// AdmissionLocks are shared by every writer of spot occupancy in this process.
type AdmissionLocks struct {
	Facility *lock.Mutex
	Tickets  *lock.KeyedMutex
}

func NewAdmissionLocks(timeout time.Duration) *AdmissionLocks {
	return &AdmissionLocks{
		Facility: lock.NewMutex(timeout),
		Tickets:  lock.NewKeyedMutex(timeout),
	}
}
