package commands

import (
	"context"
	"errors"

	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/lock"
)

var (
	ErrInvalidVehicleClass    = errs.New("invalid vehicle class")
	ErrInvalidVehicleID       = errs.New("invalid vehicle id")
	ErrNoAvailableSpot        = errs.New("no available spot")
	ErrTicketNotFound         = errs.New("ticket not found")
	ErrAlreadyCheckedOut      = errs.New("ticket already checked out")
	ErrPersistence            = errs.New("persistence failure")
	ErrFacilityNotInitialized = errs.New("facility not initialized")
	ErrAdmissionBusy          = errs.New("admission busy")
)

var knownErrors = []error{
	ErrInvalidVehicleClass,
	ErrInvalidVehicleID,
	ErrNoAvailableSpot,
	ErrTicketNotFound,
	ErrAlreadyCheckedOut,
	ErrPersistence,
	ErrFacilityNotInitialized,
	ErrAdmissionBusy,
}

// markUnknown tags anything that is not already one of our sentinels as a
// persistence failure; commit errors reach us unclassified.
func markUnknown(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range knownErrors {
		if errs.Is(err, known) {
			return err
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errs.Mark(err, ErrPersistence)
}

func markLockErr(err error) error {
	if errors.Is(err, lock.ErrTimeout) {
		return errs.Mark(err, ErrAdmissionBusy)
	}
	return errs.Wrap(err, "waiting for admission lock")
}

func markLoadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrFacilityNotInitialized)
	}
	return errs.Mark(err, ErrPersistence)
}
