package facility

import "errors"

var (
	ErrInvalidClass      = errors.New("invalid vehicle class")
	ErrInvalidLayout     = errors.New("invalid facility layout")
	ErrDuplicateSpot     = errors.New("duplicate spot id")
	ErrSpotNotFound      = errors.New("spot not found")
	ErrSpotOccupied      = errors.New("spot is already occupied")
	ErrSpotNotOccupied   = errors.New("spot is not occupied")
	ErrOccupantMismatch  = errors.New("spot is occupied by another vehicle")
	ErrEmptyVehicleID    = errors.New("vehicle id must not be empty")
	ErrEmptyFacilityName = errors.New("facility name must not be empty")
)
