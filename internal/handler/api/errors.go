package api

import (
	"net/http"

	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var admissionErrors = []errorMapping{
	{commands.ErrInvalidVehicleClass, http.StatusBadRequest, "Invalid vehicle type"},
	{commands.ErrInvalidVehicleID, http.StatusBadRequest, "Invalid vehicle id"},
	{commands.ErrTicketNotFound, http.StatusNotFound, "Ticket not found"},
	{commands.ErrNoAvailableSpot, http.StatusConflict, "No available spot for this vehicle type"},
	{commands.ErrAlreadyCheckedOut, http.StatusConflict, "Ticket already checked out"},
	{commands.ErrAdmissionBusy, http.StatusServiceUnavailable, "Admission is busy, retry shortly"},
	{commands.ErrFacilityNotInitialized, http.StatusServiceUnavailable, "Facility not initialized"},
	{commands.ErrPersistence, http.StatusInternalServerError, "Internal server error"},
}

var queryErrors = []errorMapping{
	{queries.ErrTicketNotFound, http.StatusNotFound, "Ticket not found"},
	{queries.ErrFacilityNotInitialized, http.StatusServiceUnavailable, "Facility not initialized"},
	{queries.ErrQueryFailed, http.StatusInternalServerError, "Internal server error"},
}

func abortWithMapped(c *gin.Context, err error, mappings []errorMapping) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
