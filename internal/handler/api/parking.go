package api

import (
	"net/http"

	reqdto "smart-parking/internal/handler/dto/request"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	admission commands.AdmissionCommands
	facility  queries.FacilityQueries
	tickets   queries.TicketQueries
}

func NewParkingHandler(admission commands.AdmissionCommands, facility queries.FacilityQueries, tickets queries.TicketQueries) *ParkingHandler {
	return &ParkingHandler{
		admission: admission,
		facility:  facility,
		tickets:   tickets,
	}
}

// @Summary Check in a vehicle
// @Description Allocate the lowest free spot that fits the vehicle and open a ticket
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 201 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/check-in [post]
func (h *ParkingHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.admission.CheckIn(c.Request.Context(), req.VehicleID, req.VehicleType)
	if err != nil {
		abortWithMapped(c, err, admissionErrors)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckInResult(result))
}

// @Summary Check out a vehicle
// @Description Close the ticket, charge the fee and free the spot
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.CheckOutRequest true "Check-out request"
// @Success 200 {object} resdto.CheckOutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/check-out [post]
func (h *ParkingHandler) CheckOut(c *gin.Context) {
	var req reqdto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.admission.CheckOut(c.Request.Context(), req.TicketID)
	if err != nil {
		abortWithMapped(c, err, admissionErrors)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckOutResult(result))
}

// @Summary Facility status
// @Description Per-floor availability ordered by floor number
// @Tags parking
// @Produce json
// @Success 200 {array} resdto.FloorStatusResponse
// @Failure 503 {object} httperr.Response
// @Router /api/status [get]
func (h *ParkingHandler) Status(c *gin.Context) {
	views, err := h.facility.Status(c.Request.Context())
	if err != nil {
		abortWithMapped(c, err, queryErrors)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFloorStatusViews(views))
}

// @Summary Get ticket
// @Description Look up a ticket, open or closed
// @Tags parking
// @Produce json
// @Param ticketId path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Router /api/tickets/{ticketId} [get]
func (h *ParkingHandler) GetTicket(c *gin.Context) {
	view, err := h.tickets.GetByTicketID(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		abortWithMapped(c, err, queryErrors)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}
