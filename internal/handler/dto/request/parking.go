package request

// Class and id are validated by the admission commands, so binding only
// rejects missing fields.
type CheckInRequest struct {
	VehicleID   string `json:"vehicleId" binding:"required"`
	VehicleType string `json:"vehicleType" binding:"required"`
}

type CheckOutRequest struct {
	TicketID string `json:"ticketId" binding:"required"`
}
