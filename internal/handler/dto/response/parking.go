package response

import (
	"time"

	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckInResponse struct {
	TicketID    uuid.UUID `json:"ticketId"`
	SpotID      string    `json:"spotId"`
	FloorNumber int       `json:"floorNumber"`
	EntryTime   time.Time `json:"entryTime"`
}

type CheckOutResponse struct {
	TicketID      uuid.UUID `json:"ticketId"`
	EntryTime     time.Time `json:"entryTime"`
	ExitTime      time.Time `json:"exitTime"`
	AmountCharged int64     `json:"amountCharged"`
}

type ClassAvailabilityResponse struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

type FloorStatusResponse struct {
	FloorNumber    int                                  `json:"floorNumber"`
	TotalSpots     int                                  `json:"totalSpots"`
	AvailableSpots int                                  `json:"availableSpots"`
	SpotsByType    map[string]ClassAvailabilityResponse `json:"spotsByType"`
}

type TicketResponse struct {
	TicketID      uuid.UUID  `json:"ticketId"`
	VehicleID     string     `json:"vehicleId"`
	VehicleType   string     `json:"vehicleType"`
	SpotID        string     `json:"spotId"`
	FloorNumber   int        `json:"floorNumber"`
	EntryTime     time.Time  `json:"entryTime"`
	ExitTime      *time.Time `json:"exitTime,omitempty"`
	AmountCharged *int64     `json:"amountCharged,omitempty"`
	PaymentStatus string     `json:"paymentStatus"`
}

type ReconcileResponse struct {
	Reoccupied []string `json:"reoccupied"`
	Released   []string `json:"released"`
}

func FromCheckInResult(r *commands.CheckInResult) *CheckInResponse {
	return &CheckInResponse{
		TicketID:    r.TicketID,
		SpotID:      r.SpotID,
		FloorNumber: r.FloorNumber,
		EntryTime:   r.EntryTime,
	}
}

func FromCheckOutResult(r *commands.CheckOutResult) *CheckOutResponse {
	return &CheckOutResponse{
		TicketID:      r.TicketID,
		EntryTime:     r.EntryTime,
		ExitTime:      r.ExitTime,
		AmountCharged: r.AmountCharged.Amount(),
	}
}

func FromFloorStatusViews(views []queries.FloorStatusView) []FloorStatusResponse {
	out := make([]FloorStatusResponse, len(views))
	for i, v := range views {
		byType := make(map[string]ClassAvailabilityResponse, len(v.SpotsByType))
		for class, cs := range v.SpotsByType {
			byType[class] = ClassAvailabilityResponse{Total: cs.Total, Available: cs.Available}
		}
		out[i] = FloorStatusResponse{
			FloorNumber:    v.FloorNumber,
			TotalSpots:     v.TotalSpots,
			AvailableSpots: v.AvailableSpots,
			SpotsByType:    byType,
		}
	}
	return out
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	return &TicketResponse{
		TicketID:      v.TicketID,
		VehicleID:     v.VehicleID,
		VehicleType:   v.VehicleType,
		SpotID:        v.SpotID,
		FloorNumber:   v.FloorNumber,
		EntryTime:     v.EntryTime,
		ExitTime:      v.ExitTime,
		AmountCharged: v.AmountCharged,
		PaymentStatus: v.PaymentStatus,
	}
}

func FromReconcileReport(r *commands.ReconcileReport) *ReconcileResponse {
	resp := &ReconcileResponse{
		Reoccupied: r.Reoccupied,
		Released:   r.Released,
	}
	if resp.Reoccupied == nil {
		resp.Reoccupied = []string{}
	}
	if resp.Released == nil {
		resp.Released = []string{}
	}
	return resp
}
