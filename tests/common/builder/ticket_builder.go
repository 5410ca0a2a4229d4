//go:build unit || e2e

package builder

import (
	"time"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/domain/ticket"
	reqdto "smart-parking/internal/handler/dto/request"
	sqlc "smart-parking/internal/infra/sqlc/generated"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TicketBuilder struct {
	TicketID      uuid.UUID
	VehicleID     string
	VehicleClass  facility.Class
	SpotID        string
	FloorNumber   int
	EntryTime     time.Time
	ExitTime      *time.Time
	AmountCharged *int64
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		TicketID:     uuid.New(),
		VehicleID:    "ABC-123",
		VehicleClass: facility.ClassCar,
		SpotID:       "F1S3",
		FloorNumber:  1,
		EntryTime:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) WithVehicle(vehicleID string, class facility.Class) *TicketBuilder {
	b.VehicleID = vehicleID
	b.VehicleClass = class
	return b
}

func (b *TicketBuilder) WithSpot(spotID string, floor int) *TicketBuilder {
	b.SpotID = spotID
	b.FloorNumber = floor
	return b
}

func (b *TicketBuilder) Closed(exit time.Time, amount int64) *TicketBuilder {
	b.ExitTime = &exit
	b.AmountCharged = &amount
	return b
}

// Build methods
func (b *TicketBuilder) BuildDomain() *ticket.Transaction {
	status := ticket.PaymentPending
	var amount *pricing.Money
	if b.AmountCharged != nil {
		m, _ := pricing.NewMoney(*b.AmountCharged)
		amount = &m
		status = ticket.PaymentPaid
	}
	return ticket.Reconstruct(b.TicketID, b.VehicleID, b.VehicleClass, b.SpotID, b.FloorNumber,
		b.EntryTime, b.ExitTime, amount, status)
}

func (b *TicketBuilder) BuildInfra() sqlc.ParkingTransactions {
	row := sqlc.ParkingTransactions{
		TicketID:      b.TicketID,
		VehicleID:     b.VehicleID,
		VehicleClass:  b.VehicleClass.String(),
		SpotID:        b.SpotID,
		FloorNumber:   int32(b.FloorNumber),
		EntryTime:     pgtype.Timestamptz{Time: b.EntryTime, Valid: true},
		PaymentStatus: ticket.PaymentPending.String(),
		CreatedAt:     pgtype.Timestamptz{Time: b.EntryTime, Valid: true},
	}
	if b.ExitTime != nil {
		row.ExitTime = pgtype.Timestamptz{Time: *b.ExitTime, Valid: true}
		row.AmountCharged = pgtype.Int8{Int64: *b.AmountCharged, Valid: true}
		row.PaymentStatus = ticket.PaymentPaid.String()
	}
	return row
}

func (b *TicketBuilder) BuildView() *queries.TicketView {
	status := ticket.PaymentPending.String()
	if b.ExitTime != nil {
		status = ticket.PaymentPaid.String()
	}
	return &queries.TicketView{
		TicketID:      b.TicketID,
		VehicleID:     b.VehicleID,
		VehicleType:   b.VehicleClass.String(),
		SpotID:        b.SpotID,
		FloorNumber:   b.FloorNumber,
		EntryTime:     b.EntryTime,
		ExitTime:      b.ExitTime,
		AmountCharged: b.AmountCharged,
		PaymentStatus: status,
	}
}

func (b *TicketBuilder) BuildCheckInResult() *commands.CheckInResult {
	return &commands.CheckInResult{
		TicketID:    b.TicketID,
		SpotID:      b.SpotID,
		FloorNumber: b.FloorNumber,
		EntryTime:   b.EntryTime,
	}
}

func (b *TicketBuilder) BuildCheckOutResult() *commands.CheckOutResult {
	exit := b.EntryTime
	if b.ExitTime != nil {
		exit = *b.ExitTime
	}
	var amount int64
	if b.AmountCharged != nil {
		amount = *b.AmountCharged
	}
	m, _ := pricing.NewMoney(amount)
	return &commands.CheckOutResult{
		TicketID:      b.TicketID,
		EntryTime:     b.EntryTime,
		ExitTime:      exit,
		AmountCharged: m,
	}
}

func (b *TicketBuilder) BuildCheckInRequestDTO() reqdto.CheckInRequest {
	return reqdto.CheckInRequest{
		VehicleID:   b.VehicleID,
		VehicleType: b.VehicleClass.String(),
	}
}

func (b *TicketBuilder) BuildCheckOutRequestDTO() reqdto.CheckOutRequest {
	return reqdto.CheckOutRequest{
		TicketID: b.TicketID.String(),
	}
}
