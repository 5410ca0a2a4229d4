package ticket

import (
	"strings"
	"time"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"

	"github.com/google/uuid"
)

// Transaction is the billable record of one stay. Exit time and amount are
// set together by Close and never change afterwards. An exit earlier than
// the entry is accepted; the fee for it is zero.
type Transaction struct {
	ticketID      uuid.UUID
	vehicleID     string
	vehicleClass  facility.Class
	spotID        string
	floorNumber   int
	entryTime     time.Time
	exitTime      *time.Time
	amountCharged *pricing.Money
	paymentStatus PaymentStatus
}

func Open(vehicleID string, class facility.Class, alloc facility.Allocation, entry time.Time) (*Transaction, error) {
	if strings.TrimSpace(vehicleID) == "" {
		return nil, facility.ErrEmptyVehicleID
	}
	if !class.Valid() {
		return nil, facility.ErrInvalidClass
	}
	return &Transaction{
		ticketID:      uuid.New(),
		vehicleID:     vehicleID,
		vehicleClass:  class,
		spotID:        alloc.SpotID,
		floorNumber:   alloc.FloorNumber,
		entryTime:     entry,
		paymentStatus: PaymentPending,
	}, nil
}

func Reconstruct(
	ticketID uuid.UUID,
	vehicleID string,
	vehicleClass facility.Class,
	spotID string,
	floorNumber int,
	entryTime time.Time,
	exitTime *time.Time,
	amountCharged *pricing.Money,
	paymentStatus PaymentStatus,
) *Transaction {
	return &Transaction{
		ticketID:      ticketID,
		vehicleID:     vehicleID,
		vehicleClass:  vehicleClass,
		spotID:        spotID,
		floorNumber:   floorNumber,
		entryTime:     entryTime,
		exitTime:      exitTime,
		amountCharged: amountCharged,
		paymentStatus: paymentStatus,
	}
}

func ParseTicketID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidTicketID
	}
	return id, nil
}

func (t *Transaction) Close(exit time.Time, amount pricing.Money) error {
	if t.exitTime != nil {
		return ErrAlreadyClosed
	}
	t.exitTime = &exit
	t.amountCharged = &amount
	t.paymentStatus = PaymentPaid
	return nil
}

func (t *Transaction) IsOpen() bool {
	return t.exitTime == nil
}

func (t *Transaction) TicketID() uuid.UUID           { return t.ticketID }
func (t *Transaction) VehicleID() string             { return t.vehicleID }
func (t *Transaction) VehicleClass() facility.Class  { return t.vehicleClass }
func (t *Transaction) SpotID() string                { return t.spotID }
func (t *Transaction) FloorNumber() int              { return t.floorNumber }
func (t *Transaction) EntryTime() time.Time          { return t.entryTime }
func (t *Transaction) ExitTime() *time.Time          { return t.exitTime }
func (t *Transaction) AmountCharged() *pricing.Money { return t.amountCharged }
func (t *Transaction) PaymentStatus() PaymentStatus  { return t.paymentStatus }
