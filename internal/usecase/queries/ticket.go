package queries

import (
	"context"
	"time"

	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTicketNotFound = errs.New("ticket not found")

type TicketView struct {
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

type TicketQueries interface {
	GetByTicketID(ctx context.Context, ticketID string) (*TicketView, error)
}

type ticketQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewTicketQueries(uow shared.UnitOfWork) TicketQueries {
	return &ticketQueriesImpl{uow: uow}
}

func (q *ticketQueriesImpl) GetByTicketID(ctx context.Context, rawTicketID string) (*TicketView, error) {
	id, err := ticket.ParseTicketID(rawTicketID)
	if err != nil {
		return nil, errs.Mark(err, ErrTicketNotFound)
	}

	var t *ticket.Transaction
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		t, err = tx.Transactions().FindByTicketID(ctx, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTicketNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return toTicketView(t), nil
}

func toTicketView(t *ticket.Transaction) *TicketView {
	view := &TicketView{
		TicketID:      t.TicketID(),
		VehicleID:     t.VehicleID(),
		VehicleType:   t.VehicleClass().String(),
		SpotID:        t.SpotID(),
		FloorNumber:   t.FloorNumber(),
		EntryTime:     t.EntryTime(),
		ExitTime:      t.ExitTime(),
		PaymentStatus: t.PaymentStatus().String(),
	}
	if amount := t.AmountCharged(); amount != nil {
		v := amount.Amount()
		view.AmountCharged = &v
	}
	return view
}
