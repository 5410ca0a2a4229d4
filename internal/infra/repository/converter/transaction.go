package converter

import (
	"errors"
	"fmt"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/domain/ticket"
	sqlc "smart-parking/internal/infra/sqlc/generated"
	"smart-parking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

var ErrTransactionNotClosed = errors.New("transaction is not closed")

func TransactionFromInfra(row sqlc.ParkingTransactions) (*ticket.Transaction, error) {
	class, err := facility.ParseClass(row.VehicleClass)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", row.TicketID, err)
	}

	status := ticket.PaymentStatus(row.PaymentStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("ticket %s: unknown payment status %q", row.TicketID, row.PaymentStatus)
	}

	var amount *pricing.Money
	if row.AmountCharged.Valid {
		m, err := pricing.NewMoney(row.AmountCharged.Int64)
		if err != nil {
			return nil, fmt.Errorf("ticket %s: %w", row.TicketID, err)
		}
		amount = &m
	}

	return ticket.Reconstruct(
		row.TicketID,
		row.VehicleID,
		class,
		row.SpotID,
		int(row.FloorNumber),
		pgconv.TimeFromPgtype(row.EntryTime),
		pgconv.TimePtrFromPgtype(row.ExitTime),
		amount,
		status,
	), nil
}

func TransactionToCreateParams(t *ticket.Transaction) sqlc.CreateTransactionParams {
	return sqlc.CreateTransactionParams{
		TicketID:      t.TicketID(),
		VehicleID:     t.VehicleID(),
		VehicleClass:  t.VehicleClass().String(),
		SpotID:        t.SpotID(),
		FloorNumber:   toInt32(t.FloorNumber()),
		EntryTime:     pgconv.TimeToPgtype(t.EntryTime()),
		PaymentStatus: t.PaymentStatus().String(),
	}
}

func TransactionToCloseParams(t *ticket.Transaction) (sqlc.CloseTransactionParams, error) {
	exit := t.ExitTime()
	amount := t.AmountCharged()
	if exit == nil || amount == nil {
		return sqlc.CloseTransactionParams{}, ErrTransactionNotClosed
	}
	return sqlc.CloseTransactionParams{
		TicketID:      t.TicketID(),
		ExitTime:      pgconv.TimeToPgtype(*exit),
		AmountCharged: pgtype.Int8{Int64: amount.Amount(), Valid: true},
		PaymentStatus: t.PaymentStatus().String(),
	}, nil
}
