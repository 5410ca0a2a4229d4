package repository

import (
	"context"

	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/repository/converter"
	sqlc "smart-parking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type TransactionQueries interface {
	CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) error
	GetTransaction(ctx context.Context, db sqlc.DBTX, ticketID uuid.UUID) (sqlc.ParkingTransactions, error)
	CloseTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseTransactionParams) (int64, error)
	ListOpenTransactions(ctx context.Context, db sqlc.DBTX) ([]sqlc.ParkingTransactions, error)
}

type TransactionRepository struct {
	queries TransactionQueries
	db      sqlc.DBTX
}

func NewTransactionRepository(queries TransactionQueries, db sqlc.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *ticket.Transaction) error {
	if err := r.queries.CreateTransaction(ctx, r.db, converter.TransactionToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*ticket.Transaction, error) {
	row, err := r.queries.GetTransaction(ctx, r.db, ticketID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get transaction", err)
	}

	t, err := converter.TransactionFromInfra(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to convert transaction", err)
	}
	return t, nil
}

// Close only updates an open row; losing a race to another closer is a conflict.
func (r *TransactionRepository) Close(ctx context.Context, t *ticket.Transaction) error {
	params, err := converter.TransactionToCloseParams(t)
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "cannot persist open transaction as closed", err)
	}

	affected, err := r.queries.CloseTransaction(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to close transaction", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindConflict, "transaction already closed: "+t.TicketID().String(), nil)
	}
	return nil
}

func (r *TransactionRepository) ListOpen(ctx context.Context) ([]*ticket.Transaction, error) {
	rows, err := r.queries.ListOpenTransactions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open transactions", err)
	}

	out := make([]*ticket.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := converter.TransactionFromInfra(row)
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to convert transaction", err)
		}
		out = append(out, t)
	}
	return out, nil
}
