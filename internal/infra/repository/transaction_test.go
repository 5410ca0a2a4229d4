//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/repository"
	sqlc "smart-parking/internal/infra/sqlc/generated"
	"smart-parking/tests/common/builder"
	repositorymock "smart-parking/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Transaction Tests
// =============================================================================

func TestTransactionRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockTransactionQueries, *mockDBTX, *builder.TicketBuilder)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: open ticket inserted",
			setupMock: func(mock *repositorymock.MockTransactionQueries, db *mockDBTX, b *builder.TicketBuilder) {
				mock.EXPECT().CreateTransaction(ctx, db, sqlc.CreateTransactionParams{
					TicketID:      b.TicketID,
					VehicleID:     b.VehicleID,
					VehicleClass:  "car",
					SpotID:        b.SpotID,
					FloorNumber:   int32(b.FloorNumber),
					EntryTime:     pgtype.Timestamptz{Time: b.EntryTime, Valid: true},
					PaymentStatus: "pending",
				}).Return(nil)
			},
		},
		{
			name: "error: spot already has an open ticket",
			setupMock: func(mock *repositorymock.MockTransactionQueries, db *mockDBTX, b *builder.TicketBuilder) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateTransaction(ctx, db, gomock.Any()).Return(dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: unknown spot",
			setupMock: func(mock *repositorymock.MockTransactionQueries, db *mockDBTX, b *builder.TicketBuilder) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateTransaction(ctx, db, gomock.Any()).Return(fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockTransactionQueries, db *mockDBTX, b *builder.TicketBuilder) {
				mock.EXPECT().CreateTransaction(ctx, db, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockTransactionQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTransactionRepository(mockQueries, mockDB)

			b := builder.NewTicketBuilder()
			tc.setupMock(mockQueries, mockDB, b)

			err := repo.Create(ctx, b.BuildDomain())

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Find Transaction Tests
// =============================================================================

func TestTransactionRepository_FindByTicketID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: closed ticket hydrated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries, mockDB)

		exit := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
		b := builder.NewTicketBuilder().Closed(exit, 10)
		mockQueries.EXPECT().GetTransaction(ctx, mockDB, b.TicketID).Return(b.BuildInfra(), nil)

		got, err := repo.FindByTicketID(ctx, b.TicketID)

		require.NoError(t, err)
		assert.False(t, got.IsOpen())
		assert.Equal(t, ticket.PaymentPaid, got.PaymentStatus())
		require.NotNil(t, got.AmountCharged())
		assert.Equal(t, int64(10), got.AmountCharged().Amount())
		if diff := cmp.Diff(exit, *got.ExitTime()); diff != "" {
			t.Errorf("exit time mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: ticket not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetTransaction(ctx, mockDB, id).Return(sqlc.ParkingTransactions{}, pgx.ErrNoRows)

		got, err := repo.FindByTicketID(ctx, id)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupted payment status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries, mockDB)

		b := builder.NewTicketBuilder()
		row := b.BuildInfra()
		row.PaymentStatus = "refunded"
		mockQueries.EXPECT().GetTransaction(ctx, mockDB, b.TicketID).Return(row, nil)

		_, err := repo.FindByTicketID(ctx, b.TicketID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Close Transaction Tests
// =============================================================================

func TestTransactionRepository_Close(t *testing.T) {
	ctx := context.Background()
	exit := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	closedTicket := func(t *testing.T, b *builder.TicketBuilder) *ticket.Transaction {
		t.Helper()
		txn := b.BuildDomain()
		amount, err := pricing.NewMoney(10)
		require.NoError(t, err)
		require.NoError(t, txn.Close(exit, amount))
		return txn
	}

	t.Run("success: open row closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries, mockDB)

		b := builder.NewTicketBuilder()
		mockQueries.EXPECT().CloseTransaction(ctx, mockDB, sqlc.CloseTransactionParams{
			TicketID:      b.TicketID,
			ExitTime:      pgtype.Timestamptz{Time: exit, Valid: true},
			AmountCharged: pgtype.Int8{Int64: 10, Valid: true},
			PaymentStatus: "paid",
		}).Return(int64(1), nil)

		assert.NoError(t, repo.Close(ctx, closedTicket(t, b)))
	})

	t.Run("error: row already closed by another writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CloseTransaction(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.Close(ctx, closedTicket(t, builder.NewTicketBuilder()))
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("error: open ticket cannot be persisted as closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries, mockDB)

		err := repo.Close(ctx, builder.NewTicketBuilder().BuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestTransactionRepository_ListOpen(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockTransactionQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewTransactionRepository(mockQueries, mockDB)

	first := builder.NewTicketBuilder().WithSpot("F1S3", 1)
	second := builder.NewTicketBuilder().WithSpot("F2S4", 2)
	mockQueries.EXPECT().ListOpenTransactions(ctx, mockDB).
		Return([]sqlc.ParkingTransactions{first.BuildInfra(), second.BuildInfra()}, nil)

	got, err := repo.ListOpen(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.TicketID, got[0].TicketID())
	assert.Equal(t, "F2S4", got[1].SpotID())
}
