//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/memstore"
	"smart-parking/internal/usecase/shared"
	"smart-parking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var since = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

func newSeeded(t *testing.T) shared.UnitOfWork {
	t.Helper()
	f, err := builder.NewFacilityBuilder().BuildDomain()
	require.NoError(t, err)

	uow := memstore.NewUnitOfWork(memstore.NewStore())
	require.NoError(t, uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Facilities().Create(ctx, f)
		assert.True(t, created)
		return err
	}))
	return uow
}

func TestFacilityRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 作成した施設を読み込める", func(t *testing.T) {
		uow := newSeeded(t)

		err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			f, err := tx.Facilities().Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, "Test Facility", f.Name())
			assert.Equal(t, 8, f.SpotCount())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("正常系: 二度目の作成は既存を保持する", func(t *testing.T) {
		uow := newSeeded(t)
		other, err := facility.NewFacility("Other", facility.DefaultLayout())
		require.NoError(t, err)

		err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			created, err := tx.Facilities().Create(ctx, other)
			assert.False(t, created)
			return err
		})
		require.NoError(t, err)
	})

	t.Run("異常系: 未作成の施設はNOT_FOUND", func(t *testing.T) {
		uow := memstore.NewUnitOfWork(memstore.NewStore())

		err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Facilities().Load(ctx)
			return err
		})

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("正常系: 読み込んだスポットの変更は保存するまで反映されない", func(t *testing.T) {
		uow := newSeeded(t)

		require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			s, err := tx.Facilities().FindSpot(ctx, "F1S3")
			require.NoError(t, err)
			return s.Occupy("CAR-1", since)
		}))

		require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			s, err := tx.Facilities().FindSpot(ctx, "F1S3")
			require.NoError(t, err)
			assert.True(t, s.IsFree())
			return nil
		}))
	})

	t.Run("異常系: 存在しないスポットの保存", func(t *testing.T) {
		uow := newSeeded(t)

		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Facilities().SaveSpot(ctx, facility.NewSpot("F9S9", 9, 9, facility.ClassCar))
		})

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("異常系: 読み取り専用トランザクションでの書き込み", func(t *testing.T) {
		uow := newSeeded(t)

		err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			s, err := tx.Facilities().FindSpot(ctx, "F1S3")
			require.NoError(t, err)
			return tx.Facilities().SaveSpot(ctx, s)
		})

		assert.True(t, infra.IsKind(err, infra.KindReadOnly))
	})
}

func TestUnitOfWork_Within(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: チケットとスポットはまとめて反映される", func(t *testing.T) {
		uow := newSeeded(t)
		txn := builder.NewTicketBuilder().BuildDomain()

		require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Transactions().Create(ctx, txn); err != nil {
				return err
			}
			s, err := tx.Facilities().FindSpot(ctx, txn.SpotID())
			if err != nil {
				return err
			}
			if err := s.Occupy(txn.VehicleID(), txn.EntryTime()); err != nil {
				return err
			}
			return tx.Facilities().SaveSpot(ctx, s)
		}))

		require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			s, err := tx.Facilities().FindSpot(ctx, txn.SpotID())
			require.NoError(t, err)
			assert.True(t, s.HeldBy(txn.VehicleID()))

			got, err := tx.Transactions().FindByTicketID(ctx, txn.TicketID())
			require.NoError(t, err)
			assert.True(t, got.IsOpen())
			return nil
		}))
	})

	t.Run("異常系: エラーを返すとステージした書き込みは破棄される", func(t *testing.T) {
		uow := newSeeded(t)
		txn := builder.NewTicketBuilder().BuildDomain()
		boom := errors.New("boom")

		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Transactions().Create(ctx, txn); err != nil {
				return err
			}
			s, err := tx.Facilities().FindSpot(ctx, txn.SpotID())
			require.NoError(t, err)
			require.NoError(t, s.Occupy(txn.VehicleID(), txn.EntryTime()))
			require.NoError(t, tx.Facilities().SaveSpot(ctx, s))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Transactions().FindByTicketID(ctx, txn.TicketID())
			assert.True(t, infra.IsKind(err, infra.KindNotFound))
			s, err := tx.Facilities().FindSpot(ctx, txn.SpotID())
			require.NoError(t, err)
			assert.True(t, s.IsFree())
			return nil
		}))
	})

	t.Run("異常系: キャンセル済みのコンテキスト", func(t *testing.T) {
		uow := newSeeded(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := uow.Within(cctx, func(context.Context, shared.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("異常系: 同じスポットに二枚目の未精算チケット", func(t *testing.T) {
		uow := newSeeded(t)

		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Transactions().Create(ctx, builder.NewTicketBuilder().BuildDomain()); err != nil {
				return err
			}
			return tx.Transactions().Create(ctx, builder.NewTicketBuilder().WithVehicle("XYZ-9", facility.ClassCar).BuildDomain())
		})

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("異常系: 存在しないスポットを参照するチケット", func(t *testing.T) {
		uow := newSeeded(t)

		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Transactions().Create(ctx, builder.NewTicketBuilder().WithSpot("F9S1", 9).BuildDomain())
		})

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("正常系: クローズは一度だけ成功する", func(t *testing.T) {
		uow := newSeeded(t)
		b := builder.NewTicketBuilder()
		require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Transactions().Create(ctx, b.BuildDomain())
		}))

		closeOnce := func() error {
			return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				txn, err := tx.Transactions().FindByTicketID(ctx, b.TicketID)
				if err != nil {
					return err
				}
				if txn.IsOpen() {
					if err := txn.Close(since.Add(time.Hour), pricing.Zero()); err != nil {
						return err
					}
				}
				return tx.Transactions().Close(ctx, txn)
			})
		}

		require.NoError(t, closeOnce())
		assert.True(t, infra.IsKind(closeOnce(), infra.KindConflict))
	})

	t.Run("正常系: 未精算チケットを入庫順に列挙する", func(t *testing.T) {
		uow := newSeeded(t)
		late := builder.NewTicketBuilder().WithSpot("F2S3", 2).With(func(b *builder.TicketBuilder) {
			b.EntryTime = since.Add(time.Hour)
		})
		early := builder.NewTicketBuilder().WithSpot("F1S4", 1)
		done := builder.NewTicketBuilder().WithSpot("F1S3", 1).Closed(since.Add(time.Hour), 5)

		require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			for _, txn := range []*ticket.Transaction{late.BuildDomain(), early.BuildDomain(), done.BuildDomain()} {
				if err := tx.Transactions().Create(ctx, txn); err != nil {
					return err
				}
			}
			return nil
		}))

		require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			open, err := tx.Transactions().ListOpen(ctx)
			require.NoError(t, err)
			require.Len(t, open, 2)
			assert.Equal(t, early.TicketID, open[0].TicketID())
			assert.Equal(t, late.TicketID, open[1].TicketID())
			return nil
		}))
	})
}
