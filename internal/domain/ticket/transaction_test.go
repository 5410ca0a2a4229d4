//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	entry = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	alloc = facility.Allocation{SpotID: "F1S3", FloorNumber: 1}
)

func TestOpen(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		txn, err := ticket.Open("ABC-123", facility.ClassCar, alloc, entry)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, txn.TicketID())
		assert.Equal(t, "ABC-123", txn.VehicleID())
		assert.Equal(t, facility.ClassCar, txn.VehicleClass())
		assert.Equal(t, "F1S3", txn.SpotID())
		assert.Equal(t, 1, txn.FloorNumber())
		assert.Equal(t, entry, txn.EntryTime())
		assert.True(t, txn.IsOpen())
		assert.Nil(t, txn.ExitTime())
		assert.Nil(t, txn.AmountCharged())
		assert.Equal(t, ticket.PaymentPending, txn.PaymentStatus())
	})

	t.Run("チケットIDは毎回異なる", func(t *testing.T) {
		a, err := ticket.Open("A", facility.ClassCar, alloc, entry)
		require.NoError(t, err)
		b, err := ticket.Open("A", facility.ClassCar, alloc, entry)
		require.NoError(t, err)
		assert.NotEqual(t, a.TicketID(), b.TicketID())
	})

	t.Run("空の車両IDはNG", func(t *testing.T) {
		_, err := ticket.Open("", facility.ClassCar, alloc, entry)
		assert.ErrorIs(t, err, facility.ErrEmptyVehicleID)
	})

	t.Run("不正な車種はNG", func(t *testing.T) {
		_, err := ticket.Open("A", facility.Class("truck"), alloc, entry)
		assert.ErrorIs(t, err, facility.ErrInvalidClass)
	})
}

func TestClose(t *testing.T) {
	t.Run("一度だけ閉じられる", func(t *testing.T) {
		txn, err := ticket.Open("ABC-123", facility.ClassCar, alloc, entry)
		require.NoError(t, err)

		exit := entry.Add(90 * time.Minute)
		fee, _ := pricing.NewMoney(10)
		require.NoError(t, txn.Close(exit, fee))

		assert.False(t, txn.IsOpen())
		require.NotNil(t, txn.ExitTime())
		assert.Equal(t, exit, *txn.ExitTime())
		require.NotNil(t, txn.AmountCharged())
		assert.Equal(t, int64(10), txn.AmountCharged().Amount())
		assert.Equal(t, ticket.PaymentPaid, txn.PaymentStatus())

		other, _ := pricing.NewMoney(99)
		assert.ErrorIs(t, txn.Close(exit.Add(time.Hour), other), ticket.ErrAlreadyClosed)
		assert.Equal(t, exit, *txn.ExitTime(), "second close must not change the exit time")
		assert.Equal(t, int64(10), txn.AmountCharged().Amount())
	})

	t.Run("入庫前の出庫時刻も受け付ける", func(t *testing.T) {
		txn, err := ticket.Open("ABC-123", facility.ClassCar, alloc, entry)
		require.NoError(t, err)
		require.NoError(t, txn.Close(entry.Add(-time.Minute), pricing.Zero()))
		assert.True(t, txn.AmountCharged().IsZero())
	})
}

func TestParseTicketID(t *testing.T) {
	id := uuid.New()

	got, err := ticket.ParseTicketID(" " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, raw := range []string{"", "not-a-uuid", uuid.Nil.String()} {
		_, err := ticket.ParseTicketID(raw)
		assert.ErrorIs(t, err, ticket.ErrInvalidTicketID, raw)
	}
}
