//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SpotOccupant returns the vehicle holding spotID, or "" when the spot is free.
func SpotOccupant(t *testing.T, db DBLike, spotID string) string {
	t.Helper()

	var vehicleID pgtype.Text
	err := db.QueryRow(context.Background(),
		"SELECT vehicle_id FROM spots WHERE spot_id = $1", spotID).Scan(&vehicleID)
	require.NoError(t, err)
	return vehicleID.String
}

func CountOpenTickets(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM parking_transactions WHERE exit_time IS NULL").Scan(&n)
	require.NoError(t, err)
	return n
}

// InsertOpenTicket writes a ticket row without touching the spot, leaving
// the store as a crash between the two writes would.
func InsertOpenTicket(t *testing.T, db DBLike, vehicleID, vehicleClass, spotID string, floor int, entry time.Time) uuid.UUID {
	t.Helper()

	ticketID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO parking_transactions (ticket_id, vehicle_id, vehicle_class, spot_id, floor_number, entry_time, payment_status)
		 VALUES ($1, $2, $3, $4, $5, $6, 'pending')`,
		ticketID, vehicleID, vehicleClass, spotID, floor, entry)
	require.NoError(t, err)
	return ticketID
}

// OccupySpot marks a spot held without a ticket.
func OccupySpot(t *testing.T, db DBLike, spotID, vehicleID string, since time.Time) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE spots SET is_occupied = true, vehicle_id = $2, occupied_since = $3 WHERE spot_id = $1",
		spotID, vehicleID, since)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables; the facility is recreated by the caller
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
