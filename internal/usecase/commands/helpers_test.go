//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/infra/memstore"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/shared"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

var baseTime = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

type eventRecorder struct {
	mu     sync.Mutex
	events []shared.SpotEvent
}

func (r *eventRecorder) Publish(ev shared.SpotEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) Events() []shared.SpotEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shared.SpotEvent, len(r.events))
	copy(out, r.events)
	return out
}

type fixture struct {
	uow       shared.UnitOfWork
	clock     *clock.MockClock
	events    *eventRecorder
	locks     *commands.AdmissionLocks
	admission commands.AdmissionCommands
}

func newFixture(t *testing.T, f *facility.Facility) *fixture {
	t.Helper()

	fx := &fixture{
		uow:    memstore.NewUnitOfWork(memstore.NewStore()),
		clock:  clock.NewMockClock(baseTime),
		events: &eventRecorder{},
		locks:  commands.NewAdmissionLocks(2 * time.Second),
	}
	if f != nil {
		seedFacility(t, fx.uow, f)
	}
	fx.admission = commands.NewAdmissionUseCase(
		fx.uow,
		pricing.NewHourlyCalculator(pricing.DefaultRates()),
		fx.events,
		fx.locks,
		fx.clock,
		noop.NewTracerProvider(),
	)
	return fx
}

func seedFacility(t *testing.T, uow shared.UnitOfWork, f *facility.Facility) {
	t.Helper()
	err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Facilities().Create(ctx, f)
		require.True(t, created)
		return err
	})
	require.NoError(t, err)
}

func (fx *fixture) loadSpot(t *testing.T, id string) *facility.Spot {
	t.Helper()
	var s *facility.Spot
	err := fx.uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		s, err = tx.Facilities().FindSpot(ctx, id)
		return err
	})
	require.NoError(t, err)
	return s
}

func (fx *fixture) loadTicket(t *testing.T, result *commands.CheckInResult) *ticket.Transaction {
	t.Helper()
	var txn *ticket.Transaction
	err := fx.uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		txn, err = tx.Transactions().FindByTicketID(ctx, result.TicketID)
		return err
	})
	require.NoError(t, err)
	return txn
}

// carThenBus is the 1-floor facility with a car spot stored before a bus spot.
func carThenBus(t *testing.T) *facility.Facility {
	t.Helper()
	f, err := facility.ReconstructFacility("Scenario Lot", []*facility.Spot{
		facility.NewSpot("F1S1", 1, 1, facility.ClassCar),
		facility.NewSpot("F1S2", 1, 2, facility.ClassBus),
	})
	require.NoError(t, err)
	return f
}
