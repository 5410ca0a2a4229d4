// Package memstore keeps the facility and its tickets in process memory.
// Writes made inside Within are staged on the transaction and applied to
// the store in one step when fn returns nil.
package memstore

import (
	"context"
	"sync"
	"time"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	facilityName string
	spots        map[string]*facility.Spot
	transactions map[uuid.UUID]*ticket.Transaction
}

func NewStore() *Store {
	return &Store{
		spots:        make(map[string]*facility.Spot),
		transactions: make(map[uuid.UUID]*ticket.Transaction),
	}
}

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	tx := newMemTx(u.store, false)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	return fn(ctx, newMemTx(u.store, true))
}

type memTx struct {
	store    *Store
	readOnly bool

	// staged writes, applied by commit
	facilityName string
	spots        map[string]*facility.Spot
	transactions map[uuid.UUID]*ticket.Transaction
}

func newMemTx(store *Store, readOnly bool) *memTx {
	return &memTx{
		store:        store,
		readOnly:     readOnly,
		spots:        make(map[string]*facility.Spot),
		transactions: make(map[uuid.UUID]*ticket.Transaction),
	}
}

func (t *memTx) Facilities() shared.FacilityRepository {
	return &facilityRepository{tx: t}
}

func (t *memTx) Transactions() shared.TransactionRepository {
	return &transactionRepository{tx: t}
}

func (t *memTx) currentFacilityName() string {
	if t.facilityName != "" {
		return t.facilityName
	}
	return t.store.facilityName
}

func (t *memTx) spot(id string) (*facility.Spot, bool) {
	if s, ok := t.spots[id]; ok {
		return s, true
	}
	s, ok := t.store.spots[id]
	return s, ok
}

func (t *memTx) transaction(id uuid.UUID) (*ticket.Transaction, bool) {
	if tr, ok := t.transactions[id]; ok {
		return tr, true
	}
	tr, ok := t.store.transactions[id]
	return tr, ok
}

// allSpots merges staged spots over the stored ones.
func (t *memTx) allSpots() []*facility.Spot {
	out := make([]*facility.Spot, 0, len(t.store.spots)+len(t.spots))
	for id, s := range t.store.spots {
		if _, staged := t.spots[id]; !staged {
			out = append(out, s)
		}
	}
	for _, s := range t.spots {
		out = append(out, s)
	}
	return out
}

func (t *memTx) allTransactions() []*ticket.Transaction {
	out := make([]*ticket.Transaction, 0, len(t.store.transactions)+len(t.transactions))
	for id, tr := range t.store.transactions {
		if _, staged := t.transactions[id]; !staged {
			out = append(out, tr)
		}
	}
	for _, tr := range t.transactions {
		out = append(out, tr)
	}
	return out
}

func (t *memTx) commit() {
	if t.facilityName != "" {
		t.store.facilityName = t.facilityName
	}
	for id, s := range t.spots {
		t.store.spots[id] = s
	}
	for id, tr := range t.transactions {
		t.store.transactions[id] = tr
	}
}

func cloneTransaction(t *ticket.Transaction) *ticket.Transaction {
	var exit *time.Time
	if e := t.ExitTime(); e != nil {
		v := *e
		exit = &v
	}
	var amount *pricing.Money
	if a := t.AmountCharged(); a != nil {
		v := *a
		amount = &v
	}
	return ticket.Reconstruct(
		t.TicketID(),
		t.VehicleID(),
		t.VehicleClass(),
		t.SpotID(),
		t.FloorNumber(),
		t.EntryTime(),
		exit,
		amount,
		t.PaymentStatus(),
	)
}
