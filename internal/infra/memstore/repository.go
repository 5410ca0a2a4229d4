package memstore

import (
	"context"
	"slices"
	"strings"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/infra"

	"github.com/google/uuid"
)

type facilityRepository struct {
	tx *memTx
}

func (r *facilityRepository) Load(_ context.Context) (*facility.Facility, error) {
	name := r.tx.currentFacilityName()
	if name == "" {
		return nil, infra.NewRepoErr(infra.KindNotFound, "facility not found", nil)
	}

	stored := r.tx.allSpots()
	spots := make([]*facility.Spot, 0, len(stored))
	for _, s := range stored {
		spots = append(spots, s.Clone())
	}

	f, err := facility.ReconstructFacility(name, spots)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to reconstruct facility", err)
	}
	return f, nil
}

func (r *facilityRepository) Create(_ context.Context, f *facility.Facility) (bool, error) {
	if r.tx.readOnly {
		return false, errReadOnly("create facility")
	}
	if r.tx.currentFacilityName() != "" {
		return false, nil
	}

	r.tx.facilityName = f.Name()
	for _, s := range f.Spots() {
		r.tx.spots[s.ID()] = s.Clone()
	}
	return true, nil
}

func (r *facilityRepository) FindSpot(_ context.Context, spotID string) (*facility.Spot, error) {
	s, ok := r.tx.spot(spotID)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "spot not found: "+spotID, nil)
	}
	return s.Clone(), nil
}

func (r *facilityRepository) SaveSpot(_ context.Context, s *facility.Spot) error {
	if r.tx.readOnly {
		return errReadOnly("save spot")
	}
	if _, ok := r.tx.spot(s.ID()); !ok {
		return infra.NewRepoErr(infra.KindNotFound, "spot not found: "+s.ID(), nil)
	}
	r.tx.spots[s.ID()] = s.Clone()
	return nil
}

type transactionRepository struct {
	tx *memTx
}

func (r *transactionRepository) Create(_ context.Context, t *ticket.Transaction) error {
	if r.tx.readOnly {
		return errReadOnly("create transaction")
	}
	if _, exists := r.tx.transaction(t.TicketID()); exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "duplicate ticket id: "+t.TicketID().String(), nil)
	}
	if _, ok := r.tx.spot(t.SpotID()); !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "unknown spot: "+t.SpotID(), nil)
	}
	if t.IsOpen() {
		for _, other := range r.tx.allTransactions() {
			if other.IsOpen() && other.SpotID() == t.SpotID() {
				return infra.NewRepoErr(infra.KindDuplicateKey, "spot already has an open ticket: "+t.SpotID(), nil)
			}
		}
	}

	r.tx.transactions[t.TicketID()] = cloneTransaction(t)
	return nil
}

func (r *transactionRepository) FindByTicketID(_ context.Context, ticketID uuid.UUID) (*ticket.Transaction, error) {
	t, ok := r.tx.transaction(ticketID)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "transaction not found: "+ticketID.String(), nil)
	}
	return cloneTransaction(t), nil
}

func (r *transactionRepository) Close(_ context.Context, t *ticket.Transaction) error {
	if r.tx.readOnly {
		return errReadOnly("close transaction")
	}
	if t.IsOpen() {
		return infra.NewRepoErr(infra.KindDBFailure, "cannot persist open transaction as closed", nil)
	}

	stored, ok := r.tx.transaction(t.TicketID())
	if !ok || !stored.IsOpen() {
		return infra.NewRepoErr(infra.KindConflict, "transaction already closed: "+t.TicketID().String(), nil)
	}

	r.tx.transactions[t.TicketID()] = cloneTransaction(t)
	return nil
}

func (r *transactionRepository) ListOpen(_ context.Context) ([]*ticket.Transaction, error) {
	var out []*ticket.Transaction
	for _, t := range r.tx.allTransactions() {
		if t.IsOpen() {
			out = append(out, cloneTransaction(t))
		}
	}
	slices.SortFunc(out, func(a, b *ticket.Transaction) int {
		if c := a.EntryTime().Compare(b.EntryTime()); c != 0 {
			return c
		}
		return strings.Compare(a.TicketID().String(), b.TicketID().String())
	})
	return out, nil
}

func errReadOnly(op string) error {
	return infra.NewRepoErr(infra.KindReadOnly, op+" in read-only transaction", nil)
}
