package commands

import (
	"context"
	"log/slog"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/shared"
)

type ReconcileReport struct {
	Reoccupied []string `json:"reoccupied"`
	Released   []string `json:"released"`
}

type ReconcileCommands interface {
	Reconcile(ctx context.Context) (*ReconcileReport, error)
}

// Reconciler repairs spot occupancy from open tickets. Tickets are the
// source of truth: a spot with an open ticket is held by that ticket's
// vehicle, and a spot without one is free.
type Reconciler struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	locks     *AdmissionLocks
	clock     clock.Clock
}

func NewReconciler(uow shared.UnitOfWork, publisher shared.EventPublisher, locks *AdmissionLocks, clock clock.Clock) *Reconciler {
	return &Reconciler{
		uow:       uow,
		publisher: publisher,
		locks:     locks,
		clock:     clock,
	}
}

func (r *Reconciler) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	release, err := r.locks.Facility.Acquire(ctx)
	if err != nil {
		return nil, markLockErr(err)
	}
	defer release()

	var (
		report  *ReconcileReport
		changed []*facility.Spot
	)
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		report = &ReconcileReport{Reoccupied: []string{}, Released: []string{}}
		changed = nil

		f, err := tx.Facilities().Load(ctx)
		if err != nil {
			return markLoadErr(err)
		}
		open, err := tx.Transactions().ListOpen(ctx)
		if err != nil {
			return errs.Mark(err, ErrPersistence)
		}

		bySpot := make(map[string]*ticket.Transaction, len(open))
		for _, t := range open {
			if _, ok := f.Spot(t.SpotID()); !ok {
				slog.WarnContext(ctx, "open ticket references unknown spot",
					slog.String("ticket_id", t.TicketID().String()),
					slog.String("spot_id", t.SpotID()))
				continue
			}
			bySpot[t.SpotID()] = t
		}

		for _, s := range f.Spots() {
			t, hasTicket := bySpot[s.ID()]
			switch {
			case !hasTicket && !s.IsFree():
				s.ForceRelease()
				report.Released = append(report.Released, s.ID())
			case hasTicket && !s.HeldBy(t.VehicleID()):
				s.ForceRelease()
				if err := s.Occupy(t.VehicleID(), t.EntryTime()); err != nil {
					return errs.Wrapf(err, "re-occupy spot %s", s.ID())
				}
				report.Reoccupied = append(report.Reoccupied, s.ID())
			default:
				continue
			}
			if err := tx.Facilities().SaveSpot(ctx, s); err != nil {
				return errs.Mark(err, ErrPersistence)
			}
			changed = append(changed, s)
		}
		return nil
	})
	if err != nil {
		return nil, markUnknown(err)
	}

	now := r.clock.Now()
	for _, s := range changed {
		ev := shared.SpotEvent{SpotID: s.ID(), FloorNumber: s.FloorNumber(), OccurredAt: now, Type: shared.SpotFreed}
		if !s.IsFree() {
			ev.Type = shared.SpotOccupied
		}
		r.publisher.Publish(ev)
	}

	if len(changed) > 0 {
		slog.WarnContext(ctx, "occupancy reconciled",
			slog.Any("reoccupied", report.Reoccupied),
			slog.Any("released", report.Released))
	} else {
		slog.InfoContext(ctx, "occupancy consistent with open tickets")
	}
	return report, nil
}
