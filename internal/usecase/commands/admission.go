package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/pricing"
	"smart-parking/internal/domain/ticket"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "smart-parking/admission"

type CheckInResult struct {
	TicketID    uuid.UUID
	SpotID      string
	FloorNumber int
	EntryTime   time.Time
}

type CheckOutResult struct {
	TicketID      uuid.UUID
	EntryTime     time.Time
	ExitTime      time.Time
	AmountCharged pricing.Money
}

type AdmissionCommands interface {
	CheckIn(ctx context.Context, vehicleID, vehicleType string) (*CheckInResult, error)
	CheckOut(ctx context.Context, ticketID string) (*CheckOutResult, error)
}

type admissionUseCaseImpl struct {
	uow        shared.UnitOfWork
	calculator pricing.Calculator
	publisher  shared.EventPublisher
	locks      *AdmissionLocks
	clock      clock.Clock
	tracer     trace.Tracer
}

func NewAdmissionUseCase(
	uow shared.UnitOfWork,
	calculator pricing.Calculator,
	publisher shared.EventPublisher,
	locks *AdmissionLocks,
	clock clock.Clock,
	tp trace.TracerProvider,
) AdmissionCommands {
	return &admissionUseCaseImpl{
		uow:        uow,
		calculator: calculator,
		publisher:  publisher,
		locks:      locks,
		clock:      clock,
		tracer:     tp.Tracer(tracerName),
	}
}

// timestamptz keeps microseconds; the returned times must match what is stored.
func (a *admissionUseCaseImpl) now() time.Time {
	return a.clock.Now().Truncate(time.Microsecond)
}

func (a *admissionUseCaseImpl) CheckIn(ctx context.Context, vehicleID, vehicleType string) (*CheckInResult, error) {
	ctx, span := a.tracer.Start(ctx, "admission.check_in",
		trace.WithAttributes(attribute.String("vehicle.type", vehicleType)))
	defer span.End()

	class, err := facility.ParseClass(vehicleType)
	if err != nil {
		return nil, recordErr(span, errs.Mark(err, ErrInvalidVehicleClass))
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, recordErr(span, ErrInvalidVehicleID)
	}

	span.AddEvent("waiting_for_facility_lock")
	release, err := a.locks.Facility.Acquire(ctx)
	if err != nil {
		return nil, recordErr(span, markLockErr(err))
	}
	defer release()

	var result *CheckInResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Reloaded on every attempt so a rolled-back attempt leaves nothing behind.
		f, err := tx.Facilities().Load(ctx)
		if err != nil {
			return markLoadErr(err)
		}

		alloc, ok := facility.FindAvailableSpot(f, class)
		if !ok {
			return ErrNoAvailableSpot
		}
		spot, _ := f.Spot(alloc.SpotID)

		now := a.now()
		if err := spot.Occupy(vehicleID, now); err != nil {
			return errs.Wrapf(err, "occupy allocated spot %s", alloc.SpotID)
		}

		txn, err := ticket.Open(vehicleID, class, alloc, now)
		if err != nil {
			return errs.Wrap(err, "open ticket")
		}

		if err := tx.Transactions().Create(ctx, txn); err != nil {
			return errs.Mark(err, ErrPersistence)
		}
		if err := tx.Facilities().SaveSpot(ctx, spot); err != nil {
			return errs.Mark(err, ErrPersistence)
		}

		result = &CheckInResult{
			TicketID:    txn.TicketID(),
			SpotID:      alloc.SpotID,
			FloorNumber: alloc.FloorNumber,
			EntryTime:   now,
		}
		return nil
	})
	if err != nil {
		err = markUnknown(err)
		logAdmissionErr(ctx, "check-in failed", err, slog.String("vehicle_id", vehicleID), slog.String("vehicle_type", class.String()))
		return nil, recordErr(span, err)
	}

	span.SetAttributes(
		attribute.String("spot.id", result.SpotID),
		attribute.Int("spot.floor", result.FloorNumber),
		attribute.String("ticket.id", result.TicketID.String()),
	)
	span.AddEvent("spot_allocated")

	a.publisher.Publish(shared.SpotEvent{
		Type:        shared.SpotOccupied,
		SpotID:      result.SpotID,
		FloorNumber: result.FloorNumber,
		OccurredAt:  result.EntryTime,
	})

	slog.InfoContext(ctx, "vehicle checked in",
		slog.String("ticket_id", result.TicketID.String()),
		slog.String("vehicle_id", vehicleID),
		slog.String("spot_id", result.SpotID),
		slog.Int("floor", result.FloorNumber))

	return result, nil
}

func (a *admissionUseCaseImpl) CheckOut(ctx context.Context, rawTicketID string) (*CheckOutResult, error) {
	ctx, span := a.tracer.Start(ctx, "admission.check_out")
	defer span.End()

	ticketID, err := ticket.ParseTicketID(rawTicketID)
	if err != nil {
		return nil, recordErr(span, errs.Mark(err, ErrTicketNotFound))
	}
	span.SetAttributes(attribute.String("ticket.id", ticketID.String()))

	release, err := a.locks.Tickets.Acquire(ctx, ticketID.String())
	if err != nil {
		return nil, recordErr(span, markLockErr(err))
	}
	defer release()

	var (
		result   *CheckOutResult
		freed    *facility.Spot
		spotID   string
		floorNum int
	)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		freed = nil

		txn, err := tx.Transactions().FindByTicketID(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrTicketNotFound)
			}
			return errs.Mark(err, ErrPersistence)
		}
		if !txn.IsOpen() {
			return ErrAlreadyCheckedOut
		}
		spotID, floorNum = txn.SpotID(), txn.FloorNumber()

		now := a.now()
		amount := a.calculator.CalculateFee(txn.VehicleClass(), txn.EntryTime(), now)
		if err := txn.Close(now, amount); err != nil {
			return errs.Mark(err, ErrAlreadyCheckedOut)
		}

		spot, err := a.releasableSpot(ctx, tx, txn)
		if err != nil {
			return err
		}

		if err := tx.Transactions().Close(ctx, txn); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrAlreadyCheckedOut)
			}
			return errs.Mark(err, ErrPersistence)
		}
		if spot != nil {
			if err := tx.Facilities().SaveSpot(ctx, spot); err != nil {
				return errs.Mark(err, ErrPersistence)
			}
			freed = spot
		}

		result = &CheckOutResult{
			TicketID:      txn.TicketID(),
			EntryTime:     txn.EntryTime(),
			ExitTime:      now,
			AmountCharged: amount,
		}
		return nil
	})
	if err != nil {
		err = markUnknown(err)
		logAdmissionErr(ctx, "check-out failed", err, slog.String("ticket_id", ticketID.String()))
		return nil, recordErr(span, err)
	}

	span.SetAttributes(
		attribute.String("spot.id", spotID),
		attribute.Int64("fee.amount", result.AmountCharged.Amount()),
	)

	if freed != nil {
		a.publisher.Publish(shared.SpotEvent{
			Type:        shared.SpotFreed,
			SpotID:      spotID,
			FloorNumber: floorNum,
			OccurredAt:  result.ExitTime,
		})
	}

	slog.InfoContext(ctx, "vehicle checked out",
		slog.String("ticket_id", ticketID.String()),
		slog.String("spot_id", spotID),
		slog.Int64("amount", result.AmountCharged.Amount()))

	return result, nil
}

// releasableSpot returns the ticket's spot with occupancy cleared, or nil
// when the spot is missing or held by someone else. Those cases are logged
// and the spot is left as stored.
func (a *admissionUseCaseImpl) releasableSpot(ctx context.Context, tx shared.Tx, txn *ticket.Transaction) (*facility.Spot, error) {
	spot, err := tx.Facilities().FindSpot(ctx, txn.SpotID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.WarnContext(ctx, "ticket references unknown spot",
				slog.String("ticket_id", txn.TicketID().String()),
				slog.String("spot_id", txn.SpotID()))
			return nil, nil
		}
		return nil, errs.Mark(err, ErrPersistence)
	}

	if err := spot.Release(txn.VehicleID()); err != nil {
		occupant := ""
		if occ, ok := spot.Occupancy(); ok {
			occupant = occ.VehicleID
		}
		slog.WarnContext(ctx, "spot not held by ticket vehicle, leaving it untouched",
			slog.String("ticket_id", txn.TicketID().String()),
			slog.String("spot_id", txn.SpotID()),
			slog.String("vehicle_id", txn.VehicleID()),
			slog.String("occupant", occupant),
			slog.String("reason", err.Error()))
		return nil, nil
	}
	return spot, nil
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Expected rejections are logged at info; only persistence trouble is an error.
func logAdmissionErr(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", err.Error()))
	if errs.Is(err, ErrPersistence) {
		attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(err, 5)))
		slog.ErrorContext(ctx, msg, attrs...)
		return
	}
	slog.InfoContext(ctx, msg, attrs...)
}
