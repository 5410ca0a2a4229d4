package shared

import (
	"context"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/domain/ticket"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: writes made through tx are applied together or not at all
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot for queries; writes through tx fail
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Facilities() FacilityRepository
	Transactions() TransactionRepository
}

type FacilityRepository interface {
	// Load returns a NOT_FOUND repository error when the facility was never created.
	Load(ctx context.Context) (*facility.Facility, error)
	// Create reports false when a facility already exists; the stored one is left as is.
	Create(ctx context.Context, f *facility.Facility) (bool, error)
	FindSpot(ctx context.Context, spotID string) (*facility.Spot, error)
	SaveSpot(ctx context.Context, s *facility.Spot) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *ticket.Transaction) error
	FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*ticket.Transaction, error)
	// Close returns a CONFLICT repository error when the ticket is already closed.
	Close(ctx context.Context, t *ticket.Transaction) error
	ListOpen(ctx context.Context) ([]*ticket.Transaction, error)
}
