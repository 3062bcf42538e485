package commands

import (
	"context"
	"time"

	"workspace-rental/internal/domain/booking"
	"workspace-rental/internal/domain/equipment"
	"workspace-rental/internal/domain/payment"
	"workspace-rental/internal/domain/workspace"

	"github.com/google/uuid"
)

// Store ports. Implementations must make every state transition
// conditional at the store itself (status predicate, version check,
// exclusion constraint); the commands layer never holds locks.

type WorkspaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error)
	Create(ctx context.Context, ws *workspace.Workspace) error
	Update(ctx context.Context, ws *workspace.Workspace) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkReserved(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error)
	Release(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error)
	AppendSlot(ctx context.Context, workspaceID uuid.UUID, slot booking.TimeSlot) error
}

type EquipmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*equipment.Equipment, error)
	Create(ctx context.Context, item *equipment.Equipment) error
	Update(ctx context.Context, item *equipment.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Claim(ctx context.Context, id uuid.UUID) error
	ReleaseItem(ctx context.Context, id uuid.UUID) error
}

// LedgerRepository appends immutable payment records. The caller generates
// the record id up front so a retried append cannot duplicate an entry.
type LedgerRepository interface {
	Append(ctx context.Context, record *payment.Record) error
}

// PaymentGateway is the opaque payment capability. A non-nil error is a
// failed authorization; the engine does not distinguish decline reasons.
type PaymentGateway interface {
	Authorize(ctx context.Context, amount float64, info payment.PaymentInfo) error
}

// RentalPolicy carries the engine's operational bounds.
type RentalPolicy struct {
	PaymentTimeout time.Duration
	LedgerRetries  int
	LedgerBackoff  time.Duration
}

func DefaultRentalPolicy() RentalPolicy {
	return RentalPolicy{
		PaymentTimeout: 10 * time.Second,
		LedgerRetries:  3,
		LedgerBackoff:  100 * time.Millisecond,
	}
}
