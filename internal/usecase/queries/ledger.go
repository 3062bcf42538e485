package queries

import (
	"context"

	"workspace-rental/internal/domain/payment"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errs.New("payment record not found")

// LedgerReadStore is the read side of the audit trail; other systems may
// consume the same records, so this surface stays read-only.
type LedgerReadStore interface {
	FindByID(ctx context.Context, paymentID uuid.UUID) (*payment.Record, error)
	List(ctx context.Context) ([]*payment.Record, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*payment.Record, error)
}

type LedgerQueries interface {
	Get(ctx context.Context, paymentID uuid.UUID) (*payment.Record, error)
	List(ctx context.Context) ([]*payment.Record, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*payment.Record, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
}

func NewLedgerQueries(store LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{store: store}
}

func (q *ledgerQueriesImpl) Get(ctx context.Context, paymentID uuid.UUID) (*payment.Record, error) {
	record, err := q.store.FindByID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRecordNotFound)
		}
		return nil, err
	}
	return record, nil
}

func (q *ledgerQueriesImpl) List(ctx context.Context) ([]*payment.Record, error) {
	return q.store.List(ctx)
}

func (q *ledgerQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*payment.Record, error) {
	return q.store.ListByUser(ctx, userID)
}
