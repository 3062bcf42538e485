package repository

import (
	"context"
	"errors"
	"time"

	"workspace-rental/internal/domain/payment"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = "payment_id, created_at, amount, user_id, workspace_id, equipment_ids, late_fine, status"

// LedgerRepository is the append-only payment audit trail. There are no
// update or delete paths; records are written once with a caller-generated
// id and only ever read after that.
type LedgerRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewLedgerRepository(db *pgxpool.Pool, cfg config.DBConfig) *LedgerRepository {
	return &LedgerRepository{
		db:      db,
		timeout: cfg.QueryTimeout,
	}
}

func (r *LedgerRepository) Append(ctx context.Context, record *payment.Record) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	equipmentIDs := record.EquipmentIDs
	if equipmentIDs == nil {
		equipmentIDs = []uuid.UUID{}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO payment_records (payment_id, created_at, amount, user_id, workspace_id, equipment_ids, late_fine, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.PaymentID, record.CreatedAt, record.Amount, record.UserID,
		record.WorkspaceID, equipmentIDs, record.LateFine, string(record.Status))
	if err != nil {
		if isPgCode(err, codeUniqueViolation) {
			// A retried append after a lost ack; the record is already durable.
			return nil
		}
		return infra.WrapRepoErr("failed to append payment record", err)
	}

	return nil
}

func (r *LedgerRepository) FindByID(ctx context.Context, paymentID uuid.UUID) (*payment.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx,
		"SELECT "+ledgerColumns+" FROM payment_records WHERE payment_id = $1", paymentID)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("payment record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment record", err)
	}

	return record, nil
}

func (r *LedgerRepository) List(ctx context.Context) ([]*payment.Record, error) {
	return r.list(ctx,
		"SELECT "+ledgerColumns+" FROM payment_records ORDER BY created_at DESC")
}

func (r *LedgerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*payment.Record, error) {
	return r.list(ctx,
		"SELECT "+ledgerColumns+" FROM payment_records WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

func (r *LedgerRepository) list(ctx context.Context, query string, args ...any) ([]*payment.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment records", err)
	}
	defer rows.Close()

	var result []*payment.Record
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan payment record row", scanErr)
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payment record rows", err)
	}

	return result, nil
}

func scanRecord(row pgx.Row) (*payment.Record, error) {
	var record payment.Record
	var status string
	if err := row.Scan(
		&record.PaymentID, &record.CreatedAt, &record.Amount, &record.UserID,
		&record.WorkspaceID, &record.EquipmentIDs, &record.LateFine, &status,
	); err != nil {
		return nil, err
	}
	record.Status = payment.RecordStatus(status)

	return &record, nil
}
