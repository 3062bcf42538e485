package repository

import (
	"context"
	"errors"
	"time"

	"workspace-rental/internal/domain/equipment"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewEquipmentRepository(db *pgxpool.Pool, cfg config.DBConfig) *EquipmentRepository {
	return &EquipmentRepository{
		db:      db,
		timeout: cfg.QueryTimeout,
	}
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx,
		"SELECT id, name, price, available FROM equipment WHERE id = $1", id)

	item, err := scanEquipment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment", err)
	}

	return item, nil
}

// FindByIDs loads all requested equipment; any missing id is a NotFound
// for the whole lookup.
func (r *EquipmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*equipment.Equipment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		"SELECT id, name, price, available FROM equipment WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find equipment by ids", err)
	}
	defer rows.Close()

	result := make([]*equipment.Equipment, 0, len(ids))
	for rows.Next() {
		item, scanErr := scanEquipment(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment row", scanErr)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read equipment rows", err)
	}

	if len(result) != len(ids) {
		return nil, infra.WrapRepoErr("some equipment ids do not exist", nil, infra.KindNotFound)
	}

	return result, nil
}

func (r *EquipmentRepository) List(ctx context.Context) ([]*equipment.Equipment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		"SELECT id, name, price, available FROM equipment ORDER BY name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	defer rows.Close()

	var result []*equipment.Equipment
	for rows.Next() {
		item, scanErr := scanEquipment(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment row", scanErr)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read equipment rows", err)
	}

	return result, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, item *equipment.Equipment) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx,
		"INSERT INTO equipment (id, name, price, available) VALUES ($1, $2, $3, $4)",
		item.ID(), item.Name(), item.Price(), item.Available())
	if err != nil {
		if isPgCode(err, codeUniqueViolation) {
			return infra.WrapRepoErr("equipment already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create equipment", err)
	}

	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, item *equipment.Equipment) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx,
		"UPDATE equipment SET name = $2, price = $3 WHERE id = $1",
		item.ID(), item.Name(), item.Price())
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}

	return nil
}

// Claim flips available to false in a single conditional write; a second
// concurrent claim on the same item gets a conflict.
func (r *EquipmentRepository) Claim(ctx context.Context, id uuid.UUID) error {
	return r.setAvailability(ctx, id, true, false)
}

// ReleaseItem makes a claimed item rentable again.
func (r *EquipmentRepository) ReleaseItem(ctx context.Context, id uuid.UUID) error {
	return r.setAvailability(ctx, id, false, true)
}

func (r *EquipmentRepository) setAvailability(ctx context.Context, id uuid.UUID, from, to bool) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx,
		"UPDATE equipment SET available = $3 WHERE id = $1 AND available = $2",
		id, from, to)
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment availability", err)
	}
	if tag.RowsAffected() != 0 {
		return nil
	}

	var exists bool
	if checkErr := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM equipment WHERE id = $1)", id).Scan(&exists); checkErr != nil {
		return infra.WrapRepoErr("failed to check equipment existence", checkErr)
	}
	if !exists {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("equipment not in expected availability", nil, infra.KindConflict)
}

func scanEquipment(row pgx.Row) (*equipment.Equipment, error) {
	var (
		id        uuid.UUID
		name      string
		price     float64
		available bool
	)
	if err := row.Scan(&id, &name, &price, &available); err != nil {
		return nil, err
	}

	return equipment.ReconstructEquipment(id, name, price, available), nil
}
