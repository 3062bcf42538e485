package repository

import (
	"context"
	"errors"
	"time"

	"workspace-rental/internal/domain/booking"
	"workspace-rental/internal/domain/workspace"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const workspaceColumns = "id, room_type, name, capacity, description, base_price, status, version"

type WorkspaceRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewWorkspaceRepository(db *pgxpool.Pool, cfg config.DBConfig) *WorkspaceRepository {
	return &WorkspaceRepository{
		db:      db,
		timeout: cfg.QueryTimeout,
	}
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx,
		"SELECT "+workspaceColumns+" FROM workspaces WHERE id = $1", id)

	ws, err := scanWorkspace(row, nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("workspace not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find workspace", err)
	}

	slots, err := r.findSlots(ctx, id)
	if err != nil {
		return nil, err
	}

	return workspace.ReconstructWorkspace(
		ws.ID(), ws.RoomType(), ws.Name(), ws.Capacity(), ws.Description(),
		ws.BasePrice(), ws.Status(), slots, ws.Version(),
	), nil
}

func (r *WorkspaceRepository) List(ctx context.Context) ([]*workspace.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		"SELECT "+workspaceColumns+" FROM workspaces ORDER BY name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list workspaces", err)
	}
	defer rows.Close()

	var result []*workspace.Workspace
	for rows.Next() {
		ws, scanErr := scanWorkspace(rows, nil)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan workspace row", scanErr)
		}
		result = append(result, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read workspace rows", err)
	}

	return result, nil
}

func (r *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx,
		`INSERT INTO workspaces (id, room_type, name, capacity, description, base_price, status, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 0)`,
		ws.ID(), ws.RoomType(), ws.Name(), ws.Capacity(), ws.Description(), ws.BasePrice(), string(ws.Status()))
	if err != nil {
		if isPgCode(err, codeUniqueViolation) {
			return infra.WrapRepoErr("workspace already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create workspace", err)
	}

	return nil
}

// Update rewrites the descriptive fields under a version check so that a
// stale snapshot cannot overwrite a concurrent change. Status and slots
// have their own conditional paths and are not touched here.
func (r *WorkspaceRepository) Update(ctx context.Context, ws *workspace.Workspace) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx,
		`UPDATE workspaces
		 SET room_type = $2, name = $3, capacity = $4, description = $5, base_price = $6,
		     version = version + 1
		 WHERE id = $1 AND version = $7`,
		ws.ID(), ws.RoomType(), ws.Name(), ws.Capacity(), ws.Description(), ws.BasePrice(), ws.Version())
	if err != nil {
		return infra.WrapRepoErr("failed to update workspace", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("workspace version conflict", nil, infra.KindConflict)
	}

	return nil
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, "DELETE FROM workspaces WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete workspace", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("workspace not found", nil, infra.KindNotFound)
	}

	return nil
}

// MarkReserved flips AVAILABLE to RESERVED in a single conditional write.
// Exactly one of any number of concurrent callers observes the AVAILABLE
// row; the rest get a conflict.
func (r *WorkspaceRepository) MarkReserved(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	return r.transitionStatus(ctx, id, workspace.StatusAvailable, workspace.StatusReserved)
}

// Release is the inverse conditional flip, RESERVED back to AVAILABLE.
func (r *WorkspaceRepository) Release(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	return r.transitionStatus(ctx, id, workspace.StatusReserved, workspace.StatusAvailable)
}

func (r *WorkspaceRepository) transitionStatus(ctx context.Context, id uuid.UUID, from, to workspace.Status) (*workspace.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx,
		`UPDATE workspaces SET status = $3, version = version + 1
		 WHERE id = $1 AND status = $2
		 RETURNING `+workspaceColumns,
		id, string(from), string(to))

	ws, err := scanWorkspace(row, nil)
	if err == nil {
		return ws, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("failed to transition workspace status", err)
	}

	// Zero rows: distinguish a missing workspace from one in the wrong state.
	var exists bool
	if checkErr := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM workspaces WHERE id = $1)", id).Scan(&exists); checkErr != nil {
		return nil, infra.WrapRepoErr("failed to check workspace existence", checkErr)
	}
	if !exists {
		return nil, infra.WrapRepoErr("workspace not found", err, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("workspace not in expected status", err, infra.KindConflict)
}

// AppendSlot admits a slot through a conditional insert. The exclusion
// constraint on (workspace_id, tstzrange) makes overlapping admissions
// mutually exclusive at the store, so no in-process lock is needed.
func (r *WorkspaceRepository) AppendSlot(ctx context.Context, workspaceID uuid.UUID, slot booking.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx,
		`INSERT INTO workspace_time_slots (workspace_id, user_id, start_time, end_time)
		 VALUES ($1, $2, $3, $4)`,
		workspaceID, slot.UserID(), slot.Start(), slot.End())
	if err != nil {
		if isPgCode(err, codeExclusionViolated) {
			return infra.WrapRepoErr("time slot overlaps an admitted slot", err, infra.KindConflict)
		}
		if isPgCode(err, codeForeignKeyViolated) {
			return infra.WrapRepoErr("workspace not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to append time slot", err)
	}

	return nil
}

// PruneSlotsBefore removes slots that ended before the cutoff. Used by the
// janitor to keep per-workspace slot lists bounded.
func (r *WorkspaceRepository) PruneSlotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx,
		"DELETE FROM workspace_time_slots WHERE end_time < $1", cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to prune time slots", err)
	}

	return tag.RowsAffected(), nil
}

func (r *WorkspaceRepository) findSlots(ctx context.Context, workspaceID uuid.UUID) ([]booking.TimeSlot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, start_time, end_time FROM workspace_time_slots
		 WHERE workspace_id = $1 ORDER BY start_time`, workspaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load time slots", err)
	}
	defer rows.Close()

	var slots []booking.TimeSlot
	for rows.Next() {
		var userID uuid.UUID
		var start, end time.Time
		if scanErr := rows.Scan(&userID, &start, &end); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot row", scanErr)
		}
		slots = append(slots, booking.ReconstructTimeSlot(start, end, userID))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time slot rows", err)
	}

	return slots, nil
}

func scanWorkspace(row pgx.Row, slots []booking.TimeSlot) (*workspace.Workspace, error) {
	var (
		id          uuid.UUID
		roomType    string
		name        string
		capacity    int
		description string
		basePrice   float64
		status      string
		version     int64
	)
	if err := row.Scan(&id, &roomType, &name, &capacity, &description, &basePrice, &status, &version); err != nil {
		return nil, err
	}

	return workspace.ReconstructWorkspace(
		id, roomType, name, capacity, description, basePrice,
		workspace.Status(status), slots, version,
	), nil
}
