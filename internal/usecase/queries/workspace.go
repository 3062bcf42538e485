package queries

import (
	"context"

	"workspace-rental/internal/domain/workspace"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWorkspaceNotFound = errs.New("workspace not found")

type WorkspaceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error)
	List(ctx context.Context) ([]*workspace.Workspace, error)
}

type WorkspaceQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error)
	List(ctx context.Context) ([]*workspace.Workspace, error)
}

type workspaceQueriesImpl struct {
	store WorkspaceReadStore
}

func NewWorkspaceQueries(store WorkspaceReadStore) WorkspaceQueries {
	return &workspaceQueriesImpl{store: store}
}

func (q *workspaceQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	ws, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrWorkspaceNotFound)
		}
		return nil, err
	}
	return ws, nil
}

func (q *workspaceQueriesImpl) List(ctx context.Context) ([]*workspace.Workspace, error) {
	return q.store.List(ctx)
}
