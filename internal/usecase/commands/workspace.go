package commands

import (
	"context"

	"workspace-rental/internal/domain/workspace"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWorkspaceConflict = errs.New("workspace conflict")

type CreateWorkspaceParams struct {
	RoomType    string
	Name        string
	Capacity    int
	Description string
	BasePrice   float64
}

type UpdateWorkspaceParams struct {
	RoomType    *string
	Name        *string
	Capacity    *int
	Description *string
	BasePrice   *float64
}

type WorkspaceCommands interface {
	Create(ctx context.Context, params CreateWorkspaceParams) (*workspace.Workspace, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateWorkspaceParams) (*workspace.Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type workspaceCommandsImpl struct {
	repo WorkspaceRepository
}

func NewWorkspaceCommands(repo WorkspaceRepository) WorkspaceCommands {
	return &workspaceCommandsImpl{repo: repo}
}

func (c *workspaceCommandsImpl) Create(ctx context.Context, params CreateWorkspaceParams) (*workspace.Workspace, error) {
	ws, err := workspace.NewWorkspace(
		params.RoomType, params.Name, params.Capacity, params.Description, params.BasePrice)
	if err != nil {
		return nil, err
	}

	if err := c.repo.Create(ctx, ws); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return ws, nil
}

// Update rebuilds the snapshot with the requested changes and writes it
// back under the version read; a concurrent change surfaces as a conflict
// the caller retries with fresh state.
func (c *workspaceCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateWorkspaceParams) (*workspace.Workspace, error) {
	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrWorkspaceNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	roomType := current.RoomType()
	if params.RoomType != nil {
		roomType = *params.RoomType
	}
	name := current.Name()
	if params.Name != nil {
		name = *params.Name
	}
	capacity := current.Capacity()
	if params.Capacity != nil {
		capacity = *params.Capacity
	}
	description := current.Description()
	if params.Description != nil {
		description = *params.Description
	}
	basePrice := current.BasePrice()
	if params.BasePrice != nil {
		basePrice = *params.BasePrice
	}

	updated := workspace.ReconstructWorkspace(
		current.ID(), roomType, name, capacity, description, basePrice,
		current.Status(), current.RentedSlots(), current.Version(),
	)

	if err := c.repo.Update(ctx, updated); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrWorkspaceConflict)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return updated, nil
}

func (c *workspaceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrWorkspaceNotFound)
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}
