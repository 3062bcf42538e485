package commands

import (
	"context"

	"workspace-rental/internal/domain/equipment"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEquipmentNotClaimed = errs.New("equipment not claimed")

type CreateEquipmentParams struct {
	Name  string
	Price float64
}

type UpdateEquipmentParams struct {
	Name  *string
	Price *float64
}

type EquipmentCommands interface {
	Create(ctx context.Context, params CreateEquipmentParams) (*equipment.Equipment, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateEquipmentParams) (*equipment.Equipment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Release(ctx context.Context, id uuid.UUID) error
}

type equipmentCommandsImpl struct {
	repo EquipmentRepository
}

func NewEquipmentCommands(repo EquipmentRepository) EquipmentCommands {
	return &equipmentCommandsImpl{repo: repo}
}

func (c *equipmentCommandsImpl) Create(ctx context.Context, params CreateEquipmentParams) (*equipment.Equipment, error) {
	item, err := equipment.NewEquipment(params.Name, params.Price)
	if err != nil {
		return nil, err
	}

	if err := c.repo.Create(ctx, item); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return item, nil
}

func (c *equipmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateEquipmentParams) (*equipment.Equipment, error) {
	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	name := current.Name()
	if params.Name != nil {
		name = *params.Name
	}
	price := current.Price()
	if params.Price != nil {
		price = *params.Price
	}

	updated := equipment.ReconstructEquipment(current.ID(), name, price, current.Available())

	if err := c.repo.Update(ctx, updated); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return updated, nil
}

func (c *equipmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrEquipmentNotFound)
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}

// Release returns a claimed item to the rentable pool. There is no
// automatic release when a rental ends; this is the administrative path.
func (c *equipmentCommandsImpl) Release(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.ReleaseItem(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrEquipmentNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return errs.Mark(err, ErrEquipmentNotClaimed)
		default:
			return errs.Mark(err, ErrStoreUnavailable)
		}
	}
	return nil
}
