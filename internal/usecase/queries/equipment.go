package queries

import (
	"context"

	"workspace-rental/internal/domain/equipment"
	"workspace-rental/internal/infra"
	"workspace-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEquipmentNotFound = errs.New("equipment not found")

type EquipmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
	List(ctx context.Context) ([]*equipment.Equipment, error)
}

type EquipmentQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
	List(ctx context.Context) ([]*equipment.Equipment, error)
}

type equipmentQueriesImpl struct {
	store EquipmentReadStore
}

func NewEquipmentQueries(store EquipmentReadStore) EquipmentQueries {
	return &equipmentQueriesImpl{store: store}
}

func (q *equipmentQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	item, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEquipmentNotFound)
		}
		return nil, err
	}
	return item, nil
}

func (q *equipmentQueriesImpl) List(ctx context.Context) ([]*equipment.Equipment, error) {
	return q.store.List(ctx)
}
