package response

import (
	"workspace-rental/internal/domain/equipment"

	"github.com/google/uuid"
)

type EquipmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Available bool      `json:"available"`
}

func FromEquipment(item *equipment.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:        item.ID(),
		Name:      item.Name(),
		Price:     item.Price(),
		Available: item.Available(),
	}
}

func FromEquipmentList(list []*equipment.Equipment) []*EquipmentResponse {
	result := make([]*EquipmentResponse, len(list))
	for i, item := range list {
		result[i] = FromEquipment(item)
	}
	return result
}
