package response

import (
	"workspace-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type RentNowResponse struct {
	Workspace          *WorkspaceResponse `json:"workspace"`
	TotalPrice         float64            `json:"totalPrice"`
	PaymentID          uuid.UUID          `json:"paymentId"`
	FailedEquipmentIDs []uuid.UUID        `json:"failedEquipmentIds,omitempty"`
}

type RentTimeSlotResponse struct {
	WorkspaceID uuid.UUID    `json:"workspaceId"`
	Slot        SlotResponse `json:"slot"`
	TotalPrice  float64      `json:"totalPrice"`
	PaymentID   uuid.UUID    `json:"paymentId"`
}

func FromRentNowResult(result *commands.RentNowResult) *RentNowResponse {
	return &RentNowResponse{
		Workspace:          FromWorkspace(result.Workspace),
		TotalPrice:         result.TotalPrice,
		PaymentID:          result.Record.PaymentID,
		FailedEquipmentIDs: result.FailedEquipmentIDs,
	}
}

func FromRentSlotResult(workspaceID uuid.UUID, result *commands.RentSlotResult) *RentTimeSlotResponse {
	return &RentTimeSlotResponse{
		WorkspaceID: workspaceID,
		Slot:        FromSlot(result.Slot),
		TotalPrice:  result.TotalPrice,
		PaymentID:   result.Record.PaymentID,
	}
}
