package response

import (
	"workspace-rental/internal/domain/booking"
	"workspace-rental/internal/domain/workspace"

	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02T15:04:05"

type SlotResponse struct {
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	UserID    uuid.UUID `json:"userId"`
}

type WorkspaceResponse struct {
	ID          uuid.UUID      `json:"id"`
	RoomType    string         `json:"roomType"`
	Name        string         `json:"name"`
	Capacity    int            `json:"capacity"`
	Description string         `json:"description,omitempty"`
	BasePrice   float64        `json:"basePrice"`
	Status      string         `json:"status"`
	RentedSlots []SlotResponse `json:"rentedSlots"`
}

func FromSlot(slot booking.TimeSlot) SlotResponse {
	return SlotResponse{
		StartTime: slot.Start().Format(timestampLayout),
		EndTime:   slot.End().Format(timestampLayout),
		UserID:    slot.UserID(),
	}
}

func FromWorkspace(ws *workspace.Workspace) *WorkspaceResponse {
	slots := make([]SlotResponse, len(ws.RentedSlots()))
	for i, slot := range ws.RentedSlots() {
		slots[i] = FromSlot(slot)
	}
	return &WorkspaceResponse{
		ID:          ws.ID(),
		RoomType:    ws.RoomType(),
		Name:        ws.Name(),
		Capacity:    ws.Capacity(),
		Description: ws.Description(),
		BasePrice:   ws.BasePrice(),
		Status:      string(ws.Status()),
		RentedSlots: slots,
	}
}

func FromWorkspaceList(list []*workspace.Workspace) []*WorkspaceResponse {
	result := make([]*WorkspaceResponse, len(list))
	for i, ws := range list {
		result[i] = FromWorkspace(ws)
	}
	return result
}
