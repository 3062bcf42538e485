package response

import (
	"time"

	"workspace-rental/internal/domain/payment"

	"github.com/google/uuid"
)

type PaymentRecordResponse struct {
	PaymentID    uuid.UUID   `json:"paymentId"`
	CreatedAt    time.Time   `json:"createdAt"`
	Amount       float64     `json:"amount"`
	UserID       uuid.UUID   `json:"userId"`
	WorkspaceID  uuid.UUID   `json:"workspaceId"`
	EquipmentIDs []uuid.UUID `json:"equipmentIds,omitempty"`
	LateFine     *float64    `json:"lateFine,omitempty"`
	Status       string      `json:"status"`
}

func FromPaymentRecord(record *payment.Record) *PaymentRecordResponse {
	return &PaymentRecordResponse{
		PaymentID:    record.PaymentID,
		CreatedAt:    record.CreatedAt,
		Amount:       record.Amount,
		UserID:       record.UserID,
		WorkspaceID:  record.WorkspaceID,
		EquipmentIDs: record.EquipmentIDs,
		LateFine:     record.LateFine,
		Status:       string(record.Status),
	}
}

func FromPaymentRecordList(records []*payment.Record) []*PaymentRecordResponse {
	result := make([]*PaymentRecordResponse, len(records))
	for i, record := range records {
		result[i] = FromPaymentRecord(record)
	}
	return result
}
