package payment

import (
	"time"

	"github.com/google/uuid"
)

type RecordStatus string

const (
	StatusSuccess RecordStatus = "success"
	StatusFailed  RecordStatus = "failed"
)

// Record is one ledger entry for a single payment attempt, successful or
// not. It is created exactly once per attempt and never updated; the id
// is generated before the ledger write so a retried write cannot
// duplicate the entry.
type Record struct {
	PaymentID    uuid.UUID
	CreatedAt    time.Time
	Amount       float64
	UserID       uuid.UUID
	WorkspaceID  uuid.UUID
	EquipmentIDs []uuid.UUID
	LateFine     *float64
	Status       RecordStatus
}

func NewRecord(
	now time.Time,
	amount float64,
	userID, workspaceID uuid.UUID,
	equipmentIDs []uuid.UUID,
	lateFine *float64,
	status RecordStatus,
) *Record {
	return &Record{
		PaymentID:    uuid.New(),
		CreatedAt:    now,
		Amount:       amount,
		UserID:       userID,
		WorkspaceID:  workspaceID,
		EquipmentIDs: equipmentIDs,
		LateFine:     lateFine,
		Status:       status,
	}
}

func (r *Record) Succeeded() bool {
	return r.Status == StatusSuccess
}

// PaymentInfo is the opaque payload forwarded to the payment provider.
// The engine never inspects it beyond passing it along.
type PaymentInfo struct {
	Method        string `json:"method"`
	Token         string `json:"token"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}
