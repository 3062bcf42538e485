package request

import (
	"time"

	"workspace-rental/internal/domain/payment"
	"workspace-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

// TimestampLayout is the only accepted shape for rental window bounds.
// Values like "2023-05-01 10:00:00" (space separator) are rejected.
const TimestampLayout = "2006-01-02T15:04:05"

var ErrBadTimestamp = errs.New("timestamp must match 2006-01-02T15:04:05")

type RentNowRequest struct {
	UserID       uuid.UUID           `json:"user_id" binding:"required"`
	EquipmentIDs []uuid.UUID         `json:"equipment_ids,omitempty"`
	LateFine     *float64            `json:"late_fine,omitempty"`
	PaymentInfo  payment.PaymentInfo `json:"payment_info" binding:"required"`
}

type RentTimeSlotRequest struct {
	UserID      uuid.UUID           `json:"user_id" binding:"required"`
	StartTime   string              `json:"start_time" binding:"required"`
	EndTime     string              `json:"end_time" binding:"required"`
	PaymentInfo payment.PaymentInfo `json:"payment_info" binding:"required"`
}

// ParseWindow validates both bounds against TimestampLayout before any
// store access happens.
func (r RentTimeSlotRequest) ParseWindow() (start, end time.Time, err error) {
	start, err = ParseTimestamp(r.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ParseTimestamp(r.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func ParseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrBadTimestamp)
	}
	return ts, nil
}
