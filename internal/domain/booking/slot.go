package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSlot = errors.New("start time must be before end time")

// TimeSlot is a half-open interval [start, end) admitted for a single user.
// Immutable once created.
type TimeSlot struct {
	start  time.Time
	end    time.Time
	userID uuid.UUID
}

func NewTimeSlot(start, end time.Time, userID uuid.UUID) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidSlot
	}

	return TimeSlot{
		start:  start,
		end:    end,
		userID: userID,
	}, nil
}

// ReconstructTimeSlot rebuilds a slot already admitted by the store,
// bypassing validation.
func ReconstructTimeSlot(start, end time.Time, userID uuid.UUID) TimeSlot {
	return TimeSlot{start: start, end: end, userID: userID}
}

func (ts TimeSlot) Start() time.Time  { return ts.start }
func (ts TimeSlot) End() time.Time    { return ts.end }
func (ts TimeSlot) UserID() uuid.UUID { return ts.userID }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether two half-open intervals intersect. Slots that
// merely touch at a boundary do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// IsSlotFree decides whether candidate may be admitted alongside the
// already admitted slots. An empty slot list is trivially free.
func IsSlotFree(existing []TimeSlot, candidate TimeSlot) bool {
	for _, s := range existing {
		if s.Overlaps(candidate) {
			return false
		}
	}
	return true
}
