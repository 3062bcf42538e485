//go:build unit

package booking_test

import (
	"testing"
	"time"

	"workspace-rental/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end string) booking.TimeSlot {
	t.Helper()
	s, err := time.Parse("2006-01-02T15:04:05", start)
	require.NoError(t, err)
	e, err := time.Parse("2006-01-02T15:04:05", end)
	require.NoError(t, err)
	slot, err := booking.NewTimeSlot(s, e, uuid.New())
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	start := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "start before end",
			start: start,
			end:   start.Add(2 * time.Hour),
		},
		{
			name:  "start equal to end",
			start: start,
			end:   start,
			errIs: booking.ErrInvalidSlot,
		},
		{
			name:  "start after end",
			start: start.Add(time.Hour),
			end:   start,
			errIs: booking.ErrInvalidSlot,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := booking.NewTimeSlot(tc.start, tc.end, uuid.New())
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, slot.Start())
			assert.Equal(t, tc.end, slot.End())
		})
	}
}

func TestIsSlotFree(t *testing.T) {
	testCases := []struct {
		name      string
		existing  []booking.TimeSlot
		candidate booking.TimeSlot
		free      bool
	}{
		{
			name:      "empty slot list is trivially free",
			existing:  nil,
			candidate: mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			free:      true,
		},
		{
			name: "identical interval conflicts",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			free:      false,
		},
		{
			name: "partial overlap at the front conflicts",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T09:00:00", "2023-05-01T10:30:00"),
			free:      false,
		},
		{
			name: "partial overlap at the back conflicts",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T11:30:00", "2023-05-01T13:00:00"),
			free:      false,
		},
		{
			name: "candidate fully inside existing conflicts",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T10:30:00", "2023-05-01T11:00:00"),
			free:      false,
		},
		{
			name: "existing fully inside candidate conflicts",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T10:30:00", "2023-05-01T11:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			free:      false,
		},
		{
			name: "touching at the end boundary is free (half-open)",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T12:00:00", "2023-05-01T14:00:00"),
			free:      true,
		},
		{
			name: "touching at the start boundary is free (half-open)",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T10:00:00", "2023-05-01T12:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T08:00:00", "2023-05-01T10:00:00"),
			free:      true,
		},
		{
			name: "conflict with any one of several slots",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T08:00:00", "2023-05-01T09:00:00"),
				mustSlot(t, "2023-05-01T14:00:00", "2023-05-01T16:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T15:00:00", "2023-05-01T17:00:00"),
			free:      false,
		},
		{
			name: "gap between slots is free",
			existing: []booking.TimeSlot{
				mustSlot(t, "2023-05-01T08:00:00", "2023-05-01T09:00:00"),
				mustSlot(t, "2023-05-01T14:00:00", "2023-05-01T16:00:00"),
			},
			candidate: mustSlot(t, "2023-05-01T09:00:00", "2023-05-01T14:00:00"),
			free:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.free, booking.IsSlotFree(tc.existing, tc.candidate))
		})
	}
}

// IsSlotFree must be false exactly when the pairwise overlap predicate
// holds for some existing slot.
func TestIsSlotFreeMatchesOverlapPredicate(t *testing.T) {
	base := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	slotAt := func(startHour, endHour int) booking.TimeSlot {
		slot, err := booking.NewTimeSlot(
			base.Add(time.Duration(startHour)*time.Hour),
			base.Add(time.Duration(endHour)*time.Hour),
			userID,
		)
		require.NoError(t, err)
		return slot
	}

	existing := []booking.TimeSlot{
		slotAt(2, 4),
		slotAt(6, 7),
		slotAt(10, 14),
	}

	for startHour := 0; startHour < 16; startHour++ {
		for endHour := startHour + 1; endHour <= 16; endHour++ {
			candidate := slotAt(startHour, endHour)

			conflicts := false
			for _, s := range existing {
				if s.Start().Before(candidate.End()) && candidate.Start().Before(s.End()) {
					conflicts = true
					break
				}
			}

			assert.Equal(t, !conflicts, booking.IsSlotFree(existing, candidate),
				"candidate [%d,%d)", startHour, endHour)
		}
	}
}
