package stay

import (
	"github.com/google/uuid"
)

// ReservedInterval is an existing booking's occupancy of a room.
type ReservedInterval struct {
	BookingID uuid.UUID
	Range     DateRange
}

// HasConflict reports whether candidate overlaps any of the existing intervals.
// The caller passes only intervals of the candidate's room. When excludeBookingID
// is set, the interval owned by that booking is skipped so an update never
// conflicts with its own stored dates.
func HasConflict(existing []ReservedInterval, candidate DateRange, excludeBookingID *uuid.UUID) bool {
	return len(Conflicts(existing, candidate, excludeBookingID)) > 0
}

// Conflicts returns the intervals that overlap candidate, in input order.
func Conflicts(existing []ReservedInterval, candidate DateRange, excludeBookingID *uuid.UUID) []ReservedInterval {
	var out []ReservedInterval
	for _, iv := range existing {
		if excludeBookingID != nil && iv.BookingID == *excludeBookingID {
			continue
		}
		if iv.Range.Overlaps(candidate) {
			out = append(out, iv)
		}
	}
	return out
}
