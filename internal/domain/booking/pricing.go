package booking

// FlatPrice is the charge for an open-ended rental: the workspace base
// price plus an optional late fine.
func FlatPrice(basePrice float64, lateFine *float64) float64 {
	total := basePrice
	if lateFine != nil {
		total += *lateFine
	}
	return total
}

// SlotPrice is the charge for a time-slot rental: the hourly base price
// times the fractional duration in hours. No truncation; base prices and
// durations may both be fractional.
func SlotPrice(basePrice float64, slot TimeSlot) float64 {
	return basePrice * slot.Duration().Hours()
}
