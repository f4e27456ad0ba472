package scheduling

import "time"

// ValidSlotLabel reports whether label is a zero-padded HH:MM time-of-day.
// The length check matters: time.Parse accepts one-digit hours, but labels
// like "9:30" would break lexicographic time ordering and could coexist
// with "09:30" as a distinct label for the same physical time.
func ValidSlotLabel(label string) bool {
	if len(label) != 5 {
		return false
	}
	_, err := time.Parse("15:04", label)
	return err == nil
}

// ValidDate reports whether date is a zero-padded YYYY-MM-DD calendar date.
func ValidDate(date string) bool {
	if len(date) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
