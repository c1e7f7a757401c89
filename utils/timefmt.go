package utils

import "time"

const (
	DateLayout = "2006-01-02"
	SlotLayout = "15:04"
)

// ValidDate reports whether s is a well-formed "YYYY-MM-DD" calendar date.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidSlot reports whether s is a well-formed zero-padded "HH:mm" time.
// Slot matching downstream is exact string equality, so writers must reject
// unnormalized forms like "9:00" here.
func ValidSlot(s string) bool {
	if len(s) != len(SlotLayout) {
		return false
	}
	_, err := time.Parse(SlotLayout, s)
	return err == nil
}
