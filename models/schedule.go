package models

// DaySchedule is a salon's declared bookable slots for one calendar date.
// Slots are "HH:mm" strings, unique within the day; the stored order is the
// order the owner declared and is preserved end to end.
type DaySchedule struct {
	SalonID string   `bson:"salonId" json:"salonId"`
	Date    string   `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slots   []string `bson:"slots" json:"slots"`
}
