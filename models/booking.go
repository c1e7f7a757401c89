package models

import "time"

// Booking lifecycle statuses. A booking holds its slot (blocks new bookings
// for the same salon/date/slot) only while pending or confirmed.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// HoldingStatuses are the booking statuses that keep a slot unavailable.
var HoldingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// Booking represents a customer's claim on one salon/date/time slot.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	SalonID     string    `bson:"salonId" json:"salonId"`         // Salon that was booked
	UserID      string    `bson:"userId" json:"userId"`           // Customer who made the booking
	ServiceID   string    `bson:"serviceId" json:"serviceId"`     // Service selected from the salon's catalogue
	ServiceName string    `bson:"serviceName" json:"serviceName"` // Denormalized for history views
	Date        string    `bson:"date" json:"date"`               // Booking date in "YYYY-MM-DD" format
	Slot        string    `bson:"slot" json:"slot"`               // Time-of-day slot in "HH:mm" format
	Price       float64   `bson:"price" json:"price"`             // Price at booking time
	Status      string    `bson:"status" json:"status"`           // pending | confirmed | cancelled | completed
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsHolding reports whether the booking currently blocks its slot.
func (b Booking) IsHolding() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
