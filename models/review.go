package models

import "time"

// Review is a customer's feedback on a salon, tied to a completed booking.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	SalonID   string    `bson:"salonId" json:"salonId"`
	UserID    string    `bson:"userId" json:"userId"`
	BookingID string    `bson:"bookingId" json:"bookingId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
