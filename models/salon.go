package models

import "time"

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// Service is one bookable offering in a salon's catalogue.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description,omitempty"`
	DurationMin int     `bson:"durationMin" json:"durationMin"`
	Price       float64 `bson:"price" json:"price"`
}

// Promotion is a time-limited offer attached to a salon.
type Promotion struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description,omitempty"`
	DiscountPercent int       `bson:"discountPercent" json:"discountPercent"`
	ValidUntil      time.Time `bson:"validUntil" json:"validUntil"`
}

// RatingSummary is the salon's aggregated review score.
type RatingSummary struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

// Salon is a business entity offering bookable services.
type Salon struct {
	ID          string        `bson:"id" json:"id"`
	OwnerID     string        `bson:"ownerId" json:"ownerId"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description,omitempty"`
	PhoneNumber string        `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	City        string        `bson:"city" json:"city,omitempty"`
	Address     string        `bson:"address" json:"address,omitempty"`
	LocationGeo GeoPoint      `bson:"locationGeo,omitempty" json:"locationGeo,omitempty"`
	PhotoIDs    []string      `bson:"photoIds,omitempty" json:"photoIds,omitempty"` // Cloudinary public IDs
	Services    []Service     `bson:"services" json:"services"`
	Promotions  []Promotion   `bson:"promotions,omitempty" json:"promotions,omitempty"`
	Rating      RatingSummary `bson:"rating" json:"rating"`
	Published   bool          `bson:"published" json:"published"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ServiceByID returns the catalogue entry with the given id, if present.
func (s *Salon) ServiceByID(id string) (*Service, bool) {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i], true
		}
	}
	return nil, false
}
