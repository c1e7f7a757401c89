package handlers

import (
	userRepoPkg "glamora/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	// UserRepo backs the auth middleware's token-hash fallback lookup.
	UserRepo userRepoPkg.UserRepository

	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Salon        *SalonHandler
	Review       *ReviewHandler
	User         *UserHandler
	Admin        *AdminHandler
	AI           *IntelligenceHandler
	Sitemap      *SitemapHandler
}
