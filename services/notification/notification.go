// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"glamora/database/repository/user"
	"glamora/models"
	"glamora/utils"
)

// NotificationService sends booking pushes to the affected parties.
// Delivery is best-effort: booking state never depends on it.
type NotificationService interface {
	NotifyBookingCreated(ctx context.Context, booking *models.Booking, ownerID string)
	NotifyBookingStatusChanged(ctx context.Context, booking *models.Booking)
}

// FCMNotificationService is the production implementation over Firebase
// Cloud Messaging.
type FCMNotificationService struct {
	UserRepo userRepo.UserRepository
}

func NewFCMNotificationService(users userRepo.UserRepository) *FCMNotificationService {
	return &FCMNotificationService{UserRepo: users}
}

func (s *FCMNotificationService) NotifyBookingCreated(ctx context.Context, booking *models.Booking, ownerID string) {
	title := "New booking request"
	body := fmt.Sprintf("%s on %s at %s", booking.ServiceName, booking.Date, booking.Slot)
	s.send(ctx, ownerID, title, body, booking)
}

func (s *FCMNotificationService) NotifyBookingStatusChanged(ctx context.Context, booking *models.Booking) {
	title := "Booking " + booking.Status
	body := fmt.Sprintf("%s on %s at %s is now %s", booking.ServiceName, booking.Date, booking.Slot, booking.Status)
	s.send(ctx, booking.UserID, title, body, booking)
}

func (s *FCMNotificationService) send(ctx context.Context, userID, title, body string, booking *models.Booking) {
	logger := utils.GetLogger()

	u, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("notification: could not load recipient", zap.String("userId", userID), zap.Error(err))
		return
	}
	if u.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"bookingId": booking.ID,
			"salonId":   booking.SalonID,
			"status":    booking.Status,
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Warn("notification: failed to send FCM message", zap.String("userId", userID), zap.Error(err))
	}
}
