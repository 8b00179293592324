package notification

import (
	"context"

	"maidly/models"
	"maidly/utils"

	"go.uber.org/zap"
)

// NotificationService delivers reservation lifecycle notices to customers.
type NotificationService interface {
	SendReservationConfirmation(ctx context.Context, payload models.ReservationConfirmationPayload) error
}

// DefaultNotificationService records confirmations in the log. Actual mail
// delivery is owned by the external mail collaborator; this implementation is
// the seam it plugs into.
type DefaultNotificationService struct{}

func (s *DefaultNotificationService) SendReservationConfirmation(ctx context.Context, payload models.ReservationConfirmationPayload) error {
	logger := utils.GetLogger()
	logger.Info("reservation confirmation sent",
		zap.String("reservationId", payload.ReservationID),
		zap.String("email", payload.Email),
		zap.Int("totalPrice", payload.TotalPrice),
		zap.String("currency", payload.Currency),
	)
	return nil
}
