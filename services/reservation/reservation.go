package reservation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	reservationRepo "maidly/database/repository/reservation"
	"maidly/models"
	"maidly/services/pricing"
	"maidly/services/tasks"
	"maidly/utils"

	"go.uber.org/zap"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)
)

// ValidateContact checks the reservation form's contact fields.
func ValidateContact(c models.ContactDetails) error {
	if strings.TrimSpace(c.Name) == "" {
		return newValidationError("name", "name is required")
	}
	if !emailRegex.MatchString(c.Email) {
		return newValidationError("email", "email address is not valid")
	}
	if !phoneRegex.MatchString(c.Phone) {
		return newValidationError("phone", "phone number is not valid")
	}
	if strings.TrimSpace(c.Address) == "" {
		return newValidationError("address", "address is required")
	}
	return nil
}

// CreateFromSession freezes the session's quote into a reservation record,
// applies any referral discount on top of the grand total, persists it, and
// enqueues the confirmation task. The enqueue is fire-and-forget: a queue
// failure is logged, not surfaced to the customer.
func (s *DefaultReservationService) CreateFromSession(ctx context.Context, session *models.ConfiguratorSession, req models.ReservationRequest) (*models.Reservation, error) {
	if !pricing.IsComplete(session.Selection) {
		return nil, pricing.NewIncompleteSelectionError(pricing.CompletionHint(session.Selection))
	}
	if err := ValidateContact(req.Contact); err != nil {
		return nil, err
	}

	sel := session.Selection
	quote := session.Quote

	extras := make([]models.ReservationExtra, 0, len(sel.Extras))
	for _, id := range sel.Extras {
		extra, ok := s.CatalogData.Extras[id]
		if !ok {
			// Validated at quote time, so this indicates a defect upstream.
			return nil, fmt.Errorf("extra %q missing from catalog", id)
		}
		extras = append(extras, models.ReservationExtra{
			ID:    id,
			Label: extra.Label,
			Price: extra.Price,
		})
	}

	var frequencyLabel *string
	if sel.Frequency != models.FrequencyNone {
		label := s.CatalogData.Frequencies[sel.Frequency].Name
		frequencyLabel = &label
	}

	finalPrice, discount, err := s.Referral.FinalPrice(ctx, quote.Breakdown.GrandTotal, req.ReferralCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve referral code: %w", err)
	}

	res := models.Reservation{
		Contact:          req.Contact,
		PackageTypeLabel: fmt.Sprintf("%s — %s", quote.CategoryLabel, quote.PackageLabel),
		BasePrice:        quote.Breakdown.BasePrice,
		Extras:           extras,
		TotalPrice:       quote.Breakdown.GrandTotal,
		FrequencyLabel:   frequencyLabel,
		ReferralCode:     req.ReferralCode,
		FinalPrice:       finalPrice,
		Selection:        sel,
		Notes:            req.Notes,
		Status:           models.ReservationStatusPending,
	}

	id, err := s.Repo.Create(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}
	res.ID = id

	s.enqueueConfirmation(res)

	logger := utils.GetLogger()
	logger.Info("reservation created",
		zap.String("reservationId", res.ID),
		zap.Int("totalPrice", res.TotalPrice),
		zap.Int("finalPrice", res.FinalPrice),
		zap.Float64("referralDiscount", discount),
	)
	return &res, nil
}

func (s *DefaultReservationService) enqueueConfirmation(res models.Reservation) {
	logger := utils.GetLogger()
	payload := models.ReservationConfirmationPayload{
		ReservationID: res.ID,
		Name:          res.Contact.Name,
		Email:         res.Contact.Email,
		TotalPrice:    res.FinalPrice,
		Currency:      s.Currency,
	}
	task, opts, err := tasks.NewReservationConfirmationTask(payload)
	if err != nil {
		logger.Warn("failed to build confirmation task", zap.Error(err))
		return
	}
	if _, err := s.Enqueuer.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue confirmation task",
			zap.String("reservationId", res.ID), zap.Error(err))
	}
}

// GetByID returns one reservation.
func (s *DefaultReservationService) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	return s.Repo.GetByID(ctx, id)
}

// List pages through reservations for the back-office.
func (s *DefaultReservationService) List(ctx context.Context, filter reservationRepo.ListFilter) ([]models.Reservation, error) {
	return s.Repo.List(ctx, filter)
}

// UpdateStatus moves a reservation through its lifecycle.
func (s *DefaultReservationService) UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error {
	switch status {
	case models.ReservationStatusPending, models.ReservationStatusConfirmed,
		models.ReservationStatusCompleted, models.ReservationStatusCancelled:
	default:
		return newValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}
