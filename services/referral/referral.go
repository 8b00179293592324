package referral

import (
	"context"
	"errors"
	"math"
	"time"

	referralRepo "maidly/database/repository/referral"
)

// ReferralService resolves referral codes and applies their discount on top
// of an already-computed grand total. The pricing engine never sees codes;
// this composition happens strictly after it.
type ReferralService interface {
	FinalPrice(ctx context.Context, grandTotal int, code string) (final int, discount float64, err error)
}

// DefaultReferralService implements ReferralService.
type DefaultReferralService struct {
	Repo referralRepo.ReferralRepository
}

// FinalPrice returns round(grandTotal * (1 - discount)). Unknown, inactive or
// expired codes leave the total untouched rather than failing the reservation.
func (s *DefaultReferralService) FinalPrice(ctx context.Context, grandTotal int, code string) (int, float64, error) {
	if code == "" {
		return grandTotal, 0, nil
	}
	ref, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, referralRepo.ErrNotFound) {
			return grandTotal, 0, nil
		}
		return 0, 0, err
	}
	if !ref.Active {
		return grandTotal, 0, nil
	}
	if ref.ExpiresAt != nil && ref.ExpiresAt.Before(time.Now()) {
		return grandTotal, 0, nil
	}
	return int(math.Round(float64(grandTotal) * (1 - ref.Discount))), ref.Discount, nil
}
