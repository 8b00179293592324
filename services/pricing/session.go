package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"maidly/models"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "configurator:"

// Catalog exposes the static reference data the configurator serves.
func (s *DefaultConfiguratorService) Catalog() *models.Catalog {
	return s.CatalogData
}

// Quote computes the full quote for a selection: breakdown, completeness gate
// and upsell suggestions. Unknown ids are rejected here, at the boundary, so
// the calculator itself never has to crash a purchase flow.
func (s *DefaultConfiguratorService) Quote(sel models.Selection) (models.Quote, error) {
	if err := ValidateSelection(s.CatalogData, sel); err != nil {
		return models.Quote{}, err
	}
	return models.Quote{
		Breakdown:       ComputeTotal(s.CatalogData, sel),
		IsComplete:      IsComplete(sel),
		CompletionHint:  CompletionHint(sel),
		Recommendations: Recommend(sel),
		CategoryLabel:   s.CatalogData.Categories[sel.Category].Name,
		PackageLabel:    s.CatalogData.Packages[sel.PackageSize].Name,
		Currency:        s.Currency,
	}, nil
}

// PresetOffers returns the preset gallery with advertised prices attached.
func (s *DefaultConfiguratorService) PresetOffers() []models.PresetOffer {
	presets := Presets()
	offers := make([]models.PresetOffer, 0, len(presets))
	for _, p := range presets {
		regular, discounted := AdvertisedPrice(s.CatalogData, p)
		offers = append(offers, models.PresetOffer{
			PresetPackage:   p,
			RegularPrice:    regular,
			DiscountedPrice: discounted,
		})
	}
	return offers
}

// InitiateSession creates a new configurator session with the default
// selection, assigns it a unique SessionID, and stores it in Redis.
func (s *DefaultConfiguratorService) InitiateSession() (*models.ConfiguratorSession, error) {
	sel := models.NewSelection()
	quote, err := s.Quote(sel)
	if err != nil {
		return nil, fmt.Errorf("failed to quote default selection: %w", err)
	}

	now := time.Now()
	session := &models.ConfiguratorSession{
		SessionID: uuid.New().String(),
		Selection: sel,
		Quote:     quote,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a live session from Redis.
func (s *DefaultConfiguratorService) GetSession(sessionID string) (*models.ConfiguratorSession, error) {
	ctx := context.Background()
	sessionData, err := s.CacheClient.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, NewSessionNotFoundError(sessionID)
	}
	var session models.ConfiguratorSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse configurator session: %w", err)
	}
	return &session, nil
}

// UpdateSession applies a partial selection update, recomputes the quote, and
// saves the session back. The quote is a synchronous derivation of the new
// state; a failed update leaves the stored session untouched.
func (s *DefaultConfiguratorService) UpdateSession(sessionID string, update models.SelectionUpdate) (*models.ConfiguratorSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(&session.Selection, update); err != nil {
		return nil, err
	}

	quote, err := s.Quote(session.Selection)
	if err != nil {
		return nil, err
	}
	session.Quote = quote
	session.UpdatedAt = time.Now()

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession drops the session from Redis.
func (s *DefaultConfiguratorService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := s.CacheClient.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete configurator session: %w", err)
	}
	return nil
}

func (s *DefaultConfiguratorService) saveSession(session *models.ConfiguratorSession) error {
	sessionData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal configurator session: %w", err)
	}
	ttl := s.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	ctx := context.Background()
	if err := s.CacheClient.Set(ctx, sessionKeyPrefix+session.SessionID, sessionData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store configurator session: %w", err)
	}
	return nil
}

// applyUpdate mutates the selection through its setters. A preset, when
// present, is applied first; explicit fields then override on top of it.
func applyUpdate(sel *models.Selection, update models.SelectionUpdate) error {
	if update.PresetID != nil {
		preset, ok := PresetByID(*update.PresetID)
		if !ok {
			return fmt.Errorf("unknown preset %q", *update.PresetID)
		}
		ApplyPreset(sel, preset)
	}
	if update.Category != nil {
		sel.SetCategory(*update.Category)
	}
	if update.PackageSize != nil {
		sel.SetPackageSize(*update.PackageSize)
	}
	if update.Extras != nil {
		sel.SetExtras(*update.Extras)
	}
	if update.ToggleExtra != nil {
		sel.ToggleExtra(*update.ToggleExtra)
	}
	if update.Frequency != nil {
		sel.SetFrequency(*update.Frequency)
	}
	if update.Urgency != nil {
		sel.SetUrgency(*update.Urgency)
	}
	if update.WindowTier != nil {
		sel.SetWindowTier(*update.WindowTier)
	}
	if update.HasOwnSupplies != nil {
		sel.SetHasOwnSupplies(*update.HasOwnSupplies)
	}
	return nil
}
