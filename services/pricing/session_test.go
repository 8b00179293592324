package pricing

import (
	"errors"
	"testing"
	"time"

	"maidly/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestService() *DefaultConfiguratorService {
	return &DefaultConfiguratorService{
		CatalogData: DefaultCatalog(),
		Currency:    "UAH",
	}
}

func strPtr(s string) *string { return &s }
func catPtr(c models.Category) *models.Category { return &c }
func freqPtr(f models.Frequency) *models.Frequency { return &f }
func extraPtr(id models.ExtraID) *models.ExtraID { return &id }
func supPtr(v bool) *bool { return &v }
func sizePtr(p models.PackageSize) *models.PackageSize { return &p }

func TestQuoteDefaultSelection(t *testing.T) {
	svc := newTestService()

	quote, err := svc.Quote(models.NewSelection())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Breakdown.GrandTotal != 2890 {
		t.Errorf("grand total = %d, want 2890", quote.Breakdown.GrandTotal)
	}
	if !quote.IsComplete {
		t.Errorf("default selection should be complete")
	}
	if quote.CategoryLabel != "Standard Cleaning" || quote.PackageLabel != "Medium" {
		t.Errorf("labels = %q/%q", quote.CategoryLabel, quote.PackageLabel)
	}
	if quote.Currency != "UAH" {
		t.Errorf("currency = %q", quote.Currency)
	}
}

func TestQuoteRejectsUnknownIDs(t *testing.T) {
	svc := newTestService()

	sel := models.NewSelection()
	sel.SetExtras([]models.ExtraID{"disco-ball-polish"})

	if _, err := svc.Quote(sel); err == nil {
		t.Fatalf("quote accepted an unknown extra id")
	}
}

func TestQuoteIncompleteSelectionCarriesHint(t *testing.T) {
	svc := newTestService()

	sel := models.NewSelection()
	sel.SetCategory(models.CategoryRegular)

	quote, err := svc.Quote(sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.IsComplete {
		t.Fatalf("regular without frequency must be incomplete")
	}
	if quote.CompletionHint == "" {
		t.Fatalf("incomplete quote carries no hint")
	}
}

func TestApplyUpdateFieldwise(t *testing.T) {
	sel := models.NewSelection()

	err := applyUpdate(&sel, models.SelectionUpdate{
		Category:       catPtr(models.CategoryRegular),
		Frequency:      freqPtr(models.FrequencyBiweekly),
		ToggleExtra:    extraPtr(ExtraOvenCleaning),
		HasOwnSupplies: supPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sel.Category != models.CategoryRegular || sel.Frequency != models.FrequencyBiweekly {
		t.Fatalf("category/frequency not applied: %+v", sel)
	}
	if !sel.HasExtra(ExtraOvenCleaning) {
		t.Fatalf("toggle not applied")
	}
	if !sel.HasOwnSupplies {
		t.Fatalf("hasOwnSupplies not applied")
	}
}

func TestApplyUpdatePresetThenOverride(t *testing.T) {
	sel := models.NewSelection()

	// The preset lands first; the explicit package size overrides it.
	err := applyUpdate(&sel, models.SelectionUpdate{
		PresetID:    strPtr("deep-clean-day"),
		PackageSize: sizePtr(models.PackageLarge),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sel.Category != models.CategoryGeneral {
		t.Fatalf("preset category not applied: %q", sel.Category)
	}
	if sel.PackageSize != models.PackageLarge {
		t.Fatalf("override lost: %q", sel.PackageSize)
	}
}

func TestApplyUpdateUnknownPreset(t *testing.T) {
	sel := models.NewSelection()

	if err := applyUpdate(&sel, models.SelectionUpdate{PresetID: strPtr("nope")}); err == nil {
		t.Fatalf("unknown preset accepted")
	}
}

func newSessionBackedService(t *testing.T) (*DefaultConfiguratorService, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return &DefaultConfiguratorService{
		CatalogData: DefaultCatalog(),
		CacheClient: client,
		Currency:    "UAH",
		SessionTTL:  DefaultSessionTTL,
	}, srv
}

func TestInitiateSessionStoresDefaultSelection(t *testing.T) {
	svc, srv := newSessionBackedService(t)

	session, err := svc.InitiateSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.SessionID == "" {
		t.Fatalf("session has no id")
	}
	if session.Quote.Breakdown.GrandTotal != 2890 {
		t.Errorf("initial quote = %d, want 2890", session.Quote.Breakdown.GrandTotal)
	}

	if ttl := srv.TTL(sessionKeyPrefix + session.SessionID); ttl != DefaultSessionTTL {
		t.Errorf("stored ttl = %v, want %v", ttl, DefaultSessionTTL)
	}

	got, err := svc.GetSession(session.SessionID)
	if err != nil {
		t.Fatalf("round-trip failed: %v", err)
	}
	if got.Selection.Category != models.CategoryStandard || got.Selection.PackageSize != models.PackageMedium {
		t.Errorf("round-tripped selection = %+v", got.Selection)
	}
}

func TestUpdateSessionPersistsRecomputedQuote(t *testing.T) {
	svc, _ := newSessionBackedService(t)

	session, err := svc.InitiateSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateSession(session.SessionID, models.SelectionUpdate{
		Category:  catPtr(models.CategoryRegular),
		Frequency: freqPtr(models.FrequencyWeekly),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2890 * 0.85 * 0.85 = 2088.025, rounded once.
	if updated.Quote.Breakdown.GrandTotal != 2088 {
		t.Errorf("updated quote = %d, want 2088", updated.Quote.Breakdown.GrandTotal)
	}

	// A fresh read must see the stored update, not just the returned copy.
	got, err := svc.GetSession(session.SessionID)
	if err != nil {
		t.Fatalf("round-trip failed: %v", err)
	}
	if got.Quote.Breakdown.GrandTotal != 2088 || got.Selection.Frequency != models.FrequencyWeekly {
		t.Errorf("stored session = %+v", got)
	}
}

func TestGetSessionExpires(t *testing.T) {
	svc, srv := newSessionBackedService(t)

	session, err := svc.InitiateSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv.FastForward(DefaultSessionTTL + time.Minute)

	_, err = svc.GetSession(session.SessionID)
	var sessionErr *SessionError
	if !errors.As(err, &sessionErr) || sessionErr.Code != "sessionNotFound" {
		t.Fatalf("expired session error = %v", err)
	}
}

func TestCancelSessionDropsState(t *testing.T) {
	svc, _ := newSessionBackedService(t)

	session, err := svc.InitiateSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.CancelSession(session.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetSession(session.SessionID); err == nil {
		t.Fatalf("cancelled session still readable")
	}

	_, err = svc.UpdateSession(session.SessionID, models.SelectionUpdate{
		Category: catPtr(models.CategoryGeneral),
	})
	var sessionErr *SessionError
	if !errors.As(err, &sessionErr) || sessionErr.Code != "sessionNotFound" {
		t.Fatalf("update on missing session error = %v", err)
	}
}

func TestPresetOffers(t *testing.T) {
	svc := newTestService()

	offers := svc.PresetOffers()
	if len(offers) != len(Presets()) {
		t.Fatalf("got %d offers, want %d", len(offers), len(Presets()))
	}
	for _, o := range offers {
		if o.DiscountedPrice != o.RegularPrice-o.Savings {
			t.Errorf("%s: discounted = %d, want %d", o.ID, o.DiscountedPrice, o.RegularPrice-o.Savings)
		}
		if o.DiscountedPrice <= 0 {
			t.Errorf("%s: advertised price not positive", o.ID)
		}
	}
}
