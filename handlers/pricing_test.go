package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maidly/models"
	"maidly/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newQuoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := &pricing.DefaultConfiguratorService{
		CatalogData: pricing.DefaultCatalog(),
		Currency:    "UAH",
	}
	h := NewPricingHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/pricing/quote", h.Quote)
	r.GET("/api/pricing/presets", h.GetPresets)
	return r
}

func TestQuoteEndpoint(t *testing.T) {
	r := newQuoteRouter()

	body := `{"selection":{"category":"general","packageSize":"large","extras":["oven-cleaning"],"urgency":"weekend","windowTier":"4-6"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var quote models.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if quote.Breakdown.GrandTotal != 9682 {
		t.Errorf("grand total = %d, want 9682", quote.Breakdown.GrandTotal)
	}
	if !quote.IsComplete {
		t.Errorf("quote should be complete")
	}
}

func TestQuoteEndpointRejectsUnknownExtra(t *testing.T) {
	r := newQuoteRouter()

	body := `{"selection":{"category":"standard","packageSize":"medium","extras":["disco-ball-polish"]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPresetsEndpoint(t *testing.T) {
	r := newQuoteRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/pricing/presets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Presets []models.PresetOffer `json:"presets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp.Presets) == 0 {
		t.Fatalf("no presets returned")
	}
}
