package pricing

import (
	"time"

	"maidly/models"

	"github.com/go-redis/redis/v8"
)

// ConfiguratorService defines the interface for managing a stateful pricing
// configurator session.
type ConfiguratorService interface {
	InitiateSession() (*models.ConfiguratorSession, error)
	GetSession(sessionID string) (*models.ConfiguratorSession, error)
	UpdateSession(sessionID string, update models.SelectionUpdate) (*models.ConfiguratorSession, error)
	CancelSession(sessionID string) error
	Quote(sel models.Selection) (models.Quote, error)
	Catalog() *models.Catalog
	PresetOffers() []models.PresetOffer
}

// DefaultConfiguratorService implements ConfiguratorService on top of the
// pure pricing functions, with sessions held in Redis.
type DefaultConfiguratorService struct {
	CatalogData *models.Catalog
	CacheClient *redis.Client
	Currency    string
	SessionTTL  time.Duration
}

// DefaultSessionTTL matches how long the website keeps an idle configurator open.
const DefaultSessionTTL = 30 * time.Minute
