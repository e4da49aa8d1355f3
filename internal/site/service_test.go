package site

import (
	"context"
	"testing"
	"time"

	"dental-site/internal/common/config"
	"dental-site/internal/common/logger"
	"dental-site/internal/common/observability"
	"dental-site/internal/enrichment"
	"dental-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, apiKey, placeID string, ttl time.Duration) *models.PlaceRecord {
	args := m.Called(ctx, apiKey, placeID, ttl)
	rec, _ := args.Get(0).(*models.PlaceRecord)
	return rec
}

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.FromEnv(config.NewEnv(config.MapSource{
		"google.places_api_key": "key",
		"google.place_id":       "place",
		"gallery.dir":           t.TempDir(),
	}))
	require.NoError(t, err)
	return cfg
}

func TestService_Build_Defaults(t *testing.T) {
	cfg := testConfig(t)
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything, "key", "place", cfg.Places.CacheTTL).Return(nil).Once()

	engine := enrichment.NewEngine(enrichment.Options{GalleryDir: cfg.Gallery.Dir, MaxPhotos: 6}, logger.NewNoOpLogger())
	svc := NewService(cfg, fetcher, engine, observability.NewNoop(), logger.NewTestLogger(t))
	svc.now = func() time.Time { return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) }

	view := svc.Build(context.Background())

	fetcher.AssertExpectations(t)
	assert.Equal(t, models.DefaultProfile().Name, view.Profile.Name)
	assert.Len(t, view.Highlights, enrichment.HighlightCount)
	assert.Equal(t, "tel:+989925898954", view.PhoneHref)
	assert.Equal(t, "mailto:info@elanza-dental.ir", view.MailHref)
	assert.Equal(t, "elanza-dental.ir", view.WebsiteLabel)
	assert.Equal(t, "د", view.Monogram)
	assert.Equal(t, 2025, view.Year)
	assert.Equal(t, 900, view.RefreshSeconds)
	assert.Contains(t, view.StructuredDataJSON, `"@type":"Dentist"`)
	assert.Equal(t, "شهید بلور ۹۳۲، کرمانشاه، استان کرمانشاه، ایران", view.AddressLine)
}

func TestService_Build_UsesUpstream(t *testing.T) {
	cfg := testConfig(t)
	rating := 4.5
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything, "key", "place", cfg.Places.CacheTTL).
		Return(&models.PlaceRecord{Name: "Upstream", Rating: &rating}).Once()

	engine := enrichment.NewEngine(enrichment.Options{GalleryDir: cfg.Gallery.Dir}, logger.NewNoOpLogger())
	view := NewService(cfg, fetcher, engine, nil, logger.NewNoOpLogger()).Build(context.Background())

	assert.Equal(t, "Upstream", view.Profile.Name)
	assert.Equal(t, 4, view.Stars.Full)
	assert.Equal(t, 1, view.Stars.Half)
	assert.Equal(t, "U", view.Monogram)
}
