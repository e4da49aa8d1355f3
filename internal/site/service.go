// Package site composes the page view-model: place lookup, enrichment and
// display formatting.
package site

import (
	"context"
	"time"

	"dental-site/internal/common/config"
	"dental-site/internal/common/logger"
	"dental-site/internal/common/observability"
	"dental-site/internal/enrichment"
	"dental-site/internal/models"
	"dental-site/internal/presentation"
)

// PlaceFetcher is satisfied by *places.Client.
type PlaceFetcher interface {
	Fetch(ctx context.Context, apiKey, placeID string, ttl time.Duration) *models.PlaceRecord
}

// Enricher is satisfied by *enrichment.Engine.
type Enricher interface {
	Enrich(defaults models.BusinessProfile, record *models.PlaceRecord, apiKey string) models.BusinessProfile
}

// PageView is everything the template needs; no field requires a nil check.
type PageView struct {
	Profile            models.BusinessProfile  `json:"profile"`
	Highlights         []models.Service        `json:"highlights"`
	AddressLine        string                  `json:"addressLine"`
	PhoneHref          string                  `json:"phoneHref"`
	PhoneLabel         string                  `json:"phoneLabel"`
	MailHref           string                  `json:"mailHref"`
	WebsiteLabel       string                  `json:"websiteLabel"`
	Monogram           string                  `json:"monogram"`
	Stars              presentation.StarCounts `json:"stars"`
	RatingLabel        string                  `json:"ratingLabel"`
	StructuredDataJSON string                  `json:"structuredData"`
	Year               int                     `json:"year"`
	RefreshSeconds     int                     `json:"refreshSeconds"`
}

type Service struct {
	business config.BusinessConfig
	places   config.PlacesConfig
	refresh  int
	fetcher  PlaceFetcher
	engine   Enricher
	obs      *observability.Observability
	logger   logger.Logger
	now      func() time.Time
}

func NewService(cfg *config.Config, fetcher PlaceFetcher, engine Enricher, obs *observability.Observability, log logger.Logger) *Service {
	return &Service{
		business: cfg.Business,
		places:   cfg.Places,
		refresh:  cfg.Server.RefreshSeconds,
		fetcher:  fetcher,
		engine:   engine,
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "page-service"}),
		now:      time.Now,
	}
}

// Build never fails; with no upstream data the page is built from defaults.
func (s *Service) Build(ctx context.Context) PageView {
	start := time.Now()

	record := s.fetcher.Fetch(ctx, s.places.APIKey, s.places.PlaceID, s.places.CacheTTL)
	profile := s.engine.Enrich(s.business.Profile(), record, s.places.APIKey)
	view := Compose(profile, s.now(), s.refresh)

	source := "defaults"
	if record != nil {
		source = "place"
	}
	s.obs.RecordPageBuild(ctx, time.Since(start), source)
	s.logger.Debug("page built", map[string]interface{}{
		"source":   source,
		"duration": time.Since(start).String(),
	})
	return view
}

// Compose derives the display fields of a resolved profile.
func Compose(p models.BusinessProfile, now time.Time, refreshSeconds int) PageView {
	return PageView{
		Profile:            p,
		Highlights:         enrichment.HighlightServices(p.Services, enrichment.DefaultServices(), enrichment.HighlightCount),
		AddressLine:        presentation.FormatAddress(p.Address),
		PhoneHref:          presentation.PhoneLink(p.Phone),
		PhoneLabel:         presentation.PhoneLabel(p.Phone),
		MailHref:           presentation.MailLink(p.Email),
		WebsiteLabel:       presentation.WebsiteLabel(p.Website),
		Monogram:           presentation.Monogram(p.Name),
		Stars:              presentation.Stars(p.Rating),
		RatingLabel:        presentation.RatingLabel(p.Rating, p.ReviewCount),
		StructuredDataJSON: presentation.StructuredDataJSON(p),
		Year:               now.Year(),
		RefreshSeconds:     refreshSeconds,
	}
}
