// internal/enrichment/engine.go
package enrichment

import (
	"fmt"
	"net/url"

	"dental-site/internal/common/logger"
	"dental-site/internal/models"
)

// Options controls the parts of enrichment that depend on deployment.
type Options struct {
	PhotoURL    string // upstream photo endpoint
	GalleryDir  string // local fallback images
	ImagePrefix string // URL path the gallery dir is served under
	StreetView  bool
	MaxPhotos   int
}

// Engine merges the configured profile with the upstream record. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	opts    Options
	literal models.BusinessProfile
	logger  logger.Logger
}

func NewEngine(opts Options, log logger.Logger) *Engine {
	if opts.MaxPhotos <= 0 {
		opts.MaxPhotos = 6
	}
	if opts.ImagePrefix == "" {
		opts.ImagePrefix = "/images"
	}
	return &Engine{
		opts:    opts,
		literal: models.DefaultProfile(),
		logger:  log.WithFields(map[string]interface{}{"component": "enrichment"}),
	}
}

// Enrich resolves every profile field, upstream first, then the configured
// value, then the built-in literal. The result has no empty slices.
func (e *Engine) Enrich(defaults models.BusinessProfile, record *models.PlaceRecord, apiKey string) models.BusinessProfile {
	src := Sources{Record: record, Configured: defaults, Literal: e.literal}

	var p models.BusinessProfile
	for _, r := range FieldResolvers {
		r.Apply(&p, r.Resolve(src))
	}

	p.Coordinates = e.resolveCoordinates(record, defaults)
	p.Rating, p.ReviewCount = resolveRating(record)

	if p.GoogleURL == "" {
		p.GoogleURL = SearchURL(p.Name)
	}
	if p.BookingURL == "" {
		p.BookingURL = p.GoogleURL
	}
	if p.MapEmbed == "" {
		p.MapEmbed = MapEmbedURL(p.Coordinates)
	}

	p.OpeningHours = resolveHours(record)
	p.Services = DefaultServices()
	p.Gallery = e.resolveGallery(record, apiKey, p.Coordinates)
	p.Reviews = resolveReviews(record)

	e.logger.Debug("profile enriched", map[string]interface{}{
		"upstream":     record != nil,
		"galleryItems": len(p.Gallery),
		"reviews":      len(p.Reviews),
		"hours":        len(p.OpeningHours),
	})
	return p
}

func (e *Engine) resolveCoordinates(record *models.PlaceRecord, defaults models.BusinessProfile) models.Coordinates {
	if c, ok := record.Location(); ok && finite(c) {
		return c
	}
	if c := defaults.Coordinates; finite(c) && (c.Lat != 0 || c.Lng != 0) {
		return c
	}
	return e.literal.Coordinates
}

func resolveRating(record *models.PlaceRecord) (float64, int) {
	rating, count := models.DefaultRating, models.DefaultReviewCount
	if record == nil {
		return rating, count
	}
	if record.Rating != nil {
		rating = *record.Rating
	}
	if record.UserRatingsTotal != nil {
		count = *record.UserRatingsTotal
	}
	return rating, count
}

// SearchURL is the maps search link used when no canonical URL is known.
func SearchURL(name string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(name)
}

// MapEmbedURL is the keyless iframe map for a point.
func MapEmbedURL(c models.Coordinates) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s&hl=fa&z=16&output=embed",
		formatCoord(c.Lat), formatCoord(c.Lng))
}
