// internal/places/client.go
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"time"

	apperrors "dental-site/internal/common/errors"
	commonhttp "dental-site/internal/common/http"
	"dental-site/internal/common/logger"
	"dental-site/internal/common/metrics"
	"dental-site/internal/models"
)

// DetailsFields is the field mask sent with every lookup.
const DetailsFields = "name,rating,user_ratings_total,reviews,photos,formatted_address," +
	"international_phone_number,formatted_phone_number,website,opening_hours,geometry,url"

const maxResponseBytes = 2 << 20

// Client resolves the place record through the cache, calling upstream only
// when the cached entry is missing or stale. Any upstream failure falls back
// to whatever the cache holds, however old.
type Client struct {
	baseURL  string
	language string
	timeout  time.Duration
	http     *commonhttp.Client
	cache    Cache
	logger   logger.Logger
	now      Clock
}

type Option func(*Client)

// WithHTTPClient replaces the outbound HTTP client.
func WithHTTPClient(h *commonhttp.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithClock(now Clock) Option {
	return func(c *Client) { c.now = now }
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func NewClient(baseURL, language string, timeout time.Duration, cache Cache, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		language: language,
		timeout:  timeout,
		http:     commonhttp.NewClient(timeout),
		cache:    cache,
		logger:   log.WithFields(map[string]interface{}{"component": "place-client"}),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch never returns an error: the result is the fresh record, the cached
// record, or nil when neither is available.
func (c *Client) Fetch(ctx context.Context, apiKey, placeID string, ttl time.Duration) *models.PlaceRecord {
	entry := c.cache.Read(ctx)

	if apiKey == "" || placeID == "" {
		metrics.PlaceLookups.WithLabelValues(metrics.OutcomeSkipped).Inc()
		c.logger.Debug("place lookup not configured, using cache only", map[string]interface{}{
			"cached": entry != nil,
		})
		return entry.RecordOrNil()
	}

	if entry.IsFresh(c.now(), ttl) {
		metrics.PlaceLookups.WithLabelValues(metrics.OutcomeFreshCache).Inc()
		return entry.Record
	}

	record, err := c.lookup(ctx, apiKey, placeID)
	if err != nil {
		stdErr := apperrors.AsStandard(err)
		metrics.PlaceLookupFailures.WithLabelValues(string(stdErr.Code)).Inc()
		metrics.PlaceLookups.WithLabelValues(metrics.OutcomeStaleFallback).Inc()
		c.logger.Warn("place lookup failed, serving cached record", map[string]interface{}{
			"placeId":       placeID,
			"errorCode":     string(stdErr.Code),
			"errorCategory": apperrors.GetErrorCategory(stdErr.Code),
			"details":       stdErr.Details,
			"cached":        entry != nil,
		})
		return entry.RecordOrNil()
	}

	if err := c.cache.Write(ctx, record); err != nil {
		c.logger.WithError(err).Warn("failed to persist place record", map[string]interface{}{
			"placeId": placeID,
		})
	}

	metrics.PlaceLookups.WithLabelValues(metrics.OutcomeFetched).Inc()
	c.logger.Info("place record refreshed", map[string]interface{}{
		"placeId": placeID,
		"name":    record.Name,
	})
	return record
}

func (c *Client) lookup(ctx context.Context, apiKey, placeID string) (*models.PlaceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.PlaceLookupDuration.Observe(time.Since(start).Seconds()) }()

	endpoint, err := c.detailsURL(apiKey, placeID)
	if err != nil {
		return nil, apperrors.NewPlaceLookupFailedError(err)
	}

	body, err := c.http.GetJSON(ctx, endpoint, maxResponseBytes)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.NewPlaceLookupTimeoutError(err)
		}
		return nil, apperrors.NewPlaceLookupFailedError(err)
	}

	return decodeDetails(body)
}

func (c *Client) detailsURL(apiKey, placeID string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("place_id", placeID)
	q.Set("fields", DetailsFields)
	q.Set("language", c.language)
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type detailsEnvelope struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Result       json.RawMessage `json:"result"`
}

// decodeDetails validates the body against detailsSchema, checks the status,
// and decodes the result object.
func decodeDetails(body []byte) (*models.PlaceRecord, error) {
	if res := detailsValidator.ValidateBytes(body); !res.Valid {
		return nil, apperrors.NewPlacePayloadInvalidError(res.Summary())
	}

	var env detailsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apperrors.NewPlacePayloadInvalidError(err.Error())
	}
	if env.Status != "OK" {
		return nil, apperrors.NewPlaceStatusNotOKError(env.Status, env.ErrorMessage)
	}

	raw := bytes.TrimSpace(env.Result)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, apperrors.NewPlacePayloadInvalidError("status OK without result")
	}

	var record models.PlaceRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, apperrors.NewPlacePayloadInvalidError(err.Error())
	}
	return record.WithRaw(raw), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
