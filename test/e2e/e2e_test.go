// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-site/internal/common/config"
	"dental-site/internal/common/database"
	"dental-site/internal/common/logger"
	"dental-site/internal/common/observability"
	"dental-site/internal/contact"
	"dental-site/internal/enrichment"
	"dental-site/internal/places"
	"dental-site/internal/server"
	"dental-site/internal/site"
)

const upstreamBody = `{
  "status": "OK",
  "result": {
    "name": "Elanza Dental",
    "rating": 4.8,
    "user_ratings_total": 41,
    "formatted_address": "کرمانشاه، شهید بلور 932",
    "international_phone_number": "+98 992 589 8954",
    "opening_hours": {"weekday_text": [
      "شنبه: 09:30 – 17:00", "یکشنبه: 09:30 – 17:00", "دوشنبه: 09:30 – 17:00",
      "سه‌شنبه: 09:30 – 17:00", "چهارشنبه: 09:30 – 17:00", "پنجشنبه: 09:30 – 13:00", "جمعه: تعطیل"
    ]},
    "reviews": [{"author_name": "مینا", "rating": 5, "text": "عالی بود", "relative_time_description": "یک هفته پیش"}],
    "photos": [{"photo_reference": "p1"}, {"photo_reference": "p2"}],
    "geometry": {"location": {"lat": 34.3511086, "lng": 47.0874473}},
    "url": "https://maps.google.com/?cid=42"
  }
}`

type stack struct {
	site     *httptest.Server
	upstream *httptest.Server
	redis    *miniredis.Miniredis
	calls    *atomic.Int32
	failing  *atomic.Bool
	msgDir   string
}

func newStack(t *testing.T) *stack {
	t.Helper()

	st := &stack{calls: &atomic.Int32{}, failing: &atomic.Bool{}, msgDir: t.TempDir()}
	st.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st.calls.Add(1)
		if st.failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, upstreamBody)
	}))
	t.Cleanup(st.upstream.Close)

	st.redis = miniredis.RunT(t)

	cfg, err := config.FromEnv(config.NewEnv(config.MapSource{
		"google.places_api_key": "e2e-key",
		"google.place_id":       "e2e-place",
		"places.cache_backend":  "redis",
		"places.cache_ttl":      "3600",
		"places.base_url":       st.upstream.URL,
		"redis.address":         st.redis.Addr(),
		"contact.message_dir":   st.msgDir,
		"gallery.dir":           t.TempDir(),
	}))
	require.NoError(t, err)

	log := logger.NewTestLogger(t)
	rdb := database.NewRedis(cfg.Redis)
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()))

	cache := places.NewRedisCache(rdb.Client, cfg.Redis.Key, log)
	client := places.NewClient(cfg.Places.BaseURL, cfg.Places.Language, cfg.Places.Timeout, cache, log)
	engine := enrichment.NewEngine(enrichment.Options{
		PhotoURL:   cfg.Places.PhotoURL,
		GalleryDir: cfg.Gallery.Dir,
		StreetView: cfg.Gallery.StreetView,
		MaxPhotos:  cfg.Gallery.MaxPhotos,
	}, log)
	pages := site.NewService(cfg, client, engine, observability.NewNoop(), log)
	intake := contact.NewIntake(contact.NewFileStore(cfg.Contact.MessageDir), cfg.Contact.Recipient, cfg.Contact.SubjectPrefix, log)

	srv := server.New(server.Config{
		Logger:            log,
		Pages:             pages,
		Contact:           intake,
		FallbackRecipient: cfg.Business.Email,
		GalleryDir:        cfg.Gallery.Dir,
		Ready:             rdb.Ping,
	})
	st.site = httptest.NewServer(srv.Router())
	t.Cleanup(st.site.Close)
	return st
}

func (st *stack) profile(t *testing.T) site.PageView {
	t.Helper()
	resp, err := http.Get(st.site.URL + "/api/profile")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view site.PageView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	return view
}

func TestFullE2E(t *testing.T) {
	st := newStack(t)

	t.Run("first view fetches and caches", func(t *testing.T) {
		view := st.profile(t)
		assert.Equal(t, "Elanza Dental", view.Profile.Name)
		assert.Equal(t, 41, view.Profile.ReviewCount)
		assert.Equal(t, "https://maps.google.com/?cid=42", view.Profile.GoogleURL)
		assert.Equal(t, "کرمانشاه، شهید بلور ۹۳۲", view.AddressLine)
		require.Len(t, view.Profile.OpeningHours, 3)
		assert.Equal(t, "شنبه تا چهارشنبه", view.Profile.OpeningHours[0].Day)
		assert.Len(t, view.Profile.Gallery, 3)
		assert.Len(t, view.Highlights, enrichment.HighlightCount)
		assert.Equal(t, int32(1), st.calls.Load())
		assert.True(t, st.redis.Exists("site:place-cache"))
	})

	t.Run("second view is served from cache", func(t *testing.T) {
		st.profile(t)
		assert.Equal(t, int32(1), st.calls.Load())
	})

	t.Run("stale cache survives upstream failure", func(t *testing.T) {
		raw, err := st.redis.Get("site:place-cache")
		require.NoError(t, err)

		// age the stored entry past the ttl
		var entry map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		entry["fetchedAt"] = json.RawMessage(`"2000-01-01T00:00:00Z"`)
		aged, err := json.Marshal(entry)
		require.NoError(t, err)
		require.NoError(t, st.redis.Set("site:place-cache", string(aged)))

		st.failing.Store(true)
		view := st.profile(t)
		assert.Equal(t, "Elanza Dental", view.Profile.Name)
		assert.Equal(t, int32(2), st.calls.Load())
	})

	t.Run("page renders", func(t *testing.T) {
		resp, err := http.Get(st.site.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Elanza Dental")
		assert.Contains(t, string(body), "application/ld+json")
	})

	t.Run("contact form stores message without a transport", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, st.site.URL+"/contact",
			strings.NewReader(`{"name":"مینا","email":"mina@example.com","message":"وقت چکاپ می‌خواستم"}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var result map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "stored", result["status"])

		entries, err := os.ReadDir(st.msgDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("ready reflects redis", func(t *testing.T) {
		resp, err := http.Get(st.site.URL + "/ready")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		st.redis.Close()
		resp, err = http.Get(st.site.URL + "/ready")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
