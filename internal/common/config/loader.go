// internal/common/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "dental-site/internal/common/errors"
	"dental-site/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultCacheTTL       = 43200 * time.Second
	DefaultLookupTimeout  = 10 * time.Second
	DefaultPlacesBaseURL  = "https://maps.googleapis.com/maps/api/place/details/json"
	DefaultPlacesPhotoURL = "https://maps.googleapis.com/maps/api/place/photo"
)

// Load reads .env (if any), config.yaml and config.<env>.yaml (if any) and
// the process environment, then builds the Config. Every file is optional.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName("config." + env)
	_ = v.MergeInConfig() // optional

	return FromEnv(NewEnv(viperSource{v: v}))
}

// FromEnv builds a Config from any Source.
func FromEnv(e Env) (*Config, error) {
	lit := models.DefaultProfile()

	cfg := &Config{
		App: AppConfig{
			Name:        e.String("app.name", "dental-site"),
			Environment: e.String("app.environment", "development"),
		},
		Server: ServerConfig{
			Address:           e.String("server.address", ":8080"),
			ReadHeaderTimeout: e.Seconds("server.read_header_timeout", 5*time.Second),
			ShutdownTimeout:   e.Seconds("server.shutdown_timeout", 10*time.Second),
			RefreshSeconds:    e.Int("server.refresh_seconds", 900),
		},
		Business: BusinessConfig{
			Name:             e.String("business.name", lit.Name),
			Description:      e.String("business.description", lit.Description),
			Phone:            e.String("business.phone", lit.Phone),
			Email:            e.String("business.email", lit.Email),
			Website:          e.String("business.website", lit.Website),
			Street:           e.String("business.street", lit.Address.Street),
			City:             e.String("business.city", lit.Address.City),
			Province:         e.String("business.province", lit.Address.Province),
			PostalCode:       e.String("business.postal_code", lit.Address.PostalCode),
			Country:          e.String("business.country", lit.Address.Country),
			FormattedAddress: e.String("business.address", ""),
			Lat:              e.Float("business.lat", lit.Coordinates.Lat),
			Lng:              e.Float("business.lng", lit.Coordinates.Lng),
			BookingURL:       e.String("business.booking_url", ""),
			MapEmbed:         e.String("business.map_embed", ""),
			GoogleURL:        e.String("business.google_url", ""),
		},
		Places: PlacesConfig{
			APIKey:       e.String("google.places_api_key", ""),
			PlaceID:      e.String("google.place_id", ""),
			CacheTTL:     e.Seconds("places.cache_ttl", DefaultCacheTTL),
			CacheBackend: strings.ToLower(e.String("places.cache_backend", CacheBackendFile)),
			CachePath:    e.String("places.cache_path", filepath.Join("storage", "place_cache.json")),
			BaseURL:      e.String("places.base_url", DefaultPlacesBaseURL),
			PhotoURL:     e.String("places.photo_url", DefaultPlacesPhotoURL),
			Language:     e.String("places.language", "fa"),
			Timeout:      e.Seconds("places.timeout", DefaultLookupTimeout),
		},
		Redis: RedisConfig{
			Address:  e.String("redis.address", "localhost:6379"),
			Password: e.String("redis.password", ""),
			DB:       e.Int("redis.db", 0),
			Key:      e.String("redis.key", "site:place-cache"),
		},
		Contact: ContactConfig{
			Recipient:     e.String("contact.recipient", ""),
			SubjectPrefix: e.String("contact.subject_prefix", "پیام جدید از وب‌سایت"),
			MessageDir:    e.String("contact.message_dir", filepath.Join("storage", "messages")),
			SMSAlertPhone: e.String("sms.alert_phone", ""),
		},
		Mail: MailConfig{
			Transport: strings.ToLower(e.String("mail.transport", TransportNone)),
			From:      e.String("mail.from", "noreply@localhost"),
			AWSRegion: e.String("aws.region", "eu-central-1"),
			SMTP: SMTPConfig{
				Host:     e.String("smtp.host", ""),
				Port:     e.Int("smtp.port", 587),
				Username: e.String("smtp.username", ""),
				Password: e.String("smtp.password", ""),
				UseTLS:   e.Bool("smtp.use_tls", true),
			},
		},
		Gallery: GalleryConfig{
			Dir:        e.String("gallery.dir", filepath.Join("static", "images")),
			StreetView: e.Bool("gallery.street_view", true),
			MaxPhotos:  e.Int("gallery.max_photos", 6),
		},
		Logging: LoggingConfig{
			Level:  e.String("log.level", "info"),
			Format: e.String("log.format", "json"),
		},
	}

	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, apperrors.NewConfigInvalidError(err.Error())
	}
	return cfg, nil
}

// viperSource adapts a viper instance (AutomaticEnv + optional files) to Source.
type viperSource struct {
	v *viper.Viper
}

func (s viperSource) Lookup(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// loadEnvFile loads the first .env found in the working directory, its
// parents, or the module root. Missing files are not an error.
func loadEnvFile() string {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// applyDefaults repairs values that parsed but make no sense.
func applyDefaults(cfg *Config) {
	if cfg.Places.CacheTTL <= 0 {
		cfg.Places.CacheTTL = DefaultCacheTTL
	}
	if cfg.Places.Timeout <= 0 {
		cfg.Places.Timeout = DefaultLookupTimeout
	}
	if cfg.Gallery.MaxPhotos <= 0 {
		cfg.Gallery.MaxPhotos = 6
	}
	if cfg.Server.RefreshSeconds < 0 {
		cfg.Server.RefreshSeconds = 0
	}
	if cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		cfg.Logging.Format = "json"
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Places.CacheBackend {
	case CacheBackendFile:
		if cfg.Places.CachePath == "" {
			return fmt.Errorf("places.cache_path is required for the file cache")
		}
	case CacheBackendRedis:
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis.address is required for the redis cache")
		}
	case CacheBackendMemory:
	default:
		return fmt.Errorf("places.cache_backend must be one of file, redis, memory; got %q", cfg.Places.CacheBackend)
	}

	switch cfg.Mail.Transport {
	case TransportNone, TransportSES:
	case TransportSMTP:
		if cfg.Mail.SMTP.Host == "" {
			return fmt.Errorf("smtp.host is required for the smtp transport")
		}
		if cfg.Mail.SMTP.Port <= 0 || cfg.Mail.SMTP.Port > 65535 {
			return fmt.Errorf("smtp.port must be between 1 and 65535")
		}
	default:
		return fmt.Errorf("mail.transport must be one of none, ses, smtp; got %q", cfg.Mail.Transport)
	}

	if cfg.Contact.MessageDir == "" {
		return fmt.Errorf("contact.message_dir is required")
	}
	return nil
}
