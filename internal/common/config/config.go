// internal/common/config/config.go
package config

import (
	"time"

	"dental-site/internal/models"
)

// Config is built once at startup and passed to every component.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Business BusinessConfig
	Places   PlacesConfig
	Redis    RedisConfig
	Contact  ContactConfig
	Mail     MailConfig
	Gallery  GalleryConfig
	Logging  LoggingConfig
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	RefreshSeconds    int
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	Key      string
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// --- Site Configuration Sections ---

// BusinessConfig holds the configured defaults for the business profile.
// Empty strings mean "not configured".
type BusinessConfig struct {
	Name             string
	Description      string
	Phone            string
	Email            string
	Website          string
	Street           string
	City             string
	Province         string
	PostalCode       string
	Country          string
	FormattedAddress string
	Lat              float64
	Lng              float64
	BookingURL       string
	MapEmbed         string
	GoogleURL        string
}

// Profile converts the configured values into a partial profile, the
// "configured default" layer of enrichment.
func (b BusinessConfig) Profile() models.BusinessProfile {
	return models.BusinessProfile{
		Name:        b.Name,
		Description: b.Description,
		Phone:       b.Phone,
		Email:       b.Email,
		Website:     b.Website,
		GoogleURL:   b.GoogleURL,
		Address: models.Address{
			Street:     b.Street,
			City:       b.City,
			Province:   b.Province,
			PostalCode: b.PostalCode,
			Country:    b.Country,
			Formatted:  b.FormattedAddress,
		},
		Coordinates: models.Coordinates{Lat: b.Lat, Lng: b.Lng},
		BookingURL:  b.BookingURL,
		MapEmbed:    b.MapEmbed,
	}
}

// PlacesConfig controls the upstream place lookup and its cache.
type PlacesConfig struct {
	APIKey       string
	PlaceID      string
	CacheTTL     time.Duration
	CacheBackend string // file, redis or memory
	CachePath    string
	BaseURL      string
	PhotoURL     string
	Language     string
	Timeout      time.Duration
}

// Enabled reports whether an upstream lookup may be attempted.
func (p PlacesConfig) Enabled() bool {
	return p.APIKey != "" && p.PlaceID != ""
}

// ContactConfig controls delivery of contact-form submissions.
type ContactConfig struct {
	Recipient     string
	SubjectPrefix string
	MessageDir    string
	SMSAlertPhone string
}

// MailConfig selects the notification transport.
type MailConfig struct {
	Transport string // none, ses or smtp
	From      string
	AWSRegion string
	SMTP      SMTPConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
}

type GalleryConfig struct {
	Dir        string
	StreetView bool
	MaxPhotos  int
}

const (
	CacheBackendFile   = "file"
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"

	TransportNone = "none"
	TransportSES  = "ses"
	TransportSMTP = "smtp"
)
