// internal/models/business.go
package models

// BusinessProfile is the resolved view-model handed to the page. After
// enrichment every field carries a value and every slice is non-nil.
type BusinessProfile struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Website      string        `json:"website"`
	GoogleURL    string        `json:"googleUrl"`
	Address      Address       `json:"address"`
	Coordinates  Coordinates   `json:"coordinates"`
	BookingURL   string        `json:"bookingUrl"`
	MapEmbed     string        `json:"mapEmbed"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"reviewCount"`
	OpeningHours []OpeningHour `json:"openingHours"`
	Services     []Service     `json:"services"`
	Gallery      []GalleryItem `json:"gallery"`
	Reviews      []Review      `json:"reviews"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	// Formatted, when set, replaces the joined parts.
	Formatted string `json:"formatted,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OpeningHour struct {
	Day   string `json:"dayLabel"`
	Hours string `json:"hoursLabel"`
}

type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Items       []string `json:"items,omitempty"`
}

type GalleryKind string

const (
	GalleryImage      GalleryKind = "image"
	GalleryStreetView GalleryKind = "streetview"
)

type GalleryItem struct {
	Kind     GalleryKind `json:"kind"`
	URL      string      `json:"url,omitempty"`
	EmbedURL string      `json:"embedUrl,omitempty"`
	Alt      string      `json:"alt"`
}

type Review struct {
	Author       string  `json:"author"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	RelativeTime string  `json:"relativeTime"`
}
