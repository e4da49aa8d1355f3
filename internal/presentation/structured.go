// internal/presentation/structured.go
package presentation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dental-site/internal/models"
)

type StructuredData struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	Name                      string                      `json:"name"`
	Description               string                      `json:"description,omitempty"`
	Telephone                 string                      `json:"telephone,omitempty"`
	Email                     string                      `json:"email,omitempty"`
	URL                       string                      `json:"url,omitempty"`
	Address                   PostalAddress               `json:"address"`
	Geo                       GeoCoordinates              `json:"geo"`
	AggregateRating           AggregateRating             `json:"aggregateRating"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount string `json:"reviewCount"`
}

type OpeningHoursSpecification struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

// hoursSeparators are tried in order on each hours label.
var hoursSeparators = []string{"–", " تا ", "-"}

// schemaWeek is the Saturday-first week used to expand day ranges.
var schemaWeek = []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var dayNames = map[string]string{
	"شنبه":     "Saturday",
	"یکشنبه":   "Sunday",
	"دوشنبه":   "Monday",
	"سهشنبه":   "Tuesday",
	"چهارشنبه": "Wednesday",
	"پنجشنبه":  "Thursday",
	"جمعه":     "Friday",
}

// BuildStructuredData maps a resolved profile to a schema.org Dentist record.
func BuildStructuredData(p models.BusinessProfile) StructuredData {
	return StructuredData{
		Context:     "https://schema.org",
		Type:        "Dentist",
		Name:        p.Name,
		Description: p.Description,
		Telephone:   p.Phone,
		Email:       p.Email,
		URL:         p.GoogleURL,
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   p.Address.Street,
			AddressLocality: p.Address.City,
			AddressRegion:   p.Address.Province,
			PostalCode:      p.Address.PostalCode,
			AddressCountry:  p.Address.Country,
		},
		Geo: GeoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  p.Coordinates.Lat,
			Longitude: p.Coordinates.Lng,
		},
		AggregateRating: AggregateRating{
			Type:        "AggregateRating",
			RatingValue: strconv.FormatFloat(p.Rating, 'f', -1, 64),
			ReviewCount: strconv.Itoa(p.ReviewCount),
		},
		OpeningHoursSpecification: openingHoursSpecs(p.OpeningHours),
	}
}

// StructuredDataJSON is BuildStructuredData encoded as JSON-LD. Coordinates
// that JSON cannot carry are zeroed rather than failing the page.
func StructuredDataJSON(p models.BusinessProfile) string {
	doc := BuildStructuredData(p)
	data, err := json.Marshal(doc)
	if err != nil {
		doc.Geo.Latitude, doc.Geo.Longitude = 0, 0
		doc.AggregateRating.RatingValue = "0"
		if data, err = json.Marshal(doc); err != nil {
			return "{}"
		}
	}
	return string(data)
}

func openingHoursSpecs(hours []models.OpeningHour) []OpeningHoursSpecification {
	specs := make([]OpeningHoursSpecification, 0, len(hours))
	for _, h := range hours {
		if isClosed(h.Hours) {
			continue
		}
		for _, interval := range strings.FieldsFunc(h.Hours, isIntervalBreak) {
			opens, closes, ok := splitHours(interval)
			if !ok {
				continue
			}
			specs = append(specs, OpeningHoursSpecification{
				Type:      "OpeningHoursSpecification",
				DayOfWeek: expandDays(h.Day),
				Opens:     opens,
				Closes:    closes,
			})
		}
	}
	return specs
}

func isClosed(hours string) bool {
	h := strings.TrimSpace(hours)
	return strings.Contains(h, "تعطیل") || strings.EqualFold(h, "closed")
}

// isIntervalBreak separates split shifts such as "9–1, 2–6".
func isIntervalBreak(r rune) bool {
	return r == ',' || r == '،'
}

// splitHours returns the interval as 24h HH:MM values, or ok=false when
// either end is not a recognisable time.
func splitHours(interval string) (opens, closes string, ok bool) {
	for _, sep := range hoursSeparators {
		before, after, found := strings.Cut(interval, sep)
		if !found {
			continue
		}
		o, okOpen := parseClock(before)
		c, okClose := parseClock(after)
		if !okOpen || !okClose {
			return "", "", false
		}
		o, c = resolveMeridiem(o, c)
		return o.String(), c.String(), true
	}
	return "", "", false
}

var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*((?i)am|pm|a\.m\.|p\.m\.|ق\.ظ\.?|ب\.ظ\.?)?$`)

type clock struct {
	hour, minute int
	meridiem     string // "am", "pm" or ""
}

func parseClock(s string) (clock, bool) {
	s = strings.NewReplacer("\u202f", " ", "\u00a0", " ").Replace(asciiDigits(s))
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return clock{}, false
	}

	c := clock{}
	c.hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		c.minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "am", "a.m.", "ق.ظ", "ق.ظ.":
		c.meridiem = "am"
	case "pm", "p.m.", "ب.ظ", "ب.ظ.":
		c.meridiem = "pm"
	}

	if c.minute > 59 || c.hour > 23 || (c.meridiem != "" && (c.hour < 1 || c.hour > 12)) {
		return clock{}, false
	}
	return c, true
}

// to24 applies the meridiem, if any.
func (c clock) to24() clock {
	switch {
	case c.meridiem == "am" && c.hour == 12:
		c.hour = 0
	case c.meridiem == "pm" && c.hour < 12:
		c.hour += 12
	}
	c.meridiem = ""
	return c
}

func (c clock) minutes() int { return c.hour*60 + c.minute }

func (c clock) String() string { return fmt.Sprintf("%02d:%02d", c.hour, c.minute) }

// resolveMeridiem fills a missing meridiem from the other end ("9 – 5 PM"),
// falling back to whichever reading keeps the interval forward. Bare morning
// hours that would close before they open are read as afternoon ("9–1").
func resolveMeridiem(o, c clock) (clock, clock) {
	bare := o.meridiem == "" && c.meridiem == ""
	switch {
	case o.meridiem == "" && c.meridiem != "":
		o.meridiem = c.meridiem
		if o.to24().minutes() > c.to24().minutes() {
			o.meridiem = "am"
		}
	case c.meridiem == "" && o.meridiem != "":
		c.meridiem = o.meridiem
		if c.to24().minutes() <= o.to24().minutes() {
			c.meridiem = "pm"
		}
	}

	o, c = o.to24(), c.to24()
	if bare && o.hour < 12 && c.hour >= 1 && c.hour < 12 && c.minutes() <= o.minutes() {
		c.hour += 12
	}
	return o, c
}

// expandDays turns "شنبه تا چهارشنبه" or "Saturday تا Sunday" into the days
// of the range. Unrecognised labels are passed through as-is.
func expandDays(label string) []string {
	label = strings.TrimSpace(label)
	first, last, isRange := strings.Cut(label, " تا ")

	start, okStart := dayIndex(first)
	if !isRange {
		if okStart {
			return []string{schemaWeek[start]}
		}
		return []string{label}
	}

	end, okEnd := dayIndex(last)
	if !okStart || !okEnd {
		return []string{label}
	}
	days := []string{}
	for i := start; ; i = (i + 1) % len(schemaWeek) {
		days = append(days, schemaWeek[i])
		if i == end {
			break
		}
	}
	return days
}

func dayIndex(label string) (int, bool) {
	key := strings.NewReplacer("\u200c", "", " ", "").Replace(strings.TrimSpace(label))
	name, ok := dayNames[key]
	if !ok {
		name = key
	}
	for i, d := range schemaWeek {
		if strings.EqualFold(d, name) {
			return i, true
		}
	}
	return 0, false
}
