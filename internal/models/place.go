// internal/models/place.go
package models

import (
	"encoding/json"
	"time"
)

// PlaceRecord mirrors the "result" object of the Place Details response.
// Every field is optional; numbers are pointers so that a missing rating is
// not confused with a zero rating.
type PlaceRecord struct {
	Name                     string         `json:"name,omitempty"`
	Rating                   *float64       `json:"rating,omitempty"`
	UserRatingsTotal         *int           `json:"user_ratings_total,omitempty"`
	Reviews                  []PlaceReview  `json:"reviews,omitempty"`
	Photos                   []PlacePhoto   `json:"photos,omitempty"`
	FormattedAddress         string         `json:"formatted_address,omitempty"`
	InternationalPhoneNumber string         `json:"international_phone_number,omitempty"`
	FormattedPhoneNumber     string         `json:"formatted_phone_number,omitempty"`
	Website                  string         `json:"website,omitempty"`
	OpeningHours             *PlaceHours    `json:"opening_hours,omitempty"`
	Geometry                 *PlaceGeometry `json:"geometry,omitempty"`
	URL                      string         `json:"url,omitempty"`

	// raw is the upstream result object as received. When set it is what
	// gets persisted, so fields this type does not model survive caching.
	raw json.RawMessage
}

// WithRaw attaches a copy of the upstream bytes the record was decoded from.
func (r *PlaceRecord) WithRaw(raw []byte) *PlaceRecord {
	r.raw = append(json.RawMessage(nil), raw...)
	return r
}

func (r PlaceRecord) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	type plain PlaceRecord
	return json.Marshal(plain(r))
}

type PlaceReview struct {
	AuthorName              string   `json:"author_name,omitempty"`
	Rating                  *float64 `json:"rating,omitempty"`
	Text                    string   `json:"text,omitempty"`
	RelativeTimeDescription string   `json:"relative_time_description,omitempty"`
}

type PlacePhoto struct {
	PhotoReference string `json:"photo_reference,omitempty"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
}

type PlaceHours struct {
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type PlaceGeometry struct {
	Location *PlaceLocation `json:"location,omitempty"`
}

type PlaceLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Phone prefers the international number.
func (r *PlaceRecord) Phone() string {
	if r == nil {
		return ""
	}
	if r.InternationalPhoneNumber != "" {
		return r.InternationalPhoneNumber
	}
	return r.FormattedPhoneNumber
}

// PhotoReferences returns the non-empty photo references in upstream order.
func (r *PlaceRecord) PhotoReferences() []string {
	if r == nil {
		return nil
	}
	refs := make([]string, 0, len(r.Photos))
	for _, p := range r.Photos {
		if p.PhotoReference != "" {
			refs = append(refs, p.PhotoReference)
		}
	}
	return refs
}

// WeekdayText returns the opening hours lines, or nil.
func (r *PlaceRecord) WeekdayText() []string {
	if r == nil || r.OpeningHours == nil {
		return nil
	}
	return r.OpeningHours.WeekdayText
}

// Location returns the coordinates when the record carries them.
func (r *PlaceRecord) Location() (Coordinates, bool) {
	if r == nil || r.Geometry == nil || r.Geometry.Location == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}, true
}

// CacheEntry is the single cached lookup result.
type CacheEntry struct {
	Record    *PlaceRecord `json:"record"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

// RecordOrNil is nil-safe access to Record.
func (e *CacheEntry) RecordOrNil() *PlaceRecord {
	if e == nil {
		return nil
	}
	return e.Record
}

// IsFresh reports whether now - FetchedAt < ttl.
func (e *CacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	if e == nil {
		return false
	}
	return now.Sub(e.FetchedAt) < ttl
}
