// internal/enrichment/resolvers.go
package enrichment

import (
	"strings"

	"dental-site/internal/models"
)

// Sources is everything a field may be resolved from.
type Sources struct {
	Record     *models.PlaceRecord
	Configured models.BusinessProfile
	Literal    models.BusinessProfile
}

// Candidate yields one possible value for a field; "" means "not here".
type Candidate func(Sources) string

// FieldResolver names a field, lists its candidates in priority order and
// stores the winner on the profile.
type FieldResolver struct {
	Field      string
	Candidates []Candidate
	Apply      func(p *models.BusinessProfile, value string)
}

// Resolve returns the first non-blank candidate.
func (r FieldResolver) Resolve(src Sources) string {
	for _, c := range r.Candidates {
		if v := strings.TrimSpace(c(src)); v != "" {
			return v
		}
	}
	return ""
}

func upstream(f func(*models.PlaceRecord) string) Candidate {
	return func(s Sources) string {
		if s.Record == nil {
			return ""
		}
		return f(s.Record)
	}
}

func configured(f func(models.BusinessProfile) string) Candidate {
	return func(s Sources) string { return f(s.Configured) }
}

func literal(f func(models.BusinessProfile) string) Candidate {
	return func(s Sources) string { return f(s.Literal) }
}

// FieldResolvers is the priority table for scalar text fields. Order within
// the table matters: GoogleURL must resolve before BookingURL.
var FieldResolvers = []FieldResolver{
	{
		Field: "name",
		Candidates: []Candidate{
			upstream(func(r *models.PlaceRecord) string { return r.Name }),
			configured(func(p models.BusinessProfile) string { return p.Name }),
			literal(func(p models.BusinessProfile) string { return p.Name }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.Name = v },
	},
	{
		Field: "description",
		Candidates: []Candidate{
			configured(func(p models.BusinessProfile) string { return p.Description }),
			literal(func(p models.BusinessProfile) string { return p.Description }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.Description = v },
	},
	{
		Field: "phone",
		Candidates: []Candidate{
			upstream(func(r *models.PlaceRecord) string { return r.Phone() }),
			configured(func(p models.BusinessProfile) string { return p.Phone }),
			literal(func(p models.BusinessProfile) string { return p.Phone }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.Phone = v },
	},
	{
		Field: "email",
		Candidates: []Candidate{
			configured(func(p models.BusinessProfile) string { return p.Email }),
			literal(func(p models.BusinessProfile) string { return p.Email }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.Email = v },
	},
	{
		Field: "website",
		Candidates: []Candidate{
			upstream(func(r *models.PlaceRecord) string { return r.Website }),
			configured(func(p models.BusinessProfile) string { return p.Website }),
			literal(func(p models.BusinessProfile) string { return p.Website }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.Website = v },
	},
	{
		Field: "address.formatted",
		Candidates: []Candidate{
			upstream(func(r *models.PlaceRecord) string { return r.FormattedAddress }),
			configured(func(p models.BusinessProfile) string { return p.Address.Formatted }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.Address.Formatted = v },
	},
	addressPart("address.street", func(a *models.Address) *string { return &a.Street }),
	addressPart("address.city", func(a *models.Address) *string { return &a.City }),
	addressPart("address.province", func(a *models.Address) *string { return &a.Province }),
	addressPart("address.postalCode", func(a *models.Address) *string { return &a.PostalCode }),
	addressPart("address.country", func(a *models.Address) *string { return &a.Country }),
	{
		// configured wins over upstream here: an explicit link is a deliberate choice
		Field: "googleUrl",
		Candidates: []Candidate{
			configured(func(p models.BusinessProfile) string { return p.GoogleURL }),
			upstream(func(r *models.PlaceRecord) string { return r.URL }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.GoogleURL = v },
	},
	{
		Field: "bookingUrl",
		Candidates: []Candidate{
			configured(func(p models.BusinessProfile) string { return p.BookingURL }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.BookingURL = v },
	},
	{
		Field: "mapEmbed",
		Candidates: []Candidate{
			configured(func(p models.BusinessProfile) string { return p.MapEmbed }),
		},
		Apply: func(p *models.BusinessProfile, v string) { p.MapEmbed = v },
	},
}

func addressPart(field string, get func(*models.Address) *string) FieldResolver {
	return FieldResolver{
		Field: field,
		Candidates: []Candidate{
			configured(func(p models.BusinessProfile) string { return *get(&p.Address) }),
			literal(func(p models.BusinessProfile) string { return *get(&p.Address) }),
		},
		Apply: func(p *models.BusinessProfile, v string) { *get(&p.Address) = v },
	}
}
