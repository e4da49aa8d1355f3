package presentation

import (
	"encoding/json"
	"math"
	"testing"

	"dental-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() models.BusinessProfile {
	p := models.DefaultProfile()
	p.GoogleURL = "https://maps.app.goo.gl/x"
	p.OpeningHours = []models.OpeningHour{
		{Day: "شنبه تا چهارشنبه", Hours: "09:30 – 17:00"},
		{Day: "پنج‌شنبه", Hours: "۰۹:۳۰ تا ۱۳:۰۰"},
		{Day: "جمعه", Hours: "تعطیل"},
		{Day: "Sunday", Hours: "Closed"},
		{Day: "Monday", Hours: "9-5"},
		{Day: "Holiday", Hours: "by appointment"},
	}
	return p
}

func TestBuildStructuredData(t *testing.T) {
	doc := BuildStructuredData(sampleProfile())

	assert.Equal(t, "https://schema.org", doc.Context)
	assert.Equal(t, "Dentist", doc.Type)
	assert.Equal(t, "PostalAddress", doc.Address.Type)
	assert.Equal(t, "کرمانشاه", doc.Address.AddressLocality)
	assert.Equal(t, 34.3511086, doc.Geo.Latitude)
	assert.Equal(t, "4.9", doc.AggregateRating.RatingValue)
	assert.Equal(t, "0", doc.AggregateRating.ReviewCount)
	assert.Equal(t, "https://maps.app.goo.gl/x", doc.URL)

	require.Len(t, doc.OpeningHoursSpecification, 3)
	assert.Equal(t, OpeningHoursSpecification{
		Type:      "OpeningHoursSpecification",
		DayOfWeek: []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday"},
		Opens:     "09:30",
		Closes:    "17:00",
	}, doc.OpeningHoursSpecification[0])
	assert.Equal(t, []string{"Thursday"}, doc.OpeningHoursSpecification[1].DayOfWeek)
	assert.Equal(t, "13:00", doc.OpeningHoursSpecification[1].Closes)
	assert.Equal(t, []string{"Monday"}, doc.OpeningHoursSpecification[2].DayOfWeek)
	assert.Equal(t, "09:00", doc.OpeningHoursSpecification[2].Opens)
	assert.Equal(t, "17:00", doc.OpeningHoursSpecification[2].Closes)
}

func TestSplitHours(t *testing.T) {
	tests := []struct {
		in            string
		opens, closes string
		ok            bool
	}{
		{in: "09:30 – 17:00", opens: "09:30", closes: "17:00", ok: true},
		{in: "۰۹:۳۰ تا ۱۳:۰۰", opens: "09:30", closes: "13:00", ok: true},
		{in: "9:00 AM – 5:00 PM", opens: "09:00", closes: "17:00", ok: true},
		{in: "9:00\u202fAM\u2009–\u20095:00\u202fPM", opens: "09:00", closes: "17:00", ok: true},
		{in: "9 – 11:30 AM", opens: "09:00", closes: "11:30", ok: true},
		{in: "11:00 – 2:00 PM", opens: "11:00", closes: "14:00", ok: true},
		{in: "9 AM - 5", opens: "09:00", closes: "17:00", ok: true},
		{in: "12:00 AM – 11:59 PM", opens: "00:00", closes: "23:59", ok: true},
		{in: "9–1", opens: "09:00", closes: "13:00", ok: true},
		{in: "22:00 – 02:00", opens: "22:00", closes: "02:00", ok: true},
		{in: "Open 24 hours"},
		{in: "by appointment"},
		{in: "25:00 – 26:00"},
		{in: "13 PM – 5 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			opens, closes, ok := splitHours(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.opens, opens)
			assert.Equal(t, tt.closes, closes)
		})
	}
}

func TestStructuredData_SplitShift(t *testing.T) {
	doc := BuildStructuredData(models.BusinessProfile{OpeningHours: []models.OpeningHour{
		{Day: "Monday", Hours: "9:00 AM – 1:00 PM, 2:00 – 6:00 PM"},
		{Day: "Tuesday", Hours: "9–1، garbage"},
	}})

	require.Len(t, doc.OpeningHoursSpecification, 3)
	assert.Equal(t, "09:00", doc.OpeningHoursSpecification[0].Opens)
	assert.Equal(t, "13:00", doc.OpeningHoursSpecification[0].Closes)
	assert.Equal(t, "14:00", doc.OpeningHoursSpecification[1].Opens)
	assert.Equal(t, "18:00", doc.OpeningHoursSpecification[1].Closes)
	assert.Equal(t, []string{"Tuesday"}, doc.OpeningHoursSpecification[2].DayOfWeek)
	assert.Equal(t, "13:00", doc.OpeningHoursSpecification[2].Closes)
}

func TestExpandDays(t *testing.T) {
	assert.Equal(t, []string{"Thursday", "Friday", "Saturday"}, expandDays("Thursday تا Saturday"))
	assert.Equal(t, []string{"Tuesday"}, expandDays("سه شنبه"))
	assert.Equal(t, []string{"Weekdays"}, expandDays("Weekdays"))
	assert.Equal(t, []string{"Monday تا Someday"}, expandDays("Monday تا Someday"))
}

func TestStructuredDataJSON(t *testing.T) {
	raw := StructuredDataJSON(sampleProfile())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "Dentist", decoded["@type"])

	p := sampleProfile()
	p.Coordinates.Lat = math.NaN()
	raw = StructuredDataJSON(p)
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, 0.0, decoded["geo"].(map[string]interface{})["latitude"])
}

func TestStructuredData_EmptyHours(t *testing.T) {
	doc := BuildStructuredData(models.BusinessProfile{})
	assert.NotNil(t, doc.OpeningHoursSpecification)
	assert.Empty(t, doc.OpeningHoursSpecification)
}
