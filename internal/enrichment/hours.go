// internal/enrichment/hours.go
package enrichment

import (
	"strings"

	"dental-site/internal/models"
)

// RangeSeparator joins the first and last day of a run.
const RangeSeparator = " تا "

// FallbackHours is the schedule shown when upstream has no weekday text.
func FallbackHours() []models.OpeningHour {
	return []models.OpeningHour{
		{Day: "شنبه تا چهارشنبه", Hours: "09:30 – 17:00"},
		{Day: "پنجشنبه", Hours: "09:30 – 13:00"},
		{Day: "جمعه", Hours: "تعطیل"},
	}
}

// GroupHours parses "<day>: <hours>" lines and merges consecutive days that
// share the same hours into one "<first> تا <last>" entry. Blank lines are
// ignored; a line without a colon is a day with empty hours.
func GroupHours(lines []string) []models.OpeningHour {
	type run struct {
		first, last, hours string
	}

	var runs []run
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		day, hours := splitHoursLine(line)
		if n := len(runs); n > 0 && runs[n-1].hours == hours {
			runs[n-1].last = day
			continue
		}
		runs = append(runs, run{first: day, last: day, hours: hours})
	}

	out := make([]models.OpeningHour, 0, len(runs))
	for _, r := range runs {
		label := r.first
		if r.last != r.first {
			label = r.first + RangeSeparator + r.last
		}
		out = append(out, models.OpeningHour{Day: label, Hours: r.hours})
	}
	return out
}

func splitHoursLine(line string) (day, hours string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return line, ""
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
}

func resolveHours(record *models.PlaceRecord) []models.OpeningHour {
	if grouped := GroupHours(record.WeekdayText()); len(grouped) > 0 {
		return grouped
	}
	return FallbackHours()
}
