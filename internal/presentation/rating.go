// internal/presentation/rating.go
package presentation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const MaxStars = 5

// StarCounts splits a rating into full, half and empty stars.
type StarCounts struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// Stars clamps rating to [0, 5]; a fractional part of 0.5 or more is a half star.
func Stars(rating float64) StarCounts {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	if rating > MaxStars {
		rating = MaxStars
	}

	full := int(math.Floor(rating))
	half := 0
	if rating-float64(full) >= 0.5 {
		half = 1
	}
	return StarCounts{Full: full, Half: half, Empty: MaxStars - full - half}
}

// RatingLabel renders "امتیاز: ۴٫۹ از ۵ (بر اساس ۱۲ نظر)".
func RatingLabel(rating float64, reviewCount int) string {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		rating = 0
	}
	if reviewCount < 0 {
		reviewCount = 0
	}
	value := strings.Replace(strconv.FormatFloat(rating, 'f', 1, 64), ".", "٫", 1)
	return LocalizeDigits(fmt.Sprintf("امتیاز: %s از %d (بر اساس %d نظر)", value, MaxStars, reviewCount))
}
