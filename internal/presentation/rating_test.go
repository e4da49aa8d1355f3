package presentation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   StarCounts
	}{
		{rating: 4.5, want: StarCounts{Full: 4, Half: 1, Empty: 0}},
		{rating: 3.2, want: StarCounts{Full: 3, Half: 0, Empty: 2}},
		{rating: 5.0, want: StarCounts{Full: 5, Half: 0, Empty: 0}},
		{rating: 4.9, want: StarCounts{Full: 4, Half: 1, Empty: 0}},
		{rating: 0, want: StarCounts{Full: 0, Half: 0, Empty: 5}},
		{rating: 7, want: StarCounts{Full: 5, Half: 0, Empty: 0}},
		{rating: -1, want: StarCounts{Full: 0, Half: 0, Empty: 5}},
		{rating: math.NaN(), want: StarCounts{Full: 0, Half: 0, Empty: 5}},
	}
	for _, tt := range tests {
		got := Stars(tt.rating)
		assert.Equal(t, tt.want, got, "rating %v", tt.rating)
		assert.Equal(t, MaxStars, got.Full+got.Half+got.Empty)
	}
}

func TestRatingLabel(t *testing.T) {
	assert.Equal(t, "امتیاز: ۴٫۹ از ۵ (بر اساس ۰ نظر)", RatingLabel(4.9, 0))
	assert.Equal(t, "امتیاز: ۵٫۰ از ۵ (بر اساس ۱۲۸ نظر)", RatingLabel(5, 128))
	assert.Equal(t, "امتیاز: ۰٫۰ از ۵ (بر اساس ۰ نظر)", RatingLabel(math.NaN(), -3))
}
