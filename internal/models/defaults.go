// internal/models/defaults.go
package models

// DefaultProfile returns the hardcoded literal layer: the values used when
// neither the place lookup nor configuration supplies a field.
func DefaultProfile() BusinessProfile {
	return BusinessProfile{
		Name:        "دکتر محمد مهدی سنایی – Elanza Dental",
		Description: "کلینیک دندانپزشکی الَنزا با بهره‌گیری از جدیدترین تکنولوژی‌ها و تیم متخصص، خدمات دندانپزشکی با کیفیت بالا را ارائه می‌دهد. ما متعهد به ارائه خدماتی مطمئن، بهداشتی و مقرون‌به‌صرفه هستیم.",
		Phone:       "+98 992 589 8954",
		Email:       "info@elanza-dental.ir",
		Website:     "https://elanza-dental.ir",
		Address: Address{
			Street:   "شهید بلور ۹۳۲",
			City:     "کرمانشاه",
			Province: "استان کرمانشاه",
			Country:  "ایران",
		},
		Coordinates: Coordinates{Lat: 34.3511086, Lng: 47.0874473},
		Rating:      DefaultRating,
		ReviewCount: DefaultReviewCount,
	}
}

const (
	DefaultRating      = 4.9
	DefaultReviewCount = 0
)
