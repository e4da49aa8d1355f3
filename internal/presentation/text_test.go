package presentation

import (
	"testing"

	"dental-site/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLocalizeDigits(t *testing.T) {
	assert.Equal(t, "۰۱۲۳۴۵۶۷۸۹", LocalizeDigits("0123456789"))
	assert.Equal(t, "پلاک ۹۳۲", LocalizeDigits("پلاک 932"))
	assert.Equal(t, "", LocalizeDigits(""))
	assert.Equal(t, "09:30", asciiDigits("۰۹:۳۰"))
	assert.Equal(t, "12", asciiDigits("١٢"))
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name string
		addr models.Address
		want string
	}{
		{
			name: "empty",
			addr: models.Address{},
			want: "",
		},
		{
			name: "parts joined and localized",
			addr: models.Address{Street: "شهید بلور 932", City: "کرمانشاه", Country: "ایران"},
			want: "شهید بلور ۹۳۲، کرمانشاه، ایران",
		},
		{
			name: "persian formatted override wins",
			addr: models.Address{Street: "x", Formatted: "کرمانشاه، خیابان 12"},
			want: "کرمانشاه، خیابان ۱۲",
		},
		{
			name: "latin formatted override ignored",
			addr: models.Address{City: "کرمانشاه", Formatted: "Kermanshah, Iran"},
			want: "کرمانشاه",
		},
		{
			name: "blank parts skipped",
			addr: models.Address{Street: " ", City: "قم", PostalCode: "123"},
			want: "قم، ۱۲۳",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAddress(tt.addr))
		})
	}
}

func TestMonogram(t *testing.T) {
	assert.Equal(t, "د", Monogram("دکتر سنایی"))
	assert.Equal(t, "E", Monogram("  Elanza"))
	assert.Equal(t, "👩‍⚕️", Monogram("👩‍⚕️ clinic"))
	assert.Equal(t, "؟", Monogram(""))
	assert.Equal(t, "؟", Monogram("   "))
}
