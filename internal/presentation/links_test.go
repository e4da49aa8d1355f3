package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneLink(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "+98 992 589 8954", want: "tel:+989925898954"},
		{in: "tel:+98-21-000", want: "tel:+9821000"},
		{in: "TEL: 021 (555) 12", want: "tel:02155512"},
		{in: "۰۲۱ ۱۲۳", want: "tel:021123"},
		{in: "call us", want: "#"},
		{in: "+", want: "#"},
		{in: "", want: "#"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneLink(tt.in))
		})
	}
}

func TestPhoneLabel(t *testing.T) {
	assert.Equal(t, "+۹۸ ۹۹۲", PhoneLabel(" +98 992 "))
}

func TestMailLink(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "info@elanza-dental.ir", want: "mailto:info@elanza-dental.ir"},
		{in: "mailto:desk@clinic.example", want: "mailto:desk@clinic.example"},
		{in: " MAILTO: desk @ clinic.example ", want: "mailto:desk@clinic.example"},
		{in: "not-an-email", want: "#"},
		{in: "", want: "#"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MailLink(tt.in))
		})
	}
}

func TestWebsiteLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "https://www.elanza-dental.ir/", want: "elanza-dental.ir"},
		{in: "http://clinic24.example/path", want: "clinic۲۴.example"},
		{in: "clinic.example/", want: "clinic.example"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, WebsiteLabel(tt.in))
		})
	}
}
