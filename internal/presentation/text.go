// Package presentation derives display strings from a resolved profile.
// Every function is total: bad input yields an empty string or a placeholder.
package presentation

import (
	"strings"
	"unicode"

	"dental-site/internal/models"

	"github.com/rivo/uniseg"
)

const (
	addressSeparator    = "، "
	monogramPlaceholder = "؟"
)

// LocalizeDigits replaces ASCII digits with Persian digits.
func LocalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '۰' + (r - '0')
		}
		return r
	}, s)
}

// asciiDigits is the inverse of LocalizeDigits and also folds Arabic-Indic digits.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	}, s)
}

// FormatAddress prefers the formatted override when it is written without
// Latin letters, otherwise joins the parts. Digits are localized.
func FormatAddress(a models.Address) string {
	if f := strings.TrimSpace(a.Formatted); f != "" && !hasLatin(f) {
		return LocalizeDigits(f)
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.Province, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return LocalizeDigits(strings.Join(parts, addressSeparator))
}

func hasLatin(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}

// Monogram returns the first user-perceived character of name.
func Monogram(name string) string {
	g := uniseg.NewGraphemes(strings.TrimSpace(name))
	if g.Next() {
		return g.Str()
	}
	return monogramPlaceholder
}
