// internal/presentation/links.go
package presentation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
)

// PlaceholderLink is used when no usable href can be built.
const PlaceholderLink = "#"

var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// PhoneLink builds a tel: href, keeping a leading "+" and every digit.
func PhoneLink(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = trimPrefixFold(phone, "tel:")
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	if strings.HasPrefix(phone, "+") {
		b.WriteByte('+')
	}
	digits := 0
	for _, r := range asciiDigits(phone) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			digits++
		}
	}
	if digits == 0 {
		return PlaceholderLink
	}
	return "tel:" + b.String()
}

// PhoneLabel is the phone number as displayed.
func PhoneLabel(phone string) string {
	return LocalizeDigits(strings.TrimSpace(phone))
}

// MailLink builds a mailto: href from a possibly decorated address.
func MailLink(email string) string {
	email = trimPrefixFold(strings.TrimSpace(email), "mailto:")
	email = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, email)

	if email == "" || !govalidator.IsEmail(email) {
		return PlaceholderLink
	}
	return "mailto:" + email
}

// WebsiteLabel shows the bare host of a URL, or the URL without its scheme
// and trailing slash when no host can be parsed.
func WebsiteLabel(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	if u, err := url.Parse(website); err == nil && u.Hostname() != "" {
		return LocalizeDigits(strings.TrimPrefix(u.Hostname(), "www."))
	}
	label := schemePrefix.ReplaceAllString(website, "")
	label = strings.TrimRight(label, "/")
	return LocalizeDigits(label)
}

func trimPrefixFold(s, prefix string) string {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):]
	}
	return s
}
