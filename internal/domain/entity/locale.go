package entity

import (
	"fmt"
	"strings"
)

// DefaultLocale is used when neither the request nor the configuration
// names a locale.
var DefaultLocale = Locale{Language: "EN", Country: "US"}

// Locale is the (language, country) pair resolved for one request.
// Language and Country hold ISO codes in the platform's upper-case form
// ("EN", "US").
type Locale struct {
	Language string
	Country  string
}

// LanguageCode returns the value sent as the query's $language variable.
func (l Locale) LanguageCode() string {
	return strings.ToUpper(l.Language)
}

// CountryCode returns the upper-case ISO 3166 country code.
func (l Locale) CountryCode() string {
	return strings.ToUpper(l.Country)
}

// Tag returns the BCP 47 tag "${language}-${country}", e.g. "en-US".
func (l Locale) Tag() string {
	if l.Country == "" {
		return strings.ToLower(l.Language)
	}
	return strings.ToLower(l.Language) + "-" + l.CountryCode()
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return l.Tag()
}

// ParseLocale parses "en-US", "en_US" or "EN-us" into a Locale.
// A bare language ("fr") yields an empty country.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return Locale{}, &ValidationError{Field: "locale", Message: "locale is required"}
	}

	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return Locale{}, fmt.Errorf("%w: %q", ErrInvalidLocale, s)
	}
	if !isAlpha(parts[0], 2, 3) {
		return Locale{}, fmt.Errorf("%w: language %q", ErrInvalidLocale, parts[0])
	}

	loc := Locale{Language: strings.ToUpper(parts[0])}
	if len(parts) == 2 {
		if !isAlpha(parts[1], 2, 2) {
			return Locale{}, fmt.Errorf("%w: country %q", ErrInvalidLocale, parts[1])
		}
		loc.Country = strings.ToUpper(parts[1])
	}
	return loc, nil
}

func isAlpha(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
