// Package locale resolves the storefront locale of an incoming request.
package locale

import (
	"net/http"

	"journal-storefront/internal/domain/entity"

	"golang.org/x/text/language"
)

// QueryParam overrides negotiation when present and supported.
const QueryParam = "locale"

// Resolver picks one of the shop's supported locales for a request.
//
// Resolution order: the ?locale= query parameter, then the Accept-Language
// header, then the default locale. Candidates are matched against the
// supported list with golang.org/x/text/language, so "fr" or "fr-BE" can
// resolve to a supported "fr-FR". A candidate never resolves to a locale of
// another language.
type Resolver struct {
	def       entity.Locale
	supported []entity.Locale
	tags      []language.Tag
	matcher   language.Matcher
}

// NewResolver creates a resolver. The default locale is always supported.
func NewResolver(def entity.Locale, supported []entity.Locale) *Resolver {
	locales := []entity.Locale{def}
	for _, l := range supported {
		if l != def {
			locales = append(locales, l)
		}
	}

	tags := make([]language.Tag, 0, len(locales))
	kept := make([]entity.Locale, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l.Tag())
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		kept = append(kept, l)
	}

	return &Resolver{
		def:       def,
		supported: kept,
		tags:      tags,
		matcher:   language.NewMatcher(tags),
	}
}

// Default returns the fallback locale.
func (res *Resolver) Default() entity.Locale {
	return res.def
}

// Supported returns the locales the resolver can pick, default first.
func (res *Resolver) Supported() []entity.Locale {
	out := make([]entity.Locale, len(res.supported))
	copy(out, res.supported)
	return out
}

// Resolve returns the locale for r.
func (res *Resolver) Resolve(r *http.Request) entity.Locale {
	if q := r.URL.Query().Get(QueryParam); q != "" {
		if loc, ok := res.Match(q); ok {
			return loc
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil {
			for _, tag := range tags {
				if loc, ok := res.match(tag); ok {
					return loc
				}
			}
		}
	}

	return res.def
}

// Match resolves a single locale string ("fr-CA", "fr_ca", "fr") to a
// supported locale.
func (res *Resolver) Match(s string) (entity.Locale, bool) {
	loc, err := entity.ParseLocale(s)
	if err != nil {
		return entity.Locale{}, false
	}
	tag, err := language.Parse(loc.Tag())
	if err != nil {
		return entity.Locale{}, false
	}
	return res.match(tag)
}

// match accepts the matcher's pick only when it shares tag's base language.
// x/text falls back across languages (sw-KE to en-US) with High confidence.
func (res *Resolver) match(tag language.Tag) (entity.Locale, bool) {
	_, idx, conf := res.matcher.Match(tag)
	if conf == language.No {
		return entity.Locale{}, false
	}
	want, _ := tag.Base()
	got, _ := res.tags[idx].Base()
	if want != got {
		return entity.Locale{}, false
	}
	return res.supported[idx], true
}
