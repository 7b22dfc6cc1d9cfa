// Package datefmt formats publication dates the way the storefront shows them:
// day, full month name and year, spelled for the reader's locale.
package datefmt

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

type longFormat struct {
	layout string
	locale monday.Locale
}

// supported lists the locales with a dedicated long-date layout.
// The first entry is the fallback for unmatched tags.
var supported = []struct {
	tag    language.Tag
	format longFormat
}{
	{language.AmericanEnglish, longFormat{"January 2, 2006", monday.LocaleEnUS}},
	{language.MustParse("en-CA"), longFormat{"January 2, 2006", monday.LocaleEnUS}},
	{language.BritishEnglish, longFormat{"2 January 2006", monday.LocaleEnGB}},
	{language.MustParse("fr-FR"), longFormat{"2 January 2006", monday.LocaleFrFR}},
	{language.CanadianFrench, longFormat{"2 January 2006", monday.LocaleFrCA}},
	{language.MustParse("de-DE"), longFormat{"2. January 2006", monday.LocaleDeDE}},
	{language.MustParse("es-ES"), longFormat{"2 de January de 2006", monday.LocaleEsES}},
	{language.MustParse("it-IT"), longFormat{"2 January 2006", monday.LocaleItIT}},
	{language.MustParse("nl-NL"), longFormat{"2 January 2006", monday.LocaleNlNL}},
	{language.BrazilianPortuguese, longFormat{"2 de January de 2006", monday.LocalePtBR}},
	{language.EuropeanPortuguese, longFormat{"2 de January de 2006", monday.LocalePtPT}},
	{language.MustParse("sv-SE"), longFormat{"2 January 2006", monday.LocaleSvSE}},
	{language.MustParse("ja-JP"), longFormat{"2006年1月2日", monday.LocaleJaJP}},
	{language.MustParse("zh-CN"), longFormat{"2006年1月2日", monday.LocaleZhCN}},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// LongDate renders t as a long-form date for the BCP 47 tag, e.g.
// "June 20, 2022" for en-US or "20 juin 2022" for fr-FR.
// The date is taken in UTC. Unparseable or unsupported tags render as en-US.
func LongDate(t time.Time, tag string) string {
	f := formatFor(tag)
	return monday.Format(t.UTC(), f.layout, f.locale)
}

// Supports reports whether tag has a long-date layout of its own language.
// Tags it rejects render with the en-US fallback.
func Supports(tag string) bool {
	_, ok := lookup(tag)
	return ok
}

func formatFor(tag string) longFormat {
	if f, ok := lookup(tag); ok {
		return f
	}
	return supported[0].format
}

func lookup(tag string) (longFormat, bool) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return longFormat{}, false
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return longFormat{}, false
	}
	want, _ := parsed.Base()
	got, _ := supported[idx].tag.Base()
	if want != got {
		return longFormat{}, false
	}
	return supported[idx].format, true
}
