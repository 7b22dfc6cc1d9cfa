// Package entity defines the core domain types of the journal storefront:
// blog articles as returned by the content API, the per-request locale
// context, and the trusted HTML fragment type used for article bodies.
package entity

import "time"

// TrustedHTML is an HTML fragment that an upstream system has already
// sanitized. Views render it verbatim, without escaping.
//
// Never convert user input or any unsanitized string to TrustedHTML.
type TrustedHTML string

// String returns the raw markup.
func (h TrustedHTML) String() string {
	return string(h)
}

// Author is the display identity attached to an article.
type Author struct {
	Name string
}

// Image is an article hero image hosted on the platform CDN.
// Width and Height are the intrinsic pixel dimensions; zero means unknown.
type Image struct {
	ID      string
	AltText string
	URL     string
	Width   int
	Height  int
}

// AspectRatio returns height/width, or 0 when the dimensions are unknown.
func (i Image) AspectRatio() float64 {
	if i.Width <= 0 || i.Height <= 0 {
		return 0
	}
	return float64(i.Height) / float64(i.Width)
}

// Article is a single journal post. It is produced fresh for each request
// and never mutated after decoding.
type Article struct {
	Title       string
	ContentHTML TrustedHTML
	PublishedAt time.Time
	Author      Author
	Image       *Image
}

// HasImage reports whether the article carries a hero image.
func (a Article) HasImage() bool {
	return a.Image != nil && a.Image.URL != ""
}

// ArticleLookup is the outcome of looking an article up by handle.
// It is either Found or NotFound; callers switch on the concrete type.
type ArticleLookup interface {
	isArticleLookup()
}

// Found carries the article that matched the requested handle.
type Found struct {
	Article Article
}

// NotFound records that no article matched Handle.
type NotFound struct {
	Handle string
}

func (Found) isArticleLookup()    {}
func (NotFound) isArticleLookup() {}
