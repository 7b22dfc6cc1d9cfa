// Package csp builds Content-Security-Policy header values.
package csp

import (
	"fmt"
	"strings"
)

// directiveOrder fixes the order directives appear in the header value.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
	"report-uri",
}

// CSPBuilder provides a fluent interface for constructing Content-Security-Policy headers.
//
// Example Usage:
//
//	policy := NewCSPBuilder().
//	    DefaultSrc("'self'").
//	    ImgSrc("'self'", "https://cdn.shopify.com").
//	    Build()
//	// Returns: "default-src 'self'; img-src 'self' https://cdn.shopify.com"
//
// Thread Safety: CSPBuilder is not thread-safe. Build policies at startup and
// only read them afterwards; use Clone before modifying a shared policy.
type CSPBuilder struct {
	directives map[string][]string
	reportOnly bool
}

// NewCSPBuilder creates a new CSPBuilder with default empty directives.
func NewCSPBuilder() *CSPBuilder {
	return &CSPBuilder{
		directives: make(map[string][]string),
	}
}

func (b *CSPBuilder) set(directive string, sources []string) *CSPBuilder {
	b.directives[directive] = sources
	return b
}

// DefaultSrc sets the default-src directive, the fallback for other fetch directives.
func (b *CSPBuilder) DefaultSrc(sources ...string) *CSPBuilder { return b.set("default-src", sources) }

// ScriptSrc sets the script-src directive.
func (b *CSPBuilder) ScriptSrc(sources ...string) *CSPBuilder { return b.set("script-src", sources) }

// StyleSrc sets the style-src directive.
func (b *CSPBuilder) StyleSrc(sources ...string) *CSPBuilder { return b.set("style-src", sources) }

// ImgSrc sets the img-src directive.
func (b *CSPBuilder) ImgSrc(sources ...string) *CSPBuilder { return b.set("img-src", sources) }

// FontSrc sets the font-src directive.
func (b *CSPBuilder) FontSrc(sources ...string) *CSPBuilder { return b.set("font-src", sources) }

// ConnectSrc sets the connect-src directive.
func (b *CSPBuilder) ConnectSrc(sources ...string) *CSPBuilder { return b.set("connect-src", sources) }

// FrameAncestors sets the frame-ancestors directive.
// "'none'" prevents all framing and is the right value for most pages.
func (b *CSPBuilder) FrameAncestors(sources ...string) *CSPBuilder {
	return b.set("frame-ancestors", sources)
}

// FormAction sets the form-action directive.
func (b *CSPBuilder) FormAction(sources ...string) *CSPBuilder { return b.set("form-action", sources) }

// BaseUri sets the base-uri directive.
func (b *CSPBuilder) BaseUri(sources ...string) *CSPBuilder { return b.set("base-uri", sources) }

// ObjectSrc sets the object-src directive.
func (b *CSPBuilder) ObjectSrc(sources ...string) *CSPBuilder { return b.set("object-src", sources) }

// ReportUri sets the report-uri directive.
func (b *CSPBuilder) ReportUri(uri string) *CSPBuilder { return b.set("report-uri", []string{uri}) }

// ReportOnly sets whether the policy should be in report-only mode.
// In report-only mode, violations are reported but not enforced.
func (b *CSPBuilder) ReportOnly(enabled bool) *CSPBuilder {
	b.reportOnly = enabled
	return b
}

// Clone returns an independent copy of the builder.
func (b *CSPBuilder) Clone() *CSPBuilder {
	c := &CSPBuilder{
		directives: make(map[string][]string, len(b.directives)),
		reportOnly: b.reportOnly,
	}
	for k, v := range b.directives {
		c.directives[k] = append([]string(nil), v...)
	}
	return c
}

// Build generates the CSP header value string.
// Directives are joined with semicolons, and sources within each directive are space-separated.
func (b *CSPBuilder) Build() string {
	if len(b.directives) == 0 {
		return ""
	}

	var parts []string
	for _, directive := range directiveOrder {
		if sources, exists := b.directives[directive]; exists && len(sources) > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", directive, strings.Join(sources, " ")))
		}
	}

	return strings.Join(parts, "; ")
}

// HeaderName returns the appropriate CSP header name based on report-only mode.
func (b *CSPBuilder) HeaderName() string {
	if b.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// StorefrontPolicy returns the policy for server-rendered storefront pages.
//
// Pages carry no scripts of their own; the only script element is the
// non-executable JSON-LD block, so script-src stays 'none'. Article bodies
// are trusted HTML from the content API and may reference CDN images, so
// imageHosts must include the platform CDN.
func StorefrontPolicy(imageHosts, styleHosts, fontHosts []string) *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'none'").
		StyleSrc(append([]string{"'self'", "'unsafe-inline'"}, styleHosts...)...).
		ImgSrc(append([]string{"'self'", "data:"}, imageHosts...)...).
		FontSrc(append([]string{"'self'"}, fontHosts...)...).
		FrameAncestors("'none'").
		BaseUri("'self'").
		FormAction("'self'").
		ObjectSrc("'none'")
}

// StrictPolicy returns a strict CSP policy for JSON and plain-text endpoints
// (health probes, metrics).
func StrictPolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'none'").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		BaseUri("'self'").
		FormAction("'self'")
}
