package config

// CSPConfig contains the configuration for Content Security Policy.
type CSPConfig struct {
	// Enabled controls whether CSP headers are applied
	Enabled bool

	// ReportOnly sets the header to Content-Security-Policy-Report-Only
	// instead of Content-Security-Policy, which logs violations but does not enforce
	ReportOnly bool

	// ImageSources lists hosts allowed in img-src on storefront pages
	ImageSources []string

	// StyleSources lists hosts allowed in style-src (font stylesheets)
	StyleSources []string

	// FontSources lists hosts allowed in font-src
	FontSources []string
}

// LoadCSPConfig loads Content Security Policy configuration from environment variables.
//
// Environment variables:
//   - CSP_ENABLED: Enable/disable CSP headers (default: true)
//   - CSP_REPORT_ONLY: Use report-only mode (default: false)
//   - CSP_IMAGE_SOURCES: comma-separated img-src hosts (default: https://cdn.shopify.com)
//   - CSP_STYLE_SOURCES: comma-separated style-src hosts (default: https://fonts.googleapis.com)
//   - CSP_FONT_SOURCES: comma-separated font-src hosts (default: https://fonts.gstatic.com)
func LoadCSPConfig() *CSPConfig {
	return &CSPConfig{
		Enabled:      GetEnvBool("CSP_ENABLED", true),
		ReportOnly:   GetEnvBool("CSP_REPORT_ONLY", false),
		ImageSources: GetEnvStringList("CSP_IMAGE_SOURCES", []string{"https://cdn.shopify.com"}),
		StyleSources: GetEnvStringList("CSP_STYLE_SOURCES", []string{"https://fonts.googleapis.com"}),
		FontSources:  GetEnvStringList("CSP_FONT_SOURCES", []string{"https://fonts.gstatic.com"}),
	}
}
