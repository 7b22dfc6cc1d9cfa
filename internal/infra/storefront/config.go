package storefront

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"journal-storefront/internal/domain/entity"
	"journal-storefront/pkg/config"
)

var apiVersionPattern = regexp.MustCompile(`^\d{4}-\d{2}$|^unstable$`)

// maxTimeout caps Timeout; a page render should never wait longer.
const maxTimeout = time.Minute

// Config holds the settings for talking to the Storefront API.
type Config struct {
	// StoreDomain is the shop's API host, e.g. "hydrogen-preview.myshopify.com".
	// A value with an explicit scheme ("http://127.0.0.1:9000") is used as the
	// base URL verbatim, which is how tests and local mocks are wired.
	StoreDomain string

	// APIVersion is the dated Storefront API version, e.g. "2022-07".
	// Default: 2022-07
	APIVersion string

	// AccessToken is the public Storefront access token sent in
	// X-Shopify-Storefront-Access-Token.
	AccessToken string

	// Timeout bounds a single HTTP round trip.
	// Default: 10s
	Timeout time.Duration

	// MaxBodySize is the largest response body accepted, in bytes.
	// Default: 5242880 (5MB)
	MaxBodySize int64

	// RateLimitRPS and RateLimitBurst shape outbound query traffic.
	// Default: 20 req/s, burst 40
	RateLimitRPS   float64
	RateLimitBurst int
}

// DefaultConfig returns the configuration defaults. StoreDomain and
// AccessToken have no default and must be provided.
func DefaultConfig() Config {
	return Config{
		APIVersion:     "2022-07",
		Timeout:        10 * time.Second,
		MaxBodySize:    5 * 1024 * 1024,
		RateLimitRPS:   20,
		RateLimitBurst: 40,
	}
}

// Endpoint returns the GraphQL endpoint URL:
// https://{domain}/api/{version}/graphql.json
func (c Config) Endpoint() string {
	base := strings.TrimRight(c.StoreDomain, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return fmt.Sprintf("%s/api/%s/graphql.json", base, c.APIVersion)
}

// Validate checks the configuration before a client is built.
//
// Validation rules:
//   - StoreDomain and AccessToken: required
//   - APIVersion: YYYY-MM or "unstable"
//   - Timeout: > 0 and <= 1m
//   - MaxBodySize: 1KB-100MB
//   - RateLimitRPS: > 0, RateLimitBurst: >= 1
func (c Config) Validate() error {
	if strings.TrimSpace(c.StoreDomain) == "" {
		return &entity.ValidationError{Field: "store_domain", Message: "store domain is required"}
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		return &entity.ValidationError{Field: "access_token", Message: "storefront access token is required"}
	}
	if !apiVersionPattern.MatchString(c.APIVersion) {
		return &entity.ValidationError{
			Field:   "api_version",
			Message: fmt.Sprintf("api version must look like 2022-07, got %q", c.APIVersion),
		}
	}
	if err := entity.ValidateURL(c.Endpoint()); err != nil {
		return fmt.Errorf("invalid store domain: %w", err)
	}
	if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if err := config.ValidateDurationRange(c.Timeout, 0, maxTimeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	minBodySize := int64(1024)
	maxBodySize := int64(100 * 1024 * 1024)
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1, got %d", c.RateLimitBurst)
	}
	return nil
}

// LoadConfigFromEnv loads configuration from environment variables and
// validates it.
//
// Environment variables:
//   - SHOPIFY_STORE_DOMAIN: shop API host (required)
//   - SHOPIFY_STOREFRONT_API_VERSION: API version (default: 2022-07)
//   - SHOPIFY_STOREFRONT_TOKEN: Storefront access token (required)
//   - STOREFRONT_TIMEOUT: duration string (default: 10s)
//   - STOREFRONT_MAX_BODY_SIZE: bytes (default: 5242880)
//   - STOREFRONT_RATE_LIMIT_RPS: float (default: 20)
//   - STOREFRONT_RATE_LIMIT_BURST: integer (default: 40)
func LoadConfigFromEnv() (Config, error) {
	def := DefaultConfig()

	cfg := Config{
		StoreDomain:    config.GetEnvString("SHOPIFY_STORE_DOMAIN", ""),
		APIVersion:     config.GetEnvString("SHOPIFY_STOREFRONT_API_VERSION", def.APIVersion),
		AccessToken:    config.GetEnvString("SHOPIFY_STOREFRONT_TOKEN", ""),
		Timeout:        config.GetEnvDuration("STOREFRONT_TIMEOUT", def.Timeout),
		MaxBodySize:    config.GetEnvInt64("STOREFRONT_MAX_BODY_SIZE", def.MaxBodySize),
		RateLimitRPS:   config.GetEnvFloat("STOREFRONT_RATE_LIMIT_RPS", def.RateLimitRPS),
		RateLimitBurst: config.GetEnvInt("STOREFRONT_RATE_LIMIT_BURST", def.RateLimitBurst),
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("storefront configuration validation failed: %w", err)
	}
	return cfg, nil
}
