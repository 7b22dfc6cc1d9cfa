// Package middleware holds HTTP middleware that is configured at startup
// and shared by every route of the storefront server.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"journal-storefront/pkg/security/csp"
)

// CSPMiddlewareConfig holds configuration for CSP middleware.
// It supports path-based policy selection and report-only mode for testing.
type CSPMiddlewareConfig struct {
	// Enabled controls whether CSP headers are applied.
	Enabled bool

	// DefaultPolicy is applied when no path-specific policy matches.
	DefaultPolicy *csp.CSPBuilder

	// PathPolicies maps path prefixes to specific CSP policies.
	// Example: map[string]*csp.CSPBuilder{
	//     "/journal/": csp.StorefrontPolicy(images, styles, fonts),
	// }
	PathPolicies map[string]*csp.CSPBuilder

	// ReportOnly enables Content-Security-Policy-Report-Only mode.
	ReportOnly bool
}

// compiledPolicy is a policy rendered once at construction.
type compiledPolicy struct {
	header string
	value  string
}

// CSPMiddleware applies Content-Security-Policy headers to HTTP responses.
// Policies are built when the middleware is created, so the builders in the
// config are never touched while serving.
type CSPMiddleware struct {
	enabled  bool
	fallback *compiledPolicy
	prefixes map[string]*compiledPolicy
}

// NewCSPMiddleware creates a new CSP middleware with the provided configuration.
//
// Example:
//
//	cspMiddleware := NewCSPMiddleware(CSPMiddlewareConfig{
//	    Enabled:       true,
//	    DefaultPolicy: csp.StrictPolicy(),
//	    PathPolicies: map[string]*csp.CSPBuilder{
//	        "/journal/": csp.StorefrontPolicy(images, styles, fonts),
//	    },
//	})
//	handler = cspMiddleware.Middleware()(handler)
func NewCSPMiddleware(config CSPMiddlewareConfig) *CSPMiddleware {
	m := &CSPMiddleware{
		enabled:  config.Enabled,
		fallback: compile(config.DefaultPolicy, config.ReportOnly),
		prefixes: make(map[string]*compiledPolicy, len(config.PathPolicies)),
	}
	for prefix, policy := range config.PathPolicies {
		if c := compile(policy, config.ReportOnly); c != nil {
			m.prefixes[prefix] = c
		}
	}
	return m
}

func compile(policy *csp.CSPBuilder, reportOnly bool) *compiledPolicy {
	if policy == nil {
		return nil
	}
	p := policy.Clone()
	if reportOnly {
		p.ReportOnly(true)
	}
	value := p.Build()
	if value == "" {
		return nil
	}
	return &compiledPolicy{header: p.HeaderName(), value: value}
}

// Middleware returns an HTTP middleware handler that applies CSP headers.
//
// Path Matching:
//   - Uses prefix matching (e.g., "/journal/" matches "/journal/hello")
//   - Longest matching prefix wins if multiple matches exist
//   - Falls back to DefaultPolicy when nothing matches
func (m *CSPMiddleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.enabled {
				next.ServeHTTP(w, r)
				return
			}

			if policy := m.selectPolicy(r.URL.Path); policy != nil {
				w.Header().Set(policy.header, policy.value)
				slog.Debug("CSP header applied",
					slog.String("path", r.URL.Path),
					slog.String("header", policy.header),
				)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// selectPolicy returns the policy of the longest matching prefix, or the
// default policy. It returns nil when neither is configured.
func (m *CSPMiddleware) selectPolicy(path string) *compiledPolicy {
	longestPrefix := ""
	var matched *compiledPolicy

	for prefix, policy := range m.prefixes {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(longestPrefix) {
			longestPrefix = prefix
			matched = policy
		}
	}

	if matched != nil {
		return matched
	}
	return m.fallback
}
