// Package pathutil normalizes request paths into route templates for metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	// Journal article pages; the handle is any non-empty segment.
	{Pattern: regexp.MustCompile(`^/journal/[^/]+$`), Template: "/journal/:handle"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts article paths (e.g., /journal/hello) to template format (e.g., /journal/:handle).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/journal/hello")         // "/journal/:handle"
//	NormalizePath("/journal/hello/")        // "/journal/:handle"
//	NormalizePath("/journal/hello?x=1")     // "/journal/:handle"
//	NormalizePath("/journal")               // "/journal" (unchanged)
//	NormalizePath("/health")                // "/health" (unchanged)
//	NormalizePath("/metrics")               // "/metrics" (unchanged)
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization: one per template plus the static operational endpoints
// (/health, /ready, /live, /metrics, /journal).
func GetExpectedCardinality() int {
	return len(pathPatterns) + 5
}
