// Package cachecontrol models the response cache policies a page handler can
// declare. The service only declares policy through Cache-Control; caching
// itself happens in front of it (CDN or browser).
package cachecontrol

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// Cache modes.
const (
	ModePublic  = "public"
	ModePrivate = "private"
	ModeNoStore = "no-store"
)

// Policy is a Cache-Control declaration. Zero durations are omitted.
// Durations are in seconds.
type Policy struct {
	Mode                 string
	MaxAge               int
	StaleWhileRevalidate int
	SMaxAge              int
	NoTransform          bool
}

// CacheLong is for content that rarely changes: one hour fresh, served stale
// for up to 23 more hours while revalidating.
func CacheLong() Policy {
	return Policy{Mode: ModePublic, MaxAge: 3600, StaleWhileRevalidate: 82800}
}

// CacheNone disables caching entirely. Error responses use it when the
// handler declared nothing.
func CacheNone() Policy {
	return Policy{Mode: ModeNoStore}
}

// Header renders the Cache-Control header value.
func (p Policy) Header() string {
	if p.Mode == ModeNoStore {
		return ModeNoStore
	}

	parts := make([]string, 0, 5)
	if p.Mode != "" {
		parts = append(parts, p.Mode)
	}
	if p.MaxAge > 0 {
		parts = append(parts, "max-age="+strconv.Itoa(p.MaxAge))
	}
	if p.SMaxAge > 0 {
		parts = append(parts, "s-maxage="+strconv.Itoa(p.SMaxAge))
	}
	if p.StaleWhileRevalidate > 0 {
		parts = append(parts, "stale-while-revalidate="+strconv.Itoa(p.StaleWhileRevalidate))
	}
	if p.NoTransform {
		parts = append(parts, "no-transform")
	}
	return strings.Join(parts, ", ")
}

// Setter receives the cache policy a handler declares for its response.
type Setter interface {
	Cache(p Policy)
}

// HeaderSetter writes the declared policy onto a response's headers. It must
// be used before the response header is written.
type HeaderSetter struct {
	W http.ResponseWriter
}

// Cache implements Setter.
func (s HeaderSetter) Cache(p Policy) {
	s.W.Header().Set("Cache-Control", p.Header())
}

// Recorder captures declared policies. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	policies []Policy
}

// Cache implements Setter.
func (r *Recorder) Cache(p Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies = append(r.policies, p)
}

// Last returns the most recently declared policy.
func (r *Recorder) Last() (Policy, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.policies) == 0 {
		return Policy{}, false
	}
	return r.policies[len(r.policies)-1], true
}

// Count returns how many policies were declared.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.policies)
}
