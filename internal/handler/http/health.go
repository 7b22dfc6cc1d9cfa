package http

import (
	"log/slog"
	"net/http"
	"time"

	"journal-storefront/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`            // "healthy", "degraded" or "unhealthy"
	Message string                 `json:"message,omitempty"` // Optional status message
	Details map[string]interface{} `json:"details,omitempty"` // Optional additional details
}

// CSPHealthInfo contains health information for CSP middleware.
type CSPHealthInfo struct {
	Enabled    bool `json:"enabled"`
	ReportOnly bool `json:"report_only"`
}

// StorefrontStatus is the view of the content API client the probes need.
// *storefront.Client satisfies it.
type StorefrontStatus interface {
	IsCircuitOpen() bool
	Endpoint() string
}

// HealthHandler reports the state of the content API dependency and the
// security headers. The API is never called from a probe; the circuit
// breaker state stands in for its availability.
type HealthHandler struct {
	Storefront StorefrontStatus
	Version    string

	CSPEnabled    bool
	CSPReportOnly bool
}

// ServeHTTP returns 200 when the storefront check is healthy, 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)

	sf := h.checkStorefront()
	checks["storefront"] = sf
	allHealthy := sf.Status != "unhealthy"

	if h.CSPEnabled {
		checks["csp"] = h.checkCSP()
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// checkStorefront reports the circuit breaker guarding the content API.
// An open circuit means article pages currently fail fast with 503.
func (h *HealthHandler) checkStorefront() CheckStatus {
	if h.Storefront == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}

	details := map[string]interface{}{
		"endpoint":        h.Storefront.Endpoint(),
		"circuit_breaker": "closed",
	}
	if h.Storefront.IsCircuitOpen() {
		details["circuit_breaker"] = "open"
		return CheckStatus{
			Status:  "unhealthy",
			Message: "storefront API circuit breaker is open",
			Details: details,
		}
	}

	return CheckStatus{Status: "healthy", Details: details}
}

func (h *HealthHandler) checkCSP() CheckStatus {
	return CheckStatus{
		Status: "healthy",
		Details: map[string]interface{}{"config": CSPHealthInfo{
			Enabled:    h.CSPEnabled,
			ReportOnly: h.CSPReportOnly,
		}},
	}
}

// ReadyHandler handles Kubernetes readiness probe requests.
// The pod is taken out of rotation while the content API circuit is open.
type ReadyHandler struct {
	Storefront StorefrontStatus
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Storefront == nil {
		http.Error(w, "storefront client not configured", http.StatusServiceUnavailable)
		return
	}
	if h.Storefront.IsCircuitOpen() {
		http.Error(w, "storefront API circuit open", http.StatusServiceUnavailable)
		return
	}

	writePlain(w, "ready")
}

// LiveHandler handles Kubernetes liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK while the process can respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writePlain(w, "alive")
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("probe: failed to write response", slog.Any("error", err))
	}
}
