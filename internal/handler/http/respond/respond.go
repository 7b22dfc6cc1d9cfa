// Package respond writes HTTP responses for the storefront: JSON for
// operational endpoints and HTML for pages, including the generic error page.
// Errors are sanitized before they are logged and never reach the client.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"journal-storefront/internal/handler/http/cachecontrol"
	"journal-storefront/internal/handler/http/requestid"
	"journal-storefront/internal/observability/logging"
	"journal-storefront/internal/view"

	g "github.com/maragudk/gomponents"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// HTML renders n as a text/html response with the given status code.
func HTML(w http.ResponseWriter, code int, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := view.Render(w, n); err != nil {
		slog.Default().Error("failed to render HTML response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// ErrorPage logs err (sanitized, with the request ID) and renders the generic
// error page for code. Nothing from err is shown to the client.
func ErrorPage(w http.ResponseWriter, r *http.Request, code int, err error) {
	reqID := requestid.FromContext(r.Context())

	logger := logging.WithRequestID(r.Context(), logging.FromContext(r.Context()))
	level := slog.LevelError
	if code < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	logger.Log(r.Context(), level, "request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("path", r.URL.Path),
		slog.String("error", SanitizeError(err)))

	// A policy declared by the handler stands; otherwise errors are not cached.
	if w.Header().Get("Cache-Control") == "" {
		cachecontrol.HeaderSetter{W: w}.Cache(cachecontrol.CacheNone())
	}
	HTML(w, code, view.ErrorPage(code, reqID))
}
