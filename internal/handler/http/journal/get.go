package journal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"journal-storefront/internal/domain/entity"
	"journal-storefront/internal/handler/http/cachecontrol"
	"journal-storefront/internal/handler/http/respond"
	"journal-storefront/internal/observability/logging"
	"journal-storefront/internal/observability/metrics"
	"journal-storefront/internal/resilience/circuitbreaker"
	journalUC "journal-storefront/internal/usecase/journal"
)

// LocaleResolver picks the locale for a request.
type LocaleResolver interface {
	Resolve(r *http.Request) entity.Locale
}

// GetHandler serves GET /journal/{handle}.
//
// Responses:
//   - 200 with the article page
//   - 404 with the bare "Article not found" fallback
//   - 502 when the content API failed, 503 while its circuit is open
//   - 500 for anything else
//
// Every response carries the long cache policy declared before the fetch.
type GetHandler struct {
	Pages   Renderer
	Locales LocaleResolver
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := RouteParams{HandleParam: r.PathValue(HandleParam)}
	loc := h.Locales.Resolve(r)

	page, err := h.Pages.Render(r.Context(), params, loc, cachecontrol.HeaderSetter{W: w})
	if err != nil {
		metrics.RecordArticleRender(metrics.RenderError)
		respond.ErrorPage(w, r, StatusFor(err), err)
		return
	}

	metrics.RecordArticleRender(page.Result)
	logging.WithRequestID(r.Context(), logging.FromContext(r.Context())).DebugContext(r.Context(),
		"journal article rendered",
		slog.String("handle", params.Handle()),
		slog.String("locale", loc.Tag()),
		slog.String("result", page.Result))

	respond.HTML(w, page.Status, page.Body)
}

// StatusFor maps a render error to the HTTP status of the error page.
func StatusFor(err error) int {
	switch {
	case circuitbreaker.IsOpenError(err):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, journalUC.ErrFetchArticle):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
