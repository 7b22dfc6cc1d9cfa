// Package journal serves the storefront's journal article pages.
package journal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"journal-storefront/internal/domain/entity"
	"journal-storefront/internal/handler/http/cachecontrol"
	"journal-storefront/internal/observability/metrics"
	"journal-storefront/internal/view"

	g "github.com/maragudk/gomponents"
)

// HandleParam is the route parameter naming the article.
const HandleParam = "handle"

// RouteParams are the path parameters matched for a request.
type RouteParams map[string]string

// Handle returns the article handle. Missing or empty values are returned
// as-is; no validation happens here.
func (p RouteParams) Handle() string {
	return p[HandleParam]
}

// ArticleService fetches journal articles.
type ArticleService interface {
	GetArticle(ctx context.Context, handle string, loc entity.Locale) (entity.ArticleLookup, error)
}

// Page is a rendered response body with its status code.
type Page struct {
	Status int
	Body   g.Node
	// Result is the render outcome label for metrics.
	Result string
}

// ErrUnknownLookup is returned when the service yields neither Found nor NotFound.
var ErrUnknownLookup = errors.New("unknown article lookup")

// Renderer turns a journal request into a Page.
type Renderer struct {
	Svc  ArticleService
	Shop view.Shop
}

// Render declares the long cache policy on cache, then fetches the article
// and maps it to a page. The policy is declared before the fetch on every
// path, so it also covers not-found and failed lookups. Fetch errors are
// returned unhandled.
func (rd Renderer) Render(ctx context.Context, params RouteParams, loc entity.Locale, cache cachecontrol.Setter) (Page, error) {
	cache.Cache(cachecontrol.CacheLong())

	lookup, err := rd.Svc.GetArticle(ctx, params.Handle(), loc)
	if err != nil {
		return Page{}, err
	}

	switch v := lookup.(type) {
	case entity.NotFound:
		return Page{Status: http.StatusNotFound, Body: view.NotFound(), Result: metrics.RenderNotFound}, nil
	case entity.Found:
		return Page{
			Status: http.StatusOK,
			Body: view.ArticlePage(view.ArticlePageProps{
				Shop:    rd.Shop,
				Locale:  loc,
				Article: v.Article,
			}),
			Result: metrics.RenderFound,
		}, nil
	default:
		return Page{}, fmt.Errorf("%w: %T", ErrUnknownLookup, lookup)
	}
}
