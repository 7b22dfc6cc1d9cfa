package view

import (
	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

// ArticleNotFoundText is the whole body served for an unknown article handle.
const ArticleNotFoundText = "Article not found"

// NotFound renders the bare not-found fallback: <div>Article not found</div>.
func NotFound() g.Node {
	return h.Div(g.Text(ArticleNotFoundText))
}
