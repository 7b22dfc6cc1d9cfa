package view

import (
	"net/url"

	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

// DefaultFontStylesheetURL loads the Fraunces display face.
const DefaultFontStylesheetURL = "https://fonts.googleapis.com/css2?family=Fraunces:opsz,wght@9..144,400;9..144,600&display=swap"

// CustomFont returns the <head> nodes that load the stylesheet at href,
// preconnecting to its host first. It returns nothing for an empty href.
func CustomFont(href string) []g.Node {
	if href == "" {
		return nil
	}

	nodes := make([]g.Node, 0, 2)
	if u, err := url.Parse(href); err == nil && u.Host != "" {
		origin := u.Scheme + "://" + u.Host
		nodes = append(nodes, h.Link(h.Rel("preconnect"), h.Href(origin), g.Attr("crossorigin", "")))
	}
	return append(nodes, h.Link(h.Rel("stylesheet"), h.Href(href)))
}
