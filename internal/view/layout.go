package view

import (
	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

// Shop carries the storefront-wide settings views need.
type Shop struct {
	Name string
	// FontStylesheetURL is the custom font loaded on article pages.
	// Empty disables the custom font.
	FontStylesheetURL string
}

// LayoutProps configures the page shell.
type LayoutProps struct {
	Shop Shop
	// Lang is the BCP 47 tag placed on <html lang>.
	Lang string
	// Head holds extra nodes for <head>, typically Seo and CustomFont output.
	Head []g.Node
}

// Layout renders the full HTML document around body.
func Layout(p LayoutProps, body ...g.Node) g.Node {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	head := []g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
	}
	head = append(head, p.Head...)

	content := []g.Node{g.Attr("role", "main"), g.Attr("id", "mainContent"), h.Class("flex-grow")}
	content = append(content, body...)

	return h.Doctype(
		h.HTML(h.Lang(lang),
			h.Head(head...),
			h.Body(
				h.Header(h.Class("flex items-center h-16 px-6 md:px-8 lg:px-12"),
					h.A(h.Href("/"), h.Class("font-bold"), g.Text(p.Shop.Name)),
				),
				h.Main(content...),
				h.Footer(h.Class("px-6 py-8 md:px-8 lg:px-12"),
					h.Span(g.Text(p.Shop.Name)),
				),
			),
		),
	)
}
