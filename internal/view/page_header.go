package view

import (
	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

// PageHeader variants.
const (
	HeaderDefault  = "default"
	HeaderBlogPost = "blogPost"
)

var headerStyles = map[string]string{
	HeaderDefault:  "grid w-full gap-8 p-6 py-8 md:p-8 lg:p-12 justify-items-start",
	HeaderBlogPost: "grid w-full gap-4 p-6 py-8 md:p-8 lg:p-12 justify-items-center text-center",
}

// PageHeader renders the page heading followed by any supporting children.
func PageHeader(heading, variant string, children ...g.Node) g.Node {
	style, ok := headerStyles[variant]
	if !ok {
		style = headerStyles[HeaderDefault]
	}

	nodes := []g.Node{
		h.Class(style),
		h.H1(h.Class("whitespace-pre-wrap font-bold inline-block"), g.Text(heading)),
	}
	nodes = append(nodes, children...)
	return h.Header(nodes...)
}
