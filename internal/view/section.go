package view

import (
	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

// Section padding modes.
const (
	PaddingAll  = "all"
	PaddingX    = "x"
	PaddingY    = "y"
	PaddingNone = "none"
)

var sectionPadding = map[string]string{
	PaddingAll:  "px-6 md:px-8 lg:px-12 py-6 md:py-8 lg:py-12",
	PaddingX:    "px-6 md:px-8 lg:px-12",
	PaddingY:    "py-6 md:py-8 lg:py-12",
	PaddingNone: "",
}

// Section renders a content block as element as ("section" when empty)
// with the theme's padding for the given mode.
func Section(as, padding string, children ...g.Node) g.Node {
	if as == "" {
		as = "section"
	}

	class := "w-full gap-4 md:gap-8 grid"
	if p := sectionPadding[padding]; p != "" {
		class += " " + p
	}

	nodes := append([]g.Node{h.Class(class)}, children...)
	return g.El(as, nodes...)
}
