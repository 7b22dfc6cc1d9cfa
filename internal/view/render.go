package view

import (
	"fmt"
	"io"
	"strings"

	g "github.com/maragudk/gomponents"
)

// Render writes n to w.
func Render(w io.Writer, n g.Node) error {
	if err := n.Render(w); err != nil {
		return fmt.Errorf("render view: %w", err)
	}
	return nil
}

// RenderString renders n into a string.
func RenderString(n g.Node) (string, error) {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
