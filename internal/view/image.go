package view

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"journal-storefront/internal/domain/entity"

	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

// Loading attribute values.
const (
	LoadingEager = "eager"
	LoadingLazy  = "lazy"
)

// ImageProps configures a responsive CDN image.
type ImageProps struct {
	Data      entity.Image
	ClassName string
	// Sizes is the HTML sizes attribute, e.g. "90vw".
	Sizes string
	// Widths lists the srcset candidate widths in pixels.
	Widths []int
	// Width is copied verbatim into the width attribute when set.
	Width   string
	Loading string
}

// Image renders an <img> whose srcset asks the CDN for each candidate width.
// The src attribute points at the original asset.
func Image(p ImageProps) g.Node {
	loading := p.Loading
	if loading == "" {
		loading = LoadingLazy
	}

	nodes := []g.Node{
		h.Src(p.Data.URL),
		h.Alt(p.Data.AltText),
	}
	if p.ClassName != "" {
		nodes = append(nodes, h.Class(p.ClassName))
	}
	if len(p.Widths) > 0 {
		nodes = append(nodes, g.Attr("srcset", SrcSet(p.Data, p.Widths)))
	}
	if p.Sizes != "" {
		nodes = append(nodes, g.Attr("sizes", p.Sizes))
	}
	if p.Width != "" {
		nodes = append(nodes, g.Attr("width", p.Width))
	}
	nodes = append(nodes, g.Attr("loading", loading), g.Attr("decoding", "async"))

	return h.Img(nodes...)
}

// SrcSet builds "url?width=800 800w, ..." for the given widths. When the
// image's intrinsic size is known the matching height is requested too, so
// the CDN keeps the aspect ratio.
func SrcSet(img entity.Image, widths []int) string {
	ratio := img.AspectRatio()

	candidates := make([]string, 0, len(widths))
	for _, w := range widths {
		height := 0
		if ratio > 0 {
			height = int(math.Round(float64(w) * ratio))
		}
		candidates = append(candidates, sizedURL(img.URL, w, height)+" "+strconv.Itoa(w)+"w")
	}
	return strings.Join(candidates, ", ")
}

func sizedURL(raw string, width, height int) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set("width", strconv.Itoa(width))
	if height > 0 {
		q.Set("height", strconv.Itoa(height))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
