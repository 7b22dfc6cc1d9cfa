package view

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"journal-storefront/internal/domain/entity"

	"github.com/PuerkitoBio/goquery"
	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

// maxDescriptionRunes bounds the meta description length.
const maxDescriptionRunes = 155

// SeoProps is the metadata of one page.
type SeoProps struct {
	// Type is the Open Graph type: "website" or "article".
	Type        string
	Title       string
	Description string
	ImageURL    string
	ImageAlt    string
	SiteName    string
	Author      string
	PublishedAt time.Time
}

// ArticleSeo derives page metadata from an article. The description is a
// plain-text excerpt of the article body.
func ArticleSeo(a entity.Article, siteName string) SeoProps {
	p := SeoProps{
		Type:        "article",
		Title:       a.Title,
		Description: Excerpt(a.ContentHTML, maxDescriptionRunes),
		SiteName:    siteName,
		Author:      a.Author.Name,
		PublishedAt: a.PublishedAt,
	}
	if a.HasImage() {
		p.ImageURL = a.Image.URL
		p.ImageAlt = a.Image.AltText
	}
	return p
}

// Seo returns the <head> nodes for p: title, description, Open Graph and
// Twitter tags, plus JSON-LD for articles.
func Seo(p SeoProps) []g.Node {
	title := p.Title
	if p.SiteName != "" && title != p.SiteName {
		title = p.Title + " - " + p.SiteName
	}

	nodes := []g.Node{h.TitleEl(g.Text(title))}
	if p.Description != "" {
		nodes = append(nodes, h.Meta(h.Name("description"), h.Content(p.Description)))
	}

	nodes = append(nodes,
		property("og:type", p.Type),
		property("og:title", p.Title),
		h.Meta(h.Name("twitter:title"), h.Content(p.Title)),
	)
	if p.SiteName != "" {
		nodes = append(nodes, property("og:site_name", p.SiteName))
	}
	if p.Description != "" {
		nodes = append(nodes,
			property("og:description", p.Description),
			h.Meta(h.Name("twitter:description"), h.Content(p.Description)),
		)
	}

	card := "summary"
	if p.ImageURL != "" {
		card = "summary_large_image"
		nodes = append(nodes,
			property("og:image", p.ImageURL),
			property("og:image:secure_url", p.ImageURL),
		)
		if p.ImageAlt != "" {
			nodes = append(nodes, property("og:image:alt", p.ImageAlt))
		}
	}
	nodes = append(nodes, h.Meta(h.Name("twitter:card"), h.Content(card)))

	if p.Type == "article" {
		if !p.PublishedAt.IsZero() {
			nodes = append(nodes, property("article:published_time", p.PublishedAt.UTC().Format(time.RFC3339)))
		}
		if ld, err := blogPostingJSONLD(p); err == nil {
			nodes = append(nodes, h.Script(h.Type("application/ld+json"), g.Raw(ld)))
		}
	}
	return nodes
}

func property(name, content string) g.Node {
	return h.Meta(g.Attr("property", name), h.Content(content))
}

type jsonLDPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type blogPosting struct {
	Context       string        `json:"@context"`
	Type          string        `json:"@type"`
	Headline      string        `json:"headline"`
	Description   string        `json:"description,omitempty"`
	Image         string        `json:"image,omitempty"`
	DatePublished string        `json:"datePublished,omitempty"`
	Author        *jsonLDPerson `json:"author,omitempty"`
}

// blogPostingJSONLD encodes the schema.org BlogPosting. encoding/json
// escapes <, > and &, so the output is safe inside a script element.
func blogPostingJSONLD(p SeoProps) (string, error) {
	doc := blogPosting{
		Context:     "https://schema.org",
		Type:        "BlogPosting",
		Headline:    p.Title,
		Description: p.Description,
		Image:       p.ImageURL,
	}
	if !p.PublishedAt.IsZero() {
		doc.DatePublished = p.PublishedAt.UTC().Format(time.RFC3339)
	}
	if p.Author != "" {
		doc.Author = &jsonLDPerson{Type: "Person", Name: p.Author}
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Excerpt returns the visible text of fragment with whitespace collapsed,
// cut to at most maxRunes runes on a word boundary and suffixed with "…"
// when shortened.
func Excerpt(fragment entity.TrustedHTML, maxRunes int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment.String()))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript, template").Remove()

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:maxRunes])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
