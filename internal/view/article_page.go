package view

import (
	"journal-storefront/internal/domain/entity"
	"journal-storefront/internal/pkg/datefmt"

	g "github.com/maragudk/gomponents"
	h "github.com/maragudk/gomponents/html"
)

// articleImageWidths are the srcset candidates for journal hero images.
var articleImageWidths = []int{800, 1600, 2400}

const (
	articleImageClass = "w-full mx-auto mt-8 md:mt-16 max-w-7xl"
	articleImageSizes = "90vw"
	// articleImageWidth is emitted as-is; the theme relies on CSS for layout.
	articleImageWidth = "100"
)

// ArticlePageProps is everything the journal article page renders.
type ArticlePageProps struct {
	Shop    Shop
	Locale  entity.Locale
	Article entity.Article
}

// ArticlePage renders a journal post inside the shop layout.
func ArticlePage(p ArticlePageProps) g.Node {
	a := p.Article

	head := CustomFont(p.Shop.FontStylesheetURL)
	head = append(head, Seo(ArticleSeo(a, p.Shop.Name))...)

	return Layout(LayoutProps{Shop: p.Shop, Lang: p.Locale.Tag(), Head: head},
		PageHeader(a.Title, HeaderBlogPost,
			h.Span(g.Text(Byline(a, p.Locale))),
		),
		Section("article", PaddingX, articleBody(a)...),
	)
}

// Byline returns "<long date> · <author>" for the article, formatted for loc.
// Without an author the result is the date alone, never a dangling "date · ".
func Byline(a entity.Article, loc entity.Locale) string {
	date := datefmt.LongDate(a.PublishedAt, loc.Tag())
	if a.Author.Name == "" {
		return date
	}
	return date + " · " + a.Author.Name
}

func articleBody(a entity.Article) []g.Node {
	nodes := make([]g.Node, 0, 2)
	if a.HasImage() {
		nodes = append(nodes, Image(ImageProps{
			Data:      *a.Image,
			ClassName: articleImageClass,
			Sizes:     articleImageSizes,
			Widths:    articleImageWidths,
			Width:     articleImageWidth,
			Loading:   LoadingEager,
		}))
	}
	// ContentHTML comes pre-sanitized from the content API.
	return append(nodes, h.Div(h.Class("article"), g.Raw(a.ContentHTML.String())))
}
