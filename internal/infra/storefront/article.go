package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"journal-storefront/internal/domain/entity"
)

type articleDetailsData struct {
	Blog *struct {
		ArticleByHandle *articlePayload `json:"articleByHandle"`
	} `json:"blog"`
}

type articlePayload struct {
	Title       string    `json:"title"`
	ContentHTML string    `json:"contentHtml"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      *struct {
		Name string `json:"name"`
	} `json:"author"`
	Image *imagePayload `json:"image"`
}

type imagePayload struct {
	ID      string  `json:"id"`
	AltText *string `json:"altText"`
	URL     string  `json:"url"`
	Width   *int    `json:"width"`
	Height  *int    `json:"height"`
}

// ArticleByHandle runs ArticleDetails for one article of blogHandle.
// Null or absent data, blog or article yields entity.NotFound, not an error.
// GraphQL errors are reported by Execute before decoding.
func (c *Client) ArticleByHandle(ctx context.Context, blogHandle, articleHandle string, loc entity.Locale) (entity.ArticleLookup, error) {
	variables := map[string]interface{}{
		"blogHandle":    blogHandle,
		"articleHandle": articleHandle,
	}
	if lang := loc.LanguageCode(); lang != "" {
		variables["language"] = lang
	}

	resp, err := c.Execute(ctx, OperationArticleDetails, ArticleDetailsQuery, variables)
	if err != nil {
		return nil, fmt.Errorf("query article %q: %w", articleHandle, err)
	}

	return decodeArticleLookup(resp, articleHandle)
}

func decodeArticleLookup(resp *GraphQLResponse, articleHandle string) (entity.ArticleLookup, error) {
	if resp == nil || len(resp.Data) == 0 || string(resp.Data) == "null" {
		return entity.NotFound{Handle: articleHandle}, nil
	}

	var data articleDetailsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse article data: %w", err)
	}

	if data.Blog == nil || data.Blog.ArticleByHandle == nil {
		return entity.NotFound{Handle: articleHandle}, nil
	}
	return entity.Found{Article: data.Blog.ArticleByHandle.toEntity()}, nil
}

func (p *articlePayload) toEntity() entity.Article {
	article := entity.Article{
		Title:       p.Title,
		ContentHTML: entity.TrustedHTML(p.ContentHTML),
		PublishedAt: p.PublishedAt,
	}
	if p.Author != nil {
		article.Author = entity.Author{Name: p.Author.Name}
	}
	if p.Image != nil {
		img := &entity.Image{ID: p.Image.ID, URL: p.Image.URL}
		if p.Image.AltText != nil {
			img.AltText = *p.Image.AltText
		}
		if p.Image.Width != nil {
			img.Width = *p.Image.Width
		}
		if p.Image.Height != nil {
			img.Height = *p.Image.Height
		}
		article.Image = img
	}
	return article
}
