// Package repository declares the read ports the use cases depend on.
// Implementations live under internal/infra.
package repository

import (
	"context"

	"journal-storefront/internal/domain/entity"
)

// ArticleRepository looks up blog articles in the content platform.
type ArticleRepository interface {
	// ArticleByHandle returns Found or NotFound for the article with
	// articleHandle in the blog blogHandle, localized for loc.
	// Only transport or API failures are returned as errors.
	ArticleByHandle(ctx context.Context, blogHandle, articleHandle string, loc entity.Locale) (entity.ArticleLookup, error)
}
