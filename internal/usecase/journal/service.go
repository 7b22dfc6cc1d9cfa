package journal

import (
	"context"
	"fmt"

	"journal-storefront/internal/domain/entity"
	"journal-storefront/internal/repository"
)

// BlogHandle is the blog every journal article is read from. Route
// parameters never override it.
const BlogHandle = "journal"

// Service provides journal article use cases.
type Service struct {
	Repo repository.ArticleRepository
}

// GetArticle fetches the journal article with the given handle.
// The handle is passed through as-is; an empty handle simply matches
// nothing. Lookup failures are wrapped with ErrFetchArticle.
func (s *Service) GetArticle(ctx context.Context, handle string, loc entity.Locale) (entity.ArticleLookup, error) {
	lookup, err := s.Repo.ArticleByHandle(ctx, BlogHandle, handle, loc)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFetchArticle, handle, err)
	}

	switch lookup.(type) {
	case entity.Found, entity.NotFound:
		return lookup, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedLookup, lookup)
	}
}
