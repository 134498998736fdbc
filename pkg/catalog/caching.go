package catalog

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/storefront/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . ProductStore

// Fetcher retrieves a page of products
type Fetcher interface {
	FetchPage(ctx context.Context, page, pageSize int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error)
}

// ProductStore keeps fetched products locally
type ProductStore interface {
	UpsertProducts(ctx context.Context, products []domain.Product) error
}

// CachingFetcher passes requests to the wrapped fetcher and stores every
// fetched page. Storing is best effort, its failures don't fail the fetch.
type CachingFetcher struct {
	next  Fetcher
	store ProductStore
}

// NewCachingFetcher wraps fetcher with the store
func NewCachingFetcher(fetcher Fetcher, store ProductStore) *CachingFetcher {
	return &CachingFetcher{next: fetcher, store: store}
}

// FetchPage retrieves the page and saves its products
func (c *CachingFetcher) FetchPage(ctx context.Context, page, pageSize int, sort domain.SortOption,
	categoryID, search string) ([]domain.Product, error) {
	res, err := c.next.FetchPage(ctx, page, pageSize, sort, categoryID, search)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return res, nil
	}
	if err := c.store.UpsertProducts(context.WithoutCancel(ctx), res); err != nil {
		lgr.Printf("[WARN] failed to cache %d products from page %d: %v", len(res), page, err)
	}
	return res, nil
}
