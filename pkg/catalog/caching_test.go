package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/storefront/pkg/catalog/mocks"
	"github.com/umputun/storefront/pkg/domain"
)

func TestCachingFetcher(t *testing.T) {
	page := []domain.Product{{ID: 1}, {ID: 2}}
	fetcher := &mocks.FetcherMock{
		FetchPageFunc: func(ctx context.Context, p, size int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error) {
			switch search {
			case "fail":
				return nil, errors.New("remote down")
			case "empty":
				return nil, nil
			}
			return page, nil
		},
	}

	t.Run("stores fetched page", func(t *testing.T) {
		store := &mocks.ProductStoreMock{UpsertProductsFunc: func(ctx context.Context, products []domain.Product) error { return nil }}
		res, err := NewCachingFetcher(fetcher, store).FetchPage(context.Background(), 1, 20, domain.SortPopular, "all", "")
		require.NoError(t, err)
		assert.Equal(t, page, res)
		require.Len(t, store.UpsertProductsCalls(), 1)
		assert.Equal(t, page, store.UpsertProductsCalls()[0].Products)
	})

	t.Run("store failure ignored", func(t *testing.T) {
		store := &mocks.ProductStoreMock{UpsertProductsFunc: func(ctx context.Context, products []domain.Product) error {
			return errors.New("locked")
		}}
		res, err := NewCachingFetcher(fetcher, store).FetchPage(context.Background(), 1, 20, domain.SortPopular, "all", "")
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("fetch failure not stored", func(t *testing.T) {
		store := &mocks.ProductStoreMock{}
		_, err := NewCachingFetcher(fetcher, store).FetchPage(context.Background(), 1, 20, domain.SortPopular, "all", "fail")
		require.Error(t, err)
		assert.Empty(t, store.UpsertProductsCalls())
	})

	t.Run("empty page not stored", func(t *testing.T) {
		store := &mocks.ProductStoreMock{}
		res, err := NewCachingFetcher(fetcher, store).FetchPage(context.Background(), 1, 20, domain.SortPopular, "all", "empty")
		require.NoError(t, err)
		assert.Empty(t, res)
		assert.Empty(t, store.UpsertProductsCalls())
	})
}
