package scheduler

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/scheduler/mocks"
)

type testDeps struct {
	source     *mocks.CatalogSourceMock
	products   *mocks.ProductStoreMock
	categories *mocks.CategoryStoreMock
	settings   *mocks.SettingStoreMock
}

func newTestDeps(tree []domain.Category, pages map[string]int, pageSize int) *testDeps {
	return &testDeps{
		source: &mocks.CatalogSourceMock{
			CategoriesFunc: func(ctx context.Context) ([]domain.Category, error) { return tree, nil },
			FetchPageFunc: func(ctx context.Context, page, size int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error) {
				n := pages[categoryID] // number of full pages, the next one is short
				switch {
				case page <= n:
					return makeProducts(categoryID, page, size), nil
				case page == n+1:
					return makeProducts(categoryID, page, size/2), nil
				}
				return nil, nil
			},
		},
		products:   &mocks.ProductStoreMock{UpsertProductsFunc: func(ctx context.Context, products []domain.Product) error { return nil }},
		categories: &mocks.CategoryStoreMock{ReplaceCategoriesFunc: func(ctx context.Context, tree []domain.Category) error { return nil }},
		settings:   &mocks.SettingStoreMock{SetLastSyncFunc: func(ctx context.Context, t time.Time, count int) error { return nil }},
	}
}

func (d *testDeps) params() Params {
	return Params{
		Source: d.source, Products: d.products, Categories: d.categories, Settings: d.settings,
		PageSize: 4, MaxWorkers: 2, RetryAttempts: 2, RetryInitialDelay: time.Millisecond, RetryMaxDelay: time.Millisecond,
	}
}

func makeProducts(categoryID string, page, n int) []domain.Product {
	res := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, domain.Product{ID: int64(page*100 + i), CategoryID: categoryID})
	}
	return res
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Params{})
	assert.Equal(t, time.Hour, s.updateInterval)
	assert.Equal(t, 4, s.maxWorkers)
	assert.Equal(t, 50, s.pageSize)
	assert.Zero(t, s.maxPages)
	assert.NotNil(t, s.retryFunc)
}

func TestScheduler_SyncNow(t *testing.T) {
	tree := []domain.Category{
		{ID: "1", Name: "Drinks", Children: []domain.Category{{ID: "11", Name: "Tea"}}},
		{ID: "2", Name: "Food"},
	}
	deps := newTestDeps(tree, map[string]int{"1": 0, "11": 2, "2": 1}, 4)
	s := NewScheduler(deps.params())

	count, err := s.SyncNow(context.Background())
	require.NoError(t, err)
	// "1": short page of 2; "11": 2 full pages of 4 + 2; "2": 4 + 2
	assert.Equal(t, 2+10+6, count)

	require.Len(t, deps.categories.ReplaceCategoriesCalls(), 1)
	assert.Equal(t, tree, deps.categories.ReplaceCategoriesCalls()[0].Tree)

	var cats []string
	seen := map[string]bool{}
	for _, c := range deps.source.FetchPageCalls() {
		assert.Equal(t, 4, c.PageSize)
		assert.Equal(t, domain.SortPopular, c.Sort)
		assert.Empty(t, c.Search)
		if !seen[c.CategoryID] {
			seen[c.CategoryID] = true
			cats = append(cats, c.CategoryID)
		}
	}
	sort.Strings(cats)
	assert.Equal(t, []string{"1", "11", "2"}, cats)
	assert.Len(t, deps.source.FetchPageCalls(), 1+3+2, "stops on short page")
	assert.Len(t, deps.products.UpsertProductsCalls(), 6)

	require.Len(t, deps.settings.SetLastSyncCalls(), 1)
	assert.Equal(t, 18, deps.settings.SetLastSyncCalls()[0].Count)
	assert.False(t, s.Running())
}

func TestScheduler_SyncNoCategories(t *testing.T) {
	deps := newTestDeps(nil, map[string]int{domain.CategoryAll: 1}, 4)
	s := NewScheduler(deps.params())

	count, err := s.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	for _, c := range deps.source.FetchPageCalls() {
		assert.Equal(t, domain.CategoryAll, c.CategoryID)
	}
}

func TestScheduler_MaxPages(t *testing.T) {
	deps := newTestDeps(nil, map[string]int{domain.CategoryAll: 10}, 4)
	params := deps.params()
	params.MaxPages = 3
	s := NewScheduler(params)

	count, err := s.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.Len(t, deps.source.FetchPageCalls(), 3)
}

func TestScheduler_RetriesPageFetch(t *testing.T) {
	deps := newTestDeps(nil, nil, 4)
	var mu sync.Mutex
	attempts := 0
	deps.source.FetchPageFunc = func(ctx context.Context, page, size int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error) {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts == 1 {
			return nil, errors.New("temporary failure")
		}
		return makeProducts(categoryID, page, 1), nil
	}
	s := NewScheduler(deps.params())

	count, err := s.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, attempts)
}

func TestScheduler_SyncErrors(t *testing.T) {
	t.Run("categories failure", func(t *testing.T) {
		deps := newTestDeps(nil, nil, 4)
		deps.source.CategoriesFunc = func(ctx context.Context) ([]domain.Category, error) {
			return nil, errors.New("api down")
		}
		_, err := NewScheduler(deps.params()).SyncNow(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api down")
		assert.GreaterOrEqual(t, len(deps.source.CategoriesCalls()), 2, "retried")
		assert.Empty(t, deps.settings.SetLastSyncCalls())
	})

	t.Run("one category fails", func(t *testing.T) {
		tree := []domain.Category{{ID: "1"}, {ID: "2"}}
		deps := newTestDeps(tree, map[string]int{"1": 0, "2": 0}, 4)
		deps.products.UpsertProductsFunc = func(ctx context.Context, products []domain.Product) error {
			if products[0].CategoryID == "2" {
				return errors.New("disk full")
			}
			return nil
		}
		count, err := NewScheduler(deps.params()).SyncNow(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("all categories fail", func(t *testing.T) {
		deps := newTestDeps(nil, nil, 4)
		deps.source.FetchPageFunc = func(ctx context.Context, page, size int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error) {
			return nil, errors.New("bad gateway")
		}
		_, err := NewScheduler(deps.params()).SyncNow(context.Background())
		require.Error(t, err)
	})
}

func TestScheduler_SyncInProgress(t *testing.T) {
	deps := newTestDeps(nil, nil, 4)
	started, release := make(chan struct{}), make(chan struct{})
	deps.source.CategoriesFunc = func(ctx context.Context) ([]domain.Category, error) {
		close(started)
		<-release
		return nil, nil
	}
	s := NewScheduler(deps.params())

	done := make(chan error)
	go func() {
		_, err := s.SyncNow(context.Background())
		done <- err
	}()
	<-started
	assert.True(t, s.Running())
	_, err := s.SyncNow(context.Background())
	require.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestScheduler_StartStop(t *testing.T) {
	deps := newTestDeps(nil, nil, 4)
	params := deps.params()
	params.UpdateInterval = 20 * time.Millisecond
	s := NewScheduler(params)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return len(deps.settings.SetLastSyncCalls()) >= 2 },
		time.Second, 5*time.Millisecond, "periodic sync runs")
	s.Stop()

	n := len(deps.settings.SetLastSyncCalls())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, len(deps.settings.SetLastSyncCalls()), "no sync after stop")
}

func TestScheduler_Trigger(t *testing.T) {
	deps := newTestDeps(nil, nil, 4)
	s := NewScheduler(deps.params())
	assert.False(t, s.Trigger(), "scheduler not started")

	s.Start(context.Background())
	require.Eventually(t, func() bool { return len(deps.settings.SetLastSyncCalls()) == 1 && !s.Running() },
		time.Second, 5*time.Millisecond, "initial sync done")

	started := make(chan struct{})
	deps.source.CategoriesFunc = func(ctx context.Context) ([]domain.Category, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	require.True(t, s.Trigger())
	<-started
	assert.True(t, s.Running())
	assert.False(t, s.Trigger(), "sync in progress")

	s.Stop()
	assert.False(t, s.Running(), "stop waits for the triggered sync")
	assert.False(t, s.Trigger(), "scheduler stopped")
	assert.Len(t, deps.settings.SetLastSyncCalls(), 1)
}
