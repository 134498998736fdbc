// Package scheduler mirrors the remote catalog into the local store.
// It periodically pulls the category tree and product pages of every category,
// using a bounded pool of workers and retrying failed page pulls with backoff.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/storefront/pkg/domain"
)

//go:generate moq -out mocks/catalog_source.go -pkg mocks -skip-ensure -fmt goimports . CatalogSource
//go:generate moq -out mocks/product_store.go -pkg mocks -skip-ensure -fmt goimports . ProductStore
//go:generate moq -out mocks/category_store.go -pkg mocks -skip-ensure -fmt goimports . CategoryStore
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore

// ErrSyncInProgress returned by SyncNow when another sync is running
var ErrSyncInProgress = errors.New("catalog sync in progress")

// CatalogSource is the remote catalog
type CatalogSource interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	FetchPage(ctx context.Context, page, pageSize int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error)
}

// ProductStore keeps mirrored products
type ProductStore interface {
	UpsertProducts(ctx context.Context, products []domain.Product) error
}

// CategoryStore keeps the mirrored category tree
type CategoryStore interface {
	ReplaceCategories(ctx context.Context, tree []domain.Category) error
}

// SettingStore records sync results
type SettingStore interface {
	SetLastSync(ctx context.Context, t time.Time, count int) error
}

// Scheduler runs catalog sync periodically and on demand
type Scheduler struct {
	source     CatalogSource
	products   ProductStore
	categories CategoryStore
	settings   SettingStore

	updateInterval time.Duration
	maxWorkers     int
	pageSize       int
	maxPages       int
	retryFunc      func(ctx context.Context, operation func() error) error

	running atomic.Bool
	wg      sync.WaitGroup

	mu      sync.Mutex
	ctx     context.Context // set by Start, triggered syncs run with it
	cancel  context.CancelFunc
	stopped bool
}

// Params for the scheduler
type Params struct {
	Source     CatalogSource
	Products   ProductStore
	Categories CategoryStore
	Settings   SettingStore

	UpdateInterval time.Duration
	MaxWorkers     int
	PageSize       int
	MaxPages       int // per category, zero means no limit

	RetryAttempts     int
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
}

// NewScheduler creates a new scheduler instance. Zero durations and sizes are set to defaults.
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval <= 0 {
		params.UpdateInterval = time.Hour
	}
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = 4
	}
	if params.PageSize <= 0 {
		params.PageSize = 50
	}
	if params.RetryAttempts <= 0 {
		params.RetryAttempts = 3
	}
	if params.RetryInitialDelay <= 0 {
		params.RetryInitialDelay = 100 * time.Millisecond
	}
	if params.RetryMaxDelay <= 0 {
		params.RetryMaxDelay = 5 * time.Second
	}

	attempts, initial, maxDelay := params.RetryAttempts, params.RetryInitialDelay, params.RetryMaxDelay
	return &Scheduler{
		source:         params.Source,
		products:       params.Products,
		categories:     params.Categories,
		settings:       params.Settings,
		updateInterval: params.UpdateInterval,
		maxWorkers:     params.MaxWorkers,
		pageSize:       params.PageSize,
		maxPages:       params.MaxPages,
		retryFunc: func(ctx context.Context, operation func() error) error {
			return repeater.NewBackoff(attempts, initial, repeater.WithMaxDelay(maxDelay)).Do(ctx, operation)
		},
	}
}

// Start begins periodic sync, the first one runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.ctx = ctx
	s.mu.Unlock()

	s.wg.Add(1)
	go s.syncWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v, max workers %d", s.updateInterval, s.maxWorkers)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	s.mu.Lock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// SyncNow runs a sync immediately and returns the number of mirrored products
func (s *Scheduler) SyncNow(ctx context.Context) (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		return 0, ErrSyncInProgress
	}
	defer s.running.Store(false)
	return s.syncCatalog(ctx)
}

// Trigger starts a sync in background unless one is running or the scheduler is
// not started. The sync is cancelled and awaited by Stop.
func (s *Scheduler) Trigger() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil || s.stopped {
		return false
	}
	if !s.running.CompareAndSwap(false, true) {
		return false
	}

	s.wg.Add(1)
	go func(ctx context.Context) {
		defer s.wg.Done()
		defer s.running.Store(false)
		count, err := s.syncCatalog(ctx)
		if err != nil {
			lgr.Printf("[WARN] triggered catalog sync failed: %v", err)
			return
		}
		lgr.Printf("[INFO] triggered catalog sync completed, %d products", count)
	}(s.ctx)
	return true
}

// Running reports whether a sync is in progress
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) syncWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	run := func() {
		if _, err := s.SyncNow(ctx); err != nil && !errors.Is(err, context.Canceled) {
			lgr.Printf("[WARN] catalog sync failed: %v", err)
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}

// syncCatalog mirrors categories and then products of every category
func (s *Scheduler) syncCatalog(ctx context.Context) (int, error) {
	start := time.Now()

	var tree []domain.Category
	err := s.retryFunc(ctx, func() error {
		var err error
		tree, err = s.source.Categories(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("get categories: %w", err)
	}
	if err := s.categories.ReplaceCategories(ctx, tree); err != nil {
		return 0, fmt.Errorf("store categories: %w", err)
	}

	ids := []string{domain.CategoryAll}
	if len(tree) > 0 {
		ids = ids[:0]
		for _, root := range tree {
			for _, c := range root.Flatten() {
				ids = append(ids, c.ID)
			}
		}
	}

	var total atomic.Int64
	var failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for _, id := range ids {
		g.Go(func() error {
			n, err := s.syncCategory(gctx, id)
			total.Add(int64(n))
			if err != nil {
				failed.Add(1)
				lgr.Printf("[WARN] failed to sync category %s: %v", id, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return int(total.Load()), err
	}

	count := int(total.Load())
	if err := s.settings.SetLastSync(ctx, time.Now(), count); err != nil {
		lgr.Printf("[WARN] failed to record sync time: %v", err)
	}
	lgr.Printf("[INFO] catalog sync completed: %d categories, %d products, %d failed categories in %v",
		len(ids), count, failed.Load(), time.Since(start).Round(time.Millisecond))
	if int(failed.Load()) == len(ids) {
		return count, fmt.Errorf("all %d categories failed", len(ids))
	}
	return count, nil
}

// syncCategory pulls product pages of one category until a short page or the page limit
func (s *Scheduler) syncCategory(ctx context.Context, categoryID string) (int, error) {
	total := 0
	for page := 1; s.maxPages == 0 || page <= s.maxPages; page++ {
		var products []domain.Product
		err := s.retryFunc(ctx, func() error {
			var err error
			products, err = s.source.FetchPage(ctx, page, s.pageSize, domain.SortPopular, categoryID, "")
			return err
		})
		if err != nil {
			return total, fmt.Errorf("fetch page %d: %w", page, err)
		}
		if len(products) == 0 {
			break
		}
		if err := s.products.UpsertProducts(ctx, products); err != nil {
			return total, fmt.Errorf("store page %d: %w", page, err)
		}
		total += len(products)
		lgr.Printf("[DEBUG] category %s page %d: %d products", categoryID, page, len(products))
		if len(products) < s.pageSize {
			break
		}
	}
	return total, nil
}
