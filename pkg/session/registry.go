package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/storefront/pkg/productfeed"
)

// Registry keeps mounted feed instances per visitor and view
type Registry struct {
	fetcher productfeed.Fetcher
	opts    productfeed.Options
	idle    time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[entryKey]*entry
}

type entryKey struct {
	visitor string
	view    string
}

type entry struct {
	inst     *productfeed.Instance
	lastUsed time.Time
}

// NewRegistry makes a registry mounting feeds over fetcher, idle instances are unmounted by Run
func NewRegistry(fetcher productfeed.Fetcher, opts productfeed.Options, idle time.Duration) *Registry {
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	return &Registry{
		fetcher: fetcher,
		opts:    opts,
		idle:    idle,
		now:     time.Now,
		entries: map[entryKey]*entry{},
	}
}

// Mount returns the visitor's instance of the view, mounting it on first use
func (r *Registry) Mount(visitorID string, view productfeed.ViewConfig) *productfeed.Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := entryKey{visitor: visitorID, view: view.Name}
	if e, ok := r.entries[key]; ok {
		e.lastUsed = r.now()
		return e.inst
	}
	inst := productfeed.Mount(view, r.fetcher, r.opts)
	r.entries[key] = &entry{inst: inst, lastUsed: r.now()}
	return inst
}

// Lookup returns the visitor's instance of the view if mounted
func (r *Registry) Lookup(visitorID, viewName string) (*productfeed.Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[entryKey{visitor: visitorID, view: viewName}]
	if !ok {
		return nil, false
	}
	e.lastUsed = r.now()
	return e.inst, true
}

// Unmount closes and forgets the visitor's instance of the view
func (r *Registry) Unmount(visitorID, viewName string) {
	r.mu.Lock()
	key := entryKey{visitor: visitorID, view: viewName}
	e, ok := r.entries[key]
	delete(r.entries, key)
	r.mu.Unlock()
	if ok {
		e.inst.Unmount()
	}
}

// Evict unmounts instances unused for the idle timeout and returns how many were removed
func (r *Registry) Evict() int {
	r.mu.Lock()
	var stale []*productfeed.Instance
	deadline := r.now().Add(-r.idle)
	for k, e := range r.entries {
		if e.lastUsed.Before(deadline) {
			stale = append(stale, e.inst)
			delete(r.entries, k)
		}
	}
	r.mu.Unlock()

	for _, inst := range stale {
		inst.Unmount()
	}
	return len(stale)
}

// Run evicts idle instances periodically until ctx is done, then unmounts everything
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Close()
			return
		case <-ticker.C:
			if n := r.Evict(); n > 0 {
				lgr.Printf("[DEBUG] unmounted %d idle feeds, %d active", n, r.Len())
			}
		}
	}
}

// Close unmounts all instances
func (r *Registry) Close() {
	r.mu.Lock()
	entries := r.entries
	r.entries = map[entryKey]*entry{}
	r.mu.Unlock()
	for _, e := range entries {
		e.inst.Unmount()
	}
}

// Len returns number of mounted instances
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
