package productfeed

import (
	"context"
	"sync"
)

// Guard issues monotonically increasing request ids. Only the holder of the
// current id may commit its result, every earlier id is stale.
// Beginning a new request cancels the context of the one it supersedes.
type Guard struct {
	mu      sync.Mutex
	current uint64
	cancel  context.CancelFunc
}

// Begin starts a new request and makes it current. The returned context is
// canceled when the request gets superseded or released.
func (g *Guard) Begin(ctx context.Context) (id uint64, reqCtx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
	}
	g.current++
	reqCtx, g.cancel = context.WithCancel(ctx)
	return g.current, reqCtx
}

// IsStale reports whether id is no longer the current request
func (g *Guard) IsStale(id uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return id != g.current
}

// Current returns the current request id, zero if nothing was started
func (g *Guard) Current() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Release frees the context of a completed request if it is still current
func (g *Guard) Release(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id == g.current && g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Invalidate makes every outstanding request stale
func (g *Guard) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.current++
}
