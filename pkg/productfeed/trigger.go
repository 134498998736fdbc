package productfeed

import (
	"context"
	"sync"
)

// Trigger continues a feed when its sentinel becomes visible. Every completed
// fetch gives the feed a new sentinel token, the trigger fires at most once per
// transition of a sentinel into the visible state.
type Trigger struct {
	feed *Feed

	mu      sync.Mutex
	visible bool
	token   uint64
}

// NewTrigger makes a trigger for the feed
func NewTrigger(feed *Feed) *Trigger {
	return &Trigger{feed: feed}
}

// Observe records the visibility of the sentinel identified by token and calls
// LoadMore when it just became visible, the token is the current one and the
// feed can continue. Returns true if LoadMore was called.
func (t *Trigger) Observe(ctx context.Context, token uint64, visible bool) (Result, bool, error) {
	t.mu.Lock()
	entered := visible && (!t.visible || token != t.token)
	t.visible, t.token = visible, token
	t.mu.Unlock()

	st := t.feed.State()
	if !entered || token != st.Sentinel || !st.CanContinue() {
		return Result{Outcome: OutcomeSkipped, State: st}, false, nil
	}

	res, err := t.feed.LoadMore(ctx)
	return res, res.Outcome != OutcomeSkipped, err
}
