package productfeed

import "github.com/umputun/storefront/pkg/domain"

// ViewConfig defines a feed shown by one view
type ViewConfig struct {
	Name         string
	Query        domain.FeedQuery // base query, views with user filters override it per request
	ShowLoadMore bool             // install sentinel trigger and load more control, otherwise no continuation
}

// views known to the storefront
const (
	ViewCatalog = "catalog"
	ViewPopular = "popular"
)

// CatalogView is the full catalog listing with automatic continuation
func CatalogView() ViewConfig {
	return ViewConfig{
		Name:         ViewCatalog,
		Query:        domain.FeedQuery{Sort: domain.SortPopular, CategoryID: domain.CategoryAll},
		ShowLoadMore: true,
	}
}

// PopularView is the bounded preview of popular products, it never continues
func PopularView(limit int) ViewConfig {
	return ViewConfig{
		Name:  ViewPopular,
		Query: domain.FeedQuery{Sort: domain.SortPopular, CategoryID: domain.CategoryAll, Limit: limit},
	}
}

// Instance is a mounted view: its feed and, for continuable views, the trigger
type Instance struct {
	View    ViewConfig
	Feed    *Feed
	Trigger *Trigger // nil when the view has no continuation
}

// Mount creates a feed instance for the view
func Mount(view ViewConfig, fetcher Fetcher, opts Options) *Instance {
	inst := &Instance{View: view, Feed: New(fetcher, opts)}
	if view.ShowLoadMore {
		inst.Trigger = NewTrigger(inst.Feed)
	}
	return inst
}

// Continuable reports whether the view allows loading more items
func (i *Instance) Continuable() bool {
	return i.View.ShowLoadMore
}

// Unmount closes the feed
func (i *Instance) Unmount() {
	i.Feed.Close()
}
