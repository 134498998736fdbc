package domain

import (
	"fmt"
	"strings"
)

// SortOption defines product ordering, values match the remote API
type SortOption string

// enum of supported sort options
const (
	SortPopular   SortOption = "popular"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
)

// SortOptions lists all sort options in display order
var SortOptions = []SortOption{SortPopular, SortPriceAsc, SortPriceDesc, SortNewest, SortOldest}

// CategoryAll is the category sentinel meaning "no category filter"
const CategoryAll = "all"

// ParseSortOption converts a string to SortOption, unknown values fall back to popular
func ParseSortOption(s string) SortOption {
	for _, opt := range SortOptions {
		if string(opt) == s {
			return opt
		}
	}
	return SortPopular
}

// FeedQuery defines what an incremental product feed lists
type FeedQuery struct {
	Sort       SortOption
	CategoryID string // CategoryAll or empty means unfiltered
	Search     string
	Limit      int // max total items, zero means unbounded
}

// Normalized returns a copy with defaults applied
func (q FeedQuery) Normalized() FeedQuery {
	q.Sort = ParseSortOption(string(q.Sort))
	q.Search = strings.TrimSpace(q.Search)
	if q.CategoryID == "" {
		q.CategoryID = CategoryAll
	}
	if q.Limit < 0 {
		q.Limit = 0
	}
	return q
}

// Key returns the composite restart key, any change of it restarts the feed
func (q FeedQuery) Key() string {
	n := q.Normalized()
	return fmt.Sprintf("%s|%s|%s|%d", n.Sort, n.CategoryID, n.Search, n.Limit)
}

// AllCategories reports whether the query is not filtered by category
func (q FeedQuery) AllCategories() bool {
	return q.CategoryID == "" || q.CategoryID == CategoryAll
}

// Bounded reports whether the query has a total limit
func (q FeedQuery) Bounded() bool {
	return q.Limit > 0
}
