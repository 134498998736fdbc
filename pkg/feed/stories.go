// Package feed reads promo stories from an RSS/Atom feed and renders new products as RSS.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/storefront/pkg/domain"
)

// StoriesParams for the story source
type StoriesParams struct {
	URL        string        // RSS/Atom feed with stories, empty for built-in stories only
	TTL        time.Duration // how long fetched stories are served without refetch
	Timeout    time.Duration
	MaxStories int
	UserAgent  string
	ButtonText string        // used when a story has no category
	RetryDelay time.Duration // no refetch for this long after a failed fetch
}

// Stories serves promo stories fetched from a feed, falling back to built-in
// stories when the feed is not set, fails or has no items
type Stories struct {
	params    StoriesParams
	client    *http.Client
	sanitizer *bluemonday.Policy
	group     singleflight.Group

	mu        sync.Mutex
	cached    []domain.Story
	fetchedAt time.Time
	failedAt  time.Time
}

// NewStories makes a story source
func NewStories(params StoriesParams) *Stories {
	if params.TTL <= 0 {
		params.TTL = 15 * time.Minute
	}
	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}
	if params.MaxStories <= 0 {
		params.MaxStories = 10
	}
	if params.UserAgent == "" {
		params.UserAgent = "storefront/1.0"
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = time.Minute
	}
	return &Stories{
		params:    params,
		client:    &http.Client{Timeout: params.Timeout},
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// List returns current stories for the language. Concurrent callers share one
// fetch, and a failed fetch is not retried before RetryDelay passes.
func (s *Stories) List(ctx context.Context, lang string) []domain.Story {
	if s.params.URL == "" {
		return DefaultStories(lang)
	}

	stories, ok := s.current()
	if !ok {
		res, _, _ := s.group.Do("stories", func() (any, error) {
			if stories, ok := s.current(); ok {
				return stories, nil
			}
			return s.refresh(context.WithoutCancel(ctx)), nil
		})
		stories = res.([]domain.Story)
	}
	if len(stories) == 0 {
		return DefaultStories(lang)
	}
	return stories
}

// current returns cached stories if they are fresh or the last fetch failed recently
func (s *Stories) current() ([]domain.Story, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.params.TTL {
		return s.cached, true
	}
	if !s.failedAt.IsZero() && time.Since(s.failedAt) < s.params.RetryDelay {
		return s.cached, true // stale or nil
	}
	return nil, false
}

// refresh fetches stories and updates the cache, keeps stale stories on failure
func (s *Stories) refresh(ctx context.Context) []domain.Story {
	stories, err := s.fetch(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch stories from %s: %v", s.params.URL, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || len(stories) == 0 {
		s.failedAt = time.Now()
		return s.cached
	}
	s.cached, s.fetchedAt, s.failedAt = stories, time.Now(), time.Time{}
	return stories
}

// fetch retrieves and parses the story feed
func (s *Stories) fetch(ctx context.Context) ([]domain.Story, error) {
	ctx, cancel := context.WithTimeout(ctx, s.params.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.params.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.params.UserAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	res := make([]domain.Story, 0, min(len(feed.Items), s.params.MaxStories))
	for _, item := range feed.Items {
		if len(res) >= s.params.MaxStories {
			break
		}
		res = append(res, s.toStory(item))
	}
	return res, nil
}

func (s *Stories) toStory(item *gofeed.Item) domain.Story {
	story := domain.Story{
		ID:          item.GUID,
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(s.sanitizer.Sanitize(item.Description)),
		ButtonText:  s.params.ButtonText,
		ButtonLink:  item.Link,
	}
	if story.ID == "" {
		story.ID = item.Link
	}
	if len(item.Categories) > 0 {
		story.Category = item.Categories[0]
	}

	switch {
	case item.Image != nil && item.Image.URL != "":
		story.Image = item.Image.URL
	default:
		for _, enc := range item.Enclosures {
			if strings.HasPrefix(enc.Type, "image/") {
				story.Image = enc.URL
				break
			}
		}
	}

	if item.PublishedParsed != nil {
		story.Published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		story.Published = *item.UpdatedParsed
	}
	return story
}

// DefaultStories returns built-in stories for the language, english unless lang is "ru"
func DefaultStories(lang string) []domain.Story {
	if lang == "ru" {
		return []domain.Story{
			{ID: "1", Title: "Новинки", Category: "new", Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
				Description: "Откройте для себя нашу новую коллекцию товаров. Свежие идеи и тренды этого сезона.",
				ButtonText:  "Смотреть новинки", ButtonLink: "/catalog?sort=newest"},
			{ID: "2", Title: "Акции", Category: "sale", Image: "https://images.unsplash.com/photo-1607522370275-f14206abe5d3",
				Description: "Успейте купить товары со скидкой до 50%. Предложение ограничено!",
				ButtonText:  "К акциям", ButtonLink: "/catalog?sort=price-asc"},
			{ID: "3", Title: "Популярное", Category: "popular", Image: "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a",
				Description: "Самые популярные товары по мнению наших покупателей",
				ButtonText:  "Смотреть популярное", ButtonLink: "/catalog?sort=popular"},
			{ID: "4", Title: "Подарки", Category: "gifts", Image: "https://images.unsplash.com/photo-1549465220-1a8b9238cd48",
				Description: "Выберите идеальный подарок для своих близких",
				ButtonText:  "Выбрать подарок", ButtonLink: "/catalog"},
		}
	}
	return []domain.Story{
		{ID: "1", Title: "New", Category: "new", Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
			Description: "Discover our new collection. Fresh ideas and trends of the season.",
			ButtonText:  "See what's new", ButtonLink: "/catalog?sort=newest"},
		{ID: "2", Title: "Deals", Category: "sale", Image: "https://images.unsplash.com/photo-1607522370275-f14206abe5d3",
			Description: "Up to 50% off while the offer lasts!",
			ButtonText:  "Go to deals", ButtonLink: "/catalog?sort=price-asc"},
		{ID: "3", Title: "Popular", Category: "popular", Image: "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a",
			Description: "Best sellers chosen by our customers",
			ButtonText:  "See popular", ButtonLink: "/catalog?sort=popular"},
		{ID: "4", Title: "Gifts", Category: "gifts", Image: "https://images.unsplash.com/photo-1549465220-1a8b9238cd48",
			Description: "Pick a perfect gift for your loved ones",
			ButtonText:  "Choose a gift", ButtonLink: "/catalog"},
	}
}
