package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/umputun/storefront/pkg/domain"
)

// Generator creates RSS feeds of products
type Generator struct {
	baseURL string
	title   string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL, title string) *Generator {
	if title == "" {
		title = "Storefront"
	}
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		title:   title,
	}
}

// GenerateRSS creates an RSS 2.0 feed of new products
func (g *Generator) GenerateRSS(products []domain.Product, lang string) (string, error) {
	rssItems := make([]*RSSItem, 0, len(products))
	for _, p := range products {
		rssItems = append(rssItems, g.convertToRSSItem(p))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         g.title + " - new products",
			Link:          g.baseURL + "/catalog?sort=" + string(domain.SortNewest),
			Description:   fmt.Sprintf("%d newest products", len(products)),
			Language:      lang,
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/new", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a product to an RSS item
func (g *Generator) convertToRSSItem(p domain.Product) *RSSItem {
	desc := p.Description
	if size, ok := p.DefaultSize(); ok {
		price := fmt.Sprintf("%.2f", p.Price())
		if p.HasDiscount() {
			price = fmt.Sprintf("%.2f (-%.0f%%, was %.2f)", p.Price(), p.DiscountPercentage, size.Price)
		}
		desc = fmt.Sprintf("<p>%s, %s: %s</p>%s", p.Brand, size.Size, price, desc)
	}

	item := &RSSItem{
		Title:       p.Name,
		Link:        fmt.Sprintf("%s/products/%d", g.baseURL, p.ID),
		GUID:        RSSGUID{Value: fmt.Sprintf("product-%d", p.ID)},
		Description: desc,
	}
	if !p.CreatedAt.IsZero() {
		item.PubDate = p.CreatedAt.Format(time.RFC1123Z)
	}
	if p.Brand != "" {
		item.Categories = []string{p.Brand}
	}
	if p.Image != "" {
		mt := mime.TypeByExtension(path.Ext(p.Image))
		if mt == "" {
			mt = "image/jpeg"
		}
		item.Enclosure = &RSSEnclosure{URL: p.Image, Type: mt}
	}
	return item
}
