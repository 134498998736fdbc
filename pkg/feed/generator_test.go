package feed

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/storefront/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://shop.example.com/", "Tea shop")
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	products := []domain.Product{
		{ID: 1, Name: "Green tea", Brand: "Leaf", Image: "https://img.example.com/1.png", DiscountPercentage: 10,
			Description: "<p>fresh</p>", CreatedAt: created,
			Sizes: []domain.ProductSize{{ID: 11, Price: 100, Size: "small"}}},
		{ID: 2, Name: "Gift card"},
	}

	rss, err := generator.GenerateRSS(products, "en")
	require.NoError(t, err)

	assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, rss, `<title>Tea shop - new products</title>`)
	assert.Contains(t, rss, `<link xmlns="http://www.w3.org/2005/Atom" href="https://shop.example.com/rss/new" rel="self" type="application/rss+xml"></link>`)
	assert.Contains(t, rss, `<language>en</language>`)

	var parsed RSS
	require.NoError(t, xml.Unmarshal([]byte(rss), &parsed))
	require.Len(t, parsed.Channel.Items, 2)

	item := parsed.Channel.Items[0]
	assert.Equal(t, "Green tea", item.Title)
	assert.Equal(t, "https://shop.example.com/products/1", item.Link)
	assert.Equal(t, "product-1", item.GUID.Value)
	assert.False(t, item.GUID.IsPermaLink)
	assert.Contains(t, item.Description, "90.00 (-10%, was 100.00)")
	assert.Contains(t, item.Description, "<p>fresh</p>")
	assert.Equal(t, created.Format(time.RFC1123Z), item.PubDate)
	assert.Equal(t, []string{"Leaf"}, item.Categories)
	require.NotNil(t, item.Enclosure)
	assert.Equal(t, "image/png", item.Enclosure.Type)

	bare := parsed.Channel.Items[1]
	assert.Empty(t, bare.PubDate)
	assert.Nil(t, bare.Enclosure)
	assert.Empty(t, bare.Description)
}

func TestGenerator_Empty(t *testing.T) {
	rss, err := NewGenerator("https://shop.example.com", "").GenerateRSS(nil, "")
	require.NoError(t, err)
	assert.Contains(t, rss, `<title>Storefront - new products</title>`)
	assert.NotContains(t, rss, "<item>")
	assert.NotContains(t, rss, "<language>")
}
