package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/umputun/storefront/pkg/i18n"
)

// rssHandler serves RSS feed with the newest products.
// Supports ?limit=N (capped by config) and ?lang=en|ru for channel language.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := s.cfg.RSSLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < limit {
			limit = l
		}
	}
	lang := i18n.Normalize(r.URL.Query().Get("lang"), i18n.Normalize(visitor(r).Lang, i18n.English))

	products, err := s.store.NewestProducts(ctx, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get products for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.rss.GenerateRSS(products, lang)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
