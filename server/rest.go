package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/productfeed"
)

// productJSON is the API representation of a product
type productJSON struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description,omitempty"`
	Image              string                 `json:"image,omitempty"`
	Brand              string                 `json:"brand,omitempty"`
	Unit               string                 `json:"unit,omitempty"`
	CategoryID         string                 `json:"category_id,omitempty"`
	Price              float64                `json:"price"`
	DiscountPercentage float64                `json:"discount_percentage,omitempty"`
	Sizes              []domain.ProductSize   `json:"sizes,omitempty"`
	Options            []domain.ProductOption `json:"options,omitempty"`
}

// feedStateJSON is the API representation of a feed state
type feedStateJSON struct {
	View        string        `json:"view"`
	Sort        string        `json:"sort"`
	CategoryID  string        `json:"category_id"`
	Search      string        `json:"search,omitempty"`
	Limit       int           `json:"limit,omitempty"`
	Items       []productJSON `json:"items"`
	NextPage    int           `json:"next_page"`
	HasMore     bool          `json:"has_more"`
	Loading     bool          `json:"loading"`
	CanContinue bool          `json:"can_continue"`
	Sentinel    uint64        `json:"sentinel"`
}

type categoryJSON struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Position string         `json:"position,omitempty"`
	IconURL  string         `json:"icon_url,omitempty"`
	Children []categoryJSON `json:"children,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":       "ok",
		"version":      s.cfg.Version,
		"time":         time.Now().UTC(),
		"mounted_feed": s.feeds.Len(),
	}

	lastSync, count, err := s.store.LastSync(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to get last sync: %v", err)
	}
	if !lastSync.IsZero() {
		status["last_sync"] = lastSync
		status["synced_products"] = count
	}
	if s.syncer != nil {
		status["sync_running"] = s.syncer.Running()
	}
	if cnt, err := s.store.CountProducts(r.Context()); err != nil {
		log.Printf("[WARN] failed to count products: %v", err)
	} else {
		status["local_products"] = cnt
	}
	renderJSON(w, r, http.StatusOK, status)
}

// feedStateHandler returns the state of the visitor's feed for the view
func (s *Server) feedStateHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	view := r.PathValue("view")
	inst, ok := s.feeds.Lookup(v.ID, view)
	if !ok {
		renderError(w, r, fmt.Errorf("feed %q is not mounted", view), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, toFeedStateJSON(view, inst.Feed.State()))
}

// feedMoreHandler continues the visitor's feed for the view
func (s *Server) feedMoreHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	view := r.PathValue("view")
	inst, ok := s.feeds.Lookup(v.ID, view)
	if !ok {
		renderError(w, r, fmt.Errorf("feed %q is not mounted", view), http.StatusNotFound)
		return
	}
	if !inst.Continuable() {
		renderError(w, r, fmt.Errorf("feed %q has no continuation", view), http.StatusConflict)
		return
	}

	res, err := inst.Feed.LoadMore(r.Context())
	switch {
	case errors.Is(err, productfeed.ErrClosed):
		renderError(w, r, err, http.StatusGone)
		return
	case res.Outcome == productfeed.OutcomeStale:
		w.WriteHeader(http.StatusNoContent)
		return
	case err != nil:
		renderJSON(w, r, http.StatusBadGateway, map[string]any{
			"error": err.Error(),
			"state": toFeedStateJSON(view, res.State),
		})
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"outcome": res.Outcome.String(),
		"added":   toProductsJSON(res.Added),
		"state":   toFeedStateJSON(view, res.State),
	})
}

// categoriesHandler returns the category tree
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	tree, err := s.store.GetCategories(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toCategoriesJSON(tree))
}

// syncHandler starts catalog sync in background
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	if s.syncer == nil {
		renderError(w, r, errors.New("catalog sync is disabled"), http.StatusServiceUnavailable)
		return
	}
	if !s.syncer.Trigger() {
		renderError(w, r, errors.New("catalog sync in progress"), http.StatusConflict)
		return
	}
	renderJSON(w, r, http.StatusAccepted, map[string]string{"status": "started"})
}

func toFeedStateJSON(view string, st productfeed.State) feedStateJSON {
	return feedStateJSON{
		View:        view,
		Sort:        string(st.Query.Sort),
		CategoryID:  st.Query.CategoryID,
		Search:      st.Query.Search,
		Limit:       st.Query.Limit,
		Items:       toProductsJSON(st.Items),
		NextPage:    st.NextPage,
		HasMore:     st.HasMore,
		Loading:     st.Loading,
		CanContinue: st.CanContinue(),
		Sentinel:    st.Sentinel,
	}
}

func toProductsJSON(products []domain.Product) []productJSON {
	res := make([]productJSON, 0, len(products))
	for _, p := range products {
		res = append(res, productJSON{
			ID:                 p.ID,
			Name:               p.Name,
			Description:        p.Description,
			Image:              p.Image,
			Brand:              p.Brand,
			Unit:               p.Unit,
			CategoryID:         p.CategoryID,
			Price:              p.Price(),
			DiscountPercentage: p.DiscountPercentage,
			Sizes:              p.Sizes,
			Options:            p.Options,
		})
	}
	return res
}

func toCategoriesJSON(tree []domain.Category) []categoryJSON {
	res := make([]categoryJSON, 0, len(tree))
	for _, c := range tree {
		res = append(res, categoryJSON{
			ID:       c.ID,
			Name:     c.Name,
			Position: c.Position,
			IconURL:  c.IconURL,
			Children: toCategoriesJSON(c.Children),
		})
	}
	return res
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
