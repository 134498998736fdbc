package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/i18n"
	"github.com/umputun/storefront/pkg/productfeed"
	"github.com/umputun/storefront/pkg/repository"
	"github.com/umputun/storefront/pkg/session"
)

// page names
const (
	pageHome     = "home"
	pageCatalog  = "catalog"
	pageCheckout = "checkout"
	pageProfile  = "profile"
)

// viewData is passed to full pages
type viewData struct {
	Lang       string
	Title      string
	ActivePage string
	CartCount  int
	CartQty    map[string]int
	Address    *domain.Address

	Stories []domain.Story
	Popular feedView

	Feed       feedView
	Query      domain.FeedQuery
	Categories []domain.Category

	Checkout  checkoutData
	Profile   profileData
	Companies companiesData
}

// feedView renders a feed listing, the product grid and its continuation control
type feedView struct {
	Lang    string
	Items   []domain.Product
	Added   []domain.Product // appended by the last continuation
	CartQty map[string]int
	Failed  bool // first page failed, nothing to show
	Control controlView
}

// controlView renders the continuation control: sentinel and load more button
type controlView struct {
	Lang      string
	Show      bool
	HasMore   bool
	Failed    bool
	Sentinel  uint64
	Threshold float64
	Margin    int
	Count     int
}

type cardData struct {
	Lang    string
	Product domain.Product
	HasSize bool
	Button  cartButton
}

type cartButton struct {
	Lang      string
	ProductID int64
	SizeID    int64
	Qty       int
}

type sizeView struct {
	Size   domain.ProductSize
	Price  float64
	Button cartButton
}

type drawerData struct {
	Lang    string
	Product domain.Product
	Sizes   []sizeView
}

type cartData struct {
	Lang  string
	Cart  domain.Cart
	Count countData
}

type countData struct {
	Count int
	OOB   bool
}

type addressData struct {
	Lang    string
	Address *domain.Address
}

type categoryOption struct {
	ID    string
	Name  string
	Depth int
}

var descriptionPolicy = bluemonday.UGCPolicy()

// homeHandler displays stories and the popular products preview
func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)

	view := productfeed.PopularView(s.cfg.PopularLimit)
	inst := s.feeds.Mount(v.ID, view)
	res, err := inst.Feed.Restart(ctx, view.Query)
	if err != nil {
		log.Printf("[WARN] failed to load popular products for %s: %v", v.ID, err)
	}

	data := s.baseData(ctx, v, pageHome)
	data.Stories = s.stories.List(ctx, v.Lang)
	data.Popular = s.feedView(v.Lang, inst, res.State, data.CartQty, err != nil)

	if err := s.renderPage(w, "home.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// catalogHandler displays the catalog page, every visit restarts the visitor's catalog feed
func (s *Server) catalogHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)

	q := queryFromRequest(r)
	inst := s.feeds.Mount(v.ID, productfeed.CatalogView())
	res, err := inst.Feed.Restart(ctx, q)
	if err != nil {
		log.Printf("[WARN] failed to load catalog for %s: %v", v.ID, err)
	}

	data := s.baseData(ctx, v, pageCatalog)
	data.Query = q
	data.Categories = s.categories(ctx)
	data.Feed = s.feedView(v.Lang, inst, res.State, data.CartQty, err != nil)

	if err := s.renderPage(w, "catalog.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// catalogItemsHandler restarts the catalog feed on filter change and renders the listing
func (s *Server) catalogItemsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)

	q := queryFromRequest(r)
	inst := s.feeds.Mount(v.ID, productfeed.CatalogView())
	res, err := inst.Feed.Restart(ctx, q)
	switch {
	case errors.Is(err, productfeed.ErrClosed):
		refresh(w) // evicted right after mount
		return
	case res.Outcome == productfeed.OutcomeStale:
		w.WriteHeader(http.StatusNoContent) // a newer filter change renders the listing
		return
	case err != nil:
		log.Printf("[WARN] failed to restart catalog for %s: %v", v.ID, err)
	}

	w.Header().Set("HX-Push-Url", catalogURL(q))
	fv := s.feedView(v.Lang, inst, res.State, s.cartQty(ctx, v.ID), err != nil)
	s.renderPartial(w, "catalog-feed", fv)
}

// catalogMoreHandler continues the catalog feed on explicit request
func (s *Server) catalogMoreHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	inst, ok := s.feeds.Lookup(v.ID, productfeed.ViewCatalog)
	if !ok {
		refresh(w)
		return
	}
	res, err := inst.Feed.LoadMore(r.Context())
	s.writeContinuation(w, r, v, inst, res, err)
}

// catalogSentinelHandler is called when the sentinel enters the viewport, the feed
// continues if the token is the current one
func (s *Server) catalogSentinelHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	token, err := strconv.ParseUint(r.PathValue("token"), 10, 64)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid sentinel", err)
		return
	}
	inst, ok := s.feeds.Lookup(v.ID, productfeed.ViewCatalog)
	if !ok {
		refresh(w)
		return
	}
	if inst.Trigger == nil {
		s.respondWithError(w, http.StatusNotFound, "Feed has no continuation", nil)
		return
	}

	res, fired, err := inst.Trigger.Observe(r.Context(), token, true)
	if !fired && err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeContinuation(w, r, v, inst, res, err)
}

// writeContinuation renders records added by LoadMore and the new continuation control
func (s *Server) writeContinuation(w http.ResponseWriter, r *http.Request, v session.Visitor, inst *productfeed.Instance,
	res productfeed.Result, err error) {
	switch {
	case errors.Is(err, productfeed.ErrClosed):
		refresh(w)
		return
	case res.Outcome == productfeed.OutcomeStale:
		w.WriteHeader(http.StatusNoContent)
		return
	case res.Outcome == productfeed.OutcomeSkipped && res.State.HasMore:
		// fetch in flight, its response renders the control
		w.WriteHeader(http.StatusNoContent)
		return
	}

	failed := res.Outcome == productfeed.OutcomeFailed
	if failed {
		log.Printf("[WARN] failed to continue catalog for %s: %v", v.ID, err)
	}
	fv := s.feedView(v.Lang, inst, res.State, s.cartQty(r.Context(), v.ID), false)
	fv.Added = res.Added
	fv.Control.Failed = failed
	s.renderPartial(w, "feed-append", fv)
}

// productHandler renders the product drawer
func (s *Server) productHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid product ID", err)
		return
	}
	p, err := s.findProduct(ctx, v.ID, id)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load product", err)
		return
	}
	if p == nil {
		s.respondWithError(w, http.StatusNotFound, "Product not found", nil)
		return
	}

	qty := s.cartQty(ctx, v.ID)
	data := drawerData{Lang: v.Lang, Product: *p}
	for _, sz := range p.Sizes {
		data.Sizes = append(data.Sizes, sizeView{
			Size:   sz,
			Price:  domain.DiscountedPrice(sz.Price, p.DiscountPercentage),
			Button: cartButton{Lang: v.Lang, ProductID: p.ID, SizeID: sz.ID, Qty: qty[domain.CartKey(p.ID, sz.ID)]},
		})
	}
	s.renderPartial(w, "product-drawer", data)
}

// cartHandler renders the cart drawer
func (s *Server) cartHandler(w http.ResponseWriter, r *http.Request) {
	s.writeCart(w, r)
}

// addToCartHandler adds one unit of the product size and renders the updated cart button
func (s *Server) addToCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)

	productID, err1 := strconv.ParseInt(r.PathValue("id"), 10, 64)
	sizeID, err2 := strconv.ParseInt(r.PathValue("size"), 10, 64)
	if err := errors.Join(err1, err2); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid product or size", err)
		return
	}

	p, err := s.findProduct(ctx, v.ID, productID)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load product", err)
		return
	}
	if p == nil {
		s.respondWithError(w, http.StatusNotFound, "Product not found", nil)
		return
	}

	qty, err := s.store.AddToCart(ctx, v.ID, *p, sizeID)
	if errors.Is(err, repository.ErrUnknownSize) {
		s.respondWithError(w, http.StatusBadRequest, "Unknown product size", err)
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to add to cart", err)
		return
	}
	if err := s.store.BumpPopularity(ctx, productID, 1); err != nil {
		log.Printf("[WARN] failed to bump popularity of %d: %v", productID, err)
	}

	s.renderPartial(w, "cart-button", cartButton{Lang: v.Lang, ProductID: productID, SizeID: sizeID, Qty: qty})
	s.writeCartCount(w, r, v.ID)
}

// removeFromCartHandler drops the cart line and renders the cart
func (s *Server) removeFromCartHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	productID, err1 := strconv.ParseInt(r.PathValue("id"), 10, 64)
	sizeID, err2 := strconv.ParseInt(r.PathValue("size"), 10, 64)
	if err := errors.Join(err1, err2); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid product or size", err)
		return
	}
	if err := s.store.RemoveFromCart(r.Context(), v.ID, productID, sizeID); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to remove from cart", err)
		return
	}
	s.writeCart(w, r)
}

// clearCartHandler empties the cart and renders it
func (s *Server) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	if err := s.store.ClearCart(r.Context(), v.ID); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to clear cart", err)
		return
	}
	s.writeCart(w, r)
}

// setAddressHandler stores the delivery address and renders the header address block
func (s *Server) setAddressHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form", err)
		return
	}

	addr := domain.Address{
		FullAddress: strings.TrimSpace(r.FormValue("full_address")),
		Details:     strings.TrimSpace(r.FormValue("details")),
	}
	if addr.FullAddress == "" {
		s.respondWithError(w, http.StatusBadRequest, "Address is required", nil)
		return
	}
	var err error
	if addr.Lat, err = parseCoord(r.FormValue("lat"), 90); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid latitude", err)
		return
	}
	if addr.Lng, err = parseCoord(r.FormValue("lng"), 180); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid longitude", err)
		return
	}

	if err := s.store.SetAddress(r.Context(), v.ID, addr); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save address", err)
		return
	}
	s.renderPartial(w, "address", addressData{Lang: v.Lang, Address: &addr})
}

// clearAddressHandler removes the delivery address
func (s *Server) clearAddressHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	if err := s.store.ClearAddress(r.Context(), v.ID); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to clear address", err)
		return
	}
	s.renderPartial(w, "address", addressData{Lang: v.Lang})
}

// langHandler switches the visitor language
func (s *Server) langHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.SetLang(w, r, r.PathValue("lang")); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Unsupported language", err)
		return
	}
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	back := "/"
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" {
		back = ref.RequestURI()
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// writeCart renders the cart drawer with out-of-band cart counter
func (s *Server) writeCart(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	cart, err := s.store.GetCart(r.Context(), v.ID)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load cart", err)
		return
	}
	s.renderPartial(w, "cart", cartData{Lang: v.Lang, Cart: cart, Count: countData{Count: cart.Count(), OOB: true}})
}

// writeCartCount renders the out-of-band cart counter
func (s *Server) writeCartCount(w http.ResponseWriter, r *http.Request, sessionID string) {
	cart, err := s.store.GetCart(r.Context(), sessionID)
	if err != nil {
		log.Printf("[WARN] failed to load cart of %s: %v", sessionID, err)
		return
	}
	s.renderPartial(w, "cart-count", countData{Count: cart.Count(), OOB: true})
}

// baseData collects data shared by all pages
func (s *Server) baseData(ctx context.Context, v session.Visitor, page string) viewData {
	data := viewData{Lang: v.Lang, Title: s.cfg.Title, ActivePage: page, CartQty: map[string]int{}}

	if cart, err := s.store.GetCart(ctx, v.ID); err != nil {
		log.Printf("[WARN] failed to load cart of %s: %v", v.ID, err)
	} else {
		data.CartCount, data.CartQty = cart.Count(), cart.Quantities()
	}

	addr, err := s.store.GetAddress(ctx, v.ID)
	if err != nil {
		log.Printf("[WARN] failed to load address of %s: %v", v.ID, err)
	}
	data.Address = addr
	return data
}

// cartQty returns cart quantities by cart key, empty on failure
func (s *Server) cartQty(ctx context.Context, sessionID string) map[string]int {
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		log.Printf("[WARN] failed to load cart of %s: %v", sessionID, err)
		return map[string]int{}
	}
	return cart.Quantities()
}

// categories returns the category tree, empty on failure
func (s *Server) categories(ctx context.Context) []domain.Category {
	tree, err := s.store.GetCategories(ctx)
	if err != nil {
		log.Printf("[WARN] failed to load categories: %v", err)
		return nil
	}
	return tree
}

// findProduct looks the product up in the visitor's mounted feeds first, then in the store.
// Returns nil if the product is unknown.
func (s *Server) findProduct(ctx context.Context, visitorID string, id int64) (*domain.Product, error) {
	for _, view := range []string{productfeed.ViewCatalog, productfeed.ViewPopular} {
		inst, ok := s.feeds.Lookup(visitorID, view)
		if !ok {
			continue
		}
		for _, p := range inst.Feed.State().Items {
			if p.ID == id {
				return &p, nil
			}
		}
	}
	return s.store.GetProduct(ctx, id)
}

// feedView makes the listing data for the feed state
func (s *Server) feedView(lang string, inst *productfeed.Instance, st productfeed.State, qty map[string]int, failed bool) feedView {
	return feedView{
		Lang:    lang,
		Items:   st.Items,
		CartQty: qty,
		Failed:  failed && len(st.Items) == 0,
		Control: controlView{
			Lang:      lang,
			Show:      inst.Continuable(),
			HasMore:   st.HasMore && !st.LimitReached(),
			Sentinel:  st.Sentinel,
			Threshold: s.cfg.SentinelThreshold,
			Margin:    s.cfg.SentinelMargin,
			Count:     len(st.Items),
		},
	}
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data any) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, templateName, data)
}

// renderPartial renders a named partial template
func (s *Server) renderPartial(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to render %s: %v", name, err)
	}
}

// respondWithError logs the error and sends a plain error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		log.Printf("[WARN] %s: %v", message, err)
	}
	http.Error(w, message, code)
}

// visitor returns the request visitor resolved by session middleware
func visitor(r *http.Request) session.Visitor {
	v, _ := session.FromContext(r.Context())
	return v
}

// refresh asks htmx to reload the page, used when the visitor's feed is gone
func refresh(w http.ResponseWriter) {
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusNoContent)
}

// queryFromRequest reads feed filters from the query string
func queryFromRequest(r *http.Request) domain.FeedQuery {
	q := r.URL.Query()
	return domain.FeedQuery{
		Sort:       domain.ParseSortOption(q.Get("sort")),
		CategoryID: q.Get("category"),
		Search:     q.Get("search"),
	}.Normalized()
}

// catalogURL is the shareable catalog page url for the query
func catalogURL(q domain.FeedQuery) string {
	vals := url.Values{}
	vals.Set("sort", string(q.Sort))
	if !q.AllCategories() {
		vals.Set("category", q.CategoryID)
	}
	if q.Search != "" {
		vals.Set("search", q.Search)
	}
	return "/catalog?" + vals.Encode()
}

// parseCoord parses an optional coordinate bounded by ±limit
func parseCoord(s string, limit float64) (*float64, error) {
	if s = strings.TrimSpace(s); s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if v < -limit || v > limit {
		return nil, fmt.Errorf("%v out of range", v)
	}
	return &v, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"t":     i18n.T,
		"tf":    func(lang, key, name string, v any) string { return i18n.Tf(lang, key, map[string]any{name: v}) },
		"items": i18n.Items,
		"price": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
		"card": func(lang string, p domain.Product, qty map[string]int) cardData {
			res := cardData{Lang: lang, Product: p}
			if sz, ok := p.DefaultSize(); ok {
				res.HasSize = true
				res.Button = cartButton{Lang: lang, ProductID: p.ID, SizeID: sz.ID, Qty: qty[domain.CartKey(p.ID, sz.ID)]}
			}
			return res
		},
		"addressData": func(lang string, addr *domain.Address) addressData {
			return addressData{Lang: lang, Address: addr}
		},
		"countData":     func(n int, oob bool) countData { return countData{Count: n, OOB: oob} },
		"sortOptions":   func() []domain.SortOption { return domain.SortOptions },
		"sortLabel":     sortLabel,
		"companyStatus": companyStatus,
		"flatCategories": func(tree []domain.Category) []categoryOption {
			var res []categoryOption
			var walk func(cs []domain.Category, depth int)
			walk = func(cs []domain.Category, depth int) {
				for _, c := range cs {
					res = append(res, categoryOption{ID: c.ID, Name: c.Name, Depth: depth})
					walk(c.Children, depth+1)
				}
			}
			walk(tree, 0)
			return res
		},
		"indent": func(depth int) string { return strings.Repeat("  ", depth) },
		// descriptions come from the catalog api, sanitized again before rendering as html
		"description": func(s string) template.HTML {
			return template.HTML(descriptionPolicy.Sanitize(s)) //nolint:gosec // sanitized by bluemonday
		},
	}
}

func sortLabel(lang string, opt domain.SortOption) string {
	key := map[domain.SortOption]string{
		domain.SortPopular:   "popular",
		domain.SortPriceAsc:  "priceAsc",
		domain.SortPriceDesc: "priceDesc",
		domain.SortNewest:    "newest",
		domain.SortOldest:    "oldest",
	}[opt]
	if key == "" {
		return string(opt)
	}
	return i18n.T(lang, key)
}
