package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/feed"
	"github.com/umputun/storefront/pkg/productfeed"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . FeedRegistry
//go:generate moq -out mocks/sessions.go -pkg mocks -skip-ensure -fmt goimports . Sessions
//go:generate moq -out mocks/stories.go -pkg mocks -skip-ensure -fmt goimports . Stories
//go:generate moq -out mocks/syncer.go -pkg mocks -skip-ensure -fmt goimports . Syncer
//go:generate moq -out mocks/promos.go -pkg mocks -skip-ensure -fmt goimports . PromoValidator

//go:embed templates
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	cfg      Config
	store    Store
	feeds    FeedRegistry
	sessions Sessions
	stories  Stories
	syncer   Syncer
	promos   PromoValidator
	rss      *feed.Generator

	lock          sync.Mutex
	httpServer    *http.Server
	router        *routegroup.Bundle
	templates     *template.Template            // partials rendered by htmx handlers
	pageTemplates map[string]*template.Template // full pages, each with base layout and partials
}

// Config for the server
type Config struct {
	Listen            string
	Timeout           time.Duration
	BaseURL           string
	Title             string
	Version           string
	Debug             bool
	PopularLimit      int
	SentinelThreshold float64
	SentinelMargin    int // px, loading starts this far before the end of the listing
	RSSLimit          int
	Delivery          domain.DeliveryRules
}

// Params with server dependencies, Syncer and Promos are optional
type Params struct {
	Config   Config
	Store    Store
	Feeds    FeedRegistry
	Sessions Sessions
	Stories  Stories
	Syncer   Syncer
	Promos   PromoValidator
}

// Store is the local storage used by handlers
type Store interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	NewestProducts(ctx context.Context, limit int) ([]domain.Product, error)
	BumpPopularity(ctx context.Context, id int64, delta int) error
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCart(ctx context.Context, sessionID string) (domain.Cart, error)
	AddToCart(ctx context.Context, sessionID string, product domain.Product, sizeID int64) (int, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID, sizeID int64) error
	ClearCart(ctx context.Context, sessionID string) error
	GetAddress(ctx context.Context, sessionID string) (*domain.Address, error)
	SetAddress(ctx context.Context, sessionID string, addr domain.Address) error
	ClearAddress(ctx context.Context, sessionID string) error
	GetCheckout(ctx context.Context, sessionID string) (domain.Checkout, error)
	SetDelivery(ctx context.Context, sessionID string, method domain.DeliveryMethod) error
	SetPromo(ctx context.Context, sessionID string, promo domain.Promo) error
	ClearPromo(ctx context.Context, sessionID string) error
	PlaceOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetProfile(ctx context.Context, sessionID string) (*domain.Profile, error)
	SetProfile(ctx context.Context, sessionID string, p domain.Profile) error
	ListCompanies(ctx context.Context, sessionID string) ([]domain.Company, error)
	CreateCompany(ctx context.Context, sessionID, name string) (domain.Company, error)
	DissolveCompany(ctx context.Context, sessionID string, id int64) (domain.Company, error)
	LastSync(ctx context.Context) (time.Time, int, error)
	CountProducts(ctx context.Context) (int, error)
}

// FeedRegistry keeps mounted product feeds of visitors
type FeedRegistry interface {
	Mount(visitorID string, view productfeed.ViewConfig) *productfeed.Instance
	Lookup(visitorID, viewName string) (*productfeed.Instance, bool)
	Len() int
}

// Sessions resolves visitors and stores their language
type Sessions interface {
	Middleware(next http.Handler) http.Handler
	SetLang(w http.ResponseWriter, r *http.Request, lang string) error
}

// Stories provides promo stories for the home page
type Stories interface {
	List(ctx context.Context, lang string) []domain.Story
}

// Syncer runs catalog sync on demand
type Syncer interface {
	Trigger() bool
	Running() bool
}

// PromoValidator checks promo codes with the catalog API
type PromoValidator interface {
	ValidatePromo(ctx context.Context, code string) (domain.PromoCheck, error)
}

// New initializes a new server instance
func New(params Params) (*Server, error) {
	cfg := params.Config
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PopularLimit <= 0 {
		cfg.PopularLimit = 8
	}
	if cfg.SentinelThreshold <= 0 || cfg.SentinelThreshold > 1 {
		cfg.SentinelThreshold = 0.5
	}
	if cfg.SentinelMargin <= 0 {
		cfg.SentinelMargin = 100
	}
	if cfg.RSSLimit <= 0 {
		cfg.RSSLimit = 20
	}

	s := &Server{
		cfg:      cfg,
		store:    params.Store,
		feeds:    params.Feeds,
		sessions: params.Sessions,
		stories:  params.Stories,
		syncer:   params.Syncer,
		promos:   params.Promos,
		rss:      feed.NewGenerator(cfg.BaseURL, cfg.Title),
		router:   routegroup.New(http.NewServeMux()),
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.Timeout,
		WriteTimeout:      s.cfg.Timeout,
		IdleTimeout:       time.Minute,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("storefront", "umputun", s.cfg.Version))
	s.router.Use(rest.Ping)

	if s.cfg.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // forms and small json bodies only
	s.router.Use(s.sessions.Middleware)
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /feed/{view}", s.feedStateHandler)
		r.HandleFunc("POST /feed/{view}/more", s.feedMoreHandler)
		r.HandleFunc("GET /categories", s.categoriesHandler)
		r.HandleFunc("POST /sync", s.syncHandler)
	})

	// RSS routes
	s.router.HandleFunc("GET /rss/new", s.rssHandler)

	// web UI routes
	s.router.HandleFunc("GET /{$}", s.homeHandler)
	s.router.HandleFunc("GET /catalog", s.catalogHandler)
	s.router.HandleFunc("GET /catalog/items", s.catalogItemsHandler)
	s.router.HandleFunc("POST /catalog/more", s.catalogMoreHandler)
	s.router.HandleFunc("GET /catalog/sentinel/{token}", s.catalogSentinelHandler)
	s.router.HandleFunc("GET /products/{id}", s.productHandler)
	s.router.HandleFunc("GET /cart", s.cartHandler)
	s.router.HandleFunc("POST /cart/{id}/{size}", s.addToCartHandler)
	s.router.HandleFunc("DELETE /cart/{id}/{size}", s.removeFromCartHandler)
	s.router.HandleFunc("DELETE /cart", s.clearCartHandler)
	s.router.HandleFunc("POST /address", s.setAddressHandler)
	s.router.HandleFunc("DELETE /address", s.clearAddressHandler)
	s.router.HandleFunc("GET /checkout", s.checkoutHandler)
	s.router.HandleFunc("POST /checkout/delivery", s.setDeliveryHandler)
	s.router.HandleFunc("POST /checkout/promo", s.applyPromoHandler)
	s.router.HandleFunc("DELETE /checkout/promo", s.removePromoHandler)
	s.router.HandleFunc("POST /checkout/order", s.placeOrderHandler)
	s.router.HandleFunc("GET /profile", s.profileHandler)
	s.router.HandleFunc("POST /profile", s.saveProfileHandler)
	s.router.HandleFunc("POST /companies", s.createCompanyHandler)
	s.router.HandleFunc("DELETE /companies/{id}", s.dissolveCompanyHandler)
	s.router.HandleFunc("POST /lang/{lang}", s.langHandler)
}

// loadTemplates parses partials and full pages from embedded templates
func (s *Server) loadTemplates() error {
	partials, err := fs.Glob(templatesFS, "templates/partials/*.html")
	if err != nil {
		return fmt.Errorf("list partials: %w", err)
	}

	s.templates, err = template.New("partials").Funcs(templateFuncs()).ParseFS(templatesFS, partials...)
	if err != nil {
		return fmt.Errorf("parse partials: %w", err)
	}

	s.pageTemplates = map[string]*template.Template{}
	for _, page := range []string{"home.html", "catalog.html", "checkout.html", "profile.html"} {
		files := append([]string{"templates/base.html", "templates/" + page}, partials...)
		tmpl, err := template.New(page).Funcs(templateFuncs()).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parse page %s: %w", page, err)
		}
		s.pageTemplates[page] = tmpl
	}
	return nil
}
