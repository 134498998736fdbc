package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// catalog sources
const (
	SourceRemote = "remote" // feeds are served by the remote catalog API
	SourceLocal  = "local"  // feeds are served from the synced local mirror
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Catalog  CatalogConfig  `yaml:"catalog" json:"catalog" jsonschema:"description=Remote catalog API"`
	Feed     FeedConfig     `yaml:"feed" json:"feed" jsonschema:"description=Incremental product feed"`
	Checkout CheckoutConfig `yaml:"checkout" json:"checkout" jsonschema:"description=Checkout pricing"`
	Sync     SyncConfig     `yaml:"sync" json:"sync" jsonschema:"description=Catalog sync into the local mirror"`
	Stories  StoriesConfig  `yaml:"stories" json:"stories" jsonschema:"description=Promo stories on the home page"`
	Session  SessionConfig  `yaml:"session" json:"session" jsonschema:"description=Visitor session cookie"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL     string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds and external links"`
	Title       string        `yaml:"title" json:"title" jsonschema:"default=Storefront,description=Shop title"`
	DefaultLang string        `yaml:"default_lang" json:"default_lang" jsonschema:"default=en,enum=en,enum=ru,description=Language for visitors without a choice"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:storefront.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// CatalogConfig holds remote catalog API settings
type CatalogConfig struct {
	Source    string        `yaml:"source" json:"source" jsonschema:"default=remote,enum=remote,enum=local,description=Where feeds read products from"`
	BaseURL   string        `yaml:"base_url" json:"base_url" jsonschema:"description=Catalog API base URL (required for remote source and sync)"`
	Token     string        `yaml:"token" json:"token" jsonschema:"description=Bearer token (can use environment variable)"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Storefront/1.0,description=User agent for API requests"`
	Cache     bool          `yaml:"cache" json:"cache" jsonschema:"default=false,description=Store every fetched page in the local mirror"`
}

// FeedConfig holds incremental feed settings
type FeedConfig struct {
	PageSize          int           `yaml:"page_size" json:"page_size" jsonschema:"default=20,minimum=1,description=Size of the first page"`
	IncrementSize     int           `yaml:"increment_size" json:"increment_size" jsonschema:"default=20,minimum=1,description=Size of every following page"`
	PopularLimit      int           `yaml:"popular_limit" json:"popular_limit" jsonschema:"default=8,minimum=1,description=Products in the popular preview"`
	SentinelThreshold float64       `yaml:"sentinel_threshold" json:"sentinel_threshold" jsonschema:"default=0.5,minimum=0,maximum=1,description=Visible fraction of the sentinel triggering load"`
	SentinelMargin    int           `yaml:"sentinel_margin" json:"sentinel_margin" jsonschema:"default=100,minimum=0,description=Pixels before the end of the listing where loading starts"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" json:"idle_timeout" jsonschema:"default=30m,description=Visitor feeds unused for this long are unmounted"`
	RSSLimit          int           `yaml:"rss_limit" json:"rss_limit" jsonschema:"default=20,minimum=1,description=Products in the new products RSS"`
}

// CheckoutConfig holds checkout pricing settings
type CheckoutConfig struct {
	DeliveryCost     float64 `yaml:"delivery_cost" json:"delivery_cost" jsonschema:"default=300,minimum=0,description=Courier delivery cost"`
	FreeDeliveryFrom float64 `yaml:"free_delivery_from" json:"free_delivery_from" jsonschema:"default=3000,minimum=0,description=Order subtotal with free courier delivery"`
}

// SyncConfig holds catalog sync settings
type SyncConfig struct {
	Enabled           bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Mirror the remote catalog periodically"`
	Interval          time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Sync interval"`
	MaxWorkers        int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,minimum=1,description=Categories synced concurrently"`
	PageSize          int           `yaml:"page_size" json:"page_size" jsonschema:"default=50,minimum=1,description=Products per sync request"`
	MaxPages          int           `yaml:"max_pages" json:"max_pages" jsonschema:"default=0,minimum=0,description=Pages per category, 0 for no limit"`
	RetryAttempts     int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=3,description=Attempts per request"`
	RetryInitialDelay time.Duration `yaml:"retry_initial_delay" json:"retry_initial_delay" jsonschema:"default=100ms,description=First retry delay"`
	RetryMaxDelay     time.Duration `yaml:"retry_max_delay" json:"retry_max_delay" jsonschema:"default=5s,description=Maximum retry delay"`
}

// StoriesConfig holds promo stories settings
type StoriesConfig struct {
	URL        string        `yaml:"url" json:"url" jsonschema:"description=RSS/Atom feed with stories, built-in stories if empty"`
	TTL        time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=15m,description=Stories cache time"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Feed request timeout"`
	MaxStories int           `yaml:"max_stories" json:"max_stories" jsonschema:"default=10,description=Maximum stories shown"`
	RetryDelay time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=1m,description=Pause before refetching after a failed fetch"`
}

// SessionConfig holds visitor session settings
type SessionConfig struct {
	Secret     string        `yaml:"secret" json:"secret" jsonschema:"description=Cookie signing secret, at least 32 chars (can use environment variable)"`
	CookieName string        `yaml:"cookie_name" json:"cookie_name" jsonschema:"default=storefront,description=Session cookie name"`
	MaxAge     time.Duration `yaml:"max_age" json:"max_age" jsonschema:"default=720h,description=Session cookie lifetime"`
	Secure     bool          `yaml:"secure" json:"secure" jsonschema:"default=false,description=Send cookie over HTTPS only"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse makes configuration from YAML content, environment variables are expanded
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}
	if cfg.Server.Title == "" {
		cfg.Server.Title = "Storefront"
	}
	if cfg.Server.DefaultLang == "" {
		cfg.Server.DefaultLang = "en"
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:storefront.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// catalog
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = SourceRemote
	}
	if cfg.Catalog.Timeout == 0 {
		cfg.Catalog.Timeout = 10 * time.Second
	}
	if cfg.Catalog.UserAgent == "" {
		cfg.Catalog.UserAgent = "Storefront/1.0"
	}

	// feed, increment equals page size so offset paging doesn't overlap
	if cfg.Feed.PageSize == 0 {
		cfg.Feed.PageSize = 20
	}
	if cfg.Feed.IncrementSize == 0 {
		cfg.Feed.IncrementSize = cfg.Feed.PageSize
	}
	if cfg.Feed.PopularLimit == 0 {
		cfg.Feed.PopularLimit = 8
	}
	if cfg.Feed.SentinelThreshold == 0 {
		cfg.Feed.SentinelThreshold = 0.5
	}
	if cfg.Feed.SentinelMargin == 0 {
		cfg.Feed.SentinelMargin = 100
	}
	if cfg.Feed.IdleTimeout == 0 {
		cfg.Feed.IdleTimeout = 30 * time.Minute
	}
	if cfg.Feed.RSSLimit == 0 {
		cfg.Feed.RSSLimit = 20
	}

	// sync
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = time.Hour
	}
	if cfg.Sync.MaxWorkers == 0 {
		cfg.Sync.MaxWorkers = 4
	}
	if cfg.Sync.PageSize == 0 {
		cfg.Sync.PageSize = 50
	}
	if cfg.Sync.RetryAttempts == 0 {
		cfg.Sync.RetryAttempts = 3
	}
	if cfg.Sync.RetryInitialDelay == 0 {
		cfg.Sync.RetryInitialDelay = 100 * time.Millisecond
	}
	if cfg.Sync.RetryMaxDelay == 0 {
		cfg.Sync.RetryMaxDelay = 5 * time.Second
	}

	// stories
	if cfg.Stories.TTL == 0 {
		cfg.Stories.TTL = 15 * time.Minute
	}
	if cfg.Stories.Timeout == 0 {
		cfg.Stories.Timeout = 10 * time.Second
	}
	if cfg.Stories.MaxStories == 0 {
		cfg.Stories.MaxStories = 10
	}
	if cfg.Stories.RetryDelay == 0 {
		cfg.Stories.RetryDelay = time.Minute
	}

	// checkout
	if cfg.Checkout.DeliveryCost == 0 {
		cfg.Checkout.DeliveryCost = 300
	}
	if cfg.Checkout.FreeDeliveryFrom == 0 {
		cfg.Checkout.FreeDeliveryFrom = 3000
	}

	// session
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "storefront"
	}
	if cfg.Session.MaxAge == 0 {
		cfg.Session.MaxAge = 30 * 24 * time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.DefaultLang != "en" && cfg.Server.DefaultLang != "ru" {
		return fmt.Errorf("server.default_lang must be en or ru, got %q", cfg.Server.DefaultLang)
	}

	switch cfg.Catalog.Source {
	case SourceRemote:
		if cfg.Catalog.BaseURL == "" {
			return fmt.Errorf("catalog.base_url is required for remote source")
		}
	case SourceLocal:
	default:
		return fmt.Errorf("catalog.source must be %s or %s, got %q", SourceRemote, SourceLocal, cfg.Catalog.Source)
	}
	if cfg.Sync.Enabled && cfg.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url is required for sync")
	}

	if cfg.Feed.PageSize < 1 || cfg.Feed.IncrementSize < 1 {
		return fmt.Errorf("feed page_size and increment_size must be at least 1")
	}
	if cfg.Feed.PopularLimit < 1 {
		return fmt.Errorf("feed.popular_limit must be at least 1")
	}
	if cfg.Feed.SentinelThreshold <= 0 || cfg.Feed.SentinelThreshold > 1 {
		return fmt.Errorf("feed.sentinel_threshold must be in (0, 1]")
	}
	if cfg.Feed.SentinelMargin < 0 {
		return fmt.Errorf("feed.sentinel_margin must not be negative")
	}

	if cfg.Checkout.DeliveryCost < 0 || cfg.Checkout.FreeDeliveryFrom < 0 {
		return fmt.Errorf("checkout delivery_cost and free_delivery_from must not be negative")
	}

	if cfg.Sync.MaxWorkers < 1 {
		return fmt.Errorf("sync.max_workers must be at least 1")
	}
	if cfg.Sync.MaxPages < 0 {
		return fmt.Errorf("sync.max_pages must be non-negative")
	}

	if cfg.Session.Secret != "" && len(cfg.Session.Secret) < 32 {
		return fmt.Errorf("session.secret must be at least 32 characters")
	}

	return nil
}
