package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/storefront/pkg/catalog"
	"github.com/umputun/storefront/pkg/config"
	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/feed"
	"github.com/umputun/storefront/pkg/productfeed"
	"github.com/umputun/storefront/pkg/repository"
	"github.com/umputun/storefront/pkg/scheduler"
	"github.com/umputun/storefront/pkg/session"
	"github.com/umputun/storefront/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	EnvFile string `long:"env" env:"ENV_FILE" default:".env" description:"dotenv file loaded before config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	SetupLog(opts.Debug)
	log.Printf("[INFO] starting storefront version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run wires all components from the config and serves until ctx is done
func run(ctx context.Context, opts Opts) error {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	SetupLog(opts.Debug, cfg.Catalog.Token, cfg.Session.Secret)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	var client *catalog.Client
	if cfg.Catalog.BaseURL != "" {
		client = catalog.NewClient(catalog.Params{
			BaseURL:   cfg.Catalog.BaseURL,
			Token:     cfg.Catalog.Token,
			UserAgent: cfg.Catalog.UserAgent,
			Timeout:   cfg.Catalog.Timeout,
		})
	}

	fetcher := feedFetcher(cfg, client, repos)

	var syncer server.Syncer
	if cfg.Sync.Enabled {
		sched := scheduler.NewScheduler(scheduler.Params{
			Source:            client,
			Products:          repos.Product,
			Categories:        repos.Category,
			Settings:          repos.Setting,
			UpdateInterval:    cfg.Sync.Interval,
			MaxWorkers:        cfg.Sync.MaxWorkers,
			PageSize:          cfg.Sync.PageSize,
			MaxPages:          cfg.Sync.MaxPages,
			RetryAttempts:     cfg.Sync.RetryAttempts,
			RetryInitialDelay: cfg.Sync.RetryInitialDelay,
			RetryMaxDelay:     cfg.Sync.RetryMaxDelay,
		})
		sched.Start(ctx)
		defer sched.Stop()
		syncer = sched
	}

	registry := session.NewRegistry(fetcher, productfeed.Options{
		PageSize:      cfg.Feed.PageSize,
		IncrementSize: cfg.Feed.IncrementSize,
	}, cfg.Feed.IdleTimeout)
	go registry.Run(ctx)

	var categories server.CategorySource
	var promos server.PromoValidator
	if client != nil {
		categories, promos = client, client
	}

	srv, err := server.New(server.Params{
		Config: server.Config{
			Listen:            cfg.Server.Listen,
			Timeout:           cfg.Server.Timeout,
			BaseURL:           cfg.Server.BaseURL,
			Title:             cfg.Server.Title,
			Version:           revision,
			Debug:             opts.Debug,
			PopularLimit:      cfg.Feed.PopularLimit,
			SentinelThreshold: cfg.Feed.SentinelThreshold,
			SentinelMargin:    cfg.Feed.SentinelMargin,
			RSSLimit:          cfg.Feed.RSSLimit,
			Delivery: domain.DeliveryRules{
				Cost:     cfg.Checkout.DeliveryCost,
				FreeFrom: cfg.Checkout.FreeDeliveryFrom,
			},
		},
		Store: server.NewRepositoryAdapter(repos, categories),
		Feeds: registry,
		Sessions: session.NewManager(session.Params{
			Secret:      cfg.Session.Secret,
			Name:        cfg.Session.CookieName,
			MaxAge:      cfg.Session.MaxAge,
			Secure:      cfg.Session.Secure,
			DefaultLang: cfg.Server.DefaultLang,
		}),
		Stories: feed.NewStories(feed.StoriesParams{
			URL:        cfg.Stories.URL,
			TTL:        cfg.Stories.TTL,
			Timeout:    cfg.Stories.Timeout,
			MaxStories: cfg.Stories.MaxStories,
			RetryDelay: cfg.Stories.RetryDelay,
			UserAgent:  cfg.Catalog.UserAgent,
		}),
		Syncer: syncer,
		Promos: promos,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// feedFetcher picks the product source of visitor feeds. Remote feeds may store
// fetched pages in the local mirror, local feeds read the mirror filled by sync.
func feedFetcher(cfg *config.Config, client *catalog.Client, repos *repository.Repositories) productfeed.Fetcher {
	if cfg.Catalog.Source == config.SourceLocal || client == nil {
		log.Printf("[INFO] product feeds are served from the local catalog mirror")
		return repos.Product
	}
	log.Printf("[INFO] product feeds are served from %s, cache: %v", cfg.Catalog.BaseURL, cfg.Catalog.Cache)
	if cfg.Catalog.Cache {
		return catalog.NewCachingFetcher(client, repos.Product)
	}
	return client
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var nonEmpty []string
	for _, s := range secs {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
