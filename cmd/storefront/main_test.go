package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/storefront/pkg/catalog"
	"github.com/umputun/storefront/pkg/config"
	"github.com/umputun/storefront/pkg/repository"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: tmpFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("STOREFRONT_TEST_LANG=de\n"), 0o600))
	cfgFile := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("server:\n  default_lang: ${STOREFRONT_TEST_LANG}\ncatalog:\n  source: local\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STOREFRONT_TEST_LANG") })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// value from the env file reaches the config and fails validation
	err := run(ctx, Opts{Config: cfgFile, EnvFile: envFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_lang")
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("DB_PATH", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wd, err := os.Getwd()
	require.NoError(t, err)
	opts := Opts{Config: filepath.Join(wd, "testdata", "test_config.yml"), EnvFile: "testdata/missing.env"}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, opts)
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://127.0.0.1:18765/ping")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	// empty local mirror renders an empty catalog
	catResp, err := http.Get("http://127.0.0.1:18765/catalog")
	require.NoError(t, err)
	defer catResp.Body.Close()
	assert.Equal(t, http.StatusOK, catResp.StatusCode)
	catBody, err := io.ReadAll(catResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(catBody), "No products found")

	// local checkout and profile pages are served without the catalog api
	for path, want := range map[string]string{"/checkout": "Your cart is empty", "/profile": "No companies yet"} {
		pageResp, err := http.Get("http://127.0.0.1:18765" + path)
		require.NoError(t, err)
		pageBody, err := io.ReadAll(pageResp.Body)
		require.NoError(t, err)
		pageResp.Body.Close()
		assert.Equal(t, http.StatusOK, pageResp.StatusCode, path)
		assert.Contains(t, string(pageBody), want, path)
	}

	cancel()
	select {
	case err := <-serverErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestFeedFetcher(t *testing.T) {
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()
	client := catalog.NewClient(catalog.Params{BaseURL: "http://localhost/api"})

	tests := []struct {
		name   string
		cfg    config.Config
		client *catalog.Client
		check  func(t *testing.T, f any)
	}{
		{name: "remote", cfg: config.Config{Catalog: config.CatalogConfig{Source: config.SourceRemote}}, client: client,
			check: func(t *testing.T, f any) { assert.IsType(t, &catalog.Client{}, f) }},
		{name: "remote with cache", cfg: config.Config{Catalog: config.CatalogConfig{Source: config.SourceRemote, Cache: true}},
			client: client, check: func(t *testing.T, f any) { assert.IsType(t, &catalog.CachingFetcher{}, f) }},
		{name: "local", cfg: config.Config{Catalog: config.CatalogConfig{Source: config.SourceLocal}}, client: client,
			check: func(t *testing.T, f any) { assert.IsType(t, &repository.ProductRepository{}, f) }},
		{name: "no remote client", cfg: config.Config{Catalog: config.CatalogConfig{Source: config.SourceRemote}},
			check: func(t *testing.T, f any) { assert.IsType(t, &repository.ProductRepository{}, f) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, feedFetcher(&tt.cfg, tt.client, repos))
		})
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "", "secret2")
	})
}
