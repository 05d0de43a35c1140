package testutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/developerplugin/vocomate/internal/httpserver"
	"github.com/developerplugin/vocomate/internal/site"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithSource overrides the document source.
func WithSource(src site.Source) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Source = src
	}
}

// WithRegistry wires a dedicated Prometheus registry.
func WithRegistry(reg *prometheus.Registry) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Registry = reg
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// BuildSite renders the site with default options or fails the test.
func BuildSite(t testing.TB) *site.Site {
	t.Helper()

	s, err := site.Build(context.Background(), site.Options{})
	if err != nil {
		t.Fatalf("build site: %v", err)
	}
	return s
}

// NewServer constructs an httptest server running the site HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:        ":0",
		Source:         BuildSite(t),
		Logger:         zap.NewNop(),
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
