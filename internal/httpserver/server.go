package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	custommw "github.com/developerplugin/vocomate/internal/httpserver/middleware"
	"github.com/developerplugin/vocomate/internal/observability"
	"github.com/developerplugin/vocomate/internal/pages/docpages"
	"github.com/developerplugin/vocomate/internal/site"
)

const (
	defaultAddress        = ":8080"
	defaultRequestTimeout = 30 * time.Second
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
)

// Config holds runtime options for the site HTTP server.
type Config struct {
	Address string
	Source  site.Source
	Logger  *zap.Logger

	// Registry receives the request collectors. Nil creates a fresh registry
	// that also carries the Go runtime and process collectors.
	Registry       *prometheus.Registry
	MetricsEnabled bool

	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// New constructs the HTTP server with its middleware stack.
func New(cfg Config) (*http.Server, error) {
	if cfg.Source == nil {
		return nil, errors.New("httpserver: document source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.GetHead)
	router.Use(observability.RequestLogger(logger))
	router.Use(observability.Recovery(logger))

	if cfg.MetricsEnabled {
		reg := cfg.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		metrics, err := custommw.NewMetrics(reg)
		if err != nil {
			return nil, err
		}
		router.Use(metrics.Handler())
		router.Handle(custommw.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	router.Group(func(r chi.Router) {
		r.Use(chimw.Compress(5))
		r.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, defaultRequestTimeout)))
		r.Use(custommw.PublicCache())

		pages := pageHandler(cfg.Source)
		r.Get("/", pages)
		r.Get(docpages.IndexPath, pages)
		r.Get(docpages.IndexPath+"/{slug}", pages)
	})

	return &http.Server{
		Addr:         firstNonEmpty(cfg.Address, defaultAddress),
		Handler:      otelhttp.NewHandler(router, "vocamate-site"),
		ReadTimeout:  durationOr(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout: durationOr(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:  durationOr(cfg.IdleTimeout, defaultIdleTimeout),
	}, nil
}

func pageHandler(src site.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := src.Document(r.Context(), r.URL.Path)
		if errors.Is(err, site.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		if err != nil {
			observability.FromContext(r.Context()).Error("render page", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("ETag", doc.ETag)
		if custommw.MatchesETag(r, doc.ETag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", doc.ContentType)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(doc.Body)
	}
}

func durationOr(v, fallback time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
