package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(m.Handler())
	r.Get("/docs/{slug}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get(MetricsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/docs/pipeline", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/docs/{slug}", "200")))
	require.Equal(t, 1, testutil.CollectAndCount(m.requests))
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestNewMetricsRejectsDuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestMatchesETag(t *testing.T) {
	t.Parallel()

	const etag = `W/"abc"`
	tests := []struct {
		header string
		want   bool
	}{
		{header: "", want: false},
		{header: `W/"abc"`, want: true},
		{header: `"abc"`, want: true},
		{header: `"x", W/"abc"`, want: true},
		{header: "*", want: true},
		{header: `"abcd"`, want: false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("If-None-Match", tc.header)
		}
		require.Equal(t, tc.want, MatchesETag(req, etag), tc.header)
	}
	require.False(t, MatchesETag(nil, etag))
}

func TestPublicCache(t *testing.T) {
	t.Parallel()

	h := PublicCache()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, CacheControl, rec.Header().Get("Cache-Control"))
	require.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
}
