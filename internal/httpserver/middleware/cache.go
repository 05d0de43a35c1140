package middleware

import (
	"net/http"
	"strings"
)

// CacheControl is sent with every rendered page.
const CacheControl = "public, max-age=300"

// PublicCache marks responses as cacheable by shared caches.
func PublicCache() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Cache-Control", CacheControl)
			h.Add("Vary", "Accept-Encoding")
			next.ServeHTTP(w, r)
		})
	}
}

// MatchesETag reports whether the request's If-None-Match header matches
// etag. Weak comparison is used, and "*" matches any representation.
func MatchesETag(r *http.Request, etag string) bool {
	if etag == "" || r == nil {
		return false
	}
	raw := r.Header.Get("If-None-Match")
	if strings.TrimSpace(raw) == "" {
		return false
	}
	want := opaqueTag(etag)
	for _, candidate := range strings.Split(raw, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if candidate != "" && opaqueTag(candidate) == want {
			return true
		}
	}
	return false
}

func opaqueTag(tag string) string {
	return strings.TrimPrefix(strings.TrimSpace(tag), "W/")
}
