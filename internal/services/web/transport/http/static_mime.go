// Package http holds transport helpers shared by the web root handler.
package http

import (
	"net/http"
	"path"
	"strings"
)

// StaticCacheControl is sent with every embedded asset.
const StaticCacheControl = "public, max-age=3600"

// staticTypes pins content types for the embedded stylesheet bundle so
// responses do not depend on the host mime database.
var staticTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".map": "application/json",
}

// WithStaticMime sets content type and caching headers for embedded assets.
func WithStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType, ok := staticTypes[strings.ToLower(path.Ext(r.URL.Path))]; ok {
			w.Header().Set("Content-Type", contentType)
		}
		w.Header().Set("Cache-Control", StaticCacheControl)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}
