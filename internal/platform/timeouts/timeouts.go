// Package timeouts defines shared timeout constants used by the HTTP surfaces.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// CatalogLoad caps startup catalog loading from a database.
const CatalogLoad = 10 * time.Second
