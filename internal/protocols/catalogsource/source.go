// Package catalogsource resolves where a process loads its protocol catalog from.
package catalogsource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	catalogsqlite "github.com/louisbranch/ems-protocols/internal/protocols/catalog/sqlite"
)

// Config names at most one catalog source. With neither set the embedded
// default catalog is used.
type Config struct {
	// Path is a YAML or TOML catalog file.
	Path string
	// DBPath is a SQLite catalog database written by the importer.
	DBPath string
}

// Describe returns a short human-readable description for startup logs.
func (c Config) Describe() string {
	switch {
	case strings.TrimSpace(c.Path) != "":
		return "file " + strings.TrimSpace(c.Path)
	case strings.TrimSpace(c.DBPath) != "":
		return "sqlite " + strings.TrimSpace(c.DBPath)
	default:
		return "embedded default"
	}
}

// Load reads and validates the configured catalog once.
func Load(ctx context.Context, cfg Config) (*catalog.Catalog, error) {
	path := strings.TrimSpace(cfg.Path)
	dbPath := strings.TrimSpace(cfg.DBPath)
	if path != "" && dbPath != "" {
		return nil, errors.New("catalog path and catalog db are mutually exclusive")
	}
	switch {
	case path != "":
		return catalog.LoadFile(path)
	case dbPath != "":
		return loadSQLite(ctx, dbPath)
	default:
		return catalog.Default(), nil
	}
}

func loadSQLite(ctx context.Context, dbPath string) (*catalog.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := catalogsqlite.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	defer store.Close()
	c, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog store %s: %w", dbPath, err)
	}
	return c, nil
}
