// Package catalogimporter validates a protocol catalog file and stores it in
// the SQLite catalog database read by the web service.
package catalogimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	catalogsqlite "github.com/louisbranch/ems-protocols/internal/protocols/catalog/sqlite"
)

// Config holds configuration for the catalog importer.
type Config struct {
	File   string
	DBPath string
	DryRun bool
}

// DefaultDBPath is used when no -db-path is given.
var DefaultDBPath = filepath.Join("data", "catalog.db")

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{DBPath: DefaultDBPath}

	fs.StringVar(&cfg.File, "file", "", "YAML or TOML catalog file")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.File) == "" {
		return errors.New("file is required")
	}
	if !c.DryRun && strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db-path is required")
	}
	return nil
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	c, err := catalog.LoadFile(cfg.File)
	if err != nil {
		return err
	}
	categories := len(c.Categories())

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d protocol(s) in %d category(ies)\n", c.Len(), categories)
		return err
	}

	store, err := catalogsqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open catalog store: %w", err)
	}
	defer store.Close()
	if err := store.Replace(ctx, c); err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}
	_, err = fmt.Fprintf(out, "imported %d protocol(s) in %d category(ies) into %s\n", c.Len(), categories, cfg.DBPath)
	return err
}
