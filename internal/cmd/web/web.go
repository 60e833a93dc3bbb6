// Package web parses web service flags and launches the protocol browser.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/ems-protocols/internal/platform/cmd"
	"github.com/louisbranch/ems-protocols/internal/platform/timeouts"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalogsource"
	"github.com/louisbranch/ems-protocols/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr    string `env:"WEB_HTTP_ADDR" envDefault:"localhost:8090"`
	CatalogPath string `env:"CATALOG_PATH"`
	CatalogDB   string `env:"CATALOG_DB"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML or TOML catalog file (default: embedded catalog)")
	fs.StringVar(&cfg.CatalogDB, "catalog-db", cfg.CatalogDB, "SQLite catalog database written by protocolsctl import")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the catalog and serves the web UI until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		source := catalogsource.Config{Path: cfg.CatalogPath, DBPath: cfg.CatalogDB}
		loadCtx, cancel := context.WithTimeout(ctx, timeouts.CatalogLoad)
		protocols, err := catalogsource.Load(loadCtx, source)
		cancel()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		log.Printf("catalog loaded from %s: %d protocols", source.Describe(), protocols.Len())

		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Catalog:  protocols,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
