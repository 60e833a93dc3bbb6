// Package protocolsctl implements the operator CLI for the protocol catalog.
package protocolsctl

import (
	"context"
	"io"

	entrypoint "github.com/louisbranch/ems-protocols/internal/platform/cmd"
	"github.com/louisbranch/ems-protocols/internal/platform/timeouts"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalogsource"
	"github.com/spf13/cobra"
)

// Config holds environment defaults shared by every subcommand.
type Config struct {
	CatalogPath string `env:"CATALOG_PATH"`
	CatalogDB   string `env:"CATALOG_DB"`
}

type rootOptions struct {
	source catalogsource.Config
	in     io.Reader
}

// NewRootCommand builds the protocolsctl command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var cfg Config
	// Environment errors surface from Execute through PersistentPreRunE.
	envErr := entrypoint.ParseConfig(&cfg)

	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           entrypoint.ServiceProtocolsCtl,
		Short:         "Inspect, import and browse the EMS protocol catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.in = cmd.InOrStdin()
			return envErr
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.source.Path, "catalog", cfg.CatalogPath, "YAML or TOML catalog file (default: embedded catalog)")
	flags.StringVar(&opts.source.DBPath, "catalog-db", cfg.CatalogDB, "SQLite catalog database written by import")

	root.AddCommand(
		listCmd(opts),
		importCmd(),
		iconsCmd(),
		i18nStatusCmd(),
		browseCmd(opts),
	)
	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (o *rootOptions) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	loadCtx, cancel := context.WithTimeout(ctx, timeouts.CatalogLoad)
	defer cancel()
	return catalogsource.Load(loadCtx, o.source)
}
