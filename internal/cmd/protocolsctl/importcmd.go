package protocolsctl

import (
	catalogimporter "github.com/louisbranch/ems-protocols/internal/tools/importer/catalog"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cfg := catalogimporter.Config{DBPath: catalogimporter.DefaultDBPath}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Validate a catalog file and store it in the SQLite catalog database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return catalogimporter.Run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&cfg.File, "file", "", "YAML or TOML catalog file")
	cmd.Flags().StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog database path")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
