package protocolsctl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/ems-protocols/internal/platform/icons"
	"github.com/spf13/cobra"
)

func iconsCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Print the icon handles catalogs may reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := icons.CatalogMarkdown()
			if strings.TrimSpace(outPath) == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), content)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write icon catalog: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write markdown to this file instead of stdout")
	return cmd
}
