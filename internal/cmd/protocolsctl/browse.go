package protocolsctl

import (
	"fmt"

	"github.com/louisbranch/ems-protocols/internal/services/tui"
	"github.com/spf13/cobra"
)

func browseCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse protocols in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadCatalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			return tui.Run(cmd.Context(), c, root.in, cmd.OutOrStdout())
		},
	}
}
