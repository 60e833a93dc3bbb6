package protocolsctl

import (
	"fmt"
	"strings"

	i18ncatalog "github.com/louisbranch/ems-protocols/internal/platform/i18n/catalog"
	"github.com/louisbranch/ems-protocols/internal/tools/i18nstatus"
	"github.com/spf13/cobra"
)

func i18nStatusCmd() *cobra.Command {
	format := formatMarkdown
	baseLocale := i18ncatalog.BaseLocale
	cmd := &cobra.Command{
		Use:   "i18n-status",
		Short: "Report translation coverage of the interface copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := i18nstatus.Build(i18ncatalog.Default(), baseLocale)
			if err != nil {
				return err
			}
			switch strings.ToLower(strings.TrimSpace(format)) {
			case formatMarkdown:
				return i18nstatus.WriteMarkdown(cmd.OutOrStdout(), rep)
			case formatJSON:
				return i18nstatus.WriteJSON(cmd.OutOrStdout(), rep)
			default:
				return fmt.Errorf("unsupported format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", format, "output format: markdown or json")
	cmd.Flags().StringVar(&baseLocale, "base-locale", baseLocale, "locale other locales are compared with")
	return cmd
}
