package protocolsctl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/protocols/selection"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
	"github.com/spf13/cobra"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

type listOptions struct {
	category    string
	subcategory string
	format      string
}

type listResult struct {
	Label     string      `json:"label"`
	Count     int         `json:"count"`
	Protocols []listEntry `json:"protocols"`
}

type listEntry struct {
	catalog.Entry
	Path string `json:"path"`
}

func listCmd(root *rootOptions) *cobra.Command {
	opts := listOptions{format: formatText}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List protocols, optionally narrowed to a category or subcategory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadCatalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			return runList(cmd.OutOrStdout(), c, opts)
		},
	}
	cmd.Flags().StringVar(&opts.category, "category", "", "category id")
	cmd.Flags().StringVar(&opts.subcategory, "subcategory", "", "subcategory id (requires --category)")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: text, markdown or json")
	return cmd
}

func runList(out io.Writer, c *catalog.Catalog, opts listOptions) error {
	holder := selection.NewHolder()
	holder.SelectCategory(opts.category)
	holder.SelectSubcategory(opts.subcategory)

	current := holder.Current()
	entries := c.Project(current)
	result := listResult{
		Label:     current.Label(c),
		Count:     len(entries),
		Protocols: make([]listEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		result.Protocols = append(result.Protocols, listEntry{
			Entry: entry,
			Path:  routepath.Protocol(entry.CategoryID, entry.SubcategoryID, entry.ID),
		})
	}

	switch strings.ToLower(strings.TrimSpace(opts.format)) {
	case formatText, "":
		return writeListText(out, result)
	case formatMarkdown:
		return writeListMarkdown(out, result)
	case formatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}
}

func writeListText(out io.Writer, result listResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Showing: %s (%d)\n", result.Label, result.Count)
	if result.Count == 0 {
		b.WriteString("No protocols match this filter.\n")
	}
	for _, entry := range result.Protocols {
		fmt.Fprintf(&b, "- %s [%s · %s]\n", entry.Title, entry.CategoryLabel, entry.SubcategoryLabel)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func writeListMarkdown(out io.Writer, result listResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", result.Label)
	fmt.Fprintf(&b, "%d protocol(s).\n\n", result.Count)
	b.WriteString("| Protocol | Category | Subcategory | Path |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, entry := range result.Protocols {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", entry.Title, entry.CategoryLabel, entry.SubcategoryLabel, entry.Path)
	}
	_, err := io.WriteString(out, b.String())
	return err
}
