package icons

import (
	"strings"
)

// DefaultName is rendered when an icon name has no sprite artwork.
const DefaultName = "file-text"

// Definition describes a core icon entry.
type Definition struct {
	Name        string
	Label       string
	Description string
}

var catalog = []Definition{
	{
		Name:        "stethoscope",
		Label:       "Stethoscope",
		Description: "Adult patient care.",
	},
	{
		Name:        "baby",
		Label:       "Baby",
		Description: "Pediatric patient care.",
	},
	{
		Name:        "book-open",
		Label:       "Book",
		Description: "Reference material and general protocols.",
	},
	{
		Name:        "heart",
		Label:       "Heart",
		Description: "Cardiac protocols.",
	},
	{
		Name:        "activity",
		Label:       "Activity",
		Description: "Medical and vital-sign driven protocols.",
	},
	{
		Name:        "clipboard-list",
		Label:       "Clipboard",
		Description: "Procedures and checklists.",
	},
	{
		Name:        "file-text",
		Label:       "Document",
		Description: "A single protocol document.",
	},
	{
		Name:        "filter",
		Label:       "Filter",
		Description: "Active filter summary.",
	},
	{
		Name:        "arrow-left",
		Label:       "Back",
		Description: "Return to the protocol list.",
	},
	{
		Name:        "x",
		Label:       "Close",
		Description: "Clear filters.",
	},
}

var catalogIndex = func() map[string]struct{} {
	index := make(map[string]struct{}, len(catalog))
	for _, def := range catalog {
		index[def.Name] = struct{}{}
	}
	return index
}()

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Known reports whether name has sprite artwork.
func Known(name string) bool {
	_, ok := catalogIndex[strings.TrimSpace(name)]
	return ok
}

// NameOrDefault returns name when it is known, otherwise DefaultName.
func NameOrDefault(name string) string {
	name = strings.TrimSpace(name)
	if Known(name) {
		return name
	}
	return DefaultName
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `protocolsctl icons`.\n\n")
	builder.WriteString("| Lucide Name | Label | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Label)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
