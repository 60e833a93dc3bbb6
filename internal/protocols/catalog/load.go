package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

//go:embed default.yaml
var defaultCatalogYAML []byte

var defaultCatalog = mustLoadDefault()

// Default returns the embedded EMS sample catalog.
func Default() *Catalog {
	return defaultCatalog
}

// FormatFromPath infers the file format from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(path))) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog path is required")
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	catalog, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Decode parses a catalog document. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	if r == nil {
		return nil, errors.New("catalog reader is required")
	}
	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("decode yaml: catalog document is empty")
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		meta, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return doc.build()
}

type document struct {
	Categories []documentCategory `yaml:"categories" toml:"categories"`
}

type documentCategory struct {
	ID            string                `yaml:"id" toml:"id"`
	Label         string                `yaml:"label" toml:"label"`
	Icon          string                `yaml:"icon" toml:"icon"`
	Color         string                `yaml:"color" toml:"color"`
	Subcategories []documentSubcategory `yaml:"subcategories" toml:"subcategories"`
}

type documentSubcategory struct {
	ID        string             `yaml:"id" toml:"id"`
	Label     string             `yaml:"label" toml:"label"`
	Icon      string             `yaml:"icon" toml:"icon"`
	Color     string             `yaml:"color" toml:"color"`
	Protocols []documentProtocol `yaml:"protocols" toml:"protocols"`
}

type documentProtocol struct {
	ID    string `yaml:"id" toml:"id"`
	Title string `yaml:"title" toml:"title"`
}

func (d document) build() (*Catalog, error) {
	if len(d.Categories) == 0 {
		return nil, errors.New("catalog must declare at least one category")
	}
	taxonomy := Taxonomy{Subcategories: make(map[string][]Subcategory, len(d.Categories))}
	sections := make([]Section, 0, len(d.Categories))
	for _, category := range d.Categories {
		taxonomy.Categories = append(taxonomy.Categories, Category{
			ID:    category.ID,
			Label: category.Label,
			Icon:  category.Icon,
			Color: category.Color,
		})
		section := Section{CategoryID: category.ID}
		subcategories := make([]Subcategory, 0, len(category.Subcategories))
		for _, subcategory := range category.Subcategories {
			subcategories = append(subcategories, Subcategory{
				ID:    subcategory.ID,
				Label: subcategory.Label,
				Icon:  subcategory.Icon,
				Color: subcategory.Color,
			})
			shelf := Shelf{SubcategoryID: subcategory.ID}
			for _, protocol := range subcategory.Protocols {
				shelf.Protocols = append(shelf.Protocols, Protocol{ID: protocol.ID, Title: protocol.Title})
			}
			section.Shelves = append(section.Shelves, shelf)
		}
		taxonomy.Subcategories[category.ID] = subcategories
		sections = append(sections, section)
	}
	return New(taxonomy, sections)
}

func mustLoadDefault() *Catalog {
	catalog, err := Decode(bytes.NewReader(defaultCatalogYAML), FormatYAML)
	if err != nil {
		panic(fmt.Errorf("load embedded catalog: %w", err))
	}
	return catalog
}
