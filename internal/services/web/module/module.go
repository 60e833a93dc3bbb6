// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
)

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Dependencies carries shared inputs handed to every module mount.
type Dependencies struct {
	Catalog         *catalog.Catalog
	ResolveLanguage ResolveLanguage
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
