// Package app composes web modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/ems-protocols/internal/services/web/module"
)

// ComposeInput carries modules and the shared dependencies they mount with.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Compose builds a root HTTP handler from modules, rejecting duplicate or
// non-canonical mount prefixes.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount(input.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		if !isCanonicalPrefix(mount.Prefix) {
			return nil, fmt.Errorf("mount module %q: invalid prefix %q", feature.ID(), mount.Prefix)
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("mount module %q: handler is required", feature.ID())
		}
		if previous, ok := seen[mount.Prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), mount.Prefix, previous)
		}
		seen[mount.Prefix] = feature.ID()
		root.Handle(mount.Prefix, mount.Handler)
	}
	return root, nil
}

func isCanonicalPrefix(prefix string) bool {
	if prefix == "" || prefix != strings.TrimSpace(prefix) {
		return false
	}
	return strings.HasPrefix(prefix, "/") && strings.HasSuffix(prefix, "/")
}
