package modules

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			if strings.Contains(path, "/internal/services/web/modules/") {
				t.Fatalf("file %s imports sibling module path %q", file, path)
			}
		}
	}
}

func moduleAreas() []string {
	areas := make([]string, 0, len(DefaultModules()))
	for _, feature := range DefaultModules() {
		areas = append(areas, feature.ID())
	}
	return areas
}

func TestModulesReachCatalogThroughReadInterfaces(t *testing.T) {
	t.Parallel()

	forbidden := []string{
		"/internal/protocols/catalog/sqlite",
		"/internal/protocols/catalogsource",
	}
	for _, area := range moduleAreas() {
		files, err := filepath.Glob(filepath.Join(area, "*.go"))
		if err != nil {
			t.Fatalf("glob %s: %v", area, err)
		}
		for _, file := range files {
			parsed, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse imports for %s: %v", file, err)
			}
			for _, imp := range parsed.Imports {
				path := strings.Trim(imp.Path.Value, "\"")
				for _, suffix := range forbidden {
					if strings.HasSuffix(path, suffix) {
						t.Fatalf("file %s imports catalog loading package %q", file, path)
					}
				}
			}
		}

		source, err := os.ReadFile(filepath.Join(area, "service.go"))
		if err != nil {
			t.Fatalf("read %s service: %v", area, err)
		}
		if !strings.Contains(string(source), "type CatalogReader interface") {
			t.Fatalf("module %q service.go must declare a CatalogReader interface", area)
		}
	}
}

func TestModulePrefixesAreRouteConstants(t *testing.T) {
	t.Parallel()

	known := map[string]struct{}{
		routepath.Root:            {},
		routepath.ProtocolsPrefix: {},
		routepath.APIPrefix:       {},
	}
	if _, clash := known[routepath.StaticPrefix]; clash {
		t.Fatalf("static prefix %q collides with a module prefix", routepath.StaticPrefix)
	}
	deps := Dependencies{Catalog: catalog.Default()}
	for _, feature := range DefaultModules() {
		mount, err := feature.Mount(deps)
		if err != nil {
			t.Fatalf("Mount(%s) error = %v", feature.ID(), err)
		}
		if _, ok := known[mount.Prefix]; !ok {
			t.Fatalf("module %q mounts %q, want a routepath prefix constant", feature.ID(), mount.Prefix)
		}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	requiredFiles := []string{"module.go", "routes.go", "routes_test.go", "handlers.go", "service.go"}
	for _, area := range moduleAreas() {
		for _, file := range requiredFiles {
			path := filepath.Join(area, file)
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("module %q missing required file %q: %v", area, file, err)
			}
		}
	}
}

func TestMountsReadOnlySharedDependencies(t *testing.T) {
	t.Parallel()

	allowed := map[string]struct{}{
		"Catalog":         {},
		"ResolveLanguage": {},
	}
	for _, area := range moduleAreas() {
		assertMountReadsOnlyDependencyFields(t, filepath.Join(area, "module.go"), allowed)
	}
}

func assertMountReadsOnlyDependencyFields(t *testing.T, moduleFile string, allowed map[string]struct{}) {
	t.Helper()

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, moduleFile, nil, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse module file %s: %v", moduleFile, err)
	}

	for _, decl := range parsed.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name == nil || fn.Name.Name != "Mount" || fn.Body == nil {
			continue
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok || sel.Sel == nil {
				return true
			}
			ident, ok := sel.X.(*ast.Ident)
			if !ok || ident.Name != "deps" {
				return true
			}
			if _, exists := allowed[sel.Sel.Name]; !exists {
				t.Fatalf("%s Mount reads deps.%s; extend module.Dependencies deliberately", moduleFile, sel.Sel.Name)
			}
			return true
		})
		return
	}

	t.Fatalf("module file %s missing Mount function", moduleFile)
}
