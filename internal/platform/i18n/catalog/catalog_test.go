package catalog

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got, _ := bundle.Message("en-US", "core.app.title"); got != "EMS Patient Care Protocols" {
		t.Fatalf("Message(core.app.title) = %q", got)
	}
}

func TestEmbeddedLocalesAreComplete(t *testing.T) {
	bundle := Default()
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Errorf("locale %s missing keys: %v", locale, missing)
		}
	}
}

func TestDefaultRegistersWithPrinter(t *testing.T) {
	_ = Default()
	printer := message.NewPrinter(language.BrazilianPortuguese)
	if got := printer.Sprintf("web.browse.clear_filters"); got != "Limpar filtros" {
		t.Fatalf("Sprintf(clear_filters) = %q, want %q", got, "Limpar filtros")
	}
	english := message.NewPrinter(language.AmericanEnglish)
	if got := english.Sprintf("web.browse.count", 3); got != "3 protocols" {
		t.Fatalf("Sprintf(count) = %q, want %q", got, "3 protocols")
	}
}

func TestLoadFromFSRejectsKeyOutsideNamespace(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/web.yaml": &fstest.MapFile{Data: []byte(`locale: "en-US"
namespace: "web"
messages:
  "core.bad": "nope"
`)},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/core.yaml": &fstest.MapFile{Data: []byte(`locale: "pt-BR"
namespace: "core"
messages:
  "core.a": "a"
`)},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/core.yaml": &fstest.MapFile{Data: []byte(`locale: "en-US"
namespace: "core"
plural: true
messages:
  "core.a": "a"
`)},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/pt-BR/core.yaml": &fstest.MapFile{Data: []byte(`locale: "pt-BR"
namespace: "core"
messages:
  "core.a": "a"
`)},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/core.yaml": &fstest.MapFile{Data: []byte(`locale: "en-US"
namespace: "core"
messages:
  "core.a": "a"
  "core.b": "b"
`)},
		"locales/pt-BR/core.yaml": &fstest.MapFile{Data: []byte(`locale: "pt-BR"
namespace: "core"
messages:
  "core.a": "á"
`)},
	}
	bundle, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got, ok := bundle.Message("pt-BR", "core.b"); !ok || got != "b" {
		t.Fatalf("Message(pt-BR, core.b) = %q, %v; want b, true", got, ok)
	}
	if got := bundle.MissingKeys("pt-BR"); len(got) != 1 || got[0] != "core.b" {
		t.Fatalf("MissingKeys(pt-BR) = %v, want [core.b]", got)
	}
	if _, ok := bundle.Message("pt-BR", " "); ok {
		t.Fatal("expected blank key lookup to fail")
	}
}

func TestNamespacesGroupMessages(t *testing.T) {
	bundle := Default()
	namespaces := bundle.Namespaces(BaseLocale)
	if len(namespaces) != 2 || namespaces[0] != "core" || namespaces[1] != "web" {
		t.Fatalf("Namespaces() = %v, want [core web]", namespaces)
	}
	core := bundle.NamespaceMessages(BaseLocale, "core")
	if _, ok := core["core.app.title"]; !ok {
		t.Fatal("expected core.app.title in core namespace")
	}
	if _, ok := core["web.browse.empty"]; ok {
		t.Fatal("web key leaked into core namespace")
	}
	if got := bundle.Namespaces("xx-XX"); got != nil {
		t.Fatalf("Namespaces(unknown) = %v, want nil", got)
	}
}
