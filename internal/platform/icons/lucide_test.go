package icons

import (
	"strings"
	"testing"
)

func TestCatalogIconsHaveLucidePaths(t *testing.T) {
	for _, def := range Catalog() {
		if _, ok := lucidePaths[def.Name]; !ok {
			t.Errorf("catalog icon %s does not have Lucide paths", def.Name)
		}
	}
	for name := range lucidePaths {
		if !Known(name) {
			t.Errorf("lucide paths for %s exist but icon is missing from catalog", name)
		}
	}
}

func TestLucideSpriteDefinesEverySymbol(t *testing.T) {
	sprite := LucideSprite()
	if !strings.HasPrefix(sprite, "<svg") || !strings.HasSuffix(sprite, "</svg>") {
		t.Fatalf("unexpected sprite envelope: %q", sprite)
	}
	for _, def := range Catalog() {
		id := `id="` + LucideSymbolID(def.Name) + `"`
		if !strings.Contains(sprite, id) {
			t.Errorf("sprite missing symbol %s", id)
		}
	}
}

func TestLucideSymbolID(t *testing.T) {
	if got := LucideSymbolID("heart"); got != "lucide-heart" {
		t.Fatalf("LucideSymbolID(heart) = %q, want %q", got, "lucide-heart")
	}
}
