package templates

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	_ "github.com/louisbranch/ems-protocols/internal/platform/i18n"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func englishLocalizer() Localizer {
	return message.NewPrinter(language.AmericanEnglish)
}

func sampleView() BrowseView {
	return BrowseView{
		Categories: []FilterOption{
			{ID: "adult", Label: "Adult", Icon: "stethoscope", Color: "blue", URL: "/?category=adult", Active: true},
			{ID: "pediatric", Label: "Pediatric", Icon: "baby", Color: "purple", URL: "/?category=pediatric"},
		},
		Subcategories: []FilterOption{
			{ID: "cardiac", Label: "Cardiac", Icon: "heart", Color: "red", URL: "/?category=adult&subcategory=cardiac"},
		},
		FilterLabel: "Adult",
		Filtered:    true,
		ClearURL:    "/",
		Cards: []ProtocolCard{
			{Title: "Chest Pain", URL: "/protocols/adult/cardiac/chest-pain", CategoryLabel: "Adult", CategoryColor: "blue", SubcategoryLabel: "Cardiac", SubcategoryColor: "red"},
		},
	}
}

func TestProtocolBrowserRendersFiltersAndCards(t *testing.T) {
	t.Parallel()

	out := render(t, ProtocolBrowser(sampleView(), englishLocalizer()))
	for _, marker := range []string{
		`id="protocol-browser"`,
		`class="filter-button tone-blue is-active"`,
		`aria-pressed="true"`,
		`hx-get="/?category=pediatric"`,
		`hx-target="#protocol-browser"`,
		`hx-push-url="true"`,
		"Subcategories",
		`<strong data-filter-label>Adult</strong>`,
		"1 protocols",
		"Clear Filters",
		`href="/protocols/adult/cardiac/chest-pain"`,
		`<span class="badge tone-red">Cardiac</span>`,
		`href="#lucide-file-text"`,
	} {
		if !strings.Contains(out, marker) {
			t.Fatalf("browser output missing %q:\n%s", marker, out)
		}
	}
}

func TestProtocolBrowserHidesClearAndSubcategoriesWhenUnfiltered(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.Subcategories = nil
	view.Filtered = false
	view.FilterLabel = "All Protocols"
	out := render(t, ProtocolBrowser(view, englishLocalizer()))
	if strings.Contains(out, "Clear Filters") {
		t.Fatal("expected clear filters to be hidden")
	}
	if strings.Contains(out, "subcategory-filters") {
		t.Fatal("expected subcategory group to be hidden")
	}
}

func TestProtocolBrowserEmptyState(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.Cards = nil
	out := render(t, ProtocolBrowser(view, englishLocalizer()))
	if !strings.Contains(out, "No protocols match the current filters.") {
		t.Fatalf("expected empty state:\n%s", out)
	}
	if strings.Contains(out, "protocol-grid") {
		t.Fatal("expected no grid when empty")
	}
}

func TestProtocolBrowserEscapesCatalogText(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.Cards[0].Title = `<script>alert("x")</script>`
	view.Categories[0].URL = `/?category="><b>`
	out := render(t, ProtocolBrowser(view, nil))
	if strings.Contains(out, "<script>") || strings.Contains(out, `"><b>`) {
		t.Fatalf("expected catalog text to be escaped:\n%s", out)
	}
}

func TestLayoutWrapsChildren(t *testing.T) {
	t.Parallel()

	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>child</p>")
		return err
	})
	page := PageContext{
		Title: "Adult · EMS Patient Care Protocols",
		Lang:  "en-US",
		Loc:   englishLocalizer(),
		Languages: []LanguageOption{
			{Tag: "en-US", Label: "English", URL: "/?lang=en-US", Active: true},
			{Tag: "pt-BR", Label: "Português (Brasil)", URL: "/?lang=pt-BR"},
		},
	}
	ctx := templ.WithChildren(context.Background(), child)
	var b strings.Builder
	if err := Layout(page).Render(ctx, &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := b.String()
	for _, marker := range []string{
		"<!DOCTYPE html>",
		`<html lang="en-US">`,
		"<title>Adult · EMS Patient Care Protocols</title>",
		"Evidence-based protocols for emergency medical services",
		`<symbol id="lucide-stethoscope"`,
		`<main id="main-content" class="app-main"><p>child</p></main>`,
		`hreflang="pt-BR"`,
	} {
		if !strings.Contains(out, marker) {
			t.Fatalf("layout missing %q:\n%s", marker, out)
		}
	}
}

func TestProtocolDetail(t *testing.T) {
	t.Parallel()

	out := render(t, ProtocolDetail(ProtocolView{
		ID:               "chest-pain",
		Title:            "Chest Pain",
		CategoryLabel:    "Adult",
		CategoryColor:    "blue",
		SubcategoryLabel: "Cardiac",
		SubcategoryColor: "red",
		BackURL:          "/?category=adult&subcategory=cardiac",
	}, englishLocalizer()))
	for _, marker := range []string{"<h2>Chest Pain</h2>", "Back to protocols", `href="/?category=adult&amp;subcategory=cardiac"`, "<code>chest-pain</code>"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("detail missing %q:\n%s", marker, out)
		}
	}
}

func TestErrorState(t *testing.T) {
	t.Parallel()

	out := render(t, ErrorState(http.StatusNotFound, englishLocalizer()))
	if !strings.Contains(out, "Page not found") || !strings.Contains(out, `data-status="404"`) {
		t.Fatalf("unexpected not-found state:\n%s", out)
	}
	out = render(t, ErrorState(http.StatusInternalServerError, englishLocalizer()))
	if !strings.Contains(out, "Something went wrong") {
		t.Fatalf("unexpected server error state:\n%s", out)
	}
	if got := ErrorPageTitle(http.StatusNotFound, englishLocalizer()); got != "Page not found · EMS Patient Care Protocols" {
		t.Fatalf("ErrorPageTitle() = %q", got)
	}
}

func TestToneClass(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"blue":      "tone-blue",
		" Emerald ": "tone-emerald",
		"":          "tone-slate",
		"red;x:y":   "tone-slate",
		"sky-500":   "tone-sky-500",
	}
	for input, want := range tests {
		if got := toneClass(input); got != want {
			t.Fatalf("toneClass(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIconFallsBackForUnknownName(t *testing.T) {
	t.Parallel()

	out := render(t, Icon("not-an-icon", "big"))
	if !strings.Contains(out, `href="#lucide-file-text"`) || !strings.Contains(out, `class="icon big"`) {
		t.Fatalf("unexpected icon markup: %s", out)
	}
}
