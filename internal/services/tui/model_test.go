package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/protocols/selection"
)

func runeKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, want Model", next)
		}
	}
	return m
}

func TestNewShowsEveryProtocol(t *testing.T) {
	t.Parallel()

	m := New(catalog.Default())
	if !m.Selection().IsAll() {
		t.Fatalf("Selection() = %+v, want all", m.Selection())
	}
	if got := len(m.Entries()); got != 15 {
		t.Fatalf("len(Entries()) = %d, want 15", got)
	}
	view := m.View()
	for _, marker := range []string{"Showing: ", selection.AllLabel, "(15)", "Categories", "Chest Pain"} {
		if !strings.Contains(view, marker) {
			t.Fatalf("View() missing %q:\n%s", marker, view)
		}
	}
}

func TestEnterOnCategoryNarrowsAndMovesFocus(t *testing.T) {
	t.Parallel()

	m := press(t, New(catalog.Default()), tea.KeyMsg{Type: tea.KeyEnter})
	if got, _ := m.Selection().Category(); got != "adult" {
		t.Fatalf("Category() = %q, want %q", got, "adult")
	}
	if got := len(m.Entries()); got != 6 {
		t.Fatalf("len(Entries()) = %d, want 6", got)
	}
	if m.focus != paneSubcategories {
		t.Fatalf("focus = %v, want %v", m.focus, paneSubcategories)
	}
	if !strings.Contains(m.View(), "Subcategories") {
		t.Fatal("expected subcategory pane once a category is selected")
	}
}

func TestSubcategorySelection(t *testing.T) {
	t.Parallel()

	m := press(t, New(catalog.Default()),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	subcategoryID, ok := m.Selection().Subcategory()
	if !ok || subcategoryID != "cardiac" {
		t.Fatalf("Subcategory() = %q, %v, want cardiac", subcategoryID, ok)
	}
	if got := len(m.Entries()); got != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", got)
	}
	if !strings.Contains(m.View(), "Adult → Cardiac") {
		t.Fatalf("View() missing combined label:\n%s", m.View())
	}
	if m.focus != paneProtocols {
		t.Fatalf("focus = %v, want %v", m.focus, paneProtocols)
	}
}

func TestSelectingAnotherCategoryClearsSubcategory(t *testing.T) {
	t.Parallel()

	m := press(t, New(catalog.Default()),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyShiftTab},
		tea.KeyMsg{Type: tea.KeyShiftTab},
		runeKey("j"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if got, _ := m.Selection().Category(); got != "pediatric" {
		t.Fatalf("Category() = %q, want %q", got, "pediatric")
	}
	if _, ok := m.Selection().Subcategory(); ok {
		t.Fatal("expected subcategory to be cleared")
	}
	if got := len(m.Entries()); got != 4 {
		t.Fatalf("len(Entries()) = %d, want 4", got)
	}
}

func TestClearResetsSelection(t *testing.T) {
	t.Parallel()

	m := press(t, New(catalog.Default()),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	if !m.Selection().IsAll() {
		t.Fatalf("Selection() = %+v, want all", m.Selection())
	}
	if got := len(m.Entries()); got != 15 {
		t.Fatalf("len(Entries()) = %d, want 15", got)
	}
	if m.focus != paneCategories {
		t.Fatalf("focus = %v, want %v", m.focus, paneCategories)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	m := press(t, New(catalog.Default()), runeKey("k"), tea.KeyMsg{Type: tea.KeyUp})
	if m.cursors[paneCategories] != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursors[paneCategories])
	}
	for range 10 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if want := len(catalog.Default().Categories()) - 1; m.cursors[paneCategories] != want {
		t.Fatalf("cursor = %d, want %d", m.cursors[paneCategories], want)
	}
}

func TestTabSkipsSubcategoriesWithoutCategory(t *testing.T) {
	t.Parallel()

	m := press(t, New(catalog.Default()), tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != paneProtocols {
		t.Fatalf("focus = %v, want %v", m.focus, paneProtocols)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != paneCategories {
		t.Fatalf("focus = %v, want %v", m.focus, paneCategories)
	}
}

func TestEnterOnProtocolsKeepsSelection(t *testing.T) {
	t.Parallel()

	m := press(t, New(catalog.Default()), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Selection().IsAll() {
		t.Fatalf("Selection() = %+v, want all", m.Selection())
	}
}

func TestQuitReturnsQuitCommand(t *testing.T) {
	t.Parallel()

	next, cmd := New(catalog.Default()).Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if got := next.View(); got != "" {
		t.Fatalf("View() after quit = %q, want empty", got)
	}
}

func TestEmptyProjectionShowsPlaceholder(t *testing.T) {
	t.Parallel()

	m := New(catalog.Default())
	m.holder.SelectCategory("missing")
	m.refresh()
	if len(m.Entries()) != 0 {
		t.Fatalf("len(Entries()) = %d, want 0", len(m.Entries()))
	}
	view := m.View()
	if !strings.Contains(view, "No protocols match this filter.") || !strings.Contains(view, "(0)") {
		t.Fatalf("View() = %q", view)
	}
}

func TestToneColorFallsBackToSlate(t *testing.T) {
	t.Parallel()

	if got := toneColor("BLUE"); got != toneColors["blue"] {
		t.Fatalf("toneColor(BLUE) = %q, want %q", got, toneColors["blue"])
	}
	if got := toneColor("chartreuse"); got != toneColors["slate"] {
		t.Fatalf("toneColor(chartreuse) = %q, want %q", got, toneColors["slate"])
	}
}

func TestWindowSizeIsRecorded(t *testing.T) {
	t.Parallel()

	m := press(t, New(catalog.Default()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 {
		t.Fatalf("width = %d, want 120", m.width)
	}
}
