// Package tui is a terminal protocol browser driven by the same selection
// holder and projector as the web UI.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/protocols/selection"
)

// CatalogReader is the read surface the terminal browser needs.
type CatalogReader interface {
	selection.Labeler
	Categories() []catalog.Category
	Subcategories(categoryID string) []catalog.Subcategory
	Project(filter catalog.Filter) []catalog.Entry
}

type pane int

const (
	paneCategories pane = iota
	paneSubcategories
	paneProtocols
)

// Model is the bubbletea model for the terminal browser.
type Model struct {
	catalog CatalogReader
	holder  *selection.Holder
	keys    KeyMap

	focus    pane
	cursors  [3]int
	entries  []catalog.Entry
	width    int
	quitting bool
}

// New returns a browser with nothing selected.
func New(reader CatalogReader) Model {
	m := Model{
		catalog: reader,
		holder:  selection.NewHolder(),
		keys:    DefaultKeyMap(),
	}
	m.entries = reader.Project(m.holder.Current())
	return m
}

// Selection returns the current filter.
func (m Model) Selection() selection.Selection {
	return m.holder.Current()
}

// Entries returns the protocols visible under the current filter.
func (m Model) Entries() []catalog.Entry {
	return m.entries
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Next):
		m.focus = m.nextPane(1)
	case key.Matches(msg, m.keys.Prev):
		m.focus = m.nextPane(-1)
	case key.Matches(msg, m.keys.Select):
		m.selectAtCursor()
	case key.Matches(msg, m.keys.Clear):
		m.holder.Clear()
		m.focus = paneCategories
		m.refresh()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	size := m.paneSize(m.focus)
	if size == 0 {
		m.cursors[m.focus] = 0
		return
	}
	next := m.cursors[m.focus] + delta
	if next < 0 {
		next = 0
	}
	if next >= size {
		next = size - 1
	}
	m.cursors[m.focus] = next
}

func (m *Model) selectAtCursor() {
	switch m.focus {
	case paneCategories:
		categories := m.catalog.Categories()
		if len(categories) == 0 {
			return
		}
		m.holder.SelectCategory(categories[m.cursors[paneCategories]].ID)
		m.cursors[paneSubcategories] = 0
		if m.paneSize(paneSubcategories) > 0 {
			m.focus = paneSubcategories
		}
	case paneSubcategories:
		subcategories := m.currentSubcategories()
		if len(subcategories) == 0 {
			return
		}
		m.holder.SelectSubcategory(subcategories[m.cursors[paneSubcategories]].ID)
		m.focus = paneProtocols
	default:
		return
	}
	m.refresh()
}

// refresh reprojects the catalog and clamps the protocol cursor.
func (m *Model) refresh() {
	m.entries = m.catalog.Project(m.holder.Current())
	m.cursors[paneProtocols] = 0
}

func (m Model) nextPane(step int) pane {
	panes := []pane{paneCategories}
	if m.paneSize(paneSubcategories) > 0 {
		panes = append(panes, paneSubcategories)
	}
	panes = append(panes, paneProtocols)
	for idx, candidate := range panes {
		if candidate == m.focus {
			return panes[(idx+step+len(panes))%len(panes)]
		}
	}
	return paneCategories
}

func (m Model) paneSize(p pane) int {
	switch p {
	case paneCategories:
		return len(m.catalog.Categories())
	case paneSubcategories:
		return len(m.currentSubcategories())
	default:
		return len(m.entries)
	}
}

func (m Model) currentSubcategories() []catalog.Subcategory {
	categoryID, ok := m.holder.Current().Category()
	if !ok {
		return nil
	}
	return m.catalog.Subcategories(categoryID)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	current := m.holder.Current()
	categoryID, _ := current.Category()
	subcategoryID, _ := current.Subcategory()

	var b strings.Builder
	b.WriteString(titleStyle.Render("EMS Patient Care Protocols"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Evidence-based protocols for emergency medical services"))
	b.WriteString("\n\n")
	b.WriteString("Showing: ")
	b.WriteString(labelStyle.Render(current.Label(m.catalog)))
	b.WriteString(" ")
	b.WriteString(countStyle.Render(fmt.Sprintf("(%d)", len(m.entries))))
	b.WriteString("\n")

	columns := []string{m.renderCategories(categoryID)}
	if subcategories := m.currentSubcategories(); len(subcategories) > 0 {
		columns = append(columns, m.renderSubcategories(subcategories, subcategoryID))
	}
	columns = append(columns, m.renderProtocols())
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if m.width > 0 {
		body = lipgloss.NewStyle().MaxWidth(m.width).Render(body)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderCategories(selectedID string) string {
	lines := []string{headingStyle.Render("Categories")}
	for idx, category := range m.catalog.Categories() {
		label := m.catalog.CategoryLabel(category.ID)
		lines = append(lines, m.cursorPrefix(paneCategories, idx)+toneStyle(category.Color, category.ID == selectedID).Render(label))
	}
	return m.paneFrame(paneCategories).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSubcategories(subcategories []catalog.Subcategory, selectedID string) string {
	categoryID, _ := m.holder.Current().Category()
	lines := []string{headingStyle.Render("Subcategories")}
	for idx, subcategory := range subcategories {
		label := m.catalog.SubcategoryLabel(categoryID, subcategory.ID)
		lines = append(lines, m.cursorPrefix(paneSubcategories, idx)+toneStyle(subcategory.Color, subcategory.ID == selectedID).Render(label))
	}
	return m.paneFrame(paneSubcategories).Render(strings.Join(lines, "\n"))
}

func (m Model) renderProtocols() string {
	lines := []string{headingStyle.Render("Protocols")}
	if len(m.entries) == 0 {
		lines = append(lines, emptyStyle.Render("No protocols match this filter."))
	}
	for idx, entry := range m.entries {
		badges := countStyle.Render(entry.CategoryLabel + " · " + entry.SubcategoryLabel)
		lines = append(lines, m.cursorPrefix(paneProtocols, idx)+entry.Title+"  "+badges)
	}
	return m.paneFrame(paneProtocols).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, binding := range m.keys.help() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func (m Model) cursorPrefix(p pane, idx int) string {
	if m.focus == p && m.cursors[p] == idx {
		return cursorMark + " "
	}
	return "  "
}

func (m Model) paneFrame(p pane) lipgloss.Style {
	if m.focus == p {
		return focusedPane
	}
	return paneStyle
}
