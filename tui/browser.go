package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mytheresa/product-categories/catalog"
)

// Browser is the catalog as seen by the interactive view.
type Browser interface {
	Owners() []string
	Browse(criteria catalog.Criteria) catalog.Result
}

// BrowserModel is the Bubbletea model of the interactive product table.
// Every key press recomputes the visible rows synchronously.
type BrowserModel struct {
	browser  Browser
	owners   []string
	ownerIdx int
	search   textinput.Model
	result   catalog.Result
}

func NewBrowserModel(b Browser) BrowserModel {
	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "Search: "
	search.Focus()

	m := BrowserModel{
		browser: b,
		owners:  b.Owners(),
		search:  search,
	}
	m.refresh()
	return m
}

func (m BrowserModel) Init() tea.Cmd {
	return textinput.Blink
}

// Criteria is the current filter state.
func (m BrowserModel) Criteria() catalog.Criteria {
	owner := catalog.AllOwners
	if len(m.owners) > 0 {
		owner = m.owners[m.ownerIdx]
	}
	return catalog.Criteria{Owner: owner, Query: m.search.Value()}
}

// Result is the currently visible view.
func (m BrowserModel) Result() catalog.Result {
	return m.result
}

func (m *BrowserModel) refresh() {
	m.result = m.browser.Browse(m.Criteria())
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			if len(m.owners) > 0 {
				m.ownerIdx = (m.ownerIdx + 1) % len(m.owners)
			}
		case "shift+tab":
			if len(m.owners) > 0 {
				m.ownerIdx = (m.ownerIdx - 1 + len(m.owners)) % len(m.owners)
			}
		case "esc":
			m.search.SetValue("")
		case "ctrl+r":
			m.ownerIdx = 0
			m.search.SetValue("")
		default:
			m.search, cmd = m.search.Update(msg)
		}
		m.refresh()
		return m, cmd
	}

	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Product Categories"))
	b.WriteString("\n")

	tabs := make([]string, len(m.owners))
	for i, o := range m.owners {
		if i == m.ownerIdx {
			tabs[i] = activeTabStyle.Render(o)
		} else {
			tabs[i] = tabStyle.Render(o)
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	b.WriteString(RenderTable(m.result.Products))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(strings.Join([]string{
		FormatKey("tab/shift+tab", "owner"),
		FormatKey("esc", "clear search"),
		FormatKey("ctrl+r", "reset all filters"),
		FormatKey("ctrl+c", "quit"),
	}, "  ")))
	b.WriteString("\n")

	return b.String()
}
