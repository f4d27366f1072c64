// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     cheatsheet
// Description: Interactive cheatsheet browser
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package cheatsheet is a terminal browser for the reference sheets of
// pkg/cheatsheet. Tabs switch between groups and "/" filters the rows of the
// current sheet.
package cheatsheet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/tidystring/foundation/utils/slicex"
	sheets "github.com/msto63/tidystring/pkg/cheatsheet"
)

// Model is the bubbletea model of the browser.
type Model struct {
	groups []string
	active int

	sheet   *sheets.Sheet
	visible int

	filter    textinput.Model
	filtering bool

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	err error
}

// New creates a browser opened on group. An empty group opens the combined
// sheet.
func New(group string) (Model, error) {
	if group == "" {
		group = sheets.GroupAll
	}

	groups := append([]string{sheets.GroupAll}, sheets.Groups()...)
	active := -1
	for i, g := range groups {
		if g == group {
			active = i
		}
	}
	if active < 0 {
		_, err := sheets.Get(group)
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "filter rows"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	m := Model{
		groups: groups,
		active: active,
		filter: ti,
	}
	m.load()
	return m, nil
}

// Group returns the group shown.
func (m Model) Group() string { return m.groups[m.active] }

// Sheet returns the sheet shown, with the filter applied.
func (m Model) Sheet() *sheets.Sheet { return m.filtered() }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + tabs
		footerHeight := 3 // Filter + help
		viewportHeight := max(msg.Height-headerHeight-footerHeight-2, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input while browsing
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "tab", "right", "l":
		m.active = (m.active + 1) % len(m.groups)
		m.load()
		return m, nil

	case "shift+tab", "left", "h":
		m.active = (m.active - 1 + len(m.groups)) % len(m.groups)
		m.load()
		return m, nil

	case "/":
		m.filtering = true
		return m, m.filter.Focus()

	case "g":
		m.viewport.GotoTop()
		return m, nil

	case "G":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleFilterKey handles keyboard input while the filter is focused
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtering = false
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		m.filter.Blur()
		m.filtering = false
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.updateViewportContent()
	return m, cmd
}

func (m *Model) load() {
	sheet, err := sheets.Get(m.groups[m.active])
	m.sheet, m.err = sheet, err
	m.updateViewportContent()
	if m.ready {
		m.viewport.GotoTop()
	}
}

// filtered returns the current sheet reduced to the rows containing the
// filter text in any cell, ignoring case.
func (m Model) filtered() *sheets.Sheet {
	if m.sheet == nil {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if needle == "" {
		return m.sheet
	}

	rows := slicex.Filter(m.sheet.Rows, func(row []string) bool {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				return true
			}
		}
		return false
	})
	return &sheets.Sheet{Group: m.sheet.Group, Columns: m.sheet.Columns, Rows: rows}
}

func (m *Model) updateViewportContent() {
	sheet := m.filtered()
	if sheet == nil {
		m.visible = 0
		return
	}
	m.visible = len(sheet.Rows)
	if !m.ready {
		return
	}
	m.viewport.SetContent(sheets.Table(sheet).Render())
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading cheatsheet..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(SheetPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	total := 0
	if m.sheet != nil {
		total = len(m.sheet.Rows)
	}
	count := HelpDescStyle.Render(fmt.Sprintf("[%d/%d rows]", m.visible, total))
	return lipgloss.JoinHorizontal(lipgloss.Center, LogoStyle.Render(Logo), "  ", count)
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.groups))
	for i, g := range m.groups {
		if i == m.active {
			tabs[i] = ActiveTabStyle.Render(g)
		} else {
			tabs[i] = TabStyle.Render(g)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFilterBar() string {
	if m.err != nil {
		return ErrorStyle.Render(m.err.Error())
	}
	if m.filtering {
		return m.filter.View()
	}
	if v := m.filter.Value(); v != "" {
		return FilterStyle.Render("filter: " + v)
	}
	return ""
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderHelpItem("tab", "next group"),
		RenderHelpItem("shift+tab", "previous group"),
		RenderHelpItem("/", "filter"),
		RenderHelpItem("↑/↓", "scroll"),
		RenderHelpItem("q", "quit"),
	}
	return strings.Join(items, "  ")
}

// Run starts the browser on the terminal and blocks until it is closed.
func Run(group string) error {
	m, err := New(group)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
