// Package tui implements the interactive project picker: a query line with
// live fuzzy narrowing over the registry.
//
// The model owns no matching state of its own; every keystroke re-runs the
// pure fuzzy matcher over the candidate pool, so the result list is always a
// function of (query, pool, company filter).
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prjtool/prj/internal/paths"
	"github.com/prjtool/prj/internal/registry"
	"github.com/prjtool/prj/internal/search"
	"github.com/prjtool/prj/internal/ui"
)

// maxVisible bounds the rendered result list.
const maxVisible = 10

// Model is the bubbletea model for the picker.
type Model struct {
	input     textinput.Model
	pool      []registry.Project
	companies []string // cycled with tab; index 0 means no filter
	company   int
	home      string

	matches []registry.Project
	cursor  int

	choice  *registry.Project
	aborted bool
}

// NewModel builds a picker over the given pool. companies is the list of
// company filters to cycle through; the all-projects filter is always first.
func NewModel(pool []registry.Project, companies []string, home string) Model {
	input := textinput.New()
	input.Prompt = "❯ "
	input.Placeholder = "type to filter projects"
	input.Focus()

	m := Model{
		input:     input,
		pool:      pool,
		companies: append([]string{""}, companies...),
		home:      home,
	}
	m.refilter()
	return m
}

// Choice returns the picked project. ok is false when the user abandoned
// the selection.
func (m Model) Choice() (registry.Project, bool) {
	if m.aborted || m.choice == nil {
		return registry.Project{}, false
	}
	return *m.choice, true
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if len(m.matches) > 0 {
				chosen := m.matches[m.cursor]
				m.choice = &chosen
				return m, tea.Quit
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case "tab":
			m.company = (m.company + 1) % len(m.companies)
			m.refilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

// refilter recomputes the match list from the current query and company
// filter and clamps the cursor.
func (m *Model) refilter() {
	pool := search.FilterCompany(m.pool, m.companies[m.company])
	m.matches = search.FilterFuzzy(pool, m.input.Value())
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	if c := m.companies[m.company]; c != "" {
		b.WriteString("  " + ui.Muted.Render("[company: "+c+"]"))
	}
	b.WriteString("  " + ui.Muted.Render(fmt.Sprintf("%d/%d", len(m.matches), len(m.pool))))
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(ui.Muted.Render("  no matching projects") + "\n")
	}
	for i, p := range m.matches {
		if i >= maxVisible {
			b.WriteString(ui.Muted.Render(fmt.Sprintf("  … %d more", len(m.matches)-maxVisible)) + "\n")
			break
		}
		line := p.Name
		if p.Company != "" {
			line += "  " + ui.Muted.Render("("+p.Company+")")
		}
		line += "  " + ui.Muted.Render(paths.ShortenHome(p.Path, m.home))

		if i == m.cursor {
			b.WriteString(ui.AccentBold.Render("❯ ") + ui.Accent.Render(p.Name))
			if p.Company != "" {
				b.WriteString("  " + ui.Muted.Render("("+p.Company+")"))
			}
			b.WriteString("  " + ui.Muted.Render(paths.ShortenHome(p.Path, m.home)))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + ui.Hint("enter open · tab company · esc cancel") + "\n")
	return b.String()
}

// Run shows the picker and blocks until the user picks a project or cancels.
// ok is false on cancel; that outcome must never launch the editor.
func Run(pool []registry.Project, companies []string, home string) (registry.Project, bool, error) {
	final, err := tea.NewProgram(NewModel(pool, companies, home)).Run()
	if err != nil {
		return registry.Project{}, false, fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return registry.Project{}, false, fmt.Errorf("unexpected model type %T", final)
	}
	p, chosen := m.Choice()
	return p, chosen, nil
}
