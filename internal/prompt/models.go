package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/projkit-labs/projkit/internal/pkgmanager"
	"github.com/projkit-labs/projkit/internal/tools"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// toolsModel is a two-column table: each row is a tool, the columns are
// Wanted and Unwanted.
type toolsModel struct {
	rows     []tools.ToolName
	unwanted []bool
	cursor   int
	done     bool
	aborted  bool
}

func newToolsModel(rows []tools.ToolName, unwanted []bool) toolsModel {
	u := make([]bool, len(rows))
	copy(u, unwanted)
	return toolsModel{rows: rows, unwanted: u}
}

func (m toolsModel) Init() tea.Cmd { return nil }

func (m toolsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "left", "h":
		m.unwanted = m.withRow(false)
	case "right", "l":
		m.unwanted = m.withRow(true)
	case " ", "space":
		if len(m.unwanted) > 0 {
			m.unwanted = m.withRow(!m.unwanted[m.cursor])
		}
	}
	return m, nil
}

// withRow returns a copy of the flags with the cursor row set, so earlier
// model values stay unchanged.
func (m toolsModel) withRow(unwanted bool) []bool {
	u := make([]bool, len(m.unwanted))
	copy(u, m.unwanted)
	if len(u) > 0 {
		u[m.cursor] = unwanted
	}
	return u
}

func (m toolsModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("? "+toolsQuestion) + "\n")
	if m.done {
		var picked []string
		for i, name := range m.rows {
			if !m.unwanted[i] {
				picked = append(picked, string(name))
			}
		}
		b.WriteString("  " + strings.Join(picked, ", ") + "\n")
		return b.String()
	}

	width := 0
	for _, name := range m.rows {
		if len(name) > width {
			width = len(name)
		}
	}
	fmt.Fprintf(&b, "  %-*s  Wanted  Unwanted\n", width, "")
	for i, name := range m.rows {
		pointer := " "
		if i == m.cursor {
			pointer = cursorStyle.Render(">")
		}
		wanted, unwanted := "( )", "( )"
		if m.unwanted[i] {
			unwanted = "(*)"
		} else {
			wanted = "(*)"
		}
		fmt.Fprintf(&b, "%s %-*s   %s     %s\n", pointer, width, name, wanted, unwanted)
	}
	b.WriteString(hintStyle.Render("  ↑/↓ move · ←/→ or space toggle · enter confirm") + "\n")
	return b.String()
}

// managerModel is a single-choice list.
type managerModel struct {
	choices []pkgmanager.Manager
	cursor  int
	done    bool
	aborted bool
}

func newManagerModel(choices []pkgmanager.Manager, cursor int) managerModel {
	return managerModel{choices: choices, cursor: cursor}
}

func (m managerModel) Init() tea.Cmd { return nil }

func (m managerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m managerModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("? "+managerQuestion) + "\n")
	if m.done {
		b.WriteString("  " + string(m.choices[m.cursor]) + "\n")
		return b.String()
	}
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+string(c)) + "\n")
			continue
		}
		b.WriteString("  " + string(c) + "\n")
	}
	return b.String()
}
