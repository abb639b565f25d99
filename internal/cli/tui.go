package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/mvnsrc/pkg/maven"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// DependencyPickerModel - Interactive dependency selection
// =============================================================================

// DependencyPickerModel is the bubbletea model for choosing which
// dependencies to extract. Space toggles the entry under the cursor, "a"
// flips the whole set, enter confirms the selection.
type DependencyPickerModel struct {
	Deps     []maven.Dependency
	Checked  []bool
	Cursor   int
	Height   int
	Offset   int
	Accepted bool
}

// NewDependencyPickerModel creates a picker with every dependency
// preselected.
func NewDependencyPickerModel(deps []maven.Dependency) DependencyPickerModel {
	checked := make([]bool, len(deps))
	for i := range checked {
		checked[i] = true
	}
	return DependencyPickerModel{
		Deps:    deps,
		Checked: checked,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m DependencyPickerModel) Init() tea.Cmd {
	return nil
}

func (m DependencyPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Deps)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			if len(m.Checked) > 0 {
				m.Checked[m.Cursor] = !m.Checked[m.Cursor]
			}
		case "a":
			all := !m.allChecked()
			for i := range m.Checked {
				m.Checked[i] = all
			}
		case "enter":
			m.Accepted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DependencyPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dependencies"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Deps) {
		end = len(m.Deps)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Deps[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		checkbox := "[ ]"
		if m.Checked[i] {
			checkbox = "[x]"
		}

		scope := d.Scope
		if scope == "" {
			scope = "-"
		}

		rows = append(rows, []string{cursor, checkbox, d.GroupID, d.ArtifactID, d.Version, scope})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Group", "Artifact", "Version", "Scope").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Deps) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor
			isChecked := m.Checked[actualIdx]

			base := lipgloss.NewStyle()
			if col == 5 {
				base = base.Foreground(colorDim)
			}

			if isCurrent {
				if isChecked && col != 5 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			if isChecked {
				if col != 5 {
					return base.Foreground(colorGreen)
				}
				return base
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Deps))))
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("  %d selected", m.countChecked())))

	return b.String()
}

// Selected returns the chosen dependencies in tree order, or nil when the
// picker was dismissed without confirming.
func (m DependencyPickerModel) Selected() []maven.Dependency {
	if !m.Accepted {
		return nil
	}
	var out []maven.Dependency
	for i, d := range m.Deps {
		if m.Checked[i] {
			out = append(out, d)
		}
	}
	return out
}

func (m DependencyPickerModel) allChecked() bool {
	for _, c := range m.Checked {
		if !c {
			return false
		}
	}
	return len(m.Checked) > 0
}

func (m DependencyPickerModel) countChecked() int {
	n := 0
	for _, c := range m.Checked {
		if c {
			n++
		}
	}
	return n
}
