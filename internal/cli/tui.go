package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// RevealModel - Interactive assignment reveal
// =============================================================================

// RevealModel is the bubbletea model for revealing assignments one giver
// at a time. A receiver is visible only while the giver's row is open;
// moving the cursor hides it again so the next person at the keyboard
// sees nothing they should not.
type RevealModel struct {
	Assignments []exchange.Assignment
	Cursor      int
	Shown       bool
	Seen        map[int]bool
	Height      int
	Offset      int
}

// NewRevealModel creates a new reveal model for the given cycle.
func NewRevealModel(cycle exchange.Cycle) RevealModel {
	return RevealModel{
		Assignments: cycle,
		Cursor:      0,
		Seen:        make(map[int]bool),
		Height:      15,
		Offset:      0,
	}
}

func (m RevealModel) Init() tea.Cmd {
	return nil
}

func (m RevealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.Shown = false
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Assignments)-1 {
				m.Cursor++
				m.Shown = false
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Shown = true
			m.Seen[m.Cursor] = true
		case "h":
			m.Shown = false
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RevealModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Secret Santa Reveal"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ reveal  h hide  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Assignments) {
		end = len(m.Assignments)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		a := m.Assignments[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		status := "hidden"
		if i == m.Cursor && m.Shown {
			status = iconArrow + " " + a.Receiver
		} else if m.Seen[i] {
			status = "revealed " + iconSuccess
		}

		rows = append(rows, []string{cursor, a.Giver, status})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Giver", "Gives to").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Assignments) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			if col == 2 {
				if isCurrent && m.Shown {
					return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
				}
				return listDimStyle
			}
			if isCurrent {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d revealed]", len(m.Seen), len(m.Assignments))))

	return b.String()
}
