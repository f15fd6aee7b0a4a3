package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pidcanvas/pidcanvas/pkg/symbols"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(palette.accent)
	listDimStyle      = lipgloss.NewStyle().Foreground(palette.faint)
)

// =============================================================================
// MatchExplorerModel - Interactive label matching
// =============================================================================

// MatchExplorerModel is the bubbletea model for the interactive match
// explorer. The user types a label and sees the scored candidates update
// live; enter accepts the best candidate.
type MatchExplorerModel struct {
	matcher *symbols.Matcher

	Input      string
	Candidates []symbols.Candidate
	Accepted   string
}

// NewMatchExplorerModel creates an explorer backed by a loaded matcher.
func NewMatchExplorerModel(m *symbols.Matcher) MatchExplorerModel {
	return MatchExplorerModel{matcher: m}
}

func (m MatchExplorerModel) Init() tea.Cmd {
	return nil
}

func (m MatchExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if name, ok := m.matcher.FindBest(m.Input); ok {
			m.Accepted = name
		}
		return m, tea.Quit
	case "backspace":
		if m.Input != "" {
			m.Input = m.Input[:len(m.Input)-1]
		}
	default:
		if key.Type == tea.KeyRunes || key.String() == " " {
			m.Input += key.String()
		}
	}

	m.Candidates = nil
	if strings.TrimSpace(m.Input) != "" {
		m.Candidates = m.matcher.Explain(m.Input)
	}
	return m, nil
}

func (m MatchExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Match Explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type a label  ⏎ accept best  esc quit"))
	b.WriteString("\n\n")
	b.WriteString("label: ")
	b.WriteString(StyleValue.Render(m.Input))
	b.WriteString("▌\n\n")

	if len(m.Candidates) == 0 {
		b.WriteString(listDimStyle.Render("no candidates yet"))
		b.WriteString("\n")
		return b.String()
	}

	const maxShown = 8
	rows := [][]string{}
	for i, cand := range m.Candidates {
		if i == maxShown {
			break
		}
		name := cand.Name
		if i == 0 {
			name = listSelectedStyle.Render(name)
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%.3f", cand.Blended),
			fmt.Sprintf("%.2f", cand.Token),
			fmt.Sprintf("%.2f", cand.Edit),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(palette.faint)).
		Headers("Symbol", "Blended", "Token", "Edit").
		Rows(rows...)

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
