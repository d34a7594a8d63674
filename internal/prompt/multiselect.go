package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type multiSelectModel struct {
	title     string
	items     []string
	selected  map[int]bool
	cursor    int
	width     int
	cancelled bool
	confirmed bool
}

func newMultiSelectModel(title string, items []string) multiSelectModel {
	return multiSelectModel{
		title:    title,
		items:    items,
		selected: make(map[int]bool),
		width:    80,
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "a":
			all := len(m.selectedIndexes()) == len(m.items)
			for i := range m.items {
				m.selected[i] = !all
			}
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		checkbox := "[ ]"
		line := item
		if m.selected[i] {
			checkbox = selectedStyle.Render("[x]")
			line = selectedStyle.Render(item)
		}
		// Leave room for the cursor and checkbox columns.
		line = runewidth.Truncate(line, max(m.width-8, 8), "…")
		fmt.Fprintf(&b, "%s%s %s\n", cursor, checkbox, line)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: toggle • a: toggle all • enter: confirm • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m multiSelectModel) selectedIndexes() []int {
	var indexes []int
	for i := range m.items {
		if m.selected[i] {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// MultiSelect prompts the operator to pick any number of items. It returns
// the selected indexes in display order, or ErrCancelled if the operator
// backed out. Confirming with nothing toggled returns an empty selection,
// which is distinct from cancellation.
func MultiSelect(title string, items []string) ([]int, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("nothing to select: %q has no entries", title)
	}

	final, err := teaRun(newMultiSelectModel(title, items))
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(multiSelectModel)
	if !ok {
		return nil, fmt.Errorf("prompt returned unexpected model type %T", final)
	}
	if m.cancelled || !m.confirmed {
		return nil, ErrCancelled
	}
	return m.selectedIndexes(), nil
}
