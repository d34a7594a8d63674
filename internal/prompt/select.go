package prompt

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the operator backs out of a prompt. It is
// not a failure; flows treat it as "abort the current flow, keep the
// session".
var ErrCancelled = errors.New("prompt cancelled")

// NoPreselect disables preselection in Select.
const NoPreselect = -1

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// teaRun is swapped out in tests so prompt programs never need a TTY.
var teaRun = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

type selectItem string

func (i selectItem) FilterValue() string { return string(i) }
func (i selectItem) Title() string       { return string(i) }
func (i selectItem) Description() string { return "" }

type selectModel struct {
	list      list.Model
	choice    int
	cancelled bool
}

func newSelectModel(title string, items []string, preselect int) selectModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = selectItem(item)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(listItems, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	if preselect >= 0 && preselect < len(items) {
		l.Select(preselect)
	}

	return selectModel{list: l, choice: NoPreselect}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		// Don't intercept keys while the operator is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			m.choice = m.list.Index()
			return m, tea.Quit
		case "y":
			if item, ok := m.list.SelectedItem().(selectItem); ok {
				// Best effort; a headless session without a clipboard
				// provider should not break the prompt.
				_ = clipboard.WriteAll(string(item))
			}
			return m, nil
		case "esc", "q", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	return m.list.View() + "\n" + helpStyle.Render("enter: choose • y: copy • esc: cancel")
}

// Select prompts the operator to pick one of items, highlighting the entry
// at preselect first (NoPreselect for none). It returns the chosen index, or
// ErrCancelled if the operator backed out.
func Select(title string, items []string, preselect int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to select: %q has no entries", title)
	}

	final, err := teaRun(newSelectModel(title, items, preselect))
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(selectModel)
	if !ok {
		return 0, fmt.Errorf("prompt returned unexpected model type %T", final)
	}
	if m.cancelled || m.choice == NoPreselect {
		return 0, ErrCancelled
	}
	return m.choice, nil
}
