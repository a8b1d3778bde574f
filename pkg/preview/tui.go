package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/factory-ai/social-rss/pkg/feed"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Screens the previewer can show. detailScreen and xmlScreen render the
// item under the cursor.
type screen int

const (
	listScreen screen = iota
	detailScreen
	xmlScreen
)

type model struct {
	items  []feed.Item
	label  string
	cursor int
	active screen
	width  int
	height int
}

func newModel(items []feed.Item, label string) model {
	return model{items: items, label: label}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.active == listScreen && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.active == listScreen && m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case "enter":
			if m.active == listScreen && len(m.items) > 0 {
				m.active = detailScreen
			}

		case "x":
			switch m.active {
			case listScreen:
				if len(m.items) > 0 {
					m.active = xmlScreen
				}
			case detailScreen:
				m.active = xmlScreen
			case xmlScreen:
				m.active = detailScreen
			}

		case "esc":
			m.active = listScreen
		}
	}

	return m, nil
}

func (m model) View() string {
	switch m.active {
	case detailScreen:
		return m.detailView()
	case xmlScreen:
		return m.xmlView()
	default:
		return m.listView()
	}
}

func (m model) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Feed preview"))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  %s · %d items", m.label, len(m.items))))
	b.WriteString("\n\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		row := FormatCompactListItem(i, m.items[i])
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("→ " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move · enter detail · x xml · q quit"))

	return b.String()
}

func (m model) detailView() string {
	if len(m.items) == 0 {
		return "nothing selected"
	}
	return FormatDetailedItem(m.items[m.cursor]) + "\n" +
		helpStyle.Render("esc back · x xml · q quit")
}

func (m model) xmlView() string {
	if len(m.items) == 0 {
		return "nothing selected"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Item XML"))
	b.WriteString("\n\n")
	b.WriteString(FormatXMLItem(m.items[m.cursor]))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc back · x detail · q quit"))

	return b.String()
}

// window picks the slice of rows that fits the terminal, keeping the cursor
// near the middle. Before the first WindowSizeMsg everything is shown.
func (m model) window() (int, int) {
	rows := len(m.items)
	if m.height <= 0 {
		return 0, rows
	}

	visible := m.height - 6
	if visible < 1 {
		visible = 1
	}
	if rows <= visible {
		return 0, rows
	}

	top := m.cursor - visible/2
	if top < 0 {
		top = 0
	}
	if top+visible > rows {
		top = rows - visible
	}
	return top, top + visible
}

// Run opens the interactive preview over items. The label appears in the
// list header, usually the file the items came from.
func Run(items []feed.Item, label string) error {
	if len(items) == 0 {
		fmt.Println("No items to preview")
		return nil
	}

	_, err := tea.NewProgram(newModel(items, label), tea.WithAltScreen()).Run()
	return err
}
