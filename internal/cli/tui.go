package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ganot/ticklist/internal/domain/todo"
)

// listItem adapts a todo.Item to bubbles/list.Item
type listItem struct {
	item todo.Item
}

func (i listItem) Title() string {
	box := boxUnchecked
	if i.item.Done {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.item.Text)
}

func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.item.Text
	if it.item.Done {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// uiModel drives the interactive list. Every action is a store
// command, so mutations are persisted as they happen.
type uiModel struct {
	store *todo.Store
	list  list.Model

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	width  int
	height int
	err    error
}

// runInteractiveList starts the Bubble Tea list over the store.
func runInteractiveList(store *todo.Store) error {
	items := store.Todos()

	l := list.New(toListItems(items), itemDelegate{}, 0, 0)
	l.Title = listTitle(items)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, addBind, delBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, addBind, delBind} }

	m := uiModel{
		store: store,
		list:  l,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item..."
	m.ti.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if fm, isUI := finalModel.(uiModel); isUI && fm.err != nil {
		return fm.err
	}
	return nil
}

func (m uiModel) Init() tea.Cmd { return nil }

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, isSize := msg.(tea.WindowSizeMsg); isSize {
		m.width, m.height = size.Width, size.Height
		m.list.SetSize(m.listWidth(), m.listHeight())
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
			switch keyMsg.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				if text == "" {
					m.addErr = "Text cannot be empty"
					return m, nil
				}
				items, err := m.store.Add(context.Background(), text)
				if err != nil {
					m.err = err
					return m, tea.Quit
				}
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				m.addErr = ""
				return m, m.setItems(items)
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// Let the filter input consume keys while it is active.
	if m.list.FilterState() != list.Filtering {
		if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
			switch keyMsg.String() {
			case "q", "esc":
				return m, tea.Quit
			case " ":
				if li, selected := m.selected(); selected {
					items, err := m.store.Toggle(context.Background(), li.item.ID)
					if err != nil {
						m.err = err
						return m, tea.Quit
					}
					return m, m.setItems(items)
				}
				return m, nil
			case "d":
				if li, selected := m.selected(); selected {
					items, err := m.store.Remove(context.Background(), li.item.ID)
					if err != nil {
						m.err = err
						return m, tea.Quit
					}
					return m, m.setItems(items)
				}
				return m, nil
			case "a":
				m.adding = true
				m.ti.SetValue("")
				m.ti.Focus()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m uiModel) View() string {
	m.list.SetSize(m.listWidth(), m.listHeight())

	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new item"
		if m.addErr != "" {
			title += ": " + errorStyle.Render(m.addErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.ti.View())
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(content)
}

func (m *uiModel) selected() (listItem, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return listItem{}, false
	}
	li, isItem := m.list.Items()[i].(listItem)
	return li, isItem
}

// setItems replaces the visible list with a fresh store snapshot.
func (m *uiModel) setItems(items []todo.Item) tea.Cmd {
	m.list.Title = listTitle(items)
	return m.list.SetItems(toListItems(items))
}

func (m uiModel) listWidth() int {
	if m.width == 0 {
		return 76
	}
	return m.width - 4
}

func (m uiModel) listHeight() int {
	h := m.height
	if h == 0 {
		h = 24
	}
	if m.adding {
		return h - 6
	}
	return h - 4
}

func toListItems(items []todo.Item) []list.Item {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}
	return li
}

func listTitle(items []todo.Item) string {
	dn, pn := stats(items)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), len(items),
	)
}
