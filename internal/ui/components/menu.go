package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Detail string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu. Rendering is left to the owning
// screen so each screen can draw its own buttons.
type Menu struct {
	Items    []MenuItem
	Selected int

	// Shortcuts limits number-key activation to the first n items.
	// Zero allows every item.
	Shortcuts int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation. Number keys jump straight to an item
// and activate it.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "shift+tab":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j", "tab":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter", "space":
		return m, m.activate()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < m.shortcutCount() {
				m.Selected = idx
				return m, m.activate()
			}
		}
	}

	return m, nil
}

func (m Menu) shortcutCount() int {
	if m.Shortcuts > 0 && m.Shortcuts < len(m.Items) {
		return m.Shortcuts
	}
	return len(m.Items)
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	if item := m.Items[m.Selected]; item.Action != nil {
		return item.Action()
	}
	return nil
}
