package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/tui/theme"
)

var (
	pickerBoxStyle      = theme.ModalBox
	pickerTitleStyle    = theme.ModalTitle
	pickerCursorStyle   = theme.Cursor
	pickerSelectedStyle = theme.Selected
	pickerHelpStyle     = theme.ModalHelp
)

// ClientPickerModel lets the user pick a client from the roster, narrowing
// the list with fuzzy search as they type.
type ClientPickerModel struct {
	roster   []clients.Client
	filtered []int
	selected int

	searchInput textinput.Model

	width int
}

// ClientPickerResultMsg is sent when the picker closes
type ClientPickerResultMsg struct {
	Client    clients.Client
	Cancelled bool
}

// NewClientPicker creates a picker over the given roster.
func NewClientPicker(roster []clients.Client, width int) *ClientPickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()
	ti.CharLimit = 64

	m := &ClientPickerModel{
		roster:      roster,
		searchInput: ti,
		width:       width,
	}
	m.applyFilter()
	return m
}

func (m *ClientPickerModel) applyFilter() {
	query := m.searchInput.Value()
	if query == "" {
		m.filtered = make([]int, len(m.roster))
		for i := range m.roster {
			m.filtered[i] = i
		}
	} else {
		names := make([]string, len(m.roster))
		for i, c := range m.roster {
			names[i] = c.Name
		}
		matches := fuzzy.Find(query, names)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

// Update handles picker events
func (m *ClientPickerModel) Update(msg tea.Msg) (*ClientPickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg {
			return ClientPickerResultMsg{Cancelled: true}
		}

	case "enter":
		if len(m.filtered) == 0 {
			return m, nil
		}
		chosen := m.roster[m.filtered[m.selected]]
		return m, func() tea.Msg {
			return ClientPickerResultMsg{Client: chosen}
		}

	case "down", "ctrl+n":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil

	case "up", "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// View renders the picker
func (m *ClientPickerModel) View() string {
	var content string

	content += pickerTitleStyle.Render("Select Client") + "\n\n"
	content += "/ " + m.searchInput.View() + "\n\n"

	if len(m.filtered) == 0 {
		content += pickerHelpStyle.Render("(no matching clients)") + "\n"
	}

	for i, idx := range m.filtered {
		client := m.roster[idx]
		if i == m.selected {
			content += pickerCursorStyle.Render("> ") + pickerSelectedStyle.Render(client.Name) + "\n"
		} else {
			content += "  " + client.Name + "\n"
		}
	}

	content += "\n" + pickerHelpStyle.Render("[enter] select  [esc] cancel")

	return pickerBoxStyle.Width(m.width).Render(content)
}
