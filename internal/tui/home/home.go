package home

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/logs"
	"github.com/yong-ling/noteapp/internal/notes"
	"github.com/yong-ling/noteapp/internal/tui/messages"
	"github.com/yong-ling/noteapp/internal/tui/shared"
	"github.com/yong-ling/noteapp/internal/tui/theme"
)

const emptyPlaceholder = "No notes found. Press 'a' to create one."

var (
	titleStyle       = theme.Title
	cursorStyle      = theme.Cursor
	clientStyle      = theme.ClientName
	categoryStyle    = theme.Category
	previewStyle     = lipgloss.NewStyle().Foreground(theme.Text)
	placeholderStyle = theme.Muted
	errorStyle       = theme.Error
)

// Model is the note list view. Every activation re-reads the persisted
// collection and the client roster; nothing is shared with the form view.
type Model struct {
	svc       notes.Service
	directory clients.Directory

	collection []notes.Note

	cursor       int
	scrollOffset int

	confirmationModal *shared.ConfirmationModal
	pendingDeleteID   string

	statusErr string

	width  int
	height int
}

// New creates the note list view and performs its first load.
func New(svc notes.Service, directory clients.Directory) Model {
	m := Model{svc: svc, directory: directory}
	m.Refresh()
	return m
}

// SetSize updates the dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// Refresh re-reads the collection from the store and rebuilds display
// state. Called on activation, on return from the form, and on out-of-band
// store changes.
func (m *Model) Refresh() {
	if err := m.svc.Reload(); err != nil {
		logs.Logger.Printf("Error loading notes: %v", err)
		m.statusErr = fmt.Sprintf("Could not load notes: %v", err)
		return
	}
	collection, err := m.svc.List()
	if err != nil {
		logs.Logger.Printf("Error listing notes: %v", err)
		m.statusErr = fmt.Sprintf("Could not load notes: %v", err)
		return
	}
	m.collection = collection
	m.statusErr = ""
	if m.cursor >= len(m.collection) {
		m.cursor = max(0, len(m.collection)-1)
	}
	m.ensureCursorVisible()
}

// IsInModalState reports whether a modal owns the keyboard.
func (m *Model) IsInModalState() bool {
	return m.confirmationModal != nil
}

// Update handles messages for the note list view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.ConfirmationResultMsg:
		return m.handleConfirmationResult(msg)

	case tea.KeyMsg:
		if m.confirmationModal != nil {
			return m, m.confirmationModal.Update(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g":
		m.cursor = 0
		m.ensureCursorVisible()
	case "G":
		m.cursor = max(0, len(m.collection)-1)
		m.ensureCursorVisible()
	case "a", "n":
		return m, messages.OpenNoteForm("")
	case "enter":
		if m.cursor < len(m.collection) {
			return m, messages.OpenNoteForm(m.collection[m.cursor].ID)
		}
	case "d", "x":
		if m.cursor < len(m.collection) {
			note := m.collection[m.cursor]
			m.pendingDeleteID = note.ID
			m.confirmationModal = shared.NewConfirmationModal(
				"Confirm Deletion",
				"Are you sure you want to delete this note?",
				44,
			)
		}
	}
	return m, nil
}

func (m Model) handleConfirmationResult(msg shared.ConfirmationResultMsg) (Model, tea.Cmd) {
	m.confirmationModal = nil
	id := m.pendingDeleteID
	m.pendingDeleteID = ""

	if !msg.Confirmed || id == "" {
		return m, nil
	}

	// Optimistic: drop the row locally, then persist. On failure, reload
	// so the display matches what is actually stored.
	m.collection = notes.Remove(m.collection, id)
	if m.cursor >= len(m.collection) {
		m.cursor = max(0, len(m.collection)-1)
	}

	if err := m.svc.Delete(id); err != nil {
		logs.Logger.Printf("Error deleting note %s: %v", id, err)
		// Reload first: Refresh clears the status line, so the error must
		// be set after the display is reconciled with the store.
		m.Refresh()
		m.statusErr = fmt.Sprintf("Delete failed: %v", err)
		return m, nil
	}

	m.statusErr = ""
	m.ensureCursorVisible()
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.collection) {
		m.cursor = max(0, len(m.collection)-1)
	}
	m.ensureCursorVisible()
}

func (m *Model) visibleRows() int {
	// Title block and status line take a few rows
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// View renders the note list
func (m Model) View() string {
	if m.confirmationModal != nil {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.confirmationModal.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("My Notes"))
	b.WriteString("\n\n")

	if len(m.collection) == 0 {
		b.WriteString(placeholderStyle.Render(emptyPlaceholder))
	} else {
		b.WriteString(m.renderRows())
	}

	if m.statusErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.statusErr))
	}

	return b.String()
}

func (m Model) renderRows() string {
	var b strings.Builder

	visible := m.visibleRows()
	end := m.scrollOffset + visible
	if end > len(m.collection) {
		end = len(m.collection)
	}

	for i := m.scrollOffset; i < end; i++ {
		note := m.collection[i]
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + m.renderRow(note) + "\n")
	}

	return b.String()
}

func (m Model) renderRow(note notes.Note) string {
	name := m.directory.ResolveName(note.ClientID)

	previewWidth := m.width - lipgloss.Width(name) - lipgloss.Width(note.Category) - 10
	if previewWidth < 12 {
		previewWidth = 12
	}

	return clientStyle.Render(name) +
		"  " + categoryStyle.Render("["+note.Category+"]") +
		"  " + previewStyle.Render(note.Preview(previewWidth))
}
