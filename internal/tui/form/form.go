package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/logs"
	"github.com/yong-ling/noteapp/internal/notes"
	"github.com/yong-ling/noteapp/internal/tui/messages"
	"github.com/yong-ling/noteapp/internal/tui/shared"
	"github.com/yong-ling/noteapp/internal/tui/theme"
)

// Mode is fixed at entry for the lifetime of the view.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

type focusField int

const (
	focusClient focusField = iota
	focusCategory
	focusText
)

var (
	formTitleStyle   = theme.Title
	labelStyle       = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	labelFocusStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)
	valueStyle       = lipgloss.NewStyle().Foreground(theme.Text)
	valueEmptyStyle  = theme.Muted
	noticeStyle      = theme.Warn
	formErrorStyle   = theme.Error
	formHelpStyle    = theme.HelpHint
	categoryArrStyle = theme.Muted
)

// Model is the note form view. Create mode starts blank; edit mode seeds
// the fields from the record matching the target id.
type Model struct {
	svc       notes.Service
	directory clients.Directory

	mode   Mode
	noteID string

	// recordMissing marks the explicit "edit target not found" state: the
	// form stays on blank initial values and saving creates a new note.
	recordMissing bool

	roster      []clients.Client
	clientID    string
	categoryIdx int
	textInput   textarea.Model

	focus focusField

	picker            *ClientPickerModel
	confirmationModal *shared.ConfirmationModal

	errMsg string

	width  int
	height int
}

// New creates the form view. An empty noteID enters create mode; otherwise
// edit mode for that note. Activation re-reads both the note collection
// and the roster.
func New(svc notes.Service, directory clients.Directory, noteID string) Model {
	if err := svc.Reload(); err != nil {
		logs.Logger.Printf("Error loading notes for form: %v", err)
	}

	ta := textarea.New()
	ta.Placeholder = "Enter your note details here..."
	ta.CharLimit = 0
	ta.SetHeight(6)

	m := Model{
		svc:       svc,
		directory: directory,
		roster:    directory.ListAll(),
		textInput: ta,
		focus:     focusClient,
	}

	if noteID == "" {
		m.mode = ModeCreate
		return m
	}

	m.mode = ModeEdit
	m.noteID = noteID

	existing, err := svc.Get(noteID)
	if err != nil {
		logs.Logger.Printf("Edit target %s not found: %v", noteID, err)
		m.recordMissing = true
		return m
	}

	m.clientID = existing.ClientID
	m.categoryIdx = categoryIndex(existing.Category)
	m.textInput.SetValue(existing.Text)
	return m
}

func categoryIndex(category string) int {
	for i, c := range notes.Categories {
		if c == category {
			return i
		}
	}
	return 0
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize updates the dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textInput.SetWidth(min(width-8, 76))
}

// IsInModalState reports whether a picker or modal owns the keyboard.
func (m *Model) IsInModalState() bool {
	return m.picker != nil || m.confirmationModal != nil
}

// Update handles messages for the form view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClientPickerResultMsg:
		if !msg.Cancelled {
			m.clientID = msg.Client.ID
			m.errMsg = ""
		}
		m.picker = nil
		return m, nil

	case shared.ConfirmationResultMsg:
		return m.handleConfirmationResult(msg)
	}

	if m.picker != nil {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	if m.confirmationModal != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m, m.confirmationModal.Update(keyMsg)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	// Forward non-key messages (like blink) to the textarea
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Navigating away discards in-memory edits; no draft is kept
		return m, messages.BackHome()

	case "ctrl+s":
		return m.save()

	case "ctrl+d":
		if m.mode == ModeEdit && !m.recordMissing {
			m.confirmationModal = shared.NewConfirmationModal(
				"Confirm Deletion",
				"Are you sure you want to delete this note?",
				44,
			)
		}
		return m, nil

	case "tab":
		m.setFocus(m.nextField(1))
		return m, nil

	case "shift+tab":
		m.setFocus(m.nextField(-1))
		return m, nil
	}

	switch m.focus {
	case focusClient:
		switch msg.String() {
		case "enter", " ":
			m.picker = NewClientPicker(m.roster, min(m.width-6, 48))
			return m, nil
		}

	case focusCategory:
		switch msg.String() {
		case "l", "right", "enter", " ":
			m.categoryIdx = (m.categoryIdx + 1) % len(notes.Categories)
			return m, nil
		case "h", "left":
			m.categoryIdx = (m.categoryIdx + len(notes.Categories) - 1) % len(notes.Categories)
			return m, nil
		}

	case focusText:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		m.errMsg = ""
		return m, cmd
	}

	return m, nil
}

func (m *Model) nextField(delta int) focusField {
	fields := 3
	return focusField((int(m.focus) + delta + fields) % fields)
}

func (m *Model) setFocus(f focusField) {
	m.focus = f
	if f == focusText {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

func (m Model) save() (Model, tea.Cmd) {
	category := notes.Categories[m.categoryIdx]
	text := m.textInput.Value()

	var err error
	if m.mode == ModeEdit && !m.recordMissing {
		err = m.svc.Update(notes.Note{
			ID:       m.noteID,
			ClientID: m.clientID,
			Category: category,
			Text:     text,
		})
	} else {
		_, err = m.svc.Create(m.clientID, category, text)
	}

	if err != nil {
		var verr *notes.ValidationError
		if errors.As(err, &verr) {
			m.errMsg = verr.Message
		} else {
			logs.Logger.Printf("Error saving note: %v", err)
			m.errMsg = fmt.Sprintf("Save failed: %v", err)
		}
		return m, nil
	}

	return m, messages.BackHome()
}

func (m Model) handleConfirmationResult(msg shared.ConfirmationResultMsg) (Model, tea.Cmd) {
	m.confirmationModal = nil

	if !msg.Confirmed {
		return m, nil
	}

	if err := m.svc.Delete(m.noteID); err != nil {
		logs.Logger.Printf("Error deleting note %s: %v", m.noteID, err)
		m.errMsg = fmt.Sprintf("Delete failed: %v", err)
		return m, nil
	}

	return m, messages.BackHome()
}

// View renders the form
func (m Model) View() string {
	if m.picker != nil {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.picker.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}
	if m.confirmationModal != nil {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.confirmationModal.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	var b strings.Builder

	title := "Add New Note"
	if m.mode == ModeEdit {
		title = "Edit Note"
	}
	b.WriteString(formTitleStyle.Render(title))
	b.WriteString("\n\n")

	if m.recordMissing {
		b.WriteString(noticeStyle.Render("The note you opened no longer exists. Saving will create a new note."))
		b.WriteString("\n\n")
	}

	// Client
	b.WriteString(m.label("Select Client:", focusClient))
	b.WriteString("\n")
	if m.clientID == "" {
		b.WriteString("  " + valueEmptyStyle.Render("-- Choose Client --"))
	} else {
		b.WriteString("  " + valueStyle.Render(m.directory.ResolveName(m.clientID)))
	}
	b.WriteString("\n\n")

	// Category
	b.WriteString(m.label("Select Category:", focusCategory))
	b.WriteString("\n")
	b.WriteString("  " + categoryArrStyle.Render("< ") +
		valueStyle.Render(notes.Categories[m.categoryIdx]) +
		categoryArrStyle.Render(" >"))
	b.WriteString("\n\n")

	// Text
	b.WriteString(m.label("Note Text:", focusText))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(formErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hints := "[tab] next field  [ctrl+s] save  [esc] cancel"
	if m.mode == ModeEdit && !m.recordMissing {
		hints += "  [ctrl+d] delete"
	}
	b.WriteString(formHelpStyle.Render(hints))

	return b.String()
}

func (m Model) label(text string, field focusField) string {
	if m.focus == field {
		return labelFocusStyle.Render("* " + text)
	}
	return labelStyle.Render("  " + text)
}
