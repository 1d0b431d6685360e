package messages

import tea "github.com/charmbracelet/bubbletea"

// ViewType represents the different views in the application
type ViewType int

const (
	ViewHome ViewType = iota
	ViewNoteForm
)

// OpenNoteFormMsg requests navigation to the note form. An empty NoteID
// means create mode; a non-empty NoteID means edit mode for that note.
type OpenNoteFormMsg struct {
	NoteID string
}

// BackHomeMsg requests navigation back to the note list.
type BackHomeMsg struct{}

// StoreChangedMsg signals that the persisted note collection changed
// outside the current view and displayed state should be reloaded.
type StoreChangedMsg struct{}

func OpenNoteForm(noteID string) tea.Cmd {
	return func() tea.Msg {
		return OpenNoteFormMsg{NoteID: noteID}
	}
}

func BackHome() tea.Cmd {
	return func() tea.Msg {
		return BackHomeMsg{}
	}
}
