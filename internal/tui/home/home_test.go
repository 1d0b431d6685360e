package home

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/notes"
	"github.com/yong-ling/noteapp/internal/storage"
	"github.com/yong-ling/noteapp/internal/tui/messages"
	"github.com/yong-ling/noteapp/internal/tui/shared"
)

func newTestModel(t *testing.T) (Model, notes.Service) {
	t.Helper()
	svc, err := notes.NewService(notes.NewStore(storage.New(t.TempDir())))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	directory := clients.NewStatic([]clients.Client{
		{ID: "client-001", Name: "Alice"},
		{ID: "client-002", Name: "Bob"},
	})
	m := New(svc, directory)
	m.SetSize(80, 24)
	return m, svc
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_EmptyPlaceholder(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, emptyPlaceholder) {
		t.Errorf("expected placeholder in view, got:\n%s", view)
	}
}

func TestView_RowResolvesClientName(t *testing.T) {
	m, svc := newTestModel(t)

	if _, err := svc.Create("client-001", "Goal Evidence", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Refresh()

	view := m.View()
	if !strings.Contains(view, "Alice") {
		t.Errorf("expected resolved client name in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Goal Evidence") {
		t.Errorf("expected category in view, got:\n%s", view)
	}
	if strings.Contains(view, emptyPlaceholder) {
		t.Error("expected placeholder gone once a note exists")
	}
}

func TestView_UnknownClientSentinel(t *testing.T) {
	m, svc := newTestModel(t)

	if _, err := svc.Create("client-999", "Goal Evidence", "orphan"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Refresh()

	if !strings.Contains(m.View(), clients.UnknownClientName) {
		t.Error("expected sentinel name for unresolved client id")
	}
}

func TestAddKeyOpensCreateForm(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyRune('a'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(messages.OpenNoteFormMsg)
	if !ok {
		t.Fatalf("expected OpenNoteFormMsg, got %T", cmd())
	}
	if msg.NoteID != "" {
		t.Errorf("expected create mode (empty id), got %q", msg.NoteID)
	}
}

func TestEnterOpensEditForm(t *testing.T) {
	m, svc := newTestModel(t)

	n, _ := svc.Create("client-001", "Goal Evidence", "hello")
	m.Refresh()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(messages.OpenNoteFormMsg)
	if !ok {
		t.Fatalf("expected OpenNoteFormMsg, got %T", cmd())
	}
	if msg.NoteID != n.ID {
		t.Errorf("expected edit mode for %q, got %q", n.ID, msg.NoteID)
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	m, svc := newTestModel(t)

	svc.Create("client-001", "Goal Evidence", "hello")
	m.Refresh()

	m, _ = m.Update(keyRune('d'))
	if !m.IsInModalState() {
		t.Fatal("expected confirmation modal")
	}

	// Cancel leaves state unchanged
	m, _ = m.Update(shared.ConfirmationResultMsg{Cancelled: true})
	if m.IsInModalState() {
		t.Error("expected modal dismissed")
	}
	collection, _ := svc.List()
	if len(collection) != 1 {
		t.Errorf("expected note kept on cancel, got %d notes", len(collection))
	}
}

func TestDelete_ConfirmRemovesAndPersists(t *testing.T) {
	m, svc := newTestModel(t)

	a, _ := svc.Create("client-001", "Goal Evidence", "a")
	svc.Create("client-002", "Goal Evidence", "b")
	m.Refresh()

	m, _ = m.Update(keyRune('d')) // cursor on first note
	m, _ = m.Update(shared.ConfirmationResultMsg{Confirmed: true})

	if err := svc.Reload(); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	collection, _ := svc.List()
	if len(collection) != 1 {
		t.Fatalf("expected 1 note after delete, got %d", len(collection))
	}
	if collection[0].ID == a.ID {
		t.Error("expected the selected note deleted")
	}
}

// failingDeleteService rejects every delete while leaving reads working.
type failingDeleteService struct {
	notes.Service
}

func (s failingDeleteService) Delete(id string) error {
	return errors.New("disk full")
}

func TestDelete_FailureKeepsErrorVisible(t *testing.T) {
	svc, err := notes.NewService(notes.NewStore(storage.New(t.TempDir())))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create("client-001", "Goal Evidence", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	directory := clients.NewStatic([]clients.Client{
		{ID: "client-001", Name: "Alice"},
	})

	m := New(failingDeleteService{svc}, directory)
	m.SetSize(80, 24)

	m, _ = m.Update(keyRune('d'))
	m, _ = m.Update(shared.ConfirmationResultMsg{Confirmed: true})

	view := m.View()
	if !strings.Contains(view, "Delete failed") {
		t.Errorf("expected delete failure in status line, got:\n%s", view)
	}
	// The optimistically removed row comes back once the store is re-read.
	if !strings.Contains(view, "Alice") {
		t.Errorf("expected row restored after failed delete, got:\n%s", view)
	}
}

func TestCursorNavigation(t *testing.T) {
	m, svc := newTestModel(t)

	svc.Create("client-001", "Goal Evidence", "a")
	svc.Create("client-001", "Goal Evidence", "b")
	svc.Create("client-001", "Goal Evidence", "c")
	m.Refresh()

	m, _ = m.Update(keyRune('j'))
	m, _ = m.Update(keyRune('j'))
	if m.cursor != 2 {
		t.Errorf("expected cursor 2, got %d", m.cursor)
	}

	// Cursor clamps at the end
	m, _ = m.Update(keyRune('j'))
	if m.cursor != 2 {
		t.Errorf("expected cursor clamped at 2, got %d", m.cursor)
	}

	m, _ = m.Update(keyRune('g'))
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}
}
