package form

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/notes"
	"github.com/yong-ling/noteapp/internal/storage"
	"github.com/yong-ling/noteapp/internal/tui/messages"
	"github.com/yong-ling/noteapp/internal/tui/shared"
)

func newTestDeps(t *testing.T) (notes.Service, clients.Directory) {
	t.Helper()
	svc, err := notes.NewService(notes.NewStore(storage.New(t.TempDir())))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	directory := clients.NewStatic([]clients.Client{
		{ID: "client-001", Name: "Alice"},
		{ID: "client-002", Name: "Bob"},
	})
	return svc, directory
}

func ctrlS() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyCtrlS}
}

func typeText(m Model, s string) Model {
	// tab from client -> category -> text
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestCreateMode_InitialState(t *testing.T) {
	svc, directory := newTestDeps(t)

	m := New(svc, directory, "")
	m.SetSize(80, 24)

	if m.mode != ModeCreate {
		t.Error("expected create mode")
	}
	if m.clientID != "" {
		t.Errorf("expected no client selected, got %q", m.clientID)
	}
	if notes.Categories[m.categoryIdx] != notes.DefaultCategory() {
		t.Error("expected default category pre-selected")
	}
	if m.textInput.Value() != "" {
		t.Error("expected empty text")
	}
}

func TestSave_RejectsMissingClient(t *testing.T) {
	svc, directory := newTestDeps(t)

	m := New(svc, directory, "")
	m.SetSize(80, 24)
	m = typeText(m, "some text")

	m, cmd := m.Update(ctrlS())
	if cmd != nil {
		t.Error("expected no navigation on validation failure")
	}
	if !strings.Contains(m.View(), "Please select a client.") {
		t.Errorf("expected validation message, got:\n%s", m.View())
	}

	collection, _ := svc.List()
	if len(collection) != 0 {
		t.Error("expected no mutation on validation failure")
	}
}

func TestSave_RejectsEmptyText(t *testing.T) {
	svc, directory := newTestDeps(t)

	m := New(svc, directory, "")
	m.SetSize(80, 24)
	m, _ = m.Update(ClientPickerResultMsg{Client: clients.Client{ID: "client-001", Name: "Alice"}})
	m = typeText(m, "   ")

	m, cmd := m.Update(ctrlS())
	if cmd != nil {
		t.Error("expected no navigation on validation failure")
	}
	if !strings.Contains(m.View(), "Please enter some note text.") {
		t.Errorf("expected validation message, got:\n%s", m.View())
	}
}

func TestSave_CreateAppendsAndNavigatesBack(t *testing.T) {
	svc, directory := newTestDeps(t)

	m := New(svc, directory, "")
	m.SetSize(80, 24)
	m, _ = m.Update(ClientPickerResultMsg{Client: clients.Client{ID: "client-001", Name: "Alice"}})
	m = typeText(m, "hello")

	_, cmd := m.Update(ctrlS())
	if cmd == nil {
		t.Fatal("expected navigation command after save")
	}
	if _, ok := cmd().(messages.BackHomeMsg); !ok {
		t.Fatalf("expected BackHomeMsg, got %T", cmd())
	}

	svc.Reload()
	collection, _ := svc.List()
	if len(collection) != 1 {
		t.Fatalf("expected 1 note, got %d", len(collection))
	}
	if collection[0].ClientID != "client-001" || collection[0].Text != "hello" {
		t.Errorf("unexpected note: %+v", collection[0])
	}
}

func TestEditMode_SeedsFields(t *testing.T) {
	svc, directory := newTestDeps(t)

	n, _ := svc.Create("client-002", "Active Duty", "existing note")

	m := New(svc, directory, n.ID)
	m.SetSize(80, 24)

	if m.mode != ModeEdit {
		t.Error("expected edit mode")
	}
	if m.clientID != "client-002" {
		t.Errorf("expected seeded client, got %q", m.clientID)
	}
	if notes.Categories[m.categoryIdx] != "Active Duty" {
		t.Errorf("expected seeded category, got %q", notes.Categories[m.categoryIdx])
	}
	if m.textInput.Value() != "existing note" {
		t.Errorf("expected seeded text, got %q", m.textInput.Value())
	}
}

func TestEditMode_SavePreservesIDAndPosition(t *testing.T) {
	svc, directory := newTestDeps(t)

	a, _ := svc.Create("client-001", "Goal Evidence", "a")
	b, _ := svc.Create("client-002", "Goal Evidence", "b")

	m := New(svc, directory, a.ID)
	m.SetSize(80, 24)
	m, _ = m.Update(ClientPickerResultMsg{Client: clients.Client{ID: "client-002", Name: "Bob"}})

	_, cmd := m.Update(ctrlS())
	if cmd == nil {
		t.Fatal("expected navigation command after save")
	}

	svc.Reload()
	collection, _ := svc.List()
	if len(collection) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(collection))
	}
	if collection[0].ID != a.ID || collection[1].ID != b.ID {
		t.Error("expected order and ids preserved")
	}
	if collection[0].ClientID != "client-002" {
		t.Errorf("expected edited client id, got %q", collection[0].ClientID)
	}
}

func TestEditMode_MissingRecord(t *testing.T) {
	svc, directory := newTestDeps(t)

	m := New(svc, directory, "deleted-elsewhere")
	m.SetSize(80, 24)

	if !m.recordMissing {
		t.Fatal("expected recordMissing state")
	}
	if m.clientID != "" || m.textInput.Value() != "" {
		t.Error("expected blank initial values")
	}
	if !strings.Contains(m.View(), "no longer exists") {
		t.Error("expected missing-record notice in view")
	}
}

func TestDelete_ConfirmRemovesAndNavigatesBack(t *testing.T) {
	svc, directory := newTestDeps(t)

	n, _ := svc.Create("client-001", "Goal Evidence", "doomed")

	m := New(svc, directory, n.ID)
	m.SetSize(80, 24)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if !m.IsInModalState() {
		t.Fatal("expected confirmation modal")
	}

	_, cmd := m.Update(shared.ConfirmationResultMsg{Confirmed: true})
	if cmd == nil {
		t.Fatal("expected navigation command after delete")
	}
	if _, ok := cmd().(messages.BackHomeMsg); !ok {
		t.Fatalf("expected BackHomeMsg, got %T", cmd())
	}

	svc.Reload()
	collection, _ := svc.List()
	if len(collection) != 0 {
		t.Errorf("expected empty collection, got %d notes", len(collection))
	}
}

func TestEsc_CancelsWithoutSaving(t *testing.T) {
	svc, directory := newTestDeps(t)

	m := New(svc, directory, "")
	m.SetSize(80, 24)
	m, _ = m.Update(ClientPickerResultMsg{Client: clients.Client{ID: "client-001", Name: "Alice"}})
	m = typeText(m, "draft that should vanish")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(messages.BackHomeMsg); !ok {
		t.Fatalf("expected BackHomeMsg, got %T", cmd())
	}

	collection, _ := svc.List()
	if len(collection) != 0 {
		t.Error("expected no note persisted on cancel")
	}
}

func TestClientPicker_FuzzyFilter(t *testing.T) {
	roster := []clients.Client{
		{ID: "client-001", Name: "Alice"},
		{ID: "client-002", Name: "Bob"},
		{ID: "client-003", Name: "Albert"},
	}

	p := NewClientPicker(roster, 40)
	if len(p.filtered) != 3 {
		t.Fatalf("expected all clients before filtering, got %d", len(p.filtered))
	}

	for _, r := range "al" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	for _, idx := range p.filtered {
		if roster[idx].Name == "Bob" {
			t.Error("expected Bob filtered out")
		}
	}
	if len(p.filtered) == 0 {
		t.Error("expected fuzzy matches for 'al'")
	}
}
