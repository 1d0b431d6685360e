package notes

import (
	"errors"
	"os"
	"testing"

	"github.com/yong-ling/noteapp/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.New(t.TempDir()))
}

func TestLoad_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	collection, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(collection) != 0 {
		t.Errorf("expected empty collection, got %d notes", len(collection))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	original := []Note{
		{ID: "1", ClientID: "client-001", Category: "Goal Evidence", Text: "first"},
		{ID: "2", ClientID: "client-002", Category: "Active Duty", Text: "second"},
		{ID: "3", ClientID: "client-001", Category: "Support Coordination", Text: "third"},
	}

	if err := s.Save(original); err != nil {
		t.Fatalf("save error: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if len(loaded) != len(original) {
		t.Fatalf("expected %d notes, got %d", len(original), len(loaded))
	}
	for i := range original {
		if loaded[i] != original[i] {
			t.Errorf("note %d: expected %+v, got %+v", i, original[i], loaded[i])
		}
	}
}

func TestLoad_Idempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save([]Note{{ID: "1", ClientID: "c", Category: "Goal Evidence", Text: "x"}}); err != nil {
		t.Fatalf("save error: %v", err)
	}

	first, err := s.Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	second, err := s.Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if len(first) != len(second) || first[0] != second[0] {
		t.Errorf("expected equal collections, got %+v and %+v", first, second)
	}
}

func TestLoad_CorruptedSlot(t *testing.T) {
	kv := storage.New(t.TempDir())
	s := NewStore(kv)

	if err := os.MkdirAll(kv.Dir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(kv.Path(SlotKey), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load()
	if !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}

	// The corrupted data must be left on disk for recovery
	data, readErr := os.ReadFile(kv.Path(SlotKey))
	if readErr != nil || string(data) != "{not json" {
		t.Error("expected corrupted slot to be left untouched")
	}
}

func TestLoad_NullSlot(t *testing.T) {
	kv := storage.New(t.TempDir())
	s := NewStore(kv)

	if err := kv.Set(SlotKey, []byte("null")); err != nil {
		t.Fatal(err)
	}

	collection, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if collection == nil {
		t.Error("expected non-nil collection")
	}
}
