package notes

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yong-ling/noteapp/internal/logs"
	"github.com/yong-ling/noteapp/internal/storage"
)

// SlotKey is the persistence slot holding the serialized note collection.
const SlotKey = "@notes"

// ErrCorrupted reports that the slot holds data that cannot be parsed as a
// note collection. The data is left on disk untouched so it can be
// inspected or recovered by hand.
var ErrCorrupted = errors.New("note store corrupted")

// Store owns the persisted note collection. The collection is one JSON
// array read and written wholesale; there are no partial updates.
type Store struct {
	kv *storage.Store
}

// NewStore creates a Store over the given persistence medium.
func NewStore(kv *storage.Store) *Store {
	return &Store{kv: kv}
}

// Load reads the full collection. A missing slot means no notes yet and
// returns an empty collection, not an error. A present but unparseable slot
// returns ErrCorrupted.
func (s *Store) Load() ([]Note, error) {
	data, found, err := s.kv.Get(SlotKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Note{}, nil
	}

	var collection []Note
	if err := json.Unmarshal(data, &collection); err != nil {
		logs.Logger.Printf("Error parsing %s slot: %v", SlotKey, err)
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if collection == nil {
		collection = []Note{}
	}
	return collection, nil
}

// Save serializes and overwrites the slot wholesale. Write failures are
// propagated so the caller can surface them instead of silently losing the
// user's action.
func (s *Store) Save(collection []Note) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("serializing note collection: %w", err)
	}
	if err := s.kv.Set(SlotKey, data); err != nil {
		logs.Logger.Printf("Error saving notes: %v", err)
		return err
	}
	return nil
}

// Watch reports out-of-band changes to the slot.
func (s *Store) Watch() (*storage.Watcher, error) {
	return s.kv.Watch(SlotKey)
}
