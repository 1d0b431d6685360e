package notes

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yong-ling/noteapp/internal/logs"
)

// Service defines the interface for note operations. All mutations go
// through one service instance so every write is a fresh
// load-modify-save over the persisted collection.
type Service interface {
	List() ([]Note, error)
	Get(id string) (*Note, error)
	Create(clientID, category, text string) (*Note, error)
	Update(n Note) error
	Delete(id string) error
	Reload() error
}

type serviceImpl struct {
	store *Store
	notes []Note
}

// NewService creates a Service backed by the given store.
func NewService(store *Store) (Service, error) {
	svc := &serviceImpl{store: store}
	if err := svc.Reload(); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *serviceImpl) Reload() error {
	collection, err := s.store.Load()
	if err != nil {
		return err
	}
	s.notes = collection
	return nil
}

func (s *serviceImpl) List() ([]Note, error) {
	// A fresh copy: callers mutate their result (optimistic removals in the
	// list view) without shifting the cached collection.
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

func (s *serviceImpl) Get(id string) (*Note, error) {
	if n, ok := Find(s.notes, id); ok {
		return &n, nil
	}
	return nil, fmt.Errorf("note not found: %s", id)
}

func (s *serviceImpl) Create(clientID, category, text string) (*Note, error) {
	if category == "" {
		category = DefaultCategory()
	}
	n := Note{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Category: category,
		Text:     text,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	collection, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	collection = Append(collection, n)
	if err := s.store.Save(collection); err != nil {
		return nil, err
	}
	s.notes = collection
	return &n, nil
}

func (s *serviceImpl) Update(n Note) error {
	if err := n.Validate(); err != nil {
		return err
	}

	collection, err := s.store.Load()
	if err != nil {
		return err
	}
	if _, ok := Find(collection, n.ID); !ok {
		logs.Logger.Printf("Update: note %s not found, collection unchanged", n.ID)
	}
	collection = Replace(collection, n)
	if err := s.store.Save(collection); err != nil {
		return err
	}
	s.notes = collection
	return nil
}

func (s *serviceImpl) Delete(id string) error {
	collection, err := s.store.Load()
	if err != nil {
		return err
	}
	collection = Remove(collection, id)
	if err := s.store.Save(collection); err != nil {
		return err
	}
	s.notes = collection
	return nil
}
