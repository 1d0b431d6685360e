// Package clients adapts the static client roster: a read-only reference
// dataset supplied by an external file, never mutated by this application.
package clients

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yong-ling/noteapp/internal/logs"
)

// UnknownClientName is returned when an id has no roster entry. An
// unresolved id is an expected state, not an error: the roster and the
// note collection can drift.
const UnknownClientName = "Unknown Client"

// Client is one roster entry.
type Client struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Directory exposes the roster for selection UIs and id resolution.
// Implementations are constructor-injected so views and tests can
// substitute their own roster source.
type Directory interface {
	// ListAll returns the roster in source order. The result is a fresh
	// copy, not a live view.
	ListAll() []Client

	// ResolveName returns the display name for an id, or UnknownClientName
	// when no entry matches.
	ResolveName(id string) string
}

// StaticDirectory serves a fixed in-memory roster.
type StaticDirectory struct {
	roster []Client
}

// NewStatic creates a Directory over a fixed roster.
func NewStatic(roster []Client) *StaticDirectory {
	return &StaticDirectory{roster: roster}
}

func (d *StaticDirectory) ListAll() []Client {
	out := make([]Client, len(d.roster))
	copy(out, d.roster)
	return out
}

func (d *StaticDirectory) ResolveName(id string) string {
	for _, c := range d.roster {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownClientName
}

// FileDirectory reads the roster from a JSON or YAML file on every call,
// so edits to the file are picked up on the next view activation. Read
// errors degrade to an empty roster: a broken roster file should not take
// down note keeping.
type FileDirectory struct {
	path string
}

// NewFileDirectory creates a Directory backed by the file at path.
func NewFileDirectory(path string) *FileDirectory {
	return &FileDirectory{path: path}
}

func (d *FileDirectory) ListAll() []Client {
	roster, err := LoadRoster(d.path)
	if err != nil {
		logs.Logger.Printf("Error loading clients from %s: %v", d.path, err)
		return nil
	}
	return roster
}

func (d *FileDirectory) ResolveName(id string) string {
	return NewStatic(d.ListAll()).ResolveName(id)
}

// LoadRoster parses a roster file. The format is chosen by extension:
// .yaml/.yml is YAML, anything else is JSON.
func LoadRoster(path string) ([]Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var roster []Client
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return roster, nil
}
