package tui

import "github.com/yong-ling/noteapp/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewHome     = messages.ViewHome
	ViewNoteForm = messages.ViewNoteForm
)

type OpenNoteFormMsg = messages.OpenNoteFormMsg
type BackHomeMsg = messages.BackHomeMsg
type StoreChangedMsg = messages.StoreChangedMsg
