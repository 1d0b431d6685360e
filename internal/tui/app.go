package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yong-ling/noteapp/internal/clients"
	"github.com/yong-ling/noteapp/internal/config"
	"github.com/yong-ling/noteapp/internal/logs"
	"github.com/yong-ling/noteapp/internal/notes"
	"github.com/yong-ling/noteapp/internal/storage"
	formview "github.com/yong-ling/noteapp/internal/tui/form"
	homeview "github.com/yong-ling/noteapp/internal/tui/home"
	"github.com/yong-ling/noteapp/internal/tui/messages"
)

// AppModel is the root model that dispatches to child views. It owns the
// two navigation destinations: Home (the note list) and NoteForm.
type AppModel struct {
	cfg       *config.Config
	svc       notes.Service
	directory clients.Directory

	currentView ViewType

	homeView   homeview.Model
	formView   formview.Model
	formLoaded bool // true when formView was built for the current visit

	watcher *storage.Watcher

	showHelp bool
	width    int
	height   int
	ready    bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, svc notes.Service, directory clients.Directory, store *notes.Store) AppModel {
	watcher, err := store.Watch()
	if err != nil {
		logs.Logger.Printf("Warning: could not watch note store: %v", err)
		watcher = nil
	}

	return AppModel{
		cfg:         cfg,
		svc:         svc,
		directory:   directory,
		currentView: ViewHome,
		homeView:    homeview.New(svc, directory),
		watcher:     watcher,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.waitForStoreChange()
}

// waitForStoreChange blocks on the next out-of-band store event. Re-armed
// after every StoreChangedMsg.
func (m AppModel) waitForStoreChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		<-events
		return messages.StoreChangedMsg{}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.homeView.SetSize(msg.Width, contentHeight)
		if m.formLoaded {
			m.formView.SetSize(msg.Width, contentHeight)
		}
		return m, nil

	case OpenNoteFormMsg:
		// Fresh form activation: the view re-reads the collection and the
		// roster itself
		m.formView = formview.New(m.svc, m.directory, msg.NoteID)
		m.formView.SetSize(m.width, m.height-3)
		m.formLoaded = true
		m.currentView = ViewNoteForm
		return m, m.formView.Init()

	case BackHomeMsg:
		m.currentView = ViewHome
		m.homeView.Refresh()
		return m, nil

	case StoreChangedMsg:
		// The slot changed outside the visible view; the list re-reads on
		// its next render, the form keeps its in-flight edits
		if m.currentView == ViewHome {
			m.homeView.Refresh()
		}
		return m, m.waitForStoreChange()

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.currentView == ViewHome && !m.homeView.IsInModalState() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.homeView, cmd = m.homeView.Update(msg)
		return m, cmd
	case ViewNoteForm:
		if m.formLoaded {
			m.formView, cmd = m.formView.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var content string
	switch m.currentView {
	case ViewHome:
		content = m.homeView.View()
	case ViewNoteForm:
		if m.formLoaded {
			content = m.formView.View()
		}
	}

	// Status bar — show different hints based on view
	var statusText string
	switch m.currentView {
	case ViewNoteForm:
		statusText = "Note form | tab:fields  ctrl+s:save  esc:back"
	default:
		statusText = "j/k:navigate  enter:edit  a:add  d:delete | ?:help  q:quit"
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	helpBoxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("4")).
		Padding(1, 2)

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	line := func(key, desc string) string {
		return "  " + keyStyle.Width(14).Render(key) + descStyle.Render(desc)
	}

	var content string
	content += sectionStyle.Render("Noteapp - Keyboard Shortcuts") + "\n\n"

	content += sectionStyle.Render("Note List") + "\n"
	content += line("j / k", "Navigate notes") + "\n"
	content += line("g / G", "First / last note") + "\n"
	content += line("enter", "Edit selected note") + "\n"
	content += line("a", "Add a new note") + "\n"
	content += line("d", "Delete selected note") + "\n"
	content += line("?", "Show this help") + "\n"
	content += line("q", "Quit") + "\n"
	content += line("ctrl+c", "Force quit") + "\n\n"

	content += sectionStyle.Render("Note Form") + "\n"
	content += line("tab", "Next field") + "\n"
	content += line("enter / space", "Open client picker / cycle category") + "\n"
	content += line("ctrl+s", "Save note") + "\n"
	content += line("ctrl+d", "Delete note (edit mode)") + "\n"
	content += line("esc", "Back without saving") + "\n\n"

	content += HelpStyle.Render("Press any key to close")

	box := helpBoxStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
