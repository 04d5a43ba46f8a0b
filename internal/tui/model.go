// Package tui is the interactive front end: a list of note cards and a modal editor.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/scribe/internal/config"
	"github.com/aretw0/scribe/pkg/core"
)

// EventMsg carries a notebook transition into the program.
type EventMsg struct{ Event core.Event }

// ConfigMsg carries a reloaded configuration into the program.
type ConfigMsg struct{ Config config.Config }

type field int

const (
	fieldTitle field = iota
	fieldContent
)

// Model is the bubbletea model for the notes screen.
type Model struct {
	nb     *core.Notebook
	cfg    config.Config
	logger *slog.Logger

	styles     styles
	listKeys   listKeys
	editorKeys editorKeys
	help       help.Model

	title   textinput.Model
	content textarea.Model
	focus   field

	cursor int
	status string
	width  int
	height int
}

// New builds a model over nb. A nil logger discards output.
func New(nb *core.Notebook, cfg config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Content"
	ta.ShowLineNumbers = false

	m := Model{
		nb:         nb,
		logger:     logger,
		listKeys:   defaultListKeys(),
		editorKeys: defaultEditorKeys(),
		help:       help.New(),
		title:      ti,
		content:    ta,
	}
	m.applyConfig(cfg)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case EventMsg:
		m.status = describe(msg.Event)
		return m, nil
	case ConfigMsg:
		m.applyConfig(msg.Config)
		m.status = "configuration reloaded"
		return m, nil
	case tea.KeyMsg:
		if m.nb.IsOpen() {
			return m.updateEditor(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.listKeys.Add):
		m.nb.OpenForCreate()
		return m, m.loadDrafts()
	case key.Matches(msg, m.listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.listKeys.Down):
		if m.cursor < m.nb.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.listKeys.Edit):
		n, ok := m.nb.NoteAt(m.cursor)
		if !ok {
			return m, nil
		}
		if err := m.nb.OpenForEdit(n); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.loadDrafts()
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editorKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.editorKeys.Save):
		n, err := m.nb.Save()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.cursor = m.indexOf(n.ID)
		return m, nil
	case key.Matches(msg, m.editorKeys.Cancel):
		m.nb.Cancel()
		return m, nil
	case key.Matches(msg, m.editorKeys.Delete):
		if err := m.nb.DeleteSelected(); err != nil {
			if !errors.Is(err, core.ErrNotEditing) {
				m.status = err.Error()
			}
			return m, nil
		}
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.editorKeys.Next), key.Matches(msg, m.editorKeys.Prev):
		return m, m.toggleFocus()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
		if err := m.nb.UpdateDraftTitle(m.title.Value()); err != nil {
			m.logger.Error("title draft rejected", "error", err)
		}
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
		if err := m.nb.UpdateDraftContent(m.content.Value()); err != nil {
			m.logger.Error("content draft rejected", "error", err)
		}
	}
	return m, cmd
}

// loadDrafts copies the session drafts into the inputs and focuses the title.
func (m *Model) loadDrafts() tea.Cmd {
	s := m.nb.Session()
	m.title.SetValue(s.DraftTitle)
	m.content.SetValue(s.DraftContent)
	m.focus = fieldTitle
	m.content.Blur()
	return m.title.Focus()
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == fieldTitle {
		m.focus = fieldContent
		m.title.Blur()
		return m.content.Focus()
	}
	m.focus = fieldTitle
	m.content.Blur()
	return m.title.Focus()
}

func (m *Model) applyConfig(cfg config.Config) {
	m.cfg = cfg
	m.styles = newStyles(cfg.Theme)
	inner := cfg.Editor.Width - 6
	m.title.Width = inner
	m.content.SetWidth(inner)
	m.content.SetHeight(cfg.Editor.ContentHeight)
}

func (m Model) indexOf(id int64) int {
	for i, n := range m.nb.Notes() {
		if n.ID == id {
			return i
		}
	}
	return m.cursor
}

func (m *Model) clampCursor() {
	if m.cursor >= m.nb.Len() {
		m.cursor = m.nb.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func describe(e core.Event) string {
	switch e.Type {
	case core.EventCreate:
		return fmt.Sprintf("note %d created", e.NoteID)
	case core.EventModify:
		return fmt.Sprintf("note %d saved", e.NoteID)
	case core.EventDelete:
		return fmt.Sprintf("note %d deleted", e.NoteID)
	case core.EventCancel:
		return "changes discarded"
	default:
		return ""
	}
}
