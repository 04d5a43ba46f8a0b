package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const header = "My Notes"

func (m Model) View() string {
	var body string
	if m.nb.IsOpen() {
		body = m.editorView()
	} else {
		body = m.listView()
	}

	view := lipgloss.JoinVertical(lipgloss.Left, body, m.footer())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, view,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.cfg.Theme.Background)))
	}
	return view
}

func (m Model) listView() string {
	width := m.cfg.Editor.Width
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("\n")

	notes := m.nb.Notes()
	if len(notes) == 0 {
		b.WriteString(m.styles.Empty.Render("No notes yet. Press n to add one."))
		return b.String()
	}

	cards := make([]string, 0, len(notes))
	for i, n := range notes {
		style := m.styles.Card
		if i == m.cursor {
			style = m.styles.CardSelected
		}
		// border and padding take four columns
		text := width - 4
		card := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.CardTitle.Render(ansi.Truncate(n.Title, text, "…")),
			m.styles.CardPreview.Render(ansi.Truncate(n.Preview(), text, "…")),
		)
		cards = append(cards, style.Width(width-2).Render(card))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	return b.String()
}

func (m Model) editorView() string {
	heading := "New note"
	if m.nb.Editing() {
		heading = "Edit note"
	}

	buttons := []string{
		m.styles.Save.Render("Save"),
		m.styles.Cancel.Render("Cancel"),
	}
	if m.nb.Editing() {
		buttons = append(buttons, m.styles.Delete.Render("Delete"))
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(heading),
		m.styles.Label.Render("Title"),
		m.title.View(),
		"",
		m.styles.Label.Render("Content"),
		m.content.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
	return m.styles.Modal.Width(m.cfg.Editor.Width).Render(form)
}

func (m Model) footer() string {
	bindings := m.listKeys.help()
	if m.nb.IsOpen() {
		bindings = m.editorKeys.help(m.nb.Editing())
	}
	lines := []string{m.help.ShortHelpView(bindings)}
	if m.status != "" {
		lines = append([]string{m.styles.Status.Render(m.status)}, lines...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
