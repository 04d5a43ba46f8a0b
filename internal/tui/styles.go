package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/scribe/internal/config"
)

type styles struct {
	Header       lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardPreview  lipgloss.Style
	Empty        lipgloss.Style
	Modal        lipgloss.Style
	Label        lipgloss.Style
	Save         lipgloss.Style
	Cancel       lipgloss.Style
	Delete       lipgloss.Style
	Status       lipgloss.Style
}

func newStyles(t config.Theme) styles {
	button := lipgloss.NewStyle().Bold(true).Padding(0, 2).MarginRight(2)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Muted)).
		Padding(0, 1)

	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Title)).
			MarginBottom(1),
		Card:         card,
		CardSelected: card.BorderForeground(lipgloss.Color(t.Accent)),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Card)),
		CardPreview:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Empty:        lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(t.Muted)),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Save:   button.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(t.Accent)),
		Cancel: button.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(t.Danger)),
		Delete: button.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(t.Warning)),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).MarginTop(1),
	}
}
