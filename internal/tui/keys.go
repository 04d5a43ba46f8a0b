package tui

import "github.com/charmbracelet/bubbles/key"

type listKeys struct {
	Add  key.Binding
	Up   key.Binding
	Down key.Binding
	Edit key.Binding
	Quit key.Binding
}

type editorKeys struct {
	Save   key.Binding
	Cancel key.Binding
	Delete key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

func defaultListKeys() listKeys {
	return listKeys{
		Add:  key.NewBinding(key.WithKeys("n", "+"), key.WithHelp("n", "add")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func defaultEditorKeys() editorKeys {
	return editorKeys{
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k listKeys) help() []key.Binding {
	return []key.Binding{k.Add, k.Up, k.Down, k.Edit, k.Quit}
}

func (k editorKeys) help(editing bool) []key.Binding {
	if editing {
		return []key.Binding{k.Save, k.Cancel, k.Delete, k.Next}
	}
	return []key.Binding{k.Save, k.Cancel, k.Next}
}
