package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sice/editor"
)

// model adapts the editor component to tea.Model.
type model struct {
	editor editor.Model
}

func newModel(cfg editor.Config) model {
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }
