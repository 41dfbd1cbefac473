package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sice/buffer"
	"github.com/iw2rmb/sice/internal/log"
)

type navFunc func(Document, buffer.Pos, Viewport) (buffer.Pos, Viewport)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case ModeEditing:
		return m.updateEditing(msg)
	case ModeConfirmExit:
		return m.resolveExit(msg)
	default:
		return m, nil
	}
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	before := m.buf.Version()

	switch {
	case key.Matches(msg, km.Up):
		m.navigate(MoveUp)
	case key.Matches(msg, km.Down):
		m.navigate(MoveDown)
	case key.Matches(msg, km.Left):
		m.navigate(MoveLeft)
	case key.Matches(msg, km.Right):
		m.navigate(MoveRight)
	case key.Matches(msg, km.PageUp):
		m.navigate(PageUp)
	case key.Matches(msg, km.PageDown):
		m.navigate(PageDown)

	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()
		m.logEdit("newline", before)
	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
		m.logEdit("backspace", before)

	case key.Matches(msg, km.Exit):
		m.setMode(ModeConfirmExit)
		return m, nil
	case key.Matches(msg, km.Quit):
		m.setMode(ModeDiscarded)
		return m, tea.Quit

	default:
		switch {
		case msg.Type == tea.KeySpace:
			m.buf.InsertChar(' ')
			m.logEdit("insert", before)
		case msg.Type == tea.KeyRunes && !msg.Alt:
			for _, r := range msg.Runes {
				m.buf.InsertChar(r)
			}
			m.logEdit("insert", before)
		}
	}

	// Newline and join move the cursor vertically too.
	m.vp = m.vp.Follow(m.buf.Cursor().Row)
	return m, nil
}

// logEdit records op if it changed the buffer since version before.
func (m *Model) logEdit(op string, before uint64) {
	if m.buf.Version() == before {
		return
	}
	cur := m.buf.Cursor()
	log.Debug(log.CatEdit, "Edit", "op", op, "row", cur.Row, "col", cur.Col, "lines", m.buf.LineCount(), "version", m.buf.Version())
}

func (m *Model) navigate(move navFunc) {
	cur, vp := move(m.buf, m.buf.Cursor(), m.vp)
	m.buf.SetCursor(cur)
	m.vp = vp
}

// resolveExit decides the session on a single key: the affirmative answer
// saves, anything else discards.
func (m Model) resolveExit(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !key.Matches(msg, m.cfg.KeyMap.ConfirmSave) {
		m.setMode(ModeDiscarded)
		return m, tea.Quit
	}

	if m.cfg.OnSave != nil {
		if err := m.cfg.OnSave(m.buf.Lines()); err != nil {
			log.ErrorErr(log.CatFile, "Save failed", err, "file", m.cfg.FileName)
			m.err = err
			m.setMode(ModeDiscarded)
			return m, tea.Quit
		}
	}
	m.setMode(ModeSaved)
	return m, tea.Quit
}

func (m *Model) setMode(next Mode) {
	log.Debug(log.CatUI, "Mode change", "from", m.mode, "to", next, "version", m.buf.Version())
	m.mode = next
}
