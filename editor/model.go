package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sice/buffer"
	"github.com/iw2rmb/sice/internal/log"
)

// Mode is the dispatcher state.
type Mode int

const (
	// ModeEditing routes keys to navigation and edits.
	ModeEditing Mode = iota
	// ModeConfirmExit waits for a single key deciding whether to save.
	ModeConfirmExit
	// ModeSaved and ModeDiscarded are terminal.
	ModeSaved
	ModeDiscarded
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeConfirmExit:
		return "confirm-exit"
	case ModeSaved:
		return "saved"
	case ModeDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Terminated reports whether the session is over.
func (m Mode) Terminated() bool {
	return m == ModeSaved || m == ModeDiscarded
}

// Model is a Bubble Tea component that edits a single document.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	vp            Viewport
	width, height int

	mode Mode
	err  error
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	return Model{
		cfg: cfg,
		buf: buffer.FromLines(cfg.Lines),
		vp:  Viewport{Rows: 1},
	}
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Viewport() Viewport { return m.vp }

func (m Model) Mode() Mode { return m.mode }

// Err returns the save error that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the terminal size. One row is reserved for the status bar.
func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	m.vp.Rows = maxInt(m.height-1, 1)
	m.vp = m.vp.Follow(m.buf.Cursor().Row)
	log.Debug(log.CatUI, "Resized", "width", m.width, "height", m.height, "top", m.vp.Top)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.mode.Terminated() || m.width == 0 || m.height == 0 {
		return ""
	}
	g := NewGrid(m.width, m.height)
	m.Draw(g)
	return g.Render(m.cfg.Style)
}

// Draw renders the full frame onto s: visible lines, the status bar and,
// while confirming exit, the save prompt.
func (m Model) Draw(s Surface) {
	RenderDocument(s, m.buf, m.vp, m.cfg.Separator, m.cfg.TabWidth)

	cur := m.buf.Cursor()
	RenderStatus(s, m.height-1, m.width, StatusText(m.cfg.FileName, cur, m.buf.LineCount()))

	if m.mode == ModeConfirmExit {
		RenderPrompt(s, maxInt(m.height-2, 0), m.width, exitPrompt)
		return
	}
	s.MoveCursor(cur.Row-m.vp.Top, CursorCell(m.buf.LineText(cur.Row), cur.Col, m.cfg.TabWidth))
}
