package editor

import "github.com/charmbracelet/lipgloss"

// Palette names one color per category. Values are anything lipgloss.Color
// accepts: ANSI indexes ("6") or hex ("#ff00ff").
type Palette struct {
	Comment          string
	Separator        string
	Leading          string
	Normal           string
	StatusForeground string
	StatusBackground string
}

// DefaultPalette is cyan comments, magenta separators, red leading
// characters and a white-on-blue status bar.
func DefaultPalette() Palette {
	return Palette{
		Comment:          "6",
		Separator:        "5",
		Leading:          "1",
		Normal:           "7",
		StatusForeground: "7",
		StatusBackground: "4",
	}
}

// Style controls the editor's rendering. It is built once per session and
// handed to the renderer.
type Style struct {
	Comment   lipgloss.Style
	Separator lipgloss.Style
	Leading   lipgloss.Style
	Normal    lipgloss.Style
	Status    lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer(), DefaultPalette())
}

// NewStyle builds a Style from p using renderer r.
func NewStyle(r *lipgloss.Renderer, p Palette) Style {
	return Style{
		Comment:   r.NewStyle().Foreground(lipgloss.Color(p.Comment)),
		Separator: r.NewStyle().Foreground(lipgloss.Color(p.Separator)),
		Leading:   r.NewStyle().Foreground(lipgloss.Color(p.Leading)),
		Normal:    r.NewStyle().Foreground(lipgloss.Color(p.Normal)),
		Status: r.NewStyle().
			Foreground(lipgloss.Color(p.StatusForeground)).
			Background(lipgloss.Color(p.StatusBackground)),
		Cursor: r.NewStyle().Reverse(true),
	}
}

// For returns the style used for c.
func (s Style) For(c Category) lipgloss.Style {
	switch c {
	case CategoryComment:
		return s.Comment
	case CategorySeparator:
		return s.Separator
	case CategoryLeading:
		return s.Leading
	case CategoryStatus:
		return s.Status
	default:
		return s.Normal
	}
}
