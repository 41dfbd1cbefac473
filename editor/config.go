package editor

// Config configures the editor Model.
type Config struct {
	// FileName is shown in the status bar.
	FileName string
	// Lines is the initial document, terminators included.
	Lines []string

	// Separator is highlighted from the second column of non-comment lines.
	// Zero means '%'.
	Separator rune
	// TabWidth is the number of cells a tab occupies. Zero means
	// DefaultTabWidth.
	TabWidth int

	Style  Style
	KeyMap KeyMap

	// OnSave persists the document when the user confirms on exit. A returned
	// error ends the session and is reported by Model.Err.
	OnSave func(lines []string) error
}

// DefaultSeparator is the separator used when none is configured.
const DefaultSeparator = '%'

func (c Config) withDefaults() Config {
	if c.Separator == 0 {
		c.Separator = DefaultSeparator
	}
	if c.TabWidth <= 0 {
		c.TabWidth = DefaultTabWidth
	}
	if len(c.KeyMap.Exit.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
