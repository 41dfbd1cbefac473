package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/sice"
	"github.com/iw2rmb/sice/editor"
	"github.com/iw2rmb/sice/internal/config"
	"github.com/iw2rmb/sice/internal/log"
	"github.com/iw2rmb/sice/internal/storage"
)

func newRootCmd(version string) *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "sice [-s SEPARATOR] <filename>",
		Short: "Simple IRCd configuration editor",
		Long: `sice edits line-oriented configuration files and colors a separator
character so delimited fields are easy to read. Comment lines (starting
with #) are shown in one color and the first character of every other line
in another.

Arrow keys move, Page Up/Page Down scroll, Ctrl+X exits (asking whether to
save). A missing file is created empty.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			cleanup, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return runEditor(cfg, args[0], storage.NewOS())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .sice.yaml or ~/.config/sice/config.yaml)")
	flags.StringP("separator", "s", "%", "separator character to highlight")
	flags.Int("tab-width", 4, "number of cells a tab occupies")
	flags.Bool("debug", false, "write a debug log")
	flags.String("log-file", "sice.log", "debug log path")

	// Bind flags to viper
	_ = v.BindPFlag("separator", flags.Lookup("separator"))
	_ = v.BindPFlag("tab_width", flags.Lookup("tab-width"))
	_ = v.BindPFlag("debug", flags.Lookup("debug"))
	_ = v.BindPFlag("log_file", flags.Lookup("log-file"))

	root.AddCommand(newConfigCmd(v, &cfgFile))
	return root
}

func newConfigCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, *cfgFile)
			if err != nil {
				return err
			}
			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func setupLogging(cfg config.Config) (func(), error) {
	if !cfg.Debug {
		return func() {}, nil
	}
	cleanup, err := log.Init(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	log.Info(log.CatConfig, "Starting", "version", sice.Version(), "separator", cfg.Separator, "tab_width", cfg.TabWidth)
	return cleanup, nil
}

// runEditor loads path, runs the editor until the user exits and returns
// any load or save failure.
func runEditor(cfg config.Config, path string, store *storage.Store, opts ...tea.ProgramOption) error {
	lines, err := store.Load(path)
	if err != nil {
		return err
	}

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m := newModel(editor.Config{
		FileName:  path,
		Lines:     lines,
		Separator: cfg.SeparatorRune(),
		TabWidth:  cfg.TabWidth,
		Style:     editor.NewStyle(lipgloss.DefaultRenderer(), paletteFromTheme(cfg.Theme)),
		OnSave: func(lines []string) error {
			return store.Save(path, lines)
		},
	})

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if fm, ok := final.(model); ok && fm.editor.Err() != nil {
		return fm.editor.Err()
	}
	return nil
}

func paletteFromTheme(t config.ThemeConfig) editor.Palette {
	return editor.Palette{
		Comment:          t.Comment,
		Separator:        t.Separator,
		Leading:          t.Leading,
		Normal:           t.Normal,
		StatusForeground: t.StatusFg,
		StatusBackground: t.StatusBg,
	}
}
