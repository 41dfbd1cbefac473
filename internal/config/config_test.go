package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate runs the test from an empty directory with an empty home so no real
// config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestDefaults_AreValid(t *testing.T) {
	d := Defaults()
	require.NoError(t, Validate(d))
	require.Equal(t, '%', d.SeparatorRune())
	require.Equal(t, 4, d.TabWidth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "multi-character separator", mutate: func(c *Config) { c.Separator = "%%" }, wantErr: ErrInvalidSeparator},
		{name: "empty separator", mutate: func(c *Config) { c.Separator = "" }, wantErr: ErrInvalidSeparator},
		{name: "zero tab width", mutate: func(c *Config) { c.TabWidth = 0 }, wantErr: ErrInvalidTabWidth},
		{name: "huge tab width", mutate: func(c *Config) { c.TabWidth = 17 }, wantErr: ErrInvalidTabWidth},
		{name: "empty color", mutate: func(c *Config) { c.Theme.StatusBg = " " }, wantErr: ErrEmptyColor},
		{name: "unicode separator", mutate: func(c *Config) { c.Separator = "§" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(&c)
			err := Validate(c)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReportsFirstEmptyColorInThemeOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		c := Defaults()
		c.Theme.StatusBg = ""
		c.Theme.Leading = ""
		c.Theme.Comment = ""

		err := Validate(c)
		require.ErrorIs(t, err, ErrEmptyColor)
		require.Contains(t, err.Error(), "theme.comment")
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_ReadsLocalFile(t *testing.T) {
	dir := isolate(t)
	content := "separator: \":\"\ntab_width: 8\ntheme:\n  separator: \"#ff00ff\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sice.yaml"), []byte(content), 0o600))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, ':', cfg.SeparatorRune())
	require.Equal(t, 8, cfg.TabWidth)
	require.Equal(t, "#ff00ff", cfg.Theme.Separator)
	require.Equal(t, Defaults().Theme.Comment, cfg.Theme.Comment)
}

func TestLoad_ReadsUserFile(t *testing.T) {
	dir := isolate(t)
	userDir := filepath.Join(dir, ".config", "sice")
	require.NoError(t, os.MkdirAll(userDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("separator: \"|\"\n"), 0o600))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "|", cfg.Separator)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	dir := isolate(t)

	_, err := Load(viper.New(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \":\"\n"), 0o600))
	t.Setenv("SICE_SEPARATOR", "=")
	t.Setenv("SICE_THEME_LEADING", "9")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "=", cfg.Separator)
	require.Equal(t, "9", cfg.Theme.Leading)
}

func TestLoad_InvalidSeparatorFails(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"ab\"\n"), 0o600))

	_, err := Load(viper.New(), path)
	require.ErrorIs(t, err, ErrInvalidSeparator)
}

func TestMarshal_ProducesYAMLThatDecodesBack(t *testing.T) {
	out, err := Marshal(Defaults())
	require.NoError(t, err)
	require.Contains(t, string(out), "tab_width: 4")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, Defaults(), decoded)
}
