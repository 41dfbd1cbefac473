// Package storage loads and saves edited files. Every call opens and closes
// its own handle; nothing is held between calls.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/iw2rmb/sice/buffer"
	"github.com/iw2rmb/sice/internal/log"
)

const filePerm = 0o644

// Store reads and writes documents on a filesystem.
type Store struct {
	fs afero.Fs
}

// New returns a Store backed by fsys.
func New(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// NewOS returns a Store on the host filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Load returns the lines of path with their terminators. A missing file is
// created empty and loads as a single empty line.
func (s *Store) Load(path string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := afero.WriteFile(s.fs, path, nil, filePerm); err != nil {
			log.ErrorErr(log.CatFile, "Failed to create file", err, "path", path)
			return nil, fmt.Errorf("creating %s: %w", path, err)
		}
		log.Info(log.CatFile, "Created empty file", "path", path)
		return []string{""}, nil
	}
	if err != nil {
		log.ErrorErr(log.CatFile, "Failed to read file", err, "path", path)
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		log.Warn(log.CatFile, "File is not valid UTF-8, bytes are kept as read", "path", path)
	}
	lines := buffer.SplitLines(string(data))
	log.Debug(log.CatFile, "Loaded file", "path", path, "bytes", len(data), "lines", len(lines))
	return lines, nil
}

// Save overwrites path with the lines concatenated verbatim.
func (s *Store) Save(path string, lines []string) error {
	content := strings.Join(lines, "")
	if err := afero.WriteFile(s.fs, path, []byte(content), filePerm); err != nil {
		log.ErrorErr(log.CatFile, "Failed to write file", err, "path", path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Info(log.CatFile, "Saved file", "path", path, "bytes", len(content), "lines", len(lines))
	return nil
}
