package buffer

import (
	"strings"
	"unicode/utf8"
)

// Buffer is the document state: stored lines and the cursor.
type Buffer struct {
	lines   []string
	version uint64

	cursor Pos
	eol    string
}

// New builds a buffer from raw file content.
func New(content string) *Buffer {
	return FromLines(SplitLines(content))
}

// FromLines builds a buffer from stored lines, each optionally ending in its
// terminator. An empty slice becomes a single empty line.
func FromLines(lines []string) *Buffer {
	out := append([]string(nil), lines...)
	if len(out) == 0 {
		out = []string{""}
	}
	b := &Buffer{lines: out, eol: "\n"}
	for _, line := range out {
		if eol := lineEnding(line); eol != "" {
			b.eol = eol
			break
		}
	}
	return b
}

// SplitLines splits content after every "\n", keeping the terminators.
// Empty content yields a single empty line.
func SplitLines(content string) []string {
	if content == "" {
		return []string{""}
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Lines returns a copy of the stored lines, terminators included.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Content returns the document as it would be written to disk.
func (b *Buffer) Content() string {
	return strings.Join(b.lines, "")
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the stored content of row, terminator included.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineText returns row without its terminator.
func (b *Buffer) LineText(row int) string {
	line := b.Line(row)
	return line[:len(line)-len(lineEnding(line))]
}

// LineLen returns the rune length of LineText(row). Each byte that is not
// valid UTF-8 counts as one rune.
func (b *Buffer) LineLen(row int) int {
	return utf8.RuneCountInString(b.LineText(row))
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor. The row is clamped to the document; the column
// is only kept non-negative.
func (b *Buffer) SetCursor(p Pos) {
	next := ClampRow(p, len(b.lines))
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}
