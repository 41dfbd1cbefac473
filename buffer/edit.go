package buffer

import "unicode/utf8"

// IsPrintable reports whether r is accepted by InsertChar: printable ASCII,
// 32 through 126 inclusive.
func IsPrintable(r rune) bool {
	return r >= ' ' && r <= '~'
}

// InsertChar inserts r at the cursor and advances the cursor by one.
// Runes outside printable ASCII are ignored.
func (b *Buffer) InsertChar(r rune) {
	if !IsPrintable(r) {
		return
	}

	cur := b.clampPos(b.cursor)
	text := b.LineText(cur.Row)
	eol := lineEnding(b.lines[cur.Row])
	at := byteOffset(text, cur.Col)

	b.lines[cur.Row] = text[:at] + string(r) + text[at:] + eol
	b.cursor = Pos{Row: cur.Row, Col: cur.Col + 1}
	b.version++
}

// InsertNewline splits the current line at the cursor. The suffix keeps the
// line's terminator and becomes the next line; the prefix gets a terminator
// of its own. The cursor moves to the start of the new line.
func (b *Buffer) InsertNewline() {
	cur := b.clampPos(b.cursor)
	row := cur.Row
	text := b.LineText(row)
	eol := lineEnding(b.lines[row])
	at := byteOffset(text, cur.Col)

	prefixEOL := eol
	if prefixEOL == "" {
		prefixEOL = b.eol
	}
	prefix := text[:at] + prefixEOL
	suffix := text[at:] + eol

	out := make([]string, 0, len(b.lines)+1)
	out = append(out, b.lines[:row]...)
	out = append(out, prefix, suffix)
	out = append(out, b.lines[row+1:]...)

	b.lines = out
	b.cursor = Pos{Row: row + 1, Col: 0}
	b.version++
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	cur := b.clampPos(b.cursor)
	row, col := cur.Row, cur.Col
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		text := b.LineText(row)
		eol := lineEnding(b.lines[row])
		start, end := byteOffset(text, col-1), byteOffset(text, col)
		b.lines[row] = text[:start] + text[end:] + eol
		b.cursor = Pos{Row: row, Col: col - 1}
		b.version++
		return
	}

	// Join with previous line (drop its terminator).
	prevRow := row - 1
	prevText := b.LineText(prevRow)
	b.lines[prevRow] = prevText + b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.cursor = Pos{Row: prevRow, Col: utf8.RuneCountInString(prevText)}
	b.version++
}

// byteOffset returns the byte index of rune column col in s. Bytes that are
// not valid UTF-8 count as one column each, so splicing at the offset keeps
// them intact.
func byteOffset(s string, col int) int {
	off := 0
	for i := 0; i < col && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
