package editor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/sice/buffer"
)

// DefaultTabWidth is used when a non-positive tab width is configured.
const DefaultTabWidth = 4

const exitPrompt = "Save changes? (y/n) "

// RenderDocument draws the lines of doc that fall inside vp, coloring each
// rune by its Classify category. It is a full redraw; nothing is diffed.
func RenderDocument(s Surface, doc Document, vp Viewport, sep rune, tabWidth int) {
	end := minInt(vp.Top+vp.Height(), doc.LineCount())
	for row := maxInt(vp.Top, 0); row < end; row++ {
		y := row - vp.Top
		runes := []rune(doc.LineText(row))
		cats := Classify(string(runes), sep)

		x := 0
		for i, r := range runes {
			cell, w := displayRune(r, tabWidth)
			if w == 0 {
				continue
			}
			s.Draw(y, x, cell, cats[i])
			x += w
		}
	}
}

// StatusText is the status bar content for the given file and cursor.
func StatusText(fileName string, cur buffer.Pos, lineCount int) string {
	return fmt.Sprintf("File: %s - Line: %d/%d - For exit press Ctrl + X", fileName, cur.Row+1, lineCount)
}

// RenderStatus fills row with text in the status category, padded to width.
func RenderStatus(s Surface, row, width int, text string) {
	s.Draw(row, 0, padRight(text, width), CategoryStatus)
}

// RenderPrompt replaces row with prompt and leaves the cursor right after it.
func RenderPrompt(s Surface, row, width int, prompt string) {
	s.Draw(row, 0, padRight(prompt, width), CategoryNormal)
	s.MoveCursor(row, runewidth.StringWidth(prompt))
}

// CursorCell maps a rune column of text to a screen column. Columns past the
// end of the line count one cell each.
func CursorCell(text string, col, tabWidth int) int {
	runes := []rune(text)
	x := 0
	for i := 0; i < col; i++ {
		if i >= len(runes) {
			x += col - i
			break
		}
		_, w := displayRune(runes[i], tabWidth)
		x += w
	}
	return x
}

// displayRune returns what a rune looks like on screen and its width in
// cells. Tabs expand to tabWidth spaces and control runes show as '?'.
func displayRune(r rune, tabWidth int) (string, int) {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	switch {
	case r == '\t':
		return strings.Repeat(" ", tabWidth), tabWidth
	case unicode.IsControl(r):
		return "?", 1
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return "", 0
	}
	return string(r), w
}

func padRight(s string, width int) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
