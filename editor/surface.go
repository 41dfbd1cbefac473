package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Surface is a terminal-like grid addressed by cells.
type Surface interface {
	// Draw writes text starting at (row, col) with the style of cat.
	Draw(row, col int, text string, cat Category)
	// MoveCursor places the cursor at (row, col).
	MoveCursor(row, col int)
}

type gridCell struct {
	text   string
	cat    Category
	filled bool
	// cont marks the right half of a double-width rune.
	cont bool
}

// Grid is an in-memory Surface that renders to a string with lipgloss.
// Anything drawn outside its bounds is clipped.
type Grid struct {
	width, height int
	cells         [][]gridCell

	cursorRow, cursorCol int
	hasCursor            bool
}

func NewGrid(width, height int) *Grid {
	width = maxInt(width, 0)
	height = maxInt(height, 0)
	cells := make([][]gridCell, height)
	for i := range cells {
		cells[i] = make([]gridCell, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Size() (width, height int) { return g.width, g.height }

func (g *Grid) Draw(row, col int, text string, cat Category) {
	if row < 0 || row >= g.height {
		return
	}
	cells := g.cells[row]
	x := col
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		if x < 0 {
			x += w
			continue
		}
		if x+w > g.width {
			return
		}
		g.clearWide(cells, x, w)
		cells[x] = gridCell{text: string(r), cat: cat, filled: true}
		if w == 2 {
			cells[x+1] = gridCell{cat: cat, filled: true, cont: true}
		}
		x += w
	}
}

// clearWide blanks the halves of double-width runes that a write of width w
// at x would split.
func (g *Grid) clearWide(cells []gridCell, x, w int) {
	if cells[x].cont && x > 0 {
		cells[x-1] = gridCell{text: " ", cat: cells[x-1].cat, filled: true}
	}
	end := x + w
	if end < len(cells) && cells[end].cont {
		cells[end] = gridCell{text: " ", cat: cells[end].cat, filled: true}
	}
}

func (g *Grid) MoveCursor(row, col int) {
	if g.width == 0 || g.height == 0 {
		return
	}
	g.cursorRow = clampInt(row, 0, g.height-1)
	g.cursorCol = clampInt(col, 0, g.width-1)
	g.hasCursor = true
}

// Cell returns the text and category at (row, col). Undrawn cells report
// an empty string.
func (g *Grid) Cell(row, col int) (string, Category) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return "", CategoryNormal
	}
	c := g.cells[row][col]
	return c.text, c.cat
}

// Cursor returns the cursor cell, if one was placed.
func (g *Grid) Cursor() (row, col int, ok bool) {
	return g.cursorRow, g.cursorCol, g.hasCursor
}

type runKey struct {
	cat    Category
	filled bool
	cursor bool
}

// Render joins the rows into a frame, styling runs of equal category with st.
// Trailing undrawn cells are omitted.
func (g *Grid) Render(st Style) string {
	out := make([]string, 0, g.height)
	for y, cells := range g.cells {
		last := -1
		for x := len(cells) - 1; x >= 0; x-- {
			if cells[x].filled {
				last = x
				break
			}
		}
		if g.hasCursor && g.cursorRow == y && g.cursorCol > last {
			last = g.cursorCol
		}

		var sb strings.Builder
		var run strings.Builder
		var key runKey
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleForRun(st, key).Render(run.String()))
			run.Reset()
		}

		for x := 0; x <= last; x++ {
			c := cells[x]
			if c.cont {
				continue
			}
			k := runKey{
				cat:    c.cat,
				filled: c.filled,
				cursor: g.hasCursor && g.cursorRow == y && g.cursorCol == x,
			}
			if k != key {
				flush()
				key = k
			}
			if c.filled {
				run.WriteString(c.text)
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func styleForRun(st Style, k runKey) lipgloss.Style {
	base := lipgloss.NewStyle()
	if k.filled {
		base = st.For(k.cat)
	}
	if k.cursor {
		return st.Cursor.Inherit(base)
	}
	return base
}
