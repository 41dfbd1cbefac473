package editor

import "github.com/iw2rmb/sice/buffer"

// Document is the read-only view of a buffer used for navigation and
// rendering.
type Document interface {
	LineCount() int
	LineText(row int) string
	LineLen(row int) int
}

// Viewport maps a window of consecutive document rows onto the terminal.
type Viewport struct {
	// Top is the document row rendered at screen row 0.
	Top int
	// Rows is the number of content rows, excluding the status bar.
	Rows int
}

// Height returns Rows, treating anything below one as a single row.
func (v Viewport) Height() int {
	if v.Rows < 1 {
		return 1
	}
	return v.Rows
}

// Contains reports whether row is on screen.
func (v Viewport) Contains(row int) bool {
	return row >= v.Top && row < v.Top+v.Height()
}

// Follow scrolls by the minimum amount that makes row visible.
func (v Viewport) Follow(row int) Viewport {
	h := v.Height()
	if row < v.Top {
		v.Top = row
	} else if row >= v.Top+h {
		v.Top = row - h + 1
	}
	if v.Top < 0 {
		v.Top = 0
	}
	return v
}

// MoveUp moves the cursor one row up. The column is deliberately left as is,
// even when it exceeds the length of the new line.
func MoveUp(doc Document, cur buffer.Pos, vp Viewport) (buffer.Pos, Viewport) {
	if cur.Row <= 0 {
		return cur, vp
	}
	cur.Row--
	if cur.Row < vp.Top {
		vp.Top--
	}
	return cur, vp
}

// MoveDown moves the cursor one row down, leaving the column unclamped.
func MoveDown(doc Document, cur buffer.Pos, vp Viewport) (buffer.Pos, Viewport) {
	if cur.Row >= doc.LineCount()-1 {
		return cur, vp
	}
	cur.Row++
	if cur.Row-vp.Top >= vp.Height() {
		vp.Top++
	}
	return cur, vp
}

// MoveLeft moves one column left without crossing to the previous line.
func MoveLeft(doc Document, cur buffer.Pos, vp Viewport) (buffer.Pos, Viewport) {
	cur.Col = clampInt(cur.Col, 0, doc.LineLen(cur.Row))
	if cur.Col > 0 {
		cur.Col--
	}
	return cur, vp
}

// MoveRight moves one column right, stopping at the end of the line.
func MoveRight(doc Document, cur buffer.Pos, vp Viewport) (buffer.Pos, Viewport) {
	n := doc.LineLen(cur.Row)
	cur.Col = clampInt(cur.Col, 0, n)
	if cur.Col < n {
		cur.Col++
	}
	return cur, vp
}

// PageDown scrolls one screen down while the last line is still below the
// screen.
func PageDown(doc Document, cur buffer.Pos, vp Viewport) (buffer.Pos, Viewport) {
	h := vp.Height()
	last := doc.LineCount() - 1
	if vp.Top+h >= last {
		return cur, vp
	}
	vp.Top += h
	cur.Row = minInt(cur.Row+h, last)
	return cur, vp
}

// PageUp scrolls one screen up unless the viewport is already at the top.
func PageUp(doc Document, cur buffer.Pos, vp Viewport) (buffer.Pos, Viewport) {
	if vp.Top <= 0 {
		return cur, vp
	}
	h := vp.Height()
	vp.Top = maxInt(vp.Top-h, 0)
	cur.Row = maxInt(cur.Row-h, 0)
	return cur, vp
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
