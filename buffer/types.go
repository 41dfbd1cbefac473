package buffer

// Pos points into the document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}

// ClampRow clamps only the row of p. The column is kept as long as it is not
// negative, so a cursor may sit past the end of a shorter line after moving
// vertically.
func ClampRow(p Pos, rowCount int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	col := p.Col
	if col < 0 {
		col = 0
	}
	return Pos{Row: clampInt(p.Row, 0, rowCount-1), Col: col}
}
