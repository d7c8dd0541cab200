// Package tilemap turns ASCII dungeon layouts into tile placement records.
//
// A layout is read one character per cell using a fixed legend:
//
//	'-'  horizontal wall
//	'|'  vertical wall
//	'+'  junction (shape decided from the neighboring walls)
//	'f'  floor
//
// Every other character, whitespace included, is an empty cell. Line breaks
// delimit rows and are never cells themselves.
package tilemap

import "strings"

// Legend characters.
const (
	CharHorizontalWall = '-'
	CharVerticalWall   = '|'
	CharJunction       = '+'
	CharFloor          = 'f'
)

// CellKind is the classification of a single grid character.
type CellKind int

const (
	// CellEmpty covers whitespace and every character outside the legend.
	CellEmpty CellKind = iota
	CellFloor
	CellWallHorizontal
	CellWallVertical
	CellJunction
)

// String returns a human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellFloor:
		return "floor"
	case CellWallHorizontal:
		return "wall_horizontal"
	case CellWallVertical:
		return "wall_vertical"
	case CellJunction:
		return "junction"
	default:
		return "unknown"
	}
}

// IsWall returns true for both straight wall orientations.
func (k CellKind) IsWall() bool {
	return k == CellWallHorizontal || k == CellWallVertical
}

// Classify maps a single character to its cell kind.
func Classify(r rune) CellKind {
	switch r {
	case CharFloor:
		return CellFloor
	case CharHorizontalWall:
		return CellWallHorizontal
	case CharVerticalWall:
		return CellWallVertical
	case CharJunction:
		return CellJunction
	default:
		return CellEmpty
	}
}

// Position is a (column, row) grid coordinate. The origin is the first
// character of the first line.
type Position struct {
	Col int
	Row int
}

// Grid is an immutable character grid. Rows may have different lengths.
type Grid struct {
	rows [][]rune
}

// Build splits text into lines and returns the resulting grid. A trailing
// carriage return is part of the line break, and a final newline does not
// start an extra row. Empty text yields an empty grid.
func Build(text string) Grid {
	if text == "" {
		return Grid{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return BuildLines(lines)
}

// BuildLines builds a grid from already split lines, one row per line.
func BuildLines(lines []string) Grid {
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSuffix(line, "\r"))
	}
	return Grid{rows: rows}
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g.rows)
}

// Width returns the length of the given row, or 0 if the row does not exist.
func (g Grid) Width(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Cells returns the total number of characters in the grid.
func (g Grid) Cells() int {
	n := 0
	for _, row := range g.rows {
		n += len(row)
	}
	return n
}

// CharAt returns the character at p. The second result is false when p lies
// outside the grid, which is an ordinary outcome at map edges.
func (g Grid) CharAt(p Position) (rune, bool) {
	if p.Row < 0 || p.Row >= len(g.rows) {
		return 0, false
	}
	row := g.rows[p.Row]
	if p.Col < 0 || p.Col >= len(row) {
		return 0, false
	}
	return row[p.Col], true
}

// KindAt classifies the character at p. Out-of-range positions are empty.
func (g Grid) KindAt(p Position) CellKind {
	r, ok := g.CharAt(p)
	if !ok {
		return CellEmpty
	}
	return Classify(r)
}

// Count returns the number of cells of the given kind.
func (g Grid) Count(kind CellKind) int {
	n := 0
	for _, row := range g.rows {
		for _, r := range row {
			if Classify(r) == kind {
				n++
			}
		}
	}
	return n
}
