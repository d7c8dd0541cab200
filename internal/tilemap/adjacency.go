package tilemap

import "math/bits"

// Direction is one of the four cardinal neighbors of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the cardinal directions in bit order.
var Directions = [4]Direction{North, South, East, West}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Neighbor returns the position one step from p in direction d.
//
// The legend is fixed: North is the next row down, East is the previous
// column. Rendered tilesets depend on this orientation, so it must not be
// flipped. The result may lie outside the grid.
func Neighbor(p Position, d Direction) Position {
	switch d {
	case North:
		return Position{Col: p.Col, Row: p.Row + 1}
	case South:
		return Position{Col: p.Col, Row: p.Row - 1}
	case East:
		return Position{Col: p.Col - 1, Row: p.Row}
	case West:
		return Position{Col: p.Col + 1, Row: p.Row}
	default:
		return p
	}
}

// expectedKind is the wall orientation that continues structurally from a
// junction toward d.
func expectedKind(d Direction) CellKind {
	if d == North || d == South {
		return CellWallVertical
	}
	return CellWallHorizontal
}

// AdjacencyPattern is a 4-bit set of connecting neighbors of a junction.
type AdjacencyPattern uint8

// Bit returns the single-direction pattern for d.
func Bit(d Direction) AdjacencyPattern {
	return 1 << uint(d)
}

// The sixteen adjacency patterns.
const (
	PatternNone AdjacencyPattern = 0

	PatternN = AdjacencyPattern(1 << North)
	PatternS = AdjacencyPattern(1 << South)
	PatternE = AdjacencyPattern(1 << East)
	PatternW = AdjacencyPattern(1 << West)

	PatternNS = PatternN | PatternS
	PatternEW = PatternE | PatternW
	PatternNE = PatternN | PatternE
	PatternNW = PatternN | PatternW
	PatternSE = PatternS | PatternE
	PatternSW = PatternS | PatternW

	PatternNSE = PatternN | PatternS | PatternE
	PatternNSW = PatternN | PatternS | PatternW
	PatternNEW = PatternN | PatternE | PatternW
	PatternSEW = PatternS | PatternE | PatternW

	PatternNSEW = PatternN | PatternS | PatternE | PatternW
)

// Has reports whether d is set in the pattern.
func (a AdjacencyPattern) Has(d Direction) bool {
	return a&Bit(d) != 0
}

// Count returns the number of connecting neighbors.
func (a AdjacencyPattern) Count() int {
	return bits.OnesCount8(uint8(a & PatternNSEW))
}

// Missing returns the directions not set in the pattern.
func (a AdjacencyPattern) Missing() AdjacencyPattern {
	return ^a & PatternNSEW
}

// String returns the set directions as compass letters, or "none".
func (a AdjacencyPattern) String() string {
	if a&PatternNSEW == 0 {
		return "none"
	}
	letters := [4]byte{'N', 'S', 'E', 'W'}
	out := make([]byte, 0, 4)
	for i, d := range Directions {
		if a.Has(d) {
			out = append(out, letters[i])
		}
	}
	return string(out)
}

// Adjacency computes the pattern for the cell at p. A neighbor counts when it
// is inside the grid and is a wall running toward p: vertical walls to the
// north and south, horizontal walls to the east and west.
func Adjacency(g Grid, p Position) AdjacencyPattern {
	var pattern AdjacencyPattern
	for _, d := range Directions {
		r, ok := g.CharAt(Neighbor(p, d))
		if ok && Classify(r) == expectedKind(d) {
			pattern |= Bit(d)
		}
	}
	return pattern
}
