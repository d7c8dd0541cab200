package tilemap

import (
	"fmt"
	"strings"
)

// Summary counts resolved records per shape.
type Summary struct {
	Records int
	ByShape map[TileShape]int
}

// Summarize tallies records by shape.
func Summarize(records []TileRecord) Summary {
	s := Summary{Records: len(records), ByShape: make(map[TileShape]int)}
	for _, rec := range records {
		s.ByShape[rec.Shape]++
	}
	return s
}

// Walls returns the number of wall-family records.
func (s Summary) Walls() int {
	n := 0
	for shape, count := range s.ByShape {
		if shape.IsWall() {
			n += count
		}
	}
	return n
}

// String formats the summary in shape order, e.g. "12 records (floor=8 wall=4)".
func (s Summary) String() string {
	parts := make([]string, 0, len(Shapes))
	for _, shape := range Shapes {
		if n := s.ByShape[shape]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", shape, n))
		}
	}
	return fmt.Sprintf("%d records (%s)", s.Records, strings.Join(parts, " "))
}
