package tilemap

import "fmt"

// TileShape identifies the prototype instantiated for a record.
type TileShape int

const (
	ShapeNone TileShape = iota
	ShapeFloor
	ShapeWall
	ShapeWallCross
	ShapeWallCorner
	ShapeWallTJunction
)

var shapeNames = map[TileShape]string{
	ShapeNone:          "none",
	ShapeFloor:         "floor",
	ShapeWall:          "wall",
	ShapeWallCross:     "wall_cross",
	ShapeWallCorner:    "wall_corner",
	ShapeWallTJunction: "wall_t",
}

// Shapes lists every placeable shape.
var Shapes = []TileShape{ShapeFloor, ShapeWall, ShapeWallCross, ShapeWallCorner, ShapeWallTJunction}

// String returns the shape's wire name.
func (s TileShape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// IsWall returns true for every wall-family shape.
func (s TileShape) IsWall() bool {
	switch s {
	case ShapeWall, ShapeWallCross, ShapeWallCorner, ShapeWallTJunction:
		return true
	default:
		return false
	}
}

// ParseShape returns the shape with the given wire name.
func ParseShape(name string) (TileShape, error) {
	for shape, n := range shapeNames {
		if n == name && shape != ShapeNone {
			return shape, nil
		}
	}
	return ShapeNone, fmt.Errorf("unknown tile shape %q", name)
}

// MarshalText encodes the shape by name.
func (s TileShape) MarshalText() ([]byte, error) {
	if _, ok := shapeNames[s]; !ok {
		return nil, fmt.Errorf("unknown tile shape %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a shape name.
func (s *TileShape) UnmarshalText(text []byte) error {
	shape, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

// Vector is a world-space position.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// TileRecord is one tile placement. Several records may share a position,
// e.g. a wall and the floor beneath it.
type TileRecord struct {
	Shape    TileShape `json:"type"`
	Rotation float64   `json:"rotation"`
	Position Vector    `json:"location"`
}

// WorldPosition scales a grid position onto the ground plane.
func WorldPosition(p Position, scale float64) Vector {
	return Vector{X: float64(p.Col) * scale, Y: float64(p.Row) * scale}
}
