package gamedata

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeontiles/internal/tilemap"
)

// ShapeDef describes how one tile shape is presented: the mesh prototype a
// host engine instantiates and the glyphs used by the terminal preview.
type ShapeDef struct {
	Shape  tilemap.TileShape `json:"shape"`
	Name   string            `json:"name"`   // Display name (e.g., "Wall Corner")
	Mesh   string            `json:"mesh"`   // Prototype asset id (e.g., "SM_Wall_Corner")
	Color  string            `json:"color"`  // Hex color code for the preview
	Glyphs map[string]string `json:"glyphs"` // Preview glyph keyed by rotation in degrees
}

// Glyph returns the preview rune for the given rotation. Rotations without
// an entry fall back to the rest glyph, then to '?'.
func (s *ShapeDef) Glyph(rotation float64) rune {
	if g, ok := s.Glyphs[RotationKey(rotation)]; ok && g != "" {
		return []rune(g)[0]
	}
	if g, ok := s.Glyphs["0"]; ok && g != "" {
		return []rune(g)[0]
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (s *ShapeDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// RotationKey formats a rotation the way tileset.json keys it.
func RotationKey(rotation float64) string {
	return strconv.FormatFloat(rotation, 'f', -1, 64)
}

// TilesetFile represents the structure of tileset.json.
type TilesetFile struct {
	Name   string     `json:"name"`
	Shapes []ShapeDef `json:"shapes"`
}

// LoadTileset loads shape definitions from the embedded tileset.json file.
func LoadTileset() (TilesetFile, error) {
	return Load[TilesetFile]("tileset.json")
}
