// Package world generates sample dungeon layouts in the ASCII map legend.
package world

import "github.com/samdwyer/dungeontiles/internal/tilemap"

// Tile represents a single layout character.
type Tile rune

const (
	// TileEmpty is solid rock outside every room and corridor.
	TileEmpty Tile = ' '
	// TileFloor represents a passable floor tile.
	TileFloor Tile = tilemap.CharFloor
	// TileWallHorizontal runs along the top and bottom of open space.
	TileWallHorizontal Tile = tilemap.CharHorizontalWall
	// TileWallVertical runs along the sides of open space.
	TileWallVertical Tile = tilemap.CharVerticalWall
	// TileJunction marks where walls meet; its shape is resolved later.
	TileJunction Tile = tilemap.CharJunction
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's layout character.
func (t Tile) Rune() rune {
	return rune(t)
}
