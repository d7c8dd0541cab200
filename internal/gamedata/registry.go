package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeontiles/internal/tilemap"
)

// TilesetRegistry holds loaded shape definitions keyed by shape.
type TilesetRegistry struct {
	name   string
	shapes map[tilemap.TileShape]*ShapeDef
}

// NewTilesetRegistry creates a registry from a loaded tileset. Every
// placeable shape must be defined exactly once.
func NewTilesetRegistry(file TilesetFile) (*TilesetRegistry, error) {
	registry := &TilesetRegistry{
		name:   file.Name,
		shapes: make(map[tilemap.TileShape]*ShapeDef),
	}
	for i := range file.Shapes {
		def := &file.Shapes[i]
		if _, dup := registry.shapes[def.Shape]; dup {
			return nil, fmt.Errorf("tileset %s: shape %s defined twice", file.Name, def.Shape)
		}
		registry.shapes[def.Shape] = def
	}
	for _, shape := range tilemap.Shapes {
		if registry.shapes[shape] == nil {
			return nil, fmt.Errorf("tileset %s: missing shape %s", file.Name, shape)
		}
	}
	return registry, nil
}

// LoadTilesetRegistry loads and creates a registry from the embedded tileset.json.
func LoadTilesetRegistry() (*TilesetRegistry, error) {
	file, err := LoadTileset()
	if err != nil {
		return nil, err
	}
	if len(file.Shapes) == 0 {
		return nil, errors.New("no shapes loaded from tileset.json")
	}
	return NewTilesetRegistry(file)
}

// MustLoadTilesetRegistry loads a registry, panicking on error.
func MustLoadTilesetRegistry() *TilesetRegistry {
	registry, err := LoadTilesetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Name returns the tileset name.
func (r *TilesetRegistry) Name() string {
	return r.name
}

// GetByShape returns the definition for shape, or nil if not found.
func (r *TilesetRegistry) GetByShape(shape tilemap.TileShape) *ShapeDef {
	return r.shapes[shape]
}

// Glyph returns the preview glyph of a record.
func (r *TilesetRegistry) Glyph(rec tilemap.TileRecord) rune {
	def := r.shapes[rec.Shape]
	if def == nil {
		return '?'
	}
	return def.Glyph(rec.Rotation)
}

// Count returns the number of shapes in the registry.
func (r *TilesetRegistry) Count() int {
	return len(r.shapes)
}
