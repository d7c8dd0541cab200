package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/samdwyer/dungeontiles/internal/tilemap"
)

func TestLoadTileset(t *testing.T) {
	file, err := LoadTileset()
	if err != nil {
		t.Fatalf("Failed to load tileset: %v", err)
	}

	if len(file.Shapes) != len(tilemap.Shapes) {
		t.Errorf("Expected %d shapes, got %d", len(tilemap.Shapes), len(file.Shapes))
	}
	if file.Name != "stone" {
		t.Errorf("Expected tileset name 'stone', got %q", file.Name)
	}
}

func TestTilesetRegistry(t *testing.T) {
	registry, err := LoadTilesetRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}
	if registry.Name() != "stone" {
		t.Errorf("Name() = %q, want stone", registry.Name())
	}
	if registry.Count() != len(tilemap.Shapes) {
		t.Errorf("Count() = %d, want %d", registry.Count(), len(tilemap.Shapes))
	}

	corner := registry.GetByShape(tilemap.ShapeWallCorner)
	if corner == nil {
		t.Fatal("Corner not found by shape")
	}
	if corner.Mesh != "SM_Wall_Corner" {
		t.Errorf("Expected mesh 'SM_Wall_Corner', got %q", corner.Mesh)
	}

	tests := []struct {
		rec  tilemap.TileRecord
		want rune
	}{
		{tilemap.TileRecord{Shape: tilemap.ShapeFloor}, '·'},
		{tilemap.TileRecord{Shape: tilemap.ShapeWall}, '│'},
		{tilemap.TileRecord{Shape: tilemap.ShapeWall, Rotation: 90}, '─'},
		{tilemap.TileRecord{Shape: tilemap.ShapeWallCorner, Rotation: -90}, '┐'},
		{tilemap.TileRecord{Shape: tilemap.ShapeWallTJunction, Rotation: 180}, '├'},
		{tilemap.TileRecord{Shape: tilemap.ShapeWallCross, Rotation: 45}, '┼'}, // falls back to rest glyph
		{tilemap.TileRecord{Shape: tilemap.ShapeNone}, '?'},
	}
	for _, tt := range tests {
		if got := registry.Glyph(tt.rec); got != tt.want {
			t.Errorf("Glyph(%v @ %v) = %q, want %q", tt.rec.Shape, tt.rec.Rotation, got, tt.want)
		}
	}
}

func TestTilesetRegistryRejectsIncompleteTileset(t *testing.T) {
	fsys := fstest.MapFS{
		"partial.json": {Data: []byte(`{"name":"partial","shapes":[{"shape":"floor","glyphs":{"0":"."}}]}`)},
		"dup.json":     {Data: []byte(`{"name":"dup","shapes":[{"shape":"floor"},{"shape":"floor"}]}`)},
		"bad.json":     {Data: []byte(`{"name":"bad","shapes":[{"shape":"bridge"}]}`)},
	}

	for _, name := range []string{"partial.json", "dup.json"} {
		file, err := LoadFS[TilesetFile](fsys, name)
		if err != nil {
			t.Fatalf("LoadFS(%s): %v", name, err)
		}
		if _, err := NewTilesetRegistry(file); err == nil {
			t.Errorf("NewTilesetRegistry(%s) should fail", name)
		}
	}

	if _, err := LoadFS[TilesetFile](fsys, "bad.json"); err == nil {
		t.Error("LoadFS should reject unknown shape names")
	}
	if _, err := LoadFS[TilesetFile](fsys, "missing.json"); err == nil {
		t.Error("LoadFS should fail on a missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFF", true}, // shorthand
		{"#abc", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	short, _ := ParseHexColor("#FFF")
	long, _ := ParseHexColor("#FFFFFF")
	if short != long {
		t.Errorf("shorthand #FFF = %v, want %v", short, long)
	}
}

func TestShapeDefMethods(t *testing.T) {
	def := ShapeDef{
		Shape:  tilemap.ShapeWall,
		Name:   "Test Wall",
		Color:  "#FF0000",
		Glyphs: map[string]string{},
	}

	if def.Glyph(0) != '?' {
		t.Errorf("Expected '?' for missing glyphs, got %c", def.Glyph(0))
	}

	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}

	if RotationKey(-90) != "-90" || RotationKey(90) != "90" || RotationKey(0) != "0" {
		t.Error("RotationKey does not match tileset.json keys")
	}
}
