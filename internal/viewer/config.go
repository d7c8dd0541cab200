package viewer

import "github.com/samdwyer/dungeontiles/internal/tilemap"

// Config holds what the viewer displays.
type Config struct {
	// Title is shown in the status line, usually the map reference.
	Title string
	// Lines is the layout text, one row per entry.
	Lines []string
	// Records are the resolved tiles for Lines.
	Records []tilemap.TileRecord
	// Scale is the multiplier the records were resolved with.
	Scale float64
}
