// Package export writes resolved tile records for host engines and humans.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samdwyer/dungeontiles/internal/config"
	"github.com/samdwyer/dungeontiles/internal/tilemap"
)

// Document is the JSON envelope written by WriteJSON.
type Document struct {
	Source string               `json:"source"`
	Scale  float64              `json:"scale"`
	Tiles  []tilemap.TileRecord `json:"tiles"`
}

// WriteJSON writes records as an indented JSON document.
func WriteJSON(w io.Writer, source string, scale float64, records []tilemap.TileRecord) error {
	if records == nil {
		records = []tilemap.TileRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Source: source, Scale: scale, Tiles: records}); err != nil {
		return fmt.Errorf("failed to encode tiles: %w", err)
	}
	return nil
}

// WriteTable writes one aligned line per record.
func WriteTable(w io.Writer, records []tilemap.TileRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tROTATION\tX\tY\tZ")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\n", r.Shape, r.Rotation, r.Position.X, r.Position.Y, r.Position.Z)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// Write dispatches on a config output format.
func Write(w io.Writer, format, source string, scale float64, records []tilemap.TileRecord) error {
	switch format {
	case config.FormatJSON:
		return WriteJSON(w, source, scale, records)
	case config.FormatTable:
		return WriteTable(w, records)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
