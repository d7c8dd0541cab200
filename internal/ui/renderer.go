package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeontiles/internal/gamedata"
	"github.com/samdwyer/dungeontiles/internal/tilemap"
)

// Renderer draws resolved maps to a canvas.
type Renderer struct {
	canvas  Canvas
	tileset *gamedata.TilesetRegistry
}

// NewRenderer creates a new renderer for the given canvas and tileset.
func NewRenderer(canvas Canvas, tileset *gamedata.TilesetRegistry) *Renderer {
	return &Renderer{canvas: canvas, tileset: tileset}
}

// Viewport is the grid cell drawn at the top-left of the canvas.
type Viewport struct {
	Col, Row int
}

// RenderTiles draws resolved records. World positions are mapped back to
// grid cells with scale; floors are drawn first so walls stay visible.
func (r *Renderer) RenderTiles(records []tilemap.TileRecord, scale float64, vp Viewport) {
	if scale == 0 {
		scale = tilemap.DefaultScale
	}
	for _, floors := range []bool{true, false} {
		for _, rec := range records {
			if (rec.Shape == tilemap.ShapeFloor) != floors {
				continue
			}
			x := int(math.Round(rec.Position.X/scale)) - vp.Col
			y := int(math.Round(rec.Position.Y/scale)) - vp.Row
			r.setCell(x, y, r.tileset.Glyph(rec), r.getTileStyle(rec.Shape))
		}
	}
}

// RenderSource draws the raw layout characters.
func (r *Renderer) RenderSource(lines []string, vp Viewport) {
	for row, line := range lines {
		col := 0
		for _, ch := range line {
			style := tcell.StyleDefault.Foreground(tcell.ColorGray)
			if tilemap.Classify(ch) == tilemap.CellJunction {
				style = style.Foreground(tcell.ColorYellow).Bold(true)
			}
			r.setCell(col-vp.Col, row-vp.Row, ch, style)
			col++
		}
	}
}

// getTileStyle returns the appropriate style for a tile shape.
func (r *Renderer) getTileStyle(shape tilemap.TileShape) tcell.Style {
	def := r.tileset.GetByShape(shape)
	if def == nil {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(def.TCellColor())
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}

// setCell draws within the canvas, leaving the bottom row for messages.
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	w, h := r.canvas.Size()
	if x < 0 || y < 0 || x >= w || y >= h-1 {
		return
	}
	r.canvas.SetContent(x, y, ch, style)
}
