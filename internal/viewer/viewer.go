package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeontiles/internal/gamedata"
	"github.com/samdwyer/dungeontiles/internal/telemetry"
	"github.com/samdwyer/dungeontiles/internal/tilemap"
	"github.com/samdwyer/dungeontiles/internal/ui"
)

// Viewer holds the preview state.
type Viewer struct {
	screen   *ui.Screen
	canvas   ui.Canvas
	renderer *ui.Renderer
	tileset  *gamedata.TilesetRegistry
	cfg      Config
	summary  tilemap.Summary
	viewport ui.Viewport
	state    State
	running  bool
}

// New opens the terminal and creates a viewer for cfg.
func New(cfg Config, tileset *gamedata.TilesetRegistry) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	v := newViewer(screen, cfg, tileset)
	v.screen = screen
	return v, nil
}

func newViewer(canvas ui.Canvas, cfg Config, tileset *gamedata.TilesetRegistry) *Viewer {
	return &Viewer{
		canvas:   canvas,
		renderer: ui.NewRenderer(canvas, tileset),
		tileset:  tileset,
		cfg:      cfg,
		summary:  tilemap.Summarize(cfg.Records),
		state:    StateTiles,
		running:  true,
	}
}

// Run executes the preview loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.run")
	defer span.End()

	span.SetAttributes(
		attribute.String("map.title", v.cfg.Title),
		attribute.Int("map.rows", len(v.cfg.Lines)),
		attribute.Int("map.records", len(v.cfg.Records)),
		attribute.String("tileset.name", v.tileset.Name()),
		attribute.Int("tileset.shapes", v.tileset.Count()),
	)

	switches := 0
	for v.running {
		v.render()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			before := v.state
			v.handleKeyEvent(ctx, ev)
			if v.state != before {
				switches++
			}
		case *tcell.EventResize:
			v.screen.Sync()
		case nil:
			// Screen finalized underneath us.
			v.running = false
		}
	}

	span.SetAttributes(attribute.Int("viewer.view_switches", switches))
	v.screen.Close()
	return nil
}

// render draws the current state.
func (v *Viewer) render() {
	v.canvas.Clear()

	switch v.state {
	case StateTiles:
		v.renderer.RenderTiles(v.cfg.Records, v.cfg.Scale, v.viewport)
	case StateSource:
		v.renderer.RenderSource(v.cfg.Lines, v.viewport)
	}

	_, h := v.canvas.Size()
	v.renderer.RenderMessage(v.statusLine(), h-1)
	v.canvas.Show()
}

func (v *Viewer) statusLine() string {
	return fmt.Sprintf("%s [%s] %s: %s  tab:view arrows:pan q:quit", v.cfg.Title, v.state, v.tileset.Name(), v.summary)
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyTab:
		v.switchView(ctx, v.state.Next())

	case tcell.KeyUp:
		v.pan(0, -1)
	case tcell.KeyDown:
		v.pan(0, 1)
	case tcell.KeyLeft:
		v.pan(-1, 0)
	case tcell.KeyRight:
		v.pan(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 's':
			v.switchView(ctx, StateSource)
		case 't':
			v.switchView(ctx, StateTiles)
		}
	}
}

// switchView changes the displayed view. Selecting the current view is a
// no-op.
func (v *Viewer) switchView(ctx context.Context, to State) {
	if to == v.state {
		return
	}
	tracer := telemetry.Tracer("viewer")
	_, span := tracer.Start(ctx, "viewer.switch_view")
	defer span.End()

	span.SetAttributes(
		attribute.String("view.from", v.state.String()),
		attribute.String("view.to", to.String()),
	)
	v.state = to
}

// pan moves the viewport, never past the top-left of the map.
func (v *Viewer) pan(dx, dy int) {
	v.viewport.Col = max(0, v.viewport.Col+dx)
	v.viewport.Row = max(0, v.viewport.Row+dy)
}
