package tilemap

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/dungeontiles/internal/ctxlog"
	"github.com/samdwyer/dungeontiles/internal/telemetry"
)

// DefaultScale keeps world coordinates equal to grid coordinates.
const DefaultScale = 1.0

// Rotations in degrees. Angles are signed: a quarter turn clockwise from the
// prototype's rest orientation is -90.
const (
	Rotation0   = 0.0
	Rotation90  = 90.0
	Rotation180 = 180.0
	RotationNeg = -90.0
)

// ResolveJunction decides the shape and rotation of the junction at p from
// its adjacency pattern.
//
// Corners open toward their two connected directions. T-junctions are
// rotated by the direction they lack; the same angle table is shared with
// the corners so that S+E and the missing-W tee both sit at rest.
func ResolveJunction(g Grid, p Position) (TileShape, float64) {
	return shapeFor(Adjacency(g, p))
}

func shapeFor(pattern AdjacencyPattern) (TileShape, float64) {
	switch pattern {
	// Isolated junctions degrade to a bare wall marker.
	case PatternNone:
		return ShapeWall, Rotation0

	// Single neighbor: a wall stub running toward it.
	case PatternN, PatternS:
		return ShapeWall, Rotation0
	case PatternE, PatternW:
		return ShapeWall, Rotation90

	// Pass-through junctions are straight walls.
	case PatternNS:
		return ShapeWall, Rotation0
	case PatternEW:
		return ShapeWall, Rotation90

	case PatternSE:
		return ShapeWallCorner, Rotation0
	case PatternSW:
		return ShapeWallCorner, Rotation90
	case PatternNW:
		return ShapeWallCorner, Rotation180
	case PatternNE:
		return ShapeWallCorner, RotationNeg

	// Tees, named by the connected directions; the stem faces the missing one.
	case PatternNSE:
		return ShapeWallTJunction, Rotation0
	case PatternSEW:
		return ShapeWallTJunction, Rotation90
	case PatternNSW:
		return ShapeWallTJunction, Rotation180
	case PatternNEW:
		return ShapeWallTJunction, RotationNeg

	case PatternNSEW:
		return ShapeWallCross, Rotation0
	}
	return ShapeWall, Rotation0
}

// Option configures a Resolve call.
type Option func(*resolveOptions)

type resolveOptions struct {
	workers int
}

// WithWorkers resolves rows on a pool of n goroutines. Values below 2 keep
// resolution on the calling goroutine. Output order is unaffected.
func WithWorkers(n int) Option {
	return func(o *resolveOptions) {
		o.workers = n
	}
}

// resolveCell appends the records contributed by the cell at p.
func resolveCell(out []TileRecord, g Grid, p Position, scale float64) []TileRecord {
	r, ok := g.CharAt(p)
	if !ok {
		return out
	}

	var shape TileShape
	var rotation float64
	switch Classify(r) {
	case CellFloor:
		return append(out, TileRecord{Shape: ShapeFloor, Position: WorldPosition(p, scale)})
	case CellWallHorizontal:
		shape, rotation = ShapeWall, Rotation90
	case CellWallVertical:
		shape, rotation = ShapeWall, Rotation0
	case CellJunction:
		shape, rotation = ResolveJunction(g, p)
	default:
		return out
	}

	pos := WorldPosition(p, scale)
	return append(out,
		TileRecord{Shape: shape, Rotation: rotation, Position: pos},
		TileRecord{Shape: ShapeFloor, Position: pos},
	)
}

// resolveRow returns the records of a single row in column order.
func resolveRow(g Grid, row int, scale float64) []TileRecord {
	var out []TileRecord
	for col := 0; col < g.Width(row); col++ {
		out = resolveCell(out, g, Position{Col: col, Row: row}, scale)
	}
	return out
}

// Resolve walks g in reading order and returns its tile records. Each
// non-empty cell contributes its own record followed by a floor companion
// when it is a wall or junction.
func Resolve(ctx context.Context, g Grid, scale float64, opts ...Option) []TileRecord {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	tracer := telemetry.Tracer("tilemap")
	ctx, span := tracer.Start(ctx, "tilemap.resolve")
	defer span.End()

	startTime := time.Now()
	parseID := uuid.NewString()

	rows := make([][]TileRecord, g.Rows())
	if o.workers > 1 && g.Rows() > 1 {
		var eg errgroup.Group
		eg.SetLimit(o.workers)
		for row := range rows {
			row := row
			eg.Go(func() error {
				rows[row] = resolveRow(g, row, scale)
				return nil
			})
		}
		// Workers never fail.
		_ = eg.Wait()
	} else {
		for row := range rows {
			rows[row] = resolveRow(g, row, scale)
		}
	}

	total := 0
	for _, r := range rows {
		total += len(r)
	}
	out := make([]TileRecord, 0, total)
	for _, r := range rows {
		out = append(out, r...)
	}

	junctions := g.Count(CellJunction)
	span.SetAttributes(
		attribute.String("parse.id", parseID),
		attribute.Int("grid.rows", g.Rows()),
		attribute.Int("grid.cells", g.Cells()),
		attribute.Int("resolve.workers", max(o.workers, 1)),
		attribute.Int("resolve.records", len(out)),
		attribute.Int("resolve.junctions", junctions),
		attribute.Int64("resolve.duration_us", time.Since(startTime).Microseconds()),
	)

	ctxlog.FromContext(ctx).Debug("map resolved",
		"parse_id", parseID,
		"rows", g.Rows(),
		"records", len(out),
		"junctions", junctions,
	)

	return out
}

// LoadMap parses text and resolves it into tile records placed at
// scale world units per cell. Empty text yields no records.
func LoadMap(ctx context.Context, text string, scale float64, opts ...Option) []TileRecord {
	return Resolve(ctx, Build(text), scale, opts...)
}
