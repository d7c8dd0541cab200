package tilemap

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rec(shape TileShape, rotation float64, col, row int) TileRecord {
	return TileRecord{Shape: shape, Rotation: rotation, Position: Vector{X: float64(col), Y: float64(row)}}
}

func floorAt(col, row int) TileRecord {
	return rec(ShapeFloor, 0, col, row)
}

func TestResolveJunctionTable(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		shape    TileShape
		rotation float64
	}{
		{"cross", []string{" | ", "-+-", " | "}, ShapeWallCross, 0},
		{"tee missing north", []string{" | ", "-+-", "   "}, ShapeWallTJunction, 90},
		{"tee missing south", []string{"   ", "-+-", " | "}, ShapeWallTJunction, -90},
		{"tee missing east", []string{" | ", " +-", " | "}, ShapeWallTJunction, 180},
		{"tee missing west", []string{" | ", "-+ ", " | "}, ShapeWallTJunction, 0},
		{"corner north east", []string{"   ", "-+ ", " | "}, ShapeWallCorner, -90},
		{"corner north west", []string{"   ", " +-", " | "}, ShapeWallCorner, 180},
		{"corner south east", []string{" | ", "-+ ", "   "}, ShapeWallCorner, 0},
		{"corner south west", []string{" | ", " +-", "   "}, ShapeWallCorner, 90},
		{"straight vertical", []string{" | ", " + ", " | "}, ShapeWall, 0},
		{"straight horizontal", []string{"   ", "-+-", "   "}, ShapeWall, 90},
		{"stub north", []string{"   ", " + ", " | "}, ShapeWall, 0},
		{"stub west", []string{"   ", " +-", "   "}, ShapeWall, 90},
		{"isolated", []string{"   ", " + ", "   "}, ShapeWall, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, rotation := ResolveJunction(BuildLines(tt.lines), Position{Col: 1, Row: 1})
			if shape != tt.shape || rotation != tt.rotation {
				t.Errorf("ResolveJunction = (%v, %v), want (%v, %v)", shape, rotation, tt.shape, tt.rotation)
			}
		})
	}
}

func TestTeeRotationsAreDistinct(t *testing.T) {
	seen := map[float64]AdjacencyPattern{}
	for _, p := range []AdjacencyPattern{PatternNSE, PatternNSW, PatternNEW, PatternSEW} {
		shape, rotation := shapeFor(p)
		if shape != ShapeWallTJunction {
			t.Fatalf("shapeFor(%v) = %v, want tee", p, shape)
		}
		if prev, ok := seen[rotation]; ok {
			t.Errorf("patterns %v and %v share rotation %v", prev, p, rotation)
		}
		seen[rotation] = p
	}
}

func TestEveryPatternResolves(t *testing.T) {
	for p := AdjacencyPattern(0); p <= PatternNSEW; p++ {
		shape, _ := shapeFor(p)
		switch p.Count() {
		case 4:
			if shape != ShapeWallCross {
				t.Errorf("%v: got %v, want cross", p, shape)
			}
		case 3:
			if shape != ShapeWallTJunction {
				t.Errorf("%v: got %v, want tee", p, shape)
			}
		case 2:
			straight := p == PatternNS || p == PatternEW
			if straight && shape != ShapeWall {
				t.Errorf("%v: got %v, want wall", p, shape)
			}
			if !straight && shape != ShapeWallCorner {
				t.Errorf("%v: got %v, want corner", p, shape)
			}
		default:
			if shape != ShapeWall {
				t.Errorf("%v: got %v, want wall", p, shape)
			}
		}
	}
}

func TestLoadMapCross(t *testing.T) {
	got := LoadMap(context.Background(), " | \n-+-\n | ", 1)

	want := []TileRecord{
		rec(ShapeWall, 0, 1, 0), floorAt(1, 0),
		rec(ShapeWall, 90, 0, 1), floorAt(0, 1),
		rec(ShapeWallCross, 0, 1, 1), floorAt(1, 1),
		rec(ShapeWall, 90, 2, 1), floorAt(2, 1),
		rec(ShapeWall, 0, 1, 2), floorAt(1, 2),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadMap mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMapHorizontalPassThrough(t *testing.T) {
	got := Resolve(context.Background(), BuildLines([]string{"-+-", "   ", "-+-"}), 1)

	var want []TileRecord
	for _, row := range []int{0, 2} {
		for col := 0; col < 3; col++ {
			want = append(want, rec(ShapeWall, 90, col, row), floorAt(col, row))
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMapWrongOrientationNeighbors(t *testing.T) {
	got := Resolve(context.Background(), BuildLines([]string{"|+|"}), 1)

	want := []TileRecord{
		rec(ShapeWall, 0, 0, 0), floorAt(0, 0),
		rec(ShapeWall, 0, 1, 0), floorAt(1, 0),
		rec(ShapeWall, 0, 2, 0), floorAt(2, 0),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMapIsolatedJunctionKeepsFloor(t *testing.T) {
	got := LoadMap(context.Background(), "+", 1)

	want := []TileRecord{rec(ShapeWall, 0, 0, 0), floorAt(0, 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadMap mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMapEmpty(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   \n  x "} {
		if got := LoadMap(context.Background(), text, 1); len(got) != 0 {
			t.Errorf("LoadMap(%q) returned %d records, want 0", text, len(got))
		}
	}
}

func TestRecordCountWithoutJunctions(t *testing.T) {
	text := strings.Join([]string{
		"|--------|",
		"|ffff ff |",
		"| f  ?ff |",
		"|---  ---|",
		"ff",
	}, "\n")

	g := Build(text)
	want := g.Count(CellFloor) + 2*(g.Count(CellWallHorizontal)+g.Count(CellWallVertical))

	got := Resolve(context.Background(), g, 1)
	if len(got) != want {
		t.Errorf("got %d records, want %d", len(got), want)
	}
}

func TestWallsAlwaysFollowedByFloor(t *testing.T) {
	text := "+--+--+\n|ff|ff|\n+--+--+\n|ffffff\n+-----+"
	got := LoadMap(context.Background(), text, 2)

	for i, r := range got {
		if !r.Shape.IsWall() {
			continue
		}
		if i+1 >= len(got) {
			t.Fatalf("wall at index %d has no companion", i)
		}
		next := got[i+1]
		if next.Shape != ShapeFloor || next.Rotation != 0 || next.Position != r.Position {
			t.Errorf("record %d: expected floor companion at %v, got %+v", i, r.Position, next)
		}
	}
}

func TestScaleMultiplier(t *testing.T) {
	got := LoadMap(context.Background(), "ff\nf", 2.5)

	want := []Vector{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 0, Y: 2.5}}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Position != want[i] {
			t.Errorf("record %d at %v, want %v", i, got[i].Position, want[i])
		}
		if got[i].Position.Z != 0 {
			t.Errorf("record %d has non-zero Z", i)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	text := "+--+\n|ff|\n+-++\n  | \n  + "
	first := LoadMap(context.Background(), text, 1.5)
	second := LoadMap(context.Background(), text, 1.5)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated resolve differs (-first +second):\n%s", diff)
	}
}

func TestResolveWorkersMatchSequential(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("+--+ff|f-+|\n")
		b.WriteString("|ff+--+ |f \n")
	}
	g := Build(b.String())

	sequential := Resolve(context.Background(), g, 1)
	for _, workers := range []int{2, 4, 16} {
		parallel := Resolve(context.Background(), g, 1, WithWorkers(workers))
		if diff := cmp.Diff(sequential, parallel); diff != "" {
			t.Errorf("workers=%d differs from sequential (-seq +par):\n%s", workers, diff)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(LoadMap(context.Background(), " | \n-+-\n | \nff", 1))

	if s.Records != 12 {
		t.Errorf("Records = %d, want 12", s.Records)
	}
	if s.ByShape[ShapeWallCross] != 1 || s.ByShape[ShapeWall] != 4 || s.ByShape[ShapeFloor] != 7 {
		t.Errorf("unexpected counts: %v", s.ByShape)
	}
	if s.Walls() != 5 {
		t.Errorf("Walls() = %d, want 5", s.Walls())
	}
	if s.String() != "12 records (floor=7 wall=4 wall_cross=1)" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestShapeText(t *testing.T) {
	for _, shape := range Shapes {
		text, err := shape.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", shape, err)
		}
		var back TileShape
		if err := back.UnmarshalText(text); err != nil || back != shape {
			t.Errorf("UnmarshalText(%q) = %v, %v", text, back, err)
		}
	}
	if _, err := ParseShape("none"); err == nil {
		t.Error("ParseShape(\"none\") should fail")
	}
}
