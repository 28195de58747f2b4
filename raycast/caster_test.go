package raycast

import (
	"image/color"
	"math"
	"testing"

	"github.com/trvswgnr/gopher-shooter/level"
)

const epsilon = 1e-9

func roomMap(t *testing.T) *level.TileMap {
	t.Helper()
	m, err := level.FromRows([]string{
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#.....#..#",
		"#........#",
		"#........#",
		"##########",
	}, 32)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// TestCastRayAdjacentWall casts from the center of tile (5,5) toward the wall at (6,5)
func TestCastRayAdjacentWall(t *testing.T) {
	m := roomMap(t)
	hit := CastRay(m, 5.5*32, 5.5*32, 0, 800)

	if math.Abs(hit.Distance-16) > epsilon {
		t.Errorf("Expected distance 16, got %v", hit.Distance)
	}
	if hit.Side != 0 {
		t.Errorf("Expected side 0, got %d", hit.Side)
	}
	if hit.TileX != 6 || hit.TileY != 5 {
		t.Errorf("Expected tile (6,5), got (%d,%d)", hit.TileX, hit.TileY)
	}
}

func TestCastRayHorizontalWall(t *testing.T) {
	m := roomMap(t)
	// straight down from (2.5, 1.25) tiles: floor wall at row 8
	hit := CastRay(m, 2.5*32, 1.25*32, math.Pi/2, 800)

	want := (8 - 1.25) * 32
	if math.Abs(hit.Distance-want) > 1e-6 {
		t.Errorf("Expected distance %v, got %v", want, hit.Distance)
	}
	if hit.Side != 1 {
		t.Errorf("Expected side 1, got %d", hit.Side)
	}
}

// TestCastRayBounds sweeps many angles from open tiles; every hit must land in (0, maxDepth]
func TestCastRayBounds(t *testing.T) {
	m := roomMap(t)
	origins := [][2]float64{{1.5, 1.5}, {4.2, 3.7}, {8.9, 7.1}, {5.5, 5.5}}
	for _, o := range origins {
		for i := 0; i < 360; i++ {
			angle := float64(i) * math.Pi / 180
			hit := CastRay(m, o[0]*32, o[1]*32, angle, 800)
			if hit.Distance <= 0 || hit.Distance > 800 {
				t.Fatalf("origin %v angle %d: distance %v out of range", o, i, hit.Distance)
			}
			if !m.IsWall(hit.TileX, hit.TileY) {
				t.Fatalf("origin %v angle %d: hit tile (%d,%d) is not a wall", o, i, hit.TileX, hit.TileY)
			}
		}
	}
}

func TestCastRayClampsToMaxDepth(t *testing.T) {
	m := roomMap(t)
	hit := CastRay(m, 1.5*32, 1.5*32, 0, 50)
	if hit.Distance != 50 {
		t.Errorf("Expected distance clamped to 50, got %v", hit.Distance)
	}
}

func TestCastRayAxisAligned(t *testing.T) {
	m := roomMap(t)
	for _, angle := range []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2} {
		hit := CastRay(m, 3.5*32, 3.5*32, angle, 800)
		if math.IsNaN(hit.Distance) || math.IsInf(hit.Distance, 0) {
			t.Errorf("angle %v: expected finite distance, got %v", angle, hit.Distance)
		}
	}
}

func TestCastColumns(t *testing.T) {
	m := roomMap(t)
	view := View{Width: 800, Height: 600, Fov: math.Pi / 3, MaxDepth: 800, WallHeight: 100, ColumnWidth: 2}
	cols := CastColumns(m, Pose{X: 5.5 * 32, Y: 5.5 * 32, Angle: 0}, view)

	if len(cols) != 400 {
		t.Fatalf("Expected 400 columns, got %d", len(cols))
	}
	if cols[0].X != 0 || cols[399].X != 798 || cols[10].Width != 2 {
		t.Errorf("Unexpected column layout: first %d last %d width %d", cols[0].X, cols[399].X, cols[10].Width)
	}
	if math.Abs(cols[0].RayAngle+math.Pi/6) > epsilon {
		t.Errorf("Expected first ray at -fov/2, got %v", cols[0].RayAngle)
	}

	mid := cols[200]
	if math.Abs(mid.Distance-16) > 1e-6 {
		t.Errorf("Expected center column distance 16, got %v", mid.Distance)
	}
	wantHeight := 600.0 / mid.Distance * 100
	if math.Abs(mid.Height-wantHeight) > 1e-6 {
		t.Errorf("Expected height %v, got %v", wantHeight, mid.Height)
	}
	if math.Abs(mid.Top+mid.Height/2-300) > 1e-6 {
		t.Errorf("Expected strip centered on midline, top %v height %v", mid.Top, mid.Height)
	}

	depth := DepthBuffer(cols)
	if len(depth) != len(cols) || depth[200] != mid.Distance {
		t.Error("Expected depth buffer to mirror column distances")
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		side     int
		distance float64
		want     float64
	}{
		{0, 0, 1.0},
		{1, 0, 0.7},
		{0, 400, 0.5},
		{1, 400, 0.35},
		{0, 800, 0.1},
		{1, 790, 0.07},
	}
	for _, tt := range tests {
		got := Shade(tt.side, tt.distance, 800)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Shade(%d, %v): expected %v, got %v", tt.side, tt.distance, tt.want, got)
		}
	}
}

func TestShadeColor(t *testing.T) {
	got := ShadeColor(color.RGBA{200, 100, 50, 255}, 0.5)
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Expected {100 50 25 255}, got %v", got)
	}
}
