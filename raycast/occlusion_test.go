package raycast

import (
	"math"
	"strings"
	"testing"

	"github.com/trvswgnr/gopher-shooter/level"
)

func flatDepth(n int, d float64) []float64 {
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = d
	}
	return depth
}

func TestVisibleSpansUnoccluded(t *testing.T) {
	view := testView()
	p := Projection{Distance: 100, Depth: 100, ScreenX: 400, Size: 40}

	spans := VisibleSpans(p, flatDepth(view.NumRays(), 500), view)
	if len(spans) != 1 {
		t.Fatalf("Expected one span, got %d", len(spans))
	}
	s := spans[0]
	if s.X0 != 380 || s.X1 != 420 {
		t.Errorf("Expected span [380,420), got [%d,%d)", s.X0, s.X1)
	}
	if s.U0 != 0 || s.U1 != 1 {
		t.Errorf("Expected full texture, got [%v,%v]", s.U0, s.U1)
	}
}

func TestVisibleSpansBehindWall(t *testing.T) {
	view := testView()
	p := Projection{Distance: 600, Depth: 600, ScreenX: 400, Size: 40}

	if spans := VisibleSpans(p, flatDepth(view.NumRays(), 500), view); len(spans) != 0 {
		t.Errorf("Expected sprite behind the wall to be hidden, got %v", spans)
	}
}

func TestVisibleSpansPartialOcclusion(t *testing.T) {
	view := testView()
	depth := flatDepth(view.NumRays(), 500)
	// a pillar covering pixels [396, 404)
	for col := 198; col < 202; col++ {
		depth[col] = 50
	}
	p := Projection{Distance: 100, Depth: 100, ScreenX: 400, Size: 40}

	spans := VisibleSpans(p, depth, view)
	if len(spans) != 2 {
		t.Fatalf("Expected the pillar to split the sprite in two, got %v", spans)
	}
	if spans[0].X0 != 380 || spans[0].X1 != 396 || spans[1].X0 != 404 || spans[1].X1 != 420 {
		t.Errorf("Unexpected spans %v", spans)
	}
	if math.Abs(spans[0].U1-0.4) > epsilon || math.Abs(spans[1].U0-0.6) > epsilon {
		t.Errorf("Expected texture split at 0.4/0.6, got %v and %v", spans[0].U1, spans[1].U0)
	}
}

func TestVisibleSpansClipsToScreen(t *testing.T) {
	view := testView()
	p := Projection{Distance: 100, Depth: 100, ScreenX: 790, Size: 40}

	spans := VisibleSpans(p, flatDepth(view.NumRays(), 500), view)
	if len(spans) != 1 || spans[0].X1 != 800 {
		t.Fatalf("Expected span clipped at the right edge, got %v", spans)
	}
	if math.Abs(spans[0].U1-0.75) > epsilon {
		t.Errorf("Expected texture cut at 0.75, got %v", spans[0].U1)
	}
}

func TestVisibleSpansEmpty(t *testing.T) {
	view := testView()
	if spans := VisibleSpans(Projection{Size: 0}, flatDepth(10, 1), view); spans != nil {
		t.Errorf("Expected no spans for an empty sprite, got %v", spans)
	}
	if spans := VisibleSpans(Projection{Size: 10, ScreenX: 400}, nil, view); spans != nil {
		t.Errorf("Expected no spans without a depth buffer, got %v", spans)
	}
}

// hallMap is an open 21x26 room; its right wall face sits at x=640.
func hallMap(t *testing.T) *level.TileMap {
	t.Helper()
	rows := make([]string, 26)
	for y := range rows {
		if y == 0 || y == len(rows)-1 {
			rows[y] = strings.Repeat("#", 21)
		} else {
			rows[y] = "#" + strings.Repeat(".", 19) + "#"
		}
	}
	m, err := level.FromRows(rows, 32)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestVisibleSpansOffAxisAgainstCastWalls(t *testing.T) {
	m := hallMap(t)
	view := testView()
	pose := Pose{X: 176, Y: 496, Angle: 0}
	depth := DepthBuffer(CastColumns(m, pose, view))

	a := 28 * math.Pi / 180
	at := func(d float64) Sprite {
		return Sprite{Kind: KindEnemy, X: pose.X + d*math.Cos(a), Y: pose.Y + d*math.Sin(a)}
	}

	// 22.5 units in front of the wall face
	front, ok := Project(pose, at(500), view, DefaultSpriteOptions())
	if !ok {
		t.Fatal("Expected the sprite inside the fov")
	}
	if math.Abs(front.Depth-500*math.Cos(a)) > 1e-6 {
		t.Errorf("Expected depth along the view direction, got %v", front.Depth)
	}
	if spans := VisibleSpans(front, depth, view); len(spans) == 0 {
		t.Error("Expected a sprite standing in front of the wall to be visible")
	}

	// past the wall face
	behind, ok := Project(pose, at(560), view, DefaultSpriteOptions())
	if !ok {
		t.Fatal("Expected the sprite inside the fov")
	}
	if spans := VisibleSpans(behind, depth, view); len(spans) != 0 {
		t.Errorf("Expected a sprite beyond the wall to be hidden, got %v", spans)
	}
}

func TestSpriteSizeMatchesWallScale(t *testing.T) {
	view := testView()
	a := 25 * math.Pi / 180
	p, ok := Project(Pose{}, Sprite{Kind: KindEnemy, X: 300, Y: 300 * math.Tan(a)}, view, DefaultSpriteOptions())
	if !ok {
		t.Fatal("Expected the sprite inside the fov")
	}
	// a sprite on the plane x=300 is as large as one straight ahead at 300
	if want := 600.0 / 300 * 64; math.Abs(p.Size-want) > 1e-6 {
		t.Errorf("Expected size %v, got %v", want, p.Size)
	}
}
