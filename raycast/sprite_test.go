package raycast

import (
	"math"
	"testing"
)

func testView() View {
	return View{Width: 800, Height: 600, Fov: math.Pi / 3, MaxDepth: 800, WallHeight: 100, ColumnWidth: 2}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestProjectCenter(t *testing.T) {
	p, ok := Project(Pose{X: 0, Y: 0, Angle: 0}, Sprite{Kind: KindEnemy, X: 100, Y: 0}, testView(), DefaultSpriteOptions())
	if !ok {
		t.Fatal("Expected sprite straight ahead to be visible")
	}
	if p.ScreenX != 400 {
		t.Errorf("Expected screen x 400, got %v", p.ScreenX)
	}
	if want := 600.0 / 100 * 64; math.Abs(p.Size-want) > 1e-9 {
		t.Errorf("Expected size %v, got %v", want, p.Size)
	}
	if math.Abs(p.Brightness-0.875) > 1e-9 {
		t.Errorf("Expected brightness 0.875, got %v", p.Brightness)
	}
}

func TestProjectCullsOutsideFov(t *testing.T) {
	view := testView()
	pose := Pose{Angle: 0}

	// 31 degrees to the side is just outside a 60 degree fov
	a := 31 * math.Pi / 180
	if _, ok := Project(pose, Sprite{X: 100 * math.Cos(a), Y: 100 * math.Sin(a)}, view, DefaultSpriteOptions()); ok {
		t.Error("Expected sprite outside half fov to be culled")
	}

	// behind the viewer
	if _, ok := Project(pose, Sprite{X: -50, Y: 1}, view, DefaultSpriteOptions()); ok {
		t.Error("Expected sprite behind the viewer to be culled")
	}

	a = 29 * math.Pi / 180
	p, ok := Project(pose, Sprite{X: 100 * math.Cos(a), Y: 100 * math.Sin(a)}, view, DefaultSpriteOptions())
	if !ok {
		t.Fatal("Expected sprite inside half fov to be visible")
	}
	if p.ScreenX <= 400 || p.ScreenX >= 800 {
		t.Errorf("Expected screen x right of center, got %v", p.ScreenX)
	}
}

// TestProjectWrapsAcrossPi faces -x with the sprite straddling the ±π seam
func TestProjectWrapsAcrossPi(t *testing.T) {
	pose := Pose{Angle: math.Pi}
	if _, ok := Project(pose, Sprite{X: -100, Y: -5}, testView(), DefaultSpriteOptions()); !ok {
		t.Error("Expected sprite near the ±π seam to be visible")
	}
}

func TestProjectColocated(t *testing.T) {
	p, ok := Project(Pose{X: 10, Y: 10, Angle: 1}, Sprite{Kind: KindExplosion, X: 10, Y: 10}, testView(), DefaultSpriteOptions())
	if !ok {
		t.Fatal("Expected co-located sprite not to be culled")
	}
	if math.IsInf(p.Size, 0) || math.IsNaN(p.Size) || math.IsNaN(p.ScreenX) {
		t.Errorf("Expected finite projection, got size %v x %v", p.Size, p.ScreenX)
	}
	if p.ScreenX != 400 {
		t.Errorf("Expected co-located sprite at screen center, got %v", p.ScreenX)
	}
}

func TestKindScales(t *testing.T) {
	opts := DefaultSpriteOptions()
	enemy, _ := Project(Pose{}, Sprite{Kind: KindEnemy, X: 100}, testView(), opts)
	power, _ := Project(Pose{}, Sprite{Kind: KindPowerUp, X: 100}, testView(), opts)
	bullet, _ := Project(Pose{}, Sprite{Kind: KindBullet, X: 100}, testView(), opts)

	if power.Size != enemy.Size*0.5 {
		t.Errorf("Expected powerup at half size, got %v vs %v", power.Size, enemy.Size)
	}
	if bullet.Size != enemy.Size*0.25 {
		t.Errorf("Expected bullet at quarter size, got %v vs %v", bullet.Size, enemy.Size)
	}
}

func TestProjectSpritesSortsFarToNear(t *testing.T) {
	sprites := []Sprite{
		{Kind: KindEnemy, X: 50},
		{Kind: KindEnemy, X: 300},
		{Kind: KindEnemy, X: -40},
		{Kind: KindPowerUp, X: 120, Y: 5},
	}
	out := ProjectSprites(Pose{}, sprites, testView(), DefaultSpriteOptions())

	if len(out) != 3 {
		t.Fatalf("Expected 3 visible sprites, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Distance < out[i].Distance {
			t.Errorf("Expected descending distance, got %v before %v", out[i-1].Distance, out[i].Distance)
		}
	}
	if out[0].X != 300 {
		t.Errorf("Expected farthest sprite first, got x=%v", out[0].X)
	}
}

func TestBrightnessFloor(t *testing.T) {
	p, _ := Project(Pose{}, Sprite{X: 790}, testView(), DefaultSpriteOptions())
	if p.Brightness != 0.3 {
		t.Errorf("Expected brightness floor 0.3, got %v", p.Brightness)
	}
}
