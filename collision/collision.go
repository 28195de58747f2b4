package collision

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-shooter/level"
)

// Probe reports whether a body may occupy the world position (x, y).
type Probe func(x, y float64) bool

// CanMoveTo tests the four corners of the body's bounding square against the map and its bounds.
func CanMoveTo(m *level.TileMap, x, y, radius float64) bool {
	if x-radius < 0 || y-radius < 0 || x+radius >= m.WorldWidth() || y+radius >= m.WorldHeight() {
		return false
	}

	corners := [4][2]float64{
		{x - radius, y - radius},
		{x + radius, y - radius},
		{x - radius, y + radius},
		{x + radius, y + radius},
	}
	for _, c := range corners {
		if m.IsWallAt(c[0], c[1]) {
			return false
		}
	}
	return true
}

// CanMoveToPoint only tests the tile under the body's center.
func CanMoveToPoint(m *level.TileMap, x, y float64) bool {
	return !m.IsWallAt(x, y)
}

func BodyProbe(m *level.TileMap, radius float64) Probe {
	return func(x, y float64) bool { return CanMoveTo(m, x, y, radius) }
}

func PointProbe(m *level.TileMap) Probe {
	return func(x, y float64) bool { return CanMoveToPoint(m, x, y) }
}

// MoveAndSlide applies (dx, dy) one axis at a time, X first. The Y test uses the
// already-updated X, so a blocked axis is dropped while the free one still applies.
// It reports whether either axis was blocked.
func MoveAndSlide(pos geom.Vector2, dx, dy float64, canMove Probe) (geom.Vector2, bool) {
	blocked := false

	if dx != 0 {
		if canMove(pos.X+dx, pos.Y) {
			pos.X += dx
		} else {
			blocked = true
		}
	}

	if dy != 0 {
		if canMove(pos.X, pos.Y+dy) {
			pos.Y += dy
		} else {
			blocked = true
		}
	}

	return pos, blocked
}

// CirclesOverlap is the strict circle-circle test used for every body pair.
func CirclesOverlap(a geom.Vector2, ra float64, b geom.Vector2, rb float64) bool {
	return Distance(a, b) < ra+rb
}

func Distance(a, b geom.Vector2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
