package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Entity is the shared circle every body collides with.
type Entity struct {
	Position geom.Vector2
	Radius   float64
	MapColor color.RGBA
}

func (e *Entity) Pos() geom.Vector2 {
	return e.Position
}

func (e *Entity) DistanceTo(p geom.Vector2) float64 {
	return math.Hypot(p.X-e.Position.X, p.Y-e.Position.Y)
}
