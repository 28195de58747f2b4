package model

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
)

const ExplosionFrames = 8

// Explosion is a fixed-length animation left where an enemy died.
type Explosion struct {
	*Entity
	Frame         int
	TicksPerFrame int
	ticks         int
}

func NewExplosion(x, y float64, ticksPerFrame int) *Explosion {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Explosion{
		Entity: &Entity{
			Position: geom.Vector2{X: x, Y: y},
			MapColor: color.RGBA{255, 140, 0, 255},
		},
		TicksPerFrame: ticksPerFrame,
	}
}

func (e *Explosion) Update() {
	if e.Finished() {
		return
	}
	e.ticks++
	if e.ticks >= e.TicksPerFrame {
		e.ticks = 0
		e.Frame++
	}
}

func (e *Explosion) Finished() bool {
	return e.Frame >= ExplosionFrames
}
