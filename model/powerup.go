package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const bobSpeed = 0.1

// PowerUp heals the player on pickup. BobPhase only drives the on-screen float.
type PowerUp struct {
	*Entity
	HealAmount int
	BobPhase   float64
}

func NewPowerUp(x, y, radius float64, heal int) *PowerUp {
	return &PowerUp{
		Entity: &Entity{
			Position: geom.Vector2{X: x, Y: y},
			Radius:   radius,
			MapColor: color.RGBA{0, 255, 0, 255},
		},
		HealAmount: heal,
	}
}

func (p *PowerUp) Update() {
	p.BobPhase = math.Mod(p.BobPhase+bobSpeed, 2*math.Pi)
}

// Bob is the vertical offset in [-1, 1].
func (p *PowerUp) Bob() float64 {
	return math.Sin(p.BobPhase)
}
