package model

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
)

// Particle is a short-lived cosmetic spark. It ignores walls.
type Particle struct {
	*Entity
	Velocity geom.Vector2
	Friction float64
	Life     int
	MaxLife  int
}

func NewParticle(x, y, vx, vy float64, life int, c color.RGBA) *Particle {
	return &Particle{
		Entity: &Entity{
			Position: geom.Vector2{X: x, Y: y},
			MapColor: c,
		},
		Velocity: geom.Vector2{X: vx, Y: vy},
		Friction: 0.92,
		Life:     life,
		MaxLife:  life,
	}
}

func (p *Particle) Update() {
	p.Position.X += p.Velocity.X
	p.Position.Y += p.Velocity.Y
	p.Velocity.X *= p.Friction
	p.Velocity.Y *= p.Friction
	p.Life--
}

func (p *Particle) Dead() bool {
	return p.Life <= 0
}

// Fade is the remaining life in [0, 1].
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
