package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

type PlayerStats struct {
	Radius        float64
	Speed         float64
	RotationSpeed float64
	MaxHealth     int
}

type Player struct {
	*Entity
	Angle         float64
	Speed         float64
	RotationSpeed float64
	Health        int
	MaxHealth     int
	Weapon        *Weapon
	Moved         bool
}

func NewPlayer(x, y, angle float64, stats PlayerStats, weapon *Weapon) *Player {
	p := &Player{
		Entity: &Entity{
			Position: geom.Vector2{X: x, Y: y},
			Radius:   stats.Radius,
			MapColor: color.RGBA{0, 255, 255, 255},
		},
		Angle:         angle,
		Speed:         stats.Speed,
		RotationSpeed: stats.RotationSpeed,
		Health:        stats.MaxHealth,
		MaxHealth:     stats.MaxHealth,
		Weapon:        weapon,
	}

	return p
}

func (p *Player) TakeDamage(amount int) {
	p.Health = int(geom.Clamp(float64(p.Health-amount), 0, float64(p.MaxHealth)))
}

func (p *Player) Heal(amount int) {
	p.Health = int(geom.Clamp(float64(p.Health+amount), 0, float64(p.MaxHealth)))
}

func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// Rotate turns the heading by delta radians and keeps it in (-π, π].
func (p *Player) Rotate(delta float64) {
	if delta == 0 {
		return
	}
	p.Angle += delta

	for p.Angle > math.Pi {
		p.Angle -= 2 * math.Pi
	}
	for p.Angle <= -math.Pi {
		p.Angle += 2 * math.Pi
	}

	p.Moved = true
}

// Turn applies a turn intent in [-1, 1], limited by the rotation speed.
func (p *Player) Turn(intent float64) {
	p.Rotate(geom.Clamp(intent, -1, 1) * p.RotationSpeed)
}

// MoveVector converts forward/strafe intents into a world displacement for one tick.
// Positive strafe moves right of the heading.
func (p *Player) MoveVector(forward, strafe float64) (float64, float64) {
	forward = geom.Clamp(forward, -1, 1) * p.Speed
	strafe = geom.Clamp(strafe, -1, 1) * p.Speed

	right := p.Angle + math.Pi/2
	dx := math.Cos(p.Angle)*forward + math.Cos(right)*strafe
	dy := math.Sin(p.Angle)*forward + math.Sin(right)*strafe
	return dx, dy
}
