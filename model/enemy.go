package model

import (
	"image/color"
	"math"
	"time"

	"github.com/harbdog/raycaster-go/geom"
)

type EnemyStats struct {
	Radius float64
	Speed  float64
	Health int
	Damage int
}

type Enemy struct {
	*Entity
	Speed      float64
	Health     int
	MaxHealth  int
	Damage     int
	lastAttack time.Time
}

func NewEnemy(x, y float64, stats EnemyStats) *Enemy {
	return &Enemy{
		Entity: &Entity{
			Position: geom.Vector2{X: x, Y: y},
			Radius:   stats.Radius,
			MapColor: color.RGBA{255, 0, 0, 255},
		},
		Speed:     stats.Speed,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Damage:    stats.Damage,
	}
}

// Steer returns the step straight toward target, or nothing once within stopDistance.
func (e *Enemy) Steer(target geom.Vector2, stopDistance float64) (float64, float64) {
	dx, dy := target.X-e.Position.X, target.Y-e.Position.Y
	dist := math.Hypot(dx, dy)
	if dist <= stopDistance || dist == 0 {
		return 0, 0
	}
	return dx / dist * e.Speed, dy / dist * e.Speed
}

// TakeDamage reports whether the hit killed the enemy.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
	return e.IsDead()
}

func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

// TryAttack rate-limits contact damage per enemy.
func (e *Enemy) TryAttack(now time.Time, cooldown time.Duration) bool {
	if !e.lastAttack.IsZero() && now.Sub(e.lastAttack) < cooldown {
		return false
	}
	e.lastAttack = now
	return true
}

func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}
