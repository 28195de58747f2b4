package model

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
)

var bulletColor = color.RGBA{255, 255, 0, 255}

// Bullet travels at a fixed velocity until a step would enter a wall.
type Bullet struct {
	*Entity
	Angle    float64
	Speed    float64
	Velocity geom.Vector2
	Damage   int
	// HitWall is terminal, the bullet is removed on the following tick
	HitWall bool
}

// Next is where the bullet would be after one more tick.
func (b *Bullet) Next() geom.Vector2 {
	return geom.Vector2{X: b.Position.X + b.Velocity.X, Y: b.Position.Y + b.Velocity.Y}
}

// Advance moves the bullet one tick unless blocked says the destination is solid.
func (b *Bullet) Advance(blocked func(x, y float64) bool) {
	if b.HitWall {
		return
	}
	next := b.Next()
	if blocked(next.X, next.Y) {
		b.HitWall = true
		return
	}
	b.Position = next
}
