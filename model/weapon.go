package model

import (
	"math"
	"time"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
)

// ticks the muzzle flash stays up after a shot
const flashTicks = 6

type Weapon struct {
	Cooldown   time.Duration
	lastShot   time.Time
	flash      int
	projectile Bullet
}

// NewWeapon creates a weapon firing copies of the projectile template at the given speed.
func NewWeapon(cooldown time.Duration, projectileSpeed, projectileRadius float64, damage int) *Weapon {
	return &Weapon{
		Cooldown: cooldown,
		projectile: Bullet{
			Entity: &Entity{Radius: projectileRadius, MapColor: bulletColor},
			Speed:  projectileSpeed,
			Damage: damage,
		},
	}
}

func (w *Weapon) OnCooldown(now time.Time) bool {
	return !w.lastShot.IsZero() && now.Sub(w.lastShot) < w.Cooldown
}

// Fire starts the cooldown and reports whether the shot went off.
func (w *Weapon) Fire(now time.Time) bool {
	if w.OnCooldown(now) {
		return false
	}
	w.lastShot = now
	w.flash = flashTicks
	return true
}

func (w *Weapon) Firing() bool {
	return w.flash > 0
}

func (w *Weapon) Update() {
	if w.flash > 0 {
		w.flash--
	}
}

// SpawnBullet clones the projectile template at (x, y) heading along angle.
func (w *Weapon) SpawnBullet(x, y, angle float64) *Bullet {
	b := &Bullet{}
	if err := copier.CopyWithOption(b, &w.projectile, copier.Option{DeepCopy: true}); err != nil || b.Entity == nil {
		b = &Bullet{Entity: &Entity{}, Speed: w.projectile.Speed, Damage: w.projectile.Damage}
		*b.Entity = *w.projectile.Entity
	}

	b.Position = geom.Vector2{X: x, Y: y}
	b.Angle = angle
	b.Velocity = geom.Vector2{X: math.Cos(angle) * b.Speed, Y: math.Sin(angle) * b.Speed}
	return b
}
