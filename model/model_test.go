package model

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/harbdog/raycaster-go/geom"
)

func testPlayer() *Player {
	return NewPlayer(80, 80, 0, PlayerStats{Radius: 8, Speed: 3, RotationSpeed: 0.05, MaxHealth: 100}, nil)
}

func TestPlayerHealthClamps(t *testing.T) {
	p := testPlayer()

	p.TakeDamage(30)
	if p.Health != 70 {
		t.Errorf("Expected health 70, got %d", p.Health)
	}
	p.Heal(50)
	if p.Health != 100 {
		t.Errorf("Expected heal to clamp at 100, got %d", p.Health)
	}
	p.TakeDamage(250)
	if p.Health != 0 || !p.IsDead() {
		t.Errorf("Expected dead at 0, got %d", p.Health)
	}
}

func TestPlayerRotateWraps(t *testing.T) {
	p := testPlayer()
	p.Angle = math.Pi - 0.01
	p.Rotate(0.02)
	if p.Angle > math.Pi || p.Angle <= -math.Pi {
		t.Errorf("Expected angle in (-π, π], got %v", p.Angle)
	}
	if !p.Moved {
		t.Error("Expected Moved after rotating")
	}
}

func TestPlayerTurnIsRateLimited(t *testing.T) {
	p := testPlayer()
	p.Turn(5)
	if math.Abs(p.Angle-0.05) > 1e-12 {
		t.Errorf("Expected one tick of rotation speed (0.05), got %v", p.Angle)
	}
}

func TestPlayerMoveVector(t *testing.T) {
	p := testPlayer()

	dx, dy := p.MoveVector(1, 0)
	if math.Abs(dx-3) > 1e-12 || math.Abs(dy) > 1e-12 {
		t.Errorf("Expected forward (3,0), got (%v,%v)", dx, dy)
	}

	// heading +x, right is +y in screen coordinates
	dx, dy = p.MoveVector(0, 1)
	if math.Abs(dx) > 1e-12 || math.Abs(dy-3) > 1e-12 {
		t.Errorf("Expected strafe right (0,3), got (%v,%v)", dx, dy)
	}
}

func TestWeaponCooldown(t *testing.T) {
	w := NewWeapon(150*time.Millisecond, 10, 3, 25)
	now := time.Unix(1000, 0)

	if !w.Fire(now) {
		t.Fatal("Expected first shot to fire")
	}
	if !w.Firing() {
		t.Error("Expected muzzle flash after firing")
	}
	if w.Fire(now.Add(100 * time.Millisecond)) {
		t.Error("Expected shot inside cooldown to be refused")
	}
	if !w.Fire(now.Add(150 * time.Millisecond)) {
		t.Error("Expected shot once cooldown elapsed")
	}

	for i := 0; i < flashTicks; i++ {
		w.Update()
	}
	if w.Firing() {
		t.Error("Expected muzzle flash to expire")
	}
}

func TestSpawnBulletClonesTemplate(t *testing.T) {
	w := NewWeapon(time.Millisecond, 10, 3, 25)

	a := w.SpawnBullet(10, 20, 0)
	b := w.SpawnBullet(30, 40, math.Pi/2)

	if a.Entity == b.Entity || a.Entity == w.projectile.Entity {
		t.Fatal("Expected every bullet to own its entity")
	}
	if a.Position.X != 10 || a.Position.Y != 20 || a.Radius != 3 || a.Damage != 25 {
		t.Errorf("Unexpected bullet %+v %+v", a, a.Entity)
	}
	if math.Abs(a.Velocity.X-10) > 1e-12 || math.Abs(a.Velocity.Y) > 1e-12 {
		t.Errorf("Expected velocity (10,0), got %+v", a.Velocity)
	}
	if math.Abs(b.Velocity.Y-10) > 1e-12 {
		t.Errorf("Expected velocity y 10, got %v", b.Velocity.Y)
	}
	if w.projectile.Position.X != 0 {
		t.Error("Expected template to stay untouched")
	}
}

func TestBulletAdvance(t *testing.T) {
	b := &Bullet{Entity: &Entity{Position: geom.Vector2{X: 0, Y: 0}}, Velocity: geom.Vector2{X: 10}}
	wallAt := 25.0
	blocked := func(x, y float64) bool { return x >= wallAt }

	b.Advance(blocked)
	b.Advance(blocked)
	if b.HitWall || b.Position.X != 20 {
		t.Fatalf("Expected free flight to x=20, got x=%v hit=%v", b.Position.X, b.HitWall)
	}

	b.Advance(blocked)
	if !b.HitWall {
		t.Error("Expected HitWall when next step is blocked")
	}
	if b.Position.X != 20 {
		t.Errorf("Expected bullet to stay at 20, got %v", b.Position.X)
	}
}

func TestEnemySteer(t *testing.T) {
	e := NewEnemy(0, 0, EnemyStats{Radius: 10, Speed: 2, Health: 100, Damage: 10})

	dx, dy := e.Steer(geom.Vector2{X: 30, Y: 40}, 15)
	if math.Abs(dx-1.2) > 1e-12 || math.Abs(dy-1.6) > 1e-12 {
		t.Errorf("Expected step (1.2,1.6), got (%v,%v)", dx, dy)
	}

	dx, dy = e.Steer(geom.Vector2{X: 10, Y: 0}, 15)
	if dx != 0 || dy != 0 {
		t.Errorf("Expected no step within stop distance, got (%v,%v)", dx, dy)
	}
}

func TestEnemyAttackCooldown(t *testing.T) {
	e := NewEnemy(0, 0, EnemyStats{Radius: 10, Speed: 1, Health: 50, Damage: 10})
	now := time.Unix(0, 0)

	if !e.TryAttack(now, 500*time.Millisecond) {
		t.Error("Expected first attack to land")
	}
	if e.TryAttack(now.Add(499*time.Millisecond), 500*time.Millisecond) {
		t.Error("Expected attack inside cooldown to be refused")
	}
	if !e.TryAttack(now.Add(500*time.Millisecond), 500*time.Millisecond) {
		t.Error("Expected attack after cooldown")
	}

	if e.TakeDamage(25) {
		t.Error("Expected enemy to survive 25 damage")
	}
	if e.HealthFraction() != 0.5 {
		t.Errorf("Expected health fraction 0.5, got %v", e.HealthFraction())
	}
	if !e.TakeDamage(25) {
		t.Error("Expected enemy to die")
	}
}

func TestExplosionFinishes(t *testing.T) {
	e := NewExplosion(0, 0, 3)
	ticks := 0
	for !e.Finished() {
		e.Update()
		ticks++
		if ticks > 100 {
			t.Fatal("Explosion never finished")
		}
	}
	if ticks != ExplosionFrames*3 {
		t.Errorf("Expected %d ticks, got %d", ExplosionFrames*3, ticks)
	}
}

func TestParticleLifetime(t *testing.T) {
	p := NewParticle(0, 0, 4, 0, 3, color.RGBA{255, 0, 0, 255})
	p.Update()
	if p.Position.X != 4 {
		t.Errorf("Expected x 4, got %v", p.Position.X)
	}
	if p.Velocity.X >= 4 {
		t.Error("Expected friction to slow the particle")
	}
	p.Update()
	p.Update()
	if !p.Dead() || p.Fade() != 0 {
		t.Errorf("Expected particle dead after its life, life=%d", p.Life)
	}
}

func TestPowerUpBob(t *testing.T) {
	p := NewPowerUp(0, 0, 10, 25)
	x := p.Position.X
	for i := 0; i < 100; i++ {
		p.Update()
		if b := p.Bob(); b < -1 || b > 1 {
			t.Fatalf("Expected bob in [-1,1], got %v", b)
		}
	}
	if p.Position.X != x {
		t.Error("Expected bobbing not to move the powerup")
	}
}
