package sim

import (
	"image/color"
	"math"
	"time"

	"github.com/trvswgnr/gopher-shooter/collision"
)

var (
	muzzleColor = color.RGBA{255, 220, 120, 255}
	bloodColor  = color.RGBA{200, 20, 20, 255}
	deathColor  = color.RGBA{255, 120, 0, 255}
	hurtColor   = color.RGBA{255, 60, 60, 255}
)

// Step advances the game by one fixed tick. It does nothing outside PhasePlaying.
func (s *State) Step(in Intent) {
	if s.Phase != PhasePlaying {
		return
	}
	now := s.clock.Now()

	s.updatePlayer(in)
	if in.Fire {
		s.fire(now)
	}
	s.updateEnemies()
	s.updateBullets()

	s.collideBulletsWithEnemies()
	s.collideEnemiesWithPlayer(now)
	s.collidePowerUps()
	if s.Player.IsDead() {
		s.endGame(false)
		return
	}

	s.updateEffects()
	s.updateWaves(now)
	if s.Phase != PhasePlaying {
		return
	}
	s.maybeSpawnPowerUp()
}

func (s *State) updatePlayer(in Intent) {
	p := s.Player
	p.Moved = false
	p.Weapon.Update()

	p.Rotate(in.Look)
	p.Turn(in.Turn)

	forward, strafe := in.Forward, in.Strafe
	if norm := math.Hypot(in.Joystick.X, in.Joystick.Y); norm > s.rules.JoystickDeadZone {
		forward -= in.Joystick.Y
		strafe += in.Joystick.X
	}

	dx, dy := p.MoveVector(forward, strafe)
	if dx == 0 && dy == 0 {
		return
	}
	newPos, _ := collision.MoveAndSlide(p.Position, dx, dy, s.playerProbe())
	if newPos != p.Position {
		p.Position = newPos
		p.Moved = true
	}
}

func (s *State) fire(now time.Time) {
	p := s.Player
	if !p.Weapon.Fire(now) {
		return
	}

	b := p.Weapon.SpawnBullet(p.Position.X, p.Position.Y, p.Angle)
	s.Bullets = append(s.Bullets, b)

	// muzzle flash just ahead of the player
	fx := p.Position.X + math.Cos(p.Angle)*p.Radius*1.5
	fy := p.Position.Y + math.Sin(p.Angle)*p.Radius*1.5
	s.spawnParticles(fx, fy, 4, 1.5, 8, muzzleColor)

	s.events.Dispatch(Event{Type: EventShoot, Position: p.Position})
}

func (s *State) updateEnemies() {
	probe := collision.PointProbe(s.Map)
	for _, e := range s.Enemies {
		dx, dy := e.Steer(s.Player.Position, s.rules.EnemyStopDistance)
		if dx == 0 && dy == 0 {
			continue
		}
		e.Position, _ = collision.MoveAndSlide(e.Position, dx, dy, probe)
	}
}

func (s *State) updateBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		// a wall hit is shown for one tick, then the bullet goes away
		if b.HitWall {
			continue
		}
		b.Advance(s.Map.IsWallAt)
		if b.HitWall {
			s.spawnParticles(b.Position.X, b.Position.Y, 3, 1, 10, muzzleColor)
		}
		kept = append(kept, b)
	}
	s.Bullets = kept
}

func (s *State) collideBulletsWithEnemies() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		consumed := false
		if !b.HitWall {
			for i, e := range s.Enemies {
				if !collision.CirclesOverlap(b.Position, b.Radius, e.Position, e.Radius) {
					continue
				}
				consumed = true
				if e.TakeDamage(b.Damage) {
					s.killEnemy(i)
				} else {
					s.spawnParticles(e.Position.X, e.Position.Y, 6, 2, 20, bloodColor)
					s.events.Dispatch(Event{Type: EventEnemyHit, Position: e.Position, Value: b.Damage})
				}
				break
			}
		}
		if !consumed {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

func (s *State) killEnemy(i int) {
	e := s.Enemies[i]
	s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)

	s.Score += s.rules.KillScore
	s.Kills++
	s.Explosions = append(s.Explosions, newExplosion(e.Position, s.rules.ExplosionTicksPerFrame))
	s.spawnParticles(e.Position.X, e.Position.Y, 15, 3, 30, deathColor)

	s.events.Dispatch(Event{Type: EventEnemyDeath, Position: e.Position, Value: s.rules.KillScore})
}

func (s *State) collideEnemiesWithPlayer(now time.Time) {
	p := s.Player
	for _, e := range s.Enemies {
		if !collision.CirclesOverlap(e.Position, e.Radius, p.Position, p.Radius) {
			continue
		}
		if !e.TryAttack(now, s.rules.EnemyAttackCooldown) {
			continue
		}
		p.TakeDamage(e.Damage)
		s.spawnParticles(p.Position.X, p.Position.Y, 5, 2, 15, hurtColor)
		s.events.Dispatch(Event{Type: EventPlayerHurt, Position: p.Position, Value: e.Damage})
		if p.IsDead() {
			return
		}
	}
}

func (s *State) collidePowerUps() {
	p := s.Player
	kept := s.PowerUps[:0]
	for _, pu := range s.PowerUps {
		if collision.CirclesOverlap(pu.Position, pu.Radius, p.Position, p.Radius) {
			p.Heal(pu.HealAmount)
			s.Score += s.rules.PowerUpScore
			s.events.Dispatch(Event{Type: EventPowerUpPickup, Position: pu.Position, Value: pu.HealAmount})
			continue
		}
		kept = append(kept, pu)
	}
	s.PowerUps = kept
}

func (s *State) updateEffects() {
	explosions := s.Explosions[:0]
	for _, e := range s.Explosions {
		e.Update()
		if !e.Finished() {
			explosions = append(explosions, e)
		}
	}
	s.Explosions = explosions

	particles := s.Particles[:0]
	for _, p := range s.Particles {
		p.Update()
		if !p.Dead() {
			particles = append(particles, p)
		}
	}
	s.Particles = particles

	for _, pu := range s.PowerUps {
		pu.Update()
	}
}

func (s *State) updateWaves(now time.Time) {
	if len(s.Enemies) == 0 && !s.WaitingForNextWave {
		bonus := s.rules.WaveClearBonus * s.Wave
		s.Score += bonus
		s.logf("wave %d cleared, bonus %d", s.Wave, bonus)
		s.events.Dispatch(Event{Type: EventWaveComplete, Position: s.Player.Position, Value: s.Wave})

		if s.Wave >= s.rules.MaxWaves {
			s.endGame(true)
			return
		}
		s.WaitingForNextWave = true
		s.waveTimer = now
		return
	}

	if s.WaitingForNextWave && now.Sub(s.waveTimer) >= s.rules.WaveCooldown {
		s.WaitingForNextWave = false
		s.Wave++
		s.spawnWave()
	}
}
