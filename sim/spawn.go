package sim

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-shooter/model"
)

// spawnWave places the current wave's batch of enemies.
func (s *State) spawnWave() {
	count := s.rules.WaveSize(s.Wave)
	stats := s.rules.EnemyStatsForWave(s.Wave)

	spawned := 0
	for i := 0; i < count; i++ {
		pos, ok := s.sampleSpawn(s.rules.EnemySpawnMinDist, s.rules.EnemySpawnAttempts, true)
		if !ok {
			continue
		}
		s.Enemies = append(s.Enemies, model.NewEnemy(pos.X, pos.Y, stats))
		spawned++
	}

	s.logf("wave %d started with %d/%d enemies", s.Wave, spawned, count)
	s.events.Dispatch(Event{Type: EventWaveStart, Position: s.Player.Pos(), Value: s.Wave})
}

// maybeSpawnPowerUp rolls the per-tick powerup chance. When no suitable tile turns
// up within the attempt budget nothing is spawned.
func (s *State) maybeSpawnPowerUp() {
	if s.rng.Float64() >= s.rules.PowerUpSpawnChance {
		return
	}
	pos, ok := s.sampleSpawn(s.rules.PowerUpMinDist, s.rules.PowerUpAttempts, false)
	if !ok {
		return
	}
	s.PowerUps = append(s.PowerUps, model.NewPowerUp(pos.X, pos.Y, s.rules.PowerUpRadius, s.rules.PowerUpHeal))
}

// sampleSpawn draws random interior tiles until one is open and at least minDist from
// the player. Once attempts run out it gives up; with fallback set it settles for the
// last open tile seen regardless of distance, or the open tile farthest from the
// player when no draw landed on one. It never returns a wall tile.
func (s *State) sampleSpawn(minDist float64, attempts int, fallback bool) (geom.Vector2, bool) {
	m := s.Map
	var last geom.Vector2
	haveLast := false

	for i := 0; i < attempts; i++ {
		tx := 1 + s.rng.Intn(m.Width()-2)
		ty := 1 + s.rng.Intn(m.Height()-2)
		if m.IsWall(tx, ty) {
			continue
		}

		pos := m.TileCenter(tx, ty)
		if s.Player.DistanceTo(pos) >= minDist {
			return pos, true
		}
		last, haveLast = pos, true
	}

	if !fallback {
		return geom.Vector2{}, false
	}
	if haveLast {
		return last, true
	}
	return s.farthestOpenTile()
}

func (s *State) farthestOpenTile() (geom.Vector2, bool) {
	var best geom.Vector2
	bestDist, found := -1.0, false
	for _, pos := range s.Map.OpenTiles() {
		if d := s.Player.DistanceTo(pos); d > bestDist {
			best, bestDist, found = pos, d, true
		}
	}
	return best, found
}

// spawnParticles throws count sparks outward from (x, y), dropping the oldest
// when over the particle budget.
func (s *State) spawnParticles(x, y float64, count int, speed float64, life int, c color.RGBA) {
	for i := 0; i < count; i++ {
		angle := s.rng.Range(0, 2*math.Pi)
		v := s.rng.Range(0.3, 1) * speed
		s.Particles = append(s.Particles, model.NewParticle(x, y, math.Cos(angle)*v, math.Sin(angle)*v, life, c))
	}

	if limit := s.rules.MaxParticles; limit > 0 && len(s.Particles) > limit {
		s.Particles = append(s.Particles[:0], s.Particles[len(s.Particles)-limit:]...)
	}
}

func newExplosion(pos geom.Vector2, ticksPerFrame int) *model.Explosion {
	return model.NewExplosion(pos.X, pos.Y, ticksPerFrame)
}
