package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/trvswgnr/gopher-shooter/collision"
	"github.com/trvswgnr/gopher-shooter/level"
	"github.com/trvswgnr/gopher-shooter/model"
)

var ErrStartBlocked = errors.New("player start is inside a wall")

// Rules holds every gameplay constant. Distances are world units, speeds are per tick.
type Rules struct {
	Player     model.PlayerStats
	StartTileX float64
	StartTileY float64
	StartAngle float64

	ShotCooldown time.Duration
	BulletSpeed  float64
	BulletRadius float64
	BulletDamage int

	Enemy               model.EnemyStats
	EnemySpeedPerWave   float64
	EnemyHealthPerWave  int
	EnemyStopDistance   float64
	EnemyAttackCooldown time.Duration
	EnemySpawnMinDist   float64
	EnemySpawnAttempts  int

	EnemiesPerWave   int
	EnemiesIncrement int
	MaxWaves         int
	WaveCooldown     time.Duration
	WaveClearBonus   int
	KillScore        int

	PowerUpSpawnChance float64
	PowerUpRadius      float64
	PowerUpHeal        int
	PowerUpScore       int
	PowerUpMinDist     float64
	PowerUpAttempts    int

	ExplosionTicksPerFrame int
	MaxParticles           int
	JoystickDeadZone       float64
}

func DefaultRules() Rules {
	return Rules{
		Player:     model.PlayerStats{Radius: 8, Speed: 3, RotationSpeed: 0.05, MaxHealth: 100},
		StartTileX: 2.5,
		StartTileY: 2.5,
		StartAngle: math.Pi / 4,

		ShotCooldown: 150 * time.Millisecond,
		BulletSpeed:  10,
		BulletRadius: 3,
		BulletDamage: 25,

		Enemy:               model.EnemyStats{Radius: 10, Speed: 1, Health: 50, Damage: 10},
		EnemySpeedPerWave:   0.2,
		EnemyHealthPerWave:  20,
		EnemyStopDistance:   15,
		EnemyAttackCooldown: 500 * time.Millisecond,
		EnemySpawnMinDist:   160,
		EnemySpawnAttempts:  50,

		EnemiesPerWave:   5,
		EnemiesIncrement: 2,
		MaxWaves:         7,
		WaveCooldown:     60 * time.Second,
		WaveClearBonus:   500,
		KillScore:        100,

		PowerUpSpawnChance: 0.001,
		PowerUpRadius:      10,
		PowerUpHeal:        25,
		PowerUpScore:       50,
		PowerUpMinDist:     100,
		PowerUpAttempts:    50,

		ExplosionTicksPerFrame: 4,
		MaxParticles:           300,
		JoystickDeadZone:       0.1,
	}
}

// WaveSize is the number of enemies spawned for a wave. The opening wave is
// EnemiesPerWave; every later wave spawns EnemiesPerWave + wave*EnemiesIncrement.
func (r Rules) WaveSize(wave int) int {
	if wave <= 1 {
		return r.EnemiesPerWave
	}
	return r.EnemiesPerWave + wave*r.EnemiesIncrement
}

// EnemyStatsForWave scales speed and health with the wave number.
func (r Rules) EnemyStatsForWave(wave int) model.EnemyStats {
	if wave < 1 {
		wave = 1
	}
	stats := r.Enemy
	stats.Speed += float64(wave-1) * r.EnemySpeedPerWave
	stats.Health += (wave - 1) * r.EnemyHealthPerWave
	return stats
}

// StartPosition is the player's spawn point in world units on m.
func (r Rules) StartPosition(m *level.TileMap) (float64, float64) {
	return r.StartTileX * m.TileSize(), r.StartTileY * m.TileSize()
}

// CheckMap rejects a map whose start point cannot hold the player's body.
func (r Rules) CheckMap(m *level.TileMap) error {
	x, y := r.StartPosition(m)
	if !collision.CanMoveTo(m, x, y, r.Player.Radius) {
		tx, ty := m.TileAt(x, y)
		return fmt.Errorf("start tile (%d,%d): %w", tx, ty, ErrStartBlocked)
	}
	return nil
}
