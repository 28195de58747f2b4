package sim

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-shooter/collision"
	"github.com/trvswgnr/gopher-shooter/level"
	"github.com/trvswgnr/gopher-shooter/model"
)

type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Intent is one tick of player input, already translated from devices.
type Intent struct {
	// Forward and Strafe are key axes in [-1, 1]; positive strafe is right
	Forward float64
	Strafe  float64
	// Turn is the rotation key axis in [-1, 1], limited by the player's rotation speed
	Turn float64
	// Look is a pointer/touch delta in radians, applied as-is
	Look float64
	// Joystick is the normalized touch stick offset, y down
	Joystick geom.Vector2
	Fire     bool
}

// State owns everything a running game mutates. Step is the only writer.
type State struct {
	Phase              Phase
	Victory            bool
	Score              int
	Kills              int
	Wave               int
	WaitingForNextWave bool
	RunID              string

	Map        *level.TileMap
	Player     *model.Player
	Enemies    []*model.Enemy
	Bullets    []*model.Bullet
	Explosions []*model.Explosion
	PowerUps   []*model.PowerUp
	Particles  []*model.Particle

	rules     Rules
	clock     Clock
	rng       *PRNG
	events    *Dispatcher
	waveTimer time.Time
	startTime time.Time
	endTime   time.Time
}

func NewState(m *level.TileMap, rules Rules, clock Clock, rng *PRNG) *State {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = NewPRNG(0)
	}
	return &State{
		Phase:  PhaseMenu,
		Map:    m,
		rules:  rules,
		clock:  clock,
		rng:    rng,
		events: NewDispatcher(),
	}
}

func (s *State) Events() *Dispatcher { return s.events }
func (s *State) Rules() Rules         { return s.rules }

// Start resets the run and spawns the first wave.
func (s *State) Start() {
	now := s.clock.Now()

	s.Phase = PhasePlaying
	s.Victory = false
	s.Score = 0
	s.Kills = 0
	s.Wave = 1
	s.WaitingForNextWave = false
	s.RunID = uuid.New().String()
	s.startTime = now
	s.endTime = time.Time{}
	s.waveTimer = time.Time{}

	s.Enemies = nil
	s.Bullets = nil
	s.Explosions = nil
	s.PowerUps = nil
	s.Particles = nil

	x, y := s.rules.StartPosition(s.Map)
	weapon := model.NewWeapon(s.rules.ShotCooldown, s.rules.BulletSpeed, s.rules.BulletRadius, s.rules.BulletDamage)
	s.Player = model.NewPlayer(x, y, s.rules.StartAngle, s.rules.Player, weapon)

	s.logf("game started on %dx%d map", s.Map.Width(), s.Map.Height())
	s.events.Dispatch(Event{Type: EventGameStart, Position: s.Player.Pos()})
	s.spawnWave()
}

// ShowMenu returns to the menu. The last run stays readable for the background render.
func (s *State) ShowMenu() {
	s.Phase = PhaseMenu
}

func (s *State) endGame(victory bool) {
	if s.Phase != PhasePlaying {
		return
	}
	s.Phase = PhaseGameOver
	s.Victory = victory
	s.WaitingForNextWave = false
	s.endTime = s.clock.Now()

	s.logf("game over: victory=%t score=%d kills=%d wave=%d", victory, s.Score, s.Kills, s.Wave)
	if victory {
		s.events.Dispatch(Event{Type: EventVictory, Value: s.Score})
	} else {
		s.events.Dispatch(Event{Type: EventGameOver, Value: s.Score})
	}
}

func (s *State) Health() int {
	if s.Player == nil {
		return 0
	}
	return s.Player.Health
}

func (s *State) MaxHealth() int {
	if s.Player == nil {
		return s.rules.Player.MaxHealth
	}
	return s.Player.MaxHealth
}

func (s *State) MaxWaves() int {
	return s.rules.MaxWaves
}

func (s *State) EnemiesRemaining() int {
	return len(s.Enemies)
}

// WaveCountdown is the time left before the next wave, zero when not waiting.
func (s *State) WaveCountdown() time.Duration {
	if !s.WaitingForNextWave {
		return 0
	}
	left := s.rules.WaveCooldown - s.clock.Now().Sub(s.waveTimer)
	if left < 0 {
		return 0
	}
	return left
}

// Elapsed is the run time, frozen once the game ends.
func (s *State) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	if !s.endTime.IsZero() {
		return s.endTime.Sub(s.startTime)
	}
	return s.clock.Now().Sub(s.startTime)
}

func (s *State) playerProbe() collision.Probe {
	return collision.BodyProbe(s.Map, s.Player.Radius)
}

func (s *State) logf(format string, args ...interface{}) {
	id := s.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	log.Printf("[run %s] "+format, append([]interface{}{id}, args...)...)
}
