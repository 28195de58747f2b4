package sim

import (
	"time"

	"github.com/jinzhu/copier"
)

// HUD is a read-only snapshot of the values the overlay shows.
type HUD struct {
	Phase              Phase
	Victory            bool
	Health             int
	MaxHealth          int
	Score              int
	Kills              int
	Wave               int
	MaxWaves           int
	EnemiesRemaining   int
	WaitingForNextWave bool
	WaveCountdown      time.Duration
	Elapsed            time.Duration
	RunID              string
}

// HUD copies matching fields and accessor methods of the state into a snapshot.
func (s *State) HUD() HUD {
	var h HUD
	if err := copier.Copy(&h, s); err != nil {
		s.logf("hud snapshot: %v", err)
	}
	return h
}
