package sound

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/trvswgnr/gopher-shooter/sim"
)

const ms = time.Millisecond

// Effect builds the one-shot sound for an event, or nil when the event is silent.
func Effect(t sim.EventType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch t {
	case sim.EventShoot:
		return beep.Mix(
			tone(WaveSquare, 880, 220, 90*ms, rate, rng),
			newVolume(tone(WaveNoise, 0, 0, 60*ms, rate, rng), 0.4),
		)
	case sim.EventEnemyHit:
		return tone(WaveNoise, 0, 0, 70*ms, rate, rng)
	case sim.EventEnemyDeath:
		return beep.Mix(
			tone(WaveSaw, 320, 40, 400*ms, rate, rng),
			newVolume(tone(WaveNoise, 0, 0, 300*ms, rate, rng), 0.5),
		)
	case sim.EventPlayerHurt:
		return tone(WaveSquare, 160, 110, 200*ms, rate, rng)
	case sim.EventPowerUpPickup:
		return beep.Seq(
			tone(WaveSine, 660, 660, 80*ms, rate, rng),
			tone(WaveSine, 990, 990, 120*ms, rate, rng),
		)
	case sim.EventWaveStart:
		return tone(WaveSaw, 110, 220, 500*ms, rate, rng)
	case sim.EventWaveComplete:
		return arpeggio([]float64{523, 659, 784}, 120*ms, rate, rng)
	case sim.EventVictory:
		return arpeggio([]float64{523, 659, 784, 1047}, 180*ms, rate, rng)
	case sim.EventGameOver:
		return arpeggio([]float64{392, 311, 262, 196}, 220*ms, rate, rng)
	case sim.EventGameStart:
		return tone(WaveSine, 440, 880, 250*ms, rate, rng)
	}
	return nil
}

func arpeggio(freqs []float64, step time.Duration, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(WaveSine, f, f, step, rate, rng)
	}
	return beep.Seq(notes...)
}

// Ambient is a low two-oscillator drone, meant to be looped.
func Ambient(d time.Duration, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return beep.Mix(
		NewEnvelope(NewOscillator(WaveSine, 55, 55, d, rate, rng), d, 0, 0, rate),
		newVolume(NewEnvelope(NewOscillator(WaveSine, 82.5, 82.5, d, rate, rng), d, 0, 0, rate), 0.5),
	)
}
