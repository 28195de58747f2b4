package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/trvswgnr/gopher-shooter/sim"
)

// longest one-shot the bank will render
const maxEffect = 2 * time.Second

// Render drains s into signed 16-bit little-endian stereo PCM, the format
// ebiten's audio players take. Samples are clipped to [-1, 1] after volume.
func Render(s beep.Streamer, limit int, volume float64) []byte {
	s = beep.Take(limit, s)

	out := make([]byte, 0, limit*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v*volume))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Bank renders each event sound once and keeps the PCM for replay.
type Bank struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	rng    *rand.Rand
	store  map[sim.EventType][]byte
}

func NewBank(sampleRate int, volume float64, seed int64) *Bank {
	return &Bank{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		rng:    rand.New(rand.NewSource(seed)),
		store:  make(map[sim.EventType][]byte),
	}
}

func (b *Bank) SampleRate() int { return int(b.rate) }

// Get returns the PCM for an event, rendering it on first use. Silent events return nil.
func (b *Bank) Get(t sim.EventType) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if pcm, ok := b.store[t]; ok {
		return pcm
	}
	var pcm []byte
	if s := Effect(t, b.rate, b.rng); s != nil {
		pcm = Render(s, b.rate.N(maxEffect), b.volume)
	}
	b.store[t] = pcm
	return pcm
}

// Preload renders every event sound up front.
func (b *Bank) Preload() {
	for _, t := range sim.AllEvents {
		b.Get(t)
	}
}

// Ambient renders a loopable drone of length d at half the effect volume.
func (b *Bank) Ambient(d time.Duration) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Render(Ambient(d, b.rate, b.rng), b.rate.N(d), b.volume*0.5)
}
