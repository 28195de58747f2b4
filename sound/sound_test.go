package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/trvswgnr/gopher-shooter/sim"
)

const testRate = beep.SampleRate(44100)

func samplesOf(pcm []byte) []int16 {
	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return out
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(WaveSine, 440, 440, 100*time.Millisecond, testRate, nil)
	pcm := Render(osc, testRate.N(time.Second), 1)

	if want := testRate.N(100*time.Millisecond) * 4; len(pcm) != want {
		t.Errorf("Expected %d bytes, got %d", want, len(pcm))
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(WaveSquare, 220, 220, 50*time.Millisecond, testRate, nil)
	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("Sample %d: expected ±1, got %v", i, v)
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("Sample %d: expected identical channels", i)
		}
	}
}

func TestOscillatorDrains(t *testing.T) {
	osc := NewOscillator(WaveSaw, 100, 100, time.Millisecond, testRate, nil)
	buf := make([][2]float64, 1000)
	n, ok := osc.Stream(buf)
	if n != testRate.N(time.Millisecond) || !ok {
		t.Errorf("Expected a short final read, got %d (ok=%v)", n, ok)
	}
	if n, ok := osc.Stream(buf); n != 0 || ok {
		t.Errorf("Expected drained oscillator, got %d (ok=%v)", n, ok)
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	d := 100 * time.Millisecond
	s := NewEnvelope(NewOscillator(WaveSquare, 100, 100, d, testRate, nil), d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	samples := samplesOf(Render(s, testRate.N(time.Second), 1))

	if samples[0] != 0 {
		t.Errorf("Expected the attack to start at 0, got %d", samples[0])
	}
	mid := len(samples) / 2
	if v := samples[mid]; v != math.MaxInt16 && v != -math.MaxInt16 {
		t.Errorf("Expected full level in the sustain, got %d", v)
	}
	last := samples[len(samples)-1]
	if last > 1000 || last < -1000 {
		t.Errorf("Expected the release to fade out, got %d", last)
	}
}

func TestRenderClips(t *testing.T) {
	osc := NewOscillator(WaveSquare, 100, 100, 10*time.Millisecond, testRate, nil)
	for _, v := range samplesOf(Render(osc, testRate.N(time.Second), 3)) {
		if v != math.MaxInt16 && v != -math.MaxInt16 {
			t.Fatalf("Expected clipped samples, got %d", v)
		}
	}
}

func TestRenderRespectsLimit(t *testing.T) {
	osc := NewOscillator(WaveSine, 100, 100, time.Second, testRate, nil)
	if pcm := Render(osc, 10, 1); len(pcm) != 40 {
		t.Errorf("Expected 40 bytes, got %d", len(pcm))
	}
}

func TestSilentVolume(t *testing.T) {
	s := newVolume(NewOscillator(WaveSquare, 100, 100, 10*time.Millisecond, testRate, nil), 0)
	for _, v := range samplesOf(Render(s, testRate.N(time.Second), 1)) {
		if v != 0 {
			t.Fatalf("Expected silence, got %d", v)
		}
	}
}

func TestEveryEventHasASound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, e := range sim.AllEvents {
		if Effect(e, testRate, rng) == nil {
			t.Errorf("Expected a sound for %s", e)
		}
	}
	if Effect("unknown", testRate, rng) != nil {
		t.Error("Expected no sound for an unknown event")
	}
}

func TestBankCaches(t *testing.T) {
	b := NewBank(44100, 0.5, 1)
	first := b.Get(sim.EventShoot)
	if len(first) == 0 || len(first)%4 != 0 {
		t.Fatalf("Expected whole stereo frames, got %d bytes", len(first))
	}
	if len(first) > testRate.N(maxEffect)*4 {
		t.Errorf("Expected at most %v of audio, got %d bytes", maxEffect, len(first))
	}
	second := b.Get(sim.EventShoot)
	if &first[0] != &second[0] {
		t.Error("Expected the cached buffer to be reused")
	}
	if b.Get("unknown") != nil {
		t.Error("Expected nil for a silent event")
	}
}

func TestBankAmbientLength(t *testing.T) {
	b := NewBank(44100, 0.5, 1)
	pcm := b.Ambient(2 * time.Second)
	if want := testRate.N(2*time.Second) * 4; len(pcm) != want {
		t.Errorf("Expected %d bytes, got %d", want, len(pcm))
	}
}
