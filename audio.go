// audio.go
package main

import (
	"bytes"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/trvswgnr/gopher-shooter/config"
	"github.com/trvswgnr/gopher-shooter/sim"
	"github.com/trvswgnr/gopher-shooter/sound"
)

const ambientLength = 8 * time.Second

// audioPlayer plays the sound bank through ebiten's audio context.
type audioPlayer struct {
	ctx     *audio.Context
	bank    *sound.Bank
	players map[sim.EventType]*audio.Player
	ambient *audio.Player
}

func newAudioPlayer(cfg config.SoundConfig, seed int64) (*audioPlayer, error) {
	if audio.CurrentContext() != nil {
		return nil, errors.New("audio context already created")
	}

	bank := sound.NewBank(cfg.SampleRate, cfg.Volume, seed)
	bank.Preload()

	a := &audioPlayer{
		ctx:     audio.NewContext(bank.SampleRate()),
		bank:    bank,
		players: make(map[sim.EventType]*audio.Player),
	}

	pcm := bank.Ambient(ambientLength)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := a.ctx.NewPlayer(loop)
	if err != nil {
		return nil, err
	}
	a.ambient = p
	return a, nil
}

// OnEvent restarts the event's sound, one voice per event type.
func (a *audioPlayer) OnEvent(e sim.Event) {
	p, ok := a.players[e.Type]
	if !ok {
		pcm := a.bank.Get(e.Type)
		if pcm == nil {
			return
		}
		p = a.ctx.NewPlayerFromBytes(pcm)
		a.players[e.Type] = p
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// Update keeps the ambient drone running only while a run is live.
func (a *audioPlayer) Update(live bool) {
	if live && !a.ambient.IsPlaying() {
		a.ambient.Play()
	} else if !live && a.ambient.IsPlaying() {
		a.ambient.Pause()
	}
}
