// game.go
package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/trvswgnr/gopher-shooter/config"
	"github.com/trvswgnr/gopher-shooter/render"
	"github.com/trvswgnr/gopher-shooter/sim"
)

// Game - This is the main type for your game.
type Game struct {
	cfg      *config.Config
	state    *sim.State
	clock    *sim.PausableClock
	renderer *render.Renderer
	controls *controls
	hud      *hud
	audio    *audioPlayer

	paused bool

	// window and render options
	screenWidth  int
	screenHeight int
	renderScale  float64
	fullscreen   bool
	vsync        bool

	// logical render size
	width  int
	height int
}

// NewGame wires the renderer, HUD and sound onto the state's event stream.
func NewGame(cfg *config.Config, state *sim.State, clock *sim.PausableClock) *Game {
	g := &Game{
		cfg:      cfg,
		state:    state,
		clock:    clock,
		controls: newControls(cfg.Input),
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)

	g.renderer = render.NewRenderer(cfg.Projection(), cfg.SpriteOptions())
	g.renderer.Debug = cfg.Window.Debug
	g.renderer.ShowSpriteBoxes = cfg.Window.Debug
	state.Events().SubscribeAll(g.renderer)

	g.renderScale = cfg.Window.RenderScale
	g.setResolution(cfg.Window.Width, cfg.Window.Height)
	g.setFullscreen(cfg.Window.Fullscreen)
	g.setVsyncEnabled(cfg.Window.Vsync)

	g.hud = newHUD(g)

	if cfg.Sound.Enabled {
		a, err := newAudioPlayer(cfg.Sound, cfg.World.Seed)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			g.audio = a
			state.Events().SubscribeAll(a)
		}
	}

	return g
}

func (g *Game) Run() {
	g.paused = false

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.setFullscreen(!g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.Debug = !g.renderer.Debug
	}

	switch g.state.Phase {
	case sim.PhaseMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.startGame()
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
	case sim.PhasePlaying:
		g.updatePlaying()
	case sim.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.startGame()
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.showMenu()
		}
	}

	g.updateCursor()
	g.renderer.Update()
	g.hud.Update(g.state.HUD(), g.paused)
	if g.audio != nil {
		g.audio.Update(g.state.Phase == sim.PhasePlaying && !g.paused)
	}
	return nil
}

func (g *Game) updatePlaying() {
	// p pauses the game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.paused)
	}

	// escape abandons the run
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.showMenu()
		return
	}

	if g.paused {
		// dont process input when paused
		return
	}

	g.state.Step(g.controls.Read())
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state)
	g.hud.Draw(screen)
}

func (g *Game) startGame() {
	g.setPaused(false)
	g.controls.Reset()
	g.state.Start()
}

func (g *Game) showMenu() {
	g.setPaused(false)
	g.state.ShowMenu()
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
}

// updateCursor captures the mouse only while actually playing.
func (g *Game) updateCursor() {
	want := ebiten.CursorModeVisible
	if g.state.Phase == sim.PhasePlaying && !g.paused {
		want = ebiten.CursorModeCaptured
	}
	if ebiten.CursorMode() != want {
		ebiten.SetCursorMode(want)
		// reset initial mouse capture position
		g.controls.Reset()
	}
}

// -- window options

func (g *Game) setFullscreen(fullscreen bool) {
	g.fullscreen = fullscreen
	ebiten.SetFullscreen(fullscreen)
}

func (g *Game) setResolution(screenWidth, screenHeight int) {
	g.screenWidth, g.screenHeight = screenWidth, screenHeight
	ebiten.SetWindowSize(screenWidth, screenHeight)
	g.setRenderScale(g.renderScale)
}

func (g *Game) setRenderScale(renderScale float64) {
	if renderScale <= 0 {
		renderScale = 1
	}
	g.renderScale = renderScale
	g.width = int(math.Floor(float64(g.screenWidth) * g.renderScale))
	g.height = int(math.Floor(float64(g.screenHeight) * g.renderScale))
	g.renderer.View.Width, g.renderer.View.Height = g.width, g.height
	g.controls.screenWidth = g.width
}

func (g *Game) setVsyncEnabled(enableVsync bool) {
	g.vsync = enableVsync
	ebiten.SetVsyncEnabled(enableVsync)
}
