// ui.go
package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/trvswgnr/gopher-shooter/sim"
)

var (
	textColor    = color.RGBA{230, 230, 230, 255}
	accentColor  = color.RGBA{255, 200, 60, 255}
	dangerColor  = color.RGBA{255, 80, 80, 255}
	panelColor   = color.NRGBA{0, 0, 0, 170}
	buttonIdle   = color.NRGBA{70, 70, 90, 255}
	buttonHover  = color.NRGBA{100, 100, 130, 255}
	buttonActive = color.NRGBA{50, 50, 70, 255}
)

const instructions = `WASD / arrows   move
mouse / arrows  turn
click / space   shoot
P               pause
Esc             back to menu
touch: left half moves, right half looks, tap to shoot`

// hud holds one ebitenui tree per screen and swaps between them by phase.
type hud struct {
	game *Game

	small, large font.Face

	play, menu, end *ebitenui.UI

	health, score, wave, enemies, timer, banner *widget.Text
	help                                       *widget.Text
	endTitle, endStats                         *widget.Text

	showHelp bool
	phase    sim.Phase
}

func newHUD(g *Game) *hud {
	h := &hud{game: g}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	h.small = truetype.NewFace(f, &truetype.Options{Size: 16, DPI: 72, Hinting: font.HintingFull})
	h.large = truetype.NewFace(f, &truetype.Options{Size: 40, DPI: 72, Hinting: font.HintingFull})

	h.play = h.buildPlay()
	h.menu = h.buildMenu()
	h.end = h.buildEnd()
	return h
}

// -- builders

func (h *hud) label(face font.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text("", face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
}

func (h *hud) button(text string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			widget.WidgetOpts.MinSize(220, 40),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    eimage.NewNineSliceColor(buttonIdle),
			Hover:   eimage.NewNineSliceColor(buttonHover),
			Pressed: eimage.NewNineSliceColor(buttonActive),
		}),
		widget.ButtonOpts.Text(text, h.small, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// panel is a column of widgets placed by an anchor in an otherwise empty screen.
func panel(hPos, vPos widget.AnchorLayoutPosition, bg color.Color) (*widget.Container, *widget.Container) {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: hPos,
			VerticalPosition:   vPos,
		})),
	}
	if bg != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(bg)))
	}
	column := widget.NewContainer(opts...)
	root.AddChild(column)
	return root, column
}

func (h *hud) buildPlay() *ebitenui.UI {
	root, column := panel(widget.AnchorLayoutPositionStart, widget.AnchorLayoutPositionStart, nil)

	h.health = h.label(h.small, textColor)
	h.score = h.label(h.small, textColor)
	h.wave = h.label(h.small, textColor)
	h.enemies = h.label(h.small, textColor)
	h.timer = h.label(h.small, textColor)
	for _, t := range []*widget.Text{h.health, h.score, h.wave, h.enemies, h.timer} {
		column.AddChild(t)
	}

	// the wave banner sits alone in the middle of the screen
	h.banner = widget.NewText(
		widget.TextOpts.Text("", h.large, accentColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	root.AddChild(h.banner)

	return &ebitenui.UI{Container: root}
}

func (h *hud) buildMenu() *ebitenui.UI {
	root, column := panel(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter, panelColor)

	title := h.label(h.large, accentColor)
	title.Label = h.game.cfg.Window.Title
	h.help = h.label(h.small, textColor)

	column.AddChild(title)
	column.AddChild(h.button("Start", h.game.startGame))
	column.AddChild(h.button("How to play", func() { h.showHelp = !h.showHelp }))
	column.AddChild(h.help)
	return &ebitenui.UI{Container: root}
}

func (h *hud) buildEnd() *ebitenui.UI {
	root, column := panel(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter, panelColor)

	h.endTitle = h.label(h.large, dangerColor)
	h.endStats = h.label(h.small, textColor)
	column.AddChild(h.endTitle)
	column.AddChild(h.endStats)
	column.AddChild(h.button("Play again", h.game.startGame))
	column.AddChild(h.button("Menu", h.game.showMenu))
	return &ebitenui.UI{Container: root}
}

// -- per tick

func (h *hud) current() *ebitenui.UI {
	switch h.phase {
	case sim.PhaseMenu:
		return h.menu
	case sim.PhaseGameOver:
		return h.end
	}
	return h.play
}

// Update refreshes the labels from a state snapshot and lets the active screen handle input.
func (h *hud) Update(s sim.HUD, paused bool) {
	h.phase = s.Phase

	switch s.Phase {
	case sim.PhaseMenu:
		h.help.Label = ""
		if h.showHelp {
			h.help.Label = instructions
		}
	case sim.PhasePlaying:
		h.health.Label = fmt.Sprintf("Health: %d/%d", s.Health, s.MaxHealth)
		h.health.Color = textColor
		if s.Health*4 <= s.MaxHealth {
			h.health.Color = dangerColor
		}
		h.score.Label = fmt.Sprintf("Score: %d  Kills: %d", s.Score, s.Kills)
		h.wave.Label = fmt.Sprintf("Wave: %d/%d", s.Wave, s.MaxWaves)
		h.enemies.Label = fmt.Sprintf("Enemies: %d", s.EnemiesRemaining)
		h.timer.Label = "Time: " + clockString(s.Elapsed)

		switch {
		case paused:
			h.banner.Label = "PAUSED"
		case s.WaitingForNextWave:
			h.banner.Label = fmt.Sprintf("Wave %d in %d", s.Wave+1, int(s.WaveCountdown.Seconds()+0.5))
		default:
			h.banner.Label = ""
		}
	case sim.PhaseGameOver:
		if s.Victory {
			h.endTitle.Label = "VICTORY"
			h.endTitle.Color = accentColor
		} else {
			h.endTitle.Label = "GAME OVER"
			h.endTitle.Color = dangerColor
		}
		h.endStats.Label = fmt.Sprintf("Score %d   Kills %d   Wave %d/%d   Time %s",
			s.Score, s.Kills, s.Wave, s.MaxWaves, clockString(s.Elapsed))
	}

	h.current().Update()
}

func (h *hud) Draw(screen *ebiten.Image) {
	h.current().Draw(screen)
}

// clockString formats a duration as m:ss.
func clockString(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
