package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trvswgnr/gopher-shooter/raycast"
	"github.com/trvswgnr/gopher-shooter/sim"
)

var (
	skyColor   = color.RGBA{40, 40, 60, 255}
	floorColor = color.RGBA{60, 50, 40, 255}
	wallColor  = color.RGBA{160, 160, 170, 255}
)

const (
	hitIndicatorTicks = 10
	hurtFlashTicks    = 12
)

// Renderer composites one frame: wall strips from the depth buffer, sprites
// clipped against it, then the weapon and overlays.
type Renderer struct {
	View    raycast.View
	Sprites raycast.SpriteOptions

	// ShowSpriteBoxes outlines every projected sprite
	ShowSpriteBoxes bool
	Debug           bool

	images     *Images
	crosshairs *Crosshairs
	minimap    *Minimap
	hurtTimer  int

	columns []raycast.Column
	depth   []float64
}

func NewRenderer(view raycast.View, opts raycast.SpriteOptions) *Renderer {
	return &Renderer{
		View:       view,
		Sprites:    opts,
		images:     NewImages(),
		crosshairs: NewCrosshairs(8, 4),
		minimap:    NewMinimap(6, 10),
	}
}

// OnEvent drives the hit indicator and hurt flash.
func (r *Renderer) OnEvent(e sim.Event) {
	switch e.Type {
	case sim.EventEnemyHit, sim.EventEnemyDeath:
		r.crosshairs.ActivateHitIndicator(hitIndicatorTicks)
	case sim.EventPlayerHurt:
		r.hurtTimer = hurtFlashTicks
	case sim.EventGameStart:
		r.hurtTimer = 0
	}
}

// Update advances overlay timers, once per tick.
func (r *Renderer) Update() {
	r.crosshairs.Update()
	if r.hurtTimer > 0 {
		r.hurtTimer--
	}
}

// Draw renders the world in every phase so menus sit on top of a live scene.
func (r *Renderer) Draw(screen *ebiten.Image, s *sim.State) {
	w, h := float32(r.View.Width), float32(r.View.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h/2, skyColor, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, floorColor, false)

	if s.Map == nil || s.Player == nil {
		return
	}

	pose := s.Pose()
	r.columns = raycast.CastColumns(s.Map, pose, r.View)
	r.depth = raycast.DepthBuffer(r.columns)
	r.drawWalls(screen)

	sprites := s.Sprites()
	projections := raycast.ProjectSprites(pose, sprites, r.View, r.Sprites)
	for _, p := range projections {
		r.drawSprite(screen, p)
	}

	if s.Phase == sim.PhasePlaying {
		r.drawWeapon(screen, s.Player.Weapon.Firing())
		r.crosshairs.Draw(screen, w/2, h/2)
	}
	r.minimap.Draw(screen, s)
	r.drawHurt(screen)

	if r.Debug {
		msg := fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f\nsprites: %d/%d", ebiten.ActualFPS(), ebiten.ActualTPS(), len(projections), len(sprites))
		ebitenutil.DebugPrintAt(screen, msg, 10, int(h)-60)
	}
}

func (r *Renderer) drawWalls(screen *ebiten.Image) {
	for _, c := range r.columns {
		clr := raycast.ShadeColor(wallColor, c.Shade)
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Top), float32(c.Width), float32(c.Height), clr, false)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, p raycast.Projection) {
	img := r.images.For(p.Sprite)
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

	top := float64(r.View.Height)/2 - p.Size/2 - p.Lift*p.Size
	spans := raycast.VisibleSpans(p, r.depth, r.View)

	for _, sp := range spans {
		u0 := int(sp.U0 * float64(iw))
		u1 := int(sp.U1 * float64(iw))
		if u1 <= u0 {
			u1 = u0 + 1
		}
		if u1 > iw {
			u0, u1 = iw-1, iw
		}
		sub := img.SubImage(image.Rect(u0, 0, u1, ih)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(float64(sp.X1-sp.X0)/float64(u1-u0), p.Size/float64(ih))
		op.GeoM.Translate(float64(sp.X0), top)
		if p.Kind == raycast.KindParticle {
			op.ColorScale.ScaleWithColor(p.Tint)
		}
		b := float32(p.Brightness)
		op.ColorScale.Scale(b, b, b, 1)
		screen.DrawImage(sub, op)
	}

	if len(spans) == 0 {
		return
	}
	if p.Kind == raycast.KindEnemy && p.Health < 1 {
		r.drawHealthBar(screen, p, top)
	}
	if r.ShowSpriteBoxes {
		left := float32(p.ScreenX - p.Size/2)
		vector.StrokeRect(screen, left, float32(top), float32(p.Size), float32(p.Size), 1, color.RGBA{255, 0, 0, 255}, false)
	}
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, p raycast.Projection, top float64) {
	w := float32(p.Size * 0.6)
	x := float32(p.ScreenX) - w/2
	y := float32(top) - 6
	vector.DrawFilledRect(screen, x, y, w, 4, color.RGBA{80, 0, 0, 255}, false)
	vector.DrawFilledRect(screen, x, y, w*float32(p.Health), 4, color.RGBA{0, 200, 0, 255}, false)
}

func (r *Renderer) drawWeapon(screen *ebiten.Image, firing bool) {
	wi := r.images.Weapon
	ww, wh := wi.Bounds().Dx(), wi.Bounds().Dy()

	// weapon should only take up 1/3rd of screen space
	compSize := r.View.Height
	if r.View.Width < r.View.Height {
		compSize = r.View.Width
	}
	scale := (float64(compSize) / 3) / float64(wh)

	x := float64(r.View.Width)/2 - float64(ww)*scale/2
	y := float64(r.View.Height) - float64(wh)*scale + 1

	if firing {
		fi := r.images.Flash
		fs := scale * 0.8
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(fs, fs)
		op.GeoM.Translate(float64(r.View.Width)/2-float64(fi.Bounds().Dx())*fs/2, y-float64(fi.Bounds().Dy())*fs/2)
		screen.DrawImage(fi, op)
		// recoil
		y += 6
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(wi, op)
}

func (r *Renderer) drawHurt(screen *ebiten.Image) {
	if r.hurtTimer <= 0 {
		return
	}
	a := uint8(120 * r.hurtTimer / hurtFlashTicks)
	vector.DrawFilledRect(screen, 0, 0, float32(r.View.Width), float32(r.View.Height), color.NRGBA{255, 0, 0, a}, false)
}
