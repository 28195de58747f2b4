package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trvswgnr/gopher-shooter/model"
	"github.com/trvswgnr/gopher-shooter/raycast"
)

// texture size every billboard is drawn at before scaling
const texSize = 64

// Images holds the billboard and weapon art. Everything is drawn at startup so
// the game needs no asset files.
type Images struct {
	Enemy     *ebiten.Image
	PowerUp   *ebiten.Image
	Bullet    *ebiten.Image
	Particle  *ebiten.Image
	Explosion []*ebiten.Image
	Weapon    *ebiten.Image
	Flash     *ebiten.Image
}

func NewImages() *Images {
	im := &Images{
		Enemy:    drawEnemy(),
		PowerUp:  drawPowerUp(),
		Bullet:   drawBullet(),
		Particle: drawParticle(),
		Weapon:   drawWeapon(),
		Flash:    drawFlash(),
	}
	for i := 0; i < model.ExplosionFrames; i++ {
		im.Explosion = append(im.Explosion, drawExplosionFrame(i))
	}
	return im
}

// For picks the image a projected sprite is drawn with.
func (im *Images) For(s raycast.Sprite) *ebiten.Image {
	switch s.Kind {
	case raycast.KindEnemy:
		return im.Enemy
	case raycast.KindPowerUp:
		return im.PowerUp
	case raycast.KindBullet:
		return im.Bullet
	case raycast.KindExplosion:
		f := s.Frame
		if f < 0 {
			f = 0
		}
		if f >= len(im.Explosion) {
			f = len(im.Explosion) - 1
		}
		return im.Explosion[f]
	default:
		return im.Particle
	}
}

// a gopher-ish blob: body, eyes, teeth
func drawEnemy() *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	body := color.RGBA{200, 40, 40, 255}
	vector.DrawFilledCircle(img, 32, 36, 26, body, true)
	vector.DrawFilledCircle(img, 12, 12, 6, body, true)
	vector.DrawFilledCircle(img, 52, 12, 6, body, true)

	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	vector.DrawFilledCircle(img, 22, 28, 8, white, true)
	vector.DrawFilledCircle(img, 42, 28, 8, white, true)
	vector.DrawFilledCircle(img, 24, 29, 3, black, true)
	vector.DrawFilledCircle(img, 40, 29, 3, black, true)

	vector.DrawFilledRect(img, 27, 44, 4, 6, white, false)
	vector.DrawFilledRect(img, 33, 44, 4, 6, white, false)
	return img
}

// green medkit with a white cross
func drawPowerUp() *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	vector.DrawFilledRect(img, 8, 8, 48, 48, color.RGBA{20, 170, 60, 255}, false)
	vector.StrokeRect(img, 8, 8, 48, 48, 3, color.RGBA{10, 90, 30, 255}, false)
	white := color.RGBA{255, 255, 255, 255}
	vector.DrawFilledRect(img, 27, 16, 10, 32, white, false)
	vector.DrawFilledRect(img, 16, 27, 32, 10, white, false)
	return img
}

func drawBullet() *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	vector.DrawFilledCircle(img, 32, 32, 24, color.RGBA{255, 200, 0, 255}, true)
	vector.DrawFilledCircle(img, 32, 32, 12, color.RGBA{255, 255, 200, 255}, true)
	return img
}

// white so the tint decides the colour
func drawParticle() *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	vector.DrawFilledCircle(img, 32, 32, 28, color.White, true)
	return img
}

// frame i of the fireball: grows, then darkens and thins out
func drawExplosionFrame(i int) *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	t := float32(i) / float32(model.ExplosionFrames-1)

	outer := 10 + 20*t
	fade := uint8(255 * (1 - 0.7*t))
	vector.DrawFilledCircle(img, 32, 32, outer, color.RGBA{fade, uint8(float32(fade) * 0.4), 0, fade}, true)
	if i < model.ExplosionFrames-2 {
		vector.DrawFilledCircle(img, 32, 32, outer*0.6, color.RGBA{255, 220, 80, 255}, true)
	}
	return img
}

// first-person pistol, bottom centred on screen
func drawWeapon() *ebiten.Image {
	img := ebiten.NewImage(texSize*2, texSize*2)
	metal := color.RGBA{70, 70, 80, 255}
	dark := color.RGBA{35, 35, 40, 255}
	skin := color.RGBA{230, 180, 140, 255}

	vector.DrawFilledRect(img, 54, 20, 20, 60, metal, false)
	vector.DrawFilledRect(img, 58, 12, 12, 12, dark, false)
	vector.DrawFilledRect(img, 48, 76, 32, 52, skin, false)
	vector.DrawFilledRect(img, 54, 70, 20, 16, dark, false)
	return img
}

func drawFlash() *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	vector.DrawFilledCircle(img, 32, 32, 30, color.NRGBA{255, 160, 0, 200}, true)
	vector.DrawFilledCircle(img, 32, 32, 16, color.RGBA{255, 255, 200, 255}, true)
	return img
}

var emptySubImage = ebiten.NewImage(3, 3).SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	emptySubImage.Fill(color.White)
}
