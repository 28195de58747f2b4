package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	crosshairColor = color.RGBA{255, 255, 255, 220}
	hitColor       = color.RGBA{255, 40, 40, 255}
)

// Crosshairs marks the screen centre and flashes red for a few ticks after a hit.
type Crosshairs struct {
	Size     float32
	Gap      float32
	hitTimer int
}

func NewCrosshairs(size, gap float32) *Crosshairs {
	return &Crosshairs{Size: size, Gap: gap}
}

func (c *Crosshairs) ActivateHitIndicator(hitTime int) {
	c.hitTimer = hitTime
}

func (c *Crosshairs) IsHitIndicatorActive() bool {
	return c.hitTimer > 0
}

// Update counts the hit indicator down, once per tick.
func (c *Crosshairs) Update() {
	if c.hitTimer > 0 {
		c.hitTimer -= 1
	}
}

func (c *Crosshairs) Draw(screen *ebiten.Image, cx, cy float32) {
	clr := crosshairColor
	if c.IsHitIndicatorActive() {
		clr = hitColor
	}

	s, g := c.Size, c.Gap
	vector.StrokeLine(screen, cx-g-s, cy, cx-g, cy, 2, clr, false)
	vector.StrokeLine(screen, cx+g, cy, cx+g+s, cy, 2, clr, false)
	vector.StrokeLine(screen, cx, cy-g-s, cx, cy-g, 2, clr, false)
	vector.StrokeLine(screen, cx, cy+g, cx, cy+g+s, 2, clr, false)

	if c.IsHitIndicatorActive() {
		// diagonal ticks on a hit
		d := g + s/2
		vector.StrokeLine(screen, cx-d, cy-d, cx-g, cy-g, 2, clr, false)
		vector.StrokeLine(screen, cx+d, cy-d, cx+g, cy-g, 2, clr, false)
		vector.StrokeLine(screen, cx-d, cy+d, cx-g, cy+g, 2, clr, false)
		vector.StrokeLine(screen, cx+d, cy+d, cx+g, cy+g, 2, clr, false)
	}
}
