// minimap.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trvswgnr/gopher-shooter/level"
	"github.com/trvswgnr/gopher-shooter/sim"
)

var (
	minimapWall    = color.RGBA{50, 50, 50, 255}
	minimapFloor   = color.RGBA{140, 140, 140, 255}
	minimapPlayer  = color.RGBA{0, 255, 255, 255}
	minimapEnemy   = color.RGBA{255, 0, 0, 255}
	minimapPowerUp = color.RGBA{0, 255, 0, 255}
	minimapBullet  = color.RGBA{255, 255, 0, 255}
)

// Minimap is the top-right overview. The tile layer is drawn once per map.
type Minimap struct {
	Scale  int
	Margin int

	static *ebiten.Image
	mapRef *level.TileMap
}

func NewMinimap(scale, margin int) *Minimap {
	return &Minimap{Scale: scale, Margin: margin}
}

func (mm *Minimap) generateStatic(m *level.TileMap) {
	s := mm.Scale
	mm.static = ebiten.NewImage(m.Width()*s, m.Height()*s)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := minimapFloor
			if m.IsWall(x, y) {
				c = minimapWall
			}
			vector.DrawFilledRect(mm.static, float32(x*s), float32(y*s), float32(s), float32(s), c, false)
		}
	}
	mm.mapRef = m
}

func (mm *Minimap) Draw(screen *ebiten.Image, s *sim.State) {
	m := s.Map
	if m == nil || s.Player == nil {
		return
	}
	if mm.mapRef != m {
		mm.generateStatic(m)
	}

	originX := float32(screen.Bounds().Dx() - m.Width()*mm.Scale - mm.Margin)
	originY := float32(mm.Margin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(originX), float64(originY))
	op.ColorScale.ScaleAlpha(0.8)
	screen.DrawImage(mm.static, op)

	// world units to minimap pixels
	k := float32(float64(mm.Scale) / m.TileSize())
	at := func(x, y float64) (float32, float32) {
		return originX + float32(x)*k, originY + float32(y)*k
	}

	for _, pu := range s.PowerUps {
		x, y := at(pu.Position.X, pu.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(mm.Scale)/3, minimapPowerUp, false)
	}
	for _, b := range s.Bullets {
		x, y := at(b.Position.X, b.Position.Y)
		vector.DrawFilledRect(screen, x, y, 1, 1, minimapBullet, false)
	}
	for _, e := range s.Enemies {
		x, y := at(e.Position.X, e.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(mm.Scale)/2, minimapEnemy, false)
	}

	px, py := at(s.Player.Position.X, s.Player.Position.Y)
	mm.drawPlayer(screen, px, py, s.Player.Angle)
}

// drawPlayer draws a triangle pointing along the heading
func (mm *Minimap) drawPlayer(screen *ebiten.Image, px, py float32, angle float64) {
	size := float32(mm.Scale)
	point := func(a float64) (float32, float32) {
		return px + size*float32(math.Cos(a)), py + size*float32(math.Sin(a))
	}
	x1, y1 := point(angle)
	x2, y2 := point(angle + 2.5)
	x3, y3 := point(angle - 2.5)

	r := float32(minimapPlayer.R) / 255
	g := float32(minimapPlayer.G) / 255
	b := float32(minimapPlayer.B) / 255
	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		{DstX: x3, DstY: y3, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, emptySubImage, nil)
}
