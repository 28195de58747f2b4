package raycast

import (
	"image/color"
	"math"

	"github.com/trvswgnr/gopher-shooter/level"
)

const (
	// stand-in for |1/0| when a ray runs parallel to an axis
	hugeDelta = 1e30

	// smallest distance handed back, keeps projections finite
	minDistance = 1e-4

	sideX = 0
	sideY = 1
)

// Pose is a position and heading in world units. Angle 0 points along +x and grows clockwise on screen.
type Pose struct {
	X, Y  float64
	Angle float64
}

// View describes the projection the columns are built for.
type View struct {
	Width, Height int
	Fov           float64
	MaxDepth      float64
	WallHeight    float64
	ColumnWidth   int
}

func (v View) HalfFov() float64 { return v.Fov / 2 }

func (v View) NumRays() int {
	if v.ColumnWidth <= 0 {
		return v.Width
	}
	return v.Width / v.ColumnWidth
}

type RayHit struct {
	Distance     float64
	Side         int
	TileX, TileY int
}

// Column is one flat-shaded wall strip.
type Column struct {
	RayHit
	RayAngle float64
	X, Width int
	Height   float64
	Top      float64
	Shade    float64
}

// CastRay walks the grid from (ox, oy) along angle and returns the perpendicular
// distance to the first wall, clamped to (0, maxDepth].
func CastRay(m *level.TileMap, ox, oy, angle, maxDepth float64) RayHit {
	ts := m.TileSize()
	posX, posY := ox/ts, oy/ts
	mapX, mapY := int(math.Floor(posX)), int(math.Floor(posY))

	rayDirX, rayDirY := math.Cos(angle), math.Sin(angle)

	deltaDistX, deltaDistY := hugeDelta, hugeDelta
	if rayDirX != 0 {
		deltaDistX = math.Abs(1 / rayDirX)
	}
	if rayDirY != 0 {
		deltaDistY = math.Abs(1 / rayDirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - posX) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - posY) * deltaDistY
	}

	// the cast always ends: the map is finite and out of bounds reads as wall
	side := sideX
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = sideX
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = sideY
		}
		if m.IsWall(mapX, mapY) {
			break
		}
	}

	var dist float64
	if side == sideX {
		dist = (float64(mapX) - posX + (1-float64(stepX))/2) / rayDirX
	} else {
		dist = (float64(mapY) - posY + (1-float64(stepY))/2) / rayDirY
	}
	dist *= ts

	return RayHit{
		Distance: clampDistance(dist, maxDepth),
		Side:     side,
		TileX:    mapX,
		TileY:    mapY,
	}
}

// CastColumns casts one ray per column across the field of view. Distances are
// projected onto the view direction so flat walls stay flat.
func CastColumns(m *level.TileMap, pose Pose, view View) []Column {
	numRays := view.NumRays()
	if numRays <= 0 {
		return nil
	}

	colWidth := view.Width / numRays
	columns := make([]Column, numRays)
	startAngle := pose.Angle - view.HalfFov()
	step := view.Fov / float64(numRays)

	for i := 0; i < numRays; i++ {
		rayAngle := startAngle + float64(i)*step
		hit := CastRay(m, pose.X, pose.Y, rayAngle, view.MaxDepth)
		hit.Distance = clampDistance(hit.Distance*math.Cos(rayAngle-pose.Angle), view.MaxDepth)

		height := WallHeight(view, hit.Distance)
		columns[i] = Column{
			RayHit:   hit,
			RayAngle: rayAngle,
			X:        i * colWidth,
			Width:    colWidth,
			Height:   height,
			Top:      float64(view.Height)/2 - height/2,
			Shade:    Shade(hit.Side, hit.Distance, view.MaxDepth),
		}
	}

	return columns
}

// WallHeight is the projected strip height for a wall at distance d.
func WallHeight(view View, d float64) float64 {
	return float64(view.Height) / d * view.WallHeight
}

// Shade dims Y-side walls and falls off linearly with distance, never below 10%.
func Shade(side int, distance, maxDepth float64) float64 {
	sideFactor := 1.0
	if side == sideY {
		sideFactor = 0.7
	}
	return sideFactor * math.Max(0.1, 1-distance/maxDepth)
}

// ShadeColor scales the RGB channels of base uniformly.
func ShadeColor(base color.RGBA, shade float64) color.RGBA {
	shade = math.Max(0, math.Min(1, shade))
	return color.RGBA{
		R: uint8(float64(base.R) * shade),
		G: uint8(float64(base.G) * shade),
		B: uint8(float64(base.B) * shade),
		A: base.A,
	}
}

// DepthBuffer returns the wall distance per column, for sprite occlusion.
func DepthBuffer(columns []Column) []float64 {
	depth := make([]float64, len(columns))
	for i, c := range columns {
		depth[i] = c.Distance
	}
	return depth
}

func clampDistance(d, maxDepth float64) float64 {
	if d < minDistance {
		return minDistance
	}
	if d > maxDepth {
		return maxDepth
	}
	return d
}
