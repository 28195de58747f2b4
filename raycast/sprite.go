package raycast

import (
	"image/color"
	"math"
	"sort"
)

type SpriteKind int

const (
	KindEnemy SpriteKind = iota
	KindPowerUp
	KindBullet
	KindExplosion
	KindParticle
)

// kindScale shrinks small things relative to the billboard size.
var kindScale = map[SpriteKind]float64{
	KindEnemy:     1.0,
	KindPowerUp:   0.5,
	KindBullet:    0.25,
	KindExplosion: 1.0,
	KindParticle:  0.12,
}

func KindScale(k SpriteKind) float64 {
	if s, ok := kindScale[k]; ok {
		return s
	}
	return 1.0
}

// Sprite is a world-space billboard. Lift is a cosmetic vertical screen offset
// as a fraction of the sprite size.
type Sprite struct {
	Kind  SpriteKind
	X, Y  float64
	Lift  float64
	Frame int
	Tint  color.RGBA
	// Health in [0,1] for enemies, used by the renderer for health bars
	Health float64
}

type Projection struct {
	Sprite
	// Distance is euclidean and orders painting; Depth is along the view
	// direction, the same metric as the wall depth buffer
	Distance   float64
	Depth      float64
	AngleDiff  float64
	ScreenX    float64
	Size       float64
	Brightness float64
}

type SpriteOptions struct {
	Scale           float64
	BrightnessFloor float64
	// NearDistance clamps the projection distance so co-located sprites stay finite
	NearDistance float64
}

func DefaultSpriteOptions() SpriteOptions {
	return SpriteOptions{Scale: 64, BrightnessFloor: 0.3, NearDistance: 1}
}

// NormalizeAngle maps a into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Project places a single sprite on screen. It returns false when the sprite is outside the field of view.
func Project(pose Pose, s Sprite, view View, opts SpriteOptions) (Projection, bool) {
	dx, dy := s.X-pose.X, s.Y-pose.Y
	dist := math.Hypot(dx, dy)

	// on top of the viewer: straight ahead at the near distance
	diff := 0.0
	if dist > 1e-9 {
		diff = NormalizeAngle(math.Atan2(dy, dx) - pose.Angle)
	}

	halfFov := view.HalfFov()
	if math.Abs(diff) > halfFov {
		return Projection{}, false
	}

	near := opts.NearDistance
	if near <= 0 {
		near = minDistance
	}
	projDist := math.Max(dist, near)
	depth := math.Max(projDist*math.Cos(diff), near)

	halfWidth := float64(view.Width) / 2
	return Projection{
		Sprite:     s,
		Distance:   projDist,
		Depth:      depth,
		AngleDiff:  diff,
		ScreenX:    diff/halfFov*halfWidth + halfWidth,
		Size:       float64(view.Height) / depth * opts.Scale * KindScale(s.Kind),
		Brightness: math.Max(opts.BrightnessFloor, 1-projDist/view.MaxDepth),
	}, true
}

// ProjectSprites projects every visible sprite and orders them far to near for painting.
func ProjectSprites(pose Pose, sprites []Sprite, view View, opts SpriteOptions) []Projection {
	visible := make([]Projection, 0, len(sprites))
	for _, s := range sprites {
		if p, ok := Project(pose, s, view, opts); ok {
			visible = append(visible, p)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Distance > visible[j].Distance
	})

	return visible
}
