package sim

import (
	"image/color"

	"github.com/trvswgnr/gopher-shooter/raycast"
)

// powerups float by this fraction of their size
const bobLift = 0.15

// Pose is the camera the world is viewed from.
func (s *State) Pose() raycast.Pose {
	if s.Player == nil {
		return raycast.Pose{}
	}
	return raycast.Pose{X: s.Player.Position.X, Y: s.Player.Position.Y, Angle: s.Player.Angle}
}

// Sprites lists every billboard in world space, unsorted.
func (s *State) Sprites() []raycast.Sprite {
	out := make([]raycast.Sprite, 0, len(s.Enemies)+len(s.PowerUps)+len(s.Bullets)+len(s.Explosions)+len(s.Particles))

	for _, e := range s.Enemies {
		out = append(out, raycast.Sprite{
			Kind:   raycast.KindEnemy,
			X:      e.Position.X,
			Y:      e.Position.Y,
			Tint:   e.MapColor,
			Health: e.HealthFraction(),
		})
	}
	for _, pu := range s.PowerUps {
		out = append(out, raycast.Sprite{
			Kind: raycast.KindPowerUp,
			X:    pu.Position.X,
			Y:    pu.Position.Y,
			Lift: pu.Bob() * bobLift,
			Tint: pu.MapColor,
		})
	}
	for _, b := range s.Bullets {
		out = append(out, raycast.Sprite{
			Kind: raycast.KindBullet,
			X:    b.Position.X,
			Y:    b.Position.Y,
			Tint: b.MapColor,
		})
	}
	for _, e := range s.Explosions {
		out = append(out, raycast.Sprite{
			Kind:  raycast.KindExplosion,
			X:     e.Position.X,
			Y:     e.Position.Y,
			Frame: e.Frame,
			Tint:  e.MapColor,
		})
	}
	for _, p := range s.Particles {
		c := p.MapColor
		a := p.Fade()
		// premultiplied, so every channel fades with alpha
		out = append(out, raycast.Sprite{
			Kind: raycast.KindParticle,
			X:    p.Position.X,
			Y:    p.Position.Y,
			Tint: color.RGBA{
				R: uint8(float64(c.R) * a),
				G: uint8(float64(c.G) * a),
				B: uint8(float64(c.B) * a),
				A: uint8(float64(c.A) * a),
			},
		})
	}

	return out
}
