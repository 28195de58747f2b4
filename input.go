// input.go
package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-shooter/config"
	"github.com/trvswgnr/gopher-shooter/sim"
)

// a touch that travels less than this many pixels on the look side is a tap
const tapSlop = 10

// touchTrack follows one finger from the frame it lands.
type touchTrack struct {
	id             ebiten.TouchID
	active         bool
	startX, startY int
	lastX          int
	moved          bool
}

// controls turns keyboard, mouse and touch state into a sim.Intent each tick.
type controls struct {
	mouseSensitivity float64
	touchSensitivity float64
	joystickRadius   float64
	// screenWidth is the logical width touches are reported in
	screenWidth int

	mouseX, mouseY int

	stick    touchTrack
	look     touchTrack
	touchIDs []ebiten.TouchID
}

func newControls(cfg config.InputConfig) *controls {
	c := &controls{
		mouseSensitivity: cfg.MouseSensitivity,
		touchSensitivity: cfg.TouchSensitivity,
		joystickRadius:   cfg.JoystickRadius,
	}
	c.Reset()
	return c
}

// Reset forgets the mouse anchor and any tracked touches.
func (c *controls) Reset() {
	c.mouseX, c.mouseY = math.MinInt32, math.MinInt32
	c.stick = touchTrack{}
	c.look = touchTrack{}
}

func (c *controls) Read() sim.Intent {
	var in sim.Intent

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Turn--
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		in.Fire = true
	}

	in.Look += c.readMouse()
	c.readTouches(&in)
	return in
}

func (c *controls) readMouse() float64 {
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		return 0
	}

	x, y := ebiten.CursorPosition()
	if c.mouseX == math.MinInt32 && c.mouseY == math.MinInt32 {
		// initialize first position to establish delta
		if x != 0 && y != 0 {
			c.mouseX, c.mouseY = x, y
		}
		return 0
	}

	dx := x - c.mouseX
	c.mouseX, c.mouseY = x, y
	return float64(dx) * c.mouseSensitivity
}

// readTouches runs the virtual joystick on the left half of the screen and
// drag-to-look on the right half. A short tap on the right half fires.
func (c *controls) readTouches(in *sim.Intent) {
	half := c.screenWidth / 2
	c.touchIDs = inpututil.AppendJustPressedTouchIDs(c.touchIDs[:0])
	for _, id := range c.touchIDs {
		x, y := ebiten.TouchPosition(id)
		t := touchTrack{id: id, active: true, startX: x, startY: y, lastX: x}
		if x < half {
			if !c.stick.active {
				c.stick = t
			}
		} else if !c.look.active {
			c.look = t
		}
	}

	if c.stick.active {
		if inpututil.IsTouchJustReleased(c.stick.id) {
			c.stick.active = false
		} else {
			x, y := ebiten.TouchPosition(c.stick.id)
			in.Joystick = stickOffset(float64(x-c.stick.startX), float64(y-c.stick.startY), c.joystickRadius)
		}
	}

	if c.look.active {
		if inpututil.IsTouchJustReleased(c.look.id) {
			if !c.look.moved {
				in.Fire = true
			}
			c.look.active = false
			return
		}
		x, y := ebiten.TouchPosition(c.look.id)
		in.Look += float64(x-c.look.lastX) * c.touchSensitivity
		c.look.lastX = x
		if abs(x-c.look.startX) > tapSlop || abs(y-c.look.startY) > tapSlop {
			c.look.moved = true
		}
	}
}

// stickOffset clamps a drag to the joystick radius and normalizes it to [-1, 1].
func stickOffset(dx, dy, radius float64) geom.Vector2 {
	if radius <= 0 {
		return geom.Vector2{}
	}
	if d := math.Hypot(dx, dy); d > radius {
		dx, dy = dx/d*radius, dy/d*radius
	}
	return geom.Vector2{X: dx / radius, Y: dy / radius}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
