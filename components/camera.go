package components

import (
	"github.com/automoto/plunger/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // center of the view
	Width    float64
	Height   float64
}

// Viewport returns the world-space rectangle the camera shows.
func (c *CameraData) Viewport() gamemath.Rect {
	return gamemath.Rect{
		X: c.Position.X - c.Width/2,
		Y: c.Position.Y - c.Height/2,
		W: c.Width,
		H: c.Height,
	}
}

// ToWorld converts a screen position to world space.
func (c *CameraData) ToWorld(sx, sy float64) (float64, float64) {
	v := c.Viewport()
	return v.X + sx, v.Y + sy
}

var Camera = donburi.NewComponentType[CameraData]()
