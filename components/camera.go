package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is a 2D camera looking at Position, scaled by Zoom around the
// screen-space Origin.
type CameraData struct {
	Position math.Vec2
	Origin   math.Vec2
	Zoom     float64
}

// WorldToScreen converts a world position to screen coordinates.
func (c *CameraData) WorldToScreen(x, y float64) (float64, float64) {
	return (x-c.Position.X)*c.Zoom + c.Origin.X, (y-c.Position.Y)*c.Zoom + c.Origin.Y
}

var Camera = donburi.NewComponentType[CameraData]()
