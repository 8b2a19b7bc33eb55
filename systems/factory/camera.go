package factory

import (
	"github.com/automoto/sandbox/archetypes"
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: cfg.Camera.StartX, Y: cfg.Camera.StartY},
		Zoom:     cfg.Camera.Zoom,
	})
	ApplyCameraConfig(camera)
	return camera
}

// ApplyCameraConfig re-reads the screen origin from config. Zoom and position
// are runtime state and are kept.
func ApplyCameraConfig(camera *donburi.Entry) {
	c := components.Camera.Get(camera)
	c.Origin = math.Vec2{X: cfg.Camera.OriginX, Y: cfg.Camera.OriginY}
}
