package systems

import (
	"github.com/automoto/sandbox/components"
	"github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/shared/gamemath"
	"github.com/automoto/sandbox/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies zoom input and keeps the camera on the zombie.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if input, ok := getInput(e); ok {
		step := config.Camera.ZoomRate * deltaSeconds()
		if input.Action(config.ActionZoomIn).Pressed {
			camera.Zoom += step
		}
		if input.Action(config.ActionZoomOut).Pressed {
			camera.Zoom -= step
		}
	}
	camera.Zoom = gamemath.Clamp(camera.Zoom, config.Camera.MinZoom, config.Camera.MaxZoom)

	zombieEntry, ok := tags.Zombie.First(e.World)
	if !ok {
		return
	}
	camera.Position = components.Actor.Get(zombieEntry).Body.Position()
}
