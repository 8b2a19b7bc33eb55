package systems

import (
	"log"

	"github.com/automoto/sandbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps the collision world once per tick.
func UpdatePhysics(ecs *ecs.ECS) {
	entry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return
	}
	world := components.PhysicsWorld.Get(entry).World
	if err := world.Update(deltaSeconds()); err != nil {
		log.Printf("Physics step: %v", err)
	}
}

// UpdateObjects syncs each actor's resolv object to its body's bounds.
func UpdateObjects(ecs *ecs.ECS) {
	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		box := components.Actor.Get(e).Body.Bounds()
		obj := components.Object.Get(e)
		obj.X, obj.Y = box.X, box.Y
		obj.Update()
	})
}
