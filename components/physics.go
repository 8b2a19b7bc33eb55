package components

import (
	"github.com/automoto/sandbox/shared/collision"
	"github.com/yohamta/donburi"
)

// PhysicsWorldData wraps the collision world stepped by systems.UpdatePhysics.
type PhysicsWorldData struct {
	World *collision.World
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()

// ActorData links an entity to its body in the collision world.
type ActorData struct {
	Body *collision.Body
}

var Actor = donburi.NewComponentType[ActorData]()
