package systems

import (
	"log"

	"github.com/automoto/sandbox/components"
	"github.com/automoto/sandbox/shared/gamemath"
	"github.com/automoto/sandbox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles flies each projectile, wraps it once it has left the level
// on the left, and checks it against zombies in the overlap space.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := deltaSeconds()

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		obj.X = gamemath.WrapX(obj.X+p.SpeedX*dt, obj.W, p.RestartX)
		obj.Update()

		if p.Animation != nil {
			p.Animation.Advance(dt, p.FPS)
		}

		touching := false
		if check := obj.Check(0, 0, tags.ResolvZombie); check != nil {
			for _, other := range check.ObjectsByTags(tags.ResolvZombie) {
				if !objectsOverlap(obj.Object, other) {
					continue
				}
				touching = true
				if !p.Touching {
					log.Printf("Projectile touched zombie at (%.0f, %.0f)", other.X, other.Y)
				}
				if p.Lethal {
					killActor(other)
				}
			}
		}
		p.Touching = touching
	})
}

func killActor(obj *resolv.Object) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() || !entry.HasComponent(components.Actor) {
		return
	}
	components.Actor.Get(entry).Body.Die()
}

// objectsOverlap narrows resolv's cell-level check to the boxes themselves.
func objectsOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
