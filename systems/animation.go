package systems

import (
	"github.com/automoto/sandbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations picks each actor's animation from its body state and
// advances it one tick.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if e.HasComponent(components.Actor) {
			anim.SetAnimation(components.Actor.Get(e).Body.State())
		}
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
