package systems

import (
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActors turns input into body commands and advances the body's timers.
// Runs before UpdatePhysics so commands take effect on this frame's step.
func UpdateActors(ecs *ecs.ECS) {
	input, ok := getInput(ecs)
	if !ok {
		return
	}
	dt := deltaSeconds()

	tags.Zombie.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Actor.Get(e).Body

		dir := 0.0
		if input.Action(cfg.ActionMoveLeft).Pressed {
			dir--
		}
		if input.Action(cfg.ActionMoveRight).Pressed {
			dir++
		}
		body.Walk(dir)

		// Held keys repeat: Jump waits for the ground and Attack for the
		// previous attack to end.
		if input.Action(cfg.ActionAttack).Pressed {
			body.Attack()
		}
		if input.Action(cfg.ActionJump).Pressed {
			body.Jump()
		}
		if input.Action(cfg.ActionDie).Pressed {
			body.Die()
		}

		body.Update(dt)
	})
}
