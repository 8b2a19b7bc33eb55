package systems

import (
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/shared/collision"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths starts a fade on actors that just died and advances running fades.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := float32(deltaSeconds())

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Actor.Get(e).Body
		if body.State() != collision.Die {
			return
		}

		if !e.HasComponent(components.Death) {
			e.AddComponent(components.Death)
			components.Death.Set(e, &components.DeathData{
				Fade:  gween.New(1, float32(cfg.Zombie.DeathFadeAlpha), float32(cfg.Zombie.DeathFadeSeconds), ease.OutQuad),
				Alpha: 1,
			})
		}

		death := components.Death.Get(e)
		alpha, _ := death.Fade.Update(dt)
		death.Alpha = float64(alpha)
	})
}

// spriteAlpha is the draw alpha for an entity, 1 unless it is fading out.
func spriteAlpha(e *donburi.Entry) float64 {
	if !e.HasComponent(components.Death) {
		return 1
	}
	return components.Death.Get(e).Alpha
}
