package systems

import (
	"github.com/automoto/sandbox/archetypes"
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	cfg.ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	cfg.ActionJump:      {ebiten.KeyArrowUp, ebiten.KeyW},
	cfg.ActionAttack:    {ebiten.KeySpace},
	cfg.ActionDie:       {ebiten.KeyEnter},
	cfg.ActionZoomIn:    {ebiten.KeyR},
	cfg.ActionZoomOut:   {ebiten.KeyF},
	cfg.ActionDebug:     {ebiten.KeyF1},
}

// UpdateInput polls the keyboard into the Input component.
// Must run BEFORE UpdateActors in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	entry := archetypes.Input.Spawn(ecs)
	components.Input.Set(entry, &components.InputData{})
	return components.Input.Get(entry)
}

func getInput(ecs *ecs.ECS) (*components.InputData, bool) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Input.Get(entry), true
}
