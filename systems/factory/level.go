package factory

import (
	"fmt"

	"github.com/automoto/sandbox/archetypes"
	"github.com/automoto/sandbox/assets"
	"github.com/automoto/sandbox/components"
	"github.com/automoto/sandbox/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateLevel loads the named level and spawns its entity.
func CreateLevel(ecs *ecs.ECS, name, layer string) (*donburi.Entry, error) {
	loaded, err := assets.LoadLevel(name, layer)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: loaded,
	})
	return level, nil
}

// CreatePhysicsWorld builds the collision world over the level's tiles.
func CreatePhysicsWorld(ecs *ecs.ECS, level *assets.Level, gravity dmath.Vec2, maxFallSpeed float64) (*donburi.Entry, error) {
	grid, err := level.Collision.Grid()
	if err != nil {
		return nil, fmt.Errorf("build grid for %s: %w", level.Name, err)
	}
	world, err := collision.NewWorld(grid, collision.WorldConfig{
		Gravity:      gravity,
		MaxFallSpeed: maxFallSpeed,
	})
	if err != nil {
		return nil, err
	}

	entry := archetypes.PhysicsWorld.Spawn(ecs)
	components.PhysicsWorld.Set(entry, &components.PhysicsWorldData{World: world})
	return entry, nil
}
