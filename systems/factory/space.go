package factory

import (
	"github.com/automoto/sandbox/archetypes"
	"github.com/automoto/sandbox/assets"
	"github.com/automoto/sandbox/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the overlap space for actors and projectiles. It covers
// the level with one resolv cell per tile. Terrain is not added to it; tile
// collision belongs to the physics world.
func CreateSpace(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	components.Space.Set(entry, resolv.NewSpace(
		level.Width,
		level.Height,
		level.Collision.TileWidth,
		level.Collision.TileHeight,
	))
	return entry
}
