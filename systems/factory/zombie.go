package factory

import (
	"fmt"

	"github.com/automoto/sandbox/archetypes"
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/shared/collision"
	"github.com/automoto/sandbox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateZombie spawns the playable body centered at (x, y), registers it with
// the physics world and mirrors it into the overlap space.
func CreateZombie(ecs *ecs.ECS, world *collision.World, space *resolv.Space, x, y float64) (*donburi.Entry, error) {
	body, err := collision.NewBody(
		dmath.Vec2{X: x, Y: y},
		dmath.Vec2{X: cfg.Zombie.HalfWidth, Y: cfg.Zombie.HalfHeight},
		collision.BodyConfig{
			MaxWalkSpeed:   cfg.Zombie.MaxWalkSpeed,
			JumpImpulse:    cfg.Zombie.JumpImpulse,
			AttackDuration: cfg.Zombie.AttackDuration,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create zombie body: %w", err)
	}
	if err := world.AddBody(body); err != nil {
		return nil, fmt.Errorf("add zombie body: %w", err)
	}

	animData, err := GenerateAnimations("zombie")
	if err != nil {
		world.RemoveBody(body)
		return nil, err
	}

	zombie := archetypes.Zombie.Spawn(ecs)
	components.Actor.SetValue(zombie, components.ActorData{Body: body})

	box := body.Bounds()
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H)
	obj.AddTags("character", tags.ResolvZombie)
	obj.Data = zombie
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	space.Add(obj)
	components.Object.SetValue(zombie, components.ObjectData{Object: obj})

	components.Animation.Set(zombie, animData)

	return zombie, nil
}
