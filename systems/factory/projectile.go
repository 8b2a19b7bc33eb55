package factory

import (
	"github.com/automoto/sandbox/archetypes"
	"github.com/automoto/sandbox/assets/animations"
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns the fireball with its top-left corner at (x, y).
func CreateProjectile(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	w := cfg.Projectile.FrameWidth * cfg.Projectile.Scale
	h := cfg.Projectile.FrameHeight * cfg.Projectile.Scale
	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvProjectile)
	obj.Data = projectile
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(obj)
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})

	components.Projectile.SetValue(projectile, components.ProjectileData{})
	ApplyProjectileConfig(projectile)

	return projectile
}

// ApplyProjectileConfig copies the tunable projectile values from config.
// Position and size are left alone.
func ApplyProjectileConfig(projectile *donburi.Entry) {
	p := components.Projectile.Get(projectile)
	p.SpeedX = cfg.Projectile.SpeedX
	p.RestartX = cfg.Projectile.RestartX
	p.FPS = cfg.Projectile.FPS
	p.Lethal = cfg.Projectile.Lethal
	if p.Animation == nil || p.Animation.Last != cfg.Projectile.Frames-1 {
		p.Animation = animations.NewAnimation(0, max(cfg.Projectile.Frames-1, 0), 1, 0)
	}
}
