package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/sandbox/archetypes"
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/shared/collision"
	"github.com/automoto/sandbox/systems"
	"github.com/automoto/sandbox/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SandboxScene owns the ECS, the collision world and the overlap space for
// one level. All of it is built up front by NewSandboxScene.
type SandboxScene struct {
	ecs        *ecs.ECS
	world      *collision.World
	camera     *donburi.Entry
	projectile *donburi.Entry

	configPath string
	watcher    *cfg.Watcher
}

// SceneOptions selects the level and, optionally, a config file to watch.
type SceneOptions struct {
	Level      string
	Layer      string
	ConfigPath string
	Watch      bool
}

func NewSandboxScene(opts SceneOptions) (*SandboxScene, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateActors)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawLevel)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawActors)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawProjectiles)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawHUD)

	s := &SandboxScene{ecs: ecs, configPath: opts.ConfigPath}

	// Level first: everything else is sized from it.
	levelEntry, err := factory.CreateLevel(ecs, opts.Level, opts.Layer)
	if err != nil {
		return nil, err
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	physicsEntry, err := factory.CreatePhysicsWorld(ecs, level,
		dmath.Vec2{X: cfg.Physics.GravityX, Y: cfg.Physics.GravityY},
		cfg.Physics.MaxFallSpeed,
	)
	if err != nil {
		return nil, err
	}
	s.world = components.PhysicsWorld.Get(physicsEntry).World

	spaceEntry := factory.CreateSpace(ecs, level)
	space := components.Space.Get(spaceEntry)

	s.camera = factory.CreateCamera(ecs)

	x, y := cfg.Zombie.SpawnX, cfg.Zombie.SpawnY
	if spawn, ok := level.Collision.Spawn("zombie"); ok {
		x, y = spawn.X, spawn.Y
	}
	if _, err := factory.CreateZombie(ecs, s.world, space, x, y); err != nil {
		return nil, err
	}

	x, y = cfg.Projectile.StartX, cfg.Projectile.StartY
	if spawn, ok := level.Collision.Spawn("fireball"); ok {
		x, y = spawn.X, spawn.Y
	}
	s.projectile = factory.CreateProjectile(ecs, space, x, y)

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ecs, saved)
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := cfg.NewWatcher(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("watch config %s: %w", opts.ConfigPath, err)
		}
		s.watcher = w
	}

	log.Printf("Loaded level %s (%dx%d), zombie at (%.0f, %.0f)", level.Name, level.Width, level.Height, x, y)
	return s, nil
}

func (s *SandboxScene) Update() {
	s.reloadConfig()
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
}

// Close saves settings, stops the config watcher and releases the bodies.
func (s *SandboxScene) Close() error {
	systems.SaveCurrentSettings(s.ecs)
	s.world.Clear()
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// reloadConfig drains pending config edits on the game thread. Physics values
// are fixed for the world's lifetime, so only the camera and projectile pick
// up changes.
func (s *SandboxScene) reloadConfig() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path := <-s.watcher.Events:
			if err := cfg.Load(path); err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			factory.ApplyCameraConfig(s.camera)
			factory.ApplyProjectileConfig(s.projectile)
			log.Printf("Reloaded config from %s", path)
		case err := <-s.watcher.Errors:
			log.Printf("Config watcher: %v", err)
		default:
			return
		}
	}
}
