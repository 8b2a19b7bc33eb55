package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/sandbox/assets"
	"github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/fonts"
	"github.com/automoto/sandbox/scenes"
	"github.com/automoto/sandbox/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	level := flag.String("level", "", "level to load (defaults to the configured level)")
	watch := flag.Bool("watch", false, "reload -config when it changes")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *level != "" {
		config.Level.Name = *level
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence; saved settings are applied by the scene
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	scene, err := scenes.NewSandboxScene(scenes.SceneOptions{
		Level:      config.Level.Name,
		Layer:      config.Level.Layer,
		ConfigPath: *configPath,
		Watch:      *watch,
	})
	if err != nil {
		if names, lerr := assets.LevelNames(); lerr == nil {
			log.Printf("Available levels: %v", names)
		}
		log.Fatalf("Failed to create scene: %v", err)
	}
	defer func() {
		if err := scene.Close(); err != nil {
			log.Printf("Closing scene: %v", err)
		}
	}()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Printf("Game exited: %v", err)
	}
}
