package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/sandbox/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// Level is a loaded TMX level: its collision data plus the pre-rendered tile
// layers.
type Level struct {
	Collision  *leveldata.CollisionData
	Background *ebiten.Image
	Name       string
	Width      int
	Height     int
}

// LevelNames lists the embedded levels in sorted order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, levelsDir, "")
	return names, err
}

// LoadLevel parses the named embedded level and renders its visible tile
// layers. layer names the collision layer.
func LoadLevel(name, layer string) (*Level, error) {
	return loadLevel(assetFS, path.Join(levelsDir, name+".tmx"), layer)
}

func loadLevel(fsys fs.FS, tmxPath, layer string) (*Level, error) {
	data, err := leveldata.LoadCollisionData(fsys, tmxPath, layer)
	if err != nil {
		return nil, err
	}

	background, err := renderBackground(fsys, tmxPath)
	if err != nil {
		return nil, err
	}

	return &Level{
		Collision:  data,
		Background: background,
		Name:       data.Name,
		Width:      data.Width(),
		Height:     data.Height(),
	}, nil
}

func renderBackground(fsys fs.FS, tmxPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	// Create a renderer that uses the same filesystem as the level
	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", tmxPath, err)
	}
	if err := renderer.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmxPath, err)
	}

	return ebiten.NewImageFromImage(renderer.Result), nil
}
