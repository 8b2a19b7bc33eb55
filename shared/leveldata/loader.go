package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	spawnGroup       = "Spawn"
	collidesProperty = "collides"
)

// LoadCollisionData parses a TMX file and returns the tile layer named
// layerName (or the first tile layer when layerName is empty), the collidable
// tile IDs and the spawn points. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath, layerName string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layer := findLayer(levelMap, layerName)
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: no tile layer %q", tmxPath, layerName)
	}

	data := &CollisionData{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Tiles:      make([][]int, levelMap.Height),
	}

	for y := 0; y < levelMap.Height; y++ {
		row := make([]int, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			row[x] = int(tile.Tileset.FirstGID + tile.ID)
		}
		data.Tiles[y] = row
	}

	// Tiles flagged in their tileset decide what is solid
	for _, ts := range levelMap.Tilesets {
		for _, t := range ts.Tiles {
			if t.Properties.GetString(collidesProperty) == "true" {
				data.Collidable = append(data.Collidable, int(ts.FirstGID+t.ID))
			}
		}
	}
	sort.Ints(data.Collidable)

	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				Name: o.Name,
				X:    o.X,
				Y:    o.Y,
			})
		}
	}

	return data, nil
}

func findLayer(m *tiled.Map, name string) *tiled.Layer {
	for _, layer := range m.Layers {
		if name == "" || layer.Name == name {
			return layer
		}
	}
	return nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir, layerName string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path, layerName)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
