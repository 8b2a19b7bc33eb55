// Package leveldata parses Tiled TMX levels into plain collision data. It has
// no dependency on ebiten or donburi, so the headless collision core can use it.
package leveldata

import (
	"fmt"

	"github.com/automoto/sandbox/shared/collision"
)

// CollisionData holds the collision layer of a TMX level.
type CollisionData struct {
	Name       string
	TileWidth  int
	TileHeight int

	// Tiles holds global tile IDs as Tiles[row][col]; 0 is empty.
	Tiles [][]int

	// Collidable lists the tile IDs flagged "collides" in their tileset. When
	// empty, every non-empty tile is solid.
	Collidable []int

	SpawnPoints []SpawnPoint
}

// SpawnPoint is a named point from the Spawn object group.
type SpawnPoint struct {
	Name string
	X, Y float64
}

// Spawn returns the first spawn point with the given name.
func (d *CollisionData) Spawn(name string) (SpawnPoint, bool) {
	for _, sp := range d.SpawnPoints {
		if sp.Name == name {
			return sp, true
		}
	}
	return SpawnPoint{}, false
}

// Width is the level width in pixels.
func (d *CollisionData) Width() int {
	if len(d.Tiles) == 0 {
		return 0
	}
	return len(d.Tiles[0]) * d.TileWidth
}

// Height is the level height in pixels.
func (d *CollisionData) Height() int {
	return len(d.Tiles) * d.TileHeight
}

// Grid builds the static collision grid for the level.
func (d *CollisionData) Grid() (*collision.Grid, error) {
	var solid func(int) bool
	if len(d.Collidable) > 0 {
		solid = collision.SolidSet(d.Collidable...)
	}
	g, err := collision.NewGrid(d.Tiles, float64(d.TileWidth), float64(d.TileHeight), solid)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", d.Name, err)
	}
	return g, nil
}
