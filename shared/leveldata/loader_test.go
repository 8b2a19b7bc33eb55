package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/sandbox/shared/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollisionDataFlaggedTiles(t *testing.T) {
	data, err := LoadCollisionData(os.DirFS("testdata"), "flagged.tmx", "Tile Layer 1")
	require.NoError(t, err)

	assert.Equal(t, "flagged", data.Name)
	assert.Equal(t, 16, data.TileWidth)
	assert.Equal(t, 128, data.Width())
	assert.Equal(t, 96, data.Height())
	assert.Equal(t, []int{1, 2}, data.Collidable)
	assert.Equal(t, []int{0, 0, 0, 3, 0, 0, 0, 0}, data.Tiles[4])

	zombie, ok := data.Spawn("zombie")
	require.True(t, ok)
	assert.Equal(t, SpawnPoint{Name: "zombie", X: 24, Y: 40}, zombie)
	_, ok = data.Spawn("fireball")
	assert.False(t, ok)

	g, err := data.Grid()
	require.NoError(t, err)
	assert.True(t, g.IsSolid(0, 5))
	assert.True(t, g.IsSolid(6, 3))
	assert.False(t, g.IsSolid(3, 4), "decoration tile is not flagged")
}

func TestLoadCollisionDataUnflaggedTilesetIsAllSolid(t *testing.T) {
	data, err := LoadCollisionData(os.DirFS("testdata"), "unflagged.tmx", "")
	require.NoError(t, err)
	assert.Empty(t, data.Collidable)
	assert.Empty(t, data.SpawnPoints)

	g, err := data.Grid()
	require.NoError(t, err)
	assert.True(t, g.IsSolid(0, 1))
	assert.True(t, g.IsSolid(3, 2))
	assert.False(t, g.IsSolid(1, 1))
}

func TestLoadCollisionDataErrors(t *testing.T) {
	_, err := LoadCollisionData(os.DirFS("testdata"), "missing.tmx", "")
	require.Error(t, err)

	_, err = LoadCollisionData(os.DirFS("testdata"), "unflagged.tmx", "Tile Layer 1")
	require.ErrorContains(t, err, `no tile layer "Tile Layer 1"`)
}

func TestCollisionDataGridRejectsEmptyLevel(t *testing.T) {
	data := &CollisionData{Name: "empty", TileWidth: 16, TileHeight: 16}
	_, err := data.Grid()
	require.ErrorIs(t, err, collision.ErrConfiguration)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("."), "testdata", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"flagged", "unflagged"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(os.DirFS("."), "nowhere", "")
	require.Error(t, err)
}
