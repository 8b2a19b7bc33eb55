package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysPresentFields(t *testing.T) {
	t.Cleanup(Reset)
	path := writeFile(t, t.TempDir(), `
physics:
  gravityY: 1200
projectile:
  lethal: true
  speedX: -250
camera:
  zoom: 1.5
level:
  name: level02
`)

	require.NoError(t, Load(path))

	assert.Equal(t, 1200.0, Physics.GravityY)
	assert.Equal(t, 0.0, Physics.GravityX, "absent fields keep their default")
	assert.True(t, Projectile.Lethal)
	assert.Equal(t, -250.0, Projectile.SpeedX)
	assert.Equal(t, 1900.0, Projectile.RestartX)
	assert.Equal(t, 1.5, Camera.Zoom)
	assert.Equal(t, 2.0, Camera.MaxZoom)
	assert.Equal(t, "level02", Level.Name)
	assert.Equal(t, "Tile Layer 1", Level.Layer)
	assert.Equal(t, 800, C.Width)
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad_yaml", "physics: ["},
		{"zero_window", "window:\n  width: 0\n"},
		{"inverted_zoom", "camera:\n  minZoom: 2\n  maxZoom: 1\n"},
		{"flat_zombie", "zombie:\n  halfHeight: 0\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Cleanup(Reset)
			path := writeFile(t, t.TempDir(), c.body)

			require.Error(t, Load(path))
			assert.Equal(t, 800, C.Width, "globals untouched on error")
			assert.Equal(t, 0.5, Camera.MinZoom)
			assert.Equal(t, 48.0, Zombie.HalfHeight)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
