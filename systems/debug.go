package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/sandbox/components"
	"github.com/automoto/sandbox/fonts"
	"github.com/automoto/sandbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines solid cells, body boxes and overlap objects when the
// debug overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}

	if entry, ok := components.PhysicsWorld.First(ecs.World); ok {
		grid := components.PhysicsWorld.Get(entry).World.Grid()

		// Only the cells inside the viewport
		width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
		viewX := camera.Position.X - camera.Origin.X/camera.Zoom
		viewY := camera.Position.Y - camera.Origin.Y/camera.Zoom
		col0 := int(viewX / grid.CellWidth())
		row0 := int(viewY / grid.CellHeight())
		col1 := int((viewX + width/camera.Zoom) / grid.CellWidth())
		row1 := int((viewY + height/camera.Zoom) / grid.CellHeight())

		for row := max(row0, 0); row <= min(row1, grid.Rows()-1); row++ {
			for col := max(col0, 0); col <= min(col1, grid.Cols()-1); col++ {
				if !grid.IsSolid(col, row) {
					continue
				}
				cell := grid.CellBounds(col, row)
				strokeBox(screen, camera, cell.X, cell.Y, cell.W, cell.H, color.RGBA{100, 100, 100, 255})
			}
		}
	}

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Actor.Get(e).Body
		box := body.Bounds()
		strokeBox(screen, camera, box.X, box.Y, box.W, box.H, color.RGBA{0, 0, 255, 255})

		x, y := camera.WorldToScreen(box.X, box.Y)
		label := fmt.Sprintf("%s grounded=%t", body.State(), body.Grounded())
		text.Draw(screen, label, fonts.Debug.Get(), int(x), int(y)-4, color.White)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		c := color.RGBA{0, 255, 0, 255}
		if components.Projectile.Get(e).Touching {
			c = color.RGBA{255, 0, 0, 255}
		}
		strokeBox(screen, camera, obj.X, obj.Y, obj.W, obj.H, c)
	})
}

func strokeBox(screen *ebiten.Image, camera *components.CameraData, wx, wy, ww, wh float64, c color.Color) {
	x, y := camera.WorldToScreen(wx, wy)
	w, h := ww*camera.Zoom, wh*camera.Zoom
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
