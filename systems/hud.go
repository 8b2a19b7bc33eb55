package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the FPS and zoom readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	zoom := 0.0
	if camera, ok := getCamera(ecs); ok {
		zoom = camera.Zoom
	}

	c := cfg.UI.HUDColor
	face := fonts.HUD.Get()
	line := face.Metrics().Height.Ceil()
	readout := fmt.Sprintf("FPS: %.1f\nZoom: %.2f", ebiten.ActualFPS(), zoom)
	text.Draw(screen, readout, face, cfg.UI.HUDTextX, cfg.UI.HUDTextY+line, color.RGBA{c[0], c[1], c[2], c[3]})
}
