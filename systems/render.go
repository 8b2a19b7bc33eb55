package systems

import (
	"image/color"
	"math"

	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/automoto/sandbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

func getCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// DrawLevel draws the pre-rendered tile layers through the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || level.Background == nil {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-camera.Position.X, -camera.Position.Y)
	drawOp.GeoM.Scale(camera.Zoom, camera.Zoom)
	drawOp.GeoM.Translate(camera.Origin.X, camera.Origin.Y)
	screen.DrawImage(level.Background, drawOp)
}

// DrawActors draws each zombie as a box tinted by its state. The head bobs
// with the animation frame and the eye marks the facing direction.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}

	tags.Zombie.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Actor.Get(e).Body
		box := body.Bounds()
		alpha := spriteAlpha(e)

		bob := 0.0
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil && body.State() != cfg.Die {
			bob = float64(anim.CurrentAnimation.Frame()%2) * 2
		}

		x, y := camera.WorldToScreen(box.X, box.Y)
		w, h := box.W*camera.Zoom, box.H*camera.Zoom
		if body.State() == cfg.Die {
			// Lie down where the body died.
			x, y = camera.WorldToScreen(box.X-box.H/2+box.W/2, box.Bottom()-box.W)
			w, h = h, w
		}

		tint := stateColor(body.State(), alpha)
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), tint, false)

		if body.State() == cfg.Die {
			return
		}
		head := h * 0.3
		vector.FillRect(screen, float32(x), float32(y-bob*camera.Zoom), float32(w), float32(head), shade(tint, 0.8), false)

		eye := math.Max(2, 4*camera.Zoom)
		eyeX := x + w*0.25 - eye/2
		if body.Facing() > 0 {
			eyeX = x + w*0.75 - eye/2
		}
		vector.FillRect(screen, float32(eyeX), float32(y+head*0.4-bob*camera.Zoom), float32(eye), float32(eye), color.NRGBA{230, 30, 30, uint8(255 * alpha)}, false)

		if body.State() == cfg.Attack {
			reach := w * 0.6
			armX := x + w
			if body.Facing() < 0 {
				armX = x - reach
			}
			vector.FillRect(screen, float32(armX), float32(y+h*0.4), float32(reach), float32(h*0.1), tint, false)
		}
	})
}

// DrawProjectiles draws each projectile as a flame that flickers with its
// animation frame.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		frame := 0
		if p.Animation != nil {
			frame = p.Animation.Frame()
		}

		cx, cy := camera.WorldToScreen(obj.X+obj.H/2, obj.Y+obj.H/2)
		r := obj.H / 2 * camera.Zoom
		flicker := 1 + 0.08*math.Sin(float64(frame))

		// Tail trails behind the head in the direction of travel.
		tail := 1.0
		if p.SpeedX > 0 {
			tail = -1
			cx, _ = camera.WorldToScreen(obj.X+obj.W-obj.H/2, 0)
		}
		length := (obj.W - obj.H) * camera.Zoom
		for i := 4; i >= 1; i-- {
			t := float64(i) / 4
			c := color.NRGBA{255, uint8(80 + 120*(1-t)), 20, uint8(200 * (1 - t*0.6))}
			vector.FillCircle(screen, float32(cx+tail*length*t), float32(cy), float32(r*(1-t*0.6)*flicker), c, true)
		}
		vector.FillCircle(screen, float32(cx), float32(cy), float32(r*flicker), color.NRGBA{255, 170, 40, 255}, true)
		vector.FillCircle(screen, float32(cx), float32(cy), float32(r*0.55*flicker), color.NRGBA{255, 240, 180, 255}, true)
	})
}

func stateColor(state cfg.StateID, alpha float64) color.NRGBA {
	c, ok := cfg.StateColors[state]
	if !ok {
		c = [4]uint8{255, 0, 255, 255}
	}
	return color.NRGBA{c[0], c[1], c[2], uint8(float64(c[3]) * alpha)}
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}
