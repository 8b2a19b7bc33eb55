package components

import (
	"github.com/automoto/sandbox/assets/animations"
	"github.com/yohamta/donburi"
)

// ProjectileData drives a sprite that flies horizontally and wraps around.
type ProjectileData struct {
	SpeedX    float64
	RestartX  float64
	FPS       float64
	Lethal    bool
	Touching  bool // overlapping an actor this frame
	Animation *animations.Animation
}

var Projectile = donburi.NewComponentType[ProjectileData]()
