package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData fades a dead actor's sprite.
type DeathData struct {
	Fade  *gween.Tween
	Alpha float64
}

var Death = donburi.NewComponentType[DeathData]()
