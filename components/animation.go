package components

import (
	"github.com/automoto/sandbox/assets/animations"
	"github.com/automoto/sandbox/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}
	if a.CurrentAnimation != anim {
		a.CurrentAnimation = anim
		a.CurrentSheet = state
		a.CurrentAnimation.Restart()
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
