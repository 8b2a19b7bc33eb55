package factory

import (
	"fmt"

	"github.com/automoto/sandbox/assets/animations"
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "zombie") which maps to a set of animation definitions in config.
func GenerateAnimations(key string) (*components.AnimationData, error) {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		return nil, fmt.Errorf("no animation definitions found for key: %s", key)
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CurrentSheet: cfg.Idle, // Default state
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	// The death animation plays once
	if die, ok := animData.Animations[cfg.Die]; ok {
		die.FreezeOnComplete = true
	}
	animData.CurrentAnimation = animData.Animations[cfg.Idle]

	return animData, nil
}
