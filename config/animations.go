package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
}

// CharacterAnimations maps a character key (e.g., "zombie")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"zombie": {
		Idle:   {First: 0, Last: 14, Step: 1, Speed: 5},
		Walk:   {First: 0, Last: 9, Step: 1, Speed: 4},
		Jump:   {First: 0, Last: 2, Step: 1, Speed: 10},
		Attack: {First: 0, Last: 7, Step: 1, Speed: 4},
		Die:    {First: 0, Last: 11, Step: 1, Speed: 5},
	},
}
