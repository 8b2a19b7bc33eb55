package systems

import "github.com/hajimehoshi/ebiten/v2"

// deltaSeconds is the fixed length of one update tick.
func deltaSeconds() float64 {
	return 1.0 / float64(ebiten.TPS())
}
