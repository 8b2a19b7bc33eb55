package config

import "github.com/automoto/sandbox/shared/collision"

// StateID aliases the collision body state so rendering code keeps using config.StateID.
type StateID = collision.State

const (
	Idle   = collision.Idle
	Walk   = collision.Walk
	Jump   = collision.Jump
	Attack = collision.Attack
	Die    = collision.Die
)

// StateColors is the placeholder sprite tint per state.
var StateColors = map[StateID][4]uint8{
	Idle:   {90, 160, 90, 255},
	Walk:   {110, 190, 110, 255},
	Jump:   {150, 200, 120, 255},
	Attack: {200, 70, 70, 255},
	Die:    {90, 90, 90, 255},
}
