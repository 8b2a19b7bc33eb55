package collision

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	dmath "github.com/yohamta/donburi/features/math"
)

// State is the behaviour and animation state of a body.
type State int

const (
	Idle State = iota
	Walk
	Jump
	Attack
	Die
)

var stateNames = map[State]string{
	Idle:   "idle",
	Walk:   "walk",
	Jump:   "jump",
	Attack: "attack",
	Die:    "die",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// BodyConfig holds the movement tuning of a body. Speeds are in world units
// per second and durations in seconds.
type BodyConfig struct {
	MaxWalkSpeed   float64
	JumpImpulse    float64 // magnitude; applied upward
	AttackDuration float64
}

// Body is a dynamic axis-aligned box driven by discrete commands. Position is
// the centre of the box. Only the World moves a body.
type Body struct {
	ID uuid.UUID

	position    dmath.Vec2
	velocity    dmath.Vec2
	halfExtents dmath.Vec2

	cfg BodyConfig

	state         State
	previousState State
	stateTime     float64
	attackLeft    float64
	grounded      bool
	facing        float64

	world *World
}

// NewBody creates a body centred on position. Half-extents must be positive.
func NewBody(position, halfExtents dmath.Vec2, cfg BodyConfig) (*Body, error) {
	if !(halfExtents.X > 0) || !(halfExtents.Y > 0) || math.IsInf(halfExtents.X, 0) || math.IsInf(halfExtents.Y, 0) {
		return nil, fmt.Errorf("%w: half-extents %vx%v", ErrConfiguration, halfExtents.X, halfExtents.Y)
	}
	return &Body{
		ID:          uuid.New(),
		position:    position,
		halfExtents: halfExtents,
		cfg:         cfg,
		state:       Idle,
		facing:      1,
	}, nil
}

func (b *Body) Position() dmath.Vec2    { return b.position }
func (b *Body) Velocity() dmath.Vec2    { return b.velocity }
func (b *Body) HalfExtents() dmath.Vec2 { return b.halfExtents }
func (b *Body) State() State            { return b.state }
func (b *Body) Grounded() bool          { return b.grounded }

// Facing is -1 when the body last walked left and 1 otherwise.
func (b *Body) Facing() float64 { return b.facing }

// StateTime is the number of seconds spent in the current state.
func (b *Body) StateTime() float64 { return b.stateTime }

// Bounds returns the world-space bounding box.
func (b *Body) Bounds() Rect {
	return Rect{
		X: b.position.X - b.halfExtents.X,
		Y: b.position.Y - b.halfExtents.Y,
		W: b.halfExtents.X * 2,
		H: b.halfExtents.Y * 2,
	}
}

// Walk sets horizontal velocity from a direction. Only its sign is used, and
// the last call before the next world update wins.
func (b *Body) Walk(direction float64) {
	if b.state == Die {
		return
	}
	dir := sign(direction)
	b.velocity.X = dir * b.cfg.MaxWalkSpeed
	if dir != 0 {
		b.facing = dir
	}

	switch b.state {
	case Idle, Walk:
		if dir != 0 {
			b.setState(Walk)
		} else {
			b.setState(Idle)
		}
	}
}

// Jump launches the body upward. It is ignored while airborne.
func (b *Body) Jump() {
	if b.state == Die || !b.grounded {
		return
	}
	b.velocity.Y = -b.cfg.JumpImpulse
	b.grounded = false
	if b.state == Attack {
		b.previousState = Jump
		return
	}
	b.setState(Jump)
}

// Attack starts a time-boxed attack. It is ignored while already attacking.
func (b *Body) Attack() {
	if b.state == Die || b.state == Attack {
		return
	}
	b.previousState = b.state
	b.attackLeft = b.cfg.AttackDuration
	b.setState(Attack)
}

// Die moves the body into its terminal state and freezes it.
func (b *Body) Die() {
	b.velocity = dmath.Vec2{}
	b.attackLeft = 0
	b.setState(Die)
}

// Update advances state timers. Physics integration is the World's job.
func (b *Body) Update(deltaSeconds float64) {
	if !(deltaSeconds > 0) {
		return
	}
	b.stateTime += deltaSeconds

	if b.state != Attack {
		return
	}
	b.attackLeft -= deltaSeconds
	if b.attackLeft > 0 {
		return
	}
	b.attackLeft = 0
	b.setState(b.previousState)
	b.reconcile()
}

// reconcile brings the movement states in line with the physical state after
// a world step or an attack ending.
func (b *Body) reconcile() {
	switch b.state {
	case Idle, Walk:
		if !b.grounded {
			b.setState(Jump)
		} else if b.velocity.X != 0 {
			b.setState(Walk)
		} else {
			b.setState(Idle)
		}
	case Jump:
		if b.grounded && b.velocity.Y >= 0 {
			if b.velocity.X != 0 {
				b.setState(Walk)
			} else {
				b.setState(Idle)
			}
		}
	case Attack:
		// Land or leave the ground underneath the attack without interrupting it.
		if b.grounded && b.previousState == Jump {
			b.previousState = Idle
		} else if !b.grounded && b.previousState != Jump {
			b.previousState = Jump
		}
	}
}

func (b *Body) setState(s State) {
	if b.state == s {
		return
	}
	b.state = s
	b.stateTime = 0
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
