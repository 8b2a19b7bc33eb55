package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	frame     = 1.0 / 60.0
	floorRow  = 10
	floorTop  = floorRow * 32.0
	wallCol   = 15
	wallLeft  = wallCol * 32.0
	ceilRow   = 3
	ceilUnder = (ceilRow + 1) * 32.0
)

var earthGravity = WorldConfig{Gravity: dmath.Vec2{Y: 900}}

// testLevel is 20x15 cells of 32px: a one-cell floor on row 10, a wall on
// column 15 above the floor and a short ceiling on row 3 over columns 4-6.
func testLevel(t *testing.T) *Grid {
	t.Helper()
	tiles := make([][]int, 15)
	for row := range tiles {
		tiles[row] = make([]int, 20)
	}
	for col := 0; col < 20; col++ {
		tiles[floorRow][col] = 1
	}
	for row := 0; row < floorRow; row++ {
		tiles[row][wallCol] = 2
	}
	for col := 4; col <= 6; col++ {
		tiles[ceilRow][col] = 1
	}

	g, err := NewGrid(tiles, 32, 32, SolidSet(1, 2))
	require.NoError(t, err)
	return g
}

func newTestWorld(t *testing.T, cfg WorldConfig, bodies ...*Body) *World {
	t.Helper()
	w, err := NewWorld(testLevel(t), cfg)
	require.NoError(t, err)
	for _, b := range bodies {
		require.NoError(t, w.AddBody(b))
	}
	return w
}

func stepUntil(t *testing.T, w *World, b *Body, frames int, done func() bool) {
	t.Helper()
	for i := 0; i < frames; i++ {
		b.Update(frame)
		require.NoError(t, w.Update(frame))
		if done() {
			return
		}
	}
	t.Fatalf("condition not reached after %d frames", frames)
}

func TestNewWorldRejectsBadConfiguration(t *testing.T) {
	_, err := NewWorld(nil, earthGravity)
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = NewWorld(testLevel(t), WorldConfig{MaxFallSpeed: -1})
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestWorldLandsOnPlatform(t *testing.T) {
	b := newTestBody(t, 100, 100)
	w := newTestWorld(t, earthGravity, b)

	stepUntil(t, w, b, 600, b.Grounded)

	assert.Equal(t, 0.0, b.Velocity().Y)
	assert.InDelta(t, floorTop-b.HalfExtents().Y, b.Position().Y, 1e-9)
	assert.Equal(t, Idle, b.State())

	for i := 0; i < 30; i++ {
		require.NoError(t, w.Update(frame))
	}
	assert.True(t, b.Grounded(), "resting body stays grounded")
	assert.InDelta(t, floorTop-b.HalfExtents().Y, b.Position().Y, 1e-9)
}

func TestWorldFallingBodyIsAirborne(t *testing.T) {
	b := newTestBody(t, 100, 100)
	w := newTestWorld(t, earthGravity, b)

	require.NoError(t, w.Update(frame))
	assert.False(t, b.Grounded())
	assert.Equal(t, Jump, b.State(), "airborne bodies use the jump state")
	assert.Greater(t, b.Position().Y, 100.0)
}

func TestWorldNeverTunnels(t *testing.T) {
	cases := []struct {
		name string
		dt   float64
	}{
		{"frame", frame},
		{"quarter_second", 0.25},
		{"one_second", 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newTestBody(t, 100, 20)
			w := newTestWorld(t, earthGravity, b)

			for i := 0; i < 120; i++ {
				b.Walk(1)
				require.NoError(t, w.Update(c.dt))
				require.False(t, w.Grid().Overlaps(b.Bounds()), "overlap at step %d: %+v", i, b.Bounds())
			}
			assert.True(t, b.Grounded())
			assert.LessOrEqual(t, b.Bounds().Right(), wallLeft)
		})
	}
}

func TestWorldZeroDeltaIsIdempotent(t *testing.T) {
	grounded := newTestBody(t, 100, floorTop-16)
	airborne := newTestBody(t, 200, 50)
	airborne.velocity = dmath.Vec2{X: 30, Y: -40}
	w := newTestWorld(t, earthGravity, grounded, airborne)

	require.NoError(t, w.Update(frame))
	require.True(t, grounded.Grounded())

	beforeGrounded, beforeAirborne := *grounded, *airborne
	for i := 0; i < 10; i++ {
		require.NoError(t, w.Update(0))
	}

	assert.Equal(t, beforeGrounded.Position(), grounded.Position())
	assert.Equal(t, beforeGrounded.Grounded(), grounded.Grounded())
	assert.Equal(t, beforeAirborne.Position(), airborne.Position())
	assert.Equal(t, beforeAirborne.Velocity(), airborne.Velocity())
	assert.Equal(t, beforeAirborne.Grounded(), airborne.Grounded())
}

func TestWorldJumpFromGround(t *testing.T) {
	b := newTestBody(t, 100, floorTop-16)
	w := newTestWorld(t, earthGravity, b)
	require.NoError(t, w.Update(frame))
	require.True(t, b.Grounded())

	b.Jump()
	assert.Equal(t, -testBodyConfig.JumpImpulse, b.Velocity().Y)
	assert.False(t, b.Grounded())

	require.NoError(t, w.Update(frame))
	assert.False(t, b.Grounded())
	assert.Equal(t, Jump, b.State())
	assert.Less(t, b.Position().Y, floorTop-16)

	stepUntil(t, w, b, 600, b.Grounded)
	assert.Equal(t, Idle, b.State())
	assert.InDelta(t, floorTop-16, b.Position().Y, 1e-9)
}

func TestWorldStopsAtWall(t *testing.T) {
	b := newTestBody(t, 400, floorTop-16)
	w := newTestWorld(t, earthGravity, b)

	for i := 0; i < 120; i++ {
		b.Walk(1)
		b.Update(frame)
		require.NoError(t, w.Update(frame))
	}
	assert.InDelta(t, wallLeft-b.HalfExtents().X, b.Position().X, 1e-9)
	assert.Equal(t, 0.0, b.Velocity().X)
	assert.True(t, b.Grounded())
}

func TestWorldCeilingStopsJump(t *testing.T) {
	cfg := testBodyConfig
	cfg.JumpImpulse = 900
	b, err := NewBody(dmath.Vec2{X: 5*32 + 16, Y: floorTop - 16}, dmath.Vec2{X: 8, Y: 16}, cfg)
	require.NoError(t, err)
	w := newTestWorld(t, earthGravity, b)
	require.NoError(t, w.Update(frame))
	require.True(t, b.Grounded())

	b.Jump()
	highest := b.Bounds().Y
	for i := 0; i < 120; i++ {
		require.NoError(t, w.Update(frame))
		if b.Bounds().Y < highest {
			highest = b.Bounds().Y
		}
		if b.Grounded() {
			break
		}
	}
	assert.InDelta(t, ceilUnder, highest, 1e-9, "head stops at the ceiling")
	assert.True(t, b.Grounded())
}

func TestWorldWalkOffLedgeFalls(t *testing.T) {
	tiles := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
	}
	g, err := NewGrid(tiles, 32, 32, nil)
	require.NoError(t, err)
	w, err := NewWorld(g, earthGravity)
	require.NoError(t, err)

	b := newTestBody(t, 16, 64-16)
	require.NoError(t, w.AddBody(b))
	require.NoError(t, w.Update(frame))
	require.True(t, b.Grounded())

	for i := 0; i < 60 && b.Grounded(); i++ {
		b.Walk(1)
		b.Update(frame)
		require.NoError(t, w.Update(frame))
	}
	assert.False(t, b.Grounded())
	assert.Equal(t, Jump, b.State())
}

func TestWorldTerminalFallSpeed(t *testing.T) {
	b := newTestBody(t, 100, 20)
	w := newTestWorld(t, WorldConfig{Gravity: dmath.Vec2{Y: 900}, MaxFallSpeed: 100}, b)

	for i := 0; i < 20; i++ {
		require.NoError(t, w.Update(frame))
	}
	assert.Equal(t, 100.0, b.Velocity().Y)
}

func TestWorldPushesEmbeddedBodyOut(t *testing.T) {
	t.Run("up_out_of_floor", func(t *testing.T) {
		b := newTestBody(t, 100, floorTop-10)
		w := newTestWorld(t, earthGravity, b)

		require.NoError(t, w.Update(frame))
		assert.InDelta(t, floorTop-16, b.Position().Y, 1e-9)
		assert.True(t, b.Grounded())
	})

	t.Run("left_out_of_wall", func(t *testing.T) {
		b := newTestBody(t, wallLeft-2, 200)
		w := newTestWorld(t, earthGravity, b)

		require.NoError(t, w.Update(frame))
		assert.InDelta(t, wallLeft-8, b.Position().X, 1e-9)
		assert.False(t, w.Grid().Overlaps(b.Bounds()))
	})
}

func blockGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid([][]int{
		{1, 1, 1, 0, 0},
		{1, 1, 1, 0, 0},
		{1, 1, 1, 0, 0},
	}, 10, 10, nil)
	require.NoError(t, err)
	return g
}

func TestWorldPushesDeeplyEmbeddedBodyOut(t *testing.T) {
	w, err := NewWorld(blockGrid(t), earthGravity)
	require.NoError(t, err)

	// One cell deep in the block: every direction needs 19px, up wins the tie.
	b := newTestBody(t, 15, 15)
	b.halfExtents = dmath.Vec2{X: 4, Y: 4}
	require.NoError(t, w.AddBody(b))

	require.NoError(t, w.Update(frame))
	assert.InDelta(t, 15.0, b.Position().X, 1e-9)
	assert.InDelta(t, -4.0, b.Position().Y, 1e-9)
	assert.False(t, w.Grid().Overlaps(b.Bounds()))
	assert.True(t, b.Grounded(), "lands on top of the block")
	assert.Equal(t, 0.0, b.Velocity().Y)
}

func TestWorldPushOutPrefersShortestEscape(t *testing.T) {
	w, err := NewWorld(blockGrid(t), earthGravity)
	require.NoError(t, err)

	// Near the open right side of the block, right is shorter than up.
	b := newTestBody(t, 27, 15)
	b.halfExtents = dmath.Vec2{X: 4, Y: 4}
	require.NoError(t, w.AddBody(b))

	require.NoError(t, w.Update(frame))
	assert.InDelta(t, 34.0, b.Position().X, 1e-9)
	assert.False(t, w.Grid().Overlaps(b.Bounds()))
}

func TestWorldReportsDegenerateBodyAndContinues(t *testing.T) {
	w, err := NewWorld(blockGrid(t), earthGravity)
	require.NoError(t, err)

	broken := newTestBody(t, math.NaN(), 15)
	free := newTestBody(t, 45, 5)
	free.halfExtents = dmath.Vec2{X: 4, Y: 4}
	require.NoError(t, w.AddBody(broken))
	require.NoError(t, w.AddBody(free))

	err = w.Update(frame)
	require.ErrorIs(t, err, ErrGeometryDegenerate)
	assert.Contains(t, err.Error(), broken.ID.String())
	assert.True(t, math.IsNaN(broken.Position().X))
	assert.Equal(t, 15.0, broken.Position().Y, "degenerate body keeps its position")
	assert.Greater(t, free.Position().Y, 5.0, "other bodies still move")
}

func TestWorldProbeGroundingStopsVerticalMotion(t *testing.T) {
	// Steps this small never reach the swept hit, only the ground probe.
	const tiny = 1e-5
	b := newTestBody(t, 100, floorTop-16)
	w := newTestWorld(t, earthGravity, b)

	for i := 0; i < 20; i++ {
		require.NoError(t, w.Update(tiny))
		require.True(t, b.Grounded())
		require.Equal(t, 0.0, b.Velocity().Y, "frame %d", i)
		require.Equal(t, floorTop-16, b.Position().Y, "frame %d", i)
	}
}

func TestWorldSkipsDeadBodies(t *testing.T) {
	b := newTestBody(t, 100, 100)
	w := newTestWorld(t, earthGravity, b)
	b.Die()

	for i := 0; i < 10; i++ {
		require.NoError(t, w.Update(frame))
	}
	assert.Equal(t, dmath.Vec2{X: 100, Y: 100}, b.Position())
	assert.Equal(t, Die, b.State())
}

func TestWorldBodyMembership(t *testing.T) {
	a, b, c := newTestBody(t, 50, 50), newTestBody(t, 100, 50), newTestBody(t, 150, 50)
	w := newTestWorld(t, earthGravity, a, b, c)

	assert.Equal(t, []*Body{a, b, c}, w.Bodies())
	require.ErrorIs(t, w.AddBody(b), ErrConfiguration)
	require.ErrorIs(t, w.AddBody(nil), ErrConfiguration)

	assert.True(t, w.RemoveBody(b))
	assert.False(t, w.RemoveBody(b))
	assert.Equal(t, []*Body{a, c}, w.Bodies())
	assert.Equal(t, 2, w.Len())

	other := newTestWorld(t, earthGravity)
	require.NoError(t, other.AddBody(b), "a removed body can join another world")

	w.Clear()
	assert.Equal(t, 0, w.Len())
	require.NoError(t, w.AddBody(a))
	assert.Equal(t, earthGravity.Gravity, w.Gravity())
}

func TestWorldHeldJumpRepeatsOnLanding(t *testing.T) {
	b := newTestBody(t, 100, floorTop-16)
	w := newTestWorld(t, earthGravity, b)

	jumps := 0
	for i := 0; i < 200; i++ {
		wasGrounded := b.Grounded()
		before := b.Velocity().Y
		b.Jump()
		if wasGrounded {
			jumps++
			assert.Equal(t, -testBodyConfig.JumpImpulse, b.Velocity().Y)
		} else {
			assert.Equal(t, before, b.Velocity().Y, "held jump is ignored mid-air")
		}
		b.Update(frame)
		require.NoError(t, w.Update(frame))
	}
	assert.GreaterOrEqual(t, jumps, 3)
}
