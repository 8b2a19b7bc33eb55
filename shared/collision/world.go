package collision

import (
	"errors"
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// groundProbe is how far below a body's feet the world looks for ground when
// no downward collision happened this frame. It must exceed contactEpsilon.
const groundProbe = 1e-3

// WorldConfig is fixed for the lifetime of a World.
type WorldConfig struct {
	Gravity dmath.Vec2
	// MaxFallSpeed clamps downward velocity. Zero means unlimited.
	MaxFallSpeed float64
}

// World steps bodies against a Grid. Bodies are updated in insertion order.
// It is not safe for concurrent use.
type World struct {
	grid   *Grid
	cfg    WorldConfig
	bodies []*Body
}

// NewWorld creates a world over grid.
func NewWorld(grid *Grid, cfg WorldConfig) (*World, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrConfiguration)
	}
	if cfg.MaxFallSpeed < 0 || math.IsNaN(cfg.MaxFallSpeed) {
		return nil, fmt.Errorf("%w: max fall speed %v", ErrConfiguration, cfg.MaxFallSpeed)
	}
	return &World{grid: grid, cfg: cfg}, nil
}

func (w *World) Grid() *Grid          { return w.grid }
func (w *World) Gravity() dmath.Vec2 { return w.cfg.Gravity }
func (w *World) Len() int             { return len(w.bodies) }

// Bodies returns the bodies in update order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// AddBody appends b to the update order.
func (w *World) AddBody(b *Body) error {
	if b == nil {
		return fmt.Errorf("%w: nil body", ErrConfiguration)
	}
	if b.world != nil {
		return fmt.Errorf("%w: body %s already belongs to a world", ErrConfiguration, b.ID)
	}
	b.world = w
	w.bodies = append(w.bodies, b)
	return nil
}

// RemoveBody drops b from the world. It reports whether b was present.
func (w *World) RemoveBody(b *Body) bool {
	for i, other := range w.bodies {
		if other != b {
			continue
		}
		w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
		b.world = nil
		return true
	}
	return false
}

// Clear removes every body.
func (w *World) Clear() {
	for _, b := range w.bodies {
		b.world = nil
	}
	w.bodies = nil
}

// Update integrates and resolves every body once. A body that cannot be freed
// from terrain is skipped for the frame and its error is returned joined with
// the others; the remaining bodies still move.
func (w *World) Update(deltaSeconds float64) error {
	if !(deltaSeconds > 0) {
		return nil
	}
	var errs []error
	for _, b := range w.bodies {
		if err := w.step(b, deltaSeconds); err != nil {
			errs = append(errs, fmt.Errorf("body %s: %w", b.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (w *World) step(b *Body, dt float64) error {
	if b.state == Die {
		return nil
	}
	if !finite(b.position) || !finite(b.halfExtents) {
		return fmt.Errorf("%w: body at (%v, %v) size %vx%v", ErrGeometryDegenerate,
			b.position.X, b.position.Y, b.halfExtents.X*2, b.halfExtents.Y*2)
	}
	if w.grid.Overlaps(b.Bounds()) {
		if err := w.pushOut(b); err != nil {
			return err
		}
	}

	b.velocity.X += w.cfg.Gravity.X * dt
	b.velocity.Y += w.cfg.Gravity.Y * dt
	if w.cfg.MaxFallSpeed > 0 && b.velocity.Y > w.cfg.MaxFallSpeed {
		b.velocity.Y = w.cfg.MaxFallSpeed
	}

	w.moveX(b, b.velocity.X*dt)
	hitBelow, hitAbove := w.moveY(b, b.velocity.Y*dt)

	switch {
	case hitBelow:
		b.grounded = true
		b.velocity.Y = 0
	case hitAbove:
		b.grounded = false
		b.velocity.Y = 0
	default:
		b.grounded = b.velocity.Y >= 0 && w.grid.Overlaps(b.Bounds().Translate(0, groundProbe))
		if b.grounded {
			// Resting within the probe distance counts as standing on the cell top.
			top := math.Round(b.Bounds().Bottom()/w.grid.cellH) * w.grid.cellH
			b.position.Y = top - b.halfExtents.Y
			b.velocity.Y = 0
		}
	}
	b.reconcile()
	return nil
}

// moveX sweeps the box horizontally and stops it at the first solid column.
func (w *World) moveX(b *Body, dx float64) {
	if dx == 0 {
		return
	}
	box := b.Bounds()
	swept := box
	if dx > 0 {
		swept.W += dx
	} else {
		swept.X += dx
		swept.W -= dx
	}

	col0, row0, col1, row1 := w.grid.cellSpan(swept)
	if dx > 0 {
		for col := col0; col <= col1; col++ {
			if w.columnSolid(col, row0, row1) {
				b.position.X = float64(col)*w.grid.cellW - b.halfExtents.X
				b.velocity.X = 0
				return
			}
		}
	} else {
		for col := col1; col >= col0; col-- {
			if w.columnSolid(col, row0, row1) {
				b.position.X = float64(col+1)*w.grid.cellW + b.halfExtents.X
				b.velocity.X = 0
				return
			}
		}
	}
	b.position.X += dx
}

// moveY sweeps the box vertically and stops it at the first solid row.
func (w *World) moveY(b *Body, dy float64) (hitBelow, hitAbove bool) {
	if dy == 0 {
		return false, false
	}
	box := b.Bounds()
	swept := box
	if dy > 0 {
		swept.H += dy
	} else {
		swept.Y += dy
		swept.H -= dy
	}

	col0, row0, col1, row1 := w.grid.cellSpan(swept)
	if dy > 0 {
		for row := row0; row <= row1; row++ {
			if w.rowSolid(row, col0, col1) {
				b.position.Y = float64(row)*w.grid.cellH - b.halfExtents.Y
				return true, false
			}
		}
	} else {
		for row := row1; row >= row0; row-- {
			if w.rowSolid(row, col0, col1) {
				b.position.Y = float64(row+1)*w.grid.cellH + b.halfExtents.Y
				return false, true
			}
		}
	}
	b.position.Y += dy
	return false, false
}

func (w *World) columnSolid(col, row0, row1 int) bool {
	for row := row0; row <= row1; row++ {
		if w.grid.IsSolid(col, row) {
			return true
		}
	}
	return false
}

func (w *World) rowSolid(row, col0, col1 int) bool {
	for col := col0; col <= col1; col++ {
		if w.grid.IsSolid(col, row) {
			return true
		}
	}
	return false
}

// pushOut frees an embedded body with the smallest displacement that clears
// every solid cell. Each direction walks outward past solid cells until the
// box is free, which at the latest happens past the grid edge. Candidates are
// tried up, left, right, down, and the first of equal magnitude wins.
func (w *World) pushOut(b *Body) error {
	box := b.Bounds()

	best, found := dmath.Vec2{}, false
	bestDist := math.Inf(1)
	for _, dir := range pushDirections {
		c, ok := w.escape(box, dir)
		if !ok {
			continue
		}
		dist := math.Abs(c.X) + math.Abs(c.Y)
		if math.IsNaN(dist) || math.IsInf(dist, 0) || dist >= bestDist {
			continue
		}
		best, bestDist, found = c, dist, true
	}
	if !found {
		return fmt.Errorf("%w: embedded at (%.2f, %.2f)", ErrGeometryDegenerate, b.position.X, b.position.Y)
	}

	b.position.X += best.X
	b.position.Y += best.Y
	if best.Y < 0 {
		b.velocity.Y = math.Min(b.velocity.Y, 0)
	}
	return nil
}

var pushDirections = []dmath.Vec2{{Y: -1}, {X: -1}, {X: 1}, {Y: 1}}

// escape returns the offset along dir that moves box clear of solid cells.
// Every pass clears at least one more row or column, so it is bounded by the
// grid size.
func (w *World) escape(box Rect, dir dmath.Vec2) (dmath.Vec2, bool) {
	var off dmath.Vec2
	for i := 0; i <= w.grid.cols+w.grid.rows+1; i++ {
		union, ok := w.grid.solidUnion(box.Translate(off.X, off.Y))
		if !ok {
			return off, true
		}
		switch {
		case dir.Y < 0:
			off.Y = union.Y - box.Bottom()
		case dir.X < 0:
			off.X = union.X - box.Right()
		case dir.X > 0:
			off.X = union.Right() - box.X
		default:
			off.Y = union.Bottom() - box.Y
		}
	}
	return off, false
}

func finite(v dmath.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
