// Package collision resolves dynamic bodies against a static tile grid. It
// has no dependency on ebiten or any graphics library, so it can be stepped
// headless and tested directly.
package collision

import (
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// contactEpsilon keeps boxes that merely touch a cell edge from counting as
// overlapping it.
const contactEpsilon = 1e-6

// Rect is an axis-aligned box in world space.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Grid is an immutable solid/open map of fixed-size cells.
type Grid struct {
	cellW, cellH float64
	cols, rows   int
	solid        []bool
}

// SolidSet returns a predicate that reports membership in indices.
func SolidSet(indices ...int) func(int) bool {
	set := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		set[i] = struct{}{}
	}
	return func(index int) bool {
		_, ok := set[index]
		return ok
	}
}

// NewGrid builds a grid from tiles[row][col]. A nil solid predicate treats
// every non-zero tile index as solid.
func NewGrid(tiles [][]int, cellW, cellH float64, solid func(index int) bool) (*Grid, error) {
	if !(cellW > 0) || !(cellH > 0) || math.IsInf(cellW, 0) || math.IsInf(cellH, 0) {
		return nil, fmt.Errorf("%w: cell size %vx%v", ErrConfiguration, cellW, cellH)
	}
	rows := len(tiles)
	if rows == 0 || len(tiles[0]) == 0 {
		return nil, fmt.Errorf("%w: empty tile arrangement", ErrConfiguration)
	}
	cols := len(tiles[0])
	if solid == nil {
		solid = func(index int) bool { return index != 0 }
	}

	g := &Grid{
		cellW: cellW,
		cellH: cellH,
		cols:  cols,
		rows:  rows,
		solid: make([]bool, cols*rows),
	}
	for row, line := range tiles {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrConfiguration, row, len(line), cols)
		}
		for col, index := range line {
			g.solid[row*cols+col] = solid(index)
		}
	}
	return g, nil
}

func (g *Grid) CellWidth() float64  { return g.cellW }
func (g *Grid) CellHeight() float64 { return g.cellH }
func (g *Grid) Cols() int           { return g.cols }
func (g *Grid) Rows() int           { return g.rows }

// Width is the world-space width covered by the grid.
func (g *Grid) Width() float64 { return float64(g.cols) * g.cellW }

// Height is the world-space height covered by the grid.
func (g *Grid) Height() float64 { return float64(g.rows) * g.cellH }

// IsSolid reports whether the cell is solid. Cells outside the grid are open.
func (g *Grid) IsSolid(col, row int) bool {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return false
	}
	return g.solid[row*g.cols+col]
}

// WorldToCell maps a world position to the cell containing it.
func (g *Grid) WorldToCell(p dmath.Vec2) (col, row int) {
	return int(math.Floor(p.X / g.cellW)), int(math.Floor(p.Y / g.cellH))
}

// CellBounds returns the world-space box of a cell.
func (g *Grid) CellBounds(col, row int) Rect {
	return Rect{
		X: float64(col) * g.cellW,
		Y: float64(row) * g.cellH,
		W: g.cellW,
		H: g.cellH,
	}
}

// cellSpan returns the inclusive cell range a box overlaps. Edges that only
// touch a cell boundary are excluded.
func (g *Grid) cellSpan(r Rect) (col0, row0, col1, row1 int) {
	col0 = int(math.Floor((r.X + contactEpsilon) / g.cellW))
	row0 = int(math.Floor((r.Y + contactEpsilon) / g.cellH))
	col1 = int(math.Ceil((r.Right()-contactEpsilon)/g.cellW)) - 1
	row1 = int(math.Ceil((r.Bottom()-contactEpsilon)/g.cellH)) - 1
	return
}

// Overlaps reports whether any solid cell overlaps r.
func (g *Grid) Overlaps(r Rect) bool {
	col0, row0, col1, row1 := g.cellSpan(r)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if g.IsSolid(col, row) {
				return true
			}
		}
	}
	return false
}

// solidUnion returns the bounding box of every solid cell overlapping r.
func (g *Grid) solidUnion(r Rect) (Rect, bool) {
	col0, row0, col1, row1 := g.cellSpan(r)
	minCol, minRow, maxCol, maxRow := math.MaxInt, math.MaxInt, math.MinInt, math.MinInt
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if !g.IsSolid(col, row) {
				continue
			}
			minCol, maxCol = min(minCol, col), max(maxCol, col)
			minRow, maxRow = min(minRow, row), max(maxRow, row)
		}
	}
	if maxCol < minCol {
		return Rect{}, false
	}
	return Rect{
		X: float64(minCol) * g.cellW,
		Y: float64(minRow) * g.cellH,
		W: float64(maxCol-minCol+1) * g.cellW,
		H: float64(maxRow-minRow+1) * g.cellH,
	}, true
}
