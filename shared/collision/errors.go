package collision

import "errors"

var (
	// ErrConfiguration is returned when a grid, world or body cannot be built
	// from the values it was given. It is not recoverable.
	ErrConfiguration = errors.New("collision: invalid configuration")

	// ErrGeometryDegenerate is reported for a body whose position or extents
	// are not finite. The body keeps its previous position for that frame.
	ErrGeometryDegenerate = errors.New("collision: degenerate geometry")
)
