package gridgraph

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every construction error: a maze that
// cannot be searched at all. Use errors.Is(err, ErrConfiguration) to catch
// any of the specific sentinels below.
var ErrConfiguration = errors.New("gridgraph: invalid maze configuration")

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates the maze has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: maze must have at least one row and one column", ErrConfiguration)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrConfiguration)
	// ErrUnknownMarker indicates a character that is not a known marker.
	ErrUnknownMarker = fmt.Errorf("%w: unknown marker", ErrConfiguration)
	// ErrNoStart indicates the maze has no start marker.
	ErrNoStart = fmt.Errorf("%w: missing start marker 's'", ErrConfiguration)
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = fmt.Errorf("%w: more than one start marker 's'", ErrConfiguration)
	// ErrNoGoal indicates the maze has no goal marker.
	ErrNoGoal = fmt.Errorf("%w: missing goal marker 'e'", ErrConfiguration)
	// ErrDuplicateGoal indicates more than one goal marker.
	ErrDuplicateGoal = fmt.Errorf("%w: more than one goal marker 'e'", ErrConfiguration)
)
