package bipartite

import "errors"

// Nil is the sentinel vertex index meaning "unmatched" or "no partner".
const Nil = 0

// Sentinel errors for graph construction.
var (
	// ErrNegativeCount is returned when a side is declared with a negative size.
	ErrNegativeCount = errors.New("bipartite: negative vertex count")

	// ErrTooLarge is returned when 1+left+right does not fit in an int.
	ErrTooLarge = errors.New("bipartite: vertex count overflows index space")

	// ErrVertexOutOfRange is returned when an index lies outside 1..Left()+Right().
	ErrVertexOutOfRange = errors.New("bipartite: vertex index out of range")

	// ErrSameSide is returned when both edge endpoints belong to the same side.
	ErrSameSide = errors.New("bipartite: edge endpoints on the same side")

	// ErrNotRectangular is returned by FromMatrix for ragged input.
	ErrNotRectangular = errors.New("bipartite: matrix is not rectangular")

	// ErrInvalidProbability is returned when p lies outside [0,1].
	ErrInvalidProbability = errors.New("bipartite: probability out of range")

	// ErrNeedRandSource is returned when Random needs an RNG and none was given.
	ErrNeedRandSource = errors.New("bipartite: rng is required")
)

// Side tells which block of the index space a vertex belongs to.
type Side uint8

const (
	// SideNil marks the sentinel index 0.
	SideNil Side = iota
	// SideLeft marks indices 1..Left().
	SideLeft
	// SideRight marks indices Left()+1..Left()+Right().
	SideRight
	// SideInvalid marks any index outside the graph.
	SideInvalid
)

// String returns a short human-readable name of the side.
func (s Side) String() string {
	switch s {
	case SideNil:
		return "nil"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "invalid"
	}
}
