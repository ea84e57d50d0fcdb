package matching

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for engine construction and result verification.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
	ErrUnknownStrategy = errors.New("matching: unknown strategy")

	// ErrPairOutOfRange is reported by Verify for indices outside the graph.
	ErrPairOutOfRange = errors.New("matching: pair index out of range")

	// ErrVertexReused is reported by Verify when a vertex appears in two pairs.
	ErrVertexReused = errors.New("matching: vertex used by more than one pair")

	// ErrNotAnEdge is reported by Verify when a pair is not an edge of the graph.
	ErrNotAnEdge = errors.New("matching: pair is not an edge")
)

// Strategy selects how augmenting paths are searched during a round.
type Strategy int

const (
	// Iterative walks augmenting paths with an explicit frame stack, so path
	// length is bounded by memory rather than by goroutine stack depth.
	Iterative Strategy = iota
	// Recursive is the textbook depth-first formulation.
	Recursive
)

// String returns the flag-friendly name of s.
func (s Strategy) String() string {
	switch s {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts "iterative" or "recursive" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iterative", "":
		return Iterative, nil
	case "recursive":
		return Recursive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Pair is one matched edge in side-local, 1-based coordinates.
type Pair struct {
	Left  int
	Right int
}

// Result is the outcome of Engine.Run.
//   - Size:   cardinality of the maximum matching.
//   - Rounds: number of layering phases that found at least one augmenting path.
//   - Pairs:  matched edges ordered by Left.
type Result struct {
	Size   int
	Rounds int
	Pairs  []Pair
}

// Observer receives progress notifications from an Engine.
type Observer interface {
	// OnRound is called after every layering pass. free is the number of
	// unmatched left vertices at that moment; found reports whether an
	// augmenting path exists.
	OnRound(round, free int, found bool)
	// OnAugment is called for every successful augmentation with the
	// side-local indices of the newly matched left vertex and its partner.
	OnAugment(round, left, right int)
	// OnDone is called once the matching is maximum.
	OnDone(size, rounds int)
}

// Option configures an Engine via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables and hooks of an Engine.
type Options struct {
	// Strategy picks the augmenting-path search; default Iterative.
	Strategy Strategy

	// Logger receives debug output per round. Never nil after DefaultOptions.
	Logger *zap.Logger

	// CheckInvariants asserts matching symmetry after every round and panics
	// on violation.
	CheckInvariants bool

	// OnRound, OnAugment and OnDone mirror the Observer methods.
	OnRound   func(round, free int, found bool)
	OnAugment func(round, left, right int)
	OnDone    func(size, rounds int)

	err error
}

// DefaultOptions returns Options with the iterative strategy, a no-op logger
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Strategy:  Iterative,
		Logger:    zap.NewNop(),
		OnRound:   func(int, int, bool) {},
		OnAugment: func(int, int, int) {},
		OnDone:    func(int, int) {},
	}
}

// WithStrategy selects the augmenting-path search.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Iterative, Recursive:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithLogger routes engine logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithInvariantChecks enables the per-round symmetry assertion.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.CheckInvariants = true
	}
}

// WithObserver wires every hook to obs. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			return
		}
		o.OnRound = obs.OnRound
		o.OnAugment = obs.OnAugment
		o.OnDone = obs.OnDone
	}
}

// WithOnAugment registers a callback for each successful augmentation.
func WithOnAugment(fn func(round, left, right int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}
