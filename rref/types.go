// Package rref defines options, pivoting strategies and sentinel errors
// for the reduction pipeline.
package rref

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for rref operations.
//
// NOTE ON PREFIXING:
//   - Messages carry the "rref: " prefix so a bare log line identifies the
//     package; operation wrappers add the call site ("Reduce: ...").
//   - Validation faults detected inside the matrix package keep their own
//     sentinels (matrix.ErrNilMatrix, matrix.ErrNaNInf); errors.Is sees
//     through the wrapping either way.
var (
	// ErrDegenerateMatrix indicates a zero-dimension input (no rows or no columns).
	ErrDegenerateMatrix = errors.New("rref: matrix must have at least one row and one column")
	// ErrVanishingPivot indicates a pivot too small in magnitude to invert safely.
	// Reachable only under WithEpsilon(0) with subnormal pivot candidates.
	ErrVanishingPivot = errors.New("rref: pivot magnitude too small to invert")
	// ErrUnsolvable indicates an inconsistent system (a row reduces to 0 = nonzero).
	ErrUnsolvable = errors.New("rref: system is inconsistent (no solution)")
	// ErrUnderdetermined indicates infinitely many solutions (free variables remain).
	ErrUnderdetermined = errors.New("rref: system is underdetermined (infinitely many solutions)")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opReduce    = "Reduce"
	opRank      = "Rank"
	opIsReduced = "IsReduced"
	opSolve     = "Solve"
)

// rrefErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func rrefErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Pivoting selects the pivot-search strategy inside each column sweep.
//
//   - MaxMagnitude — scan the candidate rows and pick the entry with the
//     largest absolute value (partial pivoting). Numerically the safest
//     default: dividing by the largest candidate minimizes amplification
//     of rounding noise.
//
//   - FirstNonZero — pick the first candidate whose magnitude exceeds ε.
//     Matches the textbook sweep; kept for reproducing hand-worked
//     eliminations step by step.
type Pivoting int

const (
	// MaxMagnitude picks the largest |entry| among candidate rows (default).
	MaxMagnitude Pivoting = iota
	// FirstNonZero picks the first candidate with |entry| > ε.
	FirstNonZero
)

// String returns the stable name of the strategy (used in logs and errors).
func (p Pivoting) String() string {
	switch p {
	case MaxMagnitude:
		return "MaxMagnitude"
	case FirstNonZero:
		return "FirstNonZero"
	default:
		return fmt.Sprintf("Pivoting(%d)", int(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the near-zero threshold: candidates with |v| ≤ ε are
	// not eligible as pivots, and clamped to 0 in the final pass.
	DefaultEpsilon = 1e-9

	// DefaultPivoting selects max-magnitude partial pivoting.
	DefaultPivoting = MaxMagnitude

	// DefaultZeroClamp enables the final residue-clamping pass.
	DefaultZeroClamp = true

	// DefaultWorkers runs the elimination sequentially.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "rref: WithEpsilon: eps must be finite, non-negative"
	panicPivotingInvalid = "rref: WithPivoting: unknown strategy"
	panicWorkersInvalid  = "rref: WithWorkers: n must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps       float64  // >= 0; DefaultEpsilon
	pivoting  Pivoting // DefaultPivoting
	clampZero bool     // DefaultZeroClamp
	workers   int      // >= 1; DefaultWorkers
}

// WithEpsilon sets the near-zero threshold ε used for pivot eligibility and
// residue clamping. Panics on NaN, ±Inf or negative input.
//
// Notes:
//   - ε = 0 disables the threshold entirely: any nonzero entry may pivot
//     and nothing is clamped. Combine with WithNoZeroClamp consciously;
//     subnormal pivots then surface ErrVanishingPivot.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivoting selects the pivot-search strategy explicitly.
// Panics on values outside the declared enum.
func WithPivoting(p Pivoting) Option {
	if p != MaxMagnitude && p != FirstNonZero {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// WithMaxMagnitudePivoting selects partial pivoting by maximum magnitude
// (the default; numerically safest).
func WithMaxMagnitudePivoting() Option {
	return func(o *Options) { o.pivoting = MaxMagnitude }
}

// WithFirstNonZeroPivoting selects the textbook first-nonzero pivot scan.
// Use to reproduce hand-worked eliminations row for row.
func WithFirstNonZeroPivoting() Option {
	return func(o *Options) { o.pivoting = FirstNonZero }
}

// WithZeroClamp enables the final clamping pass: |v| ≤ ε entries become 0
// (the default).
func WithZeroClamp() Option {
	return func(o *Options) { o.clampZero = true }
}

// WithNoZeroClamp disables the final clamping pass, exposing raw elimination
// residue in non-pivot positions. Pivot columns still read exactly 1/0.
func WithNoZeroClamp() Option {
	return func(o *Options) { o.clampZero = false }
}

// WithWorkers bounds the number of goroutines eliminating rows within each
// column step. n = 1 (the default) runs sequentially; results are bitwise
// identical for every n. Panics when n < 1.
//
// AI-Hints:
//   - Worth it for tall matrices (thousands of rows); the per-column
//     synchronization dominates on small inputs.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Pure; stable for a given sequence of setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		pivoting:  DefaultPivoting,
		clampZero: DefaultZeroClamp,
		workers:   DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
