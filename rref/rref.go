package rref

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlinear/matrix"
)

// ToReducedRowEchelonForm returns the RREF of m as a fresh matrix.Dense.
// MAIN DESCRIPTION:
//   - Column-major Gauss-Jordan elimination with partial pivoting: for each
//     column, pick a pivot among the unprocessed rows, swap it up, normalize
//     it to a unit pivot, then eliminate the column from every other row.
//
// Implementation Stages:
//   - Stage 1: fail-fast validation (nil → degenerate shape → non-finite).
//   - Stage 2: snapshot m into a private row-slice scratch.
//   - Stage 3: sweep columns left to right with pivot row index p:
//     (a) search rows p..r-1 for a pivot with |entry| > ε,
//     (b) no candidate → next column, p unchanged,
//     (c) swap the candidate into row p,
//     (d) normalize row p: exact 1 at the pivot, scale entries to its right
//     by 1/pivot (entries left of the pivot stay untouched so sub-ε
//     residue is never amplified),
//     (e) eliminate every other row across its full width; the pivot-column
//     entry is written as exact 0,
//     (f) p++.
//   - Stage 4: clamp |v| ≤ ε residue to 0 (unless WithNoZeroClamp).
//   - Stage 5: materialize the scratch through matrix.FromRows.
//
// Behavior highlights:
//   - Unit pivots and pivot-column zeros are assigned exactly, so reduced
//     outputs compare bit-equal under matrix.Equal and the sweep is
//     idempotent: reducing an already reduced matrix returns it unchanged.
//   - Rectangular inputs of any shape are accepted; the input is never
//     mutated.
//
// Inputs:
//   - m: any matrix.Matrix with at least one row and one column.
//   - opts: WithEpsilon / WithPivoting / WithZeroClamp / WithWorkers etc.
//
// Returns:
//   - *matrix.Dense: the reduced matrix, same shape as m.
//
// Errors:
//   - matrix.ErrNilMatrix   (nil input),
//   - ErrDegenerateMatrix   (zero rows or zero columns),
//   - matrix.ErrNaNInf      (NaN or ±Inf entry, reported before any work),
//   - ErrVanishingPivot     (1/pivot overflows; only reachable with ε=0).
//
// Determinism:
//   - Fixed sweep order; identical output for any worker count.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c) for the scratch and result.
//
// AI-Hints:
//   - Feed [A | b] (matrix.Augment) and read solutions off the tail column,
//     or call Solve directly.
//   - WithNoZeroClamp exposes raw elimination residue for numeric analysis.
func ToReducedRowEchelonForm(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	// Fail fast, in documented priority order.
	if err := validateInput(m); err != nil {
		return nil, rrefErrorf(opReduce, err)
	}

	// Private working copy; the input is read, never written.
	rows, err := snapshotRows(m)
	if err != nil {
		return nil, rrefErrorf(opReduce, err)
	}

	if _, err = reduceInPlace(rows, o); err != nil {
		return nil, rrefErrorf(opReduce, err)
	}

	// Final residue pass: |v| ≤ ε → 0 (also normalizes -0 to +0).
	if o.clampZero {
		clampResidue(rows, o.eps)
	}

	// FromRows re-validates shape and screens non-finite values, so an
	// overflow produced mid-elimination surfaces as matrix.ErrNaNInf here.
	res, err := matrix.FromRows(rows)
	if err != nil {
		return nil, rrefErrorf(opReduce, err)
	}

	return res, nil
}

// Reduce is an alias for ToReducedRowEchelonForm with an ergonomic name.
func Reduce(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return ToReducedRowEchelonForm(m, opts...)
}

// Rank returns the number of pivots the Gauss-Jordan sweep finds in m,
// i.e. the dimension of the row space at tolerance ε.
//
// Errors: same taxonomy as ToReducedRowEchelonForm.
// Complexity: O(r·c·min(r,c)).
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	o := gatherOptions(opts...)

	if err := validateInput(m); err != nil {
		return 0, rrefErrorf(opRank, err)
	}

	rows, err := snapshotRows(m)
	if err != nil {
		return 0, rrefErrorf(opRank, err)
	}

	pivots, err := reduceInPlace(rows, o)
	if err != nil {
		return 0, rrefErrorf(opRank, err)
	}

	return pivots, nil
}

// IsReduced reports whether m already satisfies the RREF shape at tolerance ε:
// unit leading entries (|lead−1| ≤ ε) at strictly increasing columns, pivot
// columns zero elsewhere (|v| ≤ ε), zero rows at the bottom.
//
// Returns (false, nil) for well-formed inputs that are simply not reduced;
// errors are reserved for invalid inputs (nil, degenerate, non-finite).
// Complexity: O(r·c).
func IsReduced(m matrix.Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	if err := validateInput(m); err != nil {
		return false, rrefErrorf(opIsReduced, err)
	}

	rows, err := snapshotRows(m)
	if err != nil {
		return false, rrefErrorf(opIsReduced, err)
	}

	r, c := len(rows), len(rows[0])
	prevLead := -1 // column of the previous pivot; leads must increase
	sawZeroRow := false

	var i, j int
	for i = 0; i < r; i++ {
		// Locate the leading entry: first |v| > ε in the row.
		lead := -1
		for j = 0; j < c; j++ {
			if math.Abs(rows[i][j]) > o.eps {
				lead = j

				break
			}
		}

		// Zero row: everything below must be zero rows too.
		if lead < 0 {
			sawZeroRow = true

			continue
		}
		if sawZeroRow {
			return false, nil // nonzero row under a zero row
		}

		// Leading entry must be a unit pivot, strictly right of the previous.
		if math.Abs(rows[i][lead]-1) > o.eps {
			return false, nil
		}
		if lead <= prevLead {
			return false, nil
		}
		prevLead = lead

		// The pivot column must vanish in every other row.
		for j = 0; j < r; j++ {
			if j == i {
				continue
			}
			if math.Abs(rows[j][lead]) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// validateInput runs the shared fail-fast chain: nil → degenerate → finite.
// The order is part of the API contract (tests pin it).
func validateInput(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	// The generic shape sentinel is translated into this package's vocabulary:
	// a zero-area matrix is degenerate input for the sweep.
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return ErrDegenerateMatrix
	}

	// Rejecting NaN/±Inf up front: elimination would smear a single bad
	// entry across every later column.
	return matrix.ValidateFinite(m)
}

// snapshotRows copies m into freshly allocated row slices.
// Row-header swaps during the sweep are then O(1).
//
// Fast path: *matrix.Dense hands out row copies directly; generic
// implementations are read through At in fixed i→j order.
func snapshotRows(m matrix.Matrix) ([][]float64, error) {
	r, c := m.Rows(), m.Cols()
	rows := make([][]float64, r)

	if d, ok := m.(*matrix.Dense); ok {
		var err error
		for i := 0; i < r; i++ {
			if rows[i], err = d.Row(i); err != nil {
				return nil, fmt.Errorf("Row(%d): %w", i, err)
			}
		}

		return rows, nil
	}

	var v float64
	var err error
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return rows, nil
}

// reduceInPlace runs the Jordan sweep over the scratch rows and returns the
// pivot count. Shared by Reduce, Rank and Solve.
//
// Contract: rows is rectangular and finite; both are ensured by the callers.
func reduceInPlace(rows [][]float64, o Options) (int, error) {
	r, c := len(rows), len(rows[0])

	p := 0 // next pivot row
	var col, pr int
	var err error
	for col = 0; col < c && p < r; col++ {
		// (a) pivot search among rows p..r-1.
		pr = findPivot(rows, p, col, o)
		if pr < 0 {
			continue // (b) column has no eligible pivot; p stays
		}

		// (c) swap the candidate into the pivot position (header swap).
		rows[p], rows[pr] = rows[pr], rows[p]

		// (d) normalize the pivot row to a unit pivot.
		if err = normalizePivotRow(rows[p], col); err != nil {
			return 0, fmt.Errorf("pivot(%d,%d): %w", p, col, err)
		}

		// (e) eliminate the column from every other row.
		if o.workers > 1 {
			if err = eliminateParallel(rows, p, col, o.workers); err != nil {
				return 0, err
			}
		} else {
			eliminateBand(rows, 0, r, p, col)
		}

		p++ // (f) advance the pivot row
	}

	return p, nil
}

// findPivot returns the row index of the pivot for column col among rows
// p..len(rows)-1, or -1 when no candidate magnitude exceeds ε.
//
// MaxMagnitude scans the whole candidate span and keeps the earliest row
// holding the strictly largest magnitude; FirstNonZero stops at the first
// eligible entry. Both scans are deterministic.
func findPivot(rows [][]float64, p, col int, o Options) int {
	r := len(rows)

	if o.pivoting == FirstNonZero {
		for i := p; i < r; i++ {
			if math.Abs(rows[i][col]) > o.eps {
				return i
			}
		}

		return -1
	}

	// MaxMagnitude: strict > keeps the earliest among equal magnitudes.
	best := -1
	bestMag := o.eps
	var mag float64
	for i := p; i < r; i++ {
		if mag = math.Abs(rows[i][col]); mag > bestMag {
			best, bestMag = i, mag
		}
	}

	return best
}

// normalizePivotRow scales row to a unit pivot at column col.
//
// The pivot cell is assigned exactly 1 (never pivot·(1/pivot), which can
// miss 1 by one ulp); entries to the RIGHT are multiplied by 1/pivot.
// Entries to the LEFT are deliberately untouched: they hold only sub-ε
// residue from earlier eliminations, and scaling would amplify it.
func normalizePivotRow(row []float64, col int) error {
	inv := 1 / row[col]
	if isNonFinite(inv) {
		return ErrVanishingPivot // subnormal pivot; ε=0 territory
	}

	row[col] = 1
	for j := col + 1; j < len(row); j++ {
		row[j] *= inv
	}

	return nil
}

// eliminateBand clears column col from rows [lo,hi), skipping the pivot row.
// Each target row is updated across its FULL width (matching the textbook
// replacement step), then its pivot-column entry is written as exact 0.
func eliminateBand(rows [][]float64, lo, hi, p, col int) {
	prow := rows[p]
	var factor float64
	var row []float64
	for i := lo; i < hi; i++ {
		if i == p {
			continue
		}
		factor = rows[i][col]
		if factor == 0 {
			continue // already clear; skip the O(c) update
		}
		row = rows[i]
		for j := 0; j < len(row); j++ {
			row[j] -= factor * prow[j]
		}
		row[col] = 0 // exact zero in the pivot column
	}
}

// eliminateParallel splits the row span into contiguous bands and eliminates
// them concurrently. Bands are disjoint and the per-row arithmetic is
// identical to eliminateBand, so the result is bitwise equal to the
// sequential sweep for any worker count.
func eliminateParallel(rows [][]float64, p, col, workers int) error {
	r := len(rows)
	if workers > r {
		workers = r
	}
	chunk := (r + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < r; lo += chunk {
		hi := lo + chunk
		if hi > r {
			hi = r
		}
		lo := lo
		g.Go(func() error {
			eliminateBand(rows, lo, hi, p, col)

			return nil
		})
	}

	// Wait is the per-column barrier; band workers never return errors.
	return g.Wait()
}

// clampResidue zeroes every |v| ≤ eps entry in place. Writing the literal 0
// also normalizes any -0 produced by the elimination arithmetic.
func clampResidue(rows [][]float64, eps float64) {
	for _, row := range rows {
		for j, v := range row {
			if math.Abs(v) <= eps {
				row[j] = 0
			}
		}
	}
}
