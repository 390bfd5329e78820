package rref

import (
	"math"

	"github.com/katalvlaran/lvlinear/matrix"
)

// Solve finds the unique x with A·x = b, if one exists.
// MAIN DESCRIPTION:
//   - Classic augmented-matrix solver: reduce [A | b] to RREF and read the
//     solution off the trailing column. The same tolerance ε that drives
//     pivot selection also classifies the system afterwards.
//
// Implementation Stages:
//   - Stage 1: fail-fast validation of A (nil → degenerate → non-finite)
//     and b (nil, length must equal A's row count, finite entries).
//   - Stage 2: build [A | b] via matrix.Augment and run the Jordan sweep.
//   - Stage 3: classify the reduced system:
//     (a) a row whose coefficient part vanishes (all |v| ≤ ε) while its
//     augmented entry does not → inconsistent, ErrUnsolvable;
//     (b) fewer than Cols(A) coefficient pivots → infinitely many
//     solutions, ErrUnderdetermined;
//     (c) otherwise the coefficient block reduced to the identity and
//     row i's trailing entry is x[i].
//
// Behavior highlights:
//   - Overdetermined systems (more rows than unknowns) solve fine when the
//     extra equations are consistent; the surplus rows reduce to zero.
//   - A reduction of an inconsistent system may pivot on the augmented
//     column and leave a [0 … 0 | 1] row; check (a) recognizes exactly that.
//
// Inputs:
//   - a: coefficient matrix, any rectangular shape.
//   - b: right-hand side, len(b) == a.Rows().
//   - opts: same options as ToReducedRowEchelonForm.
//
// Returns:
//   - []float64 of length a.Cols(): the unique solution.
//
// Errors:
//   - matrix.ErrNilMatrix / ErrDegenerateMatrix / matrix.ErrNaNInf /
//     matrix.ErrDimensionMismatch (validation),
//   - ErrUnsolvable       (no solution),
//   - ErrUnderdetermined  (solution space has positive dimension),
//   - ErrVanishingPivot   (1/pivot overflows; only reachable with ε=0).
//
// Complexity:
//   - Time O(r·(c+1)·min(r,c+1)), Space O(r·(c+1)).
//
// AI-Hints:
//   - For the reduced tableau itself, call ToReducedRowEchelonForm on
//     matrix.Augment(a, rhs) and inspect rows directly.
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	if err := validateInput(a); err != nil {
		return nil, rrefErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, rrefErrorf(opSolve, err)
	}

	// Shape b as an r×1 column; FromFlat also screens NaN/±Inf in b.
	rhs, err := matrix.FromFlat(a.Rows(), 1, b)
	if err != nil {
		return nil, rrefErrorf(opSolve, err)
	}

	aug, err := matrix.Augment(a, rhs)
	if err != nil {
		return nil, rrefErrorf(opSolve, err)
	}

	rows, err := snapshotRows(aug)
	if err != nil {
		return nil, rrefErrorf(opSolve, err)
	}

	if _, err = reduceInPlace(rows, o); err != nil {
		return nil, rrefErrorf(opSolve, err)
	}
	if o.clampZero {
		clampResidue(rows, o.eps)
	}

	// Classification walks the reduced tableau; n is the unknown count and
	// column n holds the reduced right-hand side.
	r, n := len(rows), a.Cols()

	rankA := 0
	var i, j int
	var coeffLive bool
	for i = 0; i < r; i++ {
		coeffLive = false
		for j = 0; j < n; j++ {
			if math.Abs(rows[i][j]) > o.eps {
				coeffLive = true

				break
			}
		}
		if coeffLive {
			rankA++

			continue
		}
		// 0 = nonzero: the original equations contradict each other.
		if math.Abs(rows[i][n]) > o.eps {
			return nil, rrefErrorf(opSolve, ErrUnsolvable)
		}
	}

	if rankA < n {
		return nil, rrefErrorf(opSolve, ErrUnderdetermined)
	}

	// Full column rank and consistent: the coefficient block of rows 0..n-1
	// is the identity, so the trailing column is the solution in order.
	x := make([]float64, n)
	for i = 0; i < n; i++ {
		x[i] = rows[i][n]
	}

	return x, nil
}
