// Package rref reduces real rectangular matrices to Reduced Row Echelon Form
// (RREF) via Gauss-Jordan elimination, with strict validation and
// reproducible numerics.
//
// 🚀 What is RREF?
//
//	A matrix is in reduced row echelon form when every nonzero row starts
//	with a unit pivot, each pivot sits strictly to the right of the pivot
//	above, pivot columns are zero everywhere else, and zero rows sink to
//	the bottom.  RREF is the workhorse behind:
//	  • solving linear systems ([A | b] → read the solution off the tail)
//	  • rank computation and consistency analysis
//	  • detecting linear dependence between measurement vectors
//	  • teaching and verifying hand-worked elimination
//
// ✨ Key features:
//   - deterministic Gauss-Jordan sweep: fixed column order, fixed row scans
//   - partial pivoting by maximum magnitude (default) or first-nonzero
//     (legacy tie-break), selectable per call
//   - near-zero clamping of elimination residue (|v| ≤ ε → 0), switchable
//   - optional bounded parallel row elimination (WithWorkers); results are
//     bitwise identical to the sequential sweep
//   - strict fail-fast validation: nil, degenerate shapes and NaN/±Inf
//     entries are rejected before any arithmetic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlinear/rref"
//
//	m, _ := matrix.FromRows([][]float64{
//	  {1, 3},
//	  {2, 1.5},
//	  {-2, -1.5},
//	})
//
//	// reduce with defaults (max-magnitude pivoting, ε=1e-9, clamping on)
//	r, err := rref.ToReducedRowEchelonForm(m)
//
//	// or tune the sweep
//	r, err = rref.ToReducedRowEchelonForm(m,
//	  rref.WithEpsilon(1e-12),
//	  rref.WithFirstNonZeroPivoting(),
//	  rref.WithWorkers(4),
//	)
//
// Performance:
//
//   - Time:   O(r·c·min(r,c))
//   - Memory: O(r·c) for the working copy (inputs are never mutated)
//
// See examples in example_test.go for solving, rank and idempotence patterns.
package rref
