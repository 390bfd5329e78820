// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - For augmented-system pipelines ([A | b]), start from Augment/HStack.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
//
// Note: Returns (*Dense, error) to surface ErrBadShape.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a fixed point for reduction invariance tests.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	// Direct buffer writes are safe here: I is freshly built and not yet shared.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	// Return the identity matrix.
	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity(m.Rows()) // returns (*Dense, error)
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
// AI-Hints: Prefer passing *Dense operands for single flat-loop fast-path.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
//
// AI-Hints: Prefer Dense to unlock cache-friendly fast path.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
//
// AI-Hints: Good for small helpers and chaining.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
// Complexity: O(rc).
//
// AI-Hints: For repeated calls with same shape, reuse x slices outside.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// HStack is an alias for Augment: column-wise concatenation [A | B].
// Complexity: O(r*(ca+cb)).
func HStack(a, b Matrix) (*Dense, error) { return Augment(a, b) }

// ---------- Comparison & formatting (exact; no tolerances hidden inside) ----------

// Equal reports exact element-wise equality of a and b.
// Two matrices are equal iff both are non-nil, shapes match, and every pair of
// entries compares == under IEEE-754 (so NaN anywhere yields false, and
// 0.0 == -0.0 holds). Any read failure on a foreign implementation yields false.
//
// Implementation:
//   - Stage 1: nil/shape screening (false on any mismatch; never an error).
//   - Stage 2: *Dense×*Dense flat comparison; otherwise fixed i→j At reads.
//
// Complexity: O(r*c) worst case with early exit on first difference.
//
// AI-Hints:
//   - Use AllClose for tolerant comparison; Equal is strict bit-level ==.
func Equal(a, b Matrix) bool {
	// Nil operands never compare equal.
	if a == nil || b == nil {
		return false
	}
	// Delegate to the Dense comparator when possible (flat fast-path inside).
	if da, ok := a.(*Dense); ok {
		return da.Equals(b)
	}
	if db, ok := b.(*Dense); ok {
		return db.Equals(a) // exact equality is symmetric
	}

	// Generic path: shape screen, then fixed i→j reads on both operands.
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false
	}
	var av, bv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv { // NaN breaks equality here, as documented
				return false
			}
		}
	}

	return true
}

// Render pretty-prints m in the pipe form, one line per row:
//
//	| v1 v2 ... vm |
//
// Values use %g formatting; every row line ends with '\n'.
// Delegates to (*Dense).Render when possible; otherwise renders via At with
// the same format literals so output is identical across implementations.
//
// Errors:
//   - ErrNilMatrix on nil input; At failures from foreign implementations.
//
// Complexity: O(r*c) formatting work.
func Render(m Matrix) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opRender, err)
	}
	// Fast path: the Dense renderer walks its flat buffer directly.
	if d, ok := m.(*Dense); ok {
		return d.Render(), nil
	}

	// Fallback: same literals, At-based reads, fixed i→j order.
	var (
		sb         strings.Builder
		rows, cols = m.Rows(), m.Cols()
		v          float64
		err        error
	)
	for i := 0; i < rows; i++ {
		sb.WriteString(_fmtPipeOpen)
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return "", matrixErrorf(opRender, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if j > 0 {
				sb.WriteString(_fmtPipeSep)
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtPipeClose)
	}

	return sb.String(), nil
}
