// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Preserve value semantics: construction deep-copies, transforms allocate fresh,
//     no public mutator exists on a constructed matrix.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_ops.go): operate on the flat data slice directly.
//   - Use View(r0,c0,h,w) for read-only windows; use Induced(rows, cols) to materialize a copy.
//   - DefaultValidateNaNInf is on; construct only finite values unless you explicitly disable upstream.
//
// Complexity quicksheet:
//   - FromRows/FromFlat: O(r*c) copy; At: O(1); Clone: O(r*c); View: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxCol    = "Col"     // method tag used in error wrappers
	ctxMap    = "Map"     // method tag used in error wrappers
	ctxView   = "View"    // ctor tag for Dense.View
	ctxInduce = "Induced" // ctor tag for Dense.Induced

	ctorFromRows = "FromRows" // ctor tag for FromRows
	ctorFromFlat = "FromFlat" // ctor tag for FromFlat
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "

	_fmtPipeOpen  = "| "
	_fmtPipeClose = " |\n"
	_fmtPipeSep   = " "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Inputs:
//   - method: context tag (ctxAt/ctxRow/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Returns:
//   - error: wrapped with context
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf records the ingestion policy the value was built under
//     (default from options.go); Clone/Induced/View preserve it.
//
// A Dense is immutable once constructed: no public method writes into data.
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only for Induced zero-area results)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf at construction when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
	_ Matrix       = (*View)(nil) // read-only windows are matrices too
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//   - A zero matrix is already in reduced form; it is a legal standalone value.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//   - opts: numeric policy overrides (WithNoValidateNaNInf, ...)
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer FromRows/FromFlat to build a matrix with content in one step.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromRows builds a Dense from a caller-supplied nested slice (row by row).
// MAIN DESCRIPTION:
//   - Canonical ingestion path: validate shape, deep-copy, enforce numeric policy.
//
// Implementation:
//   - Stage 1: ValidateRect rejects empty and ragged input.
//   - Stage 2: resolve options; allocate a flat buffer of len rows*cols.
//   - Stage 3: copy row by row; under the default policy every entry is
//     checked for NaN/±Inf and rejected with coordinates.
//
// Behavior highlights:
//   - Input is deep-copied: later mutation of the caller's slices never
//     reaches the constructed value.
//   - Row lengths are taken from the first row; any drift is ErrRaggedRows.
//
// Inputs:
//   - rows: nested slice, outer = rows, inner = column entries.
//   - opts: numeric policy overrides.
//
// Returns:
//   - *Dense: independent matrix with the supplied content.
//
// Errors:
//   - ErrBadShape (no rows or empty first row).
//   - ErrRaggedRows (inconsistent row lengths).
//   - ErrNaNInf (non-finite entry under the default policy).
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the entry point matching "construct from nested sequences";
//     use FromFlat when the data is already contiguous.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	// Shape gate first: empty and ragged input never allocates.
	if err := ValidateRect(rows); err != nil {
		return nil, matrixErrorf(ctorFromRows, err)
	}
	o := gatherOptions(opts...)

	r, c := len(rows), len(rows[0])
	buf := make([]float64, r*c)

	// Deterministic row-by-row copy with optional finite-only enforcement.
	var base int
	for i := 0; i < r; i++ {
		base = i * c
		for j := 0; j < c; j++ {
			v := rows[i][j]
			if o.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctorFromRows, i, j, ErrNaNInf)
			}
			buf[base+j] = v
		}
	}

	return &Dense{
		r:              r,
		c:              c,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromFlat builds a Dense from a contiguous row-major buffer.
// MAIN DESCRIPTION:
//   - Ingestion for flat data: validate shape and length, deep-copy, enforce policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 (ErrBadShape) and len(data)==rows*cols
//     (ErrDimensionMismatch).
//   - Stage 2: resolve options; copy the buffer; scan for NaN/±Inf under policy.
//
// Behavior highlights:
//   - data is copied, never aliased; the caller keeps ownership of its slice.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - data: row-major values, len == rows*cols.
//   - opts: numeric policy overrides.
//
// Returns:
//   - *Dense or a sentinel error.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromFlat(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctorFromFlat, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctorFromFlat, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	buf := make([]float64, len(data))
	copy(buf, data) // deep copy; no aliasing with the caller

	if o.validateNaNInf {
		for idx, v := range buf {
			if isNonFinite(v) {
				return nil, denseErrorf(ctorFromFlat, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Behavior highlights:
//   - Returns a sentinel (ErrOutOfRange) without adding context; public
//     methods (At/Row/Col) will wrap with coordinates and method name.
//
// Returns:
//   - (offset, nil) on success; (0, ErrOutOfRange) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep unexported to avoid accidental panics at public surface.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Returns:
//   - (value, nil) on success; (0, ErrOutOfRange) on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Row returns an independent copy of row i.
// Mutating the returned slice never affects the matrix.
//
// Errors: ErrOutOfRange when i is invalid.
// Complexity: Time O(c), Space O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c]) // contiguous row slice

	return out, nil
}

// Col returns an independent copy of column j.
// Mutating the returned slice never affects the matrix.
//
// Errors: ErrOutOfRange when j is invalid.
// Complexity: Time O(r), Space O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ { // strided walk down the column
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data/policy.
//
// Implementation:
//   - Stage 1: allocate new buffer len==r*c.
//   - Stage 2: copy data and flags.
//
// Behavior highlights:
//   - Independence: the clone shares no storage with the original.
//
// Returns:
//   - Matrix: *Dense implementing Matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Returned dynamic type is *Dense.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy bytes

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Equals reports whether other has identical shape and exactly equal entries.
// MAIN DESCRIPTION:
//   - Element-wise exact floating-point comparison (no tolerance).
//
// Implementation:
//   - Stage 1: nil/shape gate — false on nil or dimension mismatch.
//   - Stage 2: fast-path when other is *Dense — single flat == sweep.
//     Otherwise fall back to At with fixed i→j order; any read error is false.
//
// Behavior highlights:
//   - Exact IEEE comparison by contract: NaN entries make matrices unequal
//     (even to themselves), and -0 equals +0. For tolerant comparison use
//     AllClose.
//
// Inputs:
//   - other: any Matrix (nil allowed; yields false).
//
// Returns:
//   - bool: true iff same dimensions and all entries exactly equal.
//
// Determinism:
//   - Flat 0..n-1 sweep or fixed i→j fallback; first difference short-circuits.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Exactness is fragile under elimination roundoff; reduced results are
//     clamped near zero precisely so this comparison stays usable in tests.
func (m *Dense) Equals(other Matrix) bool {
	if other == nil {
		return false
	}
	if m.r != other.Rows() || m.c != other.Cols() {
		return false
	}

	// Fast path: flat buffer comparison.
	if d, ok := other.(*Dense); ok {
		for idx, v := range m.data {
			if v != d.data[idx] { // exact ==; NaN breaks equality on purpose
				return false
			}
		}

		return true
	}

	// Fallback: interface path with fixed i→j order.
	var (
		v   float64
		err error
	)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if v, err = other.At(i, j); err != nil {
				return false // unreadable cell cannot be equal
			}
			if m.data[i*m.c+j] != v {
				return false
			}
		}
	}

	return true
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//   - Distinct from Render: String is the Go-style `[a, b]` dump, Render is
//     the stable display contract.
//
// Returns:
//   - string: multi-line representation of matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Render produces the stable human-readable grid: one row per line, entries
// space-separated between pipes, e.g. "| 1 0 |\n| 0 1 |\n".
// MAIN DESCRIPTION:
//   - Display contract for matrices; deterministic and locale-free.
//
// Implementation:
//   - Stage 1: iterate rows/cols in fixed order.
//   - Stage 2: format entries with %g (shortest exact form; no trailing zeros).
//
// Returns:
//   - string: newline-terminated row lines in `| v1 v2 ... vm |` form.
//
// Determinism:
//   - Fixed traversal order; %g formatting is value-determined.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - Golden-file tests can rely on this output verbatim.
func (m *Dense) Render() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtPipeOpen) // open row with "| "
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtPipeSep) // single space between entries
			}
		}
		b.WriteString(_fmtPipeClose) // close row with " |\n"
	}

	return b.String()
}

// View creates a no-copy read-only window [r0:r0+rows, c0:c0+cols) over the
// same storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage).
//
// Implementation:
//   - Stage 1: validate window bounds; zero-area windows are rejected.
//   - Stage 2: return View with offsets.
//
// Behavior highlights:
//   - The window is read-only, so sharing storage cannot violate value
//     semantics; Clone materializes an independent Dense when needed.
//
// Inputs:
//   - r0,c0: top-left offsets; rows, cols: window size (>0).
//
// Returns:
//   - *View or error.
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use for windowed reads; copy via Clone only when lifetime must be independent.
func (m *Dense) View(r0, c0, rows, cols int) (*View, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &View{
		base: m,    // share storage
		r0:   r0,   // top row in base
		c0:   c0,   // left col in base
		r:    rows, // view height
		c:    cols, // view width
	}, nil
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: handle zero-sized result (legal).
//   - Stage 2: allocate result via NewDense.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - Policy is preserved from the base (validateNaNInf).
//   - Duplicates in index sets are allowed (repeated rows/cols in the result).
//
// Inputs:
//   - rowsIdx: indices into [0..m.r).
//   - colsIdx: indices into [0..m.c).
//
// Returns:
//   - *Dense: independent copy with size len(rowsIdx)×len(colsIdx).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Determinism:
//   - Fixed nested loops i→j.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
//
// Notes:
//   - Zero-area returns legal Dense with zero-length buffer.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	// Zero-area: legal Dense, shared policy
	if rp == 0 || cp == 0 {
		return &Dense{
			r:              rp,
			c:              cp,
			data:           make([]float64, 0),
			validateNaNInf: m.validateNaNInf,
		}, nil
	}

	// Allocate the result with the strict constructor.
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, err
	}
	// Preserve numeric policy from the base (critical for consistency).
	res.validateNaNInf = m.validateNaNInf

	// Deterministic double loop; direct offset math in both matrices.
	var i, j int
	var ri, cj int
	var src, dst int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			// Direct linear index in source and destination.
			src = ri*m.c + cj // source offset in base
			dst = i*cp + j    // destination offset in result
			res.data[dst] = m.data[src]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops - double for-loop over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Behavior highlights:
//   - Read-only with respect to the callback; no allocations; deterministic order.
//
// Inputs:
//   - f: callback returning continue/stop flag (false to stop early).
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use to accumulate stats without temporary allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset
	var v float64      // temporary for current value

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			v = m.data[base+j] // read current element
			if !f(i, j, v) {   // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// Map returns a transformed copy where each element is f(i,j,v).
// MAIN DESCRIPTION:
//   - Pure element-wise map with policy enforcement and deterministic order.
//
// Implementation:
//   - Stage 1: allocate the result clone.
//   - Stage 2: double loop over rows then cols; compute new value via f.
//   - Stage 3: reject NaN/Inf if policy enabled; write into the result.
//
// Behavior highlights:
//   - The receiver is never written: all-or-nothing semantics by construction.
//   - Respects validateNaNInf (rejects NaN/±Inf produced by f when enabled).
//
// Inputs:
//   - f: transformer from (i,j,v) to new value.
//
// Returns:
//   - *Dense: fresh matrix with transformed entries.
//   - error: ErrNaNInf when transformer produced non-finite (if policy ON).
//
// Determinism:
//   - Fixed i→j order; side effects are predictable.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Keep transforms pure; avoid capturing external mutable state.
func (m *Dense) Map(f func(i, j int, v float64) float64) (*Dense, error) {
	res := &Dense{
		r:              m.r,
		c:              m.c,
		data:           make([]float64, len(m.data)),
		validateNaNInf: m.validateNaNInf,
	}

	var i, j, base int // predeclare loop counters and base offset
	var nv float64     // new value
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j]) // compute new value
			if m.validateNaNInf && isNonFinite(nv) {
				return nil, denseErrorf(ctxMap, i, j, ErrNaNInf) // wrap with coordinates
			}
			res.data[base+j] = nv
		}
	}

	return res, nil
}

// View is a non-owning read-only window into a Dense (shared storage).
// It implements Matrix: with no mutator in the contract a shared buffer
// cannot be observed changing through the window.
type View struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
// Complexity: O(1).
func (v *View) Rows() int { return v.r }

// Cols returns the number of columns in the view.
// Complexity: O(1).
func (v *View) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe read within the view bounds; translates to base coordinates.
//
// Implementation:
//   - Stage 1: check 0≤i<r and 0≤j<c.
//   - Stage 2: return base.data[(r0+i)*base.c + (c0+j)].
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *View) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	// Translate to base coordinates and load directly from the flat buffer.
	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Clone materializes the window as an independent *Dense.
// The copy shares no storage with the base and carries its numeric policy.
// Complexity: Time O(r*c), Space O(r*c).
func (v *View) Clone() Matrix {
	cp := make([]float64, v.r*v.c)
	var i, j int
	for i = 0; i < v.r; i++ { // row-by-row window copy
		for j = 0; j < v.c; j++ {
			cp[i*v.c+j] = v.base.data[(v.r0+i)*v.base.c+(v.c0+j)]
		}
	}

	return &Dense{
		r:              v.r,
		c:              v.c,
		data:           cp,
		validateNaNInf: v.base.validateNaNInf,
	}
}
