// Package rref_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the reduction/solve kernels.
//   • Mirror the helper vocabulary of the matrix package tests so the two
//     suites read the same.

package rref_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinear/matrix"
	"github.com/katalvlaran/lvlinear/rref"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// Notes:
//   - The reduction snapshots input through At on this path; results must
//     stay bitwise equal to the fast path.
type hide struct{ matrix.Matrix }

// emptyShape is a degenerate Matrix implementation with zero-area dims.
// The Dense constructors refuse such shapes, so exercising the degenerate
// branch of the kernels requires a hand-rolled stub.
type emptyShape struct{ r, c int }

func (e emptyShape) Rows() int { return e.r }
func (e emptyShape) Cols() int { return e.c }
func (e emptyShape) At(int, int) (float64, error) {
	return 0, matrix.ErrOutOfRange // unreachable for zero-area shapes
}
func (e emptyShape) Clone() matrix.Matrix { return e }

// MustFromRows BUILDS a *Dense from rows or fails the test (fatal on error).
//
// Behavior highlights:
//   - Primary fixture builder across this suite; keeps tests declarative.
//
// Inputs:
//   - t: test handle; rows: rectangular [][]float64 literal.
//
// Returns:
//   - *matrix.Dense with deep-copied contents.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v) failed: %v", rows, err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity matrix or fails the test.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d) failed: %v", n, err)
	}

	return m
}

// MustFromRowsRelaxed builds a *Dense while admitting NaN/±Inf entries.
// Used to hand malformed numeric payloads to the fail-fast validation.
func MustFromRowsRelaxed(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		t.Fatalf("FromRows(relaxed, %v) failed: %v", rows, err)
	}

	return m
}

// MustReduce runs ToReducedRowEchelonForm or fails the test (fatal on error).
func MustReduce(t *testing.T, m matrix.Matrix, opts ...rref.Option) *matrix.Dense {
	t.Helper()
	res, err := rref.ToReducedRowEchelonForm(m, opts...)
	if err != nil {
		t.Fatalf("ToReducedRowEchelonForm failed: %v", err)
	}

	return res
}

// CompareExact ASSERTS bitwise equality of two matrices (shape + entries).
//
// Implementation:
//   - Stage 1: Compare shapes; mismatch is fatal with both shapes printed.
//   - Stage 2: Walk entries in i→j order; first mismatch is fatal with its
//     coordinates and both values in full precision.
//
// Notes:
//   - Reduced pivot columns carry exact 1s and 0s, so exact comparison is
//     the right default for reduction outputs.
func CompareExact(t *testing.T, got, want matrix.Matrix) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d",
			got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			gv, gErr := got.At(i, j)
			wv, wErr := want.At(i, j)
			if gErr != nil || wErr != nil {
				t.Fatalf("At(%d,%d) errored: got %v, want %v", i, j, gErr, wErr)
			}
			if gv != wv {
				t.Fatalf("entry (%d,%d) mismatch: got %v, want %v", i, j, gv, wv)
			}
		}
	}
}

// sliceClose reports per-entry |a-b| ≤ tol for equal-length slices.
func sliceClose(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= tol) { // NaN-propagating form
			return false
		}
	}

	return true
}

// AssertErrorIs FAILS the test unless errors.Is(err, want).
func AssertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want errors.Is(..., %v)", err, want)
	}
}

// ExpectPanic ASSERTS that fn panics (any payload).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// ExpectPanicMessage ASSERTS that fn panics with exactly the want string.
func ExpectPanicMessage(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		msg, ok := r.(string)
		if !ok || msg != want {
			t.Fatalf("panic = %v, want %q", r, want)
		}
	}()
	fn()
}

// randRows GENERATES a deterministic r×c payload in [-5, 5).
//
// Notes:
//   - Seeded; the same seed always produces the same fixture, so tests that
//     compare two pipelines over "random" data stay reproducible.
func randRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		row := make([]float64, c)
		for j := range row {
			row[j] = rng.Float64()*10 - 5
		}
		rows[i] = row
	}

	return rows
}

// ---------- bench-only helpers (b *testing.B twins) ----------

// randDense builds a deterministic r×c *Dense for benchmarks.
func randDense(b *testing.B, r, c int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.FromRows(randRows(r, c, seed))
	if err != nil {
		b.Fatalf("FromRows failed: %v", err)
	}

	return m
}
