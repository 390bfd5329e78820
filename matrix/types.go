// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by constructors and dense kernels.
// This file intentionally contains ONLY the public Matrix contract.
// Errors, options and validators live in dedicated files (errors.go,
// options.go, validators.go) per the global conventions.
package matrix

// Matrix represents a two-dimensional read-only array of float64 values.
// The interface is deliberately mutation-free: a Matrix is a value from the
// caller's perspective, and every transform in this module returns a fresh
// allocation instead of writing through the input.
//
// Rationale:
//   - Exact-equality comparison downstream requires stable values; a shared
//     mutable buffer would silently break that contract.
//   - Read-only windows (View) can implement Matrix safely because no Set
//     exists to write through shared storage.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
