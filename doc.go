// Package lvlinear is your in-memory toolkit for dense real matrices and
// Gauss–Jordan elimination — build a matrix, reduce it to Reduced Row
// Echelon Form, read off rank and solutions.
//
// 🚀 What is lvlinear?
//
//	A small, deterministic linear-algebra library built around one core
//	algorithm and the plumbing it deserves:
//		• Dense matrices: immutable row-major float64 values with strict
//		  shape & finiteness validation
//		• RREF: Gauss–Jordan elimination with selectable pivoting,
//		  near-zero clamping and an optional parallel elimination step
//		• Derived answers: rank, reduced-form checks, unique-solution solving
//		• Display: stable `| v1 v2 ... vm |` rendering for humans and tests
//
// ✨ Why choose lvlinear?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no map iteration, reproducible output
//   - Safe by contract – sentinel errors via errors.Is, no panics on user input
//   - Value semantics – inputs are never mutated; every transform allocates fresh
//
// Everything is organized under two subpackages:
//
//	matrix/ — the Dense value type: construction, equality, rendering,
//	          element-wise and product kernels, validators
//	rref/   — the Reducer: ToReducedRowEchelonForm, Rank, IsReduced, Solve
//
// Quick sketch:
//
//	| 1   3 |                | 1 0 |
//	| 2 1.5 |   ── RREF ──▶  | 0 1 |
//	|-2-1.5 |                | 0 0 |
//
// Dive into the examples/ directory for full walkthroughs.
//
//	go get github.com/katalvlaran/lvlinear
package lvlinear
