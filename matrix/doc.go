// Package matrix offers dense real-valued matrices and the operations the
// reduction pipeline is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container with strict constructors
//     (FromRows, FromFlat, NewDense) and an immutable public surface.
//   - Element access and extraction (At, Row, Col, View, Induced, Map).
//   - Arithmetic kernels (Add, Sub, Scale, Mul, Transpose, MatVec, Augment)
//     plus exact (Equal) and tolerant (AllClose) comparison.
//   - Rendering: String for the Go-style dump, Render for the `| v1 ... vm |`
//     grid used in logs and golden tests.
//
// All kernels allocate fresh results and never mutate their operands; loop
// orders are fixed, so outputs are reproducible run to run.
//
// See the examples in this package and rref for usage patterns.
package matrix
