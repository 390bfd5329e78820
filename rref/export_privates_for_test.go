package rref

// Test-Bridge (White-Box) for Internal Options and Panic Messages
//
// Purpose:
//   - Expose the internal options snapshot and panic-message constants to
//     rref_test ONLY, without widening the prod API.
//   - The _test.go suffix keeps this file out of production builds while the
//     rref package name grants white-box access.
//
// Provided Surface:
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly: a stable, read-only
//     view of internal Options for black-box tests.
//   - Panic*_TestOnly constants: stable panic messages (no magic strings).
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf(...) accordingly (tests will catch drift).

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly  = panicEpsilonInvalid
	PanicPivotingInvalid_TestOnly = panicPivotingInvalid
	PanicWorkersInvalid_TestOnly  = panicWorkersInvalid
)

// OptionsSnapshot mirrors the private Options fields for assertions.
type OptionsSnapshot struct {
	Eps       float64
	Pivoting  Pivoting
	ClampZero bool
	Workers   int
}

// GatherOptionsSnapshot_TestOnly folds opts exactly like the kernels do and
// returns the resulting state as a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// snapshotOf converts the private Options into the exported snapshot.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:       o.eps,
		Pivoting:  o.pivoting,
		ClampZero: o.clampZero,
		Workers:   o.workers,
	}
}
