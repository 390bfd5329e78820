// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlinear/matrix"
)

// 1) TestDefaultOptions_Documented verifies that gatherOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.Eps != matrix.DefaultEpsilon {
		t.Fatalf("eps default mismatch: got %v, want %v", o.Eps, matrix.DefaultEpsilon)
	}
	if o.ValidateNaNInf != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf, matrix.DefaultValidateNaNInf)
	}
}

// 2) TestOptions_OrderAndIdempotence ensures each Option toggles exactly its intended field.
func TestOptions_OrderAndIdempotence(t *testing.T) {
	o1 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf()) // last wins
	if o1.ValidateNaNInf != false {
		t.Fatalf("last-writer-wins failed: validateNaNInf=%v, want false", o1.ValidateNaNInf)
	}
	o2 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	if o2.ValidateNaNInf != true {
		t.Fatalf("last-writer-wins failed: validateNaNInf=%v, want true", o2.ValidateNaNInf)
	}
}

// 3) epsilon setter must store the value exactly and be idempotent.
func TestWithEpsilon_SetsValue(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(1e-6), matrix.WithEpsilon(1e-6))
	if o.Eps != 1e-6 {
		t.Fatalf("eps mismatch: got %v, want %v", o.Eps, 1e-6)
	}

	// Zero is a legal tolerance (strict comparisons).
	oz := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(0))
	if oz.Eps != 0 {
		t.Fatalf("eps=0 must be stored verbatim, got %v", oz.Eps)
	}
}

// 4) validateNaNInf toggles must flip exactly one flag.
func TestValidateNaNInfToggles(t *testing.T) {
	o1 := matrix.GatherOptionsSnapshot_TestOnly()
	if o1.ValidateNaNInf != true {
		t.Fatalf("default validateNaNInf expected true, got %v", o1.ValidateNaNInf)
	}

	o2 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf())
	if o2.ValidateNaNInf != false {
		t.Fatalf("WithNoValidateNaNInf expected false, got %v", o2.ValidateNaNInf)
	}

	o3 := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf())
	if o3.ValidateNaNInf != true {
		t.Fatalf("WithValidateNaNInf expected true, got %v", o3.ValidateNaNInf)
	}

	// Toggling the policy must leave eps untouched.
	if o2.Eps != matrix.DefaultEpsilon {
		t.Fatalf("policy toggle must not change eps: got %v", o2.Eps)
	}
}

// 5) WithEpsilon must panic with stable message on invalid inputs.
func TestPanics_WithEpsilon_Message(t *testing.T) {
	ExpectPanicMessage(t, matrix.PanicEpsilonInvalid_TestOnly, func() { _ = matrix.WithEpsilon(math.NaN()) })
	ExpectPanicMessage(t, matrix.PanicEpsilonInvalid_TestOnly, func() { _ = matrix.WithEpsilon(-1) })
	ExpectPanicMessage(t, matrix.PanicEpsilonInvalid_TestOnly, func() { _ = matrix.WithEpsilon(math.Inf(1)) })
	ExpectPanicMessage(t, matrix.PanicEpsilonInvalid_TestOnly, func() { _ = matrix.WithEpsilon(math.Inf(-1)) })
}

// 6) TestPanics validates parameter guards via ExpectPanic (any panic value).
func TestPanics(t *testing.T) {
	ExpectPanic(t, func() { _ = matrix.WithEpsilon(math.NaN()) })
	ExpectPanic(t, func() { _ = matrix.WithEpsilon(-0.001) })
}
