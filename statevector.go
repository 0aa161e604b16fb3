// statevector.go
package montyhall

import (
	"fmt"
	"math"
	"math/cmplx"
)

// NormTolerance bounds how far the sum of squared amplitude magnitudes
// may drift from 1 before the vector is considered corrupt.
const NormTolerance = 1e-9

/*
StateVector holds the complex amplitudes of the prize register over the
two-qubit computational basis. The three door labels carry the physical
state; the structurally unused label `11` must stay at zero amplitude.

A StateVector is exclusively owned by the trial mutating it and is never
shared across goroutines.
*/
type StateVector struct {
	amplitudes [numBasisStates]complex128

	// Collapse is cached so repeated measurements of a collapsed state
	// re-read the outcome instead of consuming randomness.
	collapsed bool
	outcome   Door
}

/*
NewStateVector builds a vector from raw amplitudes, one per basis label
in order 00, 01, 10, 11. The unused label must hold zero amplitude. The
vector is renormalized before use; amplitudes whose squared magnitudes
sum beyond NormTolerance away from 1 fail with a NormalizationError.
*/
func NewStateVector(amplitudes []complex128) (*StateVector, error) {
	if len(amplitudes) != numBasisStates {
		return nil, fmt.Errorf("state vector needs %d amplitudes, got %d", numBasisStates, len(amplitudes))
	}
	if amplitudes[unusedBasisState] != 0 {
		return nil, fmt.Errorf("basis state %s is structurally unused and must hold zero amplitude", basisLabels[unusedBasisState])
	}

	v := &StateVector{}
	copy(v.amplitudes[:], amplitudes)

	norm := v.Norm()
	if math.Abs(norm-1) > NormTolerance {
		return nil, &NormalizationError{Sum: norm, Tolerance: NormTolerance}
	}

	// Scrub the residual drift so downstream reads start exact.
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range v.amplitudes {
		v.amplitudes[i] *= scale
	}

	return v, nil
}

// Amplitudes returns a copy of the amplitude register.
func (v *StateVector) Amplitudes() [numBasisStates]complex128 {
	return v.amplitudes
}

/*
Probabilities returns the squared amplitude magnitudes per basis label,
the Born-rule weights a measurement samples from.
*/
func (v *StateVector) Probabilities() [numBasisStates]float64 {
	var probs [numBasisStates]float64
	for i, amplitude := range v.amplitudes {
		p := cmplx.Abs(amplitude)
		probs[i] = p * p
	}
	return probs
}

// Norm is the sum of squared amplitude magnitudes over all basis labels.
func (v *StateVector) Norm() float64 {
	total := 0.0
	for _, p := range v.Probabilities() {
		total += p
	}
	return total
}

// CheckNormalization fails with a NormalizationError when the vector has
// drifted beyond NormTolerance.
func (v *StateVector) CheckNormalization() error {
	norm := v.Norm()
	if math.Abs(norm-1) > NormTolerance {
		return &NormalizationError{Sum: norm, Tolerance: NormTolerance}
	}
	return nil
}

/*
Collapsed reports whether a measurement has already fixed this vector to
a definite door, and which one.
*/
func (v *StateVector) Collapsed() (Door, bool) {
	return v.outcome, v.collapsed
}

// collapseTo rewrites the register as the definite state for one door:
// amplitude 1 on its label, 0 elsewhere.
func (v *StateVector) collapseTo(door Door) {
	for i := range v.amplitudes {
		v.amplitudes[i] = 0
	}
	v.amplitudes[door] = 1
	v.collapsed = true
	v.outcome = door
}
