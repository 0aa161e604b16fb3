package montyhall

import (
	"math/rand"
)

/*
MeasurementOperator samples definite outcomes from superposed state
vectors according to the Born rule and collapses them in place.

The operator owns no state besides its random source, which is injected
so that trials can run deterministically under a fixed seed and in
parallel without contending on a shared generator.
*/
type MeasurementOperator struct {
	rng *rand.Rand
}

func NewMeasurementOperator(rng *rand.Rand) *MeasurementOperator {
	return &MeasurementOperator{rng: rng}
}

/*
Measure collapses the vector to one definite door and returns it.

Parameters:
  - v: The prize register to measure. It is mutated: after a successful
    measurement it holds amplitude 1 on the sampled label and 0 elsewhere.

Returns:
  - Door: The measured door.
  - error: A NormalizationError when the vector has drifted out of
    normalization; such a vector must not be sampled.

The sample is standard inverse-CDF: one uniform draw in [0,1), then a
walk over the basis labels in fixed order accumulating squared
magnitudes until the cumulative probability exceeds the draw. When the
walk exhausts without crossing (float dust can leave the total a hair
under the draw) the outcome falls back to the last label holding any
probability. Measuring an already-collapsed vector re-reads the cached
outcome and consumes no randomness, which makes measurement idempotent.
*/
func (m *MeasurementOperator) Measure(v *StateVector) (Door, error) {
	if door, done := v.Collapsed(); done {
		return door, nil
	}

	if err := v.CheckNormalization(); err != nil {
		return 0, err
	}

	probs := v.Probabilities()
	r := m.rng.Float64()

	cumulative := 0.0
	lastLive := -1
	measured := -1
	for label, p := range probs {
		if p > 0 {
			lastLive = label
		}
		cumulative += p
		if r < cumulative {
			measured = label
			break
		}
	}
	if measured < 0 {
		// Fallback collapse when the walk exhausts.
		measured = lastLive
	}

	door := Door(measured)
	v.collapseTo(door)
	return door, nil
}
