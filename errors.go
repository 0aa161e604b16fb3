package montyhall

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChoice reports a door outside {0, 1, 2}.
	ErrInvalidChoice = errors.New("door choice outside the valid range")

	// ErrInvalidTrialCount reports a non-positive trial count. It aborts
	// an estimate before any trial runs.
	ErrInvalidTrialCount = errors.New("trial count must be positive")

	// ErrUnknownRegime reports a regime selector that names none of the
	// three experimental configurations.
	ErrUnknownRegime = errors.New("unknown regime")

	// ErrExcessiveDiscards reports that too many trials were thrown away
	// for the estimate to be trusted. Discards at that rate point to a
	// defect in state construction, not sampling noise.
	ErrExcessiveDiscards = errors.New("discarded trial fraction exceeds configured limit")

	// ErrInvalidConfidence reports a confidence level outside (0, 1).
	ErrInvalidConfidence = errors.New("confidence level must be inside (0, 1)")

	// ErrTrialFinished reports a Step call on a trial already at done.
	ErrTrialFinished = errors.New("trial already finished")
)

/*
NormalizationError reports a state vector whose squared amplitude
magnitudes no longer sum to 1 within tolerance. A trial that observes
one is discarded rather than counted, so accumulated floating-point
drift can never silently skew a tally.
*/
type NormalizationError struct {
	Sum       float64
	Tolerance float64
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf(
		"state vector out of normalization: squared magnitudes sum to %.12f (tolerance %g)",
		e.Sum, e.Tolerance,
	)
}
