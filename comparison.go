package montyhall

import "fmt"

/*
ReferenceProbabilities returns the published stay and switch figures a
regime is measured against: 1/3 and 2/3 for the classical game, 1/3
and 1/3 when the prize register is never collapsed mid-game, and the
experimentally reported 0.3246 and 0.6617 when it is. Estimates should
land near these up to sampling error.
*/
func ReferenceProbabilities(regime Regime) (stay, switched float64) {
	switch regime {
	case RegimeClassical:
		return 1.0 / 3, 2.0 / 3
	case RegimeQuantumNoMeasurement:
		return 1.0 / 3, 1.0 / 3
	case RegimeQuantumWithMeasurement:
		return 0.3246, 0.6617
	}
	return 0, 0
}

/*
Comparison bundles one estimate per regime, all produced from the same
seed and trial budget, so the three configurations can be read side by
side the way the original experiment reports them.
*/
type Comparison struct {
	Seed      int64
	Requested int64
	Estimates []Estimate
}

// CompareRegimes estimates every regime under one seed and budget.
func CompareRegimes(seed int64, trialCount int, config *Config) (Comparison, error) {
	estimator := NewEstimator(seed, config)

	comparison := Comparison{Seed: seed, Requested: int64(trialCount)}
	for _, regime := range Regimes() {
		estimate, err := estimator.Estimate(regime, trialCount)
		if err != nil {
			return Comparison{}, fmt.Errorf("estimate %s: %w", regime, err)
		}
		comparison.Estimates = append(comparison.Estimates, estimate)
	}
	return comparison, nil
}
