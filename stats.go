package montyhall

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// StandardError is the binomial standard error sqrt(p(1-p)/n) of an
// estimated probability p over n counted trials. It is the yardstick
// for choosing test tolerances instead of picking them by feel.
func StandardError(p float64, n int64) float64 {
	if n <= 0 {
		return 0
	}
	return math.Sqrt(p * (1 - p) / float64(n))
}

/*
ConfidenceInterval brackets an estimated probability with a
normal-approximation interval at the given level, for example 0.95.
The z value comes from the standard normal quantile and the bounds are
clamped to [0, 1].
*/
func ConfidenceInterval(p, stderr, level float64) (lo, hi float64, err error) {
	if level <= 0 || level >= 1 {
		return 0, 0, fmt.Errorf("%v: %w", level, ErrInvalidConfidence)
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - (1-level)/2)
	lo = math.Max(0, p-z*stderr)
	hi = math.Min(1, p+z*stderr)
	return lo, hi, nil
}

/*
ShardDiagnostics summarizes how the win ratios spread across the
estimator's shards. Every shard samples the same game, so the per-shard
ratios should scatter tightly around the aggregate estimate; a wide
spread points at a seeding or merging defect rather than at the game.
*/
type ShardDiagnostics struct {
	Shards            int
	MeanStayRatio     float64
	StayRatioStdDev   float64
	MeanSwitchRatio   float64
	SwitchRatioStdDev float64
}

// DiagnoseShards computes the spread summary over the shards that ran
// at least one trial. It needs two such shards to say anything.
func DiagnoseShards(shards []OutcomeTally) (ShardDiagnostics, error) {
	stayRatios := make([]float64, 0, len(shards))
	switchRatios := make([]float64, 0, len(shards))
	for _, shard := range shards {
		if shard.Trials == 0 {
			continue
		}
		stayRatios = append(stayRatios, shard.StayRatio())
		switchRatios = append(switchRatios, shard.SwitchRatio())
	}
	if len(stayRatios) < 2 {
		return ShardDiagnostics{}, fmt.Errorf("shard diagnostics need at least two populated shards, got %d", len(stayRatios))
	}

	meanStay, err := stats.Mean(stayRatios)
	if err != nil {
		return ShardDiagnostics{}, fmt.Errorf("mean stay ratio: %w", err)
	}
	stayDev, err := stats.StandardDeviationSample(stayRatios)
	if err != nil {
		return ShardDiagnostics{}, fmt.Errorf("stay ratio deviation: %w", err)
	}
	meanSwitch, err := stats.Mean(switchRatios)
	if err != nil {
		return ShardDiagnostics{}, fmt.Errorf("mean switch ratio: %w", err)
	}
	switchDev, err := stats.StandardDeviationSample(switchRatios)
	if err != nil {
		return ShardDiagnostics{}, fmt.Errorf("switch ratio deviation: %w", err)
	}

	return ShardDiagnostics{
		Shards:            len(stayRatios),
		MeanStayRatio:     meanStay,
		StayRatioStdDev:   stayDev,
		MeanSwitchRatio:   meanSwitch,
		SwitchRatioStdDev: switchDev,
	}, nil
}
