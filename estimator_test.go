package montyhall

import (
	"errors"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMonteCarloEstimator(t *testing.T) {
	Convey("Given a Monte Carlo estimator", t, func(c C) {
		Convey("When the trial count is not positive", func(c C) {
			estimator := NewEstimator(1, NewConfig())

			_, err := estimator.Estimate(RegimeClassical, 0)
			c.So(errors.Is(err, ErrInvalidTrialCount), ShouldBeTrue)

			_, err = estimator.Estimate(RegimeClassical, -5)
			c.So(errors.Is(err, ErrInvalidTrialCount), ShouldBeTrue)
		})

		Convey("When the regime is unknown", func(c C) {
			estimator := NewEstimator(1, NewConfig())

			_, err := estimator.Estimate(Regime(9), 100)
			c.So(errors.Is(err, ErrUnknownRegime), ShouldBeTrue)
		})

		Convey("When running a seeded with-measurement estimate", func(c C) {
			estimator := NewEstimator(1234, NewConfig())

			estimate, err := estimator.Estimate(RegimeQuantumWithMeasurement, 2000)
			c.So(err, ShouldBeNil)

			c.So(estimate.Regime, ShouldEqual, RegimeQuantumWithMeasurement)
			c.So(estimate.Requested, ShouldEqual, 2000)
			c.So(estimate.Tally.Trials, ShouldEqual, 2000)
			c.So(estimate.Tally.Discarded, ShouldEqual, 0)
			c.So(estimate.Tally.StayWins, ShouldEqual, 668)
			c.So(estimate.Tally.SwitchWins, ShouldEqual, 1332)
			c.So(estimate.StayProbability, ShouldEqual, 668.0/2000)
			c.So(estimate.SwitchProbability, ShouldEqual, 1332.0/2000)
			c.So(estimate.StayStdErr, ShouldAlmostEqual, 0.01055, 1e-4)
			c.So(estimate.ShardTallies, ShouldHaveLength, 32)

			diag, err := estimate.Diagnostics()
			c.So(err, ShouldBeNil)
			c.So(diag.Shards, ShouldEqual, 32)
			c.So(diag.MeanStayRatio, ShouldAlmostEqual, 0.334, 0.01)
			c.So(diag.MeanSwitchRatio, ShouldAlmostEqual, 0.666, 0.01)
			c.So(diag.StayRatioStdDev, ShouldBeBetween, 0.02, 0.12)
		})

		Convey("When the budget does not divide the shards evenly", func(c C) {
			estimator := NewEstimator(3, NewConfig())

			estimate, err := estimator.Estimate(RegimeClassical, 999)
			c.So(err, ShouldBeNil)

			c.So(estimate.Tally.Trials, ShouldEqual, 999)
			c.So(estimate.Tally.StayWins, ShouldEqual, 344)
			c.So(estimate.Tally.SwitchWins, ShouldEqual, 655)
		})

		Convey("When replaying the same seed", func(c C) {
			first, err := NewEstimator(5150, NewConfig()).Estimate(RegimeQuantumNoMeasurement, 3000)
			c.So(err, ShouldBeNil)
			second, err := NewEstimator(5150, NewConfig()).Estimate(RegimeQuantumNoMeasurement, 3000)
			c.So(err, ShouldBeNil)

			c.So(first, ShouldResemble, second)
		})

		Convey("When varying the worker count", func(c C) {
			serial := NewConfig()
			serial.Workers = 1
			fanned := NewConfig()
			fanned.Workers = 8

			// Shard streams never depend on scheduling, so the estimate is
			// bit-identical however the shards are spread over workers.
			one, err := NewEstimator(5150, serial).Estimate(RegimeQuantumWithMeasurement, 3000)
			c.So(err, ShouldBeNil)
			eight, err := NewEstimator(5150, fanned).Estimate(RegimeQuantumWithMeasurement, 3000)
			c.So(err, ShouldBeNil)

			c.So(one, ShouldResemble, eight)
		})

		Convey("When planning shards", func(c C) {
			plan := shardPlan(999, 32)
			c.So(plan, ShouldHaveLength, 32)
			c.So(plan[0].count, ShouldEqual, 32)
			c.So(plan[6].count, ShouldEqual, 32)
			c.So(plan[7].count, ShouldEqual, 31)
			c.So(plan[31].count, ShouldEqual, 31)

			total := 0
			for i, job := range plan {
				c.So(job.index, ShouldEqual, i)
				total += job.count
			}
			c.So(total, ShouldEqual, 999)

			// Tiny budgets collapse to one trial per shard.
			tiny := shardPlan(10, 32)
			c.So(tiny, ShouldHaveLength, 10)
			for _, job := range tiny {
				c.So(job.count, ShouldEqual, 1)
			}
		})

		Convey("When a few trials fail", func(c C) {
			estimator := NewEstimator(404, NewConfig())
			estimator.trial = func(regime Regime, rng *rand.Rand) (TrialResult, error) {
				if rng.Intn(1000) == 0 {
					return TrialResult{}, errors.New("amplitude drift")
				}
				return runSingleTrial(regime, rng)
			}

			estimate, err := estimator.Estimate(RegimeClassical, 20_000)
			c.So(err, ShouldBeNil)

			// Discarded trials are dropped, not replayed, and the ratios
			// are taken over the trials that survived.
			c.So(estimate.Tally.Discarded, ShouldBeGreaterThan, 0)
			c.So(estimate.Tally.Trials+estimate.Tally.Discarded, ShouldEqual, 20_000)
			c.So(estimate.StayProbability, ShouldAlmostEqual,
				float64(estimate.Tally.StayWins)/float64(estimate.Tally.Trials))
		})

		Convey("When every trial fails", func(c C) {
			estimator := NewEstimator(404, NewConfig())
			estimator.trial = func(Regime, *rand.Rand) (TrialResult, error) {
				return TrialResult{}, errors.New("amplitude drift")
			}

			_, err := estimator.Estimate(RegimeClassical, 500)
			c.So(errors.Is(err, ErrExcessiveDiscards), ShouldBeTrue)
		})
	})
}
