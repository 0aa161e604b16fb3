package montyhall

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStandardError(t *testing.T) {
	Convey("Given the binomial standard error", t, func(c C) {
		Convey("When the estimate sits mid-range", func(c C) {
			c.So(StandardError(0.5, 100), ShouldAlmostEqual, 0.05, 1e-12)
			c.So(StandardError(1.0/3, 10_000), ShouldAlmostEqual, math.Sqrt((1.0/3)*(2.0/3)/10_000), 1e-12)
		})

		Convey("When the estimate is degenerate", func(c C) {
			c.So(StandardError(0, 500), ShouldEqual, 0)
			c.So(StandardError(1, 500), ShouldEqual, 0)
		})

		Convey("When no trials were counted", func(c C) {
			c.So(StandardError(0.5, 0), ShouldEqual, 0)
			c.So(StandardError(0.5, -3), ShouldEqual, 0)
		})
	})
}

func TestConfidenceInterval(t *testing.T) {
	Convey("Given a normal-approximation interval", t, func(c C) {
		Convey("When bracketing at 95 percent", func(c C) {
			lo, hi, err := ConfidenceInterval(0.5, 0.1, 0.95)

			c.So(err, ShouldBeNil)
			c.So(lo, ShouldAlmostEqual, 0.30400360154599464, 1e-9)
			c.So(hi, ShouldAlmostEqual, 0.69599639845400536, 1e-9)
		})

		Convey("When bracketing at 99 percent", func(c C) {
			lo, hi, err := ConfidenceInterval(0.5, 0.1, 0.99)

			c.So(err, ShouldBeNil)
			c.So(lo, ShouldAlmostEqual, 0.24241706964511, 1e-9)
			c.So(hi, ShouldAlmostEqual, 0.75758293035489, 1e-9)
		})

		Convey("When the interval spills past a bound", func(c C) {
			lo, hi, err := ConfidenceInterval(0.02, 0.05, 0.95)
			c.So(err, ShouldBeNil)
			c.So(lo, ShouldEqual, 0)
			c.So(hi, ShouldAlmostEqual, 0.1179981992, 1e-9)

			lo, hi, err = ConfidenceInterval(0.99, 0.05, 0.95)
			c.So(err, ShouldBeNil)
			c.So(lo, ShouldAlmostEqual, 0.8920018008, 1e-9)
			c.So(hi, ShouldEqual, 1)
		})

		Convey("When the level is out of range", func(c C) {
			for _, level := range []float64{0, 1, -0.5, 1.5} {
				_, _, err := ConfidenceInterval(0.5, 0.1, level)
				c.So(errors.Is(err, ErrInvalidConfidence), ShouldBeTrue)
			}
		})
	})
}

func TestDiagnoseShards(t *testing.T) {
	Convey("Given per-shard tallies", t, func(c C) {
		Convey("When the shards scatter around the estimate", func(c C) {
			shards := []OutcomeTally{
				{Trials: 100, StayWins: 30, SwitchWins: 70},
				{Trials: 100, StayWins: 36, SwitchWins: 64},
				{Trials: 100, StayWins: 33, SwitchWins: 67},
				{Trials: 100, StayWins: 33, SwitchWins: 67},
				{},
			}

			diag, err := DiagnoseShards(shards)

			c.So(err, ShouldBeNil)
			c.So(diag.Shards, ShouldEqual, 4)
			c.So(diag.MeanStayRatio, ShouldAlmostEqual, 0.33, 1e-12)
			c.So(diag.MeanSwitchRatio, ShouldAlmostEqual, 0.67, 1e-12)
			c.So(diag.StayRatioStdDev, ShouldAlmostEqual, math.Sqrt(0.0006), 1e-9)
			c.So(diag.SwitchRatioStdDev, ShouldAlmostEqual, math.Sqrt(0.0006), 1e-9)
		})

		Convey("When too few shards ran trials", func(c C) {
			_, err := DiagnoseShards(nil)
			c.So(err, ShouldNotBeNil)

			_, err = DiagnoseShards([]OutcomeTally{
				{Trials: 50, StayWins: 20, SwitchWins: 30},
				{},
				{},
			})
			c.So(err, ShouldNotBeNil)
			c.So(err.Error(), ShouldContainSubstring, "two populated shards")
		})
	})
}
