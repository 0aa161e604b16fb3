// estimator.go
package montyhall

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sync"
)

/*
MonteCarloEstimator turns repeated trials into probability estimates.
A run is split into a fixed number of shards; every shard owns its own
generator seeded from (run seed, shard index), runs its slice of the
trial budget, and produces an integer tally. Because the shard streams
never depend on scheduling and the merge is commutative, one worker
and many workers produce bit-identical estimates for the same seed.
*/
type MonteCarloEstimator struct {
	seed   int64
	config *Config

	// trial is swappable so tests can inject failing trials and drive
	// the discard policy.
	trial func(Regime, *rand.Rand) (TrialResult, error)
}

func NewEstimator(seed int64, config *Config) *MonteCarloEstimator {
	e := &MonteCarloEstimator{
		seed:   seed,
		config: config,
		trial:  runSingleTrial,
	}
	return e
}

// Seed returns the run seed the estimator derives every shard from.
func (e *MonteCarloEstimator) Seed() int64 {
	return e.seed
}

func runSingleTrial(regime Regime, rng *rand.Rand) (TrialResult, error) {
	runner, err := NewTrialRunner(regime, rng)
	if err != nil {
		return TrialResult{}, err
	}
	return runner.Run()
}

/*
Estimate is the outcome of one Monte-Carlo run: the estimated win
probability of each strategy with its standard error, the merged tally
behind them, and the per-shard tallies for spread diagnostics.
*/
type Estimate struct {
	Regime            Regime
	Requested         int64
	StayProbability   float64
	SwitchProbability float64
	StayStdErr        float64
	SwitchStdErr      float64
	Tally             OutcomeTally
	ShardTallies      []OutcomeTally
}

// Diagnostics summarizes the spread of win ratios across this
// estimate's shards.
func (e Estimate) Diagnostics() (ShardDiagnostics, error) {
	return DiagnoseShards(e.ShardTallies)
}

/*
Estimate runs trialCount independent trials of the regime and
aggregates them. The trial count must be positive; failing trials are
discarded rather than counted, and an estimate whose discards exceed
the configured fraction of the request is rejected whole, since at that
rate the discards signal broken state construction rather than noise.
*/
func (e *MonteCarloEstimator) Estimate(regime Regime, trialCount int) (Estimate, error) {
	if trialCount <= 0 {
		return Estimate{}, fmt.Errorf("%d: %w", trialCount, ErrInvalidTrialCount)
	}
	if !regime.Valid() {
		return Estimate{}, fmt.Errorf("%d: %w", int(regime), ErrUnknownRegime)
	}

	plan := shardPlan(trialCount, e.shards())
	tallies := e.runShards(regime, plan)

	var total OutcomeTally
	for _, tally := range tallies {
		total.Merge(tally)
	}

	if total.Discarded > 0 {
		log.Printf("montecarlo: discarded %d of %d requested trials (regime %s)",
			total.Discarded, trialCount, regime)
	}
	if float64(total.Discarded) > e.maxDiscardFraction()*float64(trialCount) {
		return Estimate{}, fmt.Errorf("%d discarded of %d requested: %w",
			total.Discarded, trialCount, ErrExcessiveDiscards)
	}

	stay := total.StayRatio()
	switched := total.SwitchRatio()
	return Estimate{
		Regime:            regime,
		Requested:         int64(trialCount),
		StayProbability:   stay,
		SwitchProbability: switched,
		StayStdErr:        StandardError(stay, total.Trials),
		SwitchStdErr:      StandardError(switched, total.Trials),
		Tally:             total,
		ShardTallies:      tallies,
	}, nil
}

// shardJob is one shard's slice of the trial budget.
type shardJob struct {
	index int
	count int
}

// shardPlan splits the budget across shards, front-loading the
// remainder one trial at a time. The split depends only on the counts,
// never on workers or scheduling.
func shardPlan(trialCount, shards int) []shardJob {
	if shards > trialCount {
		shards = trialCount
	}
	base := trialCount / shards
	extra := trialCount % shards
	plan := make([]shardJob, shards)
	for i := range plan {
		count := base
		if i < extra {
			count++
		}
		plan[i] = shardJob{index: i, count: count}
	}
	return plan
}

type shardResult struct {
	index int
	tally OutcomeTally
}

// runShards fans the plan out over a bounded worker pool and collects
// the tallies back in shard order.
func (e *MonteCarloEstimator) runShards(regime Regime, plan []shardJob) []OutcomeTally {
	jobs := make(chan shardJob, len(plan))
	results := make(chan shardResult, len(plan))

	workers := e.workers()
	if workers > len(plan) {
		workers = len(plan)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- shardResult{index: job.index, tally: e.runShard(regime, job)}
			}
		}()
	}

	for _, job := range plan {
		jobs <- job
	}
	close(jobs)

	wg.Wait()
	close(results)

	tallies := make([]OutcomeTally, len(plan))
	for result := range results {
		tallies[result.index] = result.tally
	}
	return tallies
}

// runShard plays one shard's trials on its private generator.
func (e *MonteCarloEstimator) runShard(regime Regime, job shardJob) OutcomeTally {
	rng := rand.New(rand.NewSource(shardSeed(e.seed, job.index)))

	var tally OutcomeTally
	for i := 0; i < job.count; i++ {
		result, err := e.trial(regime, rng)
		if err != nil {
			tally.discard()
			continue
		}
		tally.record(result)
	}
	return tally
}

func (e *MonteCarloEstimator) workers() int {
	if e.config != nil && e.config.Workers > 0 {
		return e.config.Workers
	}
	return runtime.NumCPU()
}

func (e *MonteCarloEstimator) shards() int {
	if e.config != nil && e.config.Shards > 0 {
		return e.config.Shards
	}
	return defaultShards
}

func (e *MonteCarloEstimator) maxDiscardFraction() float64 {
	if e.config != nil && e.config.MaxDiscardFraction > 0 {
		return e.config.MaxDiscardFraction
	}
	return defaultDiscardFraction
}

func Example() {
	seed, err := NewSeed()
	if err != nil {
		log.Fatal(err)
	}

	estimator := NewEstimator(seed, NewConfig())

	for _, regime := range Regimes() {
		estimate, err := estimator.Estimate(regime, 100_000)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%-26s stay %.4f (±%.4f)  switch %.4f (±%.4f)\n",
			estimate.Regime,
			estimate.StayProbability, estimate.StayStdErr,
			estimate.SwitchProbability, estimate.SwitchStdErr,
		)
	}
}
