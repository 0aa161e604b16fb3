package montyhall

import "runtime"

const (
	defaultShards          = 32
	defaultDiscardFraction = 0.01
)

/*
Config tunes the estimator. Workers caps the goroutines draining the
shard queue and never affects the estimate itself; Shards fixes how the
trial budget is split into independently seeded slices, so changing it
changes which games a seed produces; MaxDiscardFraction is the discard
rate above which an estimate is rejected as systemically broken.
*/
type Config struct {
	Workers            int
	Shards             int
	MaxDiscardFraction float64
}

func NewConfig() *Config {
	return &Config{
		Workers:            runtime.NumCPU(),
		Shards:             defaultShards,
		MaxDiscardFraction: defaultDiscardFraction,
	}
}
