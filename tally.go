package montyhall

/*
OutcomeTally accumulates win counts for both strategies over a run of
trials. Counts are plain integers and merging is commutative, so shard
tallies can be combined in any order without changing the result.
*/
type OutcomeTally struct {
	Trials     int64
	Discarded  int64
	StayWins   int64
	SwitchWins int64
}

// record folds one finished trial into the tally.
func (t *OutcomeTally) record(result TrialResult) {
	t.Trials++
	if result.StayWon {
		t.StayWins++
	}
	if result.SwitchWon {
		t.SwitchWins++
	}
}

// discard notes a trial that errored and was excluded from the counts.
func (t *OutcomeTally) discard() {
	t.Discarded++
}

// Merge folds another tally into this one.
func (t *OutcomeTally) Merge(other OutcomeTally) {
	t.Trials += other.Trials
	t.Discarded += other.Discarded
	t.StayWins += other.StayWins
	t.SwitchWins += other.SwitchWins
}

// StayRatio is the fraction of counted trials the stay strategy won.
func (t OutcomeTally) StayRatio() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.StayWins) / float64(t.Trials)
}

// SwitchRatio is the fraction of counted trials the switch strategy won.
func (t OutcomeTally) SwitchRatio() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.SwitchWins) / float64(t.Trials)
}
