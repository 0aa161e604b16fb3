package montyhall

import (
	"fmt"
	"math/rand"
)

// TrialState names a stop on the trial's fixed path through one game.
type TrialState int

const (
	TrialInit TrialState = iota
	TrialPrizePlaced
	TrialIntermediateMeasured
	TrialRevealed
	TrialDecisionMade
	TrialFinalMeasured
	TrialDone
)

func (s TrialState) String() string {
	switch s {
	case TrialInit:
		return "init"
	case TrialPrizePlaced:
		return "prize_placed"
	case TrialIntermediateMeasured:
		return "intermediate_measured"
	case TrialRevealed:
		return "revealed"
	case TrialDecisionMade:
		return "decision_made"
	case TrialFinalMeasured:
		return "final_measured"
	case TrialDone:
		return "done"
	}
	return fmt.Sprintf("trial_state(%d)", int(s))
}

/*
TrialResult is the ephemeral record of one finished game: where the
prize turned out to be, what the player picked, what the host opened,
and whether each strategy would have won. It is consumed into a tally
and discarded.
*/
type TrialResult struct {
	Prize     Door
	Choice    Door
	Revealed  Door
	Stay      Door
	Switch    Door
	StayWon   bool
	SwitchWon bool
}

/*
TrialRunner walks one game through the six protocol states:

	init → prize_placed → (intermediate_measured) → revealed →
	decision_made → final_measured → done

The intermediate measurement only happens in regimes that collapse the
prize before the reveal; in the no-measurement regime the runner steps
straight from prize_placed to revealed. Both strategies are scored on
the same game, so their outcomes are perfectly anti-correlated whenever
the revealed door cannot hold the prize.

The runner owns its StateVector and draws all randomness from the
injected source in a fixed per-step order, so a seeded source replays
the identical game.
*/
type TrialRunner struct {
	regime Regime
	rng    *rand.Rand
	meter  *MeasurementOperator
	oracle *RevealOracle

	state    TrialState
	vector   *StateVector
	prize    Door
	choice   Door
	revealed Door
	stay     Door
	switched Door
}

func NewTrialRunner(regime Regime, rng *rand.Rand) (*TrialRunner, error) {
	if !regime.Valid() {
		return nil, fmt.Errorf("%d: %w", int(regime), ErrUnknownRegime)
	}
	return &TrialRunner{
		regime: regime,
		rng:    rng,
		meter:  NewMeasurementOperator(rng),
		oracle: NewRevealOracle(rng),
		state:  TrialInit,
	}, nil
}

// State reports where in the protocol the trial currently stands.
func (t *TrialRunner) State() TrialState {
	return t.state
}

/*
Step advances the trial by one transition, performing the entered
state's action. Stepping a finished trial fails with ErrTrialFinished.
*/
func (t *TrialRunner) Step() error {
	switch t.state {
	case TrialInit:
		t.placePrize()
		t.state = TrialPrizePlaced

	case TrialPrizePlaced:
		if !t.regime.CollapseBeforeReveal() {
			// No intermediate measurement: the register stays superposed
			// and the host acts on it directly.
			if err := t.reveal(); err != nil {
				return err
			}
			t.state = TrialRevealed
			return nil
		}
		if err := t.measureIntermediate(); err != nil {
			return err
		}
		t.state = TrialIntermediateMeasured

	case TrialIntermediateMeasured:
		if err := t.reveal(); err != nil {
			return err
		}
		t.state = TrialRevealed

	case TrialRevealed:
		t.stay = t.choice
		t.switched = remainingDoor(t.choice, t.revealed)
		t.state = TrialDecisionMade

	case TrialDecisionMade:
		if err := t.measureFinal(); err != nil {
			return err
		}
		t.state = TrialFinalMeasured

	case TrialFinalMeasured:
		t.state = TrialDone

	default:
		return ErrTrialFinished
	}
	return nil
}

// Run drives the trial to completion and returns its result.
func (t *TrialRunner) Run() (TrialResult, error) {
	for t.state != TrialDone {
		if err := t.Step(); err != nil {
			return TrialResult{}, err
		}
	}
	return t.Result()
}

// Result returns the finished trial's record; it fails unless the
// trial has reached done.
func (t *TrialRunner) Result() (TrialResult, error) {
	if t.state != TrialDone {
		return TrialResult{}, fmt.Errorf("trial still in state %s", t.state)
	}
	return TrialResult{
		Prize:     t.prize,
		Choice:    t.choice,
		Revealed:  t.revealed,
		Stay:      t.stay,
		Switch:    t.switched,
		StayWon:   t.stay == t.prize,
		SwitchWon: t.switched == t.prize,
	}, nil
}

// placePrize seeds the game: a superposed register in the quantum
// regimes, a concrete uniform door classically, then the player's
// independent uniform choice.
func (t *TrialRunner) placePrize() {
	if t.regime.UsesQuantumState() {
		t.vector = NewUniformPrizeSuperposition()
	} else {
		t.prize = Door(t.rng.Intn(NumDoors))
	}
	t.choice = Door(t.rng.Intn(NumDoors))
}

// measureIntermediate makes the prize concrete before the reveal. The
// classical regime arrives here with its prize already drawn; the
// quantum with-measurement regime collapses the register now.
func (t *TrialRunner) measureIntermediate() error {
	if !t.regime.UsesQuantumState() {
		return nil
	}
	prize, err := t.meter.Measure(t.vector)
	if err != nil {
		return fmt.Errorf("intermediate measurement: %w", err)
	}
	t.prize = prize
	return nil
}

func (t *TrialRunner) reveal() error {
	var (
		door Door
		err  error
	)
	if t.regime.CollapseBeforeReveal() {
		door, err = t.oracle.RevealCollapsed(t.prize, t.choice)
	} else {
		door, err = t.oracle.RevealSuperposed(t.vector, t.choice)
	}
	if err != nil {
		return fmt.Errorf("reveal: %w", err)
	}
	t.revealed = door
	return nil
}

// measureFinal fixes the prize if it never collapsed. For an already
// concrete prize this is the idempotent re-read and costs no
// randomness.
func (t *TrialRunner) measureFinal() error {
	if t.vector == nil {
		return nil
	}
	prize, err := t.meter.Measure(t.vector)
	if err != nil {
		return fmt.Errorf("final measurement: %w", err)
	}
	t.prize = prize
	return nil
}
