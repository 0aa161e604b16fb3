package montyhall

import (
	"fmt"
	"math/rand"
)

/*
RevealOracle decides which door the host opens. The host knows where
the prize is but must never show it, and must never open the player's
chosen door. Which of the two operating modes applies depends on
whether the prize register has already been collapsed when the host
acts.
*/
type RevealOracle struct {
	rng *rand.Rand
}

func NewRevealOracle(rng *rand.Rand) *RevealOracle {
	return &RevealOracle{rng: rng}
}

/*
RevealCollapsed picks the host's door when the prize is a concrete
value: the candidates are the doors that are neither the prize nor the
player's choice. When the player happens to sit on the prize there are
two candidates and the host picks between them uniformly; otherwise the
single remaining door is revealed.
*/
func (o *RevealOracle) RevealCollapsed(prize, choice Door) (Door, error) {
	if !prize.Valid() {
		return 0, fmt.Errorf("prize door %d: %w", prize, ErrInvalidChoice)
	}
	if !choice.Valid() {
		return 0, fmt.Errorf("player choice %d: %w", choice, ErrInvalidChoice)
	}

	candidates := make([]Door, 0, NumDoors-1)
	for _, d := range Doors() {
		if d != prize && d != choice {
			candidates = append(candidates, d)
		}
	}

	return candidates[o.rng.Intn(len(candidates))], nil
}

/*
RevealSuperposed picks the host's door while the prize register is
still in superposition. The reveal is framed as a conditional operation
over the register: every prize branch with nonzero amplitude
contributes its valid candidates (non-prize, non-chosen doors), each
weighted by the branch probability split evenly across the branch's
candidates. One door is sampled from the combined weights.

The register itself is left untouched; collapse happens only at
explicit measurement points. Under the uniform prior the sampled door
is uniform over the two non-chosen doors, so over many trials the
reveal leaks nothing about where the prize will be found.
*/
func (o *RevealOracle) RevealSuperposed(v *StateVector, choice Door) (Door, error) {
	if !choice.Valid() {
		return 0, fmt.Errorf("player choice %d: %w", choice, ErrInvalidChoice)
	}
	if err := v.CheckNormalization(); err != nil {
		return 0, err
	}

	probs := v.Probabilities()

	var weights [NumDoors]float64
	for p := 0; p < NumDoors; p++ {
		branch := probs[p]
		if branch == 0 {
			continue
		}
		if Door(p) == choice {
			// The player sits on this branch's prize; both other doors
			// are fair game for the host.
			half := branch / 2
			for d := 0; d < NumDoors; d++ {
				if Door(d) != choice {
					weights[d] += half
				}
			}
			continue
		}
		weights[remainingDoor(Door(p), choice)] += branch
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}

	target := o.rng.Float64() * total

	cumulative := 0.0
	lastLive := -1
	revealed := -1
	for d := 0; d < NumDoors; d++ {
		w := weights[d]
		if w > 0 {
			lastLive = d
		}
		cumulative += w
		if target < cumulative {
			revealed = d
			break
		}
	}
	if revealed < 0 {
		revealed = lastLive
	}

	return Door(revealed), nil
}
