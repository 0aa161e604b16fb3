package montyhall

import "math"

/*
NewUniformPrizeSuperposition prepares the prize register the way every
trial starts: the prize is behind all three doors at once, amplitude
1/√3 on each valid basis label and zero on the unused one, so each door
carries probability 1/3 under the Born rule.

The amplitudes are written directly rather than renormalized; 1/√3 is
exact to the float and the measurement walk tolerates the last-bit dust
in the squared sum.
*/
func NewUniformPrizeSuperposition() *StateVector {
	amplitude := complex(1/math.Sqrt(NumDoors), 0)

	v := &StateVector{}
	for door := 0; door < NumDoors; door++ {
		v.amplitudes[door] = amplitude
	}
	return v
}
