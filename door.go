package montyhall

import (
	"fmt"
	"strconv"
)

// NumDoors is the number of doors in the game.
const NumDoors = 3

/*
Door identifies one of the three doors the prize can hide behind.
Doors are numbered 0 through 2 and each maps to a two-bit basis label
in the quantum encoding; the fourth label `11` never corresponds to a
door and must carry zero amplitude at all times.
*/
type Door int

// basisLabels indexes the two-qubit computational basis. The first
// three entries are door encodings, the last is structurally unused.
var basisLabels = [numBasisStates]string{"00", "01", "10", "11"}

const (
	numBasisStates   = 4
	unusedBasisState = 3
)

// NewDoor validates a raw door number.
func NewDoor(n int) (Door, error) {
	if n < 0 || n >= NumDoors {
		return 0, fmt.Errorf("door %d: %w", n, ErrInvalidChoice)
	}
	return Door(n), nil
}

// Valid reports whether the door is one of 0, 1, 2.
func (d Door) Valid() bool {
	return d >= 0 && d < NumDoors
}

/*
BasisLabel returns the two-bit label encoding this door in the prize
register, for example door 2 is encoded as `10`.
*/
func (d Door) BasisLabel() string {
	if !d.Valid() {
		return ""
	}
	return basisLabels[d]
}

func (d Door) String() string {
	return strconv.Itoa(int(d))
}

// Doors returns the three valid doors in ascending order.
func Doors() [NumDoors]Door {
	return [NumDoors]Door{0, 1, 2}
}

// remainingDoor returns the single door that is neither a nor b.
// The two arguments must be distinct valid doors.
func remainingDoor(a, b Door) Door {
	return Door(0+1+2) - a - b
}
