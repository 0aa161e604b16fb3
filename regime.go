package montyhall

import "fmt"

/*
Regime selects one of the three experimental configurations. The only
structural difference between the two quantum regimes is whether the
prize register is collapsed before the host's reveal; that single bit
is what restores the classical stay/switch asymmetry.
*/
type Regime int

const (
	// RegimeClassical is the ordinary game: a concrete prize door is
	// drawn uniformly at the start, no quantum state is involved.
	RegimeClassical Regime = iota

	// RegimeQuantumNoMeasurement keeps the prize register superposed
	// through the reveal and the player's decision; it is collapsed
	// only by the final measurement.
	RegimeQuantumNoMeasurement

	// RegimeQuantumWithMeasurement collapses the prize register before
	// the host reveals a door, mirroring the classical information flow.
	RegimeQuantumWithMeasurement
)

// regime selector strings as used by callers and the command line.
const (
	regimeClassicalName       = "classical"
	regimeNoMeasurementName   = "quantum_no_measurement"
	regimeWithMeasurementName = "quantum_with_measurement"
)

// Regimes returns the three regimes in presentation order.
func Regimes() []Regime {
	return []Regime{RegimeClassical, RegimeQuantumNoMeasurement, RegimeQuantumWithMeasurement}
}

// ParseRegime maps a selector string to its Regime.
func ParseRegime(name string) (Regime, error) {
	switch name {
	case regimeClassicalName:
		return RegimeClassical, nil
	case regimeNoMeasurementName:
		return RegimeQuantumNoMeasurement, nil
	case regimeWithMeasurementName:
		return RegimeQuantumWithMeasurement, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownRegime)
}

func (r Regime) String() string {
	switch r {
	case RegimeClassical:
		return regimeClassicalName
	case RegimeQuantumNoMeasurement:
		return regimeNoMeasurementName
	case RegimeQuantumWithMeasurement:
		return regimeWithMeasurementName
	}
	return fmt.Sprintf("regime(%d)", int(r))
}

// Valid reports whether r names one of the three configurations.
func (r Regime) Valid() bool {
	return r == RegimeClassical || r == RegimeQuantumNoMeasurement || r == RegimeQuantumWithMeasurement
}

// UsesQuantumState reports whether trials under r carry a prize
// register, as opposed to a concrete classical prize.
func (r Regime) UsesQuantumState() bool {
	return r != RegimeClassical
}

// CollapseBeforeReveal reports whether the prize is a definite door by
// the time the host opens one.
func (r Regime) CollapseBeforeReveal() bool {
	return r != RegimeQuantumNoMeasurement
}
