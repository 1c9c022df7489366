package subsys

import (
	"fmt"
	"math"
)

// DefaultThermalGain is the fraction of the temperature error corrected at each step.
const DefaultThermalGain = 0.25

// Thermostat is a proportional thermal controller nudging the cabin temperature toward a setpoint.
type Thermostat struct {
	Gain float64
}

// DefaultThermostat returns a thermostat with the nominal gain.
func DefaultThermostat() Thermostat {
	return Thermostat{DefaultThermalGain}
}

// NewThermostat returns a thermostat with the provided gain, which must be within ]0, 1].
func NewThermostat(gain float64) (Thermostat, error) {
	if !finite(gain) || gain <= 0 || gain > 1 {
		return Thermostat{}, fmt.Errorf("thermal gain must be within ]0, 1], got %f: %w", gain, ErrInvalidArgument)
	}
	return Thermostat{gain}, nil
}

// Correction is the result of one thermostat step.
type Correction struct {
	Delta    float64 // signed temperature change
	Adjusted float64 // temperature after the correction
}

// Heating returns whether this correction increases the temperature.
func (c Correction) Heating() bool {
	return c.Delta > 0
}

func (c Correction) String() string {
	if c.Heating() {
		return fmt.Sprintf("TCS increasing interior temperature by %.2f degrees for cold space humans", c.Delta)
	}
	return fmt.Sprintf("TCS decreasing interior temperature by %.2f degrees for sweaty space humans", math.Abs(c.Delta))
}

// Adjust returns the correction applied to the current temperature toward the target.
func (t Thermostat) Adjust(current, target float64) Correction {
	delta := t.Gain * (target - current)
	return Correction{delta, current + delta}
}

// Converge applies the thermostat steps times and returns the successive corrections.
func (t Thermostat) Converge(current, target float64, steps int) []Correction {
	corrections := make([]Correction, 0, steps)
	for i := 0; i < steps; i++ {
		c := t.Adjust(current, target)
		corrections = append(corrections, c)
		current = c.Adjusted
	}
	return corrections
}
