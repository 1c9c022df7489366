package subsys

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultMaxVoltage is the maximum solar array voltage, in V.
	DefaultMaxVoltage = 28.
	// DefaultMaxCurrent is the maximum solar array current, in A.
	DefaultMaxCurrent = 10.
	// DefaultMaxChargePower is the maximum power accepted by the battery charger, in W.
	DefaultMaxChargePower = 280.
)

// EPS defines the interface for an electrical power subsystem.
type EPS interface {
	// AvailablePower returns the instantaneous power in W delivered for a given voltage (V) and current (A).
	AvailablePower(voltage, current float64) float64
	// ChargeEnergy returns the energy in J available to charge the battery when delivering power (W) for the elapsed time.
	ChargeEnergy(power float64, elapsed time.Duration) float64
}

/* Available EPS */

// UnlimitedEPS delivers as much as you want, always.
type UnlimitedEPS struct{}

// AvailablePower implements the EPS interface.
func (e *UnlimitedEPS) AvailablePower(voltage, current float64) float64 {
	return voltage * current
}

// ChargeEnergy implements the EPS interface.
func (e *UnlimitedEPS) ChargeEnergy(power float64, elapsed time.Duration) float64 {
	return power * elapsed.Seconds()
}

// NewUnlimitedEPS returns a dream-like EPS.
func NewUnlimitedEPS() (e *UnlimitedEPS) {
	e = new(UnlimitedEPS)
	return
}

// EPSLimits defines the solar array and charger limits.
type EPSLimits struct {
	MaxVoltage float64 // in V
	MaxCurrent float64 // in A
	MaxPower   float64 // in W
}

// DefaultEPSLimits returns the nominal solar array limits.
func DefaultEPSLimits() EPSLimits {
	return EPSLimits{DefaultMaxVoltage, DefaultMaxCurrent, DefaultMaxChargePower}
}

// Validate returns an error if any of the limits is not a strictly positive finite number.
func (l EPSLimits) Validate() error {
	for _, lim := range []struct {
		name string
		val  float64
	}{{"voltage", l.MaxVoltage}, {"current", l.MaxCurrent}, {"power", l.MaxPower}} {
		if !finite(lim.val) || lim.val <= 0 {
			return fmt.Errorf("max %s must be strictly positive, got %f: %w", lim.name, lim.val, ErrInvalidArgument)
		}
	}
	return nil
}

// SolarArray is an EPS whose inputs are clamped to the array and charger limits.
// Inputs above a limit are clamped, not rejected. Negative inputs are passed through.
type SolarArray struct {
	Limits EPSLimits
}

// NewSolarArray returns a new SolarArray with the provided limits.
func NewSolarArray(limits EPSLimits) (*SolarArray, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &SolarArray{limits}, nil
}

// AvailablePower implements the EPS interface.
func (a *SolarArray) AvailablePower(voltage, current float64) float64 {
	return math.Min(voltage, a.Limits.MaxVoltage) * math.Min(current, a.Limits.MaxCurrent)
}

// ChargeEnergy implements the EPS interface.
func (a *SolarArray) ChargeEnergy(power float64, elapsed time.Duration) float64 {
	return math.Min(power, a.Limits.MaxPower) * elapsed.Seconds()
}

// PowerInterval is a period during which the solar array delivers a constant voltage and current.
type PowerInterval struct {
	Voltage  float64 // in V
	Current  float64 // in A
	Duration time.Duration
}

// EnergyProfile returns the total energy in J available for battery charging over all the intervals.
func EnergyProfile(e EPS, intervals []PowerInterval) (energy float64) {
	for _, i := range intervals {
		energy += e.ChargeEnergy(e.AvailablePower(i.Voltage, i.Current), i.Duration)
	}
	return
}
