package subsys

import (
	"fmt"
)

const (
	// DefaultMaxThrust is the maximum thrust of an RCS thruster, in N.
	DefaultMaxThrust = 100.
	// DefaultMaxFlowRate is the maximum propellant flow rate of an RCS thruster, in kg/s.
	DefaultMaxFlowRate = 0.05
	// DefaultMaxExhaustVelocity is the maximum exhaust velocity of an RCS thruster, in m/s.
	DefaultMaxExhaustVelocity = 2000.
)

// LimitSet defines the safety limits of the RCS thrusters.
type LimitSet struct {
	MaxThrust          float64 // in N
	MaxFlowRate        float64 // in kg/s
	MaxExhaustVelocity float64 // in m/s
}

// DefaultLimits returns the nominal RCS limits.
func DefaultLimits() LimitSet {
	return LimitSet{DefaultMaxThrust, DefaultMaxFlowRate, DefaultMaxExhaustVelocity}
}

// Validate returns an error if any of the limits is not a strictly positive finite number.
func (l LimitSet) Validate() error {
	for _, q := range quantities {
		lim := l.of(q)
		if !finite(lim) || lim <= 0 {
			return fmt.Errorf("max %s must be strictly positive, got %f: %w", q, lim, ErrInvalidArgument)
		}
	}
	return nil
}

func (l LimitSet) of(q Quantity) float64 {
	switch q {
	case QuantityThrust:
		return l.MaxThrust
	case QuantityFlowRate:
		return l.MaxFlowRate
	case QuantityExhaustVelocity:
		return l.MaxExhaustVelocity
	default:
		panic(fmt.Errorf("unknown quantity %d", q))
	}
}

// Quantity is a limited thruster quantity.
type Quantity uint8

const (
	// QuantityThrust is the thrust in N.
	QuantityThrust Quantity = iota + 1
	// QuantityFlowRate is the mass flow rate in kg/s.
	QuantityFlowRate
	// QuantityExhaustVelocity is the exhaust velocity in m/s.
	QuantityExhaustVelocity
)

// quantities is the order in which a reading is checked.
var quantities = [...]Quantity{QuantityThrust, QuantityFlowRate, QuantityExhaustVelocity}

func (q Quantity) String() string {
	switch q {
	case QuantityThrust:
		return "thrust"
	case QuantityFlowRate:
		return "flow rate"
	case QuantityExhaustVelocity:
		return "exhaust velocity"
	default:
		panic("unknown quantity")
	}
}

// Unit returns the SI unit of the quantity.
func (q Quantity) Unit() string {
	switch q {
	case QuantityThrust:
		return "N"
	case QuantityFlowRate:
		return "kg/s"
	case QuantityExhaustVelocity:
		return "m/s"
	default:
		panic("unknown quantity")
	}
}

func (r ThrusterReading) of(q Quantity) float64 {
	switch q {
	case QuantityThrust:
		return r.Thrust
	case QuantityFlowRate:
		return r.FlowRate
	case QuantityExhaustVelocity:
		return r.ExhaustVelocity
	default:
		panic(fmt.Errorf("unknown quantity %d", q))
	}
}

// Violation reports a thruster quantity which exceeds its limit.
type Violation struct {
	Thruster string
	Quantity Quantity
	Measured float64
	Limit    float64
	Excess   float64 // Measured - Limit, always positive
}

// CheckReading returns the violations of a single reading, in the thrust, flow rate, exhaust velocity order.
// A value exactly at its limit is not a violation. The name of the reading is not required.
func CheckReading(r ThrusterReading, limits LimitSet) ([]Violation, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	if !finite(r.Thrust, r.FlowRate, r.ExhaustVelocity) {
		return nil, fmt.Errorf("non finite value in reading %s: %w", r, ErrMalformedInput)
	}
	return checkReading(r, limits), nil
}

func checkReading(r ThrusterReading, limits LimitSet) (violations []Violation) {
	for _, q := range quantities {
		measured, limit := r.of(q), limits.of(q)
		if measured > limit {
			violations = append(violations, Violation{r.Name, q, measured, limit, measured - limit})
		}
	}
	return
}

// CheckLimits checks all the readings against the limits and returns the violations in the order of the readings.
// Violations are data: the error is only set if the limits or a reading are unusable.
func CheckLimits(readings []ThrusterReading, limits LimitSet) ([]Violation, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(readings))
	for i, r := range readings {
		if r.Name == "" {
			return nil, fmt.Errorf("reading #%d has no thruster name: %w", i, ErrMalformedInput)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("duplicate reading for thruster %q: %w", r.Name, ErrMalformedInput)
		}
		seen[r.Name] = true
		if !finite(r.Thrust, r.FlowRate, r.ExhaustVelocity) {
			return nil, fmt.Errorf("non finite value in reading %s: %w", r, ErrMalformedInput)
		}
	}
	var violations []Violation
	for _, r := range readings {
		violations = append(violations, checkReading(r, limits)...)
	}
	return violations, nil
}
