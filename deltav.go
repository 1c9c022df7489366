package subsys

import (
	"fmt"

	"github.com/gonum/floats"
)

// BurnSegment is the firing of one thruster for a given duration along a given direction.
type BurnSegment struct {
	FlowRate        float64 // in kg/s
	ExhaustVelocity float64 // in m/s
	Duration        float64 // in seconds
	// Direction is used as is: a non unit vector scales the contribution of this segment.
	Direction Vector3
}

// Thrust returns the thrust of this segment in N.
func (s BurnSegment) Thrust() float64 {
	return s.FlowRate * s.ExhaustVelocity
}

// DeltaVScalar returns the delta-v in m/s imparted by a single burn on a spacecraft of the given mass (in kg).
// This is an impulse over a constant mass, not the rocket equation.
// Finite inputs whose delta-v overflows a float64 are an ErrInvalidArgument.
func DeltaVScalar(flowRate, exhaustVelocity, duration, mass float64) (float64, error) {
	if err := checkMass(mass); err != nil {
		return 0, err
	}
	if !finite(flowRate, exhaustVelocity, duration) {
		return 0, fmt.Errorf("non finite burn parameters: %w", ErrMalformedInput)
	}
	dv := impulse(flowRate, exhaustVelocity, duration, mass)
	if !finite(dv) {
		return 0, fmt.Errorf("delta-v overflows: %w", ErrInvalidArgument)
	}
	return dv, nil
}

// DeltaVVector returns the total delta-v vector in m/s of all the segments, fired on a spacecraft of the given mass (in kg).
// The result does not depend on the order of the segments, and an empty list leads to a nil delta-v.
func DeltaVVector(segments []BurnSegment, mass float64) (Vector3, error) {
	if err := checkMass(mass); err != nil {
		return Vector3{}, err
	}
	var axes [3][]float64
	for i := range axes {
		axes[i] = make([]float64, len(segments))
	}
	for sNo, s := range segments {
		if !finite(s.FlowRate, s.ExhaustVelocity, s.Duration) || !finite(s.Direction[:]...) {
			return Vector3{}, fmt.Errorf("segment #%d has non finite values: %w", sNo, ErrMalformedInput)
		}
		if s.Direction.IsZero() {
			return Vector3{}, fmt.Errorf("segment #%d has no direction: %w", sNo, ErrMalformedInput)
		}
		dv := s.Direction.Scale(impulse(s.FlowRate, s.ExhaustVelocity, s.Duration, mass))
		if !finite(dv[:]...) {
			return Vector3{}, fmt.Errorf("segment #%d delta-v overflows: %w", sNo, ErrInvalidArgument)
		}
		for i := range axes {
			axes[i][sNo] = dv[i]
		}
	}
	dv := Vector3{floats.Sum(axes[0]), floats.Sum(axes[1]), floats.Sum(axes[2])}
	if !finite(dv[:]...) {
		return Vector3{}, fmt.Errorf("total delta-v overflows: %w", ErrInvalidArgument)
	}
	return dv, nil
}

func impulse(flowRate, exhaustVelocity, duration, mass float64) float64 {
	thrust := flowRate * exhaustVelocity
	return thrust * duration / mass
}

func checkMass(mass float64) error {
	if !finite(mass) || mass <= 0 {
		return fmt.Errorf("spacecraft mass must be strictly positive, got %f kg: %w", mass, ErrInvalidArgument)
	}
	return nil
}
