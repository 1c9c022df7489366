package subsys

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

const (
	// g0 is the standard gravity in m/s^2, used to convert specific impulse to exhaust velocity.
	g0 = 9.80665
	// zeroε is the threshold under which a norm is considered nil.
	zeroε = 1e-12
)

// Vector3 is a 3x1 vector, used for thrust directions and delta-v (in m/s).
type Vector3 [3]float64

// X returns the first component.
func (v Vector3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vector3) Z() float64 { return v[2] }

// Norm returns the Euclidean norm of the vector.
func (v Vector3) Norm() float64 {
	return mat64.Norm(mat64.NewVector(3, v.slice()), 2)
}

// Unit returns the unit vector of v, or the nil vector if v has a nil norm.
func (v Vector3) Unit() (u Vector3) {
	n := v.Norm()
	if floats.EqualWithinAbs(n, 0, zeroε) {
		return
	}
	for i, val := range v {
		u[i] = val / n
	}
	return
}

// IsZero returns whether all the components are exactly nil.
// A tiny but non nil vector is not zero.
func (v Vector3) IsZero() bool {
	return v == Vector3{}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v[0], v[1], v[2])
}

// slice returns a copy of the components as a slice, since mat64 may alias its backing data.
func (v Vector3) slice() []float64 {
	return []float64{v[0], v[1], v[2]}
}

// finite returns whether none of the provided values is NaN or infinite.
func finite(vals ...float64) bool {
	for _, val := range vals {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}
