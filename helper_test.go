package subsys

import (
	"testing"

	"github.com/gonum/floats"
)

const testε = 1e-12

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b Vector3) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbs(a[i], b[i], testε) {
			return false
		}
	}
	return true
}
