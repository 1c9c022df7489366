package subsys

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestThermostatAdjust(t *testing.T) {
	tcs := DefaultThermostat()
	c := tcs.Adjust(20, 24)
	if c.Delta != 1 || c.Adjusted != 21 || !c.Heating() {
		t.Fatalf("unexpected correction %+v", c)
	}
	if c.String() != "TCS increasing interior temperature by 1.00 degrees for cold space humans" {
		t.Fatalf("unexpected message %q", c)
	}
	c = tcs.Adjust(30, 22)
	if c.Delta != -2 || c.Adjusted != 28 || c.Heating() {
		t.Fatalf("unexpected correction %+v", c)
	}
	if c.String() != "TCS decreasing interior temperature by 2.00 degrees for sweaty space humans" {
		t.Fatalf("unexpected message %q", c)
	}
	// At the setpoint nothing changes, and this is reported as a decrease like the original controller did.
	c = tcs.Adjust(22, 22)
	if c.Delta != 0 || c.Adjusted != 22 || c.Heating() {
		t.Fatalf("unexpected correction %+v", c)
	}
}

func TestThermostatConverge(t *testing.T) {
	tcs := DefaultThermostat()
	corrections := tcs.Converge(10, 20, 40)
	if len(corrections) != 40 {
		t.Fatalf("expected 40 corrections, got %d", len(corrections))
	}
	prevErr := math.Inf(1)
	for i, c := range corrections {
		err := math.Abs(20 - c.Adjusted)
		if err >= prevErr {
			t.Fatalf("step %d did not reduce the error", i)
		}
		prevErr = err
	}
	// The error decays as (1-gain)^n.
	if !floats.EqualWithinAbs(corrections[39].Adjusted, 20-10*math.Pow(0.75, 40), 1e-9) {
		t.Fatalf("final temperature %f", corrections[39].Adjusted)
	}
	if len(tcs.Converge(10, 20, 0)) != 0 {
		t.Fatal("no step should lead to no correction")
	}
}

func TestNewThermostat(t *testing.T) {
	if tcs, err := NewThermostat(0.5); err != nil || tcs.Gain != 0.5 {
		t.Fatalf("valid gain rejected: %v", err)
	}
	for _, gain := range []float64{0, -0.1, 1.5, math.NaN()} {
		if _, err := NewThermostat(gain); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("gain %f should be rejected, got %v", gain, err)
		}
	}
}
