package subsys

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	if l.MaxThrust != 100 || l.MaxFlowRate != 0.05 || l.MaxExhaustVelocity != 2000 {
		t.Fatalf("unexpected default limits %+v", l)
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("default limits are invalid: %s", err)
	}
	for _, bad := range []LimitSet{
		{0, 0.05, 2000},
		{100, -1, 2000},
		{100, 0.05, math.NaN()},
		{math.Inf(1), 0.05, 2000},
	} {
		if err := bad.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("limits %+v should be invalid, got %v", bad, err)
		}
	}
}

func TestCheckLimitsWithinLimits(t *testing.T) {
	readings := []ThrusterReading{
		{"Thruster 1", 20, 0.02, 1000},
		{"Thruster 3", 100, 0.05, 2000}, // exactly at the limits
		{Name: "absent fields"},
		{"negative", -10, -1, -5},
	}
	vs, err := CheckLimits(readings, DefaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 0 {
		t.Fatalf("expected no violation, got %v", vs)
	}
	vs, err = CheckLimits(nil, DefaultLimits())
	if err != nil || len(vs) != 0 {
		t.Fatalf("no readings should lead to no violation: %v %v", vs, err)
	}
}

func TestCheckLimitsSingleExcess(t *testing.T) {
	ε := 1e-3
	vs, err := CheckLimits([]ThrusterReading{{Name: "T", Thrust: DefaultMaxThrust + ε}}, DefaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 1 {
		t.Fatalf("expected one violation, got %d", len(vs))
	}
	v := vs[0]
	if v.Thruster != "T" || v.Quantity != QuantityThrust || v.Limit != DefaultMaxThrust {
		t.Fatalf("invalid violation %+v", v)
	}
	if !floats.EqualWithinAbs(v.Excess, ε, 1e-9) {
		t.Fatalf("excess %f != %f", v.Excess, ε)
	}
}

func TestCheckLimitsOrder(t *testing.T) {
	// Taken from the RCS test cases: thruster 2 runs at 0.06 kg/s.
	readings := []ThrusterReading{
		{"Thruster 2", 0.06 * 1000, 0.06, 1000},
		{"Both", 150, 0.01, 2500},
		{"All", 101, 0.051, 2001},
	}
	vs, err := CheckLimits(readings, DefaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	exp := []struct {
		name string
		q    Quantity
		diff float64
	}{
		{"Thruster 2", QuantityFlowRate, 0.01},
		{"Both", QuantityThrust, 50},
		{"Both", QuantityExhaustVelocity, 500},
		{"All", QuantityThrust, 1},
		{"All", QuantityFlowRate, 0.001},
		{"All", QuantityExhaustVelocity, 1},
	}
	if len(vs) != len(exp) {
		t.Fatalf("expected %d violations, got %d: %v", len(exp), len(vs), vs)
	}
	for i, e := range exp {
		if vs[i].Thruster != e.name || vs[i].Quantity != e.q {
			t.Fatalf("#%d: expected %s/%s, got %s/%s", i, e.name, e.q, vs[i].Thruster, vs[i].Quantity)
		}
		if !floats.EqualWithinAbs(vs[i].Excess, e.diff, 1e-9) || vs[i].Excess <= 0 {
			t.Fatalf("#%d: excess %f != %f", i, vs[i].Excess, e.diff)
		}
		if !floats.EqualWithinAbs(vs[i].Measured-vs[i].Limit, vs[i].Excess, 1e-12) {
			t.Fatalf("#%d: excess is not measured - limit", i)
		}
	}
}

func TestCheckLimitsCustomLimits(t *testing.T) {
	limits := LimitSet{MaxThrust: 10, MaxFlowRate: 1, MaxExhaustVelocity: 5000}
	vs, err := CheckLimits([]ThrusterReading{{"T", 20, 0.06, 3000}}, limits)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 1 || vs[0].Quantity != QuantityThrust || vs[0].Excess != 10 {
		t.Fatalf("unexpected violations %v", vs)
	}
	if DefaultLimits().MaxThrust != DefaultMaxThrust {
		t.Fatal("custom limits altered the defaults")
	}
}

func TestCheckLimitsMalformed(t *testing.T) {
	for name, readings := range map[string][]ThrusterReading{
		"no name":   {{Thrust: 1}},
		"duplicate": {{Name: "A"}, {Name: "A", Thrust: 200}},
		"NaN":       {{Name: "A", FlowRate: math.NaN()}},
		"Inf":       {{Name: "A", ExhaustVelocity: math.Inf(1)}},
	} {
		if vs, err := CheckLimits(readings, DefaultLimits()); !errors.Is(err, ErrMalformedInput) || vs != nil {
			t.Fatalf("%s: expected a malformed input error, got %v (%v)", name, err, vs)
		}
	}
	if _, err := CheckLimits([]ThrusterReading{{Name: "A"}}, LimitSet{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid limits, got %v", err)
	}
}

func TestCheckReading(t *testing.T) {
	// No name uniqueness when checking a single reading.
	vs, err := CheckReading(ThrusterReading{Thrust: 120, FlowRate: 0.07}, DefaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 || vs[0].Quantity != QuantityThrust || vs[1].Quantity != QuantityFlowRate {
		t.Fatalf("unexpected violations %v", vs)
	}
	if vs, err := CheckReading(ThrusterReading{Name: "A", Thrust: math.NaN()}, DefaultLimits()); !errors.Is(err, ErrMalformedInput) || vs != nil {
		t.Fatalf("NaN thrust should be malformed, got %v (%v)", err, vs)
	}
	if vs, err := CheckReading(ThrusterReading{Name: "A", Thrust: 1}, LimitSet{}); !errors.Is(err, ErrInvalidArgument) || vs != nil {
		t.Fatalf("null limits should be invalid, got %v (%v)", err, vs)
	}
}

func TestQuantity(t *testing.T) {
	for q, exp := range map[Quantity][2]string{
		QuantityThrust:          {"thrust", "N"},
		QuantityFlowRate:        {"flow rate", "kg/s"},
		QuantityExhaustVelocity: {"exhaust velocity", "m/s"},
	} {
		if q.String() != exp[0] || q.Unit() != exp[1] {
			t.Fatalf("%d: %s %s", q, q, q.Unit())
		}
	}
	assertPanic(t, func() {
		_ = Quantity(0).String()
	})
	assertPanic(t, func() {
		_ = Quantity(42).Unit()
	})
}
