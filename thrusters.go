package subsys

import "fmt"

// ThrusterReading is the measured state of a given thruster.
// A zero field is an absent measurement and never violates a limit.
type ThrusterReading struct {
	Name            string  // unique within one check
	Thrust          float64 // in N
	FlowRate        float64 // in kg/s
	ExhaustVelocity float64 // in m/s
}

// DerivedThrust returns the thrust computed from the flow rate and exhaust velocity.
func (r ThrusterReading) DerivedThrust() float64 {
	return r.FlowRate * r.ExhaustVelocity
}

func (r ThrusterReading) String() string {
	return fmt.Sprintf("%s: F=%.2f N mdot=%.4f kg/s ve=%.2f m/s", r.Name, r.Thrust, r.FlowRate, r.ExhaustVelocity)
}

// Thruster defines a thruster interface.
type Thruster interface {
	// Returns the minimum power and voltage requirements for this thruster.
	Min() (voltage, power uint)
	// Returns the max power and voltage requirements for this thruster.
	Max() (voltage, power uint)
	// Returns the thrust in Newtons and isp in seconds.
	Thrust(voltage, power uint) (thrust, isp float64)
}

// ReadingFromThruster returns the reading of a thruster at the provided operating point.
// The exhaust velocity is Isp*g0 and the flow rate follows from F = mdot * ve.
func ReadingFromThruster(name string, t Thruster, voltage, power uint) ThrusterReading {
	thrust, isp := t.Thrust(voltage, power)
	ve := isp * g0
	var mdot float64
	if ve > 0 {
		mdot = thrust / ve
	}
	return ThrusterReading{Name: name, Thrust: thrust, FlowRate: mdot, ExhaustVelocity: ve}
}

/* Available thrusters */

// FixedThruster only operates at a single voltage and power, like most flight qualified electric thrusters.
type FixedThruster struct {
	Name           string
	voltage, power uint
	thrust, isp    float64
}

// NewPPS1350 returns the Snecma thruster used on SMART-1.
func NewPPS1350() *FixedThruster {
	return &FixedThruster{"PPS1350", 350, 2500, 89e-3, 1650}
}

// NewHERMeS returns a thruster based on the NASA & Rocketdyne 12.5kW demo.
func NewHERMeS() *FixedThruster {
	return &FixedThruster{"HERMeS", 800, 12500, 0.680, 2960}
}

// Min implements the Thruster interface.
func (t *FixedThruster) Min() (voltage, power uint) {
	return t.Max()
}

// Max implements the Thruster interface.
func (t *FixedThruster) Max() (voltage, power uint) {
	return t.voltage, t.power
}

// Thrust implements the Thruster interface. It panics outside of the operating point.
func (t *FixedThruster) Thrust(voltage, power uint) (thrust, isp float64) {
	if voltage != t.voltage || power != t.power {
		panic(fmt.Errorf("%s only runs at %d V and %d W, not %d V and %d W", t.Name, t.voltage, t.power, voltage, power))
	}
	return t.thrust, t.isp
}

// GenericThruster is a thruster with a constant thrust and isp, e.g. a cold gas RCS jet.
type GenericThruster struct {
	thrust float64
	isp    float64
}

// Min implements the Thruster interface.
func (t *GenericThruster) Min() (voltage, power uint) {
	return 0, 0
}

// Max implements the Thruster interface.
func (t *GenericThruster) Max() (voltage, power uint) {
	return 0, 0
}

// Thrust implements the Thruster interface.
func (t *GenericThruster) Thrust(voltage, power uint) (thrust, isp float64) {
	return t.thrust, t.isp
}

// NewGenericThruster returns a generic thruster.
func NewGenericThruster(thrust, isp float64) *GenericThruster {
	return &GenericThruster{thrust, isp}
}
