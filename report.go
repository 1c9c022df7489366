package subsys

import (
	"fmt"
	"io"
)

func (v Violation) String() string {
	prec := 2
	if v.Quantity == QuantityFlowRate {
		prec = 4
	}
	return fmt.Sprintf("%s exceeds %s limit by %.*f %s", v.Thruster, v.Quantity, prec, v.Excess, v.Quantity.Unit())
}

// WriteViolations writes one line per violation.
func WriteViolations(w io.Writer, violations []Violation) error {
	for _, v := range violations {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// FormatDeltaV formats the delta-v of a given thruster.
func FormatDeltaV(name string, dv float64) string {
	return fmt.Sprintf("%s calculated delta_v: %.2f m/s", name, dv)
}

// FormatDeltaVVector formats a delta-v vector along with its magnitude.
func FormatDeltaVVector(dv Vector3) string {
	return fmt.Sprintf("delta_v vector: %s m/s (|delta_v| = %.4f m/s)", dv, dv.Norm())
}

// FormatPower formats an available power.
func FormatPower(power float64) string {
	return fmt.Sprintf("Available Power: %.2f W", power)
}

// FormatEnergy formats a battery charging energy.
func FormatEnergy(energy float64) string {
	return fmt.Sprintf("Energy for charging: %.2f J", energy)
}

// FormatEnergyProfile formats the total charging energy of a numbered profile.
func FormatEnergyProfile(n int, energy float64) string {
	return fmt.Sprintf("Total energy for Check + %d: %.1f Joules", n, energy)
}
