package subsys

import (
	kitlog "github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultSpacecraftMass is the spacecraft mass in kg used for the delta-v computations.
const DefaultSpacecraftMass = 500.

// RCS monitors the reaction control system of a spacecraft of constant mass.
// It holds no mutable state other than its counters and may be shared between goroutines.
type RCS struct {
	Limits  LimitSet
	Mass    float64 // in kg
	logger  kitlog.Logger
	metrics *rcsMetrics
}

type rcsMetrics struct {
	violations *prometheus.CounterVec
	burns      *prometheus.CounterVec
}

// RCSOption configures an RCS.
type RCSOption func(*RCS) error

// WithLogger sets the logger of the RCS.
func WithLogger(logger kitlog.Logger) RCSOption {
	return func(r *RCS) error {
		r.logger = kitlog.With(logger, "subsys", "rcs")
		return nil
	}
}

// WithRegisterer registers the RCS counters with the provided registerer.
func WithRegisterer(reg prometheus.Registerer) RCSOption {
	return func(r *RCS) error {
		m := &rcsMetrics{
			violations: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "subsys",
					Subsystem: "rcs",
					Name:      "limit_violations_total",
					Help:      "Total number of thruster limit violations.",
				},
				[]string{"thruster", "quantity"},
			),
			burns: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "subsys",
					Subsystem: "rcs",
					Name:      "burns_total",
					Help:      "Total number of delta-v computations.",
				},
				[]string{"mode"},
			),
		}
		for _, c := range []prometheus.Collector{m.violations, m.burns} {
			if err := reg.Register(c); err != nil {
				return err
			}
		}
		r.metrics = m
		return nil
	}
}

// NewRCS returns a new RCS monitor.
func NewRCS(limits LimitSet, mass float64, opts ...RCSOption) (*RCS, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	if err := checkMass(mass); err != nil {
		return nil, err
	}
	r := &RCS{Limits: limits, Mass: mass, logger: kitlog.NewNopLogger()}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Check checks the readings against the limits of this RCS, and logs and counts every violation.
func (r *RCS) Check(readings []ThrusterReading) ([]Violation, error) {
	violations, err := CheckLimits(readings, r.Limits)
	if err != nil {
		r.logger.Log("level", "error", "op", "check", "err", err)
		return nil, err
	}
	for _, v := range violations {
		r.logger.Log("level", "warning", "thruster", v.Thruster, "quantity", v.Quantity, "measured", v.Measured, "limit", v.Limit, "excess", v.Excess)
		if r.metrics != nil {
			r.metrics.violations.WithLabelValues(v.Thruster, v.Quantity.String()).Inc()
		}
	}
	return violations, nil
}

// Impulse returns the delta-v in m/s of a single burn.
func (r *RCS) Impulse(flowRate, exhaustVelocity, duration float64) (float64, error) {
	dv, err := DeltaVScalar(flowRate, exhaustVelocity, duration, r.Mass)
	if err != nil {
		r.logger.Log("level", "error", "op", "impulse", "err", err)
		return 0, err
	}
	r.countBurn("scalar")
	r.logger.Log("level", "debug", "op", "impulse", "Δv(m/s)", dv)
	return dv, nil
}

// Burn returns the total delta-v vector in m/s of the segments.
func (r *RCS) Burn(segments []BurnSegment) (Vector3, error) {
	dv, err := DeltaVVector(segments, r.Mass)
	if err != nil {
		r.logger.Log("level", "error", "op", "burn", "err", err)
		return Vector3{}, err
	}
	r.countBurn("vector")
	r.logger.Log("level", "debug", "op", "burn", "segments", len(segments), "Δv(m/s)", dv, "|Δv|(m/s)", dv.Norm())
	return dv, nil
}

func (r *RCS) countBurn(mode string) {
	if r.metrics != nil {
		r.metrics.burns.WithLabelValues(mode).Inc()
	}
}
