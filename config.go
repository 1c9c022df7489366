package subsys

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of the `conf.toml` file.
const ConfigEnv = "SUBSYS_CONFIG"

// Config holds the parameters of all the subsystems.
type Config struct {
	Limits      LimitSet
	Mass        float64 // spacecraft mass in kg
	EPS         EPSLimits
	ThermalGain float64
}

// DefaultConfig returns the nominal configuration.
func DefaultConfig() Config {
	return Config{DefaultLimits(), DefaultSpacecraftMass, DefaultEPSLimits(), DefaultThermalGain}
}

// Validate returns an error if any of the parameters is outside of its domain.
func (c Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("rcs: %w", err)
	}
	if err := checkMass(c.Mass); err != nil {
		return fmt.Errorf("spacecraft: %w", err)
	}
	if err := c.EPS.Validate(); err != nil {
		return fmt.Errorf("eps: %w", err)
	}
	if _, err := NewThermostat(c.ThermalGain); err != nil {
		return fmt.Errorf("tcs: %w", err)
	}
	return nil
}

// RCS returns the RCS monitor of this configuration.
func (c Config) RCS(opts ...RCSOption) (*RCS, error) {
	return NewRCS(c.Limits, c.Mass, opts...)
}

// SolarArray returns the solar array of this configuration.
func (c Config) SolarArray() (*SolarArray, error) {
	return NewSolarArray(c.EPS)
}

// Thermostat returns the thermostat of this configuration.
func (c Config) Thermostat() (Thermostat, error) {
	return NewThermostat(c.ThermalGain)
}

// LoadConfig reads `conf.toml` from the provided directory. Missing keys keep their default value,
// and any key may be overridden with an environment variable, e.g. SUBSYS_RCS_MAX_THRUST.
// If dir is empty, only the defaults and the environment are used.
func LoadConfig(dir string) (Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("rcs.max_thrust", def.Limits.MaxThrust)
	v.SetDefault("rcs.max_flow_rate", def.Limits.MaxFlowRate)
	v.SetDefault("rcs.max_exhaust_velocity", def.Limits.MaxExhaustVelocity)
	v.SetDefault("spacecraft.mass", def.Mass)
	v.SetDefault("eps.max_voltage", def.EPS.MaxVoltage)
	v.SetDefault("eps.max_current", def.EPS.MaxCurrent)
	v.SetDefault("eps.max_power", def.EPS.MaxPower)
	v.SetDefault("tcs.gain", def.ThermalGain)
	v.SetEnvPrefix("subsys")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if dir != "" {
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s/conf.toml: %w", dir, err)
		}
	}

	conf := Config{
		Limits: LimitSet{
			MaxThrust:          v.GetFloat64("rcs.max_thrust"),
			MaxFlowRate:        v.GetFloat64("rcs.max_flow_rate"),
			MaxExhaustVelocity: v.GetFloat64("rcs.max_exhaust_velocity"),
		},
		Mass: v.GetFloat64("spacecraft.mass"),
		EPS: EPSLimits{
			MaxVoltage: v.GetFloat64("eps.max_voltage"),
			MaxCurrent: v.GetFloat64("eps.max_current"),
			MaxPower:   v.GetFloat64("eps.max_power"),
		},
		ThermalGain: v.GetFloat64("tcs.gain"),
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// LoadConfigFromEnv loads the configuration from the directory in SUBSYS_CONFIG, if set.
func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.Getenv(ConfigEnv))
}
