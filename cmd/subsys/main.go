package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ChristopherRabotin/subsys"
	kitlog "github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	confDir string
	which   string
	debug   bool
)

func init() {
	flag.StringVar(&confDir, "config", os.Getenv(subsys.ConfigEnv), "directory of conf.toml (defaults to $"+subsys.ConfigEnv+")")
	flag.StringVar(&which, "subsys", "all", "subsystem to demo: eps, rcs, tcs or all")
	flag.BoolVar(&debug, "debug", false, "log every computation")
}

func main() {
	flag.Parse()
	conf, err := subsys.LoadConfig(confDir)
	if err != nil {
		log.Fatalf("could not load configuration: %s", err)
	}
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	if !debug {
		logger = kitlog.NewNopLogger()
	}

	run := map[string]func(subsys.Config, kitlog.Logger) error{
		"eps": demoEPS,
		"rcs": demoRCS,
		"tcs": demoTCS,
	}
	names := []string{"eps", "rcs", "tcs"}
	if which != "all" {
		if _, ok := run[which]; !ok {
			log.Fatalf("unknown subsystem `%s` (want one of %s or all)", which, strings.Join(names, ", "))
		}
		names = []string{which}
	}
	for _, name := range names {
		if err := run[name](conf, logger); err != nil {
			log.Fatalf("%s: %s", name, err)
		}
	}
}

func demoEPS(conf subsys.Config, logger kitlog.Logger) error {
	eps, err := conf.SolarArray()
	if err != nil {
		return err
	}
	cases := []subsys.PowerInterval{
		{Voltage: 25, Current: 10, Duration: time.Hour},
		{Voltage: 30, Current: 8, Duration: 30 * time.Minute},
		{Voltage: 15, Current: 12, Duration: 2 * time.Hour},
	}
	for i, c := range cases {
		fmt.Printf("--- EPS Test Case %d ---\n", i+1)
		power := eps.AvailablePower(c.Voltage, c.Current)
		fmt.Println(subsys.FormatPower(power))
		energy := eps.ChargeEnergy(power, c.Duration)
		fmt.Println(subsys.FormatEnergy(energy))
		logger.Log("level", "debug", "subsys", "eps", "voltage", c.Voltage, "current", c.Current, "power(W)", power, "energy(J)", energy)
	}
	profiles := [][]subsys.PowerInterval{
		{interval(22, 7, 300), interval(40, 7, 60), interval(25, 10, 200), interval(10, 4, 600)},
		{interval(0, 7, 300), interval(30, 10, 60), interval(28, 10, 200), interval(10, 10, 10)},
	}
	for i, p := range profiles {
		fmt.Println(subsys.FormatEnergyProfile(i+1, subsys.EnergyProfile(eps, p)))
	}
	fmt.Println(strings.Repeat("-", 20))
	return nil
}

func interval(voltage, current, seconds float64) subsys.PowerInterval {
	return subsys.PowerInterval{Voltage: voltage, Current: current, Duration: time.Duration(seconds * float64(time.Second))}
}

func demoRCS(conf subsys.Config, logger kitlog.Logger) error {
	reg := prometheus.NewRegistry()
	rcs, err := conf.RCS(subsys.WithLogger(logger), subsys.WithRegisterer(reg))
	if err != nil {
		return err
	}
	cases := []struct {
		reading subsys.ThrusterReading
		elapsed float64
	}{
		{subsys.ThrusterReading{Name: "Thruster 1", Thrust: 0.02 * 1000, FlowRate: 0.02, ExhaustVelocity: 1000}, 5},
		{subsys.ThrusterReading{Name: "Thruster 2", Thrust: 0.06 * 1000, FlowRate: 0.06, ExhaustVelocity: 1000}, 3},
		{subsys.ThrusterReading{Name: "Thruster 3", Thrust: 0.05 * 2000, FlowRate: 0.05, ExhaustVelocity: 2000}, 10},
	}
	for i, c := range cases {
		fmt.Printf("--- RCS Test Case %d ---\n", i+1)
		violations, err := rcs.Check([]subsys.ThrusterReading{c.reading})
		if err != nil {
			return err
		}
		if err := subsys.WriteViolations(os.Stdout, violations); err != nil {
			return err
		}
		dv, err := rcs.Impulse(c.reading.FlowRate, c.reading.ExhaustVelocity, c.elapsed)
		if err != nil {
			return err
		}
		fmt.Println(subsys.FormatDeltaV(c.reading.Name, dv))
	}
	fmt.Println("--- RCS multi-thruster burn ---")
	dv, err := rcs.Burn([]subsys.BurnSegment{
		{FlowRate: 0.04, ExhaustVelocity: 2000, Duration: 15, Direction: subsys.Vector3{1, 0, 0}},
		{FlowRate: 0.03, ExhaustVelocity: 2000, Duration: 4, Direction: subsys.Vector3{0, 1, 0}},
		{FlowRate: 0.01, ExhaustVelocity: 2000, Duration: 3, Direction: subsys.Vector3{0, 0, 1}},
	})
	if err != nil {
		return err
	}
	fmt.Println(subsys.FormatDeltaVVector(dv))
	fmt.Println("--- Electric propulsion catalog ---")
	var catalog []subsys.ThrusterReading
	for _, th := range []*subsys.FixedThruster{subsys.NewPPS1350(), subsys.NewHERMeS()} {
		v, p := th.Max()
		catalog = append(catalog, subsys.ReadingFromThruster(th.Name, th, v, p))
	}
	violations, err := rcs.Check(catalog)
	if err != nil {
		return err
	}
	if err := subsys.WriteViolations(os.Stdout, violations); err != nil {
		return err
	}
	fmt.Println(strings.Repeat("-", 30))
	if debug {
		return logCounters(reg, logger)
	}
	return nil
}

// logCounters logs the value of every counter of the registry.
func logCounters(reg prometheus.Gatherer, logger kitlog.Logger) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			keyvals := []interface{}{"level", "info", "metric", mf.GetName()}
			for _, l := range m.GetLabel() {
				keyvals = append(keyvals, l.GetName(), l.GetValue())
			}
			logger.Log(append(keyvals, "value", m.GetCounter().GetValue())...)
		}
	}
	return nil
}

func demoTCS(conf subsys.Config, logger kitlog.Logger) error {
	tcs, err := conf.Thermostat()
	if err != nil {
		return err
	}
	fmt.Println("--- TCS ---")
	for _, c := range tcs.Converge(18, 22, 4) {
		fmt.Printf("%s -> %.2f\n", c, c.Adjusted)
		logger.Log("level", "debug", "subsys", "tcs", "delta", c.Delta, "temperature", c.Adjusted)
	}
	c := tcs.Adjust(26, 22)
	fmt.Printf("%s -> %.2f\n", c, c.Adjusted)
	return nil
}
