package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sim "github.com/tandem-sim/tandem-sim/sim"
	"github.com/tandem-sim/tandem-sim/sim/report"
	"github.com/tandem-sim/tandem-sim/sim/trace"
)

var (
	// CLI flags for the random stream
	seed       uint64 // Initial LCG seed
	multiplier uint64 // LCG multiplier
	increment  uint64 // LCG increment
	modulus    uint64 // LCG modulus
	budget     int64  // Maximum number of random draws

	// CLI flags for the run
	maxEvents    int64   // Processed-event cap
	firstArrival float64 // Time of the seeded arrival at station 1
	configPath   string  // Scenario YAML file
	logLevel     string  // Log verbosity level
	traceLevel   string  // Trace verbosity level
	jsonOutput   bool    // Print the result as JSON
	metricsOut   string  // Prometheus textfile output path

	// CLI flags for station 1 (external arrivals)
	s1Servers, s1Capacity      int
	s1ArrivalMin, s1ArrivalMax float64
	s1ServiceMin, s1ServiceMax float64

	// CLI flags for station 2 (fed by station 1)
	s2Servers, s2Capacity      int
	s2ServiceMin, s2ServiceMax float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "tandem-sim",
	Short: "Discrete-event simulator for two finite queues in tandem",
}

// runCmd executes the simulation using parameters from the scenario file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the tandem queue simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig(cmd.Flags())
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		startTime := time.Now()
		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		res := s.Run()
		logrus.Infof("Simulation wall time: %s", time.Since(startTime))

		if err := writeResult(cmd.OutOrStdout(), res, jsonOutput); err != nil {
			logrus.Fatalf("Failed to write result: %v", err)
		}
		if s.Trace != nil {
			logTraceSummary(trace.Summarize(s.Trace))
		}
		if metricsOut != "" {
			if err := report.WriteTextfile(metricsOut, res); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Metrics written to %s", metricsOut)
		}

		logrus.Info("Simulation complete.")
	},
}

// buildConfig starts from the reference scenario, overlays the scenario file if one
// was given, then applies only the flags the user explicitly set.
func buildConfig(flags *pflag.FlagSet) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		loaded, err := LoadScenario(configPath)
		if err != nil {
			return sim.Config{}, err
		}
		cfg = loaded
	}
	applyFlagOverrides(flags, &cfg)
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyFlagOverrides copies explicitly-set flags into cfg. Flags left at their
// defaults never overwrite scenario file values.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *sim.Config) {
	overrides := map[string]func(){
		"seed":           func() { cfg.Stream.Seed = seed },
		"multiplier":     func() { cfg.Stream.Multiplier = multiplier },
		"increment":      func() { cfg.Stream.Increment = increment },
		"modulus":        func() { cfg.Stream.Modulus = modulus },
		"budget":         func() { cfg.Stream.Budget = budget },
		"max-events":     func() { cfg.EventCap = maxEvents },
		"first-arrival":  func() { cfg.FirstArrival = firstArrival },
		"trace":          func() { cfg.TraceLevel = trace.TraceLevel(traceLevel) },
		"s1-servers":     func() { cfg.Station1.Servers = s1Servers },
		"s1-capacity":    func() { cfg.Station1.Capacity = s1Capacity },
		"s1-arrival-min": func() { cfg.Station1.ArrivalMin = s1ArrivalMin },
		"s1-arrival-max": func() { cfg.Station1.ArrivalMax = s1ArrivalMax },
		"s1-service-min": func() { cfg.Station1.ServiceMin = s1ServiceMin },
		"s1-service-max": func() { cfg.Station1.ServiceMax = s1ServiceMax },
		"s2-servers":     func() { cfg.Station2.Servers = s2Servers },
		"s2-capacity":    func() { cfg.Station2.Capacity = s2Capacity },
		"s2-service-min": func() { cfg.Station2.ServiceMin = s2ServiceMin },
		"s2-service-max": func() { cfg.Station2.ServiceMax = s2ServiceMax },
	}
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			logrus.Debugf("flag --%s=%s overrides scenario value", f.Name, f.Value.String())
			apply()
		}
	})
}

func writeResult(w io.Writer, res *sim.Result, asJSON bool) error {
	if asJSON {
		return report.WriteJSON(w, res)
	}
	return report.NewPrinter(w).Print(res)
}

func logTraceSummary(summary *trace.TraceSummary) {
	logrus.Infof("Trace: %d events %v, losses by station %v, peak occupancy %v",
		summary.TotalEvents, summary.KindDistribution, summary.LossesByStation, summary.PeakOccupancy)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultConfig()

	runCmd.Flags().StringVar(&configPath, "config", "", "Scenario YAML file (flags set explicitly override its values)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Trace level (none, events)")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON instead of text")
	runCmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write final statistics to this file in Prometheus text format")

	// Random stream
	runCmd.Flags().Uint64Var(&seed, "seed", defaults.Stream.Seed, "Initial LCG seed")
	runCmd.Flags().Uint64Var(&multiplier, "multiplier", defaults.Stream.Multiplier, "LCG multiplier")
	runCmd.Flags().Uint64Var(&increment, "increment", defaults.Stream.Increment, "LCG increment")
	runCmd.Flags().Uint64Var(&modulus, "modulus", defaults.Stream.Modulus, "LCG modulus (at most 2^32)")
	runCmd.Flags().Int64Var(&budget, "budget", defaults.Stream.Budget, "Maximum number of random draws")

	// Run limits
	runCmd.Flags().Int64Var(&maxEvents, "max-events", defaults.EventCap, "Maximum number of processed events")
	runCmd.Flags().Float64Var(&firstArrival, "first-arrival", defaults.FirstArrival, "Time of the first arrival at station 1")

	// Station 1
	runCmd.Flags().IntVar(&s1Servers, "s1-servers", defaults.Station1.Servers, "Station 1 server count")
	runCmd.Flags().IntVar(&s1Capacity, "s1-capacity", defaults.Station1.Capacity, "Station 1 capacity (customers in system)")
	runCmd.Flags().Float64Var(&s1ArrivalMin, "s1-arrival-min", defaults.Station1.ArrivalMin, "Station 1 minimum interarrival time")
	runCmd.Flags().Float64Var(&s1ArrivalMax, "s1-arrival-max", defaults.Station1.ArrivalMax, "Station 1 maximum interarrival time")
	runCmd.Flags().Float64Var(&s1ServiceMin, "s1-service-min", defaults.Station1.ServiceMin, "Station 1 minimum service time")
	runCmd.Flags().Float64Var(&s1ServiceMax, "s1-service-max", defaults.Station1.ServiceMax, "Station 1 maximum service time")

	// Station 2
	runCmd.Flags().IntVar(&s2Servers, "s2-servers", defaults.Station2.Servers, "Station 2 server count")
	runCmd.Flags().IntVar(&s2Capacity, "s2-capacity", defaults.Station2.Capacity, "Station 2 capacity (customers in system)")
	runCmd.Flags().Float64Var(&s2ServiceMin, "s2-service-min", defaults.Station2.ServiceMin, "Station 2 minimum service time")
	runCmd.Flags().Float64Var(&s2ServiceMax, "s2-service-max", defaults.Station2.ServiceMax, "Station 2 maximum service time")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
