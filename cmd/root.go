package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sensego/sensego/sense"
)

var (
	// CLI flags for the sensing run
	seed         int64   // Seed for process sampling and policy draws
	logLevel     string  // Log verbosity level
	experiment   string  // Path to an experiment spec YAML (overrides domain/process flags)
	rounds       int     // Number of sensing rounds
	topk         int     // Regions sensed per round
	duration     float64 // Sensing duration per chosen region
	levels       int     // Hierarchy depth of the candidate decomposition
	domainLo     []float64
	domainHi     []float64
	policyName   string  // Acquisition policy (epsilon-greedy, random)
	scheduleName string  // Exploration schedule (saturating, decay, constant)
	scheduleEps  float64 // Threshold for the constant schedule
	costType     string  // Sensing cost model (volume, uniform)
	costWeight   float64 // Cost scale factor
	baseline     float64 // Ground-truth baseline intensity
	initialSense bool    // Seed the estimator with one whole-domain observation
	gridPoints   int     // Per-axis resolution of the best-point query
	traceOut     string  // Path to dump the round trace JSON (empty = no dump)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sensego",
	Short: "Adaptive sensing of spatial point processes",
}

// flagSpec builds an ExperimentSpec from the CLI flags. The ground truth is
// the baseline plus two bumps at the one-third points of each axis, a target
// with structure for the policy to find without being told where it is.
func flagSpec() *ExperimentSpec {
	spec := &ExperimentSpec{
		Seed:         seed,
		Lo:           domainLo,
		Hi:           domainHi,
		Levels:       levels,
		Rounds:       rounds,
		TopK:         topk,
		Duration:     duration,
		Policy:       policyName,
		Schedule:     ScheduleSpec{Name: scheduleName, Eps: scheduleEps},
		Cost:         CostSpec{Type: costType, Weight: costWeight},
		Process:      ProcessSpec{Baseline: baseline},
		InitialSense: initialSense,
		GridPoints:   gridPoints,
	}
	if len(spec.Lo) == len(spec.Hi) {
		for _, frac := range []float64{1.0 / 3, 2.0 / 3} {
			c := make([]float64, len(spec.Lo))
			w := 0.0
			for i := range c {
				span := spec.Hi[i] - spec.Lo[i]
				c[i] = spec.Lo[i] + frac*span
				w += span
			}
			w /= float64(len(c)) * 10
			spec.Process.Bumps = append(spec.Process.Bumps, BumpSpec{
				Center: c, Amplitude: 4 * baseline, Width: w,
			})
		}
	}
	return spec
}

// runCmd executes one sensing experiment from CLI flags or a spec file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a sensing experiment",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec := flagSpec()
		if experiment != "" {
			spec, err = LoadExperimentSpec(experiment)
			if err != nil {
				logrus.Fatalf("Loading experiment spec: %v", err)
			}
		}

		exp, err := NewExperiment(spec)
		if err != nil {
			logrus.Fatalf("Assembling experiment: %v", err)
		}
		logrus.Infof("Starting sensing run %s: %d rounds, %d candidates, topk=%d, policy=%s",
			exp.Trace.RunID, spec.Rounds, len(exp.Candidates), spec.TopK, exp.Trace.Policy)

		runErr := exp.Run()

		exp.Metrics.Print()
		if best, err := exp.BestPoint(); err == nil {
			logrus.Infof("Best point so far: %v (true rate %v)", best, exp.Process.Rate(best))
		} else if !errors.Is(err, sense.ErrNotFitted) {
			logrus.Errorf("Best-point query failed: %v", err)
		}

		if traceOut != "" {
			if err := exp.Trace.WriteJSON(traceOut); err != nil {
				logrus.Errorf("Writing trace: %v", err)
			} else {
				logrus.Infof("Trace written to %s", traceOut)
			}
		}
		if runErr != nil {
			logrus.Fatalf("%v", runErr)
		}
		logrus.Info("Sensing run complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for process sampling and policy draws")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&experiment, "experiment", "", "Experiment spec YAML (overrides the domain/process flags)")

	// Sensing loop configs
	runCmd.Flags().IntVar(&rounds, "rounds", 100, "Number of sensing rounds")
	runCmd.Flags().IntVar(&topk, "topk", 1, "Regions sensed per round")
	runCmd.Flags().Float64Var(&duration, "duration", 1.0, "Sensing duration per chosen region")
	runCmd.Flags().StringVar(&policyName, "policy", "epsilon-greedy", "Acquisition policy (epsilon-greedy, random)")
	runCmd.Flags().StringVar(&scheduleName, "schedule", "saturating", "Exploration schedule (saturating, decay, constant)")
	runCmd.Flags().Float64Var(&scheduleEps, "eps", 0.1, "Threshold for the constant schedule")
	runCmd.Flags().StringVar(&costType, "cost", "volume", "Sensing cost model (volume, uniform)")
	runCmd.Flags().Float64Var(&costWeight, "cost-weight", 1.0, "Cost scale factor")

	// Domain and ground-truth process configs
	runCmd.Flags().Float64SliceVar(&domainLo, "lo", []float64{-1}, "Comma-separated per-axis lower domain bounds")
	runCmd.Flags().Float64SliceVar(&domainHi, "hi", []float64{1}, "Comma-separated per-axis upper domain bounds")
	runCmd.Flags().IntVar(&levels, "levels", 6, "Hierarchy depth of the candidate decomposition")
	runCmd.Flags().Float64Var(&baseline, "baseline", 2.0, "Ground-truth baseline intensity (events per unit volume per unit time)")
	runCmd.Flags().BoolVar(&initialSense, "initial-sense", true, "Seed the estimator with one whole-domain observation")
	runCmd.Flags().IntVar(&gridPoints, "grid-points", 64, "Per-axis resolution of the final best-point query")
	runCmd.Flags().StringVar(&traceOut, "trace-out", "", "Write the per-round trace JSON to this path")

	rootCmd.AddCommand(runCmd)
}
