package cmd

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sensego/sensego/sense"
	"github.com/sensego/sensego/sense/estimator"
	"github.com/sensego/sensego/sense/poisson"
	"github.com/sensego/sensego/sense/region"
	"github.com/sensego/sensego/sense/trace"
)

// ExperimentSpec is the top-level experiment configuration.
// Loaded from YAML via LoadExperimentSpec(path) or built from CLI flags.
type ExperimentSpec struct {
	Seed     int64     `yaml:"seed"`
	Lo       []float64 `yaml:"lo"` // per-axis lower domain bounds
	Hi       []float64 `yaml:"hi"` // per-axis upper domain bounds
	Levels   int       `yaml:"levels"`
	Rounds   int       `yaml:"rounds"`
	TopK     int       `yaml:"topk"`
	Duration float64   `yaml:"duration"` // sensing duration per chosen region
	Policy   string    `yaml:"policy,omitempty"`

	Schedule ScheduleSpec `yaml:"schedule,omitempty"`
	Cost     CostSpec     `yaml:"cost,omitempty"`
	Process  ProcessSpec  `yaml:"process"`

	// InitialSense seeds the estimator with one whole-domain observation
	// before the first round, so round one can already exploit.
	InitialSense bool `yaml:"initial_sense"`

	// GridPoints is the per-axis resolution of the final best-point query.
	GridPoints int `yaml:"grid_points,omitempty"`
}

// ScheduleSpec selects the exploration schedule by name.
type ScheduleSpec struct {
	Name string  `yaml:"name,omitempty"`
	Eps  float64 `yaml:"eps,omitempty"` // used by "constant" only
}

// CostSpec selects the sensing cost model.
type CostSpec struct {
	Type   string  `yaml:"type,omitempty"` // "volume" (default) or "uniform"
	Weight float64 `yaml:"weight,omitempty"`
}

// ProcessSpec parameterizes the ground-truth Poisson intensity: a constant
// baseline plus Gaussian bumps.
type ProcessSpec struct {
	Baseline float64    `yaml:"baseline"`
	Bumps    []BumpSpec `yaml:"bumps,omitempty"`
}

// BumpSpec is one Gaussian intensity peak.
type BumpSpec struct {
	Center    []float64 `yaml:"center"`
	Amplitude float64   `yaml:"amplitude"`
	Width     float64   `yaml:"width"`
}

// LoadExperimentSpec reads and parses an experiment spec from a YAML file.
// Unknown fields are rejected.
func LoadExperimentSpec(path string) (*ExperimentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment spec: %w", err)
	}
	var spec ExperimentSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing experiment spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *ExperimentSpec) Validate() error {
	if len(s.Lo) == 0 {
		return fmt.Errorf("domain needs at least one axis")
	}
	if len(s.Lo) != len(s.Hi) {
		return fmt.Errorf("lo and hi dimensions disagree: %d vs %d", len(s.Lo), len(s.Hi))
	}
	for i := range s.Lo {
		if s.Lo[i] >= s.Hi[i] {
			return fmt.Errorf("axis %d bounds inverted or degenerate: [%v, %v]", i, s.Lo[i], s.Hi[i])
		}
	}
	if s.Levels < 1 {
		return fmt.Errorf("levels must be >= 1, got %d", s.Levels)
	}
	if s.Rounds < 1 {
		return fmt.Errorf("rounds must be >= 1, got %d", s.Rounds)
	}
	candidates := (1 << s.Levels) - 1
	if s.TopK < 1 || s.TopK > candidates {
		return fmt.Errorf("topk must be in [1, %d] for %d levels, got %d", candidates, s.Levels, s.TopK)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", s.Duration)
	}
	if !sense.IsValidAcquisitionPolicy(s.Policy) {
		return fmt.Errorf("unknown policy %q; valid: epsilon-greedy, random", s.Policy)
	}
	if _, err := sense.ParseSchedule(s.Schedule.Name, s.Schedule.Eps); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	switch s.Cost.Type {
	case "", "volume", "uniform":
	default:
		return fmt.Errorf("unknown cost type %q; valid: volume, uniform", s.Cost.Type)
	}
	if s.Cost.Weight < 0 {
		return fmt.Errorf("cost weight must be non-negative, got %v", s.Cost.Weight)
	}
	if s.Process.Baseline < 0 || math.IsNaN(s.Process.Baseline) {
		return fmt.Errorf("process baseline must be non-negative, got %v", s.Process.Baseline)
	}
	peak := s.Process.Baseline
	for i, b := range s.Process.Bumps {
		if len(b.Center) != len(s.Lo) {
			return fmt.Errorf("bump %d: center dimension %d does not match domain dimension %d", i, len(b.Center), len(s.Lo))
		}
		if b.Amplitude < 0 {
			return fmt.Errorf("bump %d: amplitude must be non-negative, got %v", i, b.Amplitude)
		}
		if b.Width <= 0 {
			return fmt.Errorf("bump %d: width must be positive, got %v", i, b.Width)
		}
		peak += b.Amplitude
	}
	if peak <= 0 {
		return fmt.Errorf("process intensity is identically zero: baseline and all amplitudes are 0")
	}
	if s.GridPoints < 0 {
		return fmt.Errorf("grid_points must be non-negative, got %d", s.GridPoints)
	}
	return nil
}

// costFunc builds the sensing cost function from the spec. A zero weight
// falls back to 1.
func (s *ExperimentSpec) costFunc() sense.CostFunc {
	w := s.Cost.Weight
	if w == 0 {
		w = 1
	}
	if s.Cost.Type == "uniform" {
		return sense.UniformCost(w)
	}
	return sense.VolumeCost(w)
}

// Experiment is a fully assembled sensing run.
type Experiment struct {
	Spec       *ExperimentSpec
	Domain     *region.Box
	Hierarchy  *region.Hierarchy
	Candidates []sense.Region
	Process    *poisson.Process
	Engine     *sense.Engine
	Trace      *trace.ExperimentTrace
	Metrics    *sense.Metrics
}

// NewExperiment assembles the domain decomposition, ground-truth process,
// estimator, policy, and engine described by a validated spec. The candidate
// set is every node of the hierarchy, so policies trade coarse cheap
// coverage against focused expensive cells.
func NewExperiment(spec *ExperimentSpec) (*Experiment, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment spec: %w", err)
	}

	domain, err := region.NewBox(spec.Lo, spec.Hi)
	if err != nil {
		return nil, fmt.Errorf("building domain: %w", err)
	}
	hier, err := region.NewHierarchy(domain, spec.Levels)
	if err != nil {
		return nil, fmt.Errorf("building hierarchy: %w", err)
	}

	rng := sense.NewPartitionedRNG(sense.NewExperimentKey(spec.Seed))

	bumps := make([]poisson.Bump, len(spec.Process.Bumps))
	for i, b := range spec.Process.Bumps {
		bumps[i] = poisson.Bump{Center: b.Center, Amplitude: b.Amplitude, Width: b.Width}
	}
	rate, bound := poisson.GaussianBumps(spec.Process.Baseline, bumps)
	process := poisson.NewProcess(domain, rate, bound, rng.ForSubsystem(sense.SubsystemProcess))

	est := estimator.NewHistogram(hier)
	cost := spec.costFunc()
	sched, err := sense.ParseSchedule(spec.Schedule.Name, spec.Schedule.Eps)
	if err != nil {
		return nil, fmt.Errorf("building schedule: %w", err)
	}
	policy := sense.NewAcquisitionPolicy(spec.Policy, est, cost, sched, rng.ForSubsystem(sense.SubsystemPolicy))

	var initial []sense.Observation
	if spec.InitialSense {
		pts, err := process.Sample(domain, spec.Duration)
		if err != nil {
			return nil, fmt.Errorf("initial whole-domain sense: %w", err)
		}
		initial = []sense.Observation{{Region: domain, Points: pts, Duration: spec.Duration}}
		logrus.Infof("Initial whole-domain sense: %d events", len(pts))
	}

	engine, err := sense.NewEngine(process, est, policy, cost, spec.Duration, spec.TopK, initial)
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}

	return &Experiment{
		Spec:       spec,
		Domain:     domain,
		Hierarchy:  hier,
		Candidates: hier.Regions(),
		Process:    process,
		Engine:     engine,
		Trace:      trace.NewExperimentTrace(spec.Seed, policy.Name()),
		Metrics:    &sense.Metrics{},
	}, nil
}

// Run executes the configured number of sensing rounds, recording each in
// the trace and folding it into the metrics. A failed round stops the run;
// the partial round's committed observations are still traced and counted.
func (e *Experiment) Run() error {
	for i := 1; i <= e.Spec.Rounds; i++ {
		round, err := e.Engine.Step(e.Candidates)
		e.record(i, round)
		if err != nil {
			return fmt.Errorf("sensing run stopped at round %d: %w", i, err)
		}
	}
	return nil
}

func (e *Experiment) record(round int, r sense.Round) {
	rec := trace.RoundRecord{
		Round:   round,
		Cost:    r.Cost,
		Events:  r.Count,
		Indices: r.Indices,
	}
	for _, reg := range r.Regions {
		rec.Regions = append(rec.Regions, reg.Description())
	}
	e.Trace.RecordRound(rec)
	e.Metrics.Observe(r)
}

// BestPoint returns the most intense location on the current fit, on a
// grid with the spec's per-axis resolution (default 64).
func (e *Experiment) BestPoint() ([]float64, error) {
	n := e.Spec.GridPoints
	if n == 0 {
		n = 64
	}
	return e.Engine.BestPointSoFar(e.Domain, n)
}
