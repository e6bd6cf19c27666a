// Package sense provides the sequential sensing loop for estimating the
// intensity of a spatial point process under a cost model.
//
// # Reading Guide
//
// Start with these three files to understand the control loop:
//   - dataset.go: Observation records, the append-only Dataset, event counting
//   - engine.go: one sensing round (fit → score → select top-k → sense → record)
//   - epsilon_greedy.go: the exploration/exploitation policy driving the loop
//
// # Architecture
//
// The sense package defines the contracts; implementations live in
// sub-packages:
//   - sense/region/: axis-aligned box regions and hierarchical decomposition
//   - sense/poisson/: Poisson point-process sampling (thinning)
//   - sense/estimator/: piecewise-constant rate estimation over leaf cells
//   - sense/trace/: per-round decision trace recording
//
// The cmd package composes a domain, a process, an estimator and a policy
// into an experiment; this package never imports its sub-packages.
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Process: draw the events observed in a region over a sensing duration
//   - RateEstimator: accumulate observations and answer mean-rate queries
//   - Region: volume, description, discretization of a domain subset
//   - AcquisitionPolicy: score candidate regions each round
//
// Everything here is single-goroutine: one policy instance owns its dataset
// and estimator, rounds run strictly in sequence, and no operation suspends.
// Callers wanting timeouts or parallel experiments wrap the loop externally.
package sense
