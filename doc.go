// Package timeuse is an in-memory toolkit for household time-allocation
// economics: evaluate joint utility, solve for optimal market/home hours,
// sweep relative wages, and calibrate technology parameters to data.
//
// 🚀 What is timeuse?
//
//	A small, deterministic library that brings together:
//		• Utility evaluation: CRRA over a market/home composite, CES home production
//		• Discrete solver: exhaustive half-hour lattice search with feasibility masking
//		• Continuous solver: penalized Nelder-Mead / (L-)BFGS over the 24h time budget
//		• Wage sweep: re-solve the household across a grid of female wages
//		• Regression: OLS of log home-hour ratios on log wage ratios
//		• Calibration: bounded Nelder-Mead matching of regression targets
//
// ✨ Why choose timeuse?
//
//   - Beginner-friendly - minimal API, clear, intuitive naming
//   - Deterministic - fixed initial points, no time-based randomness
//   - Honest numerics - floors and clamps instead of exceptions; NaN is a
//     tolerated outcome, never a panic
//   - Extensible - functional options and trial hooks for custom logic
//
// Under the hood, everything is organized under three subpackages:
//
//	model/    – parameters, choices, variants and the utility evaluator
//	solve/    – discrete (grid) and continuous (gonum/optimize) solvers
//	estimate/ – wage sweeps, OLS regression and parameter calibration
//
// Quick sketch of the pipeline:
//
//	Params ──▶ solve.Solve ──▶ Choice
//	   │                         │
//	   └──▶ estimate.Sweep ──▶ estimate.Regress ──▶ estimate.Calibrate
//
// The cmd/timeuse binary wraps the pipeline with a YAML-configured CLI and
// renders sweep/regression charts via gonum/plot.
//
//	go get github.com/katalvlaran/timeuse
package timeuse
