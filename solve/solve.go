// Package solve - unified dispatcher for the household solvers.
//
// This file provides the canonical entry point: Solve routes on
// Options.Method to the lattice search or to a continuous optimizer, so
// sweep and calibration code can swap engines through configuration alone.
//
// Design principles:
//   - Deterministic: fixed lattice, fixed initial point, no time-based randomness.
//   - Strict sentinels: only errors from types.go and model; no fmt.Errorf
//     where a sentinel suffices.
//   - Best effort: numeric non-convergence is reported in the Result, never
//     as an error.
package solve

import "github.com/katalvlaran/timeuse/model"

// Solve maximizes household utility with the engine named by opts.Method.
//
// Contracts:
//   - p must pass model.Validate.
//   - GridSearch reads GridPoints; the continuous methods read Init, Tol,
//     MaxIterations and PenaltyWeight.
//
// Errors: ErrUnknownMethod for an undeclared Method; otherwise those of the
// routed solver.
//
// Complexity: per engine; see Grid and Continuous.
func Solve(p model.Params, opts Options) (Result, error) {
	switch opts.Method {
	case GridSearch:
		return Grid(p, opts)
	case NelderMead, BFGS, LBFGS:
		return Continuous(p, opts)
	default:
		return Result{}, ErrUnknownMethod
	}
}
