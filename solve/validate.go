// Package solve - option validation shared by the solver entry points.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Parameter validation is model.Validate's job and runs before these.
package solve

import "github.com/katalvlaran/timeuse/model"

// validateGrid checks the options GridSearch actually reads.
//
// Complexity: O(1).
func validateGrid(opts Options) error {
	if opts.GridPoints < 2 {
		return ErrBadGridPoints
	}

	return nil
}

// validateContinuous checks the options the continuous methods read.
//
// Contracts:
//   - Method must be NelderMead, BFGS or LBFGS (GridSearch belongs to Grid).
//   - Init components in [0, HoursPerDay]; Tol ≥ 0; MaxIterations ≥ 0;
//     PenaltyWeight > 0.
//
// Complexity: O(1).
func validateContinuous(opts Options) error {
	// Stage 1: engine must be a continuous one.
	switch opts.Method {
	case NelderMead, BFGS, LBFGS:
		// ok
	default:
		return ErrUnknownMethod
	}

	// Stage 2: scalar knobs.
	if opts.Tol < 0 {
		return ErrBadTol
	}
	if opts.MaxIterations < 0 {
		return ErrBadIterations
	}
	if opts.PenaltyWeight <= 0 {
		return ErrBadPenalty
	}

	// Stage 3: starting point inside the box (budget feasibility not
	// required; the penalty handles it).
	for _, v := range [4]float64{opts.Init.LM, opts.Init.HM, opts.Init.LF, opts.Init.HF} {
		if v < 0 || v > model.HoursPerDay {
			return ErrBadInit
		}
	}

	return nil
}
