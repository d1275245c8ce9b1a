package estimate

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/timeuse/model"
)

// Calibrate searches the home-technology parameters that reproduce the
// target regression coefficients.
//
// Description:
//
//	Every candidate point is clipped into [CalibrationMin, CalibrationMax],
//	written into a trial-local Params copy, and scored by a full continuous
//	Sweep followed by Regress:
//
//	    objective = (Beta0Target-Beta0)² + (Beta1Target-Beta1)²
//
//	A Nelder-Mead simplex minimizes the score from the canonical start,
//	(DefaultInitAlpha, DefaultInitSigma) under FreeAlphaSigma and
//	(DefaultInitSigma) under FreeSigma.
//
// Best effort:
//
//	The best point seen is returned even when the optimizer stops on a
//	budget or failure status; Converged/Status carry the diagnosis. A
//	degenerate trial (NaN regression) poisons its own score only.
//
// Contracts:
//   - p passes model.Validate; opts passes validateOptions.
//   - Local search from one start: no restarts, no global guarantee.
//   - p is never mutated; CalibrationResult.Params carries the calibrated
//     values ready for further solves.
//   - Calibration sweeps continuously regardless of opts.Mode.
//
// Errors: model sentinels, ErrBadMode, ErrBadFree, ErrBadTrials; solver
// option breaches surface from the probe sweep at the start point.
//
// Complexity: O(Trials · len(WFGrid)) continuous solves.
func Calibrate(p model.Params, opts Options) (CalibrationResult, error) {
	// Stage 1: contracts.
	if err := model.Validate(p); err != nil {
		return CalibrationResult{}, err
	}
	if err := validateOptions(opts); err != nil {
		return CalibrationResult{}, err
	}

	// Stage 2: trial machinery.
	sweepOpts := opts
	sweepOpts.Mode = Continuous

	// scoreAt runs one full trial at x: clip, apply, sweep, regress, score.
	scoreAt := func(x []float64) (float64, model.Params, RegressionResult, error) {
		q := p
		applyClipped(&q, opts.Free, x)

		sr, err := Sweep(q, sweepOpts)
		if err != nil {
			return 0, q, RegressionResult{}, err
		}
		fit, err := Regress(q, sr)
		if err != nil {
			return 0, q, fit, err
		}

		d0 := q.Beta0Target - fit.Beta0
		d1 := q.Beta1Target - fit.Beta1

		return d0*d0 + d1*d1, q, fit, nil
	}

	// Stage 3: probe the start point so contract breaches in the solver
	// options surface as errors before the search begins.
	x0 := startPoint(opts.Free)
	if _, _, _, err := scoreAt(x0); err != nil {
		return CalibrationResult{}, err
	}

	// Stage 4: bounded Nelder-Mead over the free parameters.
	var trials int
	objective := func(x []float64) float64 {
		score, q, _, err := scoreAt(x)
		if err != nil {
			// The probe ruled out contract breaches; anything left poisons
			// the trial, matching the NaN policy of degenerate regressions.
			score = math.Inf(1)
		}
		if opts.Trace != nil {
			opts.Trace(Trial{Index: trials, Alpha: q.Alpha, Sigma: q.Sigma, Objective: score})
		}
		trials++

		return score
	}

	settings := &optimize.Settings{}
	if opts.MaxTrials > 0 {
		settings.FuncEvaluations = opts.MaxTrials
	}

	res, err := optimize.Minimize(optimize.Problem{Func: objective}, x0, settings, &optimize.NelderMead{})
	if res == nil {
		return CalibrationResult{}, err
	}

	// Stage 5: re-run the pipeline at the optimum so Params, Fit and
	// Objective are mutually consistent.
	score, q, fit, ferr := scoreAt(res.X)
	if ferr != nil {
		return CalibrationResult{}, ferr
	}

	return CalibrationResult{
		Alpha:     q.Alpha,
		Sigma:     q.Sigma,
		Objective: score,
		Fit:       fit,
		Params:    q,
		Trials:    trials,
		Converged: err == nil && calibrationConverged(res.Status),
		Status:    res.Status.String(),
	}, nil
}

// startPoint returns the canonical initial candidate for the search space.
func startPoint(f Free) []float64 {
	if f == FreeSigma {
		return []float64{DefaultInitSigma}
	}

	return []float64{DefaultInitAlpha, DefaultInitSigma}
}

// applyClipped writes the clipped candidate coordinates into q.
func applyClipped(q *model.Params, f Free, x []float64) {
	if f == FreeAlphaSigma {
		q.Alpha = clipCalibration(x[0])
		q.Sigma = clipCalibration(x[1])

		return
	}
	q.Sigma = clipCalibration(x[0])
}

// clipCalibration clamps one candidate coordinate into the calibration box.
func clipCalibration(v float64) float64 {
	switch {
	case v < CalibrationMin:
		return CalibrationMin
	case v > CalibrationMax:
		return CalibrationMax
	default:
		return v
	}
}

// calibrationConverged reports whether a terminal status counts as
// convergence rather than a budget stop or failure.
func calibrationConverged(s optimize.Status) bool {
	switch s {
	case optimize.Success, optimize.FunctionConvergence, optimize.StepConvergence:
		return true
	default:
		return false
	}
}
