// Package estimate runs the empirical side of the household model: wage
// sweeps, the log-log specialization regression, and moment calibration.
//
// What:
//
//   - Sweep re-solves the household at every wage in Params.WFGrid and
//     collects the optimal allocations into index-aligned vectors.
//   - Regress fits log(HF/HM) = Beta0 + Beta1·log(WF/WM) by ordinary least
//     squares over a sweep's vectors and reports the fit quality.
//   - Calibrate wraps Sweep+Regress into a squared-moment objective
//     (Beta0Target-Beta0)^2 + (Beta1Target-Beta1)^2 and minimizes it over
//     Alpha and Sigma (or Sigma alone) with a bounded Nelder-Mead search.
//
// Why:
//
//   - The regression slope is the model's testable statement about
//     specialization: how the home-hours ratio responds to relative wages.
//   - Calibration inverts that statement, recovering the technology
//     parameters that reproduce empirically observed coefficients.
//
// Pipeline:
//
//	Params ──Sweep──▶ SweepResult ──Regress──▶ RegressionResult
//	   ▲                                            │
//	   └────────── Calibrate (outer loop) ◀─────────┘
//
// Every step works on its own Params copy: a sweep sets WF per wage point
// and a calibration trial sets Alpha/Sigma per candidate without the caller's
// Params ever changing underneath them.
//
// Degenerate numerics follow the kernel's policy of returning rather than
// raising: a sweep whose home hours hit zero makes Regress report NaN
// coefficients, which in turn makes the calibration objective NaN for that
// trial. Calibration surfaces such runs through Converged/Status instead of
// an error.
//
// Errors:
//
//   - ErrBadMode, ErrBadFree, ErrBadTrials: option contract breaches.
//   - ErrDimensionMismatch: regression over misaligned vectors.
//   - Parameter and solver breaches surface as model/solve sentinels.
package estimate
