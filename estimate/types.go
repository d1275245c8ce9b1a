package estimate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/timeuse/model"
	"github.com/katalvlaran/timeuse/solve"
)

// Sentinel errors returned by the estimators.
var (
	// ErrBadMode indicates a Mode value outside the declared enum.
	ErrBadMode = errors.New("estimate: unknown Mode")
	// ErrBadFree indicates a Free value outside the declared enum.
	ErrBadFree = errors.New("estimate: unknown Free")
	// ErrBadTrials indicates a negative calibration trial cap.
	ErrBadTrials = errors.New("estimate: MaxTrials must be non-negative")
	// ErrDimensionMismatch indicates empty or unequal-length sweep vectors.
	ErrDimensionMismatch = errors.New("estimate: sweep vectors must share one positive length")
)

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultInitAlpha is the calibration starting value for Alpha when it
	// is free.
	DefaultInitAlpha = 0.5

	// DefaultInitSigma is the calibration starting value for Sigma.
	DefaultInitSigma = 0.1

	// CalibrationMin and CalibrationMax bound every free calibration
	// parameter. Candidate points outside the box are clipped onto it
	// before evaluation, so the search never leaves [Min, Max].
	CalibrationMin = 0.01
	CalibrationMax = 0.99

	// DefaultTrialsPerFree scales the objective-evaluation budget with the
	// number of free parameters.
	DefaultTrialsPerFree = 200
)

// Mode selects how a sweep solves each wage point.
//
//   - Continuous – smooth solves; allocations and utilities are recorded.
//   - Discrete   – lattice solves; results are computed and discarded, the
//     vectors stay zero. Kept for lattice-resolution inspection runs where
//     only the solver's side of the work matters.
type Mode int

const (
	// Continuous records each wage point's optimal allocation.
	Continuous Mode = iota

	// Discrete runs lattice solves without recording allocations.
	Discrete
)

// String returns the configuration-file name of the mode.
func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Free selects which technology parameters the calibration searches.
//
//   - FreeAlphaSigma – two-dimensional search over (Alpha, Sigma).
//   - FreeSigma      – one-dimensional search over Sigma; Alpha stays fixed.
type Free int

const (
	// FreeAlphaSigma searches (Alpha, Sigma); the SharedDisutility default.
	FreeAlphaSigma Free = iota

	// FreeSigma searches Sigma only; the SeparateDisutility default.
	FreeSigma
)

// String returns the configuration-file name of the free-parameter set.
func (f Free) String() string {
	switch f {
	case FreeAlphaSigma:
		return "alpha+sigma"
	case FreeSigma:
		return "sigma"
	default:
		return fmt.Sprintf("Free(%d)", int(f))
	}
}

// dim returns the search dimension, 0 for undeclared values.
func (f Free) dim() int {
	switch f {
	case FreeAlphaSigma:
		return 2
	case FreeSigma:
		return 1
	default:
		return 0
	}
}

// Options configures Sweep and Calibrate.
//
//	Mode      – per-wage solver family for sweeps (Continuous or Discrete).
//	Solve     – options handed to the per-wage solver. Calibration always
//	            sweeps continuously, so its inner solves read Method, Init,
//	            Tol, MaxIterations and PenaltyWeight from here.
//	Free      – calibration search space (FreeAlphaSigma or FreeSigma).
//	MaxTrials – cap on calibration objective evaluations; 0 lifts the cap
//	            and the outer converger decides alone.
//	Trace     – optional per-trial callback; nil disables tracing.
type Options struct {
	Mode      Mode          // sweep solver family
	Solve     solve.Options // per-wage solver configuration
	Free      Free          // calibration search space
	MaxTrials int           // objective evaluation cap (0 = uncapped)
	Trace     func(Trial)   // per-trial observer
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithMode selects the sweep solver family.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithSolveOptions replaces the per-wage solver configuration wholesale.
func WithSolveOptions(s solve.Options) Option {
	return func(o *Options) { o.Solve = s }
}

// WithFree selects the calibration search space.
func WithFree(f Free) Option {
	return func(o *Options) { o.Free = f }
}

// WithMaxTrials caps calibration objective evaluations; pass 0 to lift the cap.
func WithMaxTrials(n int) Option {
	return func(o *Options) { o.MaxTrials = n }
}

// WithTrace installs a per-trial observer invoked after every calibration
// objective evaluation.
func WithTrace(fn func(Trial)) Option {
	return func(o *Options) { o.Trace = fn }
}

// DefaultOptions returns the canonical configuration for the given variant.
//
// Defaults:
//   - Mode:      Continuous (the only mode that records allocations).
//   - Solve:     solve.DefaultOptions(v), so the sweep inherits the
//     variant's tolerance policy.
//   - Free:      FreeAlphaSigma under SharedDisutility, FreeSigma otherwise.
//   - MaxTrials: DefaultTrialsPerFree per free parameter.
//   - Trace:     nil.
func DefaultOptions(v model.Variant) Options {
	o := Options{
		Mode:  Continuous,
		Solve: solve.DefaultOptions(v),
		Free:  FreeAlphaSigma,
	}
	if v == model.SeparateDisutility {
		o.Free = FreeSigma
	}
	o.MaxTrials = DefaultTrialsPerFree * o.Free.dim()

	return o
}

// NewOptions builds DefaultOptions for the variant and applies the given
// functional setters in order.
func NewOptions(v model.Variant, opts ...Option) Options {
	o := DefaultOptions(v)

	var apply Option // current setter
	for _, apply = range opts {
		apply(&o)
	}

	return o
}

// Trial is one calibration objective evaluation, as seen by Options.Trace.
//
//	Index     – zero-based evaluation counter.
//	Alpha     – candidate Alpha after clipping (the fixed value under FreeSigma).
//	Sigma     – candidate Sigma after clipping.
//	Objective – squared deviation of the fitted coefficients from the targets.
type Trial struct {
	Index     int     // evaluation counter
	Alpha     float64 // candidate Alpha
	Sigma     float64 // candidate Sigma
	Objective float64 // squared moment deviation
}

// SweepResult holds the per-wage-point outcome of one sweep, index-aligned
// with WF.
//
//	WF      – the wage grid that was swept (a copy of Params.WFGrid).
//	LM..HF  – optimal allocation components per wage point. Populated by
//	          Continuous sweeps only; Discrete sweeps leave them zero.
//	Utility – utility at the recorded allocation, same population rule.
//	Mode    – the mode that produced this result.
type SweepResult struct {
	WF      []float64 // swept wage grid
	LM      []float64 // male market hours per wage point
	HM      []float64 // male home hours per wage point
	LF      []float64 // female market hours per wage point
	HF      []float64 // female home hours per wage point
	Utility []float64 // utility per wage point
	Mode    Mode      // producing mode
}

// Len returns the number of wage points in the sweep.
func (s SweepResult) Len() int { return len(s.WF) }

// RegressionResult is the ordinary-least-squares fit of the specialization
// equation log(HF/HM) = Beta0 + Beta1·log(WF/WM).
//
//	Beta0, Beta1 – intercept and slope; NaN when the sweep was degenerate
//	               (zero home hours) or the normal equations were singular.
//	RSquared     – coefficient of determination; NaN whenever the betas are.
//	N            – observations used.
type RegressionResult struct {
	Beta0    float64 // intercept
	Beta1    float64 // slope on log relative wages
	RSquared float64 // fit quality
	N        int     // observations
}

// CalibrationResult is the outcome of one Calibrate run.
//
//	Alpha, Sigma – calibrated technology parameters; Alpha echoes the fixed
//	               input value under FreeSigma.
//	Objective    – squared moment deviation at (Alpha, Sigma).
//	Fit          – Sweep+Regress re-run at the calibrated point.
//	Params       – the input Params with the calibrated values applied,
//	               ready for further solves.
//	Trials       – objective evaluations spent.
//	Converged    – false when the optimizer stopped on a budget or failure
//	               status rather than a convergence criterion.
//	Status       – the optimizer's terminal status text (diagnostic only).
type CalibrationResult struct {
	Alpha     float64          // calibrated Alpha
	Sigma     float64          // calibrated Sigma
	Objective float64          // squared moment deviation at the optimum
	Fit       RegressionResult // regression at the calibrated point
	Params    model.Params     // input params with the optimum applied
	Trials    int              // objective evaluations spent
	Converged bool             // convergence diagnosis
	Status    string           // terminal status text
}

// validateOptions rejects undeclared enum values and negative budgets.
// Solver-level options are validated by the solver that consumes them.
func validateOptions(opts Options) error {
	// Stage 1: enums.
	switch opts.Mode {
	case Continuous, Discrete:
		// ok
	default:
		return ErrBadMode
	}
	if opts.Free.dim() == 0 {
		return ErrBadFree
	}

	// Stage 2: budgets.
	if opts.MaxTrials < 0 {
		return ErrBadTrials
	}

	return nil
}
