package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/timeuse/model"
)

// Sentinel errors returned by the solvers.
var (
	// ErrUnknownMethod indicates a Method value outside the declared enum.
	ErrUnknownMethod = errors.New("solve: unknown Method")
	// ErrBadGridPoints indicates a lattice with fewer than two points per axis.
	ErrBadGridPoints = errors.New("solve: GridPoints must be at least 2")
	// ErrBadTol indicates a negative convergence tolerance.
	ErrBadTol = errors.New("solve: Tol must be non-negative")
	// ErrBadPenalty indicates a non-positive constraint penalty weight.
	ErrBadPenalty = errors.New("solve: PenaltyWeight must be positive")
	// ErrBadInit indicates an initial point with a component outside [0, HoursPerDay].
	ErrBadInit = errors.New("solve: Init components must lie in [0, HoursPerDay]")
	// ErrBadIterations indicates a negative iteration cap.
	ErrBadIterations = errors.New("solve: MaxIterations must be non-negative")
)

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultGridPoints gives a half-hour lattice: 49 points on [0,24].
	DefaultGridPoints = 49

	// DefaultInitHours is the interior starting value for every component of
	// the continuous solver's initial point.
	DefaultInitHours = 4.0

	// DefaultSharedTol is the absolute function-convergence tolerance used by
	// the SharedDisutility variant. SeparateDisutility leaves Tol at 0 and
	// inherits the optimizer's own default converger.
	DefaultSharedTol = 1e-7

	// DefaultPenaltyWeight scales the quadratic penalty on time-budget and
	// box violations. Large enough that residual violations at an interior
	// optimum are far below the lattice resolution.
	DefaultPenaltyWeight = 1e6

	// defaultConvergeRuns is the patience of the function converger: the
	// number of consecutive iterations allowed without improvement beyond Tol.
	defaultConvergeRuns = 30
)

// StatusExhaustive is the Result.Status of a completed lattice search.
// Continuous results carry the optimizer's own status text instead.
const StatusExhaustive = "exhaustive"

// Method selects the optimization engine.
//
//   - GridSearch  – exhaustive lattice enumeration (see Grid).
//   - NelderMead  – derivative-free simplex; the continuous default.
//   - BFGS        – quasi-Newton on finite-difference gradients.
//   - LBFGS       – limited-memory BFGS, same gradient scheme.
type Method int

const (
	// GridSearch enumerates the full lattice; exact on the grid.
	GridSearch Method = iota

	// NelderMead is the derivative-free continuous default.
	NelderMead

	// BFGS uses central finite-difference gradients.
	BFGS

	// LBFGS is the limited-memory variant of BFGS.
	LBFGS
)

// String returns the configuration-file name of the method.
func (m Method) String() string {
	switch m {
	case GridSearch:
		return "grid"
	case NelderMead:
		return "nelder-mead"
	case BFGS:
		return "bfgs"
	case LBFGS:
		return "lbfgs"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Options configures the solvers.
//
//	Method        – engine selection; Solve routes on it and Continuous picks
//	                its engine from it (rejecting GridSearch). Grid ignores it,
//	                so one Options value serves both solver families.
//	GridPoints    – lattice points per axis (GridSearch only; ≥ 2).
//	Init          – starting point for continuous methods; each component in
//	                [0, HoursPerDay]. The canonical start is (4,4,4,4).
//	Tol           – absolute function-convergence tolerance for continuous
//	                methods; 0 means "optimizer default".
//	MaxIterations – cap on major iterations; 0 means "optimizer default".
//	PenaltyWeight – quadratic penalty scale on constraint violations (> 0).
type Options struct {
	Method        Method       // engine selection
	GridPoints    int          // lattice resolution per axis
	Init          model.Choice // continuous starting point
	Tol           float64      // function convergence tolerance (0 = default)
	MaxIterations int          // major iteration cap (0 = default)
	PenaltyWeight float64      // constraint penalty scale
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithMethod selects the optimization engine.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithGridPoints sets the lattice resolution per axis for GridSearch.
// Values below 2 are rejected by validation, not here.
func WithGridPoints(n int) Option {
	return func(o *Options) { o.GridPoints = n }
}

// WithInit sets the continuous starting point.
func WithInit(c model.Choice) Option {
	return func(o *Options) { o.Init = c }
}

// WithTol sets the absolute function-convergence tolerance; pass 0 to fall
// back to the optimizer's own converger.
func WithTol(tol float64) Option {
	return func(o *Options) { o.Tol = tol }
}

// WithMaxIterations caps the optimizer's major iterations; 0 means unlimited
// up to the optimizer default.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithPenaltyWeight sets the quadratic constraint penalty scale.
func WithPenaltyWeight(w float64) Option {
	return func(o *Options) { o.PenaltyWeight = w }
}

// DefaultOptions returns the canonical configuration for the given variant.
//
// Defaults:
//   - Method:        NelderMead (the continuous workhorse; pick GridSearch explicitly).
//   - GridPoints:    DefaultGridPoints (49 ⇒ half-hour lattice).
//   - Init:          (4, 4, 4, 4).
//   - Tol:           DefaultSharedTol under SharedDisutility, 0 otherwise.
//   - MaxIterations: 0 (optimizer default).
//   - PenaltyWeight: DefaultPenaltyWeight.
func DefaultOptions(v model.Variant) Options {
	o := Options{
		Method:     NelderMead,
		GridPoints: DefaultGridPoints,
		Init: model.Choice{
			LM: DefaultInitHours,
			HM: DefaultInitHours,
			LF: DefaultInitHours,
			HF: DefaultInitHours,
		},
		PenaltyWeight: DefaultPenaltyWeight,
	}
	if v == model.SharedDisutility {
		o.Tol = DefaultSharedTol
	}

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

// Result is the outcome of one solver run.
//
//	Choice      – the maximizing allocation (clamped into the feasible box
//	              for continuous methods; a lattice point for GridSearch).
//	Utility     – model.Utility at Choice.
//	Method      – the engine that produced the result.
//	Converged   – false when the continuous optimizer stopped without meeting
//	              a convergence criterion; GridSearch is always true.
//	Status      – StatusExhaustive for GridSearch, otherwise the optimizer's
//	              terminal status text (diagnostic only).
//	Evaluations – utility evaluations spent (lattice size, or the optimizer's
//	              function-evaluation count).
type Result struct {
	Choice      model.Choice // maximizing allocation
	Utility     float64      // utility at Choice
	Method      Method       // engine used
	Converged   bool         // convergence diagnosis
	Status      string       // terminal status text
	Evaluations int          // utility evaluations spent
}
