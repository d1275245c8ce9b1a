package solve

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/timeuse/model"
)

// Continuous - smooth maximization of household utility on [0, 24]^4.
//
// Description:
//
//	The two time-budget constraints LM+HM ≤ 24 and LF+HF ≤ 24 and the box
//	bounds are folded into the objective: candidate points are clipped into
//	the box, and the squared clipping distance plus the squared budget
//	overdraft are charged at opts.PenaltyWeight. The resulting unconstrained
//	problem goes to gonum/optimize from the fixed interior start opts.Init.
//
// Method mapping:
//   - NelderMead – derivative-free simplex (default; mirrors the classic
//     sequential-quadratic setups' role as the robust fallback).
//   - BFGS/LBFGS – quasi-Newton on central finite-difference gradients of
//     the penalized objective.
//
// Best effort:
//
//	The final iterate is returned even when the optimizer reports failure
//	or an iteration limit: Result.Choice is the clamped last point,
//	Result.Utility its true (unpenalized) utility, and Converged/Status
//	carry the diagnosis. The error return is reserved for contract breaches.
//
// Contracts:
//   - p passes model.Validate; opts passes validateContinuous.
//   - Not warm-started: every call begins at opts.Init.
//   - The returned Choice always satisfies Choice.Feasible() up to the
//     penalty's residual slack on the budget constraints (zero at interior
//     optima, below 1e-3 hours otherwise at the default weight).
//
// Errors: model sentinels, ErrUnknownMethod, ErrBadTol, ErrBadIterations,
// ErrBadPenalty, ErrBadInit.
//
// Complexity: O(FuncEvaluations); gradients add 2·4 evaluations each.
func Continuous(p model.Params, opts Options) (Result, error) {
	// Stage 1: contracts.
	if err := model.Validate(p); err != nil {
		return Result{}, err
	}
	if err := validateContinuous(opts); err != nil {
		return Result{}, err
	}

	// Stage 2: penalized objective; minimizers minimize, so negate.
	objective := negPenalizedUtility(p, opts.PenaltyWeight)
	problem := optimize.Problem{Func: objective}
	if opts.Method == BFGS || opts.Method == LBFGS {
		problem.Grad = func(grad, x []float64) {
			fd.Gradient(grad, objective, x, &fd.Settings{Formula: fd.Central})
		}
	}

	// Stage 3: variant tolerance policy. Tol=0 keeps the optimizer's own
	// converger; a positive Tol installs an absolute function converger.
	settings := &optimize.Settings{}
	if opts.Tol > 0 {
		settings.Converger = &optimize.FunctionConverge{
			Absolute:   opts.Tol,
			Iterations: defaultConvergeRuns,
		}
	}
	if opts.MaxIterations > 0 {
		settings.MajorIterations = opts.MaxIterations
	}

	x0 := []float64{opts.Init.LM, opts.Init.HM, opts.Init.LF, opts.Init.HF}
	res, err := optimize.Minimize(problem, x0, settings, toGonumMethod(opts.Method))
	if res == nil {
		// No iterate to report: configuration-level failure inside the
		// optimizer, not a numeric one.
		return Result{}, err
	}

	// Stage 4: best-effort extraction of the last iterate.
	choice, _ := clipToBox(res.X)

	return Result{
		Choice:      choice,
		Utility:     model.Utility(p, choice),
		Method:      opts.Method,
		Converged:   err == nil && convergedStatus(res.Status),
		Status:      res.Status.String(),
		Evaluations: res.FuncEvaluations,
	}, nil
}

// negPenalizedUtility builds the minimization objective: negative utility of
// the box-clipped point plus weight times the squared box and budget
// violations. Clipping before evaluation keeps the utility kernel on its
// documented domain; the quadratic charge keeps the landscape informative
// outside it.
func negPenalizedUtility(p model.Params, weight float64) func(x []float64) float64 {
	return func(x []float64) float64 {
		choice, violation := clipToBox(x)

		if over := choice.TimeM() - model.HoursPerDay; over > 0 {
			violation += over * over
		}
		if over := choice.TimeF() - model.HoursPerDay; over > 0 {
			violation += over * over
		}

		return -model.Utility(p, choice) + weight*violation
	}
}

// clipToBox clamps a raw optimizer point into [0, HoursPerDay]^4 and returns
// the clamped Choice together with the squared clipping distance.
func clipToBox(x []float64) (model.Choice, float64) {
	var violation float64

	clip := func(v float64) float64 {
		switch {
		case v < 0:
			violation += v * v
			return 0
		case v > model.HoursPerDay:
			d := v - model.HoursPerDay
			violation += d * d
			return model.HoursPerDay
		default:
			// NaN lands here untouched; the evaluator's floors absorb it.
			return v
		}
	}

	return model.Choice{LM: clip(x[0]), HM: clip(x[1]), LF: clip(x[2]), HF: clip(x[3])}, violation
}

// toGonumMethod maps the Method enum onto a fresh gonum optimizer instance.
func toGonumMethod(m Method) optimize.Method {
	switch m {
	case BFGS:
		return &optimize.BFGS{}
	case LBFGS:
		return &optimize.LBFGS{}
	default:
		return &optimize.NelderMead{}
	}
}

// convergedStatus reports whether a terminal status counts as convergence
// rather than a budget stop or failure.
func convergedStatus(s optimize.Status) bool {
	switch s {
	case optimize.Success, optimize.FunctionConvergence,
		optimize.GradientThreshold, optimize.StepConvergence:
		return true
	default:
		return false
	}
}
