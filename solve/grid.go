package solve

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/timeuse/model"
)

// Grid - exhaustive lattice maximization of household utility.
//
// Description:
//
//	Each of the four choice components ranges over the same uniform lattice
//	of opts.GridPoints values spanning [0, HoursPerDay]. Every combination
//	is evaluated; combinations that overdraw either member's time budget are
//	masked to -Inf after evaluation, so indices stay aligned with the full
//	Cartesian product. The argmax is the first occurrence in row-major
//	LM → HM → LF → HF order.
//
// Algorithm Outline:
//  1. axis = Span(0, 24, n). Precompute the (LF, HF) plane of n² pairs and
//     its per-pair female-budget feasibility, shared by every male block.
//  2. For each (LM, HM) pair in row-major order:
//     a. batch-evaluate the n² plane via model.UtilityVec into one buffer;
//     b. mask the whole block when LM+HM > 24, and each entry with
//     LF+HF > 24, using -Inf;
//     c. take the block argmax (floats.MaxIdx keeps the first occurrence)
//     and promote it iff strictly better than the incumbent, which
//     preserves global first-occurrence tie-breaking.
//  3. Return the incumbent with Status=StatusExhaustive.
//
// Contracts:
//   - p passes model.Validate; opts.GridPoints ≥ 2.
//   - Ignores Method, Init, Tol, MaxIterations and PenaltyWeight.
//   - The origin is on the lattice and always feasible, so the masked search
//     space is never empty and the returned utility is finite.
//
// Errors: model sentinels from validation, ErrBadGridPoints.
//
// Complexity: O(n⁴) time, O(n²) memory, n = GridPoints.
func Grid(p model.Params, opts Options) (Result, error) {
	// Stage 1: contracts.
	if err := model.Validate(p); err != nil {
		return Result{}, err
	}
	if err := validateGrid(opts); err != nil {
		return Result{}, err
	}

	n := opts.GridPoints
	axis := make([]float64, n)
	floats.Span(axis, 0, model.HoursPerDay)

	// Stage 2: the (LF, HF) plane and its feasibility, computed once.
	size := n * n
	var (
		lm     = make([]float64, size) // male market hours, constant per block
		hm     = make([]float64, size) // male home hours, constant per block
		lf     = make([]float64, size) // female market hours, plane layout
		hf     = make([]float64, size) // female home hours, plane layout
		util   = make([]float64, size) // reusable utility buffer
		femOK  = make([]bool, size)    // female budget feasibility per plane entry
		negInf = math.Inf(-1)
	)

	idx := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			lf[idx] = axis[i]
			hf[idx] = axis[j]
			femOK[idx] = axis[i]+axis[j] <= model.HoursPerDay
			idx++
		}
	}

	// Stage 3: row-major sweep over male blocks.
	var (
		best       = negInf
		bestChoice model.Choice
		evals      int
	)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fillConst(lm, axis[i])
			fillConst(hm, axis[j])

			if _, err := model.UtilityVec(util, lm, hm, lf, hf, p); err != nil {
				return Result{}, err
			}
			evals += size

			// Mask after evaluation to keep plane indices aligned.
			maleOK := axis[i]+axis[j] <= model.HoursPerDay
			for k := 0; k < size; k++ {
				if !maleOK || !femOK[k] {
					util[k] = negInf
				}
			}

			// Strict '>' keeps the earliest block on ties; MaxIdx keeps the
			// earliest entry within a block.
			k := floats.MaxIdx(util)
			if util[k] > best {
				best = util[k]
				bestChoice = model.Choice{LM: axis[i], HM: axis[j], LF: lf[k], HF: hf[k]}
			}
		}
	}

	return Result{
		Choice:      bestChoice,
		Utility:     best,
		Method:      GridSearch,
		Converged:   true,
		Status:      StatusExhaustive,
		Evaluations: evals,
	}, nil
}

// fillConst overwrites every element of dst with v.
func fillConst(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
