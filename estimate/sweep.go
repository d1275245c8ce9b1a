package estimate

import (
	"github.com/katalvlaran/timeuse/model"
	"github.com/katalvlaran/timeuse/solve"
)

// Sweep solves the household once per wage point in p.WFGrid.
//
// Description:
//
//	Each wage point gets its own Params copy with WF set to the grid value;
//	p itself never changes. Continuous mode records the optimal allocation
//	and its utility at the matching index. Discrete mode runs the lattice
//	solver and discards the outcome, leaving the allocation vectors zero:
//	lattice sweeps are inspection runs where only the solving matters.
//
// Contracts:
//   - p passes model.Validate; opts passes validateOptions.
//   - Every result vector has length len(p.WFGrid) and shares its order.
//   - Wage points are solved sequentially and are independent of each other.
//
// Errors: model sentinels, ErrBadMode, ErrBadFree, ErrBadTrials; solver
// option breaches surface from the first wage point.
//
// Complexity: len(WFGrid) solver runs.
func Sweep(p model.Params, opts Options) (SweepResult, error) {
	// Stage 1: contracts.
	if err := model.Validate(p); err != nil {
		return SweepResult{}, err
	}
	if err := validateOptions(opts); err != nil {
		return SweepResult{}, err
	}

	// Stage 2: result vectors, index-aligned with the wage grid.
	n := len(p.WFGrid)
	sr := SweepResult{
		WF:      make([]float64, n),
		LM:      make([]float64, n),
		HM:      make([]float64, n),
		LF:      make([]float64, n),
		HF:      make([]float64, n),
		Utility: make([]float64, n),
		Mode:    opts.Mode,
	}
	copy(sr.WF, p.WFGrid)

	// Stage 3: one solve per wage point on a local Params copy.
	var (
		i   int          // wage index
		q   model.Params // per-point copy
		res solve.Result // per-point solver outcome
		err error        // per-point solver error
	)
	for i = 0; i < n; i++ {
		q = p
		q.WF = p.WFGrid[i]

		if opts.Mode == Discrete {
			if _, err = solve.Grid(q, opts.Solve); err != nil {
				return SweepResult{}, err
			}

			continue
		}

		if res, err = solve.Continuous(q, opts.Solve); err != nil {
			return SweepResult{}, err
		}
		sr.LM[i] = res.Choice.LM
		sr.HM[i] = res.Choice.HM
		sr.LF[i] = res.Choice.LF
		sr.HF[i] = res.Choice.HF
		sr.Utility[i] = res.Utility
	}

	return sr, nil
}
