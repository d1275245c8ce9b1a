package estimate

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/timeuse/model"
)

// Regress fits log(HF/HM) = Beta0 + Beta1·log(WF/WM) over a sweep's vectors
// by ordinary least squares.
//
// Description:
//
//	Observations are x_i = log(WF_i/WM) and y_i = log(HF_i/HM_i), taken
//	element-wise from the sweep. The design matrix [1 | x] goes through a
//	QR least-squares solve; RSquared scores the fitted line against the
//	observations.
//
// Degenerate sweeps:
//
//	Zero home hours make y_i infinite or undefined (log of zero, zero over
//	zero). Such systems, and singular ones, return NaN coefficients with a
//	nil error: degeneracy is an outcome here, not a failure. A Discrete
//	sweep's all-zero vectors land on this path.
//
// Contracts:
//   - p passes model.Validate; only p.WM is read.
//   - WF, HM and HF must share one positive length; LM and LF are not read.
//
// Errors: model sentinels, ErrDimensionMismatch.
//
// Complexity: O(n) observations, one n×2 least-squares solve.
func Regress(p model.Params, sr SweepResult) (RegressionResult, error) {
	// Stage 1: contracts.
	if err := model.Validate(p); err != nil {
		return RegressionResult{}, err
	}
	n := sr.Len()
	if n == 0 || len(sr.HM) != n || len(sr.HF) != n {
		return RegressionResult{}, ErrDimensionMismatch
	}

	// Stage 2: log-log observations.
	var (
		x      = make([]float64, n) // log relative wages
		y      = make([]float64, n) // log home-hours ratios
		finite = true               // whole-system usability flag
		i      int
	)
	for i = 0; i < n; i++ {
		x[i] = math.Log(sr.WF[i] / p.WM)
		y[i] = math.Log(sr.HF[i] / sr.HM[i])
		if !isFinite(x[i]) || !isFinite(y[i]) {
			finite = false
		}
	}
	if !finite {
		return nanRegression(n), nil
	}

	// Stage 3: least squares on [1 | x].
	a := mat.NewDense(n, 2, nil)
	for i = 0; i < n; i++ {
		a.Set(i, 0, 1)
		a.Set(i, 1, x[i])
	}

	var beta mat.VecDense
	if err := beta.SolveVec(a, mat.NewVecDense(n, y)); err != nil {
		return nanRegression(n), nil
	}

	b0, b1 := beta.AtVec(0), beta.AtVec(1)

	return RegressionResult{
		Beta0:    b0,
		Beta1:    b1,
		RSquared: stat.RSquared(x, y, nil, b0, b1),
		N:        n,
	}, nil
}

// nanRegression is the degenerate outcome: the shape of a fit with none of
// the information.
func nanRegression(n int) RegressionResult {
	nan := math.NaN()

	return RegressionResult{Beta0: nan, Beta1: nan, RSquared: nan, N: n}
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
