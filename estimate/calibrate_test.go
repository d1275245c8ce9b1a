package estimate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/timeuse/estimate"
	"github.com/katalvlaran/timeuse/model"
	"github.com/katalvlaran/timeuse/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// targetsAt computes the regression coefficients implied by known technology
// parameters. Calibrating against these targets gives a problem whose
// zero-residual answer is known in advance.
func targetsAt(t *testing.T, p model.Params, alpha, sigma float64) (float64, float64) {
	t.Helper()

	q := p
	q.Alpha = alpha
	q.Sigma = sigma

	sr, err := estimate.Sweep(q, estimate.NewOptions(q.Variant))
	require.NoError(t, err)
	fit, err := estimate.Regress(q, sr)
	require.NoError(t, err)
	require.False(t, math.IsNaN(fit.Beta0), "target construction must not degenerate")

	return fit.Beta0, fit.Beta1
}

// TestCalibrate_RecoversSelfConsistentTargets verifies the full outer loop:
// targets generated at (Alpha, Sigma) = (0.5, 0.5) must be reproducible, so
// the search has to drive the squared moment deviation to zero.
func TestCalibrate_RecoversSelfConsistentTargets(t *testing.T) {
	p := model.DefaultParams(model.SharedDisutility)
	p.Beta0Target, p.Beta1Target = targetsAt(t, p, 0.5, 0.5)

	res, err := estimate.Calibrate(p, estimate.NewOptions(model.SharedDisutility))
	require.NoError(t, err)

	assert.Less(t, res.Objective, 1e-4, "the zero-residual point is reachable")
	assert.InDelta(t, p.Beta0Target, res.Fit.Beta0, 1e-2, "intercept moment matched")
	assert.InDelta(t, p.Beta1Target, res.Fit.Beta1, 1e-2, "slope moment matched")
	assert.Equal(t, len(p.WFGrid), res.Fit.N)

	assert.GreaterOrEqual(t, res.Alpha, estimate.CalibrationMin, "Alpha stays in the box")
	assert.LessOrEqual(t, res.Alpha, estimate.CalibrationMax, "Alpha stays in the box")
	assert.GreaterOrEqual(t, res.Sigma, estimate.CalibrationMin, "Sigma stays in the box")
	assert.LessOrEqual(t, res.Sigma, estimate.CalibrationMax, "Sigma stays in the box")

	assert.Equal(t, res.Alpha, res.Params.Alpha, "Params carries the calibrated point")
	assert.Equal(t, res.Sigma, res.Params.Sigma, "Params carries the calibrated point")
	assert.Positive(t, res.Trials)
	assert.NotEmpty(t, res.Status)
}

// TestCalibrate_SigmaOnlyTracksSlope verifies the one-dimensional variant.
// CES optimality makes the regression slope equal -Sigma exactly, so targets
// generated at Sigma = 0.5 identify the answer uniquely.
func TestCalibrate_SigmaOnlyTracksSlope(t *testing.T) {
	p := model.DefaultParams(model.SeparateDisutility)
	p.Beta0Target, p.Beta1Target = targetsAt(t, p, p.Alpha, 0.5)
	gridBefore := append([]float64(nil), p.WFGrid...)

	res, err := estimate.Calibrate(p, estimate.NewOptions(model.SeparateDisutility))
	require.NoError(t, err)

	assert.Less(t, res.Objective, 1e-4)
	assert.InDelta(t, 0.5, res.Sigma, 0.05, "the slope moment pins Sigma")
	assert.Equal(t, p.Alpha, res.Alpha, "Alpha is not searched under FreeSigma")
	assert.Equal(t, p.Alpha, res.Params.Alpha, "Alpha passes through unchanged")
	assert.Equal(t, res.Sigma, res.Params.Sigma)

	assert.Equal(t, gridBefore, p.WFGrid, "the caller's wage grid never changes")
}

// TestCalibrate_CanonicalTargetsStaysWellFormed smoke-tests the default
// moment targets (0.4, -0.1). Their closed-form inverse (Sigma = 0.1,
// Alpha = e^4/(1+e^4) ~ 0.982) sits inside the box but far from the start,
// so a unit-test budget cannot promise convergence; the run must still end
// cleanly with a finite in-bounds outcome.
func TestCalibrate_CanonicalTargetsStaysWellFormed(t *testing.T) {
	p := model.DefaultParams(model.SharedDisutility)

	res, err := estimate.Calibrate(p, estimate.NewOptions(model.SharedDisutility,
		estimate.WithMaxTrials(60),
	))
	require.NoError(t, err, "the canonical targets must calibrate without error")

	require.False(t, math.IsNaN(res.Objective), "the score stays finite")
	require.False(t, math.IsInf(res.Objective, 0), "the score stays finite")
	assert.GreaterOrEqual(t, res.Objective, 0.0, "squared deviations cannot go negative")

	assert.GreaterOrEqual(t, res.Alpha, estimate.CalibrationMin, "Alpha stays in the box")
	assert.LessOrEqual(t, res.Alpha, estimate.CalibrationMax, "Alpha stays in the box")
	assert.GreaterOrEqual(t, res.Sigma, estimate.CalibrationMin, "Sigma stays in the box")
	assert.LessOrEqual(t, res.Sigma, estimate.CalibrationMax, "Sigma stays in the box")

	assert.NoError(t, model.Validate(res.Params), "the calibrated Params stay usable")
	assert.Equal(t, len(p.WFGrid), res.Fit.N, "the fit covers the full wage grid")
	assert.Positive(t, res.Trials)
	assert.NotEmpty(t, res.Status)
}

// TestCalibrate_TraceCountsTrials verifies the observer hook and the trial
// budget: a capped run reports every evaluation, in order, inside the box.
func TestCalibrate_TraceCountsTrials(t *testing.T) {
	var seen []estimate.Trial

	p := model.DefaultParams(model.SharedDisutility)
	res, err := estimate.Calibrate(p, estimate.NewOptions(model.SharedDisutility,
		estimate.WithMaxTrials(10),
		estimate.WithTrace(func(tr estimate.Trial) { seen = append(seen, tr) }),
	))
	require.NoError(t, err, "a budget stop is a status, not an error")

	assert.Equal(t, res.Trials, len(seen), "one trace entry per objective evaluation")
	for i, tr := range seen {
		assert.Equal(t, i, tr.Index, "trace entries arrive in evaluation order")
		assert.GreaterOrEqual(t, tr.Alpha, estimate.CalibrationMin)
		assert.LessOrEqual(t, tr.Alpha, estimate.CalibrationMax)
		assert.GreaterOrEqual(t, tr.Sigma, estimate.CalibrationMin)
		assert.LessOrEqual(t, tr.Sigma, estimate.CalibrationMax)
		assert.False(t, math.IsNaN(tr.Objective), "default runs never degenerate")
	}

	assert.False(t, res.Converged, "ten trials cannot satisfy the converger")
	assert.NotEmpty(t, res.Status)
}

// TestCalibrate_Sentinels verifies contract breaches at the calibration entry.
func TestCalibrate_Sentinels(t *testing.T) {
	p := model.DefaultParams(model.SharedDisutility)

	_, err := estimate.Calibrate(p, estimate.NewOptions(model.SharedDisutility,
		estimate.WithFree(estimate.Free(9)),
	))
	assert.ErrorIs(t, err, estimate.ErrBadFree, "undeclared search space")

	_, err = estimate.Calibrate(p, estimate.NewOptions(model.SharedDisutility,
		estimate.WithMode(estimate.Mode(9)),
	))
	assert.ErrorIs(t, err, estimate.ErrBadMode, "undeclared mode")

	_, err = estimate.Calibrate(p, estimate.NewOptions(model.SharedDisutility,
		estimate.WithMaxTrials(-1),
	))
	assert.ErrorIs(t, err, estimate.ErrBadTrials, "negative budget")

	_, err = estimate.Calibrate(p, estimate.NewOptions(model.SharedDisutility,
		estimate.WithSolveOptions(solve.NewOptions(model.SharedDisutility, solve.WithPenaltyWeight(0))),
	))
	assert.ErrorIs(t, err, solve.ErrBadPenalty, "inner solver options surface from the probe")

	bad := p
	bad.WFGrid = nil
	_, err = estimate.Calibrate(bad, estimate.NewOptions(model.SharedDisutility))
	assert.ErrorIs(t, err, model.ErrBadWageGrid, "parameter breaches pass through")
}
