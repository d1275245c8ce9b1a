// Package model - parameter validation shared by solvers and estimators.
//
// Validate is the single gate: solve.Grid, solve.Continuous, estimate.Sweep
// and estimate.Calibrate all call it on entry, so the numeric kernels can
// stay unchecked and branch-free.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - The evaluator itself never validates: a Choice outside the box is
//     absorbed by the documented floors, not rejected.
package model

// Validate verifies the Params contract and returns the first violated
// sentinel, or nil when p is usable by every component of this module.
//
// Contracts:
//   - Rho ≠ 1 (CRRA pole), Epsilon > 0, Sigma ≥ 0, Omega ∈ (0,1).
//   - Nu ≥ 0; Eta ≥ 0 when the variant reads it.
//   - WM > 0, WF > 0.
//   - WFGrid non-empty, positive, strictly ascending.
//
// Complexity: O(len(WFGrid)) time, O(1) space.
func Validate(p Params) error {
	// Stage 1: variant must be a declared enum value.
	switch p.Variant {
	case SharedDisutility, SeparateDisutility:
		// ok
	default:
		return ErrBadVariant
	}

	// Stage 2: preference block.
	if p.Rho == 1 {
		return ErrUnitRho
	}
	if p.Epsilon <= 0 {
		return ErrBadElasticity
	}
	if p.Omega <= 0 || p.Omega >= 1 {
		return ErrBadOmega
	}
	if p.Nu < 0 {
		return ErrBadScale
	}
	if p.Variant == SeparateDisutility && p.Eta < 0 {
		return ErrBadScale
	}

	// Stage 3: home technology.
	if p.Sigma < 0 {
		return ErrBadSigma
	}

	// Stage 4: wages and the sweep grid.
	if p.WM <= 0 || p.WF <= 0 {
		return ErrBadWage
	}
	if len(p.WFGrid) == 0 {
		return ErrBadWageGrid
	}

	var (
		i    int     // grid index
		prev float64 // previous grid entry for the ascending check
	)
	for i = 0; i < len(p.WFGrid); i++ {
		if p.WFGrid[i] <= 0 {
			return ErrBadWageGrid
		}
		if i > 0 && p.WFGrid[i] <= prev {
			return ErrBadWageGrid
		}
		prev = p.WFGrid[i]
	}

	return nil
}
