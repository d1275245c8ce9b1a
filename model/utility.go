package model

import "math"

// Utility - household joint utility of one time allocation.
//
// Description:
//
//	The household buys market consumption with market hours and produces a
//	home good with home hours; a Cobb-Douglas composite of the two enters a
//	CRRA felicity, and convex disutility of each member's total hours is
//	subtracted. Both solvers maximize exactly this scalar.
//
// Evaluation Outline:
//  1. Market consumption:  C = WM·LM + WF·LF.
//  2. Home production:     H = HomeProduction(p, HM, HF)   (σ-branching CES).
//  3. Composite good:      Q = max(C^Omega · H^(1-Omega), CompositeFloor),
//     where max ignores NaN: a NaN power (negative hours under a fractional
//     exponent) collapses to the floor instead of propagating.
//  4. Felicity:            Q^(1-Rho) / (1-Rho).
//  5. Disutility:          e = 1 + 1/Epsilon, TM = LM+HM, TF = LF+HF,
//     shared:   Nu·(TM^e/e + TF^e/e)
//     separate: Nu·TM^e/e + Eta·TF^e/e.
//  6. Utility = felicity - disutility.
//
// Numerics:
//   - Never panics and never returns an error. Out-of-contract parameters
//     (Rho=1, negative scales) produce ±Inf or NaN best-effort; call
//     Validate at API boundaries when rejection is wanted.
//   - With Rho > 1 the CompositeFloor turns a degenerate Q into a utility
//     near -Q^(1-Rho)/(Rho-1), a steep penalty that keeps maximizers away
//     from zero-consumption corners.
//
// Complexity: O(1) time, no allocations.
func Utility(p Params, c Choice) float64 {
	// Stage 1: market consumption from market hours.
	cons := p.WM*c.LM + p.WF*c.LF

	// Stage 2: home production from home hours.
	home := HomeProduction(p, c.HM, c.HF)

	// Stage 3: floored composite and CRRA felicity.
	q := fmax(math.Pow(cons, p.Omega)*math.Pow(home, 1-p.Omega), CompositeFloor)
	felicity := math.Pow(q, 1-p.Rho) / (1 - p.Rho)

	// Stage 4: convex disutility of total hours, scaled per variant.
	e := 1 + 1/p.Epsilon
	scaleF := p.Nu
	if p.Variant == SeparateDisutility {
		scaleF = p.Eta
	}
	disutility := p.Nu*math.Pow(c.TimeM(), e)/e + scaleF*math.Pow(c.TimeF(), e)/e

	return felicity - disutility
}

// HomeProduction combines the two members' home hours into the home good.
//
// Branches on Sigma:
//   - Sigma == 0: perfect complements, H = min(HM, HF).
//   - Sigma == 1: Cobb-Douglas, H = HM^(1-Alpha) · HF^Alpha.
//   - otherwise:  CES with exponent s = (Sigma-1)/Sigma,
//     H = ((1-Alpha)·HM^s + Alpha·HF^s)^(1/s),
//     with HM and HF floored at HomeInputFloor first so a zero input cannot
//     put a zero base under a negative fractional exponent.
//
// The floors ignore NaN the same way the composite floor does, so malformed
// hours degrade to the floor rather than poisoning the CES sum.
//
// Complexity: O(1).
func HomeProduction(p Params, hm, hf float64) float64 {
	switch {
	case p.Sigma == 0:
		return math.Min(hm, hf)
	case p.Sigma == 1:
		return math.Pow(hm, 1-p.Alpha) * math.Pow(hf, p.Alpha)
	default:
		s := (p.Sigma - 1) / p.Sigma
		hm = fmax(hm, HomeInputFloor)
		hf = fmax(hf, HomeInputFloor)

		return math.Pow((1-p.Alpha)*math.Pow(hm, s)+p.Alpha*math.Pow(hf, s), 1/s)
	}
}

// UtilityVec evaluates Utility for aligned batches of choice components and
// stores the results in dst, growing nothing: len(dst) must equal the batch
// length (pass nil to have a fresh slice allocated). The batch layout is the
// lattice layout used by solve.Grid: element i describes the single choice
// {lm[i], hm[i], lf[i], hf[i]}.
//
// Contracts:
//   - len(lm) == len(hm) == len(lf) == len(hf), and == len(dst) when dst != nil.
//
// Errors: ErrDimensionMismatch on any length disagreement.
//
// Complexity: O(n) time, O(n) space only when dst == nil.
func UtilityVec(dst []float64, lm, hm, lf, hf []float64, p Params) ([]float64, error) {
	n := len(lm)
	if len(hm) != n || len(lf) != n || len(hf) != n {
		return nil, ErrDimensionMismatch
	}
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		return nil, ErrDimensionMismatch
	}

	var i int // batch index
	for i = 0; i < n; i++ {
		dst[i] = Utility(p, Choice{LM: lm[i], HM: hm[i], LF: lf[i], HF: hf[i]})
	}

	return dst, nil
}

// fmax returns the larger of a and b, treating NaN in a as "absent": the
// floor b wins. Plain math.Max would propagate the NaN and disable the
// floor exactly where it is needed.
func fmax(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if a > b {
		return a
	}

	return b
}
