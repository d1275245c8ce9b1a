package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// HoursPerDay is the time budget available to each household member.
// Market and home hours of one member may not jointly exceed it.
const HoursPerDay = 24.0

// Numerical floors used by the evaluator. Both mirror the "max" guards that
// keep fractional powers and the CRRA transform away from zero bases.
const (
	// HomeInputFloor is applied to HM and HF inside the CES branch before
	// raising them to (Sigma-1)/Sigma.
	HomeInputFloor = 1e-7

	// CompositeFloor is applied to the composite good Q before the CRRA
	// transform; with Rho > 1 a floored Q yields a large negative utility
	// that acts as a natural penalty rather than an error.
	CompositeFloor = 1e-8
)

// Default parameter values. DefaultParams assembles them into a ready-to-use
// Params; the constants stay exported as the single source of truth.
const (
	DefaultRho     = 2.0   // CRRA curvature
	DefaultNu      = 0.001 // disutility scale (male total; both totals when shared)
	DefaultEta     = 0.002 // female disutility scale under SeparateDisutility
	DefaultEpsilon = 1.0   // labor disutility elasticity
	DefaultOmega   = 0.5   // consumption weight in the composite good
	DefaultAlpha   = 0.5   // female home-hours weight in home production
	DefaultSigma   = 1.0   // home-production substitution elasticity
	DefaultWM      = 1.0   // male market wage
	DefaultWF      = 1.0   // female market wage

	DefaultBeta0Target = 0.4  // calibration target: regression intercept
	DefaultBeta1Target = -0.1 // calibration target: regression slope

	DefaultWFGridMin = 0.8 // lowest female wage in the sweep grid
	DefaultWFGridMax = 1.2 // highest female wage in the sweep grid
	DefaultWFGridLen = 5   // number of sweep grid points
)

// Variant selects how the disutility of total work hours is scaled.
//
//   - SharedDisutility   – one scale Nu multiplies the disutility of both
//     members' totals: Nu·(TM^e/e + TF^e/e).
//   - SeparateDisutility – the male total is scaled by Nu and the female
//     total by Eta: Nu·TM^e/e + Eta·TF^e/e.
//
// The calibration layer keys its default free-parameter set off the variant:
// SharedDisutility estimates (Alpha, Sigma), SeparateDisutility estimates
// Sigma alone.
type Variant int

const (
	// SharedDisutility scales both members' work disutility by Nu.
	SharedDisutility Variant = iota

	// SeparateDisutility scales the male total by Nu and the female total by Eta.
	SeparateDisutility
)

// String returns the lowercase variant name used by configuration files.
func (v Variant) String() string {
	switch v {
	case SharedDisutility:
		return "shared"
	case SeparateDisutility:
		return "separate"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Params configures the household model.
//
// Preferences:
//
//	Rho     – CRRA curvature of the composite good; must differ from 1.
//	Nu      – disutility scale on the male total (and the female total when shared).
//	Eta     – disutility scale on the female total; read only under SeparateDisutility.
//	Epsilon – elasticity of labor disutility; must be positive.
//	Omega   – weight of market consumption in the composite good; in (0,1).
//
// Home production:
//
//	Alpha – weight on female home hours; Alpha=0.5 is symmetric technology.
//	Sigma – substitution elasticity: 0 ⇒ perfect complements (min rule),
//	        1 ⇒ Cobb-Douglas, otherwise CES. Must be non-negative.
//
// Wages and calibration:
//
//	WM, WF      – market wages; must be positive.
//	WFGrid      – ascending female wages visited by estimate.Sweep. Treated
//	              as read-only by this module; do not mutate mid-run.
//	Beta0Target – target intercept of the log home-ratio regression.
//	Beta1Target – target slope of the log home-ratio regression.
//
// Params is a value type: solvers, sweeps and calibration trials work on
// copies, never on shared mutable state.
type Params struct {
	Rho     float64 // CRRA curvature (≠ 1)
	Nu      float64 // disutility scale, male total (both totals when shared)
	Eta     float64 // disutility scale, female total (SeparateDisutility only)
	Epsilon float64 // labor disutility elasticity (> 0)
	Omega   float64 // consumption weight in the composite (0,1)

	Alpha float64 // female weight in home production
	Sigma float64 // home-production substitution elasticity (≥ 0)

	WM     float64   // male wage (> 0)
	WF     float64   // female wage (> 0)
	WFGrid []float64 // ascending female wages for sweeps

	Beta0Target float64 // calibration target: intercept
	Beta1Target float64 // calibration target: slope

	Variant Variant // disutility variant
}

// DefaultWFGrid returns the canonical sweep grid: DefaultWFGridLen evenly
// spaced wages from DefaultWFGridMin to DefaultWFGridMax inclusive.
func DefaultWFGrid() []float64 {
	grid := make([]float64, DefaultWFGridLen)
	floats.Span(grid, DefaultWFGridMin, DefaultWFGridMax)

	return grid
}

// DefaultParams returns a Params populated with the canonical defaults for
// the given variant. Use it as a starting point and override fields directly.
//
// Defaults:
//   - Rho=2, Nu=0.001, Eta=0.002, Epsilon=1, Omega=0.5.
//   - Alpha=0.5, Sigma=1 (symmetric Cobb-Douglas home production).
//   - WM=WF=1; WFGrid = DefaultWFGrid() (0.8 … 1.2, five points).
//   - Beta0Target=0.4, Beta1Target=-0.1.
//
// Eta is populated for both variants; SharedDisutility simply never reads it.
func DefaultParams(v Variant) Params {
	return Params{
		Rho:         DefaultRho,
		Nu:          DefaultNu,
		Eta:         DefaultEta,
		Epsilon:     DefaultEpsilon,
		Omega:       DefaultOmega,
		Alpha:       DefaultAlpha,
		Sigma:       DefaultSigma,
		WM:          DefaultWM,
		WF:          DefaultWF,
		WFGrid:      DefaultWFGrid(),
		Beta0Target: DefaultBeta0Target,
		Beta1Target: DefaultBeta1Target,
		Variant:     v,
	}
}

// Choice is one candidate time allocation: market hours (LM, LF) and home
// hours (HM, HF) for the male and female member. Feasible allocations keep
// each member's total within HoursPerDay; the evaluator itself accepts any
// values and lets the documented floors absorb pathological input.
type Choice struct {
	LM float64 // male market hours
	HM float64 // male home hours
	LF float64 // female market hours
	HF float64 // female home hours
}

// TimeM returns the male member's total working hours LM+HM.
func (c Choice) TimeM() float64 { return c.LM + c.HM }

// TimeF returns the female member's total working hours LF+HF.
func (c Choice) TimeF() float64 { return c.LF + c.HF }

// Feasible reports whether every component is non-negative and each member's
// total stays within the HoursPerDay budget. The comparison is exact; solver
// outputs are clamped into the box before they reach callers.
func (c Choice) Feasible() bool {
	if c.LM < 0 || c.HM < 0 || c.LF < 0 || c.HF < 0 {
		return false
	}

	return c.TimeM() <= HoursPerDay && c.TimeF() <= HoursPerDay
}

// String renders the allocation with four decimals, the format used by the
// reporting layer: "LM = 4.5000  HM = 4.5000  LF = 4.5000  HF = 4.5000".
func (c Choice) String() string {
	return fmt.Sprintf("LM = %.4f  HM = %.4f  LF = %.4f  HF = %.4f", c.LM, c.HM, c.LF, c.HF)
}
