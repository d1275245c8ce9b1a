// Package model defines the household time-allocation model: parameters,
// a four-hour choice vector, and the joint utility evaluator shared by the
// discrete and continuous solvers.
//
// What:
//
//   - Params carries preferences (Rho, Nu, Eta, Epsilon, Omega), home
//     technology (Alpha, Sigma), wages (WM, WF), the wage grid for sweeps
//     (WFGrid) and the regression targets used in calibration.
//   - Choice holds the four decision variables: market hours and home hours
//     for each household member (LM, HM, LF, HF), each on [0, HoursPerDay].
//   - Utility maps (Params, Choice) to a single scalar; UtilityVec evaluates
//     whole batches of choices for lattice search.
//
// Why:
//
//   - Household specialization: who works in the market, who works at home,
//     and how the answer shifts with relative wages.
//   - Calibration exercises: match the elasticity of home-hour ratios to
//     wage ratios observed in time-use data.
//
// Model:
//
//	C = WM·LM + WF·LF                                  (market consumption)
//	H = CES(HM, HF; Alpha, Sigma)                      (home production)
//	Q = C^Omega · H^(1-Omega)                          (composite good)
//	U = Q^(1-Rho)/(1-Rho) - disutility(TM, TF)         (CRRA less work cost)
//
// Variants:
//
//   - SharedDisutility:   one scale Nu on both members' total hours.
//   - SeparateDisutility: Nu on the male total, Eta on the female total.
//
// Numerical policy:
//
//   - No panics, no logging. Out-of-range inputs are floored or clamped the
//     way the evaluator documents; NaN and ±Inf are tolerated outcomes.
//   - Validate reports contract violations as sentinel errors; the evaluator
//     itself never rejects input.
//
// Errors:
//
//   - ErrUnitRho, ErrBadElasticity, ErrBadSigma, ErrBadOmega, ErrBadScale,
//     ErrBadWage, ErrBadWageGrid, ErrBadVariant: parameter contract breaches.
//   - ErrDimensionMismatch: batch evaluation over unequal slice lengths.
package model
