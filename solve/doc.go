// Package solve maximizes household utility over the four-hour choice
// vector, discretely or continuously.
//
// What:
//
//   - Grid enumerates a uniform lattice over [0, 24]^4, masks allocations
//     that break either member's time budget with -Inf, and returns the
//     first-occurring argmax. Exact on the lattice, deterministic.
//   - Continuous runs gonum/optimize (Nelder-Mead by default, BFGS/LBFGS
//     with finite-difference gradients) on the box-clipped, budget-penalized
//     negative utility from a fixed interior start.
//   - Solve routes on Options.Method so callers can switch solver families
//     without touching call sites.
//
// Why:
//
//   - The lattice answer is the honest benchmark: no local optima, no
//     convergence questions, half-hour resolution.
//   - The continuous answer refines it and is cheap enough to re-solve
//     hundreds of times inside wage sweeps and calibration loops.
//
// Complexity:
//
//   - Grid:       O(GridPoints^4) utility evaluations, O(GridPoints^2) memory.
//   - Continuous: O(evaluations) with method-dependent iteration counts;
//     gradients cost 2·dim extra evaluations per call (central differences).
//
// Determinism and best effort:
//
//   - No randomness anywhere: fixed lattice, fixed initial point.
//   - Continuous never hides the final iterate behind a convergence error:
//     the clamped last point and its utility are always returned, with
//     Result.Converged / Result.Status carrying the diagnosis on the side.
//
// Errors:
//
//   - ErrBadGridPoints, ErrBadTol, ErrBadPenalty, ErrBadInit,
//     ErrBadIterations: option contract breaches.
//   - ErrUnknownMethod: Method outside the declared enum.
//   - Parameter breaches surface as model sentinels (model.Validate runs first).
package solve
