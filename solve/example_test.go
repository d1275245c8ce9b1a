package solve_test

import (
	"fmt"

	"github.com/katalvlaran/timeuse/model"
	"github.com/katalvlaran/timeuse/solve"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGrid
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Exhaustive search on a deliberately coarse three-point axis {0, 12, 24}.
//	Only 36 of the 81 allocations fit both budgets, and the sparse lattice
//	rewards specialization: one member leaves the market entirely while both
//	home slots hold the midpoint. The mirror allocation ties exactly, so the
//	first occurrence in row-major LM → HM → LF → HF order wins.
func ExampleGrid() {
	p := model.DefaultParams(model.SharedDisutility)
	opts := solve.NewOptions(model.SharedDisutility,
		solve.WithMethod(solve.GridSearch),
		solve.WithGridPoints(3),
	)

	res, err := solve.Grid(p, opts)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println(res.Choice)
	fmt.Printf("U = %.4f  status = %s\n", res.Utility, res.Status)
	// Output:
	// LM = 0.0000  HM = 12.0000  LF = 12.0000  HF = 12.0000
	// U = -0.4433  status = exhaustive
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleContinuous
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Smooth refinement of the same household with the default Nelder-Mead
//	setup. The interior optimum sits near 4.45 hours per component, a point
//	no coarse lattice can represent exactly.
func ExampleContinuous() {
	p := model.DefaultParams(model.SharedDisutility)

	res, err := solve.Continuous(p, solve.NewOptions(model.SharedDisutility))
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("U = %.2f  feasible = %v\n", res.Utility, res.Choice.Feasible())
	// Output:
	// U = -0.24  feasible = true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewOptions
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Functional options on top of the per-variant defaults: swap the engine
//	and tighten the lattice without touching the rest of the bundle.
func ExampleNewOptions() {
	opts := solve.NewOptions(model.SharedDisutility,
		solve.WithMethod(solve.GridSearch),
		solve.WithGridPoints(97),
	)

	fmt.Printf("method = %s  points = %d  tol = %g\n",
		opts.Method, opts.GridPoints, opts.Tol)
	// Output:
	// method = grid  points = 97  tol = 1e-07
}
