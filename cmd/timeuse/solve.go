package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/timeuse/model"
	"github.com/katalvlaran/timeuse/solve"
)

var (
	methodName string
	gridPoints int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Maximize household utility once at the configured wages",
	Long: `Solve the household's time-allocation problem at the configured WM/WF
and print the optimal allocation, one component per line.

The default engine is the continuous Nelder-Mead solver; --method grid runs
the exhaustive lattice search instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildParams(cmd)
		if err != nil {
			return err
		}
		m, err := parseMethod(methodName)
		if err != nil {
			return err
		}

		opts := solve.NewOptions(p.Variant,
			solve.WithMethod(m),
			solve.WithGridPoints(gridPoints),
		)

		start := time.Now()
		res, err := solve.Solve(p, opts)
		if err != nil {
			return err
		}
		logger.Debug("solve finished",
			zap.Stringer("method", res.Method),
			zap.String("status", res.Status),
			zap.Int("evaluations", res.Evaluations),
			zap.Duration("elapsed", time.Since(start)),
		)

		printChoice(cmd, res.Choice)
		fmt.Fprintf(cmd.OutOrStdout(), "U  = %6.4f\n", res.Utility)
		if !res.Converged {
			fmt.Fprintf(cmd.OutOrStdout(), "note: optimizer stopped on %s\n", res.Status)
		}

		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&methodName, "method", "nelder-mead", `engine: "grid", "nelder-mead", "bfgs" or "lbfgs"`)
	solveCmd.Flags().IntVar(&gridPoints, "grid-points", solve.DefaultGridPoints, "lattice points per axis for --method grid")
}

// parseMethod maps a flag value onto the Method enum, accepting exactly the
// names Method.String produces.
func parseMethod(name string) (solve.Method, error) {
	switch name {
	case "grid":
		return solve.GridSearch, nil
	case "nelder-mead":
		return solve.NelderMead, nil
	case "bfgs":
		return solve.BFGS, nil
	case "lbfgs":
		return solve.LBFGS, nil
	default:
		return 0, fmt.Errorf(`method %q: want "grid", "nelder-mead", "bfgs" or "lbfgs"`, name)
	}
}

// printChoice writes the allocation one component per line, four decimals.
func printChoice(cmd *cobra.Command, c model.Choice) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "LM = %6.4f\n", c.LM)
	fmt.Fprintf(w, "HM = %6.4f\n", c.HM)
	fmt.Fprintf(w, "LF = %6.4f\n", c.LF)
	fmt.Fprintf(w, "HF = %6.4f\n", c.HF)
}
