package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/timeuse/estimate"
)

var modeName string

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Solve across the wage grid and fit the specialization regression",
	Long: `Solve the household once per wage point in the configured grid, print
the allocations as a table and fit

    log(HF/HM) = beta0 + beta1·log(wF/wM)

over the recorded points. Discrete sweeps run the lattice solver without
recording allocations, so their regression reports NaN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildParams(cmd)
		if err != nil {
			return err
		}
		mode, err := parseMode(modeName)
		if err != nil {
			return err
		}

		start := time.Now()
		sr, err := estimate.Sweep(p, estimate.NewOptions(p.Variant, estimate.WithMode(mode)))
		if err != nil {
			return err
		}
		logger.Debug("sweep finished",
			zap.Stringer("mode", sr.Mode),
			zap.Int("points", sr.Len()),
			zap.Duration("elapsed", time.Since(start)),
		)

		out := cmd.OutOrStdout()
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "wF\tLM\tHM\tLF\tHF\tU\t")
		for i := 0; i < sr.Len(); i++ {
			fmt.Fprintf(tw, "%.2f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
				sr.WF[i], sr.LM[i], sr.HM[i], sr.LF[i], sr.HF[i], sr.Utility[i])
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fit, err := estimate.Regress(p, sr)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nbeta0 = %.4f  beta1 = %.4f  R2 = %.4f  (n = %d)\n",
			fit.Beta0, fit.Beta1, fit.RSquared, fit.N)

		return nil
	},
}

func init() {
	sweepCmd.Flags().StringVar(&modeName, "mode", "continuous", `per-wage solver: "continuous" or "discrete"`)
}

// parseMode maps a flag value onto the Mode enum, accepting exactly the
// names Mode.String produces.
func parseMode(name string) (estimate.Mode, error) {
	switch name {
	case "continuous":
		return estimate.Continuous, nil
	case "discrete":
		return estimate.Discrete, nil
	default:
		return 0, fmt.Errorf(`mode %q: want "continuous" or "discrete"`, name)
	}
}
