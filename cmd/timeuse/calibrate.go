package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/timeuse/estimate"
)

var (
	freeName  string
	maxTrials int
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Search Alpha/Sigma to match the target regression coefficients",
	Long: `Minimize

    (beta0_target - beta0)^2 + (beta1_target - beta1)^2

over the calibration box by re-running the continuous sweep and regression
for every candidate. The shared variant searches (alpha, sigma); the
separate variant searches sigma alone. --verbose streams every trial.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildParams(cmd)
		if err != nil {
			return err
		}

		setters := []estimate.Option{
			estimate.WithTrace(func(tr estimate.Trial) {
				logger.Debug("trial",
					zap.Int("index", tr.Index),
					zap.Float64("alpha", tr.Alpha),
					zap.Float64("sigma", tr.Sigma),
					zap.Float64("objective", tr.Objective),
				)
			}),
		}
		if cmd.Flags().Changed("free") {
			f, err := parseFree(freeName)
			if err != nil {
				return err
			}
			setters = append(setters, estimate.WithFree(f))
		}
		if cmd.Flags().Changed("max-trials") {
			setters = append(setters, estimate.WithMaxTrials(maxTrials))
		}

		start := time.Now()
		res, err := estimate.Calibrate(p, estimate.NewOptions(p.Variant, setters...))
		if err != nil {
			return err
		}
		logger.Debug("calibration finished",
			zap.Int("trials", res.Trials),
			zap.String("status", res.Status),
			zap.Duration("elapsed", time.Since(start)),
		)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "alpha = %6.4f\n", res.Alpha)
		fmt.Fprintf(out, "sigma = %6.4f\n", res.Sigma)
		fmt.Fprintf(out, "objective = %.6g over %d trials\n", res.Objective, res.Trials)
		fmt.Fprintf(out, "beta0 = %.4f (target %.4f)\n", res.Fit.Beta0, p.Beta0Target)
		fmt.Fprintf(out, "beta1 = %.4f (target %.4f)\n", res.Fit.Beta1, p.Beta1Target)
		if !res.Converged {
			fmt.Fprintf(out, "note: optimizer stopped on %s\n", res.Status)
		}

		return nil
	},
}

func init() {
	calibrateCmd.Flags().StringVar(&freeName, "free", "", `search space: "alpha+sigma" or "sigma" (default: variant's own)`)
	calibrateCmd.Flags().IntVar(&maxTrials, "max-trials", 0, "objective evaluation budget (default: variant's own)")
}

// parseFree maps a flag value onto the Free enum, accepting exactly the
// names Free.String produces.
func parseFree(name string) (estimate.Free, error) {
	switch name {
	case "alpha+sigma":
		return estimate.FreeAlphaSigma, nil
	case "sigma":
		return estimate.FreeSigma, nil
	default:
		return 0, fmt.Errorf(`free %q: want "alpha+sigma" or "sigma"`, name)
	}
}
